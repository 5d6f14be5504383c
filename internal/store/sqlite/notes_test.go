package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ainotebuddy/notekeeper/internal/models"
	"github.com/ainotebuddy/notekeeper/internal/store"
)

// createTestStorage creates an in-memory storage for tests.
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	require.NotNil(t, s)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func createTestNote(title string) *models.Note {
	return &models.Note{
		Title:    title,
		Body:     "body of " + title,
		Category: "test",
		Tags:     []string{"tag-1", "tag-2"},
	}
}

func TestStorage_Insert(t *testing.T) {
	s := createTestStorage(t)
	ctx := context.Background()

	note := createTestNote("first")
	id, err := s.Insert(ctx, note)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, models.InitialVersion, note.Version)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)
	assert.Equal(t, []string{"tag-1", "tag-2"}, got.Tags)
	assert.Equal(t, models.InitialVersion, got.Version)
	assert.False(t, got.Deleted)
}

func TestStorage_Insert_KeepsProvidedID(t *testing.T) {
	s := createTestStorage(t)
	ctx := context.Background()

	note := createTestNote("with id")
	note.ID = "fixed-id"

	id, err := s.Insert(ctx, note)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", id)
}

func TestStorage_Update(t *testing.T) {
	s := createTestStorage(t)
	ctx := context.Background()

	note := createTestNote("original")
	_, err := s.Insert(ctx, note)
	require.NoError(t, err)

	note.Title = "updated"
	note.Pinned = true

	version, err := s.Update(ctx, note)
	require.NoError(t, err)
	assert.Equal(t, models.InitialVersion+1, version)

	got, err := s.Get(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Title)
	assert.True(t, got.Pinned)
	assert.Equal(t, models.InitialVersion+1, got.Version)
}

func TestStorage_Update_NotFound(t *testing.T) {
	s := createTestStorage(t)

	note := createTestNote("ghost")
	note.ID = "missing"

	_, err := s.Update(context.Background(), note)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestStorage_SoftDelete(t *testing.T) {
	s := createTestStorage(t)
	ctx := context.Background()

	note := createTestNote("to delete")
	id, err := s.Insert(ctx, note)
	require.NoError(t, err)

	require.NoError(t, s.SoftDelete(ctx, id))

	// Note remains readable but is flagged deleted with a bumped version.
	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Deleted)
	assert.Equal(t, models.InitialVersion+1, got.Version)
}

func TestStorage_SoftDelete_NotFound(t *testing.T) {
	s := createTestStorage(t)

	err := s.SoftDelete(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestStorage_Get_NotFound(t *testing.T) {
	s := createTestStorage(t)

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestStorage_List(t *testing.T) {
	s := createTestStorage(t)
	ctx := context.Background()

	first := createTestNote("first")
	second := createTestNote("second")

	_, err := s.Insert(ctx, first)
	require.NoError(t, err)
	_, err = s.Insert(ctx, second)
	require.NoError(t, err)
	require.NoError(t, s.SoftDelete(ctx, second.ID))

	active, err := s.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "first", active[0].Title)

	all, err := s.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
