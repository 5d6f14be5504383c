package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ainotebuddy/notekeeper/internal/models"
	"github.com/ainotebuddy/notekeeper/internal/queue"
)

// createTestStorage creates a temporary queue storage for tests.
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "queue.db")

	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, s)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func createOp(kind models.OperationKind, noteID string) *models.Operation {
	op := &models.Operation{
		Kind:      kind,
		NoteID:    noteID,
		Timestamp: time.Now().UnixNano(),
	}
	switch kind {
	case models.OpCreate:
		op.Note = &models.Note{ID: noteID, Title: "note " + noteID}
		op.ClientRef = "client-" + noteID
	case models.OpUpdate:
		op.Changes = []models.FieldChange{models.TitleChange("updated")}
		op.PreviousVersion = 1
	case models.OpDelete:
		op.SoftDelete = true
	case models.OpAnalyze:
		op.Content = "content"
	}
	return op
}

func TestStorage_Enqueue(t *testing.T) {
	s := createTestStorage(t)
	ctx := context.Background()

	id, err := s.Enqueue(ctx, createOp(models.OpCreate, "n1"))
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	ops, err := s.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, id, ops[0].ID)
	assert.Equal(t, models.OpCreate, ops[0].Kind)
	assert.NotZero(t, ops[0].Seq)
}

func TestStorage_Enqueue_RejectsInvalid(t *testing.T) {
	s := createTestStorage(t)

	// Update without changes must never enter the queue.
	_, err := s.Enqueue(context.Background(), &models.Operation{
		Kind:   models.OpUpdate,
		NoteID: "n1",
	})
	assert.Error(t, err)

	ops, err := s.Pending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestStorage_FIFOOrder(t *testing.T) {
	s := createTestStorage(t)
	ctx := context.Background()

	first, err := s.Enqueue(ctx, createOp(models.OpCreate, "n1"))
	require.NoError(t, err)
	second, err := s.Enqueue(ctx, createOp(models.OpUpdate, "n1"))
	require.NoError(t, err)
	third, err := s.Enqueue(ctx, createOp(models.OpDelete, "n2"))
	require.NoError(t, err)

	ops, err := s.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 3)
	assert.Equal(t, []string{first, second, third}, []string{ops[0].ID, ops[1].ID, ops[2].ID})

	next, err := s.PeekNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, next.ID)

	// Peek doesn't remove.
	next, err = s.PeekNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, next.ID)
}

func TestStorage_PeekNext_Empty(t *testing.T) {
	s := createTestStorage(t)

	_, err := s.PeekNext(context.Background())
	assert.ErrorIs(t, err, queue.ErrQueueEmpty)
}

func TestStorage_PendingForNote(t *testing.T) {
	s := createTestStorage(t)
	ctx := context.Background()

	opA1, err := s.Enqueue(ctx, createOp(models.OpCreate, "a"))
	require.NoError(t, err)
	_, err = s.Enqueue(ctx, createOp(models.OpCreate, "b"))
	require.NoError(t, err)
	opA2, err := s.Enqueue(ctx, createOp(models.OpUpdate, "a"))
	require.NoError(t, err)

	ops, err := s.PendingForNote(ctx, "a")
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, opA1, ops[0].ID)
	assert.Equal(t, opA2, ops[1].ID)
}

func TestStorage_Remove(t *testing.T) {
	s := createTestStorage(t)
	ctx := context.Background()

	id, err := s.Enqueue(ctx, createOp(models.OpCreate, "n1"))
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, id))

	ops, err := s.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)

	err = s.Remove(ctx, id)
	assert.ErrorIs(t, err, queue.ErrOperationNotFound)
}

func TestStorage_MarkFailed(t *testing.T) {
	s := createTestStorage(t)
	ctx := context.Background()

	id, err := s.Enqueue(ctx, createOp(models.OpUpdate, "n1"))
	require.NoError(t, err)

	require.NoError(t, s.MarkFailed(ctx, id, "version conflict", true))

	// Parked, not pending, not dropped.
	ops, err := s.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)

	failed, err := s.Failed(ctx)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, id, failed[0].Operation.ID)
	assert.Equal(t, "version conflict", failed[0].Reason)
	assert.True(t, failed[0].Conflict)
	assert.False(t, failed[0].FailedAt.IsZero())
}

func TestStorage_Attempts(t *testing.T) {
	s := createTestStorage(t)
	ctx := context.Background()

	id, err := s.Enqueue(ctx, createOp(models.OpCreate, "n1"))
	require.NoError(t, err)

	// Zero record before any attempt.
	rec, err := s.Attempts(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Count)

	now := time.Now()
	next := now.Add(time.Second)
	require.NoError(t, s.RecordAttempt(ctx, id, queue.NewAttemptRecord(rec, now, next, "boom")))

	rec, err = s.Attempts(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Count)
	assert.Equal(t, "boom", rec.LastError)
	assert.WithinDuration(t, next, rec.NextAttemptAt, time.Millisecond)

	// Attempt record goes away with the operation.
	require.NoError(t, s.Remove(ctx, id))
	rec, err = s.Attempts(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Count)
}

func TestStorage_Stats(t *testing.T) {
	s := createTestStorage(t)
	ctx := context.Background()

	_, err := s.Enqueue(ctx, createOp(models.OpCreate, "n1"))
	require.NoError(t, err)
	conflictID, err := s.Enqueue(ctx, createOp(models.OpUpdate, "n2"))
	require.NoError(t, err)
	failedID, err := s.Enqueue(ctx, createOp(models.OpDelete, "n3"))
	require.NoError(t, err)

	require.NoError(t, s.MarkFailed(ctx, conflictID, "version conflict", true))
	require.NoError(t, s.MarkFailed(ctx, failedID, "note not found", false))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 2, stats.Failed)
	assert.Equal(t, 1, stats.Conflicts)
}

func TestStorage_DurableAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "queue.db")
	ctx := context.Background()

	s, err := New(ctx, dbPath)
	require.NoError(t, err)

	id, err := s.Enqueue(ctx, createOp(models.OpCreate, "n1"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// A restart must not drop pending mutations.
	s, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer s.Close()

	ops, err := s.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, id, ops[0].ID)
}
