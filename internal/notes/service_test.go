package notes

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ainotebuddy/notekeeper/internal/analysis"
	"github.com/ainotebuddy/notekeeper/internal/models"
	"github.com/ainotebuddy/notekeeper/internal/netmon"
	"github.com/ainotebuddy/notekeeper/internal/queue/boltdb"
	"github.com/ainotebuddy/notekeeper/internal/store"
	"github.com/ainotebuddy/notekeeper/internal/store/sqlite"
	notesync "github.com/ainotebuddy/notekeeper/internal/sync"
	"github.com/ainotebuddy/notekeeper/internal/vault"
)

type testEnv struct {
	svc     Service
	coord   *notesync.Coordinator
	notes   *sqlite.Storage
	queue   *boltdb.Storage
	monitor *netmon.Manual
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	noteStore, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, noteStore.Close()) })

	q, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "queue.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, q.Close()) })

	monitor := netmon.NewManual(netmon.NetworkState{Connected: true})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	analyzer := analysis.NewHeuristic()
	locks := notesync.NewKeyedMutex()

	coord := notesync.NewCoordinator(
		notesync.Config{ForceSyncTimeout: 5 * time.Second, ForceSyncPoll: 10 * time.Millisecond},
		noteStore, q, q, monitor, analyzer, locks, logger)

	svc := NewService(noteStore, q, q, monitor, analyzer, coord,
		locks, notesync.NewLogicalClock(), logger)

	return &testEnv{svc: svc, coord: coord, notes: noteStore, queue: q, monitor: monitor}
}

func (e *testEnv) goOffline() { e.monitor.Set(netmon.NetworkState{Connected: false}) }
func (e *testEnv) goOnline()  { e.monitor.Set(netmon.NetworkState{Connected: true}) }

func TestService_CreateNote_Online(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.svc.CreateNote(ctx, &models.Note{Title: "shopping", Body: "milk, eggs"})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeSuccess, res.Outcome)
	require.NotEmpty(t, res.NoteID)

	note, err := env.svc.GetNote(ctx, res.NoteID)
	require.NoError(t, err)
	assert.Equal(t, "shopping", note.Title)
	assert.Equal(t, models.InitialVersion, note.Version)

	info, err := env.svc.SyncStatus(ctx, res.NoteID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSynced, info.Status)
	assert.False(t, info.HasPendingOperations)
}

func TestService_CreateNote_OfflineQueues(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.goOffline()

	res, err := env.svc.CreateNote(ctx, &models.Note{Title: "draft", Body: "text"})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeQueued, res.Outcome)
	assert.True(t, res.Queued())
	assert.NotEmpty(t, res.OperationID)

	// Not in the store yet.
	_, err = env.svc.GetNote(ctx, res.NoteID)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)

	ops, err := env.queue.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, models.OpCreate, ops[0].Kind)

	info, err := env.svc.SyncStatus(ctx, res.NoteID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusPending, info.Status)
	assert.Equal(t, 1, info.PendingOperationCount)
}

func TestService_CreateNote_AutoCorrection(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Empty title is invalid but correctable from the body.
	res, err := env.svc.CreateNote(ctx, &models.Note{
		Body: "  \nFirst line of body\nmore text",
		Tags: []string{"Mixed Case Tag"},
	})
	require.NoError(t, err)
	require.Equal(t, models.OutcomeSuccess, res.Outcome)

	note, err := env.svc.GetNote(ctx, res.NoteID)
	require.NoError(t, err)
	assert.Equal(t, "First line of body", note.Title)
	assert.Equal(t, []string{"mixed-case-tag"}, note.Tags)
}

func TestService_CreateNote_UncorrectableRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.svc.CreateNote(ctx, &models.Note{
		Title: "big",
		Body:  strings.Repeat("a", 1<<20+1),
	})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeFailure, res.Outcome)
	assert.Contains(t, res.Message, "body")

	// Rejected notes reach neither the store nor the queue.
	notes, err := env.svc.ListNotes(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, notes)
	ops, err := env.queue.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestService_UpdateNote_Online(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateNote(ctx, &models.Note{Title: "v1", Body: "b"})
	require.NoError(t, err)

	res, err := env.svc.UpdateNote(ctx, created.NoteID, []models.FieldChange{
		models.TitleChange("v2"),
		models.PinnedChange(true),
	})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeSuccess, res.Outcome)

	note, err := env.svc.GetNote(ctx, created.NoteID)
	require.NoError(t, err)
	assert.Equal(t, "v2", note.Title)
	assert.True(t, note.Pinned)
	assert.Equal(t, models.InitialVersion+1, note.Version)
}

func TestService_UpdateNote_OfflineQueuesWithBaseVersion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateNote(ctx, &models.Note{Title: "v1", Body: "b"})
	require.NoError(t, err)

	env.goOffline()
	res, err := env.svc.UpdateNote(ctx, created.NoteID, []models.FieldChange{models.TitleChange("v2")})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeQueued, res.Outcome)

	ops, err := env.queue.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, models.InitialVersion, ops[0].PreviousVersion)

	// The store is untouched until the drain.
	note, err := env.svc.GetNote(ctx, created.NoteID)
	require.NoError(t, err)
	assert.Equal(t, "v1", note.Title)
}

func TestService_UpdateNote_NoChanges(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.svc.UpdateNote(context.Background(), "some-id", nil)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeFailure, res.Outcome)
}

func TestService_UpdateNote_MissingNote(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.svc.UpdateNote(context.Background(), "ghost",
		[]models.FieldChange{models.TitleChange("x")})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeFailure, res.Outcome)
	assert.Contains(t, res.Message, "not found")
}

func TestService_UpdateNote_PendingCreateChainsOffline(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.goOffline()

	created, err := env.svc.CreateNote(ctx, &models.Note{Title: "offline note", Body: "b"})
	require.NoError(t, err)
	require.Equal(t, models.OutcomeQueued, created.Outcome)

	// Updating a note that only exists as a queued create must chain
	// onto it, based on the version the create will produce.
	updated, err := env.svc.UpdateNote(ctx, created.NoteID,
		[]models.FieldChange{models.TitleChange("edited offline")})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeQueued, updated.Outcome)

	ops, err := env.queue.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, models.InitialVersion, ops[1].PreviousVersion)

	// Back online, the whole chain drains cleanly.
	env.goOnline()
	report, err := env.svc.ForceSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Applied)
	assert.True(t, report.Success)

	note, err := env.svc.GetNote(ctx, created.NoteID)
	require.NoError(t, err)
	assert.Equal(t, "edited offline", note.Title)
	assert.Equal(t, models.InitialVersion+1, note.Version)

	info, err := env.svc.SyncStatus(ctx, created.NoteID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSynced, info.Status)
}

func TestService_UpdateNote_OnlineWithPendingOpsStillQueues(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateNote(ctx, &models.Note{Title: "v1", Body: "b"})
	require.NoError(t, err)

	env.goOffline()
	_, err = env.svc.UpdateNote(ctx, created.NoteID, []models.FieldChange{models.TitleChange("v2")})
	require.NoError(t, err)

	// Online again, but an operation is already queued for this note;
	// applying directly would jump the queue.
	env.goOnline()
	res, err := env.svc.UpdateNote(ctx, created.NoteID, []models.FieldChange{models.TitleChange("v3")})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeQueued, res.Outcome)

	ops, err := env.queue.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	// The second update expects the version the first one will produce.
	assert.Equal(t, models.InitialVersion+1, ops[1].PreviousVersion)

	report, err := env.svc.ForceSync(ctx)
	require.NoError(t, err)
	assert.True(t, report.Success)

	note, err := env.svc.GetNote(ctx, created.NoteID)
	require.NoError(t, err)
	assert.Equal(t, "v3", note.Title)
}

func TestService_DeleteNote_Online(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateNote(ctx, &models.Note{Title: "doomed", Body: "b"})
	require.NoError(t, err)

	res, err := env.svc.DeleteNote(ctx, created.NoteID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeSuccess, res.Outcome)

	note, err := env.svc.GetNote(ctx, created.NoteID)
	require.NoError(t, err)
	assert.True(t, note.Deleted)

	// Deleting again fails cleanly.
	res, err = env.svc.DeleteNote(ctx, created.NoteID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeFailure, res.Outcome)
}

func TestService_DeleteNote_OfflineQueues(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateNote(ctx, &models.Note{Title: "doomed", Body: "b"})
	require.NoError(t, err)

	env.goOffline()
	res, err := env.svc.DeleteNote(ctx, created.NoteID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeQueued, res.Outcome)

	note, err := env.svc.GetNote(ctx, created.NoteID)
	require.NoError(t, err)
	assert.False(t, note.Deleted)

	env.goOnline()
	report, err := env.svc.ForceSync(ctx)
	require.NoError(t, err)
	assert.True(t, report.Success)

	note, err = env.svc.GetNote(ctx, created.NoteID)
	require.NoError(t, err)
	assert.True(t, note.Deleted)
}

func TestService_UpdateDeletedNoteFails(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateNote(ctx, &models.Note{Title: "doomed", Body: "b"})
	require.NoError(t, err)
	_, err = env.svc.DeleteNote(ctx, created.NoteID)
	require.NoError(t, err)

	res, err := env.svc.UpdateNote(ctx, created.NoteID,
		[]models.FieldChange{models.TitleChange("zombie")})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeFailure, res.Outcome)
}

func TestService_RequestAnalysis_Online(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateNote(ctx, &models.Note{
		Title: "groceries",
		Body:  "grocery grocery list apples bananas apples",
	})
	require.NoError(t, err)

	res, err := env.svc.RequestAnalysis(ctx, created.NoteID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeSuccess, res.Outcome)

	note, err := env.svc.GetNote(ctx, created.NoteID)
	require.NoError(t, err)
	assert.Contains(t, note.SuggestedTags, "grocery")
}

func TestService_RequestAnalysis_OfflineQueues(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateNote(ctx, &models.Note{
		Title: "groceries",
		Body:  "grocery grocery list apples bananas apples",
	})
	require.NoError(t, err)

	env.goOffline()
	res, err := env.svc.RequestAnalysis(ctx, created.NoteID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeQueued, res.Outcome)

	env.goOnline()
	report, err := env.svc.ForceSync(ctx)
	require.NoError(t, err)
	assert.True(t, report.Success)

	note, err := env.svc.GetNote(ctx, created.NoteID)
	require.NoError(t, err)
	assert.Contains(t, note.SuggestedTags, "grocery")
}

func TestService_VaultNote(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Locked vault rejects vault notes.
	res, err := env.svc.CreateNote(ctx, &models.Note{Title: "secret", Body: "hidden text", InVault: true})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeFailure, res.Outcome)
	assert.Contains(t, res.Message, "locked")

	salt, err := vault.GenerateSalt()
	require.NoError(t, err)
	key, err := vault.DeriveKey("passphrase", salt)
	require.NoError(t, err)
	cipher, err := vault.NewCipher(key)
	require.NoError(t, err)
	env.svc.UnlockVault(cipher)

	res, err = env.svc.CreateNote(ctx, &models.Note{Title: "secret", Body: "hidden text", InVault: true})
	require.NoError(t, err)
	require.Equal(t, models.OutcomeSuccess, res.Outcome)

	// Unlocked reads see plaintext.
	note, err := env.svc.GetNote(ctx, res.NoteID)
	require.NoError(t, err)
	assert.Equal(t, "hidden text", note.Body)

	// The stored body is sealed.
	raw, err := env.notes.Get(ctx, res.NoteID)
	require.NoError(t, err)
	assert.NotEqual(t, "hidden text", raw.Body)

	// Locked reads see the sealed body.
	env.svc.LockVault()
	note, err = env.svc.GetNote(ctx, res.NoteID)
	require.NoError(t, err)
	assert.NotEqual(t, "hidden text", note.Body)
}

func TestService_VaultNote_UpdateSealsBody(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	salt, err := vault.GenerateSalt()
	require.NoError(t, err)
	key, err := vault.DeriveKey("passphrase", salt)
	require.NoError(t, err)
	cipher, err := vault.NewCipher(key)
	require.NoError(t, err)
	env.svc.UnlockVault(cipher)

	created, err := env.svc.CreateNote(ctx, &models.Note{Title: "secret", Body: "one", InVault: true})
	require.NoError(t, err)

	res, err := env.svc.UpdateNote(ctx, created.NoteID, []models.FieldChange{models.BodyChange("two")})
	require.NoError(t, err)
	require.Equal(t, models.OutcomeSuccess, res.Outcome)

	note, err := env.svc.GetNote(ctx, created.NoteID)
	require.NoError(t, err)
	assert.Equal(t, "two", note.Body)

	raw, err := env.notes.Get(ctx, created.NoteID)
	require.NoError(t, err)
	assert.NotEqual(t, "two", raw.Body)
}

func TestService_VaultNote_AnalysisRequiresUnlockedOnline(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	salt, err := vault.GenerateSalt()
	require.NoError(t, err)
	key, err := vault.DeriveKey("passphrase", salt)
	require.NoError(t, err)
	cipher, err := vault.NewCipher(key)
	require.NoError(t, err)
	env.svc.UnlockVault(cipher)

	created, err := env.svc.CreateNote(ctx, &models.Note{
		Title: "secret", Body: "grocery grocery list apples", InVault: true,
	})
	require.NoError(t, err)

	// Offline: vault analysis is refused, never queued with plaintext.
	env.goOffline()
	res, err := env.svc.RequestAnalysis(ctx, created.NoteID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeFailure, res.Outcome)
	ops, err := env.queue.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)

	env.goOnline()
	res, err = env.svc.RequestAnalysis(ctx, created.NoteID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeSuccess, res.Outcome)

	note, err := env.svc.GetNote(ctx, created.NoteID)
	require.NoError(t, err)
	assert.Contains(t, note.SuggestedTags, "grocery")
}

func TestService_CreateNotes_Batch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	batch, err := env.svc.CreateNotes(ctx, []*models.Note{
		{Title: "ok", Body: "b"},
		{Title: "bad", Body: strings.Repeat("a", 1<<20+1)},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, batch.Succeeded)
	assert.Equal(t, 1, batch.Failed)
	assert.Zero(t, batch.Queued)
	require.Len(t, batch.Results, 2)
}

func TestService_QueueStats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.goOffline()

	_, err := env.svc.CreateNote(ctx, &models.Note{Title: "a", Body: "b"})
	require.NoError(t, err)
	_, err = env.svc.CreateNote(ctx, &models.Note{Title: "c", Body: "d"})
	require.NoError(t, err)

	stats, err := env.svc.QueueStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Pending)
	assert.Zero(t, stats.Failed)
}
