// Package notes is the mutation entry point. Every note mutation goes
// through here: the request is validated, auto-corrected at most once,
// then either applied to the store directly or queued for a later drain
// depending on the network recommendation and the note's pending queue.
package notes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	gosync "sync"
	"time"

	"github.com/google/uuid"

	"github.com/ainotebuddy/notekeeper/internal/analysis"
	"github.com/ainotebuddy/notekeeper/internal/models"
	"github.com/ainotebuddy/notekeeper/internal/netmon"
	"github.com/ainotebuddy/notekeeper/internal/queue"
	"github.com/ainotebuddy/notekeeper/internal/store"
	notesync "github.com/ainotebuddy/notekeeper/internal/sync"
	"github.com/ainotebuddy/notekeeper/internal/validation"
	"github.com/ainotebuddy/notekeeper/internal/vault"
)

//go:generate moq -out service_mock.go . Service

// Service is the caller-facing note API. Mutations return a
// MutationResult whose outcome is success, queued or failure; an error
// return means the request could not be handled at all.
type Service interface {
	// CreateNote validates and persists or queues a new note.
	CreateNote(ctx context.Context, note *models.Note) (*models.MutationResult, error)

	// CreateNotes creates several notes, one result per input.
	CreateNotes(ctx context.Context, notes []*models.Note) (*models.BatchResult, error)

	// UpdateNote applies field changes to a note.
	UpdateNote(ctx context.Context, noteID string, changes []models.FieldChange) (*models.MutationResult, error)

	// DeleteNote soft-deletes a note.
	DeleteNote(ctx context.Context, noteID string) (*models.MutationResult, error)

	// RequestAnalysis runs or queues content analysis for a note.
	RequestAnalysis(ctx context.Context, noteID string) (*models.MutationResult, error)

	// GetNote returns a note by id, with the vault body decrypted when
	// the vault is unlocked.
	GetNote(ctx context.Context, noteID string) (*models.Note, error)

	// ListNotes returns all notes.
	ListNotes(ctx context.Context, includeDeleted bool) ([]*models.Note, error)

	// SyncStatus returns the sync status of one note.
	SyncStatus(ctx context.Context, noteID string) (*models.SyncStatusInfo, error)

	// QueueStats returns aggregate queue statistics.
	QueueStats(ctx context.Context) (*models.QueueStats, error)

	// ForceSync drains the queue within a bounded wait.
	ForceSync(ctx context.Context) (*models.SyncReport, error)

	// UnlockVault installs the cipher for vault note bodies.
	UnlockVault(cipher *vault.Cipher)

	// LockVault removes the vault cipher.
	LockVault()
}

type service struct {
	notes    store.NoteStore
	queue    queue.OperationQueue
	states   queue.SyncStateStore
	monitor  netmon.Monitor
	analyzer analysis.Analyzer
	coord    *notesync.Coordinator
	locks    *notesync.KeyedMutex
	clock    *notesync.LogicalClock
	logger   *slog.Logger

	cipherMu gosync.RWMutex
	cipher   *vault.Cipher
}

// NewService creates the mutation entry point. The keyed mutex and the
// clock must be the same instances the coordinator uses.
func NewService(
	notes store.NoteStore,
	opQueue queue.OperationQueue,
	states queue.SyncStateStore,
	monitor netmon.Monitor,
	analyzer analysis.Analyzer,
	coord *notesync.Coordinator,
	locks *notesync.KeyedMutex,
	clock *notesync.LogicalClock,
	logger *slog.Logger,
) Service {
	return &service{
		notes:    notes,
		queue:    opQueue,
		states:   states,
		monitor:  monitor,
		analyzer: analyzer,
		coord:    coord,
		locks:    locks,
		clock:    clock,
		logger:   logger,
	}
}

// UnlockVault implements Service.
func (s *service) UnlockVault(cipher *vault.Cipher) {
	s.cipherMu.Lock()
	defer s.cipherMu.Unlock()
	s.cipher = cipher
}

// LockVault implements Service.
func (s *service) LockVault() {
	s.cipherMu.Lock()
	defer s.cipherMu.Unlock()
	s.cipher = nil
}

func (s *service) vaultCipher() *vault.Cipher {
	s.cipherMu.RLock()
	defer s.cipherMu.RUnlock()
	return s.cipher
}

func failure(noteID, message string) *models.MutationResult {
	return &models.MutationResult{Outcome: models.OutcomeFailure, NoteID: noteID, Message: message}
}

func success(noteID, message string) *models.MutationResult {
	return &models.MutationResult{Outcome: models.OutcomeSuccess, NoteID: noteID, Message: message}
}

func queuedResult(noteID, opID, message string) *models.MutationResult {
	return &models.MutationResult{
		Outcome:     models.OutcomeQueued,
		NoteID:      noteID,
		OperationID: opID,
		Message:     message,
	}
}

// validateNote validates a note, applying the auto-corrections exactly
// once. Returns the note to persist or an error describing why the
// mutation must be rejected.
func validateNote(n *models.Note) (*models.Note, error) {
	res := validation.ValidateNote(n)
	if res.Valid {
		return n, nil
	}

	fixed, ok := validation.ApplyCorrections(n, res.Suggestions)
	if !ok {
		return nil, fmt.Errorf("note failed validation: %s", strings.Join(res.Errors, "; "))
	}
	return fixed, nil
}

// shouldProceed consults the network monitor. Any monitor error counts
// as WAIT: queueing is always safe, a blind direct apply is not.
func (s *service) shouldProceed(ctx context.Context) bool {
	rec, err := s.monitor.Recommendation(ctx)
	if err != nil {
		s.logger.Warn("Failed to get network recommendation, queueing", "error", err)
		return false
	}
	return rec == netmon.RecommendationProceed
}

// CreateNote implements Service.
func (s *service) CreateNote(ctx context.Context, note *models.Note) (*models.MutationResult, error) {
	if note == nil {
		return nil, fmt.Errorf("note is nil")
	}

	fixed, err := validateNote(note)
	if err != nil {
		return failure(note.ID, err.Error()), nil
	}

	n := fixed.Clone()
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	now := time.Now()
	n.CreatedAt = now
	n.UpdatedAt = now
	n.Version = models.InitialVersion

	if n.InVault {
		c := s.vaultCipher()
		if c == nil {
			return failure(n.ID, "vault is locked"), nil
		}
		if n.Body != "" {
			sealed, err := c.SealString(n.Body)
			if err != nil {
				return nil, fmt.Errorf("failed to seal note body: %w", err)
			}
			n.Body = sealed
		}
	}

	unlock := s.locks.Lock(n.ID)
	defer unlock()

	if s.shouldProceed(ctx) {
		if _, err := s.notes.Insert(ctx, n); err == nil {
			s.setState(ctx, n.ID, models.SyncStatusSynced, "")
			s.logger.Info("Note created", "note_id", n.ID)
			return success(n.ID, "note created"), nil
		} else {
			s.logger.Warn("Direct create failed, queueing", "note_id", n.ID, "error", err)
		}
	}

	opID, err := s.queue.Enqueue(ctx, &models.Operation{
		Kind:      models.OpCreate,
		NoteID:    n.ID,
		Timestamp: s.clock.Tick(),
		Note:      n,
		ClientRef: uuid.New().String(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue create: %w", err)
	}

	s.setState(ctx, n.ID, models.SyncStatusPending, "")
	s.logger.Info("Note creation queued", "note_id", n.ID, "operation_id", opID)
	return queuedResult(n.ID, opID, "note creation queued"), nil
}

// CreateNotes implements Service.
func (s *service) CreateNotes(ctx context.Context, notes []*models.Note) (*models.BatchResult, error) {
	batch := &models.BatchResult{}
	for _, n := range notes {
		res, err := s.CreateNote(ctx, n)
		if err != nil {
			return batch, err
		}
		batch.Add(*res)
	}
	return batch, nil
}

// UpdateNote implements Service.
func (s *service) UpdateNote(ctx context.Context, noteID string, changes []models.FieldChange) (*models.MutationResult, error) {
	if noteID == "" {
		return nil, fmt.Errorf("note id is empty")
	}
	if len(changes) == 0 {
		return failure(noteID, "no field changes"), nil
	}

	unlock := s.locks.Lock(noteID)
	defer unlock()

	base, pendingOps, inStore, err := s.resolveNote(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return failure(noteID, "note not found"), nil
	}
	if base.Deleted {
		return failure(noteID, "note is deleted"), nil
	}

	// Validate the note as it would look after the changes. The sealed
	// body of a vault note is not the plaintext being validated; only a
	// body change carries plaintext worth checking.
	preview := base.Clone()
	if base.InVault {
		preview.Body = ""
	}
	for _, ch := range changes {
		if err := ch.Apply(preview); err != nil {
			return failure(noteID, err.Error()), nil
		}
	}
	fixed, err := validateNote(preview)
	if err != nil {
		return failure(noteID, err.Error()), nil
	}
	changes = rebuildChanges(changes, fixed)

	if base.InVault {
		changes, err = s.sealBodyChanges(changes)
		if err != nil {
			return failure(noteID, err.Error()), nil
		}
	}

	// A direct apply is only allowed when nothing is queued for the
	// note; jumping ahead of pending operations would reorder them.
	if inStore && len(pendingOps) == 0 && s.shouldProceed(ctx) {
		cur := base.Clone()
		for _, ch := range changes {
			if err := ch.Apply(cur); err != nil {
				return failure(noteID, err.Error()), nil
			}
		}
		if v, err := s.notes.Update(ctx, cur); err == nil {
			s.setState(ctx, noteID, models.SyncStatusSynced, "")
			s.logger.Info("Note updated", "note_id", noteID, "version", v)
			return success(noteID, "note updated"), nil
		} else if errors.Is(err, store.ErrNoteNotFound) {
			return failure(noteID, "note not found"), nil
		} else {
			s.logger.Warn("Direct update failed, queueing", "note_id", noteID, "error", err)
		}
	}

	opID, err := s.queue.Enqueue(ctx, &models.Operation{
		Kind:            models.OpUpdate,
		NoteID:          noteID,
		Timestamp:       s.clock.Tick(),
		Changes:         changes,
		PreviousVersion: effectiveVersion(base, inStore, pendingOps),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue update: %w", err)
	}

	s.setState(ctx, noteID, models.SyncStatusPending, "")
	s.logger.Info("Note update queued", "note_id", noteID, "operation_id", opID)
	return queuedResult(noteID, opID, "note update queued"), nil
}

// DeleteNote implements Service.
func (s *service) DeleteNote(ctx context.Context, noteID string) (*models.MutationResult, error) {
	if noteID == "" {
		return nil, fmt.Errorf("note id is empty")
	}

	unlock := s.locks.Lock(noteID)
	defer unlock()

	base, pendingOps, inStore, err := s.resolveNote(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return failure(noteID, "note not found"), nil
	}
	if base.Deleted {
		return failure(noteID, "note is already deleted"), nil
	}

	if inStore && len(pendingOps) == 0 && s.shouldProceed(ctx) {
		switch err := s.notes.SoftDelete(ctx, noteID); {
		case err == nil:
			if err := s.states.Delete(ctx, noteID); err != nil {
				s.logger.Warn("Failed to delete sync state", "note_id", noteID, "error", err)
			}
			s.logger.Info("Note deleted", "note_id", noteID)
			return success(noteID, "note deleted"), nil
		case errors.Is(err, store.ErrNoteNotFound):
			return failure(noteID, "note not found"), nil
		default:
			s.logger.Warn("Direct delete failed, queueing", "note_id", noteID, "error", err)
		}
	}

	opID, err := s.queue.Enqueue(ctx, &models.Operation{
		Kind:       models.OpDelete,
		NoteID:     noteID,
		Timestamp:  s.clock.Tick(),
		SoftDelete: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue delete: %w", err)
	}

	s.setState(ctx, noteID, models.SyncStatusPending, "")
	s.logger.Info("Note deletion queued", "note_id", noteID, "operation_id", opID)
	return queuedResult(noteID, opID, "note deletion queued"), nil
}

// RequestAnalysis implements Service.
func (s *service) RequestAnalysis(ctx context.Context, noteID string) (*models.MutationResult, error) {
	if noteID == "" {
		return nil, fmt.Errorf("note id is empty")
	}

	unlock := s.locks.Lock(noteID)
	defer unlock()

	base, pendingOps, inStore, err := s.resolveNote(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return failure(noteID, "note not found"), nil
	}
	if base.Deleted {
		return failure(noteID, "note is deleted"), nil
	}

	content := base.Body
	if base.InVault {
		// Queueing would persist the decrypted body next to the sealed
		// note, so vault notes are analyzed only directly.
		c := s.vaultCipher()
		if c == nil {
			return failure(noteID, "vault is locked"), nil
		}
		if !inStore || len(pendingOps) > 0 || !s.shouldProceed(ctx) {
			return failure(noteID, "vault notes are analyzed only while online with no pending operations"), nil
		}
		if content != "" {
			content, err = c.OpenString(content)
			if err != nil {
				return nil, fmt.Errorf("failed to open note body: %w", err)
			}
		}
	}

	if inStore && len(pendingOps) == 0 && s.shouldProceed(ctx) {
		res, err := s.analyzer.Analyze(ctx, content)
		if err == nil {
			cur := base.Clone()
			cur.SuggestedTags = models.MergeTags(cur.SuggestedTags, res.SuggestedTags)
			if _, err := s.notes.Update(ctx, cur); err == nil {
				s.setState(ctx, noteID, models.SyncStatusSynced, "")
				s.logger.Info("Note analyzed", "note_id", noteID, "suggested_tags", len(res.SuggestedTags))
				return success(noteID, "note analyzed"), nil
			}
			s.logger.Warn("Failed to save analysis results", "note_id", noteID, "error", err)
		} else {
			s.logger.Warn("Direct analysis failed", "note_id", noteID, "error", err)
		}
		if base.InVault {
			return failure(noteID, "analysis failed"), nil
		}
	}

	opID, err := s.queue.Enqueue(ctx, &models.Operation{
		Kind:      models.OpAnalyze,
		NoteID:    noteID,
		Timestamp: s.clock.Tick(),
		Content:   content,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue analysis: %w", err)
	}

	s.setState(ctx, noteID, models.SyncStatusPending, "")
	s.logger.Info("Note analysis queued", "note_id", noteID, "operation_id", opID)
	return queuedResult(noteID, opID, "note analysis queued"), nil
}

// GetNote implements Service.
func (s *service) GetNote(ctx context.Context, noteID string) (*models.Note, error) {
	n, err := s.notes.Get(ctx, noteID)
	if err != nil {
		return nil, err
	}
	return s.openVaultBody(n), nil
}

// ListNotes implements Service.
func (s *service) ListNotes(ctx context.Context, includeDeleted bool) ([]*models.Note, error) {
	list, err := s.notes.List(ctx, includeDeleted)
	if err != nil {
		return nil, err
	}
	for i, n := range list {
		list[i] = s.openVaultBody(n)
	}
	return list, nil
}

// openVaultBody decrypts the body of a vault note when the vault is
// unlocked. Locked vault notes are returned with the sealed body.
func (s *service) openVaultBody(n *models.Note) *models.Note {
	if !n.InVault || n.Body == "" {
		return n
	}
	c := s.vaultCipher()
	if c == nil {
		return n
	}
	body, err := c.OpenString(n.Body)
	if err != nil {
		s.logger.Warn("Failed to open vault note body", "note_id", n.ID, "error", err)
		return n
	}
	out := n.Clone()
	out.Body = body
	return out
}

// SyncStatus implements Service.
func (s *service) SyncStatus(ctx context.Context, noteID string) (*models.SyncStatusInfo, error) {
	return s.coord.Status(ctx, noteID)
}

// QueueStats implements Service.
func (s *service) QueueStats(ctx context.Context) (*models.QueueStats, error) {
	return s.queue.Stats(ctx)
}

// ForceSync implements Service.
func (s *service) ForceSync(ctx context.Context) (*models.SyncReport, error) {
	return s.coord.ForceSyncAll(ctx)
}

// resolveNote finds the note the mutation targets: the stored record,
// or the snapshot of a still-queued create. Returns (nil, ops, false,
// nil) when the note exists nowhere.
func (s *service) resolveNote(ctx context.Context, noteID string) (*models.Note, []*models.Operation, bool, error) {
	pendingOps, err := s.queue.PendingForNote(ctx, noteID)
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to list pending operations: %w", err)
	}

	n, err := s.notes.Get(ctx, noteID)
	if err == nil {
		return n, pendingOps, true, nil
	}
	if !errors.Is(err, store.ErrNoteNotFound) {
		return nil, nil, false, fmt.Errorf("failed to get note: %w", err)
	}

	for _, op := range pendingOps {
		if op.Kind == models.OpCreate && op.Note != nil {
			snapshot := op.Note.Clone()
			snapshot.Version = models.InitialVersion
			return snapshot, pendingOps, false, nil
		}
	}
	return nil, pendingOps, false, nil
}

// effectiveVersion predicts the note's store version at the moment the
// new operation will be applied: the base version plus one bump per
// queued operation that increments the version. With per-note FIFO
// replay this makes queued updates conflict only with writes that came
// from outside the queue.
func effectiveVersion(base *models.Note, inStore bool, pendingOps []*models.Operation) int64 {
	v := base.Version
	if !inStore {
		v = models.InitialVersion
	}
	for _, op := range pendingOps {
		switch op.Kind {
		case models.OpUpdate, models.OpDelete, models.OpAnalyze:
			v++
		}
	}
	return v
}

// rebuildChanges re-reads the changed fields from the corrected note so
// auto-corrections survive into the queued operation.
func rebuildChanges(orig []models.FieldChange, fixed *models.Note) []models.FieldChange {
	out := make([]models.FieldChange, 0, len(orig))
	for _, ch := range orig {
		switch ch.Field {
		case models.FieldTitle:
			out = append(out, models.TitleChange(fixed.Title))
		case models.FieldBody:
			out = append(out, models.BodyChange(fixed.Body))
		case models.FieldCategory:
			out = append(out, models.CategoryChange(fixed.Category))
		case models.FieldTags:
			out = append(out, models.TagsChange(fixed.Tags))
		case models.FieldPinned:
			out = append(out, models.PinnedChange(fixed.Pinned))
		case models.FieldFavorite:
			out = append(out, models.FavoriteChange(fixed.Favorite))
		case models.FieldArchived:
			out = append(out, models.ArchivedChange(fixed.Archived))
		}
	}
	return out
}

// sealBodyChanges seals the body value of body changes for vault notes.
func (s *service) sealBodyChanges(changes []models.FieldChange) ([]models.FieldChange, error) {
	c := s.vaultCipher()
	out := make([]models.FieldChange, len(changes))
	copy(out, changes)
	for i, ch := range out {
		if ch.Field != models.FieldBody || ch.String == nil || *ch.String == "" {
			continue
		}
		if c == nil {
			return nil, fmt.Errorf("vault is locked")
		}
		sealed, err := c.SealString(*ch.String)
		if err != nil {
			return nil, fmt.Errorf("failed to seal note body: %w", err)
		}
		out[i] = models.BodyChange(sealed)
	}
	return out, nil
}

// setState refreshes the tracked sync state of a note.
func (s *service) setState(ctx context.Context, noteID string, status models.SyncStatus, lastErr string) {
	st, err := s.states.Get(ctx, noteID)
	if err != nil {
		s.logger.Warn("Failed to get sync state", "note_id", noteID, "error", err)
		st = &models.SyncState{NoteID: noteID}
	}

	pending, err := s.queue.PendingForNote(ctx, noteID)
	if err != nil {
		s.logger.Warn("Failed to count pending operations", "note_id", noteID, "error", err)
	} else {
		st.PendingOperations = len(pending)
	}

	st.Status = status
	st.LastError = lastErr
	if status == models.SyncStatusSynced {
		st.LastSyncedAt = time.Now()
		st.LastError = ""
	}

	if err := s.states.Put(ctx, st); err != nil {
		s.logger.Warn("Failed to save sync state", "note_id", noteID, "error", err)
	}
}
