// Package sync drains the durable operation queue into the note store.
// The coordinator replays operations in FIFO order, detects version
// conflicts, parks failures and keeps the per-note sync state tracker
// current. Nothing here talks to the network directly; connectivity is a
// policy input from the netmon package.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"

	"github.com/ainotebuddy/notekeeper/internal/analysis"
	"github.com/ainotebuddy/notekeeper/internal/models"
	"github.com/ainotebuddy/notekeeper/internal/netmon"
	"github.com/ainotebuddy/notekeeper/internal/queue"
	"github.com/ainotebuddy/notekeeper/internal/store"
)

// In-process retry of a single apply before it counts as a failed
// attempt. Covers short-lived store contention without touching the
// cross-drain backoff bookkeeping.
const (
	applyRetries = 2
	applyBackoff = 50 * time.Millisecond
)

var errStillPending = errors.New("operations still pending")

// Config holds coordinator tuning knobs. Zero values fall back to the
// defaults below.
type Config struct {
	// DrainInterval is how often the background supervisor attempts a
	// drain pass.
	DrainInterval time.Duration

	// MaintenanceInterval is how often sync states are reconciled with
	// the queue.
	MaintenanceInterval time.Duration

	// BackoffBase and BackoffCap bound the jittered exponential delay
	// between apply attempts of the same operation.
	BackoffBase time.Duration
	BackoffCap  time.Duration

	// MaxAttempts is the number of failed apply attempts after which an
	// operation is parked as permanently failed.
	MaxAttempts int

	// ForceSyncTimeout bounds ForceSyncAll; ForceSyncPoll is the delay
	// between its drain passes.
	ForceSyncTimeout time.Duration
	ForceSyncPoll    time.Duration
}

func (c Config) withDefaults() Config {
	if c.DrainInterval <= 0 {
		c.DrainInterval = 15 * time.Second
	}
	if c.MaintenanceInterval <= 0 {
		c.MaintenanceInterval = time.Minute
	}
	if c.BackoffBase <= 0 {
		c.BackoffBase = time.Second
	}
	if c.BackoffCap <= 0 {
		c.BackoffCap = 5 * time.Minute
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 5
	}
	if c.ForceSyncTimeout <= 0 {
		c.ForceSyncTimeout = 30 * time.Second
	}
	if c.ForceSyncPoll <= 0 {
		c.ForceSyncPoll = 250 * time.Millisecond
	}
	return c
}

// Coordinator replays queued operations against the note store.
type Coordinator struct {
	cfg      Config
	notes    store.NoteStore
	queue    queue.OperationQueue
	states   queue.SyncStateStore
	monitor  netmon.Monitor
	analyzer analysis.Analyzer
	locks    *KeyedMutex
	logger   *slog.Logger
}

// NewCoordinator creates a coordinator. The keyed mutex is shared with
// the mutation entry point so direct applies and queue replay never race
// on the same note.
func NewCoordinator(
	cfg Config,
	notes store.NoteStore,
	opQueue queue.OperationQueue,
	states queue.SyncStateStore,
	monitor netmon.Monitor,
	analyzer analysis.Analyzer,
	locks *KeyedMutex,
	logger *slog.Logger,
) *Coordinator {
	return &Coordinator{
		cfg:      cfg.withDefaults(),
		notes:    notes,
		queue:    opQueue,
		states:   states,
		monitor:  monitor,
		analyzer: analyzer,
		locks:    locks,
		logger:   logger,
	}
}

// outcome classifies a single apply of one operation.
type outcome int

const (
	outcomeApplied outcome = iota
	outcomeConflict
	outcomePermanent
	outcomeTransient
)

// DrainOnce performs a single drain pass: walks pending operations in
// FIFO order and applies every operation that is due. Operations backing
// off, and operations behind a blocked one for the same note, are left
// in place. A WAIT recommendation skips the pass entirely.
func (c *Coordinator) DrainOnce(ctx context.Context) (*models.SyncReport, error) {
	report := &models.SyncReport{}

	rec, err := c.monitor.Recommendation(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get network recommendation: %w", err)
	}
	if rec != netmon.RecommendationProceed {
		stats, err := c.queue.Stats(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get queue stats: %w", err)
		}
		report.Pending = stats.Pending
		report.Success = stats.Pending == 0
		c.logger.Debug("Skipping drain pass, network recommends waiting",
			"pending", report.Pending)
		return report, nil
	}

	ops, err := c.queue.Pending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending operations: %w", err)
	}

	// Notes whose head operation could not be applied this pass. Later
	// operations for the same note must wait to preserve per-note order.
	blocked := make(map[string]struct{})

	for _, op := range ops {
		if ctx.Err() != nil {
			report.Pending += countRemaining(ops, op.Seq)
			return report, ctx.Err()
		}

		if _, ok := blocked[op.NoteID]; ok {
			report.Pending++
			continue
		}

		attempts, err := c.queue.Attempts(ctx, op.ID)
		if err != nil {
			c.logger.Warn("Failed to read attempt record",
				"operation_id", op.ID, "error", err)
			blocked[op.NoteID] = struct{}{}
			report.Pending++
			continue
		}
		if attempts.Count > 0 && time.Now().Before(attempts.NextAttemptAt) {
			blocked[op.NoteID] = struct{}{}
			report.Pending++
			continue
		}

		c.applyPending(ctx, op, attempts, report, blocked)
	}

	report.Success = report.Pending == 0 && report.Conflicts == 0 && report.Failed == 0
	return report, nil
}

func countRemaining(ops []*models.Operation, fromSeq uint64) int {
	n := 0
	for _, op := range ops {
		if op.Seq >= fromSeq {
			n++
		}
	}
	return n
}

// applyPending applies one due operation under the note lock and settles
// its fate: removed on success, parked on conflict or permanent failure,
// scheduled for retry on a transient one.
func (c *Coordinator) applyPending(
	ctx context.Context,
	op *models.Operation,
	attempts *models.AttemptRecord,
	report *models.SyncReport,
	blocked map[string]struct{},
) {
	unlock := c.locks.Lock(op.NoteID)
	defer unlock()

	out, reason := c.apply(ctx, op)

	switch out {
	case outcomeApplied:
		if err := c.queue.Remove(ctx, op.ID); err != nil {
			c.logger.Error("Failed to remove applied operation",
				"operation_id", op.ID, "error", err)
			blocked[op.NoteID] = struct{}{}
			report.Pending++
			return
		}
		report.Applied++
		c.afterApplied(ctx, op)

	case outcomeConflict:
		if err := c.queue.MarkFailed(ctx, op.ID, reason, true); err != nil {
			c.logger.Error("Failed to park conflicting operation",
				"operation_id", op.ID, "error", err)
			blocked[op.NoteID] = struct{}{}
			report.Pending++
			return
		}
		report.Conflicts++
		blocked[op.NoteID] = struct{}{}
		c.setState(ctx, op.NoteID, models.SyncStatusConflict, reason)
		c.logger.Warn("Operation parked on version conflict",
			"operation_id", op.ID, "note_id", op.NoteID, "reason", reason)

	case outcomePermanent:
		if err := c.queue.MarkFailed(ctx, op.ID, reason, false); err != nil {
			c.logger.Error("Failed to park failed operation",
				"operation_id", op.ID, "error", err)
			blocked[op.NoteID] = struct{}{}
			report.Pending++
			return
		}
		report.Failed++
		blocked[op.NoteID] = struct{}{}
		c.setState(ctx, op.NoteID, models.SyncStatusError, reason)
		c.logger.Warn("Operation parked as permanently failed",
			"operation_id", op.ID, "note_id", op.NoteID, "reason", reason)

	case outcomeTransient:
		blocked[op.NoteID] = struct{}{}
		if attempts.Count+1 >= c.cfg.MaxAttempts {
			if err := c.queue.MarkFailed(ctx, op.ID, reason, false); err != nil {
				c.logger.Error("Failed to park exhausted operation",
					"operation_id", op.ID, "error", err)
				report.Pending++
				return
			}
			report.Failed++
			c.setState(ctx, op.NoteID, models.SyncStatusError, reason)
			c.logger.Warn("Operation parked after exhausting retries",
				"operation_id", op.ID, "note_id", op.NoteID,
				"attempts", attempts.Count+1, "reason", reason)
			return
		}

		now := time.Now()
		next := now.Add(c.backoffDelay(attempts.Count))
		rec := queue.NewAttemptRecord(attempts, now, next, reason)
		if err := c.queue.RecordAttempt(ctx, op.ID, rec); err != nil {
			c.logger.Error("Failed to record attempt",
				"operation_id", op.ID, "error", err)
		}
		report.Pending++
		c.setState(ctx, op.NoteID, models.SyncStatusError, reason)
		c.logger.Info("Operation apply failed, will retry",
			"operation_id", op.ID, "note_id", op.NoteID,
			"attempt", rec.Count, "next_attempt_at", next, "reason", reason)
	}
}

// apply runs a single operation with a short in-process retry for
// transient store errors.
func (c *Coordinator) apply(ctx context.Context, op *models.Operation) (outcome, string) {
	var (
		out    outcome
		reason string
	)

	b := retry.WithMaxRetries(applyRetries, retry.NewExponential(applyBackoff))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		o, r, err := c.applyOnce(ctx, op)
		if err != nil {
			return retry.RetryableError(err)
		}
		out, reason = o, r
		return nil
	})
	if err != nil {
		return outcomeTransient, err.Error()
	}
	return out, reason
}

// applyOnce applies one operation to the store. A non-nil error is
// transient; conflicts and permanent failures come back in the outcome
// with a nil error.
func (c *Coordinator) applyOnce(ctx context.Context, op *models.Operation) (outcome, string, error) {
	switch op.Kind {
	case models.OpCreate:
		return c.applyCreate(ctx, op)
	case models.OpUpdate:
		return c.applyUpdate(ctx, op)
	case models.OpDelete:
		return c.applyDelete(ctx, op)
	case models.OpAnalyze:
		return c.applyAnalyze(ctx, op)
	default:
		return outcomePermanent, fmt.Sprintf("unknown operation kind: %s", op.Kind), nil
	}
}

// applyCreate is idempotent: replaying a create whose note already
// exists succeeds without touching the store.
func (c *Coordinator) applyCreate(ctx context.Context, op *models.Operation) (outcome, string, error) {
	_, err := c.notes.Get(ctx, op.NoteID)
	if err == nil {
		return outcomeApplied, "", nil
	}
	if !errors.Is(err, store.ErrNoteNotFound) {
		return outcomeTransient, "", err
	}

	n := op.Note.Clone()
	n.ID = op.NoteID
	if _, err := c.notes.Insert(ctx, n); err != nil {
		return outcomeTransient, "", err
	}
	return outcomeApplied, "", nil
}

func (c *Coordinator) applyUpdate(ctx context.Context, op *models.Operation) (outcome, string, error) {
	cur, err := c.notes.Get(ctx, op.NoteID)
	if errors.Is(err, store.ErrNoteNotFound) {
		return outcomePermanent, "note no longer exists", nil
	}
	if err != nil {
		return outcomeTransient, "", err
	}
	if cur.Deleted {
		return outcomePermanent, "note is deleted", nil
	}

	if cur.Version != op.PreviousVersion {
		reason := fmt.Sprintf("version conflict: note at version %d, operation based on version %d",
			cur.Version, op.PreviousVersion)
		return outcomeConflict, reason, nil
	}

	for _, ch := range op.Changes {
		if err := ch.Apply(cur); err != nil {
			return outcomePermanent, err.Error(), nil
		}
	}

	if _, err := c.notes.Update(ctx, cur); err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return outcomePermanent, "note no longer exists", nil
		}
		return outcomeTransient, "", err
	}
	return outcomeApplied, "", nil
}

// applyDelete is idempotent: deleting an already missing note succeeds.
func (c *Coordinator) applyDelete(ctx context.Context, op *models.Operation) (outcome, string, error) {
	err := c.notes.SoftDelete(ctx, op.NoteID)
	if err != nil && !errors.Is(err, store.ErrNoteNotFound) {
		return outcomeTransient, "", err
	}
	return outcomeApplied, "", nil
}

// applyAnalyze merges suggested tags from content analysis into the
// note. A missing note means it was deleted while the analysis waited in
// the queue; the operation is dropped as applied.
func (c *Coordinator) applyAnalyze(ctx context.Context, op *models.Operation) (outcome, string, error) {
	cur, err := c.notes.Get(ctx, op.NoteID)
	if errors.Is(err, store.ErrNoteNotFound) {
		return outcomeApplied, "", nil
	}
	if err != nil {
		return outcomeTransient, "", err
	}
	if cur.Deleted {
		return outcomeApplied, "", nil
	}

	content := op.Content
	if content == "" {
		content = cur.Body
	}

	res, err := c.analyzer.Analyze(ctx, content)
	if err != nil {
		return outcomeTransient, "", err
	}

	cur.SuggestedTags = models.MergeTags(cur.SuggestedTags, res.SuggestedTags)
	if _, err := c.notes.Update(ctx, cur); err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return outcomeApplied, "", nil
		}
		return outcomeTransient, "", err
	}
	return outcomeApplied, "", nil
}

// afterApplied refreshes the sync state once an operation has been
// removed from the queue.
func (c *Coordinator) afterApplied(ctx context.Context, op *models.Operation) {
	remaining, err := c.queue.PendingForNote(ctx, op.NoteID)
	if err != nil {
		c.logger.Warn("Failed to list remaining operations",
			"note_id", op.NoteID, "error", err)
		return
	}

	if len(remaining) > 0 {
		c.setState(ctx, op.NoteID, models.SyncStatusPending, "")
		return
	}

	// A fully drained delete ends the note's tracked life.
	if op.Kind == models.OpDelete {
		if err := c.states.Delete(ctx, op.NoteID); err != nil {
			c.logger.Warn("Failed to delete sync state",
				"note_id", op.NoteID, "error", err)
		}
		return
	}

	c.setState(ctx, op.NoteID, models.SyncStatusSynced, "")
}

// setState updates the tracked state of a note, recomputing its pending
// count from the queue.
func (c *Coordinator) setState(ctx context.Context, noteID string, status models.SyncStatus, lastErr string) {
	st, err := c.states.Get(ctx, noteID)
	if err != nil {
		c.logger.Warn("Failed to get sync state", "note_id", noteID, "error", err)
		st = &models.SyncState{NoteID: noteID}
	}

	pending, err := c.queue.PendingForNote(ctx, noteID)
	if err != nil {
		c.logger.Warn("Failed to count pending operations",
			"note_id", noteID, "error", err)
	} else {
		st.PendingOperations = len(pending)
	}

	st.Status = status
	st.LastError = lastErr
	if status == models.SyncStatusSynced {
		st.LastSyncedAt = time.Now()
		st.LastError = ""
	}

	if err := c.states.Put(ctx, st); err != nil {
		c.logger.Warn("Failed to save sync state", "note_id", noteID, "error", err)
	}
}

// backoffDelay computes the jittered exponential delay before attempt
// count+1. Jitter of +/-25% spreads retries of operations that were
// queued together.
func (c *Coordinator) backoffDelay(count int) time.Duration {
	d := c.cfg.BackoffBase
	for i := 0; i < count && d < c.cfg.BackoffCap; i++ {
		d *= 2
	}
	if d > c.cfg.BackoffCap {
		d = c.cfg.BackoffCap
	}

	q := int64(d / 4)
	if q <= 0 {
		return d
	}
	return d + time.Duration(rand.Int64N(2*q+1)-q)
}

// Status builds the caller-facing sync status of one note.
func (c *Coordinator) Status(ctx context.Context, noteID string) (*models.SyncStatusInfo, error) {
	st, err := c.states.Get(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sync state: %w", err)
	}

	pending, err := c.queue.PendingForNote(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending operations: %w", err)
	}

	failed, err := c.queue.Failed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list parked operations: %w", err)
	}
	hasConflicts := false
	for _, f := range failed {
		if f.Conflict && f.Operation.NoteID == noteID {
			hasConflicts = true
			break
		}
	}

	return &models.SyncStatusInfo{
		LastSyncedAt:          st.LastSyncedAt,
		NoteID:                noteID,
		Status:                st.Status,
		LastError:             st.LastError,
		PendingOperationCount: len(pending),
		HasPendingOperations:  len(pending) > 0,
		HasConflicts:          hasConflicts,
	}, nil
}

// ForceSyncAll drains the queue repeatedly until it is empty or the
// configured timeout expires. The queue is left intact on timeout; the
// report says what was applied and what remains.
func (c *Coordinator) ForceSyncAll(ctx context.Context) (*models.SyncReport, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.ForceSyncTimeout)
	defer cancel()

	total := &models.SyncReport{}

	b := retry.NewConstant(c.cfg.ForceSyncPoll)
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		rep, err := c.DrainOnce(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}

		total.Applied += rep.Applied
		total.Conflicts += rep.Conflicts
		total.Failed += rep.Failed
		total.Pending = rep.Pending

		if rep.Pending > 0 {
			return retry.RetryableError(errStillPending)
		}
		return nil
	})
	if err != nil {
		// The constant backoff only stops when the context ends.
		total.TimedOut = true
		c.logger.Warn("Force sync ended with operations still pending",
			"pending", total.Pending, "error", err)
	}

	total.Success = !total.TimedOut && total.Pending == 0 &&
		total.Conflicts == 0 && total.Failed == 0
	return total, nil
}

// Run starts the background supervisor: a periodic drain loop and a
// periodic state reconciliation loop. A failure inside one pass is
// logged and isolated; it never stops the other loop. Run returns when
// the context is cancelled.
func (c *Coordinator) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return c.drainLoop(ctx) })
	g.Go(func() error { return c.maintenanceLoop(ctx) })

	return g.Wait()
}

func (c *Coordinator) drainLoop(ctx context.Context) error {
	ticker := time.NewTicker(c.cfg.DrainInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.safeDrain(ctx)
		}
	}
}

// safeDrain runs one drain pass with panic isolation.
func (c *Coordinator) safeDrain(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Drain pass panicked", "panic", r)
		}
	}()

	report, err := c.DrainOnce(ctx)
	if err != nil {
		c.logger.Error("Drain pass failed", "error", err)
		return
	}
	if report.Applied > 0 || report.Conflicts > 0 || report.Failed > 0 {
		c.logger.Info("Drain pass finished",
			"applied", report.Applied,
			"conflicts", report.Conflicts,
			"failed", report.Failed,
			"pending", report.Pending)
	}
}

func (c *Coordinator) maintenanceLoop(ctx context.Context) error {
	ticker := time.NewTicker(c.cfg.MaintenanceInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.safeReconcile(ctx)
		}
	}
}

func (c *Coordinator) safeReconcile(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("State reconciliation panicked", "panic", r)
		}
	}()

	if err := c.reconcileStates(ctx); err != nil {
		c.logger.Error("State reconciliation failed", "error", err)
	}

	stats, err := c.queue.Stats(ctx)
	if err != nil {
		c.logger.Warn("Failed to compute queue stats", "error", err)
		return
	}
	c.logger.Info("Queue stats",
		"pending", stats.Pending,
		"failed", stats.Failed,
		"conflicts", stats.Conflicts)
}

// reconcileStates repairs tracked sync states against the queue. Drains
// keep states current on the happy path; reconciliation catches up after
// a crash mid-drain.
func (c *Coordinator) reconcileStates(ctx context.Context) error {
	states, err := c.states.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sync states: %w", err)
	}

	failed, err := c.queue.Failed(ctx)
	if err != nil {
		return fmt.Errorf("failed to list parked operations: %w", err)
	}
	conflicted := make(map[string]struct{})
	for _, f := range failed {
		if f.Conflict {
			conflicted[f.Operation.NoteID] = struct{}{}
		}
	}

	for _, st := range states {
		pending, err := c.queue.PendingForNote(ctx, st.NoteID)
		if err != nil {
			c.logger.Warn("Failed to count pending operations",
				"note_id", st.NoteID, "error", err)
			continue
		}

		updated := *st
		updated.PendingOperations = len(pending)
		if _, ok := conflicted[st.NoteID]; ok {
			updated.Status = models.SyncStatusConflict
		} else if len(pending) > 0 && updated.Status == models.SyncStatusSynced {
			updated.Status = models.SyncStatusPending
		}

		if updated != *st {
			if err := c.states.Put(ctx, &updated); err != nil {
				c.logger.Warn("Failed to save sync state",
					"note_id", st.NoteID, "error", err)
			}
		}
	}

	return nil
}
