// Package queue defines the durable operation queue and the per-note
// sync state tracker. Pending mutations survive process restarts: an
// enqueue is committed to disk before it returns.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/ainotebuddy/notekeeper/internal/models"
)

//go:generate moq -out queue_mock.go . OperationQueue
//go:generate moq -out syncstate_mock.go . SyncStateStore

// Common queue errors.
var (
	// ErrQueueEmpty indicates that no operation is pending.
	ErrQueueEmpty = errors.New("operation queue is empty")

	// ErrOperationNotFound indicates that the operation does not exist.
	ErrOperationNotFound = errors.New("operation not found")

	// ErrStorageClosed indicates that the queue storage is closed.
	ErrStorageClosed = errors.New("storage is closed")
)

// OperationQueue is a durable, strictly append-ordered list of pending
// mutations. Replay order equals insertion order across the whole queue;
// operations are never reordered or coalesced.
type OperationQueue interface {
	// Enqueue appends an operation and returns its id.
	// Assigns the operation id and sequence; the operation is durable
	// before Enqueue returns.
	Enqueue(ctx context.Context, op *models.Operation) (string, error)

	// PeekNext returns the oldest pending operation without removing it.
	// Returns ErrQueueEmpty when nothing is pending.
	PeekNext(ctx context.Context) (*models.Operation, error)

	// Pending returns all pending operations in FIFO order.
	Pending(ctx context.Context) ([]*models.Operation, error)

	// PendingForNote returns pending operations referencing the note,
	// in their original relative order.
	PendingForNote(ctx context.Context, noteID string) ([]*models.Operation, error)

	// Remove deletes a successfully applied operation from the queue.
	Remove(ctx context.Context, id string) error

	// MarkFailed moves an operation to the failed set. Used for permanent
	// failures and version conflicts; parked operations are not replayed
	// and are never silently dropped.
	MarkFailed(ctx context.Context, id, reason string, conflict bool) error

	// Failed returns all parked operations.
	Failed(ctx context.Context) ([]*models.FailedOperation, error)

	// Attempts returns retry bookkeeping for a pending operation.
	// Returns a zero record when no attempt has been made yet.
	Attempts(ctx context.Context, id string) (*models.AttemptRecord, error)

	// RecordAttempt stores retry bookkeeping after a failed apply attempt.
	RecordAttempt(ctx context.Context, id string, rec *models.AttemptRecord) error

	// Stats recomputes aggregate queue statistics.
	Stats(ctx context.Context) (*models.QueueStats, error)
}

// SyncStateStore tracks per-note sync state. Records are created lazily
// on a note's first mutation and removed only when the note is deleted
// and fully drained.
type SyncStateStore interface {
	// Get returns the sync state for a note. Returns a record with
	// SyncStatusUnknown when the note has never been tracked.
	Get(ctx context.Context, noteID string) (*models.SyncState, error)

	// Put stores the sync state for a note.
	Put(ctx context.Context, state *models.SyncState) error

	// Delete removes the sync state record for a note.
	Delete(ctx context.Context, noteID string) error

	// All returns every tracked sync state.
	All(ctx context.Context) ([]*models.SyncState, error)
}

// NewAttemptRecord builds the bookkeeping record after a failed attempt.
func NewAttemptRecord(prev *models.AttemptRecord, at time.Time, next time.Time, lastErr string) *models.AttemptRecord {
	count := 1
	if prev != nil {
		count = prev.Count + 1
	}
	return &models.AttemptRecord{
		Count:         count,
		LastAttemptAt: at,
		NextAttemptAt: next,
		LastError:     lastErr,
	}
}
