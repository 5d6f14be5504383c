package models

import "time"

// SyncStatus is the per-note synchronization status.
type SyncStatus string

// Sync statuses.
const (
	SyncStatusSynced   SyncStatus = "synced"
	SyncStatusPending  SyncStatus = "pending"
	SyncStatusConflict SyncStatus = "conflict"
	SyncStatusError    SyncStatus = "error"
	SyncStatusUnknown  SyncStatus = "unknown"
)

// SyncState is the per-note sync record. Created lazily on the first
// mutation of a note, updated after every apply attempt, and removed only
// once the note is deleted and its queue entries are fully drained.
type SyncState struct {
	LastSyncedAt      time.Time  `json:"last_synced_at"`
	NoteID            string     `json:"note_id"`
	Status            SyncStatus `json:"status"`
	LastError         string     `json:"last_error,omitempty"`
	PendingOperations int        `json:"pending_operations"`
}

// SyncStatusInfo is the read-only answer to a sync status query.
// Safe to poll frequently; derived from SyncState plus queue counts.
type SyncStatusInfo struct {
	LastSyncedAt          time.Time  `json:"last_synced_at"`
	NoteID                string     `json:"note_id"`
	Status                SyncStatus `json:"status"`
	LastError             string     `json:"last_error,omitempty"`
	PendingOperationCount int        `json:"pending_operation_count"`
	HasPendingOperations  bool       `json:"has_pending_operations"`
	HasConflicts          bool       `json:"has_conflicts"`
}

// QueueStats is a derived, read-only aggregate over the operation queue.
// Recomputed on demand, never separately persisted.
type QueueStats struct {
	Pending   int `json:"pending"`
	Failed    int `json:"failed"`
	Conflicts int `json:"conflicts"`
}
