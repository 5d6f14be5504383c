package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/ainotebuddy/notekeeper/internal/models"
	"github.com/ainotebuddy/notekeeper/internal/queue"
)

// Get returns the sync state for a note.
// Returns a record with SyncStatusUnknown when the note has never been
// tracked; absence is not an error.
func (s *Storage) Get(ctx context.Context, noteID string) (*models.SyncState, error) {
	if s.db == nil {
		return nil, queue.ErrStorageClosed
	}

	state := &models.SyncState{
		NoteID: noteID,
		Status: models.SyncStatusUnknown,
	}

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketSyncState).Get([]byte(noteID))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, state); err != nil {
			return fmt.Errorf("failed to unmarshal sync state: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}

// Put stores the sync state for a note.
func (s *Storage) Put(ctx context.Context, state *models.SyncState) error {
	if s.db == nil {
		return queue.ErrStorageClosed
	}

	if state.NoteID == "" {
		return fmt.Errorf("sync state has no note id")
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal sync state: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSyncState).Put([]byte(state.NoteID), data)
	})
	if err != nil {
		return fmt.Errorf("sync state transaction failed: %w", err)
	}

	return nil
}

// Delete removes the sync state record for a note.
func (s *Storage) Delete(ctx context.Context, noteID string) error {
	if s.db == nil {
		return queue.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSyncState).Delete([]byte(noteID))
	})
	if err != nil {
		return fmt.Errorf("sync state delete failed: %w", err)
	}

	return nil
}

// All returns every tracked sync state.
func (s *Storage) All(ctx context.Context) ([]*models.SyncState, error) {
	if s.db == nil {
		return nil, queue.ErrStorageClosed
	}

	var states []*models.SyncState

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSyncState).ForEach(func(k, v []byte) error {
			var state models.SyncState
			if err := json.Unmarshal(v, &state); err != nil {
				return fmt.Errorf("failed to unmarshal sync state: %w", err)
			}
			states = append(states, &state)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sync states: %w", err)
	}

	return states, nil
}
