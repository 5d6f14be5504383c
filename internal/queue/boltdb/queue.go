package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/ainotebuddy/notekeeper/internal/models"
	"github.com/ainotebuddy/notekeeper/internal/queue"
)

// Enqueue appends an operation to the queue.
// Assigns the operation id and sequence; the write is committed before
// Enqueue returns, so a process restart cannot drop the mutation.
func (s *Storage) Enqueue(ctx context.Context, op *models.Operation) (string, error) {
	if s.db == nil {
		return "", queue.ErrStorageClosed
	}

	if err := op.Validate(); err != nil {
		return "", fmt.Errorf("invalid operation: %w", err)
	}

	if op.ID == "" {
		op.ID = uuid.New().String()
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		ops := tx.Bucket(bucketOperations)
		idx := tx.Bucket(bucketIndex)

		seq, err := ops.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to get next sequence: %w", err)
		}
		op.Seq = seq

		data, err := json.Marshal(op)
		if err != nil {
			return fmt.Errorf("failed to marshal operation: %w", err)
		}

		key := seqKey(seq)
		if err := ops.Put(key, data); err != nil {
			return fmt.Errorf("failed to save operation: %w", err)
		}
		if err := idx.Put([]byte(op.ID), key); err != nil {
			return fmt.Errorf("failed to index operation: %w", err)
		}

		return nil
	})
	if err != nil {
		return "", fmt.Errorf("enqueue transaction failed: %w", err)
	}

	return op.ID, nil
}

// PeekNext returns the oldest pending operation without removing it.
func (s *Storage) PeekNext(ctx context.Context) (*models.Operation, error) {
	if s.db == nil {
		return nil, queue.ErrStorageClosed
	}

	var op *models.Operation

	err := s.db.View(func(tx *bbolt.Tx) error {
		cursor := tx.Bucket(bucketOperations).Cursor()
		k, v := cursor.First()
		if k == nil {
			return queue.ErrQueueEmpty
		}

		op = &models.Operation{}
		if err := json.Unmarshal(v, op); err != nil {
			return fmt.Errorf("failed to unmarshal operation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return op, nil
}

// Pending returns all pending operations in FIFO order.
// Sequence keys are big-endian, so bucket order is insertion order.
func (s *Storage) Pending(ctx context.Context) ([]*models.Operation, error) {
	if s.db == nil {
		return nil, queue.ErrStorageClosed
	}

	var ops []*models.Operation

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketOperations).ForEach(func(k, v []byte) error {
			var op models.Operation
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			ops = append(ops, &op)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending operations: %w", err)
	}

	return ops, nil
}

// PendingForNote returns pending operations referencing the note,
// in their original relative order.
func (s *Storage) PendingForNote(ctx context.Context, noteID string) ([]*models.Operation, error) {
	all, err := s.Pending(ctx)
	if err != nil {
		return nil, err
	}

	var ops []*models.Operation
	for _, op := range all {
		if op.NoteID == noteID {
			ops = append(ops, op)
		}
	}

	return ops, nil
}

// Remove deletes an operation from the queue along with its retry
// bookkeeping. Used after a successful apply.
func (s *Storage) Remove(ctx context.Context, id string) error {
	if s.db == nil {
		return queue.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		idx := tx.Bucket(bucketIndex)

		key := idx.Get([]byte(id))
		if key == nil {
			return queue.ErrOperationNotFound
		}

		if err := tx.Bucket(bucketOperations).Delete(key); err != nil {
			return fmt.Errorf("failed to delete operation: %w", err)
		}
		if err := idx.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete index entry: %w", err)
		}
		if err := tx.Bucket(bucketAttempts).Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete attempt record: %w", err)
		}

		return nil
	})
	if err != nil {
		if err == queue.ErrOperationNotFound {
			return err
		}
		return fmt.Errorf("remove transaction failed: %w", err)
	}

	return nil
}

// MarkFailed moves an operation from the pending queue to the failed set.
func (s *Storage) MarkFailed(ctx context.Context, id, reason string, conflict bool) error {
	if s.db == nil {
		return queue.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		idx := tx.Bucket(bucketIndex)

		key := idx.Get([]byte(id))
		if key == nil {
			return queue.ErrOperationNotFound
		}

		ops := tx.Bucket(bucketOperations)
		data := ops.Get(key)
		if data == nil {
			return queue.ErrOperationNotFound
		}

		var op models.Operation
		if err := json.Unmarshal(data, &op); err != nil {
			return fmt.Errorf("failed to unmarshal operation: %w", err)
		}

		failed := models.FailedOperation{
			Operation: op,
			Reason:    reason,
			Conflict:  conflict,
			FailedAt:  time.Now(),
		}
		failedData, err := json.Marshal(&failed)
		if err != nil {
			return fmt.Errorf("failed to marshal failed operation: %w", err)
		}

		if err := tx.Bucket(bucketFailed).Put([]byte(id), failedData); err != nil {
			return fmt.Errorf("failed to park operation: %w", err)
		}
		if err := ops.Delete(key); err != nil {
			return fmt.Errorf("failed to delete operation: %w", err)
		}
		if err := idx.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete index entry: %w", err)
		}
		if err := tx.Bucket(bucketAttempts).Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete attempt record: %w", err)
		}

		return nil
	})
	if err != nil {
		if err == queue.ErrOperationNotFound {
			return err
		}
		return fmt.Errorf("mark failed transaction failed: %w", err)
	}

	return nil
}

// Failed returns all parked operations.
func (s *Storage) Failed(ctx context.Context) ([]*models.FailedOperation, error) {
	if s.db == nil {
		return nil, queue.ErrStorageClosed
	}

	var failed []*models.FailedOperation

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketFailed).ForEach(func(k, v []byte) error {
			var f models.FailedOperation
			if err := json.Unmarshal(v, &f); err != nil {
				return fmt.Errorf("failed to unmarshal failed operation: %w", err)
			}
			failed = append(failed, &f)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list failed operations: %w", err)
	}

	return failed, nil
}

// Attempts returns retry bookkeeping for a pending operation.
// Returns a zero record when no attempt has been made yet.
func (s *Storage) Attempts(ctx context.Context, id string) (*models.AttemptRecord, error) {
	if s.db == nil {
		return nil, queue.ErrStorageClosed
	}

	rec := &models.AttemptRecord{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketAttempts).Get([]byte(id))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, rec); err != nil {
			return fmt.Errorf("failed to unmarshal attempt record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// RecordAttempt stores retry bookkeeping after a failed apply attempt.
func (s *Storage) RecordAttempt(ctx context.Context, id string, rec *models.AttemptRecord) error {
	if s.db == nil {
		return queue.ErrStorageClosed
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal attempt record: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketAttempts).Put([]byte(id), data)
	})
	if err != nil {
		return fmt.Errorf("record attempt transaction failed: %w", err)
	}

	return nil
}

// Stats recomputes aggregate queue statistics by scanning the buckets.
func (s *Storage) Stats(ctx context.Context) (*models.QueueStats, error) {
	if s.db == nil {
		return nil, queue.ErrStorageClosed
	}

	stats := &models.QueueStats{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		stats.Pending = tx.Bucket(bucketOperations).Stats().KeyN

		return tx.Bucket(bucketFailed).ForEach(func(k, v []byte) error {
			var f models.FailedOperation
			if err := json.Unmarshal(v, &f); err != nil {
				return fmt.Errorf("failed to unmarshal failed operation: %w", err)
			}
			stats.Failed++
			if f.Conflict {
				stats.Conflicts++
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	return stats, nil
}

// seqKey converts a sequence number to a big-endian key so that bucket
// iteration order matches insertion order.
func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
