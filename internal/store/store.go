// Package store defines the note store abstraction: the single source of
// truth for persisted notes. It is mutated only by the sync coordinator
// or the direct-apply path, never by both at once for the same note.
package store

import (
	"context"
	"errors"

	"github.com/ainotebuddy/notekeeper/internal/models"
)

//go:generate moq -out store_mock.go . NoteStore

// Common store errors.
var (
	// ErrNoteNotFound indicates that the note does not exist.
	ErrNoteNotFound = errors.New("note not found")

	// ErrStorageClosed indicates that the store is closed.
	ErrStorageClosed = errors.New("storage is closed")
)

// NoteStore is the canonical entity store.
type NoteStore interface {
	// Insert persists a new note and returns its id.
	// The note id is generated when empty; version is forced to the
	// initial version.
	Insert(ctx context.Context, note *models.Note) (string, error)

	// Update persists the note's fields, increments the stored version
	// and returns the new version.
	// Returns ErrNoteNotFound if the note does not exist.
	Update(ctx context.Context, note *models.Note) (int64, error)

	// SoftDelete marks the note as deleted and increments its version.
	// Returns ErrNoteNotFound if the note does not exist.
	SoftDelete(ctx context.Context, id string) error

	// Get retrieves a note by id, including soft-deleted ones.
	// Returns ErrNoteNotFound if the note does not exist.
	Get(ctx context.Context, id string) (*models.Note, error)

	// List returns all notes, optionally including soft-deleted ones.
	List(ctx context.Context, includeDeleted bool) ([]*models.Note, error)
}
