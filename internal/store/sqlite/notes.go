package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ainotebuddy/notekeeper/internal/models"
	"github.com/ainotebuddy/notekeeper/internal/store"
)

// Insert persists a new note.
// Generates an id when empty and forces version to the initial version.
func (s *Storage) Insert(ctx context.Context, note *models.Note) (string, error) {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}

	now := time.Now()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = now
	note.Version = models.InitialVersion

	tags, err := json.Marshal(note.Tags)
	if err != nil {
		return "", fmt.Errorf("failed to marshal tags: %w", err)
	}
	suggested, err := json.Marshal(note.SuggestedTags)
	if err != nil {
		return "", fmt.Errorf("failed to marshal suggested tags: %w", err)
	}

	query := `
		INSERT INTO notes (
			id, title, body, category, tags, suggested_tags,
			version, pinned, favorite, archived, in_vault, deleted,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		note.ID,
		note.Title,
		note.Body,
		note.Category,
		string(tags),
		string(suggested),
		note.Version,
		boolToInt(note.Pinned),
		boolToInt(note.Favorite),
		boolToInt(note.Archived),
		boolToInt(note.InVault),
		boolToInt(note.Deleted),
		note.CreatedAt.Unix(),
		note.UpdatedAt.Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert note: %w", err)
	}

	return note.ID, nil
}

// Update persists the note's fields, increments the stored version and
// returns the new version.
func (s *Storage) Update(ctx context.Context, note *models.Note) (int64, error) {
	tags, err := json.Marshal(note.Tags)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal tags: %w", err)
	}
	suggested, err := json.Marshal(note.SuggestedTags)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal suggested tags: %w", err)
	}

	note.UpdatedAt = time.Now()

	query := `
		UPDATE notes
		SET title = ?, body = ?, category = ?, tags = ?, suggested_tags = ?,
		    pinned = ?, favorite = ?, archived = ?, in_vault = ?,
		    version = version + 1, updated_at = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		note.Title,
		note.Body,
		note.Category,
		string(tags),
		string(suggested),
		boolToInt(note.Pinned),
		boolToInt(note.Favorite),
		boolToInt(note.Archived),
		boolToInt(note.InVault),
		note.UpdatedAt.Unix(),
		note.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update note: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return 0, store.ErrNoteNotFound
	}

	var version int64
	err = s.db.QueryRowContext(ctx, "SELECT version FROM notes WHERE id = ?", note.ID).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read new version: %w", err)
	}

	note.Version = version
	return version, nil
}

// SoftDelete marks the note as deleted and increments its version.
func (s *Storage) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE notes
		SET deleted = 1, version = version + 1, updated_at = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query, time.Now().Unix(), id)
	if err != nil {
		return fmt.Errorf("failed to soft-delete note: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return store.ErrNoteNotFound
	}

	return nil
}

// Get retrieves a note by id, including soft-deleted ones.
func (s *Storage) Get(ctx context.Context, id string) (*models.Note, error) {
	query := `
		SELECT id, title, body, category, tags, suggested_tags,
		       version, pinned, favorite, archived, in_vault, deleted,
		       created_at, updated_at
		FROM notes
		WHERE id = ?
	`

	note, err := scanNote(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}

// List returns all notes ordered by last update, newest first.
func (s *Storage) List(ctx context.Context, includeDeleted bool) ([]*models.Note, error) {
	query := `
		SELECT id, title, body, category, tags, suggested_tags,
		       version, pinned, favorite, archived, in_vault, deleted,
		       created_at, updated_at
		FROM notes
	`
	if !includeDeleted {
		query += " WHERE deleted = 0"
	}
	query += " ORDER BY updated_at DESC"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []*models.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

// scanner abstracts sql.Row and sql.Rows for scanNote.
type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (*models.Note, error) {
	note := &models.Note{}
	var (
		tags, suggested                              string
		pinned, favorite, archived, inVault, deleted int
		createdAt, updatedAt                         int64
	)

	err := row.Scan(
		&note.ID,
		&note.Title,
		&note.Body,
		&note.Category,
		&tags,
		&suggested,
		&note.Version,
		&pinned,
		&favorite,
		&archived,
		&inVault,
		&deleted,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tags), &note.Tags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
	}
	if err := json.Unmarshal([]byte(suggested), &note.SuggestedTags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal suggested tags: %w", err)
	}

	note.Pinned = pinned != 0
	note.Favorite = favorite != 0
	note.Archived = archived != 0
	note.InVault = inVault != 0
	note.Deleted = deleted != 0
	note.CreatedAt = time.Unix(createdAt, 0)
	note.UpdatedAt = time.Unix(updatedAt, 0)

	return note, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
