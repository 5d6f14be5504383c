package models

import "time"

// Note is the canonical persisted record. It is owned exclusively by the
// note store and is mutated only through the sync coordinator or the
// direct-apply path, never by both at once for the same ID.
type Note struct {
	CreatedAt     time.Time `json:"created_at"` // set once at creation
	UpdatedAt     time.Time `json:"updated_at"` // set on every successful mutation
	ID            string    `json:"id"`         // UUID
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	SuggestedTags []string  `json:"suggested_tags,omitempty"` // produced by content analysis
	Version       int64     `json:"version"`                  // monotonically increasing, starts at 1
	Pinned        bool      `json:"pinned"`
	Favorite      bool      `json:"favorite"`
	Archived      bool      `json:"archived"`
	InVault       bool      `json:"in_vault"` // body is encrypted at rest
	Deleted       bool      `json:"deleted"`  // soft delete flag
}

// InitialVersion is the version assigned to a note on creation.
const InitialVersion int64 = 1

// MergeTags appends tags not already present, preserving order and
// dropping duplicates.
func MergeTags(existing, add []string) []string {
	seen := make(map[string]struct{}, len(existing))
	out := make([]string, 0, len(existing)+len(add))
	for _, lst := range [][]string{existing, add} {
		for _, t := range lst {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// Clone creates a deep copy of the note.
func (n *Note) Clone() *Note {
	tags := make([]string, len(n.Tags))
	copy(tags, n.Tags)

	suggested := make([]string, len(n.SuggestedTags))
	copy(suggested, n.SuggestedTags)

	return &Note{
		ID:            n.ID,
		Title:         n.Title,
		Body:          n.Body,
		Category:      n.Category,
		Tags:          tags,
		SuggestedTags: suggested,
		Version:       n.Version,
		Pinned:        n.Pinned,
		Favorite:      n.Favorite,
		Archived:      n.Archived,
		InVault:       n.InVault,
		Deleted:       n.Deleted,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}
