package models

import (
	"fmt"
	"time"
)

// OperationKind identifies the mutation variant an operation carries.
type OperationKind string

// Operation kinds.
const (
	OpCreate  OperationKind = "create"
	OpUpdate  OperationKind = "update"
	OpDelete  OperationKind = "delete"
	OpAnalyze OperationKind = "analyze"
)

// NoteField identifies a mutable note field in a FieldChange.
type NoteField string

// Mutable note fields.
const (
	FieldTitle    NoteField = "title"
	FieldBody     NoteField = "body"
	FieldCategory NoteField = "category"
	FieldTags     NoteField = "tags"
	FieldPinned   NoteField = "pinned"
	FieldFavorite NoteField = "favorite"
	FieldArchived NoteField = "archived"
)

// FieldChange is a typed change to a single mutable note field.
// Exactly one of the value members is set, matching the Field tag.
// Replaces the stringly-typed changes map the queue would otherwise
// have to re-parse at apply time.
type FieldChange struct {
	Field   NoteField `json:"field"`
	String  *string   `json:"string,omitempty"`  // title, body, category
	Bool    *bool     `json:"bool,omitempty"`    // pinned, favorite, archived
	Strings []string  `json:"strings,omitempty"` // tags
}

// TitleChange returns a change setting the note title.
func TitleChange(v string) FieldChange { return FieldChange{Field: FieldTitle, String: &v} }

// BodyChange returns a change setting the note body.
func BodyChange(v string) FieldChange { return FieldChange{Field: FieldBody, String: &v} }

// CategoryChange returns a change setting the note category.
func CategoryChange(v string) FieldChange { return FieldChange{Field: FieldCategory, String: &v} }

// TagsChange returns a change replacing the note tags.
func TagsChange(v []string) FieldChange { return FieldChange{Field: FieldTags, Strings: v} }

// PinnedChange returns a change setting the pinned flag.
func PinnedChange(v bool) FieldChange { return FieldChange{Field: FieldPinned, Bool: &v} }

// FavoriteChange returns a change setting the favorite flag.
func FavoriteChange(v bool) FieldChange { return FieldChange{Field: FieldFavorite, Bool: &v} }

// ArchivedChange returns a change setting the archived flag.
func ArchivedChange(v bool) FieldChange { return FieldChange{Field: FieldArchived, Bool: &v} }

// Apply writes the change into the note.
// Returns an error if the value member doesn't match the field tag.
func (c FieldChange) Apply(n *Note) error {
	switch c.Field {
	case FieldTitle, FieldBody, FieldCategory:
		if c.String == nil {
			return fmt.Errorf("field change %q has no string value", c.Field)
		}
		switch c.Field {
		case FieldTitle:
			n.Title = *c.String
		case FieldBody:
			n.Body = *c.String
		default:
			n.Category = *c.String
		}
	case FieldTags:
		if c.Strings == nil {
			return fmt.Errorf("field change %q has no strings value", c.Field)
		}
		tags := make([]string, len(c.Strings))
		copy(tags, c.Strings)
		n.Tags = tags
	case FieldPinned, FieldFavorite, FieldArchived:
		if c.Bool == nil {
			return fmt.Errorf("field change %q has no bool value", c.Field)
		}
		switch c.Field {
		case FieldPinned:
			n.Pinned = *c.Bool
		case FieldFavorite:
			n.Favorite = *c.Bool
		default:
			n.Archived = *c.Bool
		}
	default:
		return fmt.Errorf("unknown note field %q", c.Field)
	}
	return nil
}

// Operation is a pending mutation in the durable queue. Operations are
// immutable once enqueued; retry bookkeeping is kept in a separate record.
// Only the payload members matching Kind are populated.
type Operation struct {
	ID        string        `json:"id"`        // UUID assigned at enqueue time
	Kind      OperationKind `json:"kind"`      //
	NoteID    string        `json:"note_id"`   // target note (optional for analyze)
	Seq       uint64        `json:"seq"`       // queue-assigned sequence, replay order
	Timestamp int64         `json:"timestamp"` // logical enqueue timestamp

	// create
	Note      *Note  `json:"note,omitempty"`       // snapshot, version reset to initial
	ClientRef string `json:"client_ref,omitempty"` // temporary client-side correlation id

	// update
	Changes         []FieldChange `json:"changes,omitempty"`
	PreviousVersion int64         `json:"previous_version,omitempty"` // version the update was based on

	// delete
	SoftDelete bool `json:"soft_delete,omitempty"`

	// analyze
	Content string `json:"content,omitempty"`
}

// Validate checks that the operation carries the payload its kind requires.
func (o *Operation) Validate() error {
	switch o.Kind {
	case OpCreate:
		if o.Note == nil {
			return fmt.Errorf("create operation has no note snapshot")
		}
	case OpUpdate:
		if o.NoteID == "" {
			return fmt.Errorf("update operation has no note id")
		}
		if len(o.Changes) == 0 {
			return fmt.Errorf("update operation has no field changes")
		}
		if o.PreviousVersion < InitialVersion {
			return fmt.Errorf("update operation has invalid previous version %d", o.PreviousVersion)
		}
	case OpDelete:
		if o.NoteID == "" {
			return fmt.Errorf("delete operation has no note id")
		}
	case OpAnalyze:
		if o.NoteID == "" && o.Content == "" {
			return fmt.Errorf("analyze operation has neither note id nor content")
		}
	default:
		return fmt.Errorf("unknown operation kind %q", o.Kind)
	}
	return nil
}

// FailedOperation is an operation parked in the failed set after a
// permanent failure or a version conflict. Parked operations are never
// silently dropped; they wait for higher-level resolution.
type FailedOperation struct {
	FailedAt  time.Time `json:"failed_at"`
	Operation Operation `json:"operation"`
	Reason    string    `json:"reason"`
	Conflict  bool      `json:"conflict"` // true when parked due to a version conflict
}

// AttemptRecord tracks retry bookkeeping for a queued operation,
// kept separate from the immutable operation itself.
type AttemptRecord struct {
	LastAttemptAt time.Time `json:"last_attempt_at"`
	NextAttemptAt time.Time `json:"next_attempt_at"` // drain skips the operation until this time
	LastError     string    `json:"last_error"`
	Count         int       `json:"count"`
}
