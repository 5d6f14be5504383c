package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldChange_Apply(t *testing.T) {
	tests := []struct {
		check   func(t *testing.T, n *Note)
		name    string
		change  FieldChange
		wantErr bool
	}{
		{
			name:   "title",
			change: TitleChange("new title"),
			check: func(t *testing.T, n *Note) {
				assert.Equal(t, "new title", n.Title)
			},
		},
		{
			name:   "body",
			change: BodyChange("new body"),
			check: func(t *testing.T, n *Note) {
				assert.Equal(t, "new body", n.Body)
			},
		},
		{
			name:   "category",
			change: CategoryChange("work"),
			check: func(t *testing.T, n *Note) {
				assert.Equal(t, "work", n.Category)
			},
		},
		{
			name:   "tags",
			change: TagsChange([]string{"a", "b"}),
			check: func(t *testing.T, n *Note) {
				assert.Equal(t, []string{"a", "b"}, n.Tags)
			},
		},
		{
			name:   "pinned",
			change: PinnedChange(true),
			check: func(t *testing.T, n *Note) {
				assert.True(t, n.Pinned)
			},
		},
		{
			name:   "favorite",
			change: FavoriteChange(true),
			check: func(t *testing.T, n *Note) {
				assert.True(t, n.Favorite)
			},
		},
		{
			name:   "archived",
			change: ArchivedChange(true),
			check: func(t *testing.T, n *Note) {
				assert.True(t, n.Archived)
			},
		},
		{
			name:    "missing string value",
			change:  FieldChange{Field: FieldTitle},
			wantErr: true,
		},
		{
			name:    "missing bool value",
			change:  FieldChange{Field: FieldPinned},
			wantErr: true,
		},
		{
			name:    "missing strings value",
			change:  FieldChange{Field: FieldTags},
			wantErr: true,
		},
		{
			name:    "unknown field",
			change:  FieldChange{Field: NoteField("bogus")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &Note{ID: "note-1", Title: "old", Version: 1}
			err := tt.change.Apply(n)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, n)
		})
	}
}

func TestFieldChange_ApplyCopiesTags(t *testing.T) {
	src := []string{"a", "b"}
	n := &Note{ID: "note-1"}

	require.NoError(t, TagsChange(src).Apply(n))

	src[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, n.Tags)
}

func TestOperation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		op      Operation
		wantErr bool
	}{
		{
			name: "valid create",
			op:   Operation{Kind: OpCreate, Note: &Note{ID: "n1"}},
		},
		{
			name:    "create without snapshot",
			op:      Operation{Kind: OpCreate},
			wantErr: true,
		},
		{
			name: "valid update",
			op: Operation{
				Kind:            OpUpdate,
				NoteID:          "n1",
				Changes:         []FieldChange{TitleChange("t")},
				PreviousVersion: 1,
			},
		},
		{
			name:    "update without changes",
			op:      Operation{Kind: OpUpdate, NoteID: "n1", PreviousVersion: 1},
			wantErr: true,
		},
		{
			name: "update without previous version",
			op: Operation{
				Kind:    OpUpdate,
				NoteID:  "n1",
				Changes: []FieldChange{TitleChange("t")},
			},
			wantErr: true,
		},
		{
			name: "valid delete",
			op:   Operation{Kind: OpDelete, NoteID: "n1", SoftDelete: true},
		},
		{
			name:    "delete without note id",
			op:      Operation{Kind: OpDelete},
			wantErr: true,
		},
		{
			name: "analyze with content only",
			op:   Operation{Kind: OpAnalyze, Content: "some text"},
		},
		{
			name:    "analyze with no target",
			op:      Operation{Kind: OpAnalyze},
			wantErr: true,
		},
		{
			name:    "unknown kind",
			op:      Operation{Kind: OperationKind("bogus")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNote_Clone(t *testing.T) {
	n := &Note{
		ID:      "n1",
		Title:   "title",
		Tags:    []string{"a"},
		Version: 3,
		InVault: true,
	}

	clone := n.Clone()
	require.Equal(t, n, clone)

	// Deep copy: mutating the clone must not affect the original.
	clone.Tags[0] = "mutated"
	assert.Equal(t, []string{"a"}, n.Tags)
}

func TestBatchResult_Add(t *testing.T) {
	var b BatchResult
	b.Add(MutationResult{Outcome: OutcomeSuccess})
	b.Add(MutationResult{Outcome: OutcomeQueued})
	b.Add(MutationResult{Outcome: OutcomeQueued})
	b.Add(MutationResult{Outcome: OutcomeFailure})

	assert.Equal(t, 1, b.Succeeded)
	assert.Equal(t, 2, b.Queued)
	assert.Equal(t, 1, b.Failed)
	assert.Len(t, b.Results, 4)
}
