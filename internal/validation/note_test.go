package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ainotebuddy/notekeeper/internal/models"
)

func TestValidateNote(t *testing.T) {
	tests := []struct {
		name      string
		note      *models.Note
		wantValid bool
	}{
		{
			name:      "valid note",
			note:      &models.Note{Title: "Shopping list", Body: "milk", Tags: []string{"home", "todo-1"}},
			wantValid: true,
		},
		{
			name:      "empty title",
			note:      &models.Note{Title: "   ", Body: "something"},
			wantValid: false,
		},
		{
			name:      "title too long",
			note:      &models.Note{Title: strings.Repeat("x", MaxTitleLen+1)},
			wantValid: false,
		},
		{
			name:      "body too large",
			note:      &models.Note{Title: "t", Body: strings.Repeat("a", MaxBodyBytes+1)},
			wantValid: false,
		},
		{
			name:      "nul byte in body",
			note:      &models.Note{Title: "t", Body: "a\x00b"},
			wantValid: false,
		},
		{
			name:      "category too long",
			note:      &models.Note{Title: "t", Category: strings.Repeat("c", MaxCategoryLen+1)},
			wantValid: false,
		},
		{
			name:      "invalid tag",
			note:      &models.Note{Title: "t", Tags: []string{"Not Valid"}},
			wantValid: false,
		},
		{
			name: "too many tags",
			note: &models.Note{Title: "t", Tags: func() []string {
				tags := make([]string, MaxTags+1)
				for i := range tags {
					tags[i] = strings.Repeat("a", i%10+1)
				}
				return tags
			}()},
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateNote(tt.note)
			assert.Equal(t, tt.wantValid, res.Valid)
			if !tt.wantValid {
				assert.NotEmpty(t, res.Errors)
			}
		})
	}
}

func TestApplyCorrections_TitleFromBody(t *testing.T) {
	note := &models.Note{Title: "", Body: "\n\nFirst real line\nsecond line"}

	res := ValidateNote(note)
	require.False(t, res.Valid)
	require.NotEmpty(t, res.Suggestions)

	fixed, ok := ApplyCorrections(note, res.Suggestions)
	require.True(t, ok)
	assert.Equal(t, "First real line", fixed.Title)

	// The original note is untouched.
	assert.Equal(t, "", note.Title)
}

func TestApplyCorrections_NormalizesTags(t *testing.T) {
	note := &models.Note{Title: "t", Tags: []string{"My Tag", "my-tag", "OK", "ok", "!!!"}}

	res := ValidateNote(note)
	require.False(t, res.Valid)

	fixed, ok := ApplyCorrections(note, res.Suggestions)
	require.True(t, ok)
	assert.Equal(t, []string{"my-tag", "ok"}, fixed.Tags)
}

func TestApplyCorrections_TruncatesCategory(t *testing.T) {
	note := &models.Note{Title: "t", Category: strings.Repeat("c", MaxCategoryLen+10)}

	res := ValidateNote(note)
	require.False(t, res.Valid)

	fixed, ok := ApplyCorrections(note, res.Suggestions)
	require.True(t, ok)
	assert.Len(t, fixed.Category, MaxCategoryLen)
}

func TestApplyCorrections_Uncorrectable(t *testing.T) {
	// Empty title with empty body can't be corrected.
	note := &models.Note{Title: "", Body: "   \n  "}

	res := ValidateNote(note)
	require.False(t, res.Valid)

	_, ok := ApplyCorrections(note, res.Suggestions)
	assert.False(t, ok)
}
