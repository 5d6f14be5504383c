// Package validation checks proposed note mutations against structural
// invariants before they are allowed to reach the store or the queue.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ainotebuddy/notekeeper/internal/models"
)

// TagPattern defines the allowed tag format:
// lowercase latin letters, digits and hyphens, 1-64 characters.
var TagPattern = regexp.MustCompile(`^[a-z0-9-]{1,64}$`)

const (
	// MaxTitleLen is the maximum title length in runes.
	MaxTitleLen = 200
	// MaxCategoryLen is the maximum category length in runes.
	MaxCategoryLen = 64
	// MaxBodyBytes is the maximum body size in bytes (1 MiB).
	MaxBodyBytes = 1 << 20
	// MaxTags is the maximum number of tags per note.
	MaxTags = 32
)

// Correction suggests an automatic fix for a failed validation rule.
type Correction struct {
	Field  models.NoteField `json:"field"`
	Reason string           `json:"reason"`
}

// Result is the outcome of validating a note.
type Result struct {
	Errors      []string     `json:"errors,omitempty"`
	Suggestions []Correction `json:"suggestions,omitempty"`
	Valid       bool         `json:"valid"`
}

// ValidateNote checks a note against the structural invariants.
// A note that fails validation must not be stored or queued; the caller
// should attempt ApplyCorrections exactly once and re-validate.
func ValidateNote(n *models.Note) Result {
	var res Result

	if strings.TrimSpace(n.Title) == "" {
		res.Errors = append(res.Errors, "title cannot be empty")
		res.Suggestions = append(res.Suggestions, Correction{
			Field:  models.FieldTitle,
			Reason: "derive title from first line of body",
		})
	} else if utf8.RuneCountInString(n.Title) > MaxTitleLen {
		res.Errors = append(res.Errors, fmt.Sprintf("title must not exceed %d characters", MaxTitleLen))
		res.Suggestions = append(res.Suggestions, Correction{
			Field:  models.FieldTitle,
			Reason: "truncate title",
		})
	}

	if len(n.Body) > MaxBodyBytes {
		res.Errors = append(res.Errors, fmt.Sprintf("body must not exceed %d bytes", MaxBodyBytes))
	}

	if strings.ContainsRune(n.Title, 0) || strings.ContainsRune(n.Body, 0) {
		res.Errors = append(res.Errors, "note must not contain NUL bytes")
	}

	if utf8.RuneCountInString(n.Category) > MaxCategoryLen {
		res.Errors = append(res.Errors, fmt.Sprintf("category must not exceed %d characters", MaxCategoryLen))
		res.Suggestions = append(res.Suggestions, Correction{
			Field:  models.FieldCategory,
			Reason: "truncate category",
		})
	}

	if len(n.Tags) > MaxTags {
		res.Errors = append(res.Errors, fmt.Sprintf("note must not have more than %d tags", MaxTags))
		res.Suggestions = append(res.Suggestions, Correction{
			Field:  models.FieldTags,
			Reason: "drop excess tags",
		})
	}
	for _, tag := range n.Tags {
		if !TagPattern.MatchString(tag) {
			res.Errors = append(res.Errors, fmt.Sprintf("invalid tag %q: tags are lowercase [a-z0-9-], 1-64 characters", tag))
			res.Suggestions = append(res.Suggestions, Correction{
				Field:  models.FieldTags,
				Reason: "normalize tags",
			})
			break
		}
	}

	res.Valid = len(res.Errors) == 0
	return res
}

// ApplyCorrections returns a corrected copy of the note built from the
// suggestions. The second return value reports whether the corrected note
// passes validation. Callers invoke this at most once per mutation; if the
// corrected note is still invalid the mutation is rejected.
func ApplyCorrections(n *models.Note, suggestions []Correction) (*models.Note, bool) {
	fixed := n.Clone()

	for _, s := range suggestions {
		switch s.Field {
		case models.FieldTitle:
			fixed.Title = correctTitle(fixed)
		case models.FieldCategory:
			fixed.Category = truncateRunes(fixed.Category, MaxCategoryLen)
		case models.FieldTags:
			fixed.Tags = normalizeTags(fixed.Tags)
		}
	}

	return fixed, ValidateNote(fixed).Valid
}

// correctTitle trims the title, derives it from the first body line when
// empty, and truncates it to the maximum length.
func correctTitle(n *models.Note) string {
	title := strings.TrimSpace(n.Title)
	if title == "" {
		for _, line := range strings.Split(n.Body, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				title = line
				break
			}
		}
	}
	return truncateRunes(title, MaxTitleLen)
}

// normalizeTags lowercases tags, replaces spaces with hyphens, drops tags
// that still don't match the pattern, deduplicates, and caps the count.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))

	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		tag = strings.ReplaceAll(tag, " ", "-")
		if !TagPattern.MatchString(tag) {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
		if len(result) == MaxTags {
			break
		}
	}

	return result
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
