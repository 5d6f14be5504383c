// Package analysis provides content analysis for notes: keyword
// extraction, tag suggestions and word counts. Results back the analyze
// operation variant of the mutation queue.
package analysis

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

//go:generate moq -out analyzer_mock.go . Analyzer

// Result holds the outcome of analyzing note content.
type Result struct {
	Keywords      []string `json:"keywords"`
	SuggestedTags []string `json:"suggested_tags"`
	WordCount     int      `json:"word_count"`
}

// Analyzer extracts keywords and tag suggestions from note content.
type Analyzer interface {
	// Analyze inspects the content and returns extraction results.
	Analyze(ctx context.Context, content string) (*Result, error)
}

// maxKeywords caps the number of extracted keywords per note.
const maxKeywords = 5

// minWordLen is the minimum length of a word considered a keyword.
const minWordLen = 4

var wordPattern = regexp.MustCompile(`[a-zA-Z0-9][a-zA-Z0-9-]*`)

// stopwords are common words never suggested as keywords.
var stopwords = map[string]struct{}{
	"about": {}, "after": {}, "also": {}, "been": {}, "before": {},
	"does": {}, "from": {}, "have": {}, "into": {}, "just": {},
	"like": {}, "more": {}, "most": {}, "only": {}, "other": {},
	"over": {}, "some": {}, "such": {}, "than": {}, "that": {},
	"them": {}, "then": {}, "there": {}, "these": {}, "they": {},
	"this": {}, "very": {}, "were": {}, "what": {}, "when": {},
	"which": {}, "will": {}, "with": {}, "would": {}, "your": {},
}

// Heuristic is a frequency-based analyzer. It needs no external model
// and is deterministic, which keeps replayed analyze operations stable.
type Heuristic struct{}

// NewHeuristic creates a heuristic analyzer.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Analyze implements Analyzer.
func (h *Heuristic) Analyze(ctx context.Context, content string) (*Result, error) {
	words := wordPattern.FindAllString(content, -1)

	freq := make(map[string]int)
	for _, w := range words {
		w = strings.ToLower(w)
		if len(w) < minWordLen {
			continue
		}
		if _, ok := stopwords[w]; ok {
			continue
		}
		freq[w]++
	}

	keywords := make([]string, 0, len(freq))
	for w := range freq {
		keywords = append(keywords, w)
	}
	// Most frequent first; ties break alphabetically for determinism.
	sort.Slice(keywords, func(i, j int) bool {
		if freq[keywords[i]] != freq[keywords[j]] {
			return freq[keywords[i]] > freq[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}

	tags := make([]string, len(keywords))
	copy(tags, keywords)

	return &Result{
		Keywords:      keywords,
		SuggestedTags: tags,
		WordCount:     len(words),
	}, nil
}
