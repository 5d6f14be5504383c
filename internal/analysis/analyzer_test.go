package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristic_Analyze(t *testing.T) {
	h := NewHeuristic()

	res, err := h.Analyze(context.Background(),
		"grocery grocery grocery list for the weekend: apples bananas apples")
	require.NoError(t, err)

	assert.Equal(t, 10, res.WordCount)
	require.NotEmpty(t, res.Keywords)
	assert.Equal(t, "grocery", res.Keywords[0])
	assert.Contains(t, res.Keywords, "apples")
	assert.Equal(t, res.Keywords, res.SuggestedTags)
}

func TestHeuristic_Analyze_SkipsStopwordsAndShortWords(t *testing.T) {
	h := NewHeuristic()

	res, err := h.Analyze(context.Background(), "this is about them and when they will")
	require.NoError(t, err)

	assert.Empty(t, res.Keywords)
	assert.Equal(t, 8, res.WordCount)
}

func TestHeuristic_Analyze_CapsKeywords(t *testing.T) {
	h := NewHeuristic()

	res, err := h.Analyze(context.Background(),
		"alpha bravo charlie delta echoes foxtrot golfing hotels")
	require.NoError(t, err)

	assert.Len(t, res.Keywords, maxKeywords)
}

func TestHeuristic_Analyze_Deterministic(t *testing.T) {
	h := NewHeuristic()
	ctx := context.Background()
	content := "zebra yacht xylophone zebra yacht wombat"

	first, err := h.Analyze(ctx, content)
	require.NoError(t, err)
	second, err := h.Analyze(ctx, content)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHeuristic_Analyze_Empty(t *testing.T) {
	h := NewHeuristic()

	res, err := h.Analyze(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, res.WordCount)
	assert.Empty(t, res.Keywords)
}
