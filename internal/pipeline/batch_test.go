package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clauselens/internal/config"
)

func TestAnalyzeBatch_PositionalAlignment(t *testing.T) {
	a := newAnalyzer(t)

	texts := make([]string, 12)
	for i := range texts {
		texts[i] = fmt.Sprintf("the party number %d shall pay the fee", i)
	}

	results, err := a.AnalyzeBatch(context.Background(), texts, Options{})
	require.NoError(t, err)
	require.Len(t, results, len(texts))
	for i, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, texts[i], r.Input, "result %d out of position", i)
	}
}

func TestAnalyzeBatch_SharesOneCache(t *testing.T) {
	a := newAnalyzer(t)
	text := "the council protects the land"

	a.Analyze(text, Options{})
	results, err := a.AnalyzeBatch(context.Background(), []string{text, text}, Options{})
	require.NoError(t, err)
	for _, r := range results {
		assert.True(t, r.FromCache)
	}
}

func TestAnalyzeBatch_CancelledContext(t *testing.T) {
	a := newAnalyzer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := a.AnalyzeBatch(ctx, []string{"the fee is due"}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}

func TestAnalyzeBatch_EmptyInput(t *testing.T) {
	a, err := New(config.Default(), nil, nil)
	require.NoError(t, err)

	results, err := a.AnalyzeBatch(context.Background(), nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, results)
}
