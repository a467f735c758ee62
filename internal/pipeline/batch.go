package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// batchConcurrency bounds the analysis fan-out. The pipeline itself is pure;
// the shared cache is the only contended resource and it is mutex-guarded.
const batchConcurrency = 4

// AnalyzeBatch analyzes many clauses concurrently against one shared cache.
// Results are positionally aligned with the input. The only error source is
// context cancellation; individual analyses cannot fail.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, texts []string, opts Options) ([]*Result, error) {
	results := make([]*Result, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = a.Analyze(text, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
