// Package pipeline wires the analysis stages into one deterministic pass:
// tokenize, classify, score, project the state, build the relation skeleton,
// and optionally rewrite and diff. Results are memoized in an injected cache
// keyed by normalized input text.
package pipeline

import (
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"clauselens/internal/cache"
	"clauselens/internal/cluster"
	"clauselens/internal/config"
	"clauselens/internal/diff"
	"clauselens/internal/graph"
	"clauselens/internal/metrics"
	"clauselens/internal/relation"
	"clauselens/internal/rewrite"
	"clauselens/internal/ruliad"
	"clauselens/internal/token"
)

// ResultCache is the memoization boundary. The core only ever calls Get and
// Set; any implementation with those semantics can be injected.
type ResultCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// NopCache disables memoization.
type NopCache struct{}

// Get always misses.
func (NopCache) Get(string) (any, bool) { return nil, false }

// Set discards the value.
func (NopCache) Set(string, any) {}

// Analyzer runs the pipeline. All stages are pure; the injected cache is the
// only shared mutable state, so one Analyzer is safe for concurrent use as
// long as its cache is (the bundled LRU is).
type Analyzer struct {
	cfg    config.Config
	cache  ResultCache
	differ *diff.Engine
	logger *zap.Logger
}

// New builds an Analyzer. A nil cache gets the bundled LRU at the configured
// capacity (or a NopCache when capacity is zero); a nil logger is replaced
// with a no-op logger.
func New(cfg config.Config, resultCache ResultCache, logger *zap.Logger) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	if resultCache == nil {
		if cfg.CacheCapacity > 0 {
			resultCache = cache.NewLRU(cfg.CacheCapacity)
		} else {
			resultCache = NopCache{}
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		cfg:    cfg,
		cache:  resultCache,
		differ: diff.NewEngine(),
		logger: logger,
	}, nil
}

// Options selects optional pipeline stages.
type Options struct {
	// Rewrite requests transformation candidates, the improved text, its
	// word diff against the original, and the multiway summary.
	Rewrite bool
}

// MetricSet bundles the five scorer outputs.
type MetricSet struct {
	Structural metrics.MetricResult `json:"structural"`
	Logical    metrics.MetricResult `json:"logical"`
	Ethical    metrics.MetricResult `json:"ethical"`
	Ambiguity  metrics.MetricResult `json:"ambiguity"`
	Modal      metrics.ModalProfile `json:"modal"`
}

// RewriteReport carries the optional rewrite stage output.
type RewriteReport struct {
	Improved   string                                       `json:"improved"`
	Candidates []rewrite.Candidate                          `json:"candidates"`
	Categories map[rewrite.Category]rewrite.CategoryMetrics `json:"categories"`
	Diff       []diff.Segment                               `json:"diff"`
	Multiway   rewrite.Summary                              `json:"multiway"`
}

// Result is the structured record of one clause analysis. It is a plain
// nested value with no cyclic references and marshals directly to JSON.
type Result struct {
	Input      string           `json:"input"`
	Normalized string           `json:"normalized"`
	Tokens     []token.Token    `json:"tokens"`
	Metrics    MetricSet        `json:"metrics"`
	State      ruliad.State     `json:"state"`
	Relation   relation.Formula `json:"relation"`
	Rewrite    *RewriteReport   `json:"rewrite,omitempty"`

	// FromCache marks memoized results; diagnostic only.
	FromCache bool `json:"-"`
}

// Analyze runs the whole pipeline on one clause. The caller owns input
// validation (length, character set); text that is not valid UTF-8 is a
// contract violation and panics. Empty or whitespace-only input is valid and
// produces the dedicated empty-result values of each stage.
func (a *Analyzer) Analyze(text string, opts Options) *Result {
	if !utf8.ValidString(text) {
		panic("pipeline: input is not valid UTF-8; caller must validate encoding")
	}

	normalized := token.Normalize(text)
	key := cacheKey(normalized, opts)
	if cached, ok := a.cache.Get(key); ok {
		if result, ok := cached.(*Result); ok {
			a.logger.Debug("pipeline cache hit", zap.String("key", key))
			copied := *result
			copied.Input = text
			copied.FromCache = true
			return &copied
		}
	}

	tokens := token.ClassifyAll(normalized)
	stats := metrics.Collect(tokens)

	set := MetricSet{
		Structural: metrics.Structural(stats),
		Logical:    metrics.Logical(stats),
		Ethical:    metrics.Ethical(stats),
		Ambiguity:  metrics.Ambiguity(stats),
		Modal:      metrics.Modal(stats),
	}
	state := ruliad.FromScores(
		set.Structural.Score, set.Logical.Score, set.Ethical.Score,
		a.cfg.StateThreshold,
	)

	result := &Result{
		Input:      text,
		Normalized: normalized,
		Tokens:     tokens,
		Metrics:    set,
		State:      state,
		Relation:   relation.Build(tokens, normalized),
	}

	if opts.Rewrite {
		result.Rewrite = a.runRewrite(normalized)
	}

	a.logger.Debug("pipeline analyzed clause",
		zap.Int("tokens", len(tokens)),
		zap.String("state", result.State.Bits()),
		zap.Float64("structural", set.Structural.Score),
		zap.Float64("logical", set.Logical.Score),
		zap.Float64("ethical", set.Ethical.Score))

	a.cache.Set(key, result)
	return result
}

func (a *Analyzer) runRewrite(normalized string) *RewriteReport {
	rw := rewrite.Apply(normalized)
	multiway := rewrite.Explore(normalized, a.cfg.MultiwayMaxDepth)
	return &RewriteReport{
		Improved:   rw.Improved,
		Candidates: rw.Candidates,
		Categories: rw.Categories,
		Diff:       a.differ.Compute(rw.Original, rw.Improved),
		Multiway:   multiway.Summarize(),
	}
}

// Diff exposes the analyzer's diff engine for original-vs-rewritten
// comparisons requested outside a rewrite pass.
func (a *Analyzer) Diff(oldText, newText string) []diff.Segment {
	return a.differ.Compute(token.Normalize(oldText), token.Normalize(newText))
}

// CacheStats reports memoization counters when the injected cache supports
// them (the bundled LRU does).
func (a *Analyzer) CacheStats() (cache.Stats, bool) {
	if s, ok := a.cache.(interface{ Stats() cache.Stats }); ok {
		return s.Stats(), true
	}
	return cache.Stats{}, false
}

// cacheKey folds the option flags into the key so a bare analysis never
// masquerades as a rewrite analysis.
func cacheKey(normalized string, opts Options) string {
	key := cache.Key(normalized)
	if opts.Rewrite {
		key += ":rw"
	}
	return key
}

// DocumentResult is the multi-clause analysis record.
type DocumentResult struct {
	Stats  graph.Stats `json:"stats"`
	Cycles [][]string  `json:"cycles"`

	// TopologicalOrder is null exactly when Cycles is non-empty.
	TopologicalOrder []string `json:"topological_order"`

	EquivalenceClasses []cluster.Class `json:"equivalence_classes"`

	// DOT is the stable textual graph export for rendering tools.
	DOT string `json:"dot"`
}

// AnalyzeDocument builds the dependency graph and equivalence classes for a
// clause list. A nil or empty list is a valid input with an empty result.
func (a *Analyzer) AnalyzeDocument(clauses []graph.Clause) *DocumentResult {
	g := graph.Build(clauses)
	cycles := g.FindCycles()
	if cycles == nil {
		cycles = [][]string{}
	}

	result := &DocumentResult{
		Stats:              g.Stats(),
		Cycles:             cycles,
		TopologicalOrder:   g.TopologicalSort(),
		EquivalenceClasses: cluster.Group(clauses, a.cfg.SimilarityThreshold),
		DOT:                g.ExportDOT(),
	}

	a.logger.Debug("pipeline analyzed document",
		zap.Int("clauses", len(clauses)),
		zap.Int("edges", result.Stats.Edges),
		zap.Int("cycles", len(result.Cycles)),
		zap.Int("classes", len(result.EquivalenceClasses)))
	return result
}
