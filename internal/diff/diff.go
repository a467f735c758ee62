// Package diff computes a word-level edit script between two texts via the
// classic longest-common-subsequence dynamic program. The script is minimal
// and replayable: equal+delete segments reconstruct the original token
// sequence, equal+insert segments the new one. Rendering is left to callers.
package diff

import (
	"hash/fnv"
	"strings"
	"sync"
)

// Kind classifies a diff segment.
type Kind string

const (
	Equal  Kind = "equal"
	Delete Kind = "delete"
	Insert Kind = "insert"
)

// Segment is one run of the edit script. Text holds the space-joined tokens
// of the run.
type Segment struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Engine computes diffs and memoizes results for identical input pairs.
type Engine struct {
	cache sync.Map // cacheKey -> []Segment
}

type cacheKey struct {
	oldHash uint64
	newHash uint64
}

// NewEngine creates a diff engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Compute diffs two texts tokenized on whitespace. The O(m·n) table is
// acceptable at clause length; Hirschberg's algorithm would cut the space to
// O(min(m,n)) if inputs ever grow substantially.
func (e *Engine) Compute(oldText, newText string) []Segment {
	key := cacheKey{oldHash: hash(oldText), newHash: hash(newText)}
	if cached, ok := e.cache.Load(key); ok {
		if segments, ok := cached.([]Segment); ok {
			return segments
		}
	}

	segments := compute(strings.Fields(oldText), strings.Fields(newText))
	e.cache.Store(key, segments)
	return segments
}

// Compute is a convenience wrapper that builds no cache.
func Compute(oldText, newText string) []Segment {
	return compute(strings.Fields(oldText), strings.Fields(newText))
}

func compute(oldTokens, newTokens []string) []Segment {
	m, n := len(oldTokens), len(newTokens)

	// LCS length table; table[i][j] is the LCS of oldTokens[i:], newTokens[j:].
	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
	}
	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			if oldTokens[i] == newTokens[j] {
				table[i][j] = table[i+1][j+1] + 1
			} else if table[i+1][j] >= table[i][j+1] {
				table[i][j] = table[i+1][j]
			} else {
				table[i][j] = table[i][j+1]
			}
		}
	}

	// Backtrack, emitting deletes before inserts within a replaced region.
	var ops []Segment
	emit := func(kind Kind, text string) {
		if n := len(ops); n > 0 && ops[n-1].Kind == kind {
			ops[n-1].Text += " " + text
			return
		}
		ops = append(ops, Segment{Kind: kind, Text: text})
	}

	i, j := 0, 0
	for i < m && j < n {
		switch {
		case oldTokens[i] == newTokens[j]:
			emit(Equal, oldTokens[i])
			i++
			j++
		case table[i+1][j] >= table[i][j+1]:
			emit(Delete, oldTokens[i])
			i++
		default:
			emit(Insert, newTokens[j])
			j++
		}
	}
	for ; i < m; i++ {
		emit(Delete, oldTokens[i])
	}
	for ; j < n; j++ {
		emit(Insert, newTokens[j])
	}

	if ops == nil {
		ops = []Segment{}
	}
	return ops
}

// ReplayOld reconstructs the original token sequence from a script.
func ReplayOld(segments []Segment) string {
	return replay(segments, Delete)
}

// ReplayNew reconstructs the new token sequence from a script.
func ReplayNew(segments []Segment) string {
	return replay(segments, Insert)
}

func replay(segments []Segment, side Kind) string {
	var parts []string
	for _, s := range segments {
		if s.Kind == Equal || s.Kind == side {
			parts = append(parts, s.Text)
		}
	}
	return strings.Join(parts, " ")
}

// ClearCache drops all memoized scripts.
func (e *Engine) ClearCache() {
	e.cache = sync.Map{}
}

func hash(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}
