// Package metrics scores a tagged token sequence along five independent
// heuristic dimensions: structural form, logical form, ethical alignment,
// ambiguity, and modal profile. All scores are lexical counts run through
// gated weighted sums; none of this is semantic analysis and none of it
// claims legal correctness.
package metrics

import (
	"fmt"
	"strings"

	"clauselens/internal/token"
)

// MetricResult is the uniform output of every scorer.
type MetricResult struct {
	// Score is always within [0,1].
	Score float64 `json:"score"`

	// Label is a short machine-stable summary ("strong", "weak", "empty", ...).
	Label string `json:"label"`

	// Notes is a human-readable explanation of which terms fired.
	Notes string `json:"notes"`
}

// ModalProfile tallies deontic vocabulary. It is a structured count, not a
// single score.
type ModalProfile struct {
	Obligation     int    `json:"obligation"`
	Permission     int    `json:"permission"`
	Recommendation int    `json:"recommendation"`
	Summary        string `json:"summary"`
}

// Total returns the combined modal word count.
func (m ModalProfile) Total() int {
	return m.Obligation + m.Permission + m.Recommendation
}

// Stats is the single shared pass of token statistics consumed by all five
// scorers. Collect fills it once; the scorers are pure functions over it.
type Stats struct {
	TokenCount  int
	VerbCount   int
	PrepCount   int
	QuantCount  int
	NegCount    int
	GarbageCount int // tokens whose cleaned form is empty (bare punctuation)

	Modal ModalProfile

	// Lexical hit lists, in order of appearance.
	ProtectiveHits []string
	HarmfulHits    []string
	PersonHits     []string
	VagueHits      []string
}

// Collect computes the shared statistics for a classified token sequence.
func Collect(tokens []token.Token) Stats {
	var s Stats
	s.TokenCount = len(tokens)

	lowers := make([]string, 0, len(tokens))
	for _, t := range tokens {
		lowers = append(lowers, t.Lower)
		switch t.Tag {
		case token.TagVerb:
			s.VerbCount++
		case token.TagPreposition:
			s.PrepCount++
		case token.TagQuantifier:
			s.QuantCount++
		case token.TagNegation:
			s.NegCount++
		}
		if t.Clean == "" {
			s.GarbageCount++
		}

		if _, ok := obligationWords[t.Lower]; ok {
			s.Modal.Obligation++
		}
		if _, ok := permissionWords[t.Lower]; ok {
			s.Modal.Permission++
		}
		if _, ok := recommendationWords[t.Lower]; ok {
			s.Modal.Recommendation++
		}

		if _, ok := protectiveWords[t.Lower]; ok {
			s.ProtectiveHits = append(s.ProtectiveHits, t.Lower)
		}
		if _, ok := harmfulWords[t.Lower]; ok {
			s.HarmfulHits = append(s.HarmfulHits, t.Lower)
		}
		if _, ok := personWords[t.Lower]; ok {
			s.PersonHits = append(s.PersonHits, t.Lower)
		}
		if _, ok := vagueWords[t.Lower]; ok {
			s.VagueHits = append(s.VagueHits, t.Lower)
		}
	}

	// Multi-word vague phrases are matched against the joined lower text.
	joined := strings.Join(lowers, " ")
	for _, phrase := range vaguePhrases {
		if strings.Contains(joined, phrase) {
			s.VagueHits = append(s.VagueHits, phrase)
		}
	}

	return s
}

// clamp bounds a score to [0,1]; several scorers can otherwise exceed the
// range on pathological inputs.
func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// Structural scores surface well-formedness.
// Weights: +0.4 verb present, +0.3 at least 6 tokens, +0.2 preposition
// present, +0.1 no garbage tokens.
func Structural(s Stats) MetricResult {
	if s.TokenCount == 0 {
		return MetricResult{Score: 0, Label: "empty", Notes: "no tokens"}
	}
	score := 0.0
	var parts []string
	if s.VerbCount > 0 {
		score += 0.4
		parts = append(parts, fmt.Sprintf("%d verb(s)", s.VerbCount))
	}
	if s.TokenCount >= 6 {
		score += 0.3
		parts = append(parts, fmt.Sprintf("%d tokens", s.TokenCount))
	}
	if s.PrepCount > 0 {
		score += 0.2
		parts = append(parts, fmt.Sprintf("%d preposition(s)", s.PrepCount))
	}
	if s.GarbageCount == 0 {
		score += 0.1
		parts = append(parts, "no garbage tokens")
	}
	return MetricResult{
		Score: clamp(score),
		Label: gradeLabel(score),
		Notes: "structural signals: " + joinOrNone(parts),
	}
}

// Logical scores predicate shape.
// Weights: +0.4 verb present, +0.3 preposition present, +0.2 quantifier or
// modal present, +0.1 negation present alongside a verb.
func Logical(s Stats) MetricResult {
	if s.TokenCount == 0 {
		return MetricResult{Score: 0, Label: "empty", Notes: "no tokens"}
	}
	score := 0.0
	var parts []string
	if s.VerbCount > 0 {
		score += 0.4
		parts = append(parts, "predicate verb")
	}
	if s.PrepCount > 0 {
		score += 0.3
		parts = append(parts, "relational preposition")
	}
	if s.QuantCount+s.Modal.Total() > 0 {
		score += 0.2
		parts = append(parts, "quantifier or modal")
	}
	if s.NegCount > 0 && s.VerbCount > 0 {
		score += 0.1
		parts = append(parts, "negated predicate")
	}
	return MetricResult{
		Score: clamp(score),
		Label: gradeLabel(score),
		Notes: "logical signals: " + joinOrNone(parts),
	}
}

// Ethical starts from a neutral 0.5 and moves ±0.1 per protective/harmful
// word hit, clamped to [0,1]. It also flags person words co-occurring with
// harmful vocabulary (treating persons as mere means) or with exclusively
// protective vocabulary.
func Ethical(s Stats) MetricResult {
	if s.TokenCount == 0 {
		return MetricResult{Score: 0, Label: "empty", Notes: "no tokens"}
	}
	score := 0.5 + 0.1*float64(len(s.ProtectiveHits)) - 0.1*float64(len(s.HarmfulHits))
	score = clamp(score)

	notes := fmt.Sprintf("protective=%d harmful=%d", len(s.ProtectiveHits), len(s.HarmfulHits))
	label := "neutral"
	switch {
	case score >= 0.7:
		label = "aligned"
	case score < 0.4:
		label = "misaligned"
	}
	if len(s.PersonHits) > 0 && len(s.HarmfulHits) > 0 {
		notes += "; warning: persons referenced alongside harmful terms"
	} else if len(s.PersonHits) > 0 && len(s.ProtectiveHits) > 0 {
		notes += "; persons referenced in a protective context"
	}
	return MetricResult{Score: score, Label: label, Notes: notes}
}

// Ambiguity penalizes vague drafting terms: 1.0 minus 0.08 per hit, capped at
// 10 hits, floored at 0. An empty clause is trivially unambiguous.
func Ambiguity(s Stats) MetricResult {
	hits := len(s.VagueHits)
	capped := hits
	if capped > ambiguityHitCap {
		capped = ambiguityHitCap
	}
	score := clamp(1.0 - float64(capped)*ambiguityStep)

	notes := "no vague terms"
	if hits > 0 {
		notes = "vague terms: " + strings.Join(s.VagueHits, ", ")
	}
	label := "precise"
	switch {
	case score < 0.5:
		label = "vague"
	case score < 0.85:
		label = "imprecise"
	}
	return MetricResult{Score: score, Label: label, Notes: notes}
}

const (
	ambiguityHitCap = 10
	ambiguityStep   = 0.08
)

// Modal returns the deontic tally with a summary string. Empty input
// degrades to a zero tally, not an error.
func Modal(s Stats) ModalProfile {
	m := s.Modal
	if m.Total() == 0 {
		m.Summary = "no modal vocabulary"
		return m
	}
	m.Summary = fmt.Sprintf("obligation=%d permission=%d recommendation=%d",
		m.Obligation, m.Permission, m.Recommendation)
	return m
}

func gradeLabel(score float64) string {
	switch {
	case score >= 0.8:
		return "strong"
	case score >= 0.5:
		return "moderate"
	default:
		return "weak"
	}
}

func joinOrNone(parts []string) string {
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
