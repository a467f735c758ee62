package rewrite

import (
	"strings"
	"unicode"
)

// Candidate records one rule match found while building the improved text.
type Candidate struct {
	Category  Category `json:"category"`
	Original  string   `json:"original"`  // matched text as it appears
	Suggested string   `json:"suggested"` // replacement text

	// Confidence is the source rule's confidence, in (0,1].
	Confidence float64 `json:"confidence"`

	// SourcePattern identifies the rule that produced this candidate.
	SourcePattern string `json:"source_pattern"`
}

// CategoryMetrics aggregates candidates per category.
type CategoryMetrics struct {
	Count          int     `json:"count"`
	MeanConfidence float64 `json:"mean_confidence"`

	// Impact is the summed confidence of all candidates in the category.
	Impact float64 `json:"impact"`
}

// Result is the output of a single rewrite pass.
type Result struct {
	Original   string                       `json:"original"`
	Improved   string                       `json:"improved"`
	Candidates []Candidate                  `json:"candidates"`
	Categories map[Category]CategoryMetrics `json:"categories"`
}

// Apply runs every rule of the table, in order, against the running text.
// Every match is recorded as a candidate; the first occurrence is replaced to
// build the improved text. No matches anywhere yields an empty candidate list
// and the unmodified text.
func Apply(text string) Result {
	improved := text
	candidates := []Candidate{}

	for _, rule := range ruleTable {
		matches := findMatches(improved, rule.Pattern)
		for _, m := range matches {
			candidates = append(candidates, Candidate{
				Category:      rule.Category,
				Original:      improved[m.start:m.end],
				Suggested:     rule.Replacement,
				Confidence:    rule.Confidence,
				SourcePattern: rule.Pattern,
			})
		}
		if len(matches) > 0 {
			first := matches[0]
			improved = improved[:first.start] + rule.Replacement + improved[first.end:]
		}
	}

	return Result{
		Original:   text,
		Improved:   improved,
		Candidates: candidates,
		Categories: aggregate(candidates),
	}
}

func aggregate(candidates []Candidate) map[Category]CategoryMetrics {
	out := make(map[Category]CategoryMetrics)
	for _, c := range candidates {
		m := out[c.Category]
		m.Count++
		m.Impact += c.Confidence
		out[c.Category] = m
	}
	for cat, m := range out {
		m.MeanConfidence = m.Impact / float64(m.Count)
		out[cat] = m
	}
	return out
}

type match struct {
	start, end int
}

// findMatches returns every word-boundary-safe, case-insensitive occurrence
// of pattern in text, left to right, non-overlapping.
func findMatches(text, pattern string) []match {
	if pattern == "" {
		return nil
	}
	lowerText := strings.ToLower(text)
	lowerPat := strings.ToLower(pattern)

	var matches []match
	from := 0
	for {
		i := strings.Index(lowerText[from:], lowerPat)
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(lowerPat)
		if boundaryBefore(lowerText, start) && boundaryAfter(lowerText, end) {
			matches = append(matches, match{start, end})
			from = end
		} else {
			from = start + 1
		}
	}
	return matches
}

// applyFirst replaces the first occurrence of the rule's pattern, reporting
// whether the text changed. Used by the multiway explorer.
func applyFirst(text string, rule Rule) (string, bool) {
	matches := findMatches(text, rule.Pattern)
	if len(matches) == 0 {
		return text, false
	}
	m := matches[0]
	rewritten := text[:m.start] + rule.Replacement + text[m.end:]
	return rewritten, rewritten != text
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	return !isWordRune(rune(text[i-1]))
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	return !isWordRune(rune(text[i]))
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
