// Package cluster groups clauses into equivalence classes by lexical and
// structural similarity. Pairwise comparison is O(n²); this is meant for
// document-sized clause collections, not corpora.
package cluster

import (
	"strings"

	"clauselens/internal/graph"
	"clauselens/internal/token"
)

// DefaultThreshold is the similarity at or above which two clauses are
// considered equivalent.
const DefaultThreshold = 0.8

// Class is one equivalence class of clause ids.
type Class struct {
	// Representative is the first clause assigned to the class.
	Representative string `json:"representative"`

	// Members includes the representative, in input order.
	Members []string `json:"members"`
}

// Jaccard and structural weights of the similarity blend.
const (
	lexicalWeight    = 0.6
	structuralWeight = 0.4
)

// Group greedily partitions the clauses: each unassigned clause seeds a class
// and absorbs every remaining clause whose similarity meets the threshold.
func Group(clauses []graph.Clause, threshold float64) []Class {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	sigs := make([]signature, len(clauses))
	for i, c := range clauses {
		sigs[i] = makeSignature(c.Text)
	}

	assigned := make([]bool, len(clauses))
	classes := []Class{}
	for i := range clauses {
		if assigned[i] {
			continue
		}
		assigned[i] = true
		class := Class{
			Representative: clauses[i].ID,
			Members:        []string{clauses[i].ID},
		}
		for j := i + 1; j < len(clauses); j++ {
			if assigned[j] {
				continue
			}
			if similarity(sigs[i], sigs[j]) >= threshold {
				assigned[j] = true
				class.Members = append(class.Members, clauses[j].ID)
			}
		}
		classes = append(classes, class)
	}
	return classes
}

// signature caches the comparable features of one clause.
type signature struct {
	tokens map[string]struct{}
	flags  [5]bool
}

// Coarse structural flags compared pairwise: obligation vocabulary, named
// parties, conditional cues, negation, numbers.
func makeSignature(text string) signature {
	var sig signature
	sig.tokens = make(map[string]struct{})

	lower := strings.ToLower(text)
	for _, t := range token.ClassifyAll(token.Normalize(text)) {
		if t.Lower == "" {
			continue
		}
		sig.tokens[t.Lower] = struct{}{}
		switch t.Lower {
		case "shall", "must", "will", "required", "obligated":
			sig.flags[0] = true
		case "party", "parties", "company", "contractor", "licensee", "licensor":
			sig.flags[1] = true
		}
		if t.Tag == token.TagNegation {
			sig.flags[3] = true
		}
		if t.Tag == token.TagNumeral {
			sig.flags[4] = true
		}
	}
	if strings.Contains(lower, "subject to") || strings.Contains(lower, "unless") ||
		strings.Contains(lower, "provided that") {
		sig.flags[2] = true
	}
	return sig
}

// TextSimilarity scores two clause texts directly; exposed for callers that
// compare clauses outside a grouping pass.
func TextSimilarity(a, b string) float64 {
	return similarity(makeSignature(a), makeSignature(b))
}

// similarity blends token-set Jaccard with structural flag agreement:
// 0.6*Jaccard + 0.4*(matching flags / flag count).
func similarity(a, b signature) float64 {
	return lexicalWeight*jaccard(a.tokens, b.tokens) + structuralWeight*flagMatch(a.flags, b.flags)
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	intersection := 0
	for t := range a {
		if _, ok := b[t]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func flagMatch(a, b [5]bool) float64 {
	matches := 0
	for i := range a {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches) / float64(len(a))
}
