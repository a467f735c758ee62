// Package ruliad projects the structural, logical, and ethical scores of a
// clause into a 3-bit state (one of eight named categories) and generates a
// natural-language explanation for it.
package ruliad

import "strings"

// DefaultThreshold is the score at or above which a dimension's bit is set.
const DefaultThreshold = 0.6

// State is the 3-bit classification of a clause. Each bit is a pure function
// of one score and the threshold.
type State struct {
	Q int `json:"q"` // structural bit
	L int `json:"l"` // logical bit
	K int `json:"k"` // ethical bit

	Name        string `json:"name"`
	Explanation string `json:"explanation"`
}

// Bits returns the state as a compact "qlk" binary string, e.g. "101".
func (s State) Bits() string {
	return string([]byte{'0' + byte(s.Q), '0' + byte(s.L), '0' + byte(s.K)})
}

// names indexed by q<<2|l<<1|k.
var names = [8]string{
	"inert",
	"principled",
	"reasoned",
	"deliberate",
	"formed",
	"guarded",
	"argued",
	"coherent",
}

// sentences indexed the same way; one dedicated sentence per bit pattern.
var sentences = [8]string{
	"The clause does not register on any dimension; it reads as inert text rather than a working provision.",
	"Only the ethical dimension registers: the clause signals values but lacks both structure and logical shape.",
	"Only the logical dimension registers: there is an argument here, but it is neither well-formed nor grounded in protective language.",
	"Logical and ethical dimensions register without structural form; the intent is sound but the drafting is not.",
	"Only the structural dimension registers: the clause is well-formed but carries no logical or ethical weight.",
	"Structural and ethical dimensions register without logical form; the clause is careful in shape and values but asserts little.",
	"Structural and logical dimensions register without ethical grounding; the clause argues cleanly but is value-silent.",
	"All three dimensions register: the highest structural, logical, and ethical alignment this classification expresses.",
}

// FromScores thresholds the three scores into a State. Each bit is 1 iff the
// corresponding score is at or above threshold.
func FromScores(structural, logical, ethical, threshold float64) State {
	bit := func(score float64) int {
		if score >= threshold {
			return 1
		}
		return 0
	}
	s := State{Q: bit(structural), L: bit(logical), K: bit(ethical)}
	idx := s.Q<<2 | s.L<<1 | s.K
	s.Name = names[idx]
	s.Explanation = explain(s, idx)
	return s
}

func explain(s State, idx int) string {
	var positive []string
	if s.Q == 1 {
		positive = append(positive, "structural form")
	}
	if s.L == 1 {
		positive = append(positive, "logical form")
	}
	if s.K == 1 {
		positive = append(positive, "ethical alignment")
	}

	var b strings.Builder
	if len(positive) == 0 {
		b.WriteString("No dimension is positive. ")
	} else {
		b.WriteString("Positive dimensions: ")
		b.WriteString(strings.Join(positive, ", "))
		b.WriteString(". ")
	}
	b.WriteString(sentences[idx])
	return b.String()
}
