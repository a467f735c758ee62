// Package rewrite suggests rule-based redrafts of a clause. A fixed, ordered
// table of pattern→replacement rules produces candidates and an "improved"
// text; the multiway explorer enumerates alternative rewrite sequences as a
// bounded search tree.
package rewrite

// Category groups rules by the kind of improvement they target.
type Category string

const (
	CategoryPrecision      Category = "precision"
	CategoryEnforceability Category = "enforceability"
	CategoryRiskReduction  Category = "risk-reduction"
)

// Rule is one entry of the rewrite table. Pattern matching is
// case-insensitive and word-boundary-safe.
type Rule struct {
	Pattern     string   `json:"pattern"`
	Replacement string   `json:"replacement"`
	Category    Category `json:"category"`

	// Confidence in (0,1]: how often this rewrite is an improvement.
	Confidence float64 `json:"confidence"`
}

// ruleTable is the fixed ordered rule set. Order matters: earlier rules see
// the text before later ones rewrite it. Immutable package data.
var ruleTable = []Rule{
	// Precision: replace vague drafting with measurable language.
	{"reasonable efforts", "commercially reasonable efforts", CategoryPrecision, 0.7},
	{"promptly", "within five (5) business days", CategoryPrecision, 0.8},
	{"as needed", "as reasonably required and documented", CategoryPrecision, 0.5},
	{"from time to time", "at scheduled quarterly intervals", CategoryPrecision, 0.6},
	{"timely", "within the period stated in the schedule", CategoryPrecision, 0.6},
	{"adequate", "sufficient to meet the stated requirements", CategoryPrecision, 0.5},
	{"substantially", "in all material respects", CategoryPrecision, 0.55},
	{"periodically", "no less than once per calendar quarter", CategoryPrecision, 0.6},

	// Enforceability: turn aspiration into obligation.
	{"best efforts", "commercially reasonable efforts", CategoryEnforceability, 0.75},
	{"should", "shall", CategoryEnforceability, 0.9},
	{"agrees to use", "shall use", CategoryEnforceability, 0.8},
	{"intends to", "shall", CategoryEnforceability, 0.7},
	{"endeavor to", "shall", CategoryEnforceability, 0.8},
	{"endeavour to", "shall", CategoryEnforceability, 0.8},
	{"as mutually agreed", "as set out in the attached schedule", CategoryEnforceability, 0.6},

	// Risk reduction: cap exposure and add notice.
	{"unlimited liability", "liability capped at the fees paid in the preceding twelve months", CategoryRiskReduction, 0.85},
	{"sole discretion", "reasonable discretion", CategoryRiskReduction, 0.8},
	{"without notice", "upon thirty (30) days' written notice", CategoryRiskReduction, 0.8},
	{"perpetual", "for the term of this agreement", CategoryRiskReduction, 0.7},
	{"irrevocable", "revocable upon material breach", CategoryRiskReduction, 0.6},
	{"notwithstanding anything", "subject to the limitations of liability stated herein", CategoryRiskReduction, 0.5},
}

// Rules returns a copy of the rule table so callers cannot mutate the shared
// ordering.
func Rules() []Rule {
	out := make([]Rule, len(ruleTable))
	copy(out, ruleTable)
	return out
}

// RuleCount is the size of the fixed table; the multiway node bound is
// expressed in terms of it.
func RuleCount() int {
	return len(ruleTable)
}
