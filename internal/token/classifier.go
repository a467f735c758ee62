package token

import "unicode"

// Fixed word sets. Loaded once as package data and never mutated; treat them
// as immutable configuration, not tunables.
var (
	prepositions = makeSet(
		"of", "in", "to", "for", "with", "on", "at", "by", "from", "about",
		"into", "through", "after", "over", "between", "against", "during",
		"without", "before", "under", "around", "among", "upon", "within",
		"above", "below", "across", "toward", "towards", "regarding",
	)

	verbs = makeSet(
		// Copulas and auxiliaries
		"is", "are", "was", "were", "be", "been", "being",
		"has", "have", "had", "do", "does", "did",
		// Contract drafting verbs, base and third-person forms
		"protect", "protects", "provide", "provides", "govern", "governs",
		"require", "requires", "ensure", "ensures", "prohibit", "prohibits",
		"agree", "agrees", "terminate", "terminates", "deliver", "delivers",
		"pay", "pays", "notify", "notifies", "bind", "binds", "grant",
		"grants", "warrant", "warrants", "indemnify", "indemnifies",
		"assign", "assigns", "maintain", "maintains", "comply", "complies",
		"disclose", "discloses", "perform", "performs", "hold", "holds",
		"submit", "submits", "waive", "waives", "limit", "limits",
		"apply", "applies", "remain", "remains", "include", "includes",
	)

	quantifiers = makeSet(
		"all", "some", "any", "each", "every", "no", "none", "most",
		"few", "many", "several", "both", "either", "neither", "whole",
	)

	negations = makeSet(
		"not", "no", "never", "neither", "nor", "cannot", "none",
	)
)

func makeSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Classify assigns the tag for a lower-cased token text. The function is pure
// and total: every input gets exactly one tag, with TagWord as the default.
// Priority order is fixed: NEG > PREP > VERB > QUANT > DET > CONJ > NUM > WORD.
func Classify(lower string) Tag {
	if _, ok := negations[lower]; ok {
		return TagNegation
	}
	if _, ok := prepositions[lower]; ok {
		return TagPreposition
	}
	if _, ok := verbs[lower]; ok {
		return TagVerb
	}
	if _, ok := quantifiers[lower]; ok {
		return TagQuantifier
	}
	if isDeterminer(lower) {
		return TagDeterminer
	}
	if isConjunction(lower) {
		return TagConjunction
	}
	if isNumeral(lower) {
		return TagNumeral
	}
	return TagWord
}

// Determiners and conjunctions are recognized by a fixed pattern check rather
// than a lookup set; the lists are short enough that a switch is clearer.
func isDeterminer(lower string) bool {
	switch lower {
	case "the", "a", "an", "this", "that", "these", "those", "such", "said":
		return true
	}
	return false
}

func isConjunction(lower string) bool {
	switch lower {
	case "and", "or", "but", "nor", "yet", "so", "while", "whereas":
		return true
	}
	return false
}

// isNumeral reports whether the token is a digit run (possibly with a decimal
// point), e.g. "30" or "2.5". Spelled-out numbers stay WORDs.
func isNumeral(lower string) bool {
	if lower == "" {
		return false
	}
	sawDigit := false
	for _, r := range lower {
		switch {
		case unicode.IsDigit(r):
			sawDigit = true
		case r == '.':
			// allowed separator
		default:
			return false
		}
	}
	return sawDigit
}

// ClassifyAll tokenizes normalized text and tags every token in place.
func ClassifyAll(text string) []Token {
	tokens := Tokenize(text)
	for i := range tokens {
		tokens[i].Tag = Classify(tokens[i].Lower)
	}
	return tokens
}

// IsStopTag reports whether a tag marks filler that should not name an
// entity (determiners and conjunctions).
func IsStopTag(t Tag) bool {
	return t == TagDeterminer || t == TagConjunction
}
