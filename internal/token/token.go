// Package token turns a normalized clause into a positioned, tagged token
// sequence. Tokenization is deliberately naive (whitespace split, punctuation
// strip); the downstream scorers are lexical heuristics, not a parser.
package token

import (
	"strings"
	"unicode"
)

// Tag classifies a single token. Exactly one tag applies to every token;
// assignment follows a fixed priority order (see Classify).
type Tag int

const (
	TagWord Tag = iota // Default: anything not matched below
	TagNegation
	TagPreposition
	TagVerb
	TagQuantifier
	TagDeterminer
	TagConjunction
	TagNumeral
)

// String returns the short wire name of the tag.
func (t Tag) String() string {
	switch t {
	case TagNegation:
		return "NEG"
	case TagPreposition:
		return "PREP"
	case TagVerb:
		return "VERB"
	case TagQuantifier:
		return "QUANT"
	case TagDeterminer:
		return "DET"
	case TagConjunction:
		return "CONJ"
	case TagNumeral:
		return "NUM"
	default:
		return "WORD"
	}
}

// MarshalText implements encoding.TextMarshaler so results serialize with
// readable tag names rather than integers.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Token is a single positioned word of the input clause.
type Token struct {
	// Index is the zero-based position in the token sequence.
	Index int `json:"index"`

	// Raw is the original whitespace-delimited chunk.
	Raw string `json:"raw"`

	// Clean is Raw with leading/trailing non-letter-non-digit runes stripped.
	Clean string `json:"clean"`

	// Lower is the lower-cased Clean form; all classification keys off this.
	Lower string `json:"lower"`

	// Tag is the classification of Lower.
	Tag Tag `json:"tag"`
}

// Normalize collapses runs of whitespace to single spaces and trims the ends.
// Callers are expected to normalize before tokenizing and before cache keying
// so that trivially different inputs coincide.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Tokenize splits normalized text into tokens. Empty input yields an empty
// slice, never an error. Tags are left at the zero value; use Classify or
// ClassifyAll to assign them.
func Tokenize(text string) []Token {
	if text == "" {
		return []Token{}
	}
	chunks := strings.Split(text, " ")
	tokens := make([]Token, 0, len(chunks))
	for i, chunk := range chunks {
		clean := strings.TrimFunc(chunk, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		tokens = append(tokens, Token{
			Index: i,
			Raw:   chunk,
			Clean: clean,
			Lower: strings.ToLower(clean),
		})
	}
	return tokens
}
