// Package relation builds a symbolic entity/relation skeleton from a
// classified token sequence. Prepositions act as segment boundaries: each
// maximal run of non-preposition tokens becomes an entity, each preposition a
// relation between its neighbouring entities. The output is a formula string
// in an existential-quantifier style, not a parse.
package relation

import (
	"fmt"
	"strings"
	"unicode"

	"clauselens/internal/token"
)

// Formula is the symbolic skeleton of a clause.
type Formula struct {
	// Entities in order of first appearance, deduplicated.
	Entities []string `json:"entities"`

	// Relations as "Rel(a,b)" strings, in reading order.
	Relations []string `json:"relations"`

	// Text is the rendered formula.
	Text string `json:"text"`

	// Notes summarizes segment counts and negations.
	Notes string `json:"notes"`
}

// Build constructs the relation skeleton. raw is the normalized clause text,
// used verbatim when no preposition exists to segment on.
func Build(tokens []token.Token, raw string) Formula {
	negations := 0
	hasPrep := false
	for _, t := range tokens {
		if t.Tag == token.TagNegation {
			negations++
		}
		if t.Tag == token.TagPreposition {
			hasPrep = true
		}
	}

	if !hasPrep {
		// Whole clause as a single predicate.
		notes := "no prepositions; clause treated as a single predicate"
		if negations > 0 {
			notes += fmt.Sprintf("; %d negation(s) present", negations)
		}
		return Formula{
			Entities:  []string{},
			Relations: []string{},
			Text:      fmt.Sprintf("Clause(%q)", raw),
			Notes:     notes,
		}
	}

	// Segment into alternating phrase / preposition runs.
	type segment struct {
		prep   bool
		tokens []token.Token
	}
	var segments []segment
	for _, t := range tokens {
		if t.Tag == token.TagPreposition {
			segments = append(segments, segment{prep: true, tokens: []token.Token{t}})
			continue
		}
		if n := len(segments); n > 0 && !segments[n-1].prep {
			segments[n-1].tokens = append(segments[n-1].tokens, t)
		} else {
			segments = append(segments, segment{tokens: []token.Token{t}})
		}
	}

	// Name each phrase segment after its last non-stopword token.
	entityOf := make([]string, len(segments))
	var entities []string
	seen := make(map[string]struct{})
	phraseCount := 0
	for i, seg := range segments {
		if seg.prep {
			continue
		}
		phraseCount++
		name := phraseEntity(seg.tokens)
		if name == "" {
			continue
		}
		entityOf[i] = name
		key := strings.ToLower(name)
		if _, dup := seen[key]; !dup {
			seen[key] = struct{}{}
			entities = append(entities, name)
		}
	}

	// Each preposition relates the entity before it to the following one.
	var relations []string
	relCount := 0
	for i, seg := range segments {
		if !seg.prep {
			continue
		}
		before := lastEntity(entityOf, i-1)
		after := nextEntity(entityOf, i+1)
		if before == "" || after == "" {
			continue
		}
		relCount++
		relations = append(relations, fmt.Sprintf("%s(%s, %s)",
			capitalize(seg.tokens[0].Lower), before, after))
	}

	notes := fmt.Sprintf("%d phrase segment(s), %d relation(s)", phraseCount, relCount)
	if negations > 0 {
		notes += fmt.Sprintf("; %d negation(s) present", negations)
	}

	return Formula{
		Entities:  nonNil(entities),
		Relations: nonNil(relations),
		Text:      render(entities, relations, raw),
		Notes:     notes,
	}
}

// phraseEntity picks the entity name for a phrase: the last token whose tag
// is not a determiner/conjunction and whose cleaned form is non-empty.
func phraseEntity(tokens []token.Token) string {
	for i := len(tokens) - 1; i >= 0; i-- {
		t := tokens[i]
		if token.IsStopTag(t.Tag) || t.Clean == "" {
			continue
		}
		return capitalize(t.Lower)
	}
	return ""
}

func lastEntity(entityOf []string, from int) string {
	for i := from; i >= 0; i-- {
		if entityOf[i] != "" {
			return entityOf[i]
		}
	}
	return ""
}

func nextEntity(entityOf []string, from int) string {
	for i := from; i < len(entityOf); i++ {
		if entityOf[i] != "" {
			return entityOf[i]
		}
	}
	return ""
}

func render(entities, relations []string, raw string) string {
	if len(entities) == 0 {
		return fmt.Sprintf("Clause(%q)", raw)
	}
	var predicates []string
	for _, e := range entities {
		predicates = append(predicates, fmt.Sprintf("Entity(%s)", e))
	}
	predicates = append(predicates, relations...)
	return fmt.Sprintf("exists(%s): %s",
		strings.Join(entities, ", "), strings.Join(predicates, " & "))
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
