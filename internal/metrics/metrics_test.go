package metrics

import (
	"math"
	"strings"
	"testing"

	"clauselens/internal/token"
)

func statsFor(text string) Stats {
	return Collect(token.ClassifyAll(token.Normalize(text)))
}

func TestStructural_Example(t *testing.T) {
	// 5 tokens, 1 verb, 0 prepositions, no garbage: 0.4 + 0.1 = 0.5.
	result := Structural(statsFor("the council protects the land"))
	if math.Abs(result.Score-0.5) > 1e-9 {
		t.Errorf("expected 0.5, got %v", result.Score)
	}
}

func TestStructural_AllSignals(t *testing.T) {
	// verb + >=6 tokens + preposition + clean tokens = 1.0.
	result := Structural(statsFor("the council protects the land of the people"))
	if math.Abs(result.Score-1.0) > 1e-9 {
		t.Errorf("expected 1.0, got %v", result.Score)
	}
}

func TestLogical_NegatedPredicate(t *testing.T) {
	// verb (0.4) + preposition (0.3) + quantifier (0.2) + negation with
	// verb (0.1) = 1.0.
	result := Logical(statsFor("no party is bound by all terms"))
	if math.Abs(result.Score-1.0) > 1e-9 {
		t.Errorf("expected 1.0, got %v: %s", result.Score, result.Notes)
	}
}

func TestEthical_ProtectiveShift(t *testing.T) {
	result := Ethical(statsFor("the council protects the land"))
	if math.Abs(result.Score-0.6) > 1e-9 {
		t.Errorf("expected 0.6, got %v", result.Score)
	}
}

func TestEthical_PersonWithHarmWarning(t *testing.T) {
	result := Ethical(statsFor("the employer may punish any employee"))
	if result.Score >= 0.5 {
		t.Errorf("harmful hit should lower score below 0.5, got %v", result.Score)
	}
	if !strings.Contains(result.Notes, "warning") {
		t.Errorf("expected person/harm warning in notes, got %q", result.Notes)
	}
}

func TestEthical_PersonProtectiveHint(t *testing.T) {
	result := Ethical(statsFor("the policy protects every employee"))
	if !strings.Contains(result.Notes, "protective context") {
		t.Errorf("expected protective-context note, got %q", result.Notes)
	}
}

func TestAmbiguity_VagueTerms(t *testing.T) {
	s := statsFor("reasonable efforts as needed")
	result := Ambiguity(s)
	if result.Score >= 1.0 {
		t.Errorf("expected score below 1.0, got %v", result.Score)
	}
	if len(s.VagueHits) == 0 {
		t.Fatal("expected vague term hits")
	}
	joined := strings.Join(s.VagueHits, "|")
	if !strings.Contains(joined, "reasonable") || !strings.Contains(joined, "as needed") {
		t.Errorf("expected both %q and %q among hits: %v", "reasonable", "as needed", s.VagueHits)
	}
}

func TestAmbiguity_HitCapFloorsAtZero(t *testing.T) {
	vague := strings.Repeat("reasonable appropriate timely material adequate ", 5)
	result := Ambiguity(statsFor(vague))
	if math.Abs(result.Score-0.2) > 1e-9 {
		// 25 hits capped at 10: 1.0 - 10*0.08 = 0.2.
		t.Errorf("expected 0.2 at hit cap, got %v", result.Score)
	}
}

func TestModal_Tally(t *testing.T) {
	m := Modal(statsFor("the supplier shall deliver and may subcontract but should consult"))
	if m.Obligation != 1 || m.Permission != 1 || m.Recommendation != 1 {
		t.Errorf("unexpected tally: %+v", m)
	}
	if m.Summary == "" {
		t.Error("expected non-empty summary")
	}
}

func TestEmptyInput(t *testing.T) {
	s := statsFor("")
	for name, result := range map[string]MetricResult{
		"structural": Structural(s),
		"logical":    Logical(s),
		"ethical":    Ethical(s),
	} {
		if result.Score != 0 || result.Label != "empty" {
			t.Errorf("%s: expected empty zero result, got %+v", name, result)
		}
	}
	if a := Ambiguity(s); a.Score != 1.0 {
		t.Errorf("ambiguity of empty input should be neutral 1.0, got %v", a.Score)
	}
	if m := Modal(s); m.Total() != 0 {
		t.Errorf("modal tally of empty input should be zero, got %+v", m)
	}
}

func TestScoreBounds(t *testing.T) {
	inputs := []string{
		"",
		"x",
		"the council protects the land of the people from harm",
		strings.Repeat("protects safeguards preserves defends supports ", 10),
		strings.Repeat("harms damages destroys exploits coerces ", 10),
		strings.Repeat("reasonable ", 50),
		"no no not never neither nor cannot",
	}
	for _, input := range inputs {
		s := statsFor(input)
		for name, result := range map[string]MetricResult{
			"structural": Structural(s),
			"logical":    Logical(s),
			"ethical":    Ethical(s),
			"ambiguity":  Ambiguity(s),
		} {
			if result.Score < 0 || result.Score > 1 {
				t.Errorf("%s(%q): score %v outside [0,1]", name, input, result.Score)
			}
		}
	}
}
