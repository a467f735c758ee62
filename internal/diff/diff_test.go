package diff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompute_DeleteSuffix(t *testing.T) {
	got := Compute("hello world", "hello")
	want := []Segment{
		{Kind: Equal, Text: "hello"},
		{Kind: Delete, Text: "world"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("script mismatch (-want +got):\n%s", diff)
	}
}

func TestCompute_ReplacementEmitsDeleteBeforeInsert(t *testing.T) {
	got := Compute("a b c", "a x c")
	want := []Segment{
		{Kind: Equal, Text: "a"},
		{Kind: Delete, Text: "b"},
		{Kind: Insert, Text: "x"},
		{Kind: Equal, Text: "c"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("script mismatch (-want +got):\n%s", diff)
	}
}

func TestCompute_IdenticalTexts(t *testing.T) {
	got := Compute("the fee is due", "the fee is due")
	want := []Segment{{Kind: Equal, Text: "the fee is due"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("script mismatch (-want +got):\n%s", diff)
	}
}

func TestCompute_BothEmpty(t *testing.T) {
	got := Compute("", "")
	if got == nil || len(got) != 0 {
		t.Errorf("expected an empty, non-nil script, got %v", got)
	}
}

func TestCompute_InsertOnly(t *testing.T) {
	got := Compute("", "brand new text")
	want := []Segment{{Kind: Insert, Text: "brand new text"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("script mismatch (-want +got):\n%s", diff)
	}
}

func TestCompute_RoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"the contractor should respond promptly", "the contractor shall respond within five (5) business days"},
		{"a b c d e", "a c e f"},
		{"one two three", "four five six"},
		{"same same", "same same"},
		{"", "only new"},
		{"only old", ""},
	}
	for _, p := range pairs {
		script := Compute(p[0], p[1])
		if got, want := ReplayOld(script), strings.Join(strings.Fields(p[0]), " "); got != want {
			t.Errorf("ReplayOld(%q, %q) = %q, want %q", p[0], p[1], got, want)
		}
		if got, want := ReplayNew(script), strings.Join(strings.Fields(p[1]), " "); got != want {
			t.Errorf("ReplayNew(%q, %q) = %q, want %q", p[0], p[1], got, want)
		}
	}
}

func TestCompute_AdjacentSegmentsDiffer(t *testing.T) {
	script := Compute("alpha beta gamma delta", "alpha gamma epsilon delta zeta")
	for i := 1; i < len(script); i++ {
		if script[i].Kind == script[i-1].Kind {
			t.Errorf("segments %d and %d share kind %s: %v", i-1, i, script[i].Kind, script)
		}
	}
}

func TestEngine_CachedResultMatches(t *testing.T) {
	e := NewEngine()
	first := e.Compute("a b c", "a c")
	second := e.Compute("a b c", "a c")
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cached script differs (-first +second):\n%s", diff)
	}

	e.ClearCache()
	third := e.Compute("a b c", "a c")
	if diff := cmp.Diff(first, third); diff != "" {
		t.Errorf("recomputed script differs (-first +third):\n%s", diff)
	}
}

func TestEngine_DistinctPairsDistinctEntries(t *testing.T) {
	e := NewEngine()
	ab := e.Compute("a", "b")
	cd := e.Compute("c", "d")
	if cmp.Equal(ab, cd) {
		t.Errorf("distinct inputs should not collide: %v vs %v", ab, cd)
	}
}
