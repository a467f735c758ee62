package relation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"clauselens/internal/token"
)

func build(text string) Formula {
	normalized := token.Normalize(text)
	return Build(token.ClassifyAll(normalized), normalized)
}

func TestBuild_NoPreposition(t *testing.T) {
	f := build("the council protects the land")
	if len(f.Entities) != 0 || len(f.Relations) != 0 {
		t.Errorf("expected whole-clause predicate, got %+v", f)
	}
	if !strings.Contains(f.Text, "the council protects the land") {
		t.Errorf("formula should quote the raw clause: %q", f.Text)
	}
	if !strings.Contains(f.Notes, "no prepositions") {
		t.Errorf("notes should flag missing prepositions: %q", f.Notes)
	}
}

func TestBuild_NoPreposition_NegationNoted(t *testing.T) {
	f := build("the council never yields")
	if !strings.Contains(f.Notes, "negation") {
		t.Errorf("notes should mention negations: %q", f.Notes)
	}
}

func TestBuild_PrepositionSegments(t *testing.T) {
	f := build("the transfer of land to the council")

	wantEntities := []string{"Transfer", "Land", "Council"}
	if diff := cmp.Diff(wantEntities, f.Entities); diff != "" {
		t.Errorf("entities mismatch (-want +got):\n%s", diff)
	}

	wantRelations := []string{"Of(Transfer, Land)", "To(Land, Council)"}
	if diff := cmp.Diff(wantRelations, f.Relations); diff != "" {
		t.Errorf("relations mismatch (-want +got):\n%s", diff)
	}

	if !strings.HasPrefix(f.Text, "exists(Transfer, Land, Council):") {
		t.Errorf("unexpected formula text: %q", f.Text)
	}
	for _, predicate := range []string{"Entity(Transfer)", "Of(Transfer, Land)"} {
		if !strings.Contains(f.Text, predicate) {
			t.Errorf("formula missing %q: %q", predicate, f.Text)
		}
	}
}

func TestBuild_EntityDeduplication(t *testing.T) {
	f := build("the duty of the council to the council")
	want := []string{"Duty", "Council"}
	if diff := cmp.Diff(want, f.Entities); diff != "" {
		t.Errorf("entities should dedupe by first appearance (-want +got):\n%s", diff)
	}
}

func TestBuild_LeadingPrepositionSkipsRelation(t *testing.T) {
	// No phrase precedes the first preposition, so it yields no relation.
	f := build("of the essence in every term")
	for _, r := range f.Relations {
		if strings.HasPrefix(r, "Of(") {
			t.Errorf("leading preposition should not produce a relation: %v", f.Relations)
		}
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	f := Build([]token.Token{}, "")
	if len(f.Entities) != 0 || len(f.Relations) != 0 {
		t.Errorf("empty input should yield empty formula parts: %+v", f)
	}
}
