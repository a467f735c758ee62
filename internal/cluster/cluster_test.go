package cluster

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"clauselens/internal/graph"
)

func TestGroup_NearDuplicatesShareAClass(t *testing.T) {
	clauses := []graph.Clause{
		{ID: "a", Text: "The contractor shall pay the fee."},
		{ID: "b", Text: "The contractor shall pay the fee promptly."},
		{ID: "c", Text: "No data is transferred after termination."},
	}
	classes := Group(clauses, DefaultThreshold)

	want := []Class{
		{Representative: "a", Members: []string{"a", "b"}},
		{Representative: "c", Members: []string{"c"}},
	}
	if diff := cmp.Diff(want, classes); diff != "" {
		t.Errorf("classes mismatch (-want +got):\n%s", diff)
	}
}

func TestGroup_ThresholdControlsMerging(t *testing.T) {
	clauses := []graph.Clause{
		{ID: "a", Text: "The parties shall act in good faith."},
		{ID: "b", Text: "The parties may act in bad faith."},
	}

	strict := Group(clauses, DefaultThreshold)
	if len(strict) != 2 {
		t.Errorf("expected separate classes at the default threshold, got %v", strict)
	}

	loose := Group(clauses, 0.6)
	if len(loose) != 1 || len(loose[0].Members) != 2 {
		t.Errorf("expected one merged class at 0.6, got %v", loose)
	}
}

func TestGroup_NonPositiveThresholdFallsBack(t *testing.T) {
	clauses := []graph.Clause{
		{ID: "a", Text: "The licensee shall indemnify the licensor."},
		{ID: "b", Text: "The licensee shall indemnify the licensor."},
	}
	classes := Group(clauses, 0)
	if len(classes) != 1 {
		t.Errorf("threshold 0 should mean the default, got %v", classes)
	}
}

func TestGroup_EmptyInput(t *testing.T) {
	classes := Group(nil, DefaultThreshold)
	if classes == nil || len(classes) != 0 {
		t.Errorf("expected an empty, non-nil slice, got %v", classes)
	}
}

func TestGroup_RepresentativeIsFirstMember(t *testing.T) {
	clauses := []graph.Clause{
		{ID: "x", Text: "Notices must be delivered in writing."},
		{ID: "y", Text: "Notices must be delivered in writing."},
		{ID: "z", Text: "Notices must be delivered in writing."},
	}
	classes := Group(clauses, DefaultThreshold)
	if len(classes) != 1 {
		t.Fatalf("identical clauses must share one class, got %v", classes)
	}
	if classes[0].Representative != "x" || classes[0].Members[0] != "x" {
		t.Errorf("representative should be the first assigned clause: %+v", classes[0])
	}
}

func TestTextSimilarity_Identical(t *testing.T) {
	if got := TextSimilarity("the fee is due", "the fee is due"); got != 1.0 {
		t.Errorf("identical texts must score 1.0, got %v", got)
	}
}

func TestTextSimilarity_BothEmpty(t *testing.T) {
	if got := TextSimilarity("", ""); got != 1.0 {
		t.Errorf("two empty texts are trivially equivalent, got %v", got)
	}
}

func TestTextSimilarity_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"the parties shall act in good faith", "the parties may act in bad faith"},
		{"no assignment without consent", "the term renews annually"},
		{"", "the fee is due"},
		{"subject to section 3 the fee applies", "unless terminated the fee applies"},
	}
	for _, p := range pairs {
		got := TextSimilarity(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("similarity(%q, %q) = %v out of [0,1]", p[0], p[1], got)
		}
	}
}
