// Package graph infers a directed dependency graph over a collection of
// clauses and exposes ordering and cycle analysis on it. Edges are inferred
// lexically: section cross-references, defined-term usage, and temporal or
// conditional cue words paired with key terms of the target clause.
package graph

import (
	"fmt"
	"regexp"
	"strings"
)

// Clause is one record of the input document.
type Clause struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	SectionNumber string   `json:"section_number,omitempty" yaml:"section"`
	DefinedTerms  []string `json:"defined_terms,omitempty" yaml:"defined_terms"`
}

// EdgeKind tags the inferred relation behind an edge.
type EdgeKind string

const (
	KindCrossReference EdgeKind = "cross-reference"
	KindDefinition     EdgeKind = "definition"
	KindTemporal       EdgeKind = "temporal"
	KindConditional    EdgeKind = "conditional"
)

// Edge is a directed dependency: From depends on To.
type Edge struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Kind EdgeKind `json:"kind"`
}

// Graph is the built dependency graph. Construction is per call; the graph
// is not safe for concurrent mutation but is read-only after Build.
type Graph struct {
	clauses map[string]Clause
	order   []string // vertex ids in insertion order, for stable output
	edges   []Edge
	edgeSet map[Edge]struct{}
	out     map[string][]string // adjacency, deduplicated per (from,to)
	outSet  map[[2]string]struct{}
}

var (
	sectionRefPattern = regexp.MustCompile(`(?i)\b(?:section|clause|article|exhibit|schedule)\s+([0-9]+(?:\.[0-9]+)*|[A-Za-z])\b`)
	capitalizedSpan   = regexp.MustCompile(`\b[A-Z][A-Za-z]*(?:\s+[A-Z][A-Za-z]*)+\b`)
	quotedSpan        = regexp.MustCompile(`"([^"]{2,60})"|“([^”]{2,60})”`)
)

var temporalCues = []string{
	"prior to", "following", "after", "before", "subsequent to", "upon completion of",
}

var conditionalCues = []string{
	"subject to", "notwithstanding", "unless", "provided that",
	"contingent upon", "conditioned on",
}

// Build constructs the dependency graph for a clause list. Clauses with
// duplicate ids keep the first occurrence. An empty input yields an empty,
// valid graph.
func Build(clauses []Clause) *Graph {
	g := &Graph{
		clauses: make(map[string]Clause, len(clauses)),
		edges:   []Edge{},
		edgeSet: make(map[Edge]struct{}),
		out:     make(map[string][]string),
		outSet:  make(map[[2]string]struct{}),
	}
	for _, c := range clauses {
		if _, dup := g.clauses[c.ID]; dup {
			continue
		}
		g.clauses[c.ID] = c
		g.order = append(g.order, c.ID)
	}

	for _, fromID := range g.order {
		from := g.clauses[fromID]
		fromLower := strings.ToLower(from.Text)
		refs := sectionRefs(from.Text)
		hasTemporal := containsAny(fromLower, temporalCues)
		hasConditional := containsAny(fromLower, conditionalCues)

		for _, toID := range g.order {
			if toID == fromID {
				continue
			}
			to := g.clauses[toID]

			if to.SectionNumber != "" && refs[strings.ToLower(to.SectionNumber)] {
				g.addEdge(fromID, toID, KindCrossReference)
			}
			for _, term := range to.DefinedTerms {
				if term != "" && strings.Contains(fromLower, strings.ToLower(term)) {
					g.addEdge(fromID, toID, KindDefinition)
					break
				}
			}
			if hasTemporal || hasConditional {
				for _, key := range KeyTerms(to.Text) {
					if !strings.Contains(fromLower, strings.ToLower(key)) {
						continue
					}
					if hasTemporal {
						g.addEdge(fromID, toID, KindTemporal)
					}
					if hasConditional {
						g.addEdge(fromID, toID, KindConditional)
					}
					break
				}
			}
		}
	}
	return g
}

func (g *Graph) addEdge(from, to string, kind EdgeKind) {
	e := Edge{From: from, To: to, Kind: kind}
	if _, dup := g.edgeSet[e]; dup {
		return
	}
	g.edgeSet[e] = struct{}{}
	g.edges = append(g.edges, e)

	pair := [2]string{from, to}
	if _, dup := g.outSet[pair]; !dup {
		g.outSet[pair] = struct{}{}
		g.out[from] = append(g.out[from], to)
	}
}

// Edges returns the deduplicated edge list in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// VertexIDs returns the clause ids in input order.
func (g *Graph) VertexIDs() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Clause looks up a vertex by id.
func (g *Graph) Clause(id string) (Clause, bool) {
	c, ok := g.clauses[id]
	return c, ok
}

// KeyTerms extracts the key terms of a clause text: capitalized multi-word
// spans and quoted spans.
func KeyTerms(text string) []string {
	var terms []string
	seen := make(map[string]struct{})
	add := func(term string) {
		term = strings.TrimSpace(term)
		if term == "" {
			return
		}
		key := strings.ToLower(term)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		terms = append(terms, term)
	}
	for _, m := range capitalizedSpan.FindAllString(text, -1) {
		add(m)
	}
	for _, m := range quotedSpan.FindAllStringSubmatch(text, -1) {
		if m[1] != "" {
			add(m[1])
		} else {
			add(m[2])
		}
	}
	return terms
}

// sectionRefs collects the section/clause/exhibit numbers a text mentions,
// lower-cased for comparison.
func sectionRefs(text string) map[string]bool {
	refs := make(map[string]bool)
	for _, m := range sectionRefPattern.FindAllStringSubmatch(text, -1) {
		refs[strings.ToLower(m[1])] = true
	}
	return refs
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// Stats summarizes graph shape.
type Stats struct {
	Vertices     int     `json:"vertices"`
	Edges        int     `json:"edges"`
	Density      float64 `json:"density"`
	AvgOutDegree float64 `json:"avg_out_degree"`
}

// Stats computes vertex/edge counts, density (edges over the maximum possible
// directed edge count), and average out-degree.
func (g *Graph) Stats() Stats {
	s := Stats{Vertices: len(g.order), Edges: len(g.edges)}
	if s.Vertices > 1 {
		s.Density = float64(s.Edges) / float64(s.Vertices*(s.Vertices-1))
	}
	if s.Vertices > 0 {
		s.AvgOutDegree = float64(s.Edges) / float64(s.Vertices)
	}
	return s
}

// ExportDOT renders the graph in Graphviz DOT form: node declarations first,
// then edge declarations, both in stable order for diffable output.
func (g *Graph) ExportDOT() string {
	var b strings.Builder
	b.WriteString("digraph clauses {\n")
	for _, id := range g.order {
		c := g.clauses[id]
		label := id
		if c.SectionNumber != "" {
			label = fmt.Sprintf("%s (§%s)", id, c.SectionNumber)
		}
		fmt.Fprintf(&b, "  %q [label=%q];\n", id, label)
	}
	for _, e := range g.edges {
		fmt.Fprintf(&b, "  %q -> %q [label=%q];\n", e.From, e.To, string(e.Kind))
	}
	b.WriteString("}\n")
	return b.String()
}
