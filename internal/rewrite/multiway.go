package rewrite

import "github.com/google/uuid"

// DefaultMaxDepth bounds the multiway search. Depth 2 over a table of r
// rules caps the node count at 1 + r + r².
const DefaultMaxDepth = 2

// Node is one state of the multiway graph: a text reachable from the root by
// a sequence of rule applications.
type Node struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Depth int    `json:"depth"`

	// ParentID is empty for the root.
	ParentID string `json:"parent_id,omitempty"`

	// RuleApplied is the pattern of the rule that produced this node.
	RuleApplied string `json:"rule_applied,omitempty"`
}

// Edge links a node to a rewrite of it.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Rule string `json:"rule"`
}

// Graph is the explored multiway state space.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`

	// TerminalIDs are nodes with no outgoing edge: either at max depth or
	// with no applicable rule.
	TerminalIDs []string `json:"terminal_ids"`

	MaxDepth int `json:"max_depth"`
}

// Explore runs a breadth-first search from text, applying every table rule at
// each node below maxDepth. A rule spawns a child only when its pattern is
// present and the application changes the text.
//
// Node bound: the root contributes 1 node, and a node at depth i < maxDepth
// enqueues at most len(ruleTable) children, each at depth i+1. By induction
// depth i holds at most r^i nodes, so the total never exceeds Σ_{i=0..d} r^i
// for any input.
func Explore(text string, maxDepth int) Graph {
	if maxDepth < 0 {
		maxDepth = DefaultMaxDepth
	}

	root := Node{ID: uuid.NewString(), Text: text, Depth: 0}
	g := Graph{Nodes: []Node{root}, Edges: []Edge{}, MaxDepth: maxDepth}

	hasChild := map[string]bool{}
	queue := []Node{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node.Depth >= maxDepth {
			continue
		}
		for _, rule := range ruleTable {
			rewritten, changed := applyFirst(node.Text, rule)
			if !changed {
				continue
			}
			child := Node{
				ID:          uuid.NewString(),
				Text:        rewritten,
				Depth:       node.Depth + 1,
				ParentID:    node.ID,
				RuleApplied: rule.Pattern,
			}
			g.Nodes = append(g.Nodes, child)
			g.Edges = append(g.Edges, Edge{From: node.ID, To: child.ID, Rule: rule.Pattern})
			hasChild[node.ID] = true
			queue = append(queue, child)
		}
	}

	g.TerminalIDs = []string{}
	for _, n := range g.Nodes {
		if !hasChild[n.ID] {
			g.TerminalIDs = append(g.TerminalIDs, n.ID)
		}
	}
	return g
}

// Summary is the compact view of a multiway graph carried in pipeline
// results.
type Summary struct {
	StateCount    int      `json:"state_count"`
	TerminalCount int      `json:"terminal_count"`
	TerminalIDs   []string `json:"terminal_ids"`
	MaxDepth      int      `json:"max_depth"`
}

// Summarize reduces a graph to its summary record.
func (g Graph) Summarize() Summary {
	return Summary{
		StateCount:    len(g.Nodes),
		TerminalCount: len(g.TerminalIDs),
		TerminalIDs:   g.TerminalIDs,
		MaxDepth:      g.MaxDepth,
	}
}
