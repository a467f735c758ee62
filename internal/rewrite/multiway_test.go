package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// maxNodes computes the Σ_{i=0..d} r^i bound.
func maxNodes(r, d int) int {
	total, power := 0, 1
	for i := 0; i <= d; i++ {
		total += power
		power *= r
	}
	return total
}

func TestExplore_NoApplicableRule(t *testing.T) {
	g := Explore("the council protects the land", DefaultMaxDepth)
	require.Len(t, g.Nodes, 1, "root only when nothing rewrites")
	assert.Empty(t, g.Edges)
	require.Len(t, g.TerminalIDs, 1)
	assert.Equal(t, g.Nodes[0].ID, g.TerminalIDs[0])
	assert.Equal(t, 0, g.Nodes[0].Depth)
	assert.Empty(t, g.Nodes[0].ParentID)
}

func TestExplore_DepthBound(t *testing.T) {
	g := Explore("the parties should use best efforts and respond promptly", 2)
	for _, n := range g.Nodes {
		assert.LessOrEqual(t, n.Depth, 2)
	}
}

func TestExplore_NodeCountBound(t *testing.T) {
	inputs := []string{
		"",
		"the parties should use best efforts and respond promptly",
		"promptly promptly promptly should should best efforts as needed",
		"without notice and in perpetual sole discretion the licensee should act timely",
	}
	for _, input := range inputs {
		for depth := 0; depth <= 2; depth++ {
			g := Explore(input, depth)
			bound := maxNodes(RuleCount(), depth)
			assert.LessOrEqual(t, len(g.Nodes), bound,
				"input %q depth %d: %d nodes exceeds bound %d",
				input, depth, len(g.Nodes), bound)
		}
	}
}

func TestExplore_TerminalsHaveNoOutgoingEdges(t *testing.T) {
	g := Explore("the parties should use best efforts", DefaultMaxDepth)

	outgoing := map[string]int{}
	for _, e := range g.Edges {
		outgoing[e.From]++
	}
	terminal := map[string]bool{}
	for _, id := range g.TerminalIDs {
		terminal[id] = true
	}
	for _, n := range g.Nodes {
		if terminal[n.ID] {
			assert.Zero(t, outgoing[n.ID], "terminal node %s has outgoing edges", n.ID)
		} else {
			assert.Positive(t, outgoing[n.ID], "non-terminal node %s has no outgoing edges", n.ID)
		}
	}
}

func TestExplore_ChildRecordsRuleAndParent(t *testing.T) {
	g := Explore("the parties should cooperate", 1)
	require.Greater(t, len(g.Nodes), 1)

	root := g.Nodes[0]
	child := g.Nodes[1]
	assert.Equal(t, root.ID, child.ParentID)
	assert.Equal(t, "should", child.RuleApplied)
	assert.Equal(t, 1, child.Depth)
	assert.NotEqual(t, root.Text, child.Text, "a rule application must change the text")
}

func TestExplore_Summary(t *testing.T) {
	g := Explore("the parties should cooperate", DefaultMaxDepth)
	s := g.Summarize()
	assert.Equal(t, len(g.Nodes), s.StateCount)
	assert.Equal(t, len(g.TerminalIDs), s.TerminalCount)
	assert.Equal(t, g.MaxDepth, s.MaxDepth)
}
