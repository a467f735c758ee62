package graph

// TopologicalSort orders the vertices with Kahn's algorithm in O(V+E).
// It returns nil if and only if the graph contains a cycle; callers must
// treat the nil as a normal "no ordering exists" outcome, not a failure.
func (g *Graph) TopologicalSort() []string {
	inDegree := make(map[string]int, len(g.order))
	for _, id := range g.order {
		inDegree[id] = 0
	}
	for _, pair := range g.pairs() {
		inDegree[pair[1]]++
	}

	// Seed the queue in insertion order so the result is deterministic.
	queue := make([]string, 0, len(g.order))
	for _, id := range g.order {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	sorted := make([]string, 0, len(g.order))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		sorted = append(sorted, id)
		for _, next := range g.out[id] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(sorted) != len(g.order) {
		return nil // remaining vertices sit on a cycle
	}
	return sorted
}

// pairs returns the deduplicated (from,to) adjacency pairs in stable order.
func (g *Graph) pairs() [][2]string {
	var out [][2]string
	for _, from := range g.order {
		for _, to := range g.out[from] {
			out = append(out, [2]string{from, to})
		}
	}
	return out
}

// FindCycles runs Tarjan's strongly-connected-components algorithm in O(V+E)
// and returns only components of size greater than one, i.e. the actual
// cycles. The classic recursive formulation risks call-stack depth on large
// graphs, so the DFS is driven by an explicit work stack.
func (g *Graph) FindCycles() [][]string {
	index := 0
	indices := make(map[string]int, len(g.order))
	lowlinks := make(map[string]int, len(g.order))
	onStack := make(map[string]bool, len(g.order))
	stack := make([]string, 0, len(g.order))
	var sccs [][]string

	type frame struct {
		v    string
		next int // index of the next successor to visit
	}

	for _, root := range g.order {
		if _, visited := indices[root]; visited {
			continue
		}

		work := []frame{{v: root}}
		for len(work) > 0 {
			f := &work[len(work)-1]
			v := f.v

			if f.next == 0 {
				indices[v] = index
				lowlinks[v] = index
				index++
				stack = append(stack, v)
				onStack[v] = true
			}

			advanced := false
			successors := g.out[v]
			for f.next < len(successors) {
				w := successors[f.next]
				f.next++
				if _, visited := indices[w]; !visited {
					work = append(work, frame{v: w})
					advanced = true
					break
				}
				if onStack[w] && indices[w] < lowlinks[v] {
					lowlinks[v] = indices[w]
				}
			}
			if advanced {
				continue
			}

			// v is complete: pop its frame and fold its lowlink upward.
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := work[len(work)-1].v
				if lowlinks[v] < lowlinks[parent] {
					lowlinks[parent] = lowlinks[v]
				}
			}

			if lowlinks[v] == indices[v] {
				var scc []string
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					scc = append(scc, w)
					if w == v {
						break
					}
				}
				if len(scc) > 1 {
					sccs = append(sccs, scc)
				}
			}
		}
	}
	return sccs
}
