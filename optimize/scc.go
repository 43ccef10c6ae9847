package optimize

import "github.com/xDarkicex/gatesim/gate"

// sccOf computes, for every canonical alive node, which strongly
// connected component of the dependency graph it belongs to (edges run
// from a gate to its dependencies). Two nodes share a component iff
// each is reachable from the other, which is exactly the condition
// under which an edge between them is a cyclic, self-referential
// back-edge rather than a plain acyclic dependency.
//
// Constant folding uses this to decide which dependencies of a gate
// are "opaque": a dependency in the same component as the gate itself
// must not be examined for short-circuit rules, because doing so would
// fold a latch's feedback path into a constant based on its current,
// not-yet-meaningful value.
//
// Implemented as an iterative Tarjan's algorithm (recursive DFS would
// overflow the goroutine stack on deep chains built by generated
// component-library circuits such as wide registers).
func (w *workGraph) sccOf(nodes []gate.ID) map[gate.ID]int {
	index := make(map[gate.ID]int, len(nodes))
	lowlink := make(map[gate.ID]int, len(nodes))
	onStack := make(map[gate.ID]bool, len(nodes))
	comp := make(map[gate.ID]int, len(nodes))

	var stack []gate.ID
	nextIndex := 0
	nextComp := 0

	type frame struct {
		v        gate.ID
		depIdx   int
		deps     []gate.ID
	}

	for _, root := range nodes {
		if _, seen := index[root]; seen {
			continue
		}
		var work []frame
		push := func(v gate.ID) {
			index[v] = nextIndex
			lowlink[v] = nextIndex
			nextIndex++
			stack = append(stack, v)
			onStack[v] = true
			work = append(work, frame{v: v, deps: w.resolvedDeps(v)})
		}
		push(root)
		for len(work) > 0 {
			top := &work[len(work)-1]
			if top.depIdx < len(top.deps) {
				d := top.depIdx
				top.depIdx++
				dep := top.deps[d]
				if _, seen := index[dep]; !seen {
					push(dep)
					continue
				}
				if onStack[dep] {
					if index[dep] < lowlink[top.v] {
						lowlink[top.v] = index[dep]
					}
				}
				continue
			}
			// done with top.v
			v := top.v
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := &work[len(work)-1]
				if lowlink[v] < lowlink[parent.v] {
					lowlink[parent.v] = lowlink[v]
				}
			}
			if lowlink[v] == index[v] {
				for {
					n := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[n] = false
					comp[n] = nextComp
					if n == v {
						break
					}
				}
				nextComp++
			}
		}
	}
	return comp
}

// resolvedDeps returns v's dependency list with every entry resolved
// through find(), restricted to canonical alive nodes (constants and
// levers have no dependencies and terminate the walk).
func (w *workGraph) resolvedDeps(v gate.ID) []gate.ID {
	n := &w.nodes[w.find(v)]
	out := make([]gate.ID, len(n.deps))
	for i, d := range n.deps {
		out[i] = w.find(d)
	}
	return out
}
