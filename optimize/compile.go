package optimize

import (
	"sort"

	"github.com/xDarkicex/gatesim/compiled"
	"github.com/xDarkicex/gatesim/gate"
)

// Compile runs the rewrite pipeline to a fixed point and compacts the
// survivors into a compiled.BuildSpec, ready for compiled.New. logger
// is threaded through to the resulting graph for probe emission.
func Compile(in Input, logger gate.Logger) *compiled.Graph {
	w := newWorkGraph(in)

	roots := rootSet(in)

	for {
		nodes := w.canonicalAliveNodes()
		changed := foldConstants(w, nodes)
		nodes = w.canonicalAliveNodes()
		changed = eliminateIdentities(w, nodes) || changed
		nodes = w.canonicalAliveNodes()
		changed = commonSubexpression(w, nodes) || changed
		changed = deadCodeEliminate(w, roots) || changed
		if !changed {
			break
		}
	}

	return buildCompiled(w, in, logger)
}

// rootSet collects every builder GID that must never be discarded by
// dead-code elimination: the bits backing registered outputs and
// probes. Levers are handled separately in deadCodeEliminate since
// they must stay allocated even with no surviving reader.
func rootSet(in Input) []gate.ID {
	var roots []gate.ID
	for _, o := range in.Outputs {
		roots = append(roots, o.Bits...)
	}
	for _, p := range in.Probes {
		roots = append(roots, p.Bits...)
	}
	return roots
}

// buildCompiled assigns dense compiled GIDs to every surviving
// canonical node in dependency order (a node's dependencies always
// receive a lower or equal compiled GID, except across a cyclic
// feedback edge, which compaction simply preserves as a forward
// reference — the compiled graph's eval switch handles this exactly
// as it handles any other dependency, since Tick's change propagation
// does not require acyclic order, only that initial evaluation visits
// ascending GIDs per the design's traversal-order decision) and
// translates every builder-space handle (levers, outputs, probes)
// into the new numbering. The ON/OFF singletons are always compiled
// into fixed reserved slots 0 and 1, ahead of everything compaction
// orders, regardless of whether anything still depends on them: they
// are free constant rails, not gates a circuit can be said to "have".
func buildCompiled(w *workGraph, in Input, logger gate.Logger) *compiled.Graph {
	order := compactionOrder(w)

	off, on := w.find(w.off), w.find(w.on)
	remap := make(map[gate.ID]int32, len(order)+2)
	remap[off] = 0
	remap[on] = 1
	for i, oldID := range order {
		remap[oldID] = int32(i + 2)
	}
	resolve := func(id gate.ID) gate.ID {
		return gate.ID(remap[w.find(id)])
	}

	total := len(order) + 2
	spec := compiled.BuildSpec{
		Kinds: make([]gate.Kind, total),
		Deps:  make([][]gate.ID, total),
		Names: make([]string, total),
	}
	spec.Kinds[0], spec.Names[0] = w.nodes[off].kind, w.nodes[off].name
	spec.Kinds[1], spec.Names[1] = w.nodes[on].kind, w.nodes[on].name
	for i, oldID := range order {
		n := w.nodes[oldID]
		newID := i + 2
		spec.Kinds[newID] = n.kind
		spec.Names[newID] = n.name
		if len(n.deps) > 0 {
			deps := make([]gate.ID, len(n.deps))
			for j, d := range n.deps {
				deps[j] = resolve(d)
			}
			spec.Deps[newID] = deps
		}
	}

	spec.Levers = make([]gate.ID, len(in.Levers))
	for i, gid := range in.Levers {
		spec.Levers[i] = resolve(gid)
	}
	spec.Outputs = make([]compiled.NamedBits, len(in.Outputs))
	for i, o := range in.Outputs {
		spec.Outputs[i] = compiled.NamedBits{Name: o.Name, Bits: resolveAll(resolve, o.Bits)}
	}
	spec.Probes = make([]compiled.NamedBits, len(in.Probes))
	for i, p := range in.Probes {
		spec.Probes[i] = compiled.NamedBits{Name: p.Name, Bits: resolveAll(resolve, p.Bits)}
	}

	return compiled.New(spec, logger)
}

func resolveAll(resolve func(gate.ID) gate.ID, ids []gate.ID) []gate.ID {
	out := make([]gate.ID, len(ids))
	for i, id := range ids {
		out[i] = resolve(id)
	}
	return out
}

// compactionOrder returns the surviving canonical builder GIDs ordered
// so that acyclic dependencies precede their dependents, using a
// post-order DFS that breaks ties by ascending original GID for
// determinism; a cyclic back-edge is simply left as a forward
// reference rather than being used to reorder anything, since the
// simulator's dirty-queue propagation does not require a topological
// guarantee to behave correctly. The ON/OFF singletons never appear in
// the returned order: buildCompiled gives them fixed reserved slots
// ahead of it, so a dependency edge reaching one of them is a dead end
// for ordering purposes, not a node to schedule.
func compactionOrder(w *workGraph) []gate.ID {
	nodes := w.canonicalAliveNodes()
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	visited := make(map[gate.ID]bool, len(nodes))
	visited[w.off] = true
	visited[w.on] = true
	var order []gate.ID

	type frame struct {
		v      gate.ID
		depIdx int
		deps   []gate.ID
	}
	for _, root := range nodes {
		root = w.find(root)
		if visited[root] {
			continue
		}
		var stack []frame
		stack = append(stack, frame{v: root, deps: w.nodes[root].deps})
		visited[root] = true
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.depIdx < len(top.deps) {
				d := w.find(top.deps[top.depIdx])
				top.depIdx++
				if !visited[d] {
					visited[d] = true
					stack = append(stack, frame{v: d, deps: w.nodes[d].deps})
				}
				continue
			}
			order = append(order, top.v)
			stack = stack[:len(stack)-1]
		}
	}
	return order
}
