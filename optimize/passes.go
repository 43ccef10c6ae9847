package optimize

import (
	"sort"

	"github.com/xDarkicex/gatesim/gate"
)

// foldConstants implements pass (a). For every canonical, alive,
// non-constant node it partitions dependencies into constant and
// variable sets — a dependency is only treated as constant if it is
// not in the same strongly connected component as the node itself,
// since a same-component dependency is a cyclic feedback edge whose
// current value must be treated as an opaque input (see scc.go and
// the design's cycle-correctness requirement). It then applies each
// operator's short-circuit algebra.
func foldConstants(w *workGraph, nodes []gate.ID) bool {
	comp := w.sccOf(nodes)
	changed := false
	for _, id := range nodes {
		n := &w.nodes[id]
		if !n.alive && !w.isLever[id] {
			continue
		}
		if n.kind.IsConstant() || n.kind == gate.Lever {
			continue
		}
		for i, d := range n.deps {
			n.deps[i] = w.find(d)
		}

		var constOnes int
		var constCount int
		var vars []gate.ID
		for _, d := range n.deps {
			dn := &w.nodes[d]
			if dn.kind.IsConstant() && comp[d] != comp[id] {
				constCount++
				if dn.kind == gate.On {
					constOnes++
				}
			} else {
				vars = append(vars, d)
			}
		}
		if constCount == 0 {
			continue
		}

		switch n.kind {
		case gate.And:
			if constOnes < constCount { // some dependency is OFF
				w.replaceWithConstant(id, false)
				changed = true
				continue
			}
			changed = reduceVariadic(w, id, gate.And, vars, true) || changed
		case gate.Nand:
			if constOnes < constCount {
				w.replaceWithConstant(id, true)
				changed = true
				continue
			}
			changed = reduceVariadic(w, id, gate.Nand, vars, false) || changed
		case gate.Or:
			if constOnes > 0 {
				w.replaceWithConstant(id, true)
				changed = true
				continue
			}
			changed = reduceVariadic(w, id, gate.Or, vars, false) || changed
		case gate.Nor:
			if constOnes > 0 {
				w.replaceWithConstant(id, false)
				changed = true
				continue
			}
			changed = reduceVariadic(w, id, gate.Nor, vars, true) || changed
		case gate.Xor, gate.Xnor:
			invert := constOnes%2 == 1
			if n.kind == gate.Xnor {
				invert = !invert
			}
			changed = reduceXorFamily(w, id, vars, invert) || changed
		case gate.Not:
			// Not has arity 1; its sole dependency being constant and
			// non-cyclic means it fully evaluates.
			w.replaceWithConstant(id, constOnes == 0)
			changed = true
		}
	}
	return changed
}

// reduceVariadic handles AND/OR/NAND/NOR once their constant
// dependencies have been stripped to nothing (vars is what remains).
// allTrueValue is the constant the gate collapses to when vars is
// empty (e.g. AND() folded purely from ON deps is ON; NOR() folded
// purely from OFF deps is ON too, since NOR's vacuous case is "no
// input was true").
func reduceVariadic(w *workGraph, id gate.ID, kind gate.Kind, vars []gate.ID, allTrueValue bool) bool {
	n := &w.nodes[id]
	if len(vars) == 0 {
		w.replaceWithConstant(id, allTrueValue)
		return true
	}
	if len(vars) == len(n.deps) {
		return false
	}
	n.kind = kind
	n.deps = vars
	return true
}

// reduceXorFamily rewrites an XOR/XNOR gate once its ON-valued
// constant dependencies have been absorbed into a polarity inversion
// flag: XOR(x, ON) == NOT(XOR(x)), and OFF constants are simply
// dropped since they never change XOR's parity.
func reduceXorFamily(w *workGraph, id gate.ID, vars []gate.ID, invert bool) bool {
	n := &w.nodes[id]
	if len(vars) == 0 {
		w.replaceWithConstant(id, invert)
		return true
	}
	if len(vars) == 1 {
		if invert {
			w.redirectTo(id, w.newNode(gate.Not, []gate.ID{vars[0]}, n.name))
		} else {
			w.redirectTo(id, vars[0])
		}
		return true
	}
	if !invert && len(vars) == len(n.deps) {
		return false
	}
	if invert {
		inner := w.newNode(gate.Xor, vars, "")
		w.redirectTo(id, w.newNode(gate.Not, []gate.ID{inner}, n.name))
	} else {
		n.kind = gate.Xor
		n.deps = vars
	}
	return true
}

// eliminateIdentities implements pass (b): arity-1 symmetric gates
// collapse to their sole dependency, double negation collapses, and
// duplicate dependencies simplify per operator algebra.
func eliminateIdentities(w *workGraph, nodes []gate.ID) bool {
	changed := false
	for _, id := range nodes {
		n := &w.nodes[id]
		if !n.alive && !w.isLever[id] {
			continue
		}
		if n.kind.IsConstant() || n.kind == gate.Lever {
			continue
		}
		for i, d := range n.deps {
			n.deps[i] = w.find(d)
		}

		if n.kind == gate.Not && w.nodes[n.deps[0]].kind == gate.Not {
			inner := &w.nodes[n.deps[0]]
			if target := w.find(inner.deps[0]); target != id {
				w.redirectTo(id, target)
				changed = true
				continue
			}
		}

		if n.kind.Symmetric() && len(n.deps) == 1 {
			switch n.kind {
			case gate.And, gate.Or, gate.Xor:
				w.redirectTo(id, n.deps[0])
			case gate.Nand, gate.Nor:
				w.redirectTo(id, w.newNode(gate.Not, []gate.ID{n.deps[0]}, n.name))
			case gate.Xnor:
				w.redirectTo(id, w.newNode(gate.Not, []gate.ID{n.deps[0]}, n.name))
			}
			changed = true
			continue
		}

		if n.kind.Symmetric() && hasDuplicate(n.deps) {
			if rewriteDuplicate(w, id) {
				changed = true
			}
		}
	}
	return changed
}

func hasDuplicate(deps []gate.ID) bool {
	seen := make(map[gate.ID]bool, len(deps))
	for _, d := range deps {
		if seen[d] {
			return true
		}
		seen[d] = true
	}
	return len(seen) != len(deps)
}

// rewriteDuplicate collapses repeated dependencies per operator
// algebra: AND/OR/NAND/NOR are idempotent under deduplication: XOR/XNOR
// cancel pairwise (XOR(x,x) == OFF, so each pair of duplicates can be
// dropped, leaving zero or one surviving copy depending on parity).
func rewriteDuplicate(w *workGraph, id gate.ID) bool {
	n := &w.nodes[id]
	switch n.kind {
	case gate.And, gate.Or, gate.Nand, gate.Nor:
		deduped := dedupe(n.deps)
		if len(deduped) == len(n.deps) {
			return false
		}
		if len(deduped) == 1 {
			if n.kind == gate.And || n.kind == gate.Or {
				w.redirectTo(id, deduped[0])
			} else {
				w.redirectTo(id, w.newNode(gate.Not, []gate.ID{deduped[0]}, n.name))
			}
			return true
		}
		n.deps = deduped
		return true
	case gate.Xor, gate.Xnor:
		counts := make(map[gate.ID]int, len(n.deps))
		order := make([]gate.ID, 0, len(n.deps))
		for _, d := range n.deps {
			if counts[d] == 0 {
				order = append(order, d)
			}
			counts[d]++
		}
		var survivors []gate.ID
		for _, d := range order {
			if counts[d]%2 == 1 {
				survivors = append(survivors, d)
			}
		}
		if len(survivors) == len(n.deps) {
			return false
		}
		invert := n.kind == gate.Xnor
		if len(survivors) == 0 {
			w.replaceWithConstant(id, invert)
			return true
		}
		if len(survivors) == 1 {
			if invert {
				w.redirectTo(id, w.newNode(gate.Not, []gate.ID{survivors[0]}, n.name))
			} else {
				w.redirectTo(id, survivors[0])
			}
			return true
		}
		n.deps = survivors
		return true
	}
	return false
}

func dedupe(deps []gate.ID) []gate.ID {
	seen := make(map[gate.ID]bool, len(deps))
	out := make([]gate.ID, 0, len(deps))
	for _, d := range deps {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}

// commonSubexpression implements pass (d): gates with identical kind
// and identical dependency lists (order-sensitive for NOT,
// order-insensitive — after sorting by ascending GID — for symmetric
// operators) are merged onto a single canonical representative.
func commonSubexpression(w *workGraph, nodes []gate.ID) bool {
	type key struct {
		kind gate.Kind
		deps string
	}
	seen := make(map[key]gate.ID, len(nodes))
	changed := false
	for _, id := range nodes {
		n := &w.nodes[id]
		if !n.alive && !w.isLever[id] {
			continue
		}
		if n.kind.IsConstant() || n.kind == gate.Lever {
			continue
		}
		for i, d := range n.deps {
			n.deps[i] = w.find(d)
		}
		deps := append([]gate.ID(nil), n.deps...)
		if n.kind.Symmetric() {
			sort.Slice(deps, func(i, j int) bool { return deps[i] < deps[j] })
		}
		k := key{kind: n.kind, deps: depsKey(deps)}
		if canon, ok := seen[k]; ok {
			w.redirectTo(id, canon)
			changed = true
			continue
		}
		seen[k] = id
	}
	return changed
}

func depsKey(deps []gate.ID) string {
	b := make([]byte, 0, len(deps)*5)
	for _, d := range deps {
		for d > 0 {
			b = append(b, byte('0'+d%10))
			d /= 10
		}
		b = append(b, ',')
	}
	return string(b)
}

// deadCodeEliminate implements pass (c): a node is live iff it is
// referenced by an output or probe, or transitively reachable from a
// live node's dependencies. Levers always stay allocated (their IDs
// must remain stable for the API) but a dead lever need not be
// considered live for reachability purposes beyond that. Runs last
// within an iteration so CSE cannot resurrect a node DCE would have
// removed.
func deadCodeEliminate(w *workGraph, roots []gate.ID) bool {
	live := make(map[gate.ID]bool, len(w.nodes))
	var stack []gate.ID
	for _, r := range roots {
		r = w.find(r)
		if !live[r] {
			live[r] = true
			stack = append(stack, r)
		}
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range w.nodes[id].deps {
			d = w.find(d)
			if !live[d] {
				live[d] = true
				stack = append(stack, d)
			}
		}
	}
	changed := false
	for id := range w.nodes {
		gid := gate.ID(id)
		if w.find(gid) != gid {
			continue
		}
		if w.isLever[id] {
			continue
		}
		if w.nodes[id].alive && !live[gid] {
			w.nodes[id].alive = false
			changed = true
		}
	}
	return changed
}
