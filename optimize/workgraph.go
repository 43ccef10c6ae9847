package optimize

import "github.com/xDarkicex/gatesim/gate"

// workNode is a mutable, builder-GID-indexed gate during optimization.
// Unlike gate.Node, its Deps may be rewritten in place as passes
// resolve redirects, and it carries an explicit liveness flag set by
// dead-code elimination.
type workNode struct {
	kind  gate.Kind
	deps  []gate.ID
	name  string
	alive bool
}

// workGraph is the optimizer's internal, append-only arena. Gates are
// never physically removed or renumbered mid-pipeline: identity
// elimination and CSE retire a gate by redirecting it to its
// replacement (a union-find-style rewrite target), and dead-code
// elimination simply clears the alive flag. Only the final compaction
// pass assigns dense compiled GIDs.
type workGraph struct {
	nodes    []workNode
	redirect []gate.ID // redirect[id] == id means canonical; else a union-find chain
	isLever  []bool

	off gate.ID
	on  gate.ID
}

func newWorkGraph(in Input) *workGraph {
	w := &workGraph{
		nodes:    make([]workNode, len(in.Nodes)),
		redirect: make([]gate.ID, len(in.Nodes)),
		isLever:  make([]bool, len(in.Nodes)),
	}
	for id, n := range in.Nodes {
		w.nodes[id] = workNode{
			kind:  n.Kind,
			deps:  append([]gate.ID(nil), n.Deps...),
			name:  n.Name,
			alive: true,
		}
		w.redirect[id] = gate.ID(id)
		if n.Kind == gate.Off {
			w.off = gate.ID(id)
		}
		if n.Kind == gate.On {
			w.on = gate.ID(id)
		}
	}
	for _, gid := range in.Levers {
		w.isLever[gid] = true
	}
	return w
}

// find resolves id through the redirect chain to its current canonical
// representative, compressing the path as it goes.
func (w *workGraph) find(id gate.ID) gate.ID {
	root := id
	for w.redirect[root] != root {
		root = w.redirect[root]
	}
	for w.redirect[id] != root {
		w.redirect[id], id = root, w.redirect[id]
	}
	return root
}

// newNode appends a brand-new working node (used when a pass needs to
// introduce a gate that did not exist before, e.g. wrapping a
// reduced-arity XOR in a NOT) and returns its GID.
func (w *workGraph) newNode(kind gate.Kind, deps []gate.ID, name string) gate.ID {
	id := gate.ID(len(w.nodes))
	w.nodes = append(w.nodes, workNode{kind: kind, deps: deps, name: name, alive: true})
	w.redirect = append(w.redirect, id)
	w.isLever = append(w.isLever, false)
	return id
}

// redirectTo retires id in favor of target: every future find(id)
// resolves to find(target), and id is marked dead.
func (w *workGraph) redirectTo(id, target gate.ID) {
	id = w.find(id)
	target = w.find(target)
	if id == target {
		return
	}
	w.redirect[id] = target
	if !w.isLever[id] {
		w.nodes[id].alive = false
	}
}

// replaceWithConstant retires id in favor of the ON or OFF singleton.
func (w *workGraph) replaceWithConstant(id gate.ID, value bool) {
	if value {
		w.redirectTo(id, w.on)
	} else {
		w.redirectTo(id, w.off)
	}
}

// canonicalAliveNodes returns the GIDs of every node that is both its
// own canonical representative and still alive (or a lever, which
// stays allocated regardless of liveness per the design). The ON/OFF
// singletons are never included here: they are free constant rails
// compiled into fixed reserved slots, not ordinary gates subject to
// liveness bookkeeping or compaction order.
func (w *workGraph) canonicalAliveNodes() []gate.ID {
	var out []gate.ID
	for id := range w.nodes {
		gid := gate.ID(id)
		if gid == w.off || gid == w.on {
			continue
		}
		if w.find(gid) != gid {
			continue
		}
		if w.nodes[id].alive || w.isLever[id] {
			out = append(out, gid)
		}
	}
	return out
}
