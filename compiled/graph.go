// Package compiled implements the immutable, densely indexed circuit
// representation the optimizer produces and the simulator that ticks
// it forward. A Graph owns its state bit array and dirty queue
// exclusively; lever writes and Tick require exclusive access, output
// accessors require only shared read access and never cause
// propagation.
package compiled

import "github.com/xDarkicex/gatesim/gate"

// Graph is the immutable result of compilation: dense arrays of gate
// opcodes and dependency lists, a lever table, an output table, and
// the dirty-queue scaffold the simulator drains.
type Graph struct {
	kinds   []gate.Kind
	depOff  []int32
	depPool []int32
	names   []string

	fanoutOff  []int32
	fanoutPool []int32

	state []bool

	levers []int32 // LeverID index -> compiled GID

	outputs     [][]int32
	outputNames []string

	probes     [][]int32
	probeNames []string
	probeLast  [][]bool

	dirty     []int32
	nextDirty []int32

	logger gate.Logger
}

// Len returns the number of compiled gates, excluding the ON/OFF
// constant singletons: those are free wiring, always present at fixed
// reserved slots, not gates a circuit can be said to "have".
func (g *Graph) Len() int {
	n := 0
	for _, k := range g.kinds {
		if k != gate.Off && k != gate.On {
			n++
		}
	}
	return n
}

// Kind returns the opcode of compiled gate id, mostly useful for tools
// built on top of a Graph (DOT export, golden-table dumps).
func (g *Graph) Kind(id int) gate.Kind { return g.kinds[id] }

func (g *Graph) depsOf(id int32) []int32 {
	return g.depPool[g.depOff[id]:g.depOff[id+1]]
}

func (g *Graph) fanoutOf(id int32) []int32 {
	return g.fanoutPool[g.fanoutOff[id]:g.fanoutOff[id+1]]
}

func (g *Graph) eval(id int32) bool {
	deps := g.depsOf(id)
	switch g.kinds[id] {
	case gate.Not:
		return !g.state[deps[0]]
	case gate.And:
		for _, d := range deps {
			if !g.state[d] {
				return false
			}
		}
		return true
	case gate.Nand:
		for _, d := range deps {
			if !g.state[d] {
				return true
			}
		}
		return false
	case gate.Or:
		for _, d := range deps {
			if g.state[d] {
				return true
			}
		}
		return false
	case gate.Nor:
		for _, d := range deps {
			if g.state[d] {
				return false
			}
		}
		return true
	case gate.Xor:
		v := false
		for _, d := range deps {
			v = v != g.state[d]
		}
		return v
	case gate.Xnor:
		v := true
		for _, d := range deps {
			v = v != g.state[d]
		}
		return v
	default:
		// Off, On and Lever are never recomputed: they are inputs,
		// not derived values.
		return g.state[id]
	}
}

// Tick performs exactly one wave of propagation: it drains the gates
// currently queued, recomputes each from its dependencies' current
// values, and queues the fan-out of any gate whose value changed onto
// the next wave. It reports whether any gate changed.
func (g *Graph) Tick() bool {
	if len(g.dirty) == 0 {
		return false
	}
	changed := false
	for _, id := range g.dirty {
		v := g.eval(id)
		if v == g.state[id] {
			continue
		}
		g.state[id] = v
		changed = true
		g.nextDirty = append(g.nextDirty, g.fanoutOf(id)...)
	}
	g.dirty, g.nextDirty = g.nextDirty, g.dirty[:0]
	g.emitProbes()
	return changed
}

// StabilizeResult reports the outcome of RunUntilStable: whether the
// graph reached a fixed point, and how many ticks it took (or, on
// failure, the tick cap that was exceeded).
type StabilizeResult struct {
	Stable bool
	Ticks  int
}

// RunUntilStable ticks repeatedly until a tick reports no change, or
// until maxTicks is exceeded, in which case stabilization has failed
// (the graph is oscillating) and the graph is left at its last
// observed tick. This is a recoverable signal, not an error: it is
// always returned to the caller and never swallowed internally.
func (g *Graph) RunUntilStable(maxTicks int) StabilizeResult {
	for t := 0; t < maxTicks; t++ {
		if !g.Tick() {
			return StabilizeResult{Stable: true, Ticks: t}
		}
	}
	return StabilizeResult{Stable: false, Ticks: maxTicks}
}
