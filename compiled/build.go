package compiled

import "github.com/xDarkicex/gatesim/gate"

// NamedBits is an ordered list of compiled GIDs under a debug name,
// used to build both the output table and the probe table.
type NamedBits struct {
	Name string
	Bits []gate.ID
}

// BuildSpec is the dense, already-indexed form the optimizer produces.
// It is consumed exactly once, by New, to construct an immutable
// Graph; nothing outside the optimize package should need to populate
// one of these directly.
type BuildSpec struct {
	// Kinds and Deps are indexed by compiled GID, which by
	// construction forms the contiguous range [0, len(Kinds)).
	Kinds []gate.Kind
	Deps  [][]gate.ID
	Names []string

	// Levers maps LeverID index to compiled GID, preserved by
	// identity across compilation.
	Levers []gate.ID

	Outputs []NamedBits
	Probes  []NamedBits
}

// New builds an immutable compiled Graph from spec and performs the
// initial full sweep described in the design: every state starts at
// its zero value (false) and is computed once, in ascending compiled
// GID order. Because the optimizer places cycle-participating gates
// after their acyclic predecessors, a dependency with a larger GID
// only occurs on a back-edge inside a cycle, and such a read observes
// its default false during this sweep — latches therefore start in an
// undefined-by-intent state until explicitly reset. A gate left
// disagreeing with its inputs after the sweep (possible only across
// such a back-edge) is queued for the first Tick, so a ring with no
// fixed point is reported as unstable by the first RunUntilStable.
func New(spec BuildSpec, logger gate.Logger) *Graph {
	n := len(spec.Kinds)
	g := &Graph{
		kinds:  append([]gate.Kind(nil), spec.Kinds...),
		names:  spec.Names,
		depOff: make([]int32, n+1),
		state:  make([]bool, n),
		logger: logger,
	}
	if g.logger == nil {
		g.logger = gate.NopLogger{}
	}

	var pool []int32
	for i, deps := range spec.Deps {
		g.depOff[i] = int32(len(pool))
		for _, d := range deps {
			pool = append(pool, int32(d))
		}
	}
	g.depOff[n] = int32(len(pool))
	g.depPool = pool

	fanoutCount := make([]int32, n)
	for _, deps := range spec.Deps {
		for _, d := range deps {
			fanoutCount[d]++
		}
	}
	g.fanoutOff = make([]int32, n+1)
	var total int32
	for i := 0; i < n; i++ {
		g.fanoutOff[i] = total
		total += fanoutCount[i]
	}
	g.fanoutOff[n] = total
	g.fanoutPool = make([]int32, total)
	cursor := append([]int32(nil), g.fanoutOff[:n]...)
	for i, deps := range spec.Deps {
		for _, d := range deps {
			g.fanoutPool[cursor[d]] = int32(i)
			cursor[d]++
		}
	}

	g.levers = idsToInt32(spec.Levers)

	g.outputs = make([][]int32, len(spec.Outputs))
	g.outputNames = make([]string, len(spec.Outputs))
	for i, o := range spec.Outputs {
		g.outputNames[i] = o.Name
		g.outputs[i] = idsToInt32(o.Bits)
	}

	g.probes = make([][]int32, len(spec.Probes))
	g.probeNames = make([]string, len(spec.Probes))
	g.probeLast = make([][]bool, len(spec.Probes))
	for i, p := range spec.Probes {
		g.probeNames[i] = p.Name
		g.probes[i] = idsToInt32(p.Bits)
		g.probeLast[i] = make([]bool, len(p.Bits))
	}

	for id := 0; id < n; id++ {
		switch g.kinds[id] {
		case gate.On:
			g.state[id] = true
		case gate.Off, gate.Lever:
			// zero value is correct
		default:
			g.state[id] = g.eval(int32(id))
		}
	}
	for id := 0; id < n; id++ {
		if g.kinds[id].Arity() != 0 && g.eval(int32(id)) != g.state[id] {
			g.dirty = append(g.dirty, int32(id))
		}
	}

	if gate.DebugGatesEnabled {
		for i, bits := range g.probes {
			for j, b := range bits {
				g.probeLast[i][j] = g.state[b]
			}
		}
	}

	return g
}

func idsToInt32(ids []gate.ID) []int32 {
	if len(ids) == 0 {
		return nil
	}
	out := make([]int32, len(ids))
	for i, id := range ids {
		out[i] = int32(id)
	}
	return out
}
