// Package builder implements the append-only graph representation used
// to assemble a circuit before compilation. Gates are born in builder
// space and are never removed; a single dependency slot of an existing
// gate may be rewritten ("late wiring") to model feedback loops such
// as SR latches. Init consumes the graph and hands it to the
// optimizer, which produces an immutable compiled.Graph.
package builder

import (
	"github.com/pkg/errors"

	"github.com/xDarkicex/gatesim/compiled"
	"github.com/xDarkicex/gatesim/gate"
	"github.com/xDarkicex/gatesim/optimize"
)

// outputRec and probeRec carry builder-space GIDs until Init, at which
// point the optimizer remaps them once into the compiled graph's
// internal tables.
type outputRec struct {
	name string
	bits []gate.ID
}

type probeRec struct {
	name string
	bits []gate.ID
}

// Graph is a mutable, append-only collection of gate nodes. It is
// exclusively owned by its creator and is consumed by Init.
type Graph struct {
	nodes   []gate.Node
	levers  []gate.ID // lever index -> builder GID
	outputs []outputRec
	probes  []probeRec

	off gate.ID
	on  gate.ID

	logger gate.Logger
}

// New creates a builder pre-populated with the two constant gates.
func New() *Graph {
	g := &Graph{}
	g.off = g.append(gate.Off, nil, "OFF")
	g.on = g.append(gate.On, nil, "ON")
	return g
}

// SetLogger attaches the logger the compiled graph will use to emit
// probe transitions. Unset, the compiled graph is silent (gate.NopLogger).
func (g *Graph) SetLogger(l gate.Logger) {
	g.logger = l
}

// On returns the GID of the singleton ON constant.
func (g *Graph) On() gate.ID { return g.on }

// Off returns the GID of the singleton OFF constant.
func (g *Graph) Off() gate.ID { return g.off }

func (g *Graph) append(kind gate.Kind, deps []gate.ID, name string) gate.ID {
	id := gate.ID(len(g.nodes))
	g.nodes = append(g.nodes, gate.Node{Kind: kind, Deps: deps, Name: gate.DebugName(name)})
	return id
}

// Lever allocates a new lever gate and returns a stable handle to it.
// The handle's GID-in-dependency-position form is obtained via Bit.
func (g *Graph) Lever(name string) gate.LeverID {
	id := g.append(gate.Lever, nil, name)
	lid := gate.LeverID(len(g.levers))
	g.levers = append(g.levers, id)
	return lid
}

// Bit returns the GID of lever l, so it can be used as a gate
// dependency.
func (g *Graph) Bit(l gate.LeverID) gate.ID {
	return g.levers[l]
}

// Not allocates a NOT gate over dep.
func (g *Graph) Not(name string, dep gate.ID) gate.ID {
	return g.append(gate.Not, []gate.ID{dep}, name)
}

// And allocates a variable-arity AND gate. "And2", "And3" etc. in
// consuming code are arity sugar over this constructor.
func (g *Graph) And(name string, deps ...gate.ID) gate.ID {
	return g.append(gate.And, cloneDeps(deps), name)
}

// Nand allocates a variable-arity NAND gate.
func (g *Graph) Nand(name string, deps ...gate.ID) gate.ID {
	return g.append(gate.Nand, cloneDeps(deps), name)
}

// Or allocates a variable-arity OR gate.
func (g *Graph) Or(name string, deps ...gate.ID) gate.ID {
	return g.append(gate.Or, cloneDeps(deps), name)
}

// Nor allocates a variable-arity NOR gate.
func (g *Graph) Nor(name string, deps ...gate.ID) gate.ID {
	return g.append(gate.Nor, cloneDeps(deps), name)
}

// Xor allocates a variable-arity XOR gate.
func (g *Graph) Xor(name string, deps ...gate.ID) gate.ID {
	return g.append(gate.Xor, cloneDeps(deps), name)
}

// Xnor allocates a variable-arity XNOR gate.
func (g *Graph) Xnor(name string, deps ...gate.ID) gate.ID {
	return g.append(gate.Xnor, cloneDeps(deps), name)
}

// And2, And3 and their OR/NAND/NOR/XOR/XNOR siblings below are fixed
// arity sugar kept for call-site readability; the semantic model
// underneath is always the variable-arity constructor above.
func (g *Graph) And2(name string, a, b gate.ID) gate.ID       { return g.And(name, a, b) }
func (g *Graph) And3(name string, a, b, c gate.ID) gate.ID    { return g.And(name, a, b, c) }
func (g *Graph) Or2(name string, a, b gate.ID) gate.ID        { return g.Or(name, a, b) }
func (g *Graph) Or3(name string, a, b, c gate.ID) gate.ID     { return g.Or(name, a, b, c) }
func (g *Graph) Nand2(name string, a, b gate.ID) gate.ID      { return g.Nand(name, a, b) }
func (g *Graph) Nor2(name string, a, b gate.ID) gate.ID       { return g.Nor(name, a, b) }
func (g *Graph) Xor2(name string, a, b gate.ID) gate.ID       { return g.Xor(name, a, b) }
func (g *Graph) Xnor2(name string, a, b gate.ID) gate.ID      { return g.Xnor(name, a, b) }

func cloneDeps(deps []gate.ID) []gate.ID {
	out := make([]gate.ID, len(deps))
	copy(out, deps)
	return out
}

// SetDep replaces positional dependency i of target with newDep. This
// is the sole mutation builder graphs support after a gate is created,
// and exists to let feedback loops be wired up once both ends exist:
// create the gate with Off as a placeholder dependency, then rewrite
// that slot once the true cyclic source is built.
//
// SetDep fails when i is out of range for target's arity, or when
// target is a constant or lever (arity 0, nothing to rewire).
func (g *Graph) SetDep(target gate.ID, i int, newDep gate.ID) error {
	if int(target) < 0 || int(target) >= len(g.nodes) {
		return errors.WithStack(gate.NewError("Graph.SetDep", "target GID does not exist"))
	}
	n := &g.nodes[target]
	if n.Kind.IsConstant() || n.Kind == gate.Lever {
		return errors.WithStack(gate.NewError("Graph.SetDep", "cannot rewire a dependency of a constant or lever"))
	}
	if i < 0 || i >= len(n.Deps) {
		return errors.WithStack(gate.NewError("Graph.SetDep", "dependency slot out of range"))
	}
	if int(newDep) < 0 || int(newDep) >= len(g.nodes) {
		return errors.WithStack(gate.NewError("Graph.SetDep", "replacement GID does not exist"))
	}
	n.Deps[i] = newDep
	return nil
}

// Output registers an observation point over an ordered list of GIDs,
// index 0 being the least significant bit. The returned handle remains
// valid after Init; bit order and registration are frozen at compile
// time into the compiled graph's output table.
func (g *Graph) Output(name string, bits ...gate.ID) gate.OutputID {
	id := gate.OutputID(len(g.outputs))
	g.outputs = append(g.outputs, outputRec{name: gate.DebugName(name), bits: cloneDeps(bits)})
	return id
}

// Probe registers a debug observation that logs on change once
// compiled (see the compiled package's Tick). Under the no_debug_gates
// build configuration, probes are retained structurally but never
// emit, at zero added per-tick cost.
func (g *Graph) Probe(name string, bits ...gate.ID) gate.ProbeID {
	id := gate.ProbeID(len(g.probes))
	g.probes = append(g.probes, probeRec{name: gate.DebugName(name), bits: cloneDeps(bits)})
	return id
}

// Init consumes the builder graph and returns its compiled form. The
// builder must not be used again afterward.
func (g *Graph) Init() *compiled.Graph {
	in := optimize.Input{
		Nodes:  g.nodes,
		Levers: g.levers,
	}
	in.Outputs = make([]optimize.OutputSpec, len(g.outputs))
	for i, o := range g.outputs {
		in.Outputs[i] = optimize.OutputSpec{Name: o.name, Bits: o.bits}
	}
	in.Probes = make([]optimize.ProbeSpec, len(g.probes))
	for i, p := range g.probes {
		in.Probes[i] = optimize.ProbeSpec{Name: p.name, Bits: p.bits}
	}
	return optimize.Compile(in, g.logger)
}
