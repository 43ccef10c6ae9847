package optimize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/gatesim/gate"
)

// buildInput is a small test helper mirroring what builder.Graph.Init
// assembles, without importing the builder package (which itself
// depends on optimize, so importing it here would cycle).
type inputBuilder struct {
	nodes []gate.Node
}

func newInputBuilder() *inputBuilder {
	b := &inputBuilder{}
	b.add(gate.Off, nil, "OFF")
	b.add(gate.On, nil, "ON")
	return b
}

func (b *inputBuilder) add(kind gate.Kind, deps []gate.ID, name string) gate.ID {
	id := gate.ID(len(b.nodes))
	b.nodes = append(b.nodes, gate.Node{Kind: kind, Deps: deps, Name: name})
	return id
}

func (b *inputBuilder) off() gate.ID { return 0 }
func (b *inputBuilder) on() gate.ID  { return 1 }

func TestConstantCollapse(t *testing.T) {
	b := newInputBuilder()
	and := b.add(gate.And, []gate.ID{b.on(), b.off()}, "and")
	or := b.add(gate.Or, []gate.ID{b.on(), b.off()}, "or")

	in := Input{
		Nodes:   b.nodes,
		Outputs: []OutputSpec{{Name: "and", Bits: []gate.ID{and}}, {Name: "or", Bits: []gate.ID{or}}},
	}
	g := Compile(in, nil)

	require.Equal(t, 0, g.Len(), "fully constant circuit must compile to zero gates")
	require.False(t, g.B0(0))
	require.True(t, g.B0(1))
}

func TestIdentityLawsReduceGateCount(t *testing.T) {
	b := newInputBuilder()
	lever := b.add(gate.Lever, nil, "x")
	andX := b.add(gate.And, []gate.ID{lever, b.on()}, "and_x_on")
	orX := b.add(gate.Or, []gate.ID{lever, b.off()}, "or_x_off")
	xorX := b.add(gate.Xor, []gate.ID{lever, b.off()}, "xor_x_off")
	notNot := b.add(gate.Not, []gate.ID{b.add(gate.Not, []gate.ID{lever}, "not_x")}, "not_not_x")

	in := Input{
		Nodes:  b.nodes,
		Levers: []gate.ID{lever},
		Outputs: []OutputSpec{
			{Name: "and", Bits: []gate.ID{andX}},
			{Name: "or", Bits: []gate.ID{orX}},
			{Name: "xor", Bits: []gate.ID{xorX}},
			{Name: "notnot", Bits: []gate.ID{notNot}},
		},
	}
	g := Compile(in, nil)

	// Every output should reduce to directly reading the lever; no
	// combinational gates should survive compaction.
	require.Equal(t, 1, g.Len(), "only the lever itself should remain")

	require.True(t, g.SetStable(0, 64).Stable)
	require.True(t, g.B0(0))
	require.True(t, g.B0(1))
	require.True(t, g.B0(2))
	require.True(t, g.B0(3))
}

func TestCommonSubexpressionElimination(t *testing.T) {
	b := newInputBuilder()
	l1 := b.add(gate.Lever, nil, "l1")
	l2 := b.add(gate.Lever, nil, "l2")
	a := b.add(gate.And, []gate.ID{l1, l2}, "a")
	dup := b.add(gate.And, []gate.ID{l2, l1}, "dup") // same operator, reordered deps
	or := b.add(gate.Or, []gate.ID{a, dup}, "or")

	in := Input{
		Nodes:   b.nodes,
		Levers:  []gate.ID{l1, l2},
		Outputs: []OutputSpec{{Name: "or", Bits: []gate.ID{or}}},
	}
	g := Compile(in, nil)

	// a and dup must merge into one AND gate, reducing OR to an
	// identity over its single surviving operand.
	require.Equal(t, 3, g.Len(), "two levers plus one merged AND gate")
}

func TestOptimizerIdempotent(t *testing.T) {
	b := newInputBuilder()
	l1 := b.add(gate.Lever, nil, "l1")
	n1 := b.add(gate.Not, []gate.ID{l1}, "n1")
	n2 := b.add(gate.Not, []gate.ID{n1}, "n2")
	out := b.add(gate.And, []gate.ID{n2, b.on()}, "out")

	in := Input{
		Nodes:   b.nodes,
		Levers:  []gate.ID{l1},
		Outputs: []OutputSpec{{Name: "out", Bits: []gate.ID{out}}},
	}

	g1 := Compile(in, nil)
	g2 := Compile(in, nil)
	require.Equal(t, g1.Len(), g2.Len())
}

func TestCycleIsPreservedNotFoldedToConstant(t *testing.T) {
	b := newInputBuilder()
	n1 := b.add(gate.Not, []gate.ID{b.off()}, "n1")
	n2 := b.add(gate.Not, []gate.ID{n1}, "n2")
	n3 := b.add(gate.Not, []gate.ID{n2}, "n3")
	b.nodes[n1].Deps[0] = n3 // close the ring: n1 -> n3 -> n2 -> n1

	in := Input{
		Nodes:   b.nodes,
		Outputs: []OutputSpec{{Name: "out", Bits: []gate.ID{n1}}},
	}
	g := Compile(in, nil)

	require.GreaterOrEqual(t, g.Len(), 1, "a self-referential NOT ring must not fold to a constant")
	result := g.RunUntilStable(1000)
	require.False(t, result.Stable, "an odd inverter ring has no fixed point")
}

func TestDeadCodeEliminated(t *testing.T) {
	b := newInputBuilder()
	for i := 0; i < 100; i++ {
		b.add(gate.And, []gate.ID{b.on(), b.off()}, "unused")
	}
	out := b.add(gate.On, nil, "never reached through the constant singleton")
	_ = out

	in := Input{
		Nodes:   b.nodes,
		Outputs: []OutputSpec{{Name: "out", Bits: []gate.ID{b.on()}}},
	}
	g := Compile(in, nil)
	require.Equal(t, 0, g.Len())
	require.True(t, g.B0(0))
}
