package builder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/gatesim/gate"
)

func TestSetDepRejectsOutOfRangeTarget(t *testing.T) {
	b := New()
	err := b.SetDep(gate.ID(999), 0, b.On())
	require.Error(t, err)
}

func TestSetDepRejectsConstantTarget(t *testing.T) {
	b := New()
	err := b.SetDep(b.On(), 0, b.Off())
	require.Error(t, err)
}

func TestSetDepRejectsLeverTarget(t *testing.T) {
	b := New()
	l := b.Lever("x")
	err := b.SetDep(b.Bit(l), 0, b.On())
	require.Error(t, err)
}

func TestSetDepRejectsSlotOutOfRange(t *testing.T) {
	b := New()
	n := b.Not("n", b.On())
	err := b.SetDep(n, 5, b.Off())
	require.Error(t, err)
}

func TestSetDepRewiresLateFeedback(t *testing.T) {
	b := New()
	placeholder := b.Off()
	g1 := b.Not("g1", placeholder)
	g2 := b.Not("g2", g1)
	require.NoError(t, b.SetDep(g1, 0, g2))

	out := b.Output("out", g1)
	compiled := b.Init()
	result := compiled.RunUntilStable(16)
	// NOT(NOT(x)) forms a 2-cycle here with no external driver; the
	// test checks only that SetDep accepts the rewrite and that Init
	// compiles the resulting cycle, not any stabilization outcome.
	_ = result
	_ = out
}

func TestArityShorthands(t *testing.T) {
	b := New()
	l1 := b.Lever("l1")
	l2 := b.Lever("l2")
	a := b.And2("a", b.Bit(l1), b.Bit(l2))
	out := b.Output("out", a)

	g := b.Init()
	require.True(t, g.SetStable(l1, 8).Stable)
	require.False(t, g.B0(out))
	require.True(t, g.SetStable(l2, 8).Stable)
	require.True(t, g.B0(out))
}
