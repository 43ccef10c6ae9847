package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/gatesim/builder"
)

func TestSRLatchSetReset(t *testing.T) {
	b := builder.New()
	setLever := b.Lever("set")
	resetLever := b.Lever("reset")
	latch := NewSRLatch(b, "latch", b.Bit(setLever), b.Bit(resetLever))
	q := b.Output("q", latch.Q)

	g := b.Init()

	result := g.SetStable(setLever, 64)
	require.True(t, result.Stable)
	require.True(t, g.B0(q))

	require.True(t, g.ResetStable(setLever, 64).Stable)
	result = g.SetStable(resetLever, 64)
	require.True(t, result.Stable)
	require.False(t, g.B0(q))
}

func TestDFlipFlopSamplesOnRisingEdge(t *testing.T) {
	b := builder.New()
	dataLever := b.Lever("d")
	clockLever := b.Lever("clk")
	ff := NewDFlipFlop(b, "ff", b.Bit(dataLever), b.Bit(clockLever))
	q := b.Output("q", ff.Q)

	g := b.Init()

	// Latches power up in an undefined state; clock in the initial
	// d=0 so Q starts from a known low value.
	require.True(t, g.PulseStable(clockLever, 64).Stable)

	require.True(t, g.SetStable(dataLever, 64).Stable)
	require.False(t, g.B0(q), "Q must not change before the clock edge")

	require.True(t, g.PulseStable(clockLever, 64).Stable)
	require.True(t, g.B0(q))

	require.True(t, g.ResetStable(dataLever, 64).Stable)
	require.True(t, g.B0(q), "Q must hold its value while the clock is not pulsed")

	require.True(t, g.PulseStable(clockLever, 64).Stable)
	require.False(t, g.B0(q))
}
