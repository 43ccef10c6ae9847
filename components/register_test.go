package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/gatesim/builder"
)

func TestRegisterRoundTrip(t *testing.T) {
	b := builder.New()
	word := NewWordInput(b, "word", 8)
	reg := NewRegister(b, "r0", 8, word.Bits)

	outID := b.Output("r0.q", reg.Q...)

	g := b.Init()

	// Flip-flops power up in an undefined state; clock in the initial
	// all-zero word so the register starts from a known value.
	require.True(t, g.PulseStable(reg.Clock, 64).Stable)

	require.True(t, word.WriteStable(g, 0xA5, 64).Stable)
	require.Equal(t, uint8(0), g.U8(outID), "register must not change before a clock pulse")

	result := g.PulseStable(reg.Clock, 64)
	require.True(t, result.Stable)
	require.Equal(t, uint8(0xA5), g.U8(outID))

	require.True(t, word.WriteStable(g, 0x00, 64).Stable)
	require.Equal(t, uint8(0xA5), g.U8(outID), "register must hold its value without a new clock pulse")
}

func TestBusWidth(t *testing.T) {
	b := builder.New()
	word := NewWordInput(b, "w", 4)
	bus := word.Bus()
	require.Equal(t, 4, bus.Width())
	require.Equal(t, word.Bits[2], bus.Get(2))
}
