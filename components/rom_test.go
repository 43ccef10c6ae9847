package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/gatesim/builder"
)

func TestROMDecode(t *testing.T) {
	b := builder.New()
	selector := NewWordInput(b, "addr", 2)
	data := []byte{0x11, 0x22, 0x33, 0x44}
	rom := NewROM(b, "rom", data, selector.Bits, 8)
	out := b.Output("rom.out", rom.Out...)

	g := b.Init()

	for row, want := range data {
		require.True(t, selector.WriteStable(g, uint64(row), 64).Stable)
		require.Equal(t, want, g.U8(out), "row %d", row)
	}
}

func TestROMWidePadsUnusedRowsWithZero(t *testing.T) {
	b := builder.New()
	selector := NewWordInput(b, "addr", 2)
	data := []byte{0xFF}
	rom := NewROM(b, "rom", data, selector.Bits, 8)
	out := b.Output("rom.out", rom.Out...)

	g := b.Init()

	require.True(t, selector.WriteStable(g, 0, 64).Stable)
	require.Equal(t, uint8(0xFF), g.U8(out))

	require.True(t, selector.WriteStable(g, 1, 64).Stable)
	require.Equal(t, uint8(0x00), g.U8(out))
}
