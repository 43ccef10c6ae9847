package components

import (
	"fmt"

	"github.com/xDarkicex/gatesim/gate"
)

// Register is an N-bit storage word built from one DFlipFlop per bit,
// all sharing a clock lever. Writing a new value is a two-step
// protocol matching real register hardware: drive the data bus levers
// (via WordInput or directly), then pulse the clock lever so every
// flip-flop samples its bit on the same rising edge.
type Register struct {
	Width int
	Data  []gate.ID // per-bit data input, LSB first
	Clock gate.LeverID
	Q     []gate.ID // per-bit output, LSB first
}

// NewRegister wires a width-bit register over the given per-bit data
// dependencies, allocating its own clock lever named name+".clk".
func NewRegister(b Appender, name string, width int, data []gate.ID) Register {
	if len(data) != width {
		panic("components: Register data width mismatch")
	}
	clock := b.Lever(name + ".clk")
	clockBit := b.Bit(clock)
	q := make([]gate.ID, width)
	for i := 0; i < width; i++ {
		ff := NewDFlipFlop(b, bitName(name, i), data[i], clockBit)
		q[i] = ff.Q
	}
	return Register{Width: width, Data: append([]gate.ID(nil), data...), Clock: clock, Q: q}
}

func bitName(base string, i int) string {
	return fmt.Sprintf("%s.bit%d", base, i)
}
