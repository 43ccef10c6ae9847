package components

import (
	"github.com/xDarkicex/gatesim/compiled"
	"github.com/xDarkicex/gatesim/gate"
)

// Bus bundles width gate dependencies (often lever bits, but any
// gate output works) under one handle, matching the width vocabulary
// the compiled package's output accessors use (LSB first).
type Bus struct {
	Bits []gate.ID
}

// NewBus wraps an existing slice of per-bit dependencies as a Bus.
func NewBus(bits []gate.ID) Bus {
	return Bus{Bits: append([]gate.ID(nil), bits...)}
}

// Get returns bit i of the bus.
func (bus Bus) Get(i int) gate.ID { return bus.Bits[i] }

// Width returns the number of bits in the bus.
func (bus Bus) Width() int { return len(bus.Bits) }

// WordInput is width independently settable levers exposed as a
// single bus handle, the component-library counterpart to a builder
// Output: where Output observes, WordInput drives.
type WordInput struct {
	Levers []gate.LeverID
	Bits   []gate.ID
}

// NewWordInput allocates width levers named name+".bit{i}" and
// returns them bundled as a WordInput.
func NewWordInput(b Appender, name string, width int) WordInput {
	levers := make([]gate.LeverID, width)
	bits := make([]gate.ID, width)
	for i := 0; i < width; i++ {
		l := b.Lever(bitName(name, i))
		levers[i] = l
		bits[i] = b.Bit(l)
	}
	return WordInput{Levers: levers, Bits: bits}
}

// Bus exposes this word input's driven bits as a Bus, so it can feed
// a Register or ROM selector directly.
func (w WordInput) Bus() Bus { return NewBus(w.Bits) }

// Write drives every lever of w to the corresponding bit of value,
// least-significant bit first, without requesting stabilization.
func (w WordInput) Write(g *compiled.Graph, value uint64) {
	for i, l := range w.Levers {
		if value&(1<<uint(i)) != 0 {
			g.Set(l)
		} else {
			g.Reset(l)
		}
	}
}

// WriteStable is Write followed by a single RunUntilStable call,
// matching the builder API's *_stable naming convention for a
// combined write-and-settle operation.
func (w WordInput) WriteStable(g *compiled.Graph, value uint64, maxTicks int) compiled.StabilizeResult {
	w.Write(g, value)
	return g.RunUntilStable(maxTicks)
}
