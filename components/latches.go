// Package components assembles common sequential building blocks
// (latches, flip-flops, registers, a ROM, and an example bus) purely
// from the builder's public gate constructors. Nothing here reaches
// into the optimizer or compiled-graph internals; a component is just
// a convention for wiring gates, not a new primitive.
package components

import "github.com/xDarkicex/gatesim/gate"

// Appender is the subset of builder.Graph a component constructor
// needs: enough to allocate gates and wire feedback, without
// depending on the concrete builder package (keeping this package
// testable against a fake and avoiding a needless import coupling to
// every exported builder method).
type Appender interface {
	On() gate.ID
	Off() gate.ID
	Not(name string, dep gate.ID) gate.ID
	And(name string, deps ...gate.ID) gate.ID
	Or(name string, deps ...gate.ID) gate.ID
	Nor(name string, deps ...gate.ID) gate.ID
	Lever(name string) gate.LeverID
	Bit(l gate.LeverID) gate.ID
	SetDep(target gate.ID, i int, newDep gate.ID) error
}

// SRLatch is a cross-coupled NOR latch: set drives Q high, reset
// drives Q low, and set == reset == true is the forbidden state
// (both outputs collapse low, matching real NOR-latch hardware). It
// is wired with late wiring: the QBar gate's second dependency is an
// Off placeholder until the Q gate exists, then rewritten to point at
// Q, creating the feedback cycle the optimizer's
// SCC-aware constant folding must leave opaque.
type SRLatch struct {
	Set   gate.ID
	Reset gate.ID
	Q     gate.ID
	QBar  gate.ID
}

// NewSRLatch wires a fresh SR-NOR latch. The two inputs are plain
// gate dependencies (often lever bits) rather than levers themselves,
// so a latch can be driven by any upstream logic.
func NewSRLatch(b Appender, name string, set, reset gate.ID) SRLatch {
	qBar := b.Nor(name+".qbar", set, b.Off())
	q := b.Nor(name+".q", reset, qBar)
	_ = b.SetDep(qBar, 1, q)
	return SRLatch{Set: set, Reset: reset, Q: q, QBar: qBar}
}

// DLatch is a gated, level-sensitive latch: while enable is high, Q
// follows data; while enable is low, Q holds its last value. Built
// from an SR latch with enable-gated set/reset lines, the
// conventional NAND/NOR gated-latch topology expressed with this
// library's NOR-based SRLatch.
type DLatch struct {
	Data   gate.ID
	Enable gate.ID
	Q      gate.ID
	QBar   gate.ID
}

func NewDLatch(b Appender, name string, data, enable gate.ID) DLatch {
	notData := b.Not(name+".notd", data)
	setLine := b.And(name+".set", data, enable)
	resetLine := b.And(name+".reset", notData, enable)
	latch := NewSRLatch(b, name+".sr", setLine, resetLine)
	return DLatch{Data: data, Enable: enable, Q: latch.Q, QBar: latch.QBar}
}

// DFlipFlop is a rising-edge-triggered flip-flop built from a
// master/slave pair of D-latches: the master is transparent while
// clock is low, the slave transparent while clock is high, so data
// only reaches Q on the clock's low-to-high transition as sampled by
// the simulator's tick-by-tick propagation (there is no literal edge
// detector; the master/slave topology is what makes the transfer
// single-shot per half cycle).
type DFlipFlop struct {
	Data  gate.ID
	Clock gate.ID
	Q     gate.ID
	QBar  gate.ID
}

func NewDFlipFlop(b Appender, name string, data, clock gate.ID) DFlipFlop {
	notClock := b.Not(name+".notclk", clock)
	master := NewDLatch(b, name+".master", data, notClock)
	slave := NewDLatch(b, name+".slave", master.Q, clock)
	return DFlipFlop{Data: data, Clock: clock, Q: slave.Q, QBar: slave.QBar}
}
