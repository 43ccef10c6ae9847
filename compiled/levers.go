package compiled

import "github.com/xDarkicex/gatesim/gate"

func (g *Graph) leverGID(l gate.LeverID) int32 { return g.levers[l] }

// setLever writes value to lever l's compiled gate and, if the value
// actually changed, pushes the lever's fan-out onto the dirty queue
// Tick will drain next.
func (g *Graph) setLever(l gate.LeverID, value bool) {
	gid := g.leverGID(l)
	if g.state[gid] == value {
		return
	}
	g.state[gid] = value
	g.dirty = append(g.dirty, g.fanoutOf(gid)...)
}

// Set drives lever l high.
func (g *Graph) Set(l gate.LeverID) { g.setLever(l, true) }

// Reset drives lever l low.
func (g *Graph) Reset(l gate.LeverID) { g.setLever(l, false) }

// Flip inverts lever l's current value.
func (g *Graph) Flip(l gate.LeverID) { g.setLever(l, !g.state[g.leverGID(l)]) }

// SetStable sets lever l and runs until stable.
func (g *Graph) SetStable(l gate.LeverID, maxTicks int) StabilizeResult {
	g.Set(l)
	return g.RunUntilStable(maxTicks)
}

// ResetStable resets lever l and runs until stable.
func (g *Graph) ResetStable(l gate.LeverID, maxTicks int) StabilizeResult {
	g.Reset(l)
	return g.RunUntilStable(maxTicks)
}

// FlipStable flips lever l and runs until stable.
func (g *Graph) FlipStable(l gate.LeverID, maxTicks int) StabilizeResult {
	g.Flip(l)
	return g.RunUntilStable(maxTicks)
}

// LeverValue returns the current value of lever l without causing
// propagation.
func (g *Graph) LeverValue(l gate.LeverID) bool {
	return g.state[g.leverGID(l)]
}

// PulseStable models a momentary pushbutton: it asserts l, runs to
// stability, deasserts l, and runs to stability again.
//
// It always performs the full assert -> stabilize -> deassert ->
// stabilize sequence, even when l is already set when PulseStable is
// called. A physical pushbutton behaves the same way on every press:
// it re-asserts and releases the line regardless of what it was
// already driving. See DESIGN.md for the open-question rationale.
func (g *Graph) PulseStable(l gate.LeverID, maxTicks int) StabilizeResult {
	g.Set(l)
	first := g.RunUntilStable(maxTicks)
	g.Reset(l)
	second := g.RunUntilStable(maxTicks)
	return StabilizeResult{
		Stable: first.Stable && second.Stable,
		Ticks:  first.Ticks + second.Ticks,
	}
}
