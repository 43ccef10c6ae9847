package compiled

import "github.com/xDarkicex/gatesim/gate"

// SetLogger installs the sink debug probes write change lines to. A
// nil logger is replaced with gate.NopLogger.
func (g *Graph) SetLogger(l gate.Logger) {
	if l == nil {
		l = gate.NopLogger{}
	}
	g.logger = l
}

func (g *Graph) probeValue(bits []int32) uint64 {
	n := min(len(bits), 64)
	var v uint64
	for i := 0; i < n; i++ {
		if g.state[bits[i]] {
			v |= 1 << uint(i)
		}
	}
	return v
}

// emitProbes checks every registered probe for a bit that changed
// during the tick just drained and logs "{name}: {value}" for each
// that did. Under the no_debug_gates build configuration
// gate.DebugGatesEnabled is a compile-time false, so this call's
// entire body is unreachable and the compiler removes it rather than
// paying any per-tick cost for a feature that was turned off.
func (g *Graph) emitProbes() {
	if !gate.DebugGatesEnabled {
		return
	}
	for i, bits := range g.probes {
		last := g.probeLast[i]
		changed := false
		for j, b := range bits {
			v := g.state[b]
			if v != last[j] {
				changed = true
				last[j] = v
			}
		}
		if changed && g.probeNames[i] != "" {
			g.logger.Debugf("%s: %d", g.probeNames[i], g.probeValue(bits))
		}
	}
}
