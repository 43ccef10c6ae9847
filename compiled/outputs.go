package compiled

import "github.com/xDarkicex/gatesim/gate"

// B0 returns the boolean value of bit 0 of output id. It is a read
// view over the current snapshot and never causes propagation.
func (g *Graph) B0(id gate.OutputID) bool {
	bits := g.outputs[id]
	if len(bits) == 0 {
		return false
	}
	return g.state[bits[0]]
}

// pack reads up to width bits little-endian from output id's
// registered bits: zero-extending if fewer bits are registered than
// width requires, truncating to the least-significant width bits if
// more are registered than width holds.
func (g *Graph) pack(id gate.OutputID, width int) uint64 {
	bits := g.outputs[id]
	n := min(len(bits), width)
	var v uint64
	for i := 0; i < n; i++ {
		if g.state[bits[i]] {
			v |= 1 << uint(i)
		}
	}
	return v
}

func (g *Graph) U8(id gate.OutputID) uint8   { return uint8(g.pack(id, 8)) }
func (g *Graph) U16(id gate.OutputID) uint16 { return uint16(g.pack(id, 16)) }
func (g *Graph) U32(id gate.OutputID) uint32 { return uint32(g.pack(id, 32)) }
func (g *Graph) U64(id gate.OutputID) uint64 { return g.pack(id, 64) }

// U128 packs up to 128 registered bits little-endian, returned as
// (low64, high64) since Go has no native 128-bit integer.
func (g *Graph) U128(id gate.OutputID) (lo, hi uint64) {
	bits := g.outputs[id]
	n := min(len(bits), 128)
	for i := 0; i < n; i++ {
		if !g.state[bits[i]] {
			continue
		}
		if i < 64 {
			lo |= 1 << uint(i)
		} else {
			hi |= 1 << uint(i-64)
		}
	}
	return lo, hi
}

// signExtend sign-extends the low `bits` bits of v (an unsigned
// packing) to a full int64, using bits-1 as the sign bit.
func signExtend(v uint64, bits int) int64 {
	if bits <= 0 || bits >= 64 {
		return int64(v)
	}
	shift := uint(64 - bits)
	return int64(v<<shift) >> shift
}

func (g *Graph) I8(id gate.OutputID) int8 {
	return int8(signExtend(g.pack(id, 8), min(len(g.outputs[id]), 8)))
}

func (g *Graph) I16(id gate.OutputID) int16 {
	return int16(signExtend(g.pack(id, 16), min(len(g.outputs[id]), 16)))
}

func (g *Graph) I32(id gate.OutputID) int32 {
	return int32(signExtend(g.pack(id, 32), min(len(g.outputs[id]), 32)))
}

func (g *Graph) I64(id gate.OutputID) int64 {
	return signExtend(g.pack(id, 64), min(len(g.outputs[id]), 64))
}

// I128 sign-extends from the top registered bit, returning a
// two's-complement 128-bit value as (low64, high64).
func (g *Graph) I128(id gate.OutputID) (lo, hi uint64) {
	lo, hi = g.U128(id)
	n := len(g.outputs[id])
	if n == 0 || n >= 128 {
		return lo, hi
	}
	var signBit uint64
	if n <= 64 {
		signBit = (lo >> uint(n-1)) & 1
	} else {
		signBit = (hi >> uint(n-65)) & 1
	}
	if signBit == 0 {
		return lo, hi
	}
	for i := n; i < 128; i++ {
		if i < 64 {
			lo |= 1 << uint(i)
		} else {
			hi |= 1 << uint(i-64)
		}
	}
	return lo, hi
}

// Char returns the packed value as a single byte, the accessor named
// "char" in the design.
func (g *Graph) Char(id gate.OutputID) byte { return g.U8(id) }

// Width returns the number of bits registered under output id.
func (g *Graph) Width(id gate.OutputID) int { return len(g.outputs[id]) }

// OutputName returns the debug name output id was registered under,
// or "" under the no_debug_gates build configuration.
func (g *Graph) OutputName(id gate.OutputID) string { return g.outputNames[id] }
