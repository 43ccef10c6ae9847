package components

import (
	"fmt"

	"github.com/xDarkicex/gatesim/gate"
)

// ROM decodes a selector bus into one of 2^len(selector) constant
// data rows, each dataWidth bits wide, using only AND/OR/NOT gates: a
// one-hot address decoder (one AND gate per row, gated by the
// appropriate polarity of every selector bit) feeding a per-output-bit
// OR across every row whose data bit is set. No new opcode is
// introduced; the whole thing is composition over the seven kinds.
type ROM struct {
	DataWidth int
	Selector  []gate.ID // address bits, LSB first
	Out       []gate.ID // data bits, LSB first
}

// NewROM builds a ROM over data, addressed by selector; the address
// width is len(selector). Each row occupies ceil(dataWidth/8) bytes of
// data, little-endian within the row; bits of rows that lie past the
// end of data read as zero.
func NewROM(b Appender, name string, data []byte, selector []gate.ID, dataWidth int) ROM {
	addressWidth := len(selector)
	rowCount := 1 << uint(addressWidth)
	rowSelect := make([]gate.ID, rowCount)
	for row := 0; row < rowCount; row++ {
		lits := make([]gate.ID, addressWidth)
		for bit := 0; bit < addressWidth; bit++ {
			if row&(1<<uint(bit)) != 0 {
				lits[bit] = selector[bit]
			} else {
				lits[bit] = b.Not(fmt.Sprintf("%s.addr_n%d_%d", name, row, bit), selector[bit])
			}
		}
		rowSelect[row] = andTree(b, fmt.Sprintf("%s.row%d", name, row), lits)
	}

	out := make([]gate.ID, dataWidth)
	for bitIdx := 0; bitIdx < dataWidth; bitIdx++ {
		var contributors []gate.ID
		for row := 0; row < rowCount; row++ {
			if rowBit(data, row, bitIdx, dataWidth) {
				contributors = append(contributors, rowSelect[row])
			}
		}
		if len(contributors) == 0 {
			out[bitIdx] = b.Off()
			continue
		}
		out[bitIdx] = orTree(b, fmt.Sprintf("%s.out%d", name, bitIdx), contributors)
	}

	return ROM{DataWidth: dataWidth, Selector: append([]gate.ID(nil), selector...), Out: out}
}

// rowBit reads bit bitIdx of logical row `row`, where each row
// occupies ceil(dataWidth/8) bytes of data, little-endian.
func rowBit(data []byte, row, bitIdx, dataWidth int) bool {
	bytesPerRow := (dataWidth + 7) / 8
	base := row * bytesPerRow
	byteIdx := base + bitIdx/8
	if byteIdx >= len(data) {
		return false
	}
	return data[byteIdx]&(1<<uint(bitIdx%8)) != 0
}

// andTree and orTree fold a list of literals through the builder's
// variadic And/Or constructors directly; the builder already accepts
// arbitrary arity, so no manual tree balancing is needed here, only a
// degenerate-arity guard (a single literal or a name-only gate list of
// one is meaningless to wrap).
func andTree(b Appender, name string, lits []gate.ID) gate.ID {
	if len(lits) == 1 {
		return lits[0]
	}
	return b.And(name, lits...)
}

func orTree(b Appender, name string, lits []gate.ID) gate.ID {
	if len(lits) == 1 {
		return lits[0]
	}
	return b.Or(name, lits...)
}
