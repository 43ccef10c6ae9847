package compiled

import (
	"fmt"
	"strings"

	"github.com/xDarkicex/gatesim/gate"
)

// TruthRow is a single row of a golden truth table: the lever
// assignment that produced it, whether the graph reached stability
// under that assignment, and the resulting output word.
type TruthRow struct {
	Levers []bool
	Stable bool
	Output uint64
}

// TruthTable is an exhaustive record of a compiled graph's response to
// every combination of a set of levers, useful for documenting or
// regression-testing a purely combinational sub-circuit. Driving a
// cyclic sub-circuit through GoldenTable is legal but each row's
// Stable flag must then be checked rather than assumed.
type TruthTable struct {
	LeverNames []string
	Rows       []TruthRow
}

// GoldenTable drives every combination of the given levers (2^n rows
// for n levers, in ascending binary order with the first lever as the
// most significant bit), stabilizing after each assignment, and
// records the bit pattern read back from output id. maxTicks bounds
// each stabilization attempt exactly as RunUntilStable does.
func (g *Graph) GoldenTable(levers []gate.LeverID, leverNames []string, output gate.OutputID, maxTicks int) TruthTable {
	n := len(levers)
	rows := make([]TruthRow, 1<<uint(n))
	for i := range rows {
		assignment := make([]bool, n)
		for j := 0; j < n; j++ {
			bit := (i >> uint(n-1-j)) & 1
			assignment[j] = bit == 1
			if assignment[j] {
				g.Set(levers[j])
			} else {
				g.Reset(levers[j])
			}
		}
		result := g.RunUntilStable(maxTicks)
		rows[i] = TruthRow{
			Levers: assignment,
			Stable: result.Stable,
			Output: g.pack(output, 64),
		}
	}
	return TruthTable{LeverNames: append([]string(nil), leverNames...), Rows: rows}
}

// String formats the table with one column per lever plus an Output
// column, matching the plain fixed-width layout this library has
// always used for ad hoc debug dumps.
func (tt TruthTable) String() string {
	if len(tt.Rows) == 0 {
		return "empty truth table\n"
	}
	var b strings.Builder
	for _, name := range tt.LeverNames {
		fmt.Fprintf(&b, "%-8s", name)
	}
	b.WriteString("Output\n")
	b.WriteString(strings.Repeat("-", len(tt.LeverNames)*8+6))
	b.WriteString("\n")
	for _, row := range tt.Rows {
		for _, v := range row.Levers {
			if v {
				b.WriteString("T       ")
			} else {
				b.WriteString("F       ")
			}
		}
		fmt.Fprintf(&b, "%d", row.Output)
		if !row.Stable {
			b.WriteString(" (unstable)")
		}
		b.WriteString("\n")
	}
	return b.String()
}
