package compiled

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/gatesim/gate"
)

// simpleBuildSpec returns a two-lever AND/OR pair, mirroring what the
// optimizer would have already compacted: no dead gates, dense GIDs.
func simpleBuildSpec() BuildSpec {
	// 0: lever l1, 1: lever l2, 2: AND(0,1), 3: OR(0,1)
	return BuildSpec{
		Kinds: []gate.Kind{gate.Lever, gate.Lever, gate.And, gate.Or},
		Deps: [][]gate.ID{
			nil, nil,
			{0, 1},
			{0, 1},
		},
		Names:  []string{"l1", "l2", "and", "or"},
		Levers: []gate.ID{0, 1},
		Outputs: []NamedBits{
			{Name: "and", Bits: []gate.ID{2}},
			{Name: "or", Bits: []gate.ID{3}},
		},
	}
}

func TestTickPropagatesOneWave(t *testing.T) {
	g := New(simpleBuildSpec(), nil)

	require.False(t, g.B0(0))
	require.False(t, g.B0(1))

	g.Set(0)
	result := g.RunUntilStable(8)
	require.True(t, result.Stable)
	require.True(t, g.B0(1)) // OR output
	require.False(t, g.B0(0))

	g.Set(1)
	result = g.RunUntilStable(8)
	require.True(t, result.Stable)
	require.True(t, g.B0(0)) // AND output
}

func TestRunUntilStableFailsOnOscillation(t *testing.T) {
	// A single self-referential NOT gate: id 0 depends on itself.
	spec := BuildSpec{
		Kinds: []gate.Kind{gate.Not},
		Deps:  [][]gate.ID{{0}},
		Names: []string{"osc"},
	}
	g := New(spec, nil)
	g.dirty = append(g.dirty, 0)
	result := g.RunUntilStable(50)
	require.False(t, result.Stable)
	require.Equal(t, 50, result.Ticks)
}

func TestOutputAccessorsRoundTrip(t *testing.T) {
	kinds := make([]gate.Kind, 8)
	deps := make([][]gate.ID, 8)
	names := make([]string, 8)
	levers := make([]gate.ID, 8)
	for i := range kinds {
		kinds[i] = gate.Lever
		levers[i] = gate.ID(i)
		names[i] = "bit"
	}
	bits := make([]gate.ID, 8)
	for i := range bits {
		bits[i] = gate.ID(i)
	}
	spec := BuildSpec{
		Kinds:  kinds,
		Deps:   deps,
		Names:  names,
		Levers: levers,
		Outputs: []NamedBits{
			{Name: "byte", Bits: bits},
		},
	}
	g := New(spec, nil)

	for _, pattern := range []uint8{0x00, 0xFF, 0xA5, 0x01, 0x80} {
		for i := 0; i < 8; i++ {
			if pattern&(1<<uint(i)) != 0 {
				g.Set(gate.LeverID(i))
			} else {
				g.Reset(gate.LeverID(i))
			}
		}
		require.Equal(t, pattern, g.U8(0))
	}
}

func TestDumpDOTWritesOneLinePerNodeAndEdge(t *testing.T) {
	g := New(simpleBuildSpec(), nil)
	var b strings.Builder
	require.NoError(t, g.DumpDOT(&b))

	out := b.String()
	require.True(t, strings.HasPrefix(out, "digraph circuit {"))
	require.True(t, strings.Contains(out, "n0 -> n2"))
	require.True(t, strings.Contains(out, "n1 -> n2"))
}

func TestGoldenTable(t *testing.T) {
	g := New(simpleBuildSpec(), nil)
	table := g.GoldenTable([]gate.LeverID{0, 1}, []string{"l1", "l2"}, 1, 8)
	require.Len(t, table.Rows, 4)
	require.Equal(t, uint64(0), table.Rows[0].Output) // 0,0 -> OR=0
	require.Equal(t, uint64(1), table.Rows[3].Output) // 1,1 -> OR=1
}
