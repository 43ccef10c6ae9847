package compiled

import (
	"testing"

	"github.com/xDarkicex/gatesim/gate"
)

// chainSpec builds a straight-line chain of n AND gates over a single
// lever, the shape used to demonstrate the "no allocations during
// Tick" guarantee: every gate's dependency set is known at compile
// time, so Tick never needs to grow any backing array once the dirty
// queue has warmed up to its steady-state size.
func chainSpec(n int) BuildSpec {
	kinds := make([]gate.Kind, n+1)
	deps := make([][]gate.ID, n+1)
	names := make([]string, n+1)
	kinds[0] = gate.Lever
	names[0] = "in"
	for i := 1; i <= n; i++ {
		kinds[i] = gate.And
		deps[i] = []gate.ID{gate.ID(i - 1), gate.ID(0)}
		names[i] = "link"
	}
	return BuildSpec{
		Kinds:  kinds,
		Deps:   deps,
		Names:  names,
		Levers: []gate.ID{0},
		Outputs: []NamedBits{
			{Name: "out", Bits: []gate.ID{gate.ID(n)}},
		},
	}
}

func BenchmarkTickChain(b *testing.B) {
	g := New(chainSpec(256), nil)
	g.Set(0)
	g.RunUntilStable(1000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Flip(0)
		g.RunUntilStable(1000)
	}
}

func BenchmarkOutputAccessors(b *testing.B) {
	spec := chainSpec(64)
	g := New(spec, nil)
	out := gate.OutputID(0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.B0(out)
	}
}
