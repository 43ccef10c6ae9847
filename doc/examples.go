// Package main demonstrates usage of the gatesim library: building a
// graph, wiring feedback for a latch, compiling, and driving the
// compiled graph's levers and outputs.
package main

import (
	"fmt"
	"os"

	"github.com/xDarkicex/gatesim"
	"github.com/xDarkicex/gatesim/components"
)

// ExampleBasicGates demonstrates allocating levers, wiring combinational
// gates, registering an output, and reading it back after compilation.
func ExampleBasicGates() {
	fmt.Println("=== Basic Gates ===")

	b := gatesim.New()
	l1 := b.Lever("l1")
	l2 := b.Lever("l2")
	and := b.And2("and", b.Bit(l1), b.Bit(l2))
	or := b.Or2("or", b.Bit(l1), b.Bit(l2))
	andOut := b.Output("and", and)
	orOut := b.Output("or", or)

	g := b.Init()
	fmt.Printf("AND(false,false)=%v OR(false,false)=%v\n", g.B0(andOut), g.B0(orOut))

	g.SetStable(l1, 64)
	fmt.Printf("AND(true,false)=%v OR(true,false)=%v\n", g.B0(andOut), g.B0(orOut))

	g.SetStable(l2, 64)
	fmt.Printf("AND(true,true)=%v OR(true,true)=%v\n", g.B0(andOut), g.B0(orOut))

	fmt.Println()
}

// ExampleSRLatch demonstrates the cross-coupled NOR latch's feedback
// behavior: once set, Q holds until reset, regardless of what Set does
// afterward.
func ExampleSRLatch() {
	fmt.Println("=== SR Latch ===")

	b := gatesim.New()
	set := b.Lever("set")
	reset := b.Lever("reset")
	latch := components.NewSRLatch(b, "latch", b.Bit(set), b.Bit(reset))
	q := b.Output("q", latch.Q)

	g := b.Init()
	g.PulseStable(reset, 64)
	fmt.Printf("after reset pulse: Q=%v\n", g.B0(q))

	g.PulseStable(set, 64)
	fmt.Printf("after set pulse:   Q=%v\n", g.B0(q))

	fmt.Println()
}

// ExampleRegisterAndROM demonstrates the component library's register
// and ROM constructors wired together: a ROM row loaded into a
// register on a clock pulse.
func ExampleRegisterAndROM() {
	fmt.Println("=== Register + ROM ===")

	b := gatesim.New()
	addr := components.NewWordInput(b, "addr", 2)
	rom := components.NewROM(b, "rom", []byte{0x11, 0x22, 0x33, 0x44}, addr.Bits, 8)
	reg := components.NewRegister(b, "reg", 8, rom.Out)
	regOut := b.Output("reg.q", reg.Q...)

	g := b.Init()
	addr.WriteStable(g, 2, 64)
	g.PulseStable(reg.Clock, 64)
	fmt.Printf("register loaded from ROM row 2: 0x%02X\n", g.U8(regOut))

	fmt.Println()
}

// ExampleDOTExport demonstrates serializing the compiled graph in DOT
// format for inspection with Graphviz.
func ExampleDOTExport() {
	fmt.Println("=== DOT Export ===")

	b := gatesim.New()
	l := b.Lever("in")
	n := b.Not("inverted", b.Bit(l))
	b.Output("out", n)

	g := b.Init()
	if err := g.DumpDOT(os.Stdout); err != nil {
		fmt.Printf("dot export error: %v\n", err)
	}
	fmt.Println()
}

func main() {
	fmt.Println("gatesim examples")
	fmt.Println("=================")
	fmt.Println()

	ExampleBasicGates()
	ExampleSRLatch()
	ExampleRegisterAndROM()
	ExampleDOTExport()

	fmt.Println("all examples completed successfully!")
}
