// Command examplecomputer wires a tiny accumulator-based computer out
// of the component library: a 2-bit program counter, a 4-row ROM, and
// an 8-bit accumulator register sharing one clock. It is an external
// collaborator of the core simulator — it only calls the builder and
// compiled APIs, never optimizer or compiled-internal types — wired
// together the way the teacher repo's own doc/examples.go demonstrates
// library usage: runnable documentation, not a general-purpose CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/xDarkicex/gatesim"
	"github.com/xDarkicex/gatesim/components"
	"github.com/xDarkicex/gatesim/gate"
)

// stdoutLogger adapts fmt.Printf to gate.Logger so probe transitions
// reach the terminal when built with the debug_gates tag.
type stdoutLogger struct{}

func (stdoutLogger) Debugf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}

// buildComputer wires the program counter, ROM, and accumulator
// register, returning the compiled graph along with the handles the
// run loop needs.
func buildComputer(program []byte) (*gatesim.Graph, gatesim.LeverID, gatesim.OutputID, gatesim.OutputID) {
	b := gatesim.New()
	b.SetLogger(stdoutLogger{})

	clock := b.Lever("clock")

	// Program counter: a 2-bit register whose data input is its own
	// value plus one, wired with the same late-wiring placeholder
	// pattern the SR latch uses for feedback.
	placeholder0 := b.Off()
	placeholder1 := b.Off()
	incBit0 := b.Not("pc.inc0", placeholder0)
	incBit1 := b.Xor2("pc.inc1", placeholder1, placeholder0)

	pc := newSharedClockRegister(b, "pc", []gate.ID{incBit0, incBit1}, clock)

	if err := b.SetDep(incBit0, 0, pc.Q[0]); err != nil {
		panic(err)
	}
	if err := b.SetDep(incBit1, 0, pc.Q[1]); err != nil {
		panic(err)
	}
	if err := b.SetDep(incBit1, 1, pc.Q[0]); err != nil {
		panic(err)
	}

	rom := components.NewROM(b, "rom", program, pc.Q, 8)

	acc := newSharedClockRegister(b, "acc", rom.Out, clock)

	pcOut := b.Output("pc", pc.Q...)
	accOut := b.Output("acc", acc.Q...)
	b.Probe("acc.probe", acc.Q...)

	g := b.Init()
	return g, clock, pcOut, accOut
}

// newSharedClockRegister builds a Register sharing an existing clock
// lever instead of allocating its own: components.NewRegister always
// allocates a fresh clock, so this wires a second register's
// flip-flops to the same external clock bit by constructing the
// flip-flops directly against the shared Appender, mirroring
// NewRegister's own internals.
func newSharedClockRegister(b *gatesim.Builder, name string, data []gate.ID, clock gatesim.LeverID) components.Register {
	clockBit := b.Bit(clock)
	q := make([]gate.ID, len(data))
	for i, d := range data {
		ff := components.NewDFlipFlop(b, fmt.Sprintf("%s.bit%d", name, i), d, clockBit)
		q[i] = ff.Q
	}
	return components.Register{Width: len(data), Data: data, Clock: clock, Q: q}
}

func main() {
	cycles := flag.Int("cycles", 8, "number of clock cycles to run")
	verbose := flag.Bool("verbose", false, "print accumulator state every cycle")
	flag.Parse()

	program := []byte{0x11, 0x22, 0x33, 0x44}
	g, clock, pcOut, accOut := buildComputer(program)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for i := 0; i < *cycles; i++ {
		select {
		case <-ctx.Done():
			fmt.Println("run cancelled:", ctx.Err())
			return
		default:
		}
		result := g.PulseStable(clock, 1000)
		if !result.Stable {
			fmt.Println("clock pulse failed to stabilize")
			return
		}
		if *verbose {
			fmt.Printf("cycle %d: pc=%d acc=0x%02X\n", i, g.U8(pcOut), g.U8(accOut))
		}
	}

	fmt.Printf("final state: pc=%d acc=0x%02X\n", g.U8(pcOut), g.U8(accOut))
}
