// Package optimize implements the rewrite pipeline that turns an
// unconstrained builder graph into the compiled package's dense,
// indexed representation: constant folding, identity elimination,
// common-subexpression elimination, and dead-code elimination run to a
// fixed point, followed by a topological compaction pass.
package optimize

import "github.com/xDarkicex/gatesim/gate"

// OutputSpec is a builder-space output registration: a debug name and
// the ordered list of builder GIDs backing it, least-significant bit
// first.
type OutputSpec struct {
	Name string
	Bits []gate.ID
}

// ProbeSpec is a builder-space probe registration, structurally
// identical to OutputSpec.
type ProbeSpec struct {
	Name string
	Bits []gate.ID
}

// Input is the builder graph snapshot Compile consumes: every node
// ever created (including the two constants), the lever table, and
// the registered outputs and probes, all addressed by builder-space
// GID.
type Input struct {
	Nodes   []gate.Node
	Levers  []gate.ID // LeverID index -> builder GID
	Outputs []OutputSpec
	Probes  []ProbeSpec
}
