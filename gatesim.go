// Package gatesim is the top-level facade over the builder, optimizer,
// and compiled packages: build a graph with New, wire it with the
// Builder methods, then Init it into a runnable Graph.
package gatesim

import (
	"github.com/xDarkicex/gatesim/builder"
	"github.com/xDarkicex/gatesim/compiled"
	"github.com/xDarkicex/gatesim/gate"
)

// New creates an empty builder graph, pre-seeded with the OFF/ON
// constants.
func New() *builder.Graph {
	return builder.New()
}

// Type aliases so callers only need to import this one package for
// the common vocabulary; the builder/compiled/gate split stays purely
// an internal organization.
type (
	Builder          = builder.Graph
	Graph            = compiled.Graph
	StabilizeResult  = compiled.StabilizeResult
	Kind             = gate.Kind
	ID               = gate.ID
	LeverID          = gate.LeverID
	OutputID         = gate.OutputID
	ProbeID          = gate.ProbeID
	Logger           = gate.Logger
)

const (
	Off  = gate.Off
	On   = gate.On
	Not  = gate.Not
	And  = gate.And
	Nand = gate.Nand
	Or   = gate.Or
	Nor  = gate.Nor
	Xor  = gate.Xor
	Xnor = gate.Xnor
)

// NopLogger is the zero-cost default logger used when no caller
// supplies one.
var NopLogger = gate.NopLogger{}
