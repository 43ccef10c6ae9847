package compiled

import (
	"fmt"
	"io"

	"github.com/xDarkicex/gatesim/gate"
)

// DumpDOT serializes the compiled graph as a directed graph in the
// standard DOT text format: one node per compiled GID, labeled with
// its kind and (when the debug_gates build configuration retains
// names) its debug name; one edge per dependency, directed from
// dependency to dependent and annotated with the positional index of
// that dependency in the dependent's argument list.
func (g *Graph) DumpDOT(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph circuit {"); err != nil {
		return err
	}
	for id, kind := range g.kinds {
		label := kind.String()
		if gate.DebugGatesEnabled && id < len(g.names) && g.names[id] != "" {
			label = label + "\\n" + g.names[id]
		}
		if _, err := fmt.Fprintf(w, "  n%d [label=%q];\n", id, label); err != nil {
			return err
		}
	}
	for id := range g.kinds {
		for i, d := range g.depsOf(int32(id)) {
			if _, err := fmt.Fprintf(w, "  n%d -> n%d [label=%q];\n", d, id, fmt.Sprintf("%d", i)); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
