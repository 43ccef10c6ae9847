//go:build debug_gates

package gate

// DebugGatesEnabled selects the debug_gates build configuration: debug
// names are retained and probes emit on change. See DebugName.
const DebugGatesEnabled = true

// DebugName returns name unchanged when the debug_gates build tag is
// set. Under no_debug_gates it returns "" instead (see the sibling
// no_debug_gates.go), so name storage and probe output are elided
// entirely rather than merely left unused.
func DebugName(name string) string {
	return name
}
