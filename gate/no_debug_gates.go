//go:build !debug_gates

package gate

// DebugGatesEnabled is false by default: the library ships with debug
// names and probe output compiled away unless the caller builds with
// -tags debug_gates.
const DebugGatesEnabled = false

// DebugName discards name so no debug string is ever stored, matching
// the no_debug_gates configuration from the design notes.
func DebugName(string) string {
	return ""
}
