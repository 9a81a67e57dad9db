// To use these, you must set the build tag with the -tags flag as:
//    go build -tags debug

//go:build debug

package edgenet

import "fmt"

// dcheckf panics with an *InvariantError naming invariant when condition is
// false. Compiled in only under -tags debug; release builds assume the
// subdiv.View is well-formed (spec.md §7).
func dcheckf(invariant string, condition bool, format string, args ...any) {
	if !condition {
		raiseInvariant(invariant, fmt.Sprintf(format, args...))
	}
}
