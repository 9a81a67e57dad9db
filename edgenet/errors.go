package edgenet

import "fmt"

// InvariantError reports which of the edge network's invariants (OWN,
// POLY, BOUND, INCLINE, or a Z-range precondition) was violated. All
// occurrences of InvariantError are programming errors — a malformed
// subdiv.View — not recoverable conditions, per spec.md §7: it is raised
// by panic, never returned.
type InvariantError struct {
	Invariant string
	Message   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("edgenet: invariant %s violated: %s", e.Invariant, e.Message)
}

// raiseInvariant panics with an *InvariantError. Used for violations the
// spec names explicitly (OWN, POLY, BOUND, INCLINE, Z_RANGE) so a test
// harness can recover and assert on the invariant name.
func raiseInvariant(invariant, format string, args ...any) {
	panic(&InvariantError{Invariant: invariant, Message: fmt.Sprintf(format, args...)})
}
