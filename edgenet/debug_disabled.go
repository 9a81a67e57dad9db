//go:build !debug

package edgenet

// dcheckf is a no-op in release builds: the subdiv.View is assumed
// well-formed, per spec.md §7. See debug_enabled.go for the -tags debug
// variant that actually checks.
func dcheckf(invariant string, condition bool, format string, args ...any) {}
