package edgenet

// DefaultInclinationDegrees is the minimum angle, off horizontal, every
// polyline segment must keep (invariant INCLINE). spec.md §9's Open
// Question resolves to: expose this as a named, overridable parameter, but
// never change the default.
const DefaultInclinationDegrees = 35.0

// DefaultBendSuppressionSq is the squared-micrometer threshold at or below
// which Adjust Edge End (spec.md §4.3) skips inserting a bend point, because the
// resulting segment would be too short to matter and risks a near-zero
// inclination.
const DefaultBendSuppressionSq = 100

// Options carries the edge network's tunable thresholds. Built once by
// Construct from DefaultOptions plus the given Option values; never
// mutated afterward — the same
// object-then-consume shape as the teacher's BuilderOptions.
type Options struct {
	inclinationDegrees float64
	bendSuppressionSq  int64
}

// Option configures an Options value.
type Option func(*Options)

// WithInclinationDegrees overrides the minimum segment inclination used by
// debug-mode verification. It does not change Adjust Edge End's geometry;
// it only changes what the debug assertion checks against.
func WithInclinationDegrees(degrees float64) Option {
	return func(o *Options) { o.inclinationDegrees = degrees }
}

// WithBendSuppressionSq overrides the squared-micrometer bend-suppression
// threshold used by Adjust Edge End.
func WithBendSuppressionSq(sq int64) Option {
	return func(o *Options) { o.bendSuppressionSq = sq }
}

// DefaultOptions returns the Options Construct uses when none are given.
func DefaultOptions() Options {
	return Options{
		inclinationDegrees: DefaultInclinationDegrees,
		bendSuppressionSq:  DefaultBendSuppressionSq,
	}
}

func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
