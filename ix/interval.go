package ix

// ZRange represents a closed interval of integer micrometer Z ordinates,
// [Min, Max]. Unlike r1.Interval in the teacher lineage, a cell's ZRange is
// never empty: Min <= Max always holds for a well-formed subdivision.
type ZRange struct {
	Min, Max int64
}

// NewZRange returns the closed interval [lo, hi].
func NewZRange(lo, hi int64) ZRange { return ZRange{lo, hi} }

// Length returns the length of the interval.
func (z ZRange) Length() int64 { return z.Max - z.Min }

// Contains reports whether z contains v.
func (z ZRange) Contains(v int64) bool { return z.Min <= v && v <= z.Max }

// Center returns the midpoint of the interval, rounding toward zero.
func (z ZRange) Center() int64 { return (z.Min + z.Max) / 2 }
