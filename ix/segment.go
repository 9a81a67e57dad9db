package ix

// Segment2D is an ordered 2D segment in integer micrometers, the
// representation of a prism cell's fromEdge/toEdge triangle sides.
type Segment2D struct {
	From, To Point2
}

// NewSegment2D returns the ordered segment From -> To.
func NewSegment2D(from, to Point2) Segment2D { return Segment2D{From: from, To: to} }

// Swap returns the segment with endpoints reversed.
func (s Segment2D) Swap() Segment2D { return Segment2D{From: s.To, To: s.From} }

// IntersectLine computes the 2D point where s crosses other, treating both
// as infinite lines through their two points, and reports whether the
// lines are non-parallel (a unique intersection exists).
//
// The discontinuity resolver (spec.md §4.2) uses this to intersect a
// triangle side edge against the 2D line joining two projected polyline
// endpoints; both inputs are short, nearly-straight segments in practice so
// the "infinite line" relaxation (rather than strict segment-segment
// intersection) matches the source's own behavior of projecting onto the
// supporting line.
func (s Segment2D) IntersectLine(other Segment2D) (Point2, bool) {
	d1 := s.To.Sub(s.From)
	d2 := other.To.Sub(other.From)

	denom := d1.Cross(d2)
	if denom == 0 {
		return Point2{}, false
	}

	// Solve s.From + t*d1 == other.From + u*d2 for t using Cramer's rule.
	w := other.From.Sub(s.From)
	tNum := w.Cross(d2)

	x := s.From.X + (d1.X*tNum)/denom
	y := s.From.Y + (d1.Y*tNum)/denom
	return Point2{x, y}, true
}
