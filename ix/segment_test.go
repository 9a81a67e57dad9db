package ix

import "testing"

func TestSegmentSwap(t *testing.T) {
	s := NewSegment2D(Point2{1, 1}, Point2{2, 2})
	sw := s.Swap()
	if sw.From != s.To || sw.To != s.From {
		t.Errorf("Swap() = %v, want endpoints reversed from %v", sw, s)
	}
}

func TestIntersectLine(t *testing.T) {
	// Two lines crossing at (5, 5).
	s1 := NewSegment2D(Point2{0, 0}, Point2{10, 10})
	s2 := NewSegment2D(Point2{0, 10}, Point2{10, 0})

	got, ok := s1.IntersectLine(s2)
	if !ok {
		t.Fatalf("expected intersection to be found")
	}
	if want := (Point2{5, 5}); got != want {
		t.Errorf("IntersectLine = %v, want %v", got, want)
	}
}

func TestIntersectLineParallel(t *testing.T) {
	s1 := NewSegment2D(Point2{0, 0}, Point2{10, 0})
	s2 := NewSegment2D(Point2{0, 5}, Point2{10, 5})

	if _, ok := s1.IntersectLine(s2); ok {
		t.Errorf("expected no intersection for parallel lines")
	}
}
