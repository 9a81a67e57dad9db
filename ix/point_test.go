package ix

import "testing"

func TestPoint2Arithmetic(t *testing.T) {
	a := Point2{1, 2}
	b := Point2{3, 5}

	if got, want := a.Add(b), (Point2{4, 7}); got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if got, want := b.Sub(a), (Point2{2, 3}); got != want {
		t.Errorf("Sub = %v, want %v", got, want)
	}
	if got, want := a.Dot(b), int64(1*3+2*5); got != want {
		t.Errorf("Dot = %d, want %d", got, want)
	}
	if got, want := a.Cross(b), int64(1*5-2*3); got != want {
		t.Errorf("Cross = %d, want %d", got, want)
	}
	if got, want := a.DistSq(b), int64(4+9); got != want {
		t.Errorf("DistSq = %d, want %d", got, want)
	}
}

func TestPoint3At(t *testing.T) {
	p := Point3At(Point2{10, 20}, 30)
	if got, want := p, (Point3{10, 20, 30}); !got.Equals(want) {
		t.Errorf("Point3At = %v, want %v", got, want)
	}
	if got, want := p.XY(), (Point2{10, 20}); got != want {
		t.Errorf("XY = %v, want %v", got, want)
	}
}
