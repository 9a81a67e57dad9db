package ix

import "testing"

func TestZRangeBasics(t *testing.T) {
	z := NewZRange(1000, 5000)
	if got, want := z.Length(), int64(4000); got != want {
		t.Errorf("Length = %d, want %d", got, want)
	}
	if !z.Contains(1000) || !z.Contains(5000) || !z.Contains(3000) {
		t.Errorf("Contains should hold at boundaries and interior")
	}
	if z.Contains(999) || z.Contains(5001) {
		t.Errorf("Contains should not hold outside the range")
	}
	if got, want := z.Center(), int64(3000); got != want {
		t.Errorf("Center = %d, want %d", got, want)
	}
}
