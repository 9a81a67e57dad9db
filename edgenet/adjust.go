package edgenet

import (
	"math"

	"github.com/cross3d/prismedge/ix"
	"github.com/cross3d/prismedge/subdiv"
)

// adjustEdgeEnd pulls polyline p's v-end to destination, inserting a bend
// point when the move is long enough that jumping straight to destination
// would leave the adjacent segment too shallow. This is spec.md §4.3's
// "Adjust Edge End", shared by both the oscillation constraint (builder.go)
// and the discontinuity resolver (resolver.go).
func adjustEdgeEnd(p Polyline, v subdiv.Direction, destination ix.Point3, opts Options) Polyline {
	up := v == subdiv.Up

	var tIdx, aIdx int
	if up {
		tIdx, aIdx = len(p)-1, len(p)-2
	} else {
		tIdx, aIdx = 0, 1
	}

	t := p[tIdx]
	a := p[aIdx]

	var result Polyline
	switch {
	case t.Equals(destination):
		result = p

	case a.Sub(t).Norm2() == 0:
		// The adjacent segment is degenerate; nothing to halve a move
		// against, so move the endpoint directly.
		p[tIdx] = destination
		result = p

	default:
		m := math.Sqrt(float64(t.XY().DistSq(destination.XY())))
		n := math.Sqrt(float64(a.Sub(t).Norm2()))
		dir := a.Sub(t)
		scale := (m / 2) / n
		bend := ix.Point3{
			X: t.X + int64(math.Round(float64(dir.X)*scale)),
			Y: t.Y + int64(math.Round(float64(dir.Y)*scale)),
			Z: t.Z + int64(math.Round(float64(dir.Z)*scale)),
		}

		if bend.Sub(a).Norm2() > opts.bendSuppressionSq && bend.Sub(destination).Norm2() > opts.bendSuppressionSq {
			if up {
				result = append(p[:tIdx], bend, destination)
			} else {
				out := make(Polyline, 0, len(p)+1)
				out = append(out, destination, bend)
				result = append(out, p[1:]...)
			}
		} else {
			p[tIdx] = destination
			result = p
		}
	}

	checkInclination(result, opts)
	return result
}

// checkInclination asserts invariant INCLINE: every consecutive pair in p
// keeps more than opts.inclinationDegrees off horizontal. The
// bend-suppression threshold above is what's supposed to keep this true in
// practice; this is the debug-only check that verifies it actually did.
func checkInclination(p Polyline, opts Options) {
	for i := 0; i+1 < len(p); i++ {
		from, to := p[i], p[i+1]
		dxy := math.Sqrt(float64(from.XY().DistSq(to.XY())))
		angle := math.Atan2(float64(to.Z-from.Z), dxy) * 180 / math.Pi
		dcheckf("INCLINE", angle > opts.inclinationDegrees,
			"segment %d->%d inclination %.2f° does not clear the %.2f° minimum", i, i+1, angle, opts.inclinationDegrees)
	}
}
