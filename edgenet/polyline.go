package edgenet

import (
	"github.com/cross3d/prismedge/ix"
	"github.com/cross3d/prismedge/subdiv"
)

// Polyline is an ordered sequence of ≥2 points, strictly monotonically
// increasing in Z, representing one owned edge of a prism cell (spec.md
// §3's "Edge polyline"). The first point's Z equals the owner's z_min; the
// last point's Z equals z_max.
type Polyline []ix.Point3

// First returns the polyline's first point.
func (p Polyline) First() ix.Point3 { return p[0] }

// Last returns the polyline's last point.
func (p Polyline) Last() ix.Point3 { return p[len(p)-1] }

// endAt returns the point at the v-end of the polyline: Last for
// subdiv.Up, First for subdiv.Down.
func (p Polyline) endAt(v subdiv.Direction) ix.Point3 {
	if v == subdiv.Up {
		return p.Last()
	}
	return p.First()
}
