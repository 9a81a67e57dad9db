package edgenet

import (
	"github.com/cross3d/prismedge/ix"
	"github.com/cross3d/prismedge/subdiv"
)

// GetCellEdgeLocation returns the 2D point where the shared LEFT/RIGHT
// edge between before (the left cell) and after (the right cell) crosses
// the horizontal plane at height z. Precondition: z lies within the
// owning polyline's Z range; violating it is a programming error
// (spec.md §7).
func (n *Network) GetCellEdgeLocation(before, after subdiv.CellIndex, z int64) ix.Point2 {
	beforeCell := n.view.Cell(before)
	afterCell := n.view.Cell(after)

	var p Polyline
	if afterCell.Depth() > beforeCell.Depth() {
		p = n.mustEdge(n.leftEdges, after, subdiv.Left)
	} else {
		p = n.mustEdge(n.rightEdges, before, subdiv.Right)
	}

	dcheckf("Z_RANGE", p.First().Z <= z && z <= p.Last().Z, "z %d outside polyline range [%d, %d]", z, p.First().Z, p.Last().Z)

	for i := 0; i+1 < len(p); i++ {
		a, b := p[i], p[i+1]
		if z <= b.Z {
			dcheckf("POLY", b.Z != a.Z, "polyline has two samples at equal Z=%d", a.Z)
			t := float64(z-a.Z) / float64(b.Z-a.Z)
			x := a.X + int64(float64(b.X-a.X)*t)
			y := a.Y + int64(float64(b.Y-a.Y)*t)
			return ix.Point2{X: x, Y: y}
		}
	}

	// Unreachable given the precondition above; z == p.Last().Z falls
	// into the final iteration's z <= b.Z branch.
	return p.Last().XY()
}
