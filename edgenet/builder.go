package edgenet

import (
	"github.com/cross3d/prismedge/ix"
	"github.com/cross3d/prismedge/subdiv"
)

// build fills n.leftEdges and n.rightEdges by walking cells in
// depth-descending (finest first) order and computing each cell's owned
// edges, per spec.md §4.1.
func (n *Network) build() {
	layers := n.view.DepthOrdered()
	for d := len(layers) - 1; d >= 0; d-- {
		for _, idx := range layers[d] {
			n.buildCell(idx)
		}
	}
}

func (n *Network) buildCell(idx subdiv.CellIndex) {
	c := n.view.Cell(idx)

	if n.ownsLeft(idx, c) {
		p := initialPolyline(c, subdiv.Left)
		p = n.applyOscillation(idx, c, subdiv.Left, subdiv.Up, p)
		p = n.applyOscillation(idx, c, subdiv.Left, subdiv.Down, p)
		n.leftEdges[idx] = p
	}
	if n.ownsRight(idx, c) {
		p := initialPolyline(c, subdiv.Right)
		p = n.applyOscillation(idx, c, subdiv.Right, subdiv.Up, p)
		p = n.applyOscillation(idx, c, subdiv.Right, subdiv.Down, p)
		n.rightEdges[idx] = p
	}
}

// initialPolyline builds the straight two-point polyline for cell c's side
// s before any oscillation constraint is applied (spec.md §4.1).
func initialPolyline(c subdiv.Cell, s subdiv.Direction) Polyline {
	tri := c.Triangle()
	seg := tri.FromEdge
	if s == subdiv.Right {
		seg = tri.ToEdge
	}
	if !c.IsExpanding() {
		seg = seg.Swap()
	}

	zr := c.ZRange()
	return Polyline{
		ix.Point3At(seg.From, zr.Min),
		ix.Point3At(seg.To, zr.Max),
	}
}

// applyOscillation implements spec.md §4.1's per-side, per-direction
// oscillation constraint routine.
func (n *Network) applyOscillation(idx subdiv.CellIndex, c subdiv.Cell, s, v subdiv.Direction, p Polyline) Polyline {
	vNeighbors := c.Adjacent(v)
	if len(vNeighbors) == 0 {
		// Top or bottom layer: no constraint in this direction.
		return p
	}

	var nVIdx subdiv.CellIndex
	if s == subdiv.Left {
		nVIdx = vNeighbors[0]
	} else {
		nVIdx = vNeighbors[len(vNeighbors)-1]
	}
	nV := n.view.Cell(nVIdx)

	// N_VS is the lateral-S neighbor of N_V. N_V may have none (e.g. a
	// single column of stacked cells with no lateral neighbor at all); in
	// that case there is no coarser reference on that side, so it cannot
	// make the constraint fire or steer the reference choice — treat its
	// depth as below any real depth.
	nVSNeighbors := nV.Adjacent(s)
	nVSExists := len(nVSNeighbors) > 0
	var nVSIdx subdiv.CellIndex
	nVSDepth := -1
	if nVSExists {
		if v == subdiv.Up {
			nVSIdx = nVSNeighbors[0]
		} else {
			nVSIdx = nVSNeighbors[len(nVSNeighbors)-1]
		}
		nVSDepth = n.view.Cell(nVSIdx).Depth()
	}

	if c.Depth() >= maxInt(nV.Depth(), nVSDepth) {
		// C is at least as fine as both; its own endpoint is authoritative.
		return p
	}

	var reference Polyline
	if !nVSExists || nV.Depth() > nVSDepth || (s == subdiv.Right && nV.Depth() == nVSDepth) {
		reference = n.sideMapping(s)[nVIdx]
		dcheckf("OWN", reference != nil, "OWN violated: cell %d has no stored %s edge", nVIdx, s)
	} else {
		reference = n.sideMapping(s.Opposite())[nVSIdx]
		dcheckf("OWN", reference != nil, "OWN violated: cell %d has no stored %s edge", nVSIdx, s.Opposite())
	}

	// The destination is the reference edge's endpoint at C's boundary
	// with the neighbor: the reference's front point when V=Up (the
	// neighbor's z_min, shared with C's top) or back point when V=Down
	// (the neighbor's z_max, shared with C's bottom) — i.e. the end of
	// the reference opposite to v.
	destination := reference.endAt(v.Opposite())
	return adjustEdgeEnd(p, v, destination, n.opts)
}

func (n *Network) sideMapping(s subdiv.Direction) map[subdiv.CellIndex]Polyline {
	if s == subdiv.Left {
		return n.leftEdges
	}
	return n.rightEdges
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
