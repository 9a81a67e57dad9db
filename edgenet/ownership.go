package edgenet

import "github.com/cross3d/prismedge/subdiv"

// ownsLeft reports whether cell idx owns its LEFT edge, per invariant OWN:
// a cell owns its LEFT edge iff it is strictly finer than its left
// neighbor. A cell with no left neighbor (a domain boundary) trivially
// owns its own edge — there is no other candidate owner.
func (n *Network) ownsLeft(idx subdiv.CellIndex, c subdiv.Cell) bool {
	neighbors := c.Adjacent(subdiv.Left)
	if len(neighbors) == 0 {
		return true
	}
	left := n.view.Cell(neighbors[0])
	return c.Depth() > left.Depth()
}

// ownsRight reports whether cell idx owns its RIGHT edge, per invariant
// OWN: a cell owns its RIGHT edge iff it is at least as fine as its right
// neighbor. The >= (rather than >) is what breaks a tie between two
// equal-depth cells in favor of the left one.
func (n *Network) ownsRight(idx subdiv.CellIndex, c subdiv.Cell) bool {
	neighbors := c.Adjacent(subdiv.Right)
	if len(neighbors) == 0 {
		return true
	}
	right := n.view.Cell(neighbors[0])
	return c.Depth() >= right.Depth()
}

// getEdge returns the polyline that governs cell c's side s at its v-end,
// per spec.md §4.2's "Get Edge": the edge might be owned by c itself or by
// c's lateral neighbor across side s, depending on OWN.
func (n *Network) getEdge(cIdx subdiv.CellIndex, c subdiv.Cell, s, v subdiv.Direction) Polyline {
	neighbors := c.Adjacent(s)
	if len(neighbors) == 0 {
		// Domain boundary: no lateral neighbor, so c trivially owns it.
		if s == subdiv.Left {
			return n.mustEdge(n.leftEdges, cIdx, subdiv.Left)
		}
		return n.mustEdge(n.rightEdges, cIdx, subdiv.Right)
	}

	var neighborIdx subdiv.CellIndex
	if v == subdiv.Up {
		neighborIdx = neighbors[len(neighbors)-1]
	} else {
		neighborIdx = neighbors[0]
	}
	neighbor := n.view.Cell(neighborIdx)

	neighborOwns := neighbor.Depth() > c.Depth() || (s == subdiv.Left && neighbor.Depth() == c.Depth())
	if neighborOwns {
		if s == subdiv.Left {
			return n.mustEdge(n.rightEdges, neighborIdx, subdiv.Right)
		}
		return n.mustEdge(n.leftEdges, neighborIdx, subdiv.Left)
	}
	if s == subdiv.Left {
		return n.mustEdge(n.leftEdges, cIdx, subdiv.Left)
	}
	return n.mustEdge(n.rightEdges, cIdx, subdiv.Right)
}

// mustEdge looks up owner's polyline in mapping. Under -tags debug it
// panics (invariant OWN violated) if the entry is absent — this can only
// happen if the subdivision view is malformed; in default builds the check
// is compiled out and a missing entry yields a nil Polyline.
func (n *Network) mustEdge(mapping map[subdiv.CellIndex]Polyline, owner subdiv.CellIndex, side subdiv.Direction) Polyline {
	p, ok := mapping[owner]
	dcheckf("OWN", ok, "OWN violated: cell %d has no stored %s edge", owner, side)
	return p
}
