package edgenet

import (
	"github.com/cross3d/prismedge/ix"
	"github.com/cross3d/prismedge/subdiv"
)

// resolveDiscontinuities is the second construction pass, spec.md §4.2:
// it fixes the Z-discontinuity that appears when two equal-depth upper (or
// lower) cells meet a coarser cell and would otherwise disagree about
// where their shared vertical edge meets that coarser cell's surface.
func (n *Network) resolveDiscontinuities() {
	layers := n.view.DepthOrdered()
	for d := 0; d < len(layers); d++ {
		for _, idx := range layers[d] {
			c := n.view.Cell(idx)
			n.resolveCell(idx, c, subdiv.Up)
			n.resolveCell(idx, c, subdiv.Down)
		}
	}
}

func (n *Network) resolveCell(idx subdiv.CellIndex, c subdiv.Cell, v subdiv.Direction) {
	neighbors := c.Adjacent(v)
	if len(neighbors) < 2 {
		return
	}

	leftEnd := n.getEdge(idx, c, subdiv.Left, v).endAt(v).XY()
	rightEnd := n.getEdge(idx, c, subdiv.Right, v).endAt(v).XY()
	l := ix.NewSegment2D(leftEnd, rightEnd)

	leftmostIdx := neighbors[0]
	rightmostIdx := neighbors[len(neighbors)-1]
	leftmost := n.view.Cell(leftmostIdx)
	rightmost := n.view.Cell(rightmostIdx)
	dcheckf("POLY", leftmost.Depth() == c.Depth()+1, "cell %d's leftmost %s neighbor is not one depth finer", idx, v)
	dcheckf("POLY", rightmost.Depth() == c.Depth()+1, "cell %d's rightmost %s neighbor is not one depth finer", idx, v)

	trouble := leftmost.Triangle().ToEdge

	cross, ok := trouble.IntersectLine(l)
	dcheckf("POLY", ok, "cell %d: trouble edge parallel to discontinuity line", leftmostIdx)

	z := leftmost.ZRange().Min
	if v == subdiv.Down {
		z = leftmost.ZRange().Max
	}
	destination := ix.Point3At(cross, z)

	p := n.mustEdge(n.rightEdges, leftmostIdx, subdiv.Right)
	n.rightEdges[leftmostIdx] = adjustEdgeEnd(p, v.Opposite(), destination, n.opts)
}
