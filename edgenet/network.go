// Package edgenet computes, for every leaf cell of a completed 3D prism
// subdivision, the exact 3D polyline shape of its LEFT and RIGHT vertical
// side edges: the Cross3D Prism Edge Network. See spec.md for the full
// specification this package implements.
package edgenet

import "github.com/cross3d/prismedge/subdiv"

// Network holds the two edge-ownership mappings produced by Construct. It
// is built once and is immutable thereafter: every exported method is a
// read-only query, safe to call concurrently from any number of
// goroutines without additional synchronization (spec.md §5).
type Network struct {
	view subdiv.View
	opts Options

	leftEdges  map[subdiv.CellIndex]Polyline
	rightEdges map[subdiv.CellIndex]Polyline
}

// Construct eagerly builds both edge mappings over view: the Edge Builder
// pass (spec.md §4.1) followed by the Discontinuity Resolver pass
// (spec.md §4.2). There is no lazy evaluation; by the time Construct
// returns, every owned edge is final.
func Construct(view subdiv.View, opts ...Option) *Network {
	if view == nil {
		panic("edgenet: Construct called with a nil subdiv.View")
	}

	n := &Network{
		view:       view,
		opts:       newOptions(opts...),
		leftEdges:  make(map[subdiv.CellIndex]Polyline),
		rightEdges: make(map[subdiv.CellIndex]Polyline),
	}

	n.build()
	n.resolveDiscontinuities()

	return n
}
