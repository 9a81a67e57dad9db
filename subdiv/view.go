// Package subdiv declares the read-only contract the edge network builds
// on top of: a view over an already-completed 3D subdivision tree whose
// leaves are vertical triangular prism cells. The subdivision tree itself
// — how it is built, balanced, or mutated — is out of scope here; this
// package only names the accessors the edge network needs.
package subdiv

import "github.com/cross3d/prismedge/ix"

// CellIndex addresses a leaf cell. Indices are stable for the lifetime of
// a View; the edge network keys its mappings on CellIndex rather than on
// pointers so they stay moveable and hash-safe (spec.md §9).
type CellIndex int

// Triangle is a leaf cell's 2D footprint: two named, oriented side edges.
// The third (top/bottom) side of the triangle is not named because the
// edge network never needs it directly.
type Triangle struct {
	// FromEdge is the LEFT side edge.
	FromEdge ix.Segment2D
	// ToEdge is the RIGHT side edge.
	ToEdge ix.Segment2D
}

// Cell is a leaf of the subdivision: a triangular prism with a Z-range.
type Cell interface {
	// Triangle returns the cell's XY footprint.
	Triangle() Triangle
	// ZRange returns the cell's closed [z_min, z_max] interval.
	ZRange() ix.ZRange
	// Depth returns the cell's subdivision depth; larger is finer.
	Depth() int
	// IsExpanding reports whether the prism's oscillation climbs the other
	// diagonal, flipping which triangle endpoint sits at z_min vs z_max.
	IsExpanding() bool
	// Adjacent returns the ordered neighbor list in direction d. For
	// lateral directions the order runs along the shared edge; for
	// vertical directions it runs left-to-right across the shared
	// horizontal surface.
	Adjacent(d Direction) []CellIndex
}

// View is a read-only accessor over a completed subdivision tree.
type View interface {
	// DepthOrdered returns layers of leaf cell indices, where layer k holds
	// every leaf cell at depth k. Index 0 is the coarsest layer.
	DepthOrdered() [][]CellIndex
	// Cell returns the cell at index. The reference is stable for as long
	// as the View is not mutated.
	Cell(index CellIndex) Cell
}
