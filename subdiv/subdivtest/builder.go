// Package subdivtest provides a minimal in-memory subdiv.View used only by
// tests to realize small synthetic subdivisions (the seed scenarios of
// spec.md §8). It never computes geometry and never balances a tree; it
// only stores whatever the caller supplies, verbatim, the way
// katalvlaran/lvlath's tests build a small graph inline with a handful of
// AddEdge calls instead of loading a fixture from disk.
package subdivtest

import (
	"sort"

	"github.com/cross3d/prismedge/ix"
	"github.com/cross3d/prismedge/subdiv"
)

type cellRecord struct {
	triangle    subdiv.Triangle
	zRange      ix.ZRange
	depth       int
	isExpanding bool
	adjacent    [4][]subdiv.CellIndex
}

func (c *cellRecord) Triangle() subdiv.Triangle { return c.triangle }
func (c *cellRecord) ZRange() ix.ZRange         { return c.zRange }
func (c *cellRecord) Depth() int                { return c.depth }
func (c *cellRecord) IsExpanding() bool         { return c.isExpanding }
func (c *cellRecord) Adjacent(d subdiv.Direction) []subdiv.CellIndex {
	return c.adjacent[d]
}

// Builder accumulates cells and their neighbor lists, then produces an
// immutable subdiv.View.
type Builder struct {
	cells []*cellRecord
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// AddCell appends a new cell and returns its index.
func (b *Builder) AddCell(triangle subdiv.Triangle, zRange ix.ZRange, depth int, isExpanding bool) subdiv.CellIndex {
	b.cells = append(b.cells, &cellRecord{
		triangle:    triangle,
		zRange:      zRange,
		depth:       depth,
		isExpanding: isExpanding,
	})
	return subdiv.CellIndex(len(b.cells) - 1)
}

// SetAdjacent assigns the ordered neighbor list of idx in direction d.
func (b *Builder) SetAdjacent(idx subdiv.CellIndex, d subdiv.Direction, neighbors ...subdiv.CellIndex) {
	b.cells[idx].adjacent[d] = neighbors
}

// view is the built, read-only subdiv.View.
type view struct {
	cells  []*cellRecord
	layers [][]subdiv.CellIndex
}

func (v *view) DepthOrdered() [][]subdiv.CellIndex { return v.layers }
func (v *view) Cell(index subdiv.CellIndex) subdiv.Cell { return v.cells[index] }

// Build freezes the accumulated cells into a subdiv.View, grouping them
// into depth layers (coarsest first).
func (b *Builder) Build() subdiv.View {
	byDepth := map[int][]subdiv.CellIndex{}
	maxDepth := -1
	for i, c := range b.cells {
		byDepth[c.depth] = append(byDepth[c.depth], subdiv.CellIndex(i))
		if c.depth > maxDepth {
			maxDepth = c.depth
		}
	}

	layers := make([][]subdiv.CellIndex, maxDepth+1)
	for d := 0; d <= maxDepth; d++ {
		layer := byDepth[d]
		sort.Slice(layer, func(i, j int) bool { return layer[i] < layer[j] })
		layers[d] = layer
	}

	return &view{cells: b.cells, layers: layers}
}
