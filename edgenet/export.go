package edgenet

import (
	"io"
	"sort"

	jsoniter "github.com/json-iterator/go"

	"github.com/cross3d/prismedge/subdiv"
)

var exportJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// exportedPoint is the wire shape of one ix.Point3 in a dump.
type exportedPoint struct {
	X, Y, Z int64
}

// exportedEdge is one owner cell's polyline, keyed by cell index so a
// viewer can cross-reference it against the subdivision it came from.
type exportedEdge struct {
	Cell subdiv.CellIndex `json:"cell"`
	Z    []exportedPoint  `json:"polyline"`
}

type exportedNetwork struct {
	LeftEdges  []exportedEdge `json:"left_edges"`
	RightEdges []exportedEdge `json:"right_edges"`
}

// DumpJSON serializes the network's two edge mappings to w as JSON, for
// offline visualization or attaching to a bug report. This is read-only
// introspection: it never feeds back into construction, and the network
// carries no method to load a dump back in (spec.md §6.2 defines no
// on-disk format for this layer).
func (n *Network) DumpJSON(w io.Writer) error {
	dump := exportedNetwork{
		LeftEdges:  exportSide(n.leftEdges),
		RightEdges: exportSide(n.rightEdges),
	}
	return exportJSON.NewEncoder(w).Encode(dump)
}

func exportSide(mapping map[subdiv.CellIndex]Polyline) []exportedEdge {
	out := make([]exportedEdge, 0, len(mapping))
	for idx, p := range mapping {
		pts := make([]exportedPoint, len(p))
		for i, v := range p {
			pts[i] = exportedPoint{X: v.X, Y: v.Y, Z: v.Z}
		}
		out = append(out, exportedEdge{Cell: idx, Z: pts})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cell < out[j].Cell })
	return out
}
