package edgenet_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/cross3d/prismedge/edgenet"
	"github.com/cross3d/prismedge/ix"
	"github.com/cross3d/prismedge/subdiv"
	"github.com/cross3d/prismedge/subdiv/subdivtest"
)

// NetworkSuite exercises Construct end-to-end against small synthetic
// subdivisions, the way the source repo's flow package drives its
// algorithms against small synthetic graphs.
type NetworkSuite struct {
	suite.Suite
}

func seg(x0, y0, x1, y1 int64) ix.Segment2D {
	return ix.NewSegment2D(ix.Point2{X: x0, Y: y0}, ix.Point2{X: x1, Y: y1})
}

// TestConstructRejectsNilView verifies the documented panic on a nil view.
func (s *NetworkSuite) TestConstructRejectsNilView() {
	s.Require().Panics(func() { edgenet.Construct(nil) })
}

// TestConstructIsDeterministic verifies that building the same view twice
// yields identical edge ownership and polyline content.
func (s *NetworkSuite) TestConstructIsDeterministic() {
	b := subdivtest.NewBuilder()
	b.AddCell(subdiv.Triangle{FromEdge: seg(0, 0, 10, 0), ToEdge: seg(20, 0, 30, 0)}, ix.NewZRange(0, 100), 0, true)
	view := b.Build()

	first := edgenet.Construct(view)
	second := edgenet.Construct(view)

	var firstBuf, secondBuf bytes.Buffer
	require.NoError(s.T(), first.DumpJSON(&firstBuf))
	require.NoError(s.T(), second.DumpJSON(&secondBuf))
	require.Equal(s.T(), firstBuf.String(), secondBuf.String())
}

// TestOptionsOverrideThresholds verifies that WithBendSuppressionSq changes
// whether a marginal move inserts a bend.
func (s *NetworkSuite) TestOptionsOverrideThresholds() {
	b := subdivtest.NewBuilder()
	coarse := b.AddCell(subdiv.Triangle{FromEdge: seg(0, 0, 5, 0), ToEdge: seg(100, 0, 105, 0)}, ix.NewZRange(0, 2000), 0, true)
	fine := b.AddCell(subdiv.Triangle{FromEdge: seg(2, 0, 7, 0), ToEdge: seg(120, 0, 125, 0)}, ix.NewZRange(2000, 3000), 1, true)
	b.SetAdjacent(coarse, subdiv.Up, fine)
	b.SetAdjacent(fine, subdiv.Down, coarse)
	view := b.Build()

	lenient := edgenet.Construct(view, edgenet.WithBendSuppressionSq(1))
	strict := edgenet.Construct(view, edgenet.WithBendSuppressionSq(1<<30))

	var lenientBuf, strictBuf bytes.Buffer
	require.NoError(s.T(), lenient.DumpJSON(&lenientBuf))
	require.NoError(s.T(), strict.DumpJSON(&strictBuf))
	require.NotEqual(s.T(), lenientBuf.String(), strictBuf.String(), "bend-suppression threshold should change the output")
}

// TestDumpJSONRoundTripsShape verifies the exported dump is parseable JSON
// naming every owned cell exactly once per side.
func (s *NetworkSuite) TestDumpJSONRoundTripsShape() {
	b := subdivtest.NewBuilder()
	b.AddCell(subdiv.Triangle{FromEdge: seg(0, 0, 10, 0), ToEdge: seg(20, 0, 30, 0)}, ix.NewZRange(0, 100), 0, true)
	view := b.Build()
	net := edgenet.Construct(view)

	var buf bytes.Buffer
	require.NoError(s.T(), net.DumpJSON(&buf))
	require.Contains(s.T(), buf.String(), `"left_edges"`)
	require.Contains(s.T(), buf.String(), `"right_edges"`)

	var parsed struct {
		LeftEdges []struct {
			Cell subdiv.CellIndex `json:"cell"`
		} `json:"left_edges"`
		RightEdges []struct {
			Cell subdiv.CellIndex `json:"cell"`
		} `json:"right_edges"`
	}
	require.NoError(s.T(), json.Unmarshal(buf.Bytes(), &parsed))
	require.Len(s.T(), parsed.LeftEdges, 1)
	require.Equal(s.T(), subdiv.CellIndex(0), parsed.LeftEdges[0].Cell)
	require.Len(s.T(), parsed.RightEdges, 1)
	require.Equal(s.T(), subdiv.CellIndex(0), parsed.RightEdges[0].Cell)
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}
