package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njvack/gazehound/dataset"
)

// countingSurface records primitive calls instead of drawing.
type countingSurface struct {
	clears int
	discs  int
	last   dataset.Point
}

func (s *countingSurface) Clear() { s.clears++ }
func (s *countingSurface) DrawDisc(p dataset.Point, style GroupStyle, radius int) {
	s.discs++
	s.last = p
}

// gridSource serves one point per sample index.
type gridSource struct {
	length  int
	queried []int
}

func (g *gridSource) Length() int { return g.length }
func (g *gridSource) PointsAt(i int) []dataset.ViewerPoint {
	g.queried = append(g.queried, i)
	return []dataset.ViewerPoint{{
		Viewer: dataset.Viewer{Name: "v", Group: "a"},
		Point:  dataset.Point{X: float64(i), Y: float64(i), Valid: true},
	}}
}

func frameStyles() StyleMap {
	cs, _ := Scheme("classic")
	return cs.GroupStyles([]string{"a"})
}

func TestDrawFrameClearsFirst(t *testing.T) {
	surface := &countingSurface{}
	r := NewFrameRenderer(surface, frameStyles(), 1)

	pts := []dataset.ViewerPoint{
		{Viewer: dataset.Viewer{Name: "v1", Group: "a"}, Point: dataset.Point{X: 1, Y: 2, Valid: true}},
		{Viewer: dataset.Viewer{Name: "v2", Group: "a"}, Point: dataset.Point{X: 3, Y: 4, Valid: true}},
	}
	r.DrawFrame(pts)
	r.DrawFrame(pts)

	assert.Equal(t, 2, surface.clears)
	assert.Equal(t, 4, surface.discs)
}

func TestDrawFrameSkipsUnstyledGroups(t *testing.T) {
	surface := &countingSurface{}
	r := NewFrameRenderer(surface, frameStyles(), 1)

	r.DrawFrame([]dataset.ViewerPoint{
		{Viewer: dataset.Viewer{Name: "v1", Group: "ghost"}, Point: dataset.Point{X: 1, Y: 2, Valid: true}},
		{Viewer: dataset.Viewer{Name: "v2", Group: "a"}, Point: dataset.Point{X: 3, Y: 4, Valid: true}},
	})

	assert.Equal(t, 1, surface.discs)
}

func TestRenderAllFramesVisitsEveryIndexOnce(t *testing.T) {
	surface := &countingSurface{}
	r := NewFrameRenderer(surface, frameStyles(), 1)
	src := &gridSource{length: 17}

	r.RenderAllFrames(src)

	// one clear up front, then one draw per sample index, in order
	assert.Equal(t, 1, surface.clears)
	assert.Equal(t, 17, surface.discs)
	require.Len(t, src.queried, 17)
	for i, idx := range src.queried {
		assert.Equal(t, i, idx)
	}
}

func TestRenderAllFramesEmptySource(t *testing.T) {
	surface := &countingSurface{}
	r := NewFrameRenderer(surface, frameStyles(), 1)

	r.RenderAllFrames(&gridSource{length: 0})
	assert.Equal(t, 1, surface.clears)
	assert.Zero(t, surface.discs)
}

func TestRenderAllFramesLeavesPlaybackAlone(t *testing.T) {
	// the batch mode draws through the surface only; it has no handle
	// on playback state, and the source sees plain reads
	surface := &countingSurface{}
	r := NewFrameRenderer(surface, frameStyles(), 0)
	src := &gridSource{length: 3}

	r.RenderAllFrames(src)
	assert.Equal(t, float64(2), surface.last.X)
}
