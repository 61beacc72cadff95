package render

import (
	"github.com/njvack/gazehound/dataset"
	"github.com/njvack/gazehound/logging"
)

// Surface is the drawing handle the renderer requires: clear plus a
// disc primitive, nothing else.
type Surface interface {
	Clear()
	DrawDisc(p dataset.Point, style GroupStyle, radius int)
}

// FrameSource supplies per-index point sets for batch rendering.
// playback.Session satisfies it.
type FrameSource interface {
	Length() int
	PointsAt(sampleIndex int) []dataset.ViewerPoint
}

// FrameRenderer draws point sets onto a surface using resolved group
// styles. It holds no playback state.
type FrameRenderer struct {
	surface Surface
	styles  StyleMap
	radius  int
}

// NewFrameRenderer binds a surface, a resolved style map and a disc
// radius.
func NewFrameRenderer(surface Surface, styles StyleMap, radius int) *FrameRenderer {
	return &FrameRenderer{surface: surface, styles: styles, radius: radius}
}

// SetStyles swaps the resolved style map, e.g. after a scheme change.
func (r *FrameRenderer) SetStyles(styles StyleMap) { r.styles = styles }

// DrawFrame clears the surface and draws one disc per present point.
// Every frame starts from a blank surface so no stale points linger.
func (r *FrameRenderer) DrawFrame(points []dataset.ViewerPoint) {
	r.surface.Clear()
	r.drawPoints(points)
}

// RenderAllFrames draws every sample index of the source onto one
// cleared surface: the overlay inspection mode. It bypasses the
// scheduler entirely and touches no playback state.
func (r *FrameRenderer) RenderAllFrames(src FrameSource) {
	r.surface.Clear()
	length := src.Length()
	for i := 0; i < length; i++ {
		r.drawPoints(src.PointsAt(i))
	}
}

func (r *FrameRenderer) drawPoints(points []dataset.ViewerPoint) {
	for _, vp := range points {
		st, ok := r.styles[vp.Viewer.Group]
		if !ok {
			// Styles are validated at scheme selection; anything
			// missing here is a dataset the validator let through.
			logging.Warnf("render: no style for group %q, skipping %s", vp.Viewer.Group, vp.Viewer.Name)
			continue
		}
		r.surface.DrawDisc(vp.Point, st, r.radius)
	}
}
