package editor

import (
	"github.com/roughcut/roughcut/backend-go/internal/geom"
	"github.com/roughcut/roughcut/backend-go/internal/viewport"
)

// Handle identifies one of the eight resize handles on the selection
// overlay: four corners plus four edge midpoints.
type Handle int

const (
	HandleNW Handle = iota
	HandleN
	HandleNE
	HandleE
	HandleSE
	HandleS
	HandleSW
	HandleW
)

const (
	// minShapeSize floors both axes during a resize so a shape can never
	// collapse or invert through its opposite edge.
	minShapeSize = 10.0
	// rotateSensitivity maps horizontal pointer displacement to radians.
	rotateSensitivity = 0.01
)

// resizeDrag captures the state of an in-progress handle drag. The
// candidate bounds are always recomputed from the originally captured
// bounds plus the total cursor delta, never incrementally.
type resizeDrag struct {
	handle         Handle
	origBounds     geom.Rect
	startX, startY float64 // document space
}

// rotateDrag captures the state of an in-progress rotate-handle drag.
type rotateDrag struct {
	startScreenX float64
	origRotation float64
}

func (h Handle) west() bool  { return h == HandleNW || h == HandleW || h == HandleSW }
func (h Handle) east() bool  { return h == HandleNE || h == HandleE || h == HandleSE }
func (h Handle) north() bool { return h == HandleNW || h == HandleN || h == HandleNE }
func (h Handle) south() bool { return h == HandleSW || h == HandleS || h == HandleSE }

// StartResize begins a resize drag on the selected shape from the given
// handle, capturing the shape's bounds at the moment the drag starts.
func (s *Session) StartResize(handle Handle, x, y float64) {
	state := s.hist.Present()
	if state.SelectedShapeID == nil {
		return
	}
	i := state.ShapeIndex(*state.SelectedShapeID)
	if i < 0 {
		return
	}
	docX, docY := viewport.ToDocument(state.Viewport, x, y)
	s.resize = &resizeDrag{
		handle:     handle,
		origBounds: geom.Bounds(state.Shapes[i]),
		startX:     docX,
		startY:     docY,
	}
}

// ResizeMove applies one resize sample: the candidate bounds come from the
// original bounds plus the cursor delta on the handle's own axes, floored
// at the minimum size. When a west or north handle hits the floor, the
// opposite edge stays fixed so the shape doesn't slide.
func (s *Session) ResizeMove(x, y float64) {
	if s.resize == nil {
		return
	}
	state := s.hist.Present()
	if state.SelectedShapeID == nil {
		return
	}
	i := state.ShapeIndex(*state.SelectedShapeID)
	if i < 0 {
		return
	}

	docX, docY := viewport.ToDocument(state.Viewport, x, y)
	dx := docX - s.resize.startX
	dy := docY - s.resize.startY

	bounds := candidateBounds(s.resize.handle, s.resize.origBounds, dx, dy)
	state.Shapes[i] = geom.Resize(state.Shapes[i], bounds)
	s.replace(state)
}

// EndResize finishes the drag. Like shape dragging, resizing applies via
// replace on every sample and never commits on release.
func (s *Session) EndResize() {
	s.resize = nil
}

// candidateBounds computes the resized box for a handle and cursor delta.
func candidateBounds(handle Handle, orig geom.Rect, dx, dy float64) geom.Rect {
	out := orig

	switch {
	case handle.west():
		out.X = orig.X + dx
		out.Width = orig.Width - dx
		if out.Width < minShapeSize {
			// Hold the east edge fixed rather than the dragged one.
			out.X = orig.X + orig.Width - minShapeSize
			out.Width = minShapeSize
		}
	case handle.east():
		out.Width = orig.Width + dx
		if out.Width < minShapeSize {
			out.Width = minShapeSize
		}
	}

	switch {
	case handle.north():
		out.Y = orig.Y + dy
		out.Height = orig.Height - dy
		if out.Height < minShapeSize {
			out.Y = orig.Y + orig.Height - minShapeSize
			out.Height = minShapeSize
		}
	case handle.south():
		out.Height = orig.Height + dy
		if out.Height < minShapeSize {
			out.Height = minShapeSize
		}
	}

	return out
}

// StartRotate begins a rotate-handle drag on the selected shape.
func (s *Session) StartRotate(x, _ float64) {
	state := s.hist.Present()
	if state.SelectedShapeID == nil {
		return
	}
	i := state.ShapeIndex(*state.SelectedShapeID)
	if i < 0 {
		return
	}
	s.rotate = &rotateDrag{
		startScreenX: x,
		origRotation: state.Shapes[i].Rotation,
	}
}

// RotateMove maps horizontal screen displacement to radians at a fixed
// sensitivity. Rotation is about the shape's bounding-box center, which is
// how the hit test interprets it; no angle normalization happens here.
func (s *Session) RotateMove(x, _ float64) {
	if s.rotate == nil {
		return
	}
	state := s.hist.Present()
	if state.SelectedShapeID == nil {
		return
	}
	i := state.ShapeIndex(*state.SelectedShapeID)
	if i < 0 {
		return
	}

	radians := s.rotate.origRotation + (x-s.rotate.startScreenX)*rotateSensitivity
	state.Shapes[i] = geom.SetRotation(state.Shapes[i], radians)
	s.replace(state)
}

// EndRotate finishes the drag without committing, matching the move and
// resize gestures.
func (s *Session) EndRotate() {
	s.rotate = nil
}
