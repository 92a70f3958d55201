package editor

import (
	"math"
	"strings"

	"github.com/roughcut/roughcut/backend-go/internal/document"
	"github.com/roughcut/roughcut/backend-go/internal/geom"
	"github.com/roughcut/roughcut/backend-go/internal/history"
	"github.com/roughcut/roughcut/backend-go/internal/typeid"
	"github.com/roughcut/roughcut/backend-go/internal/viewport"
)

// gestureState is the single active interaction mode. Exactly one state is
// active at a time; there are no independent is-drawing/is-panning flags to
// fall out of sync.
type gestureState int

const (
	gestureIdle gestureState = iota
	gestureDrawing
	gestureDraggingShape
	gesturePanning
	gesturePinchZooming
	gestureEditingText
)

const (
	// wheelZoomStep is the fixed zoom increment per wheel notch.
	wheelZoomStep = 0.1
	// pinchZoomFactor converts inter-pointer distance change to zoom delta.
	pinchZoomFactor = 0.01
	// pinchZoomThreshold suppresses zoom deltas smaller than this.
	pinchZoomThreshold = 0.01
	// pinchPanThreshold is the screen-space midpoint displacement below
	// which a pinch sample does not pan (hysteresis against jitter).
	pinchPanThreshold = 2.0
	// duplicateOffset displaces a duplicated shape in document space.
	duplicateOffset = 20.0
	// textWidthFactor approximates glyph advance as a fraction of font size.
	textWidthFactor = 0.6
)

// Session is the interaction state machine: it consumes raw pointer, touch,
// wheel and keyboard events and turns them into history-tracked snapshot
// mutations. All event methods run synchronously on the caller's turn;
// there is no internal concurrency.
type Session struct {
	hist    *history.History
	gesture gestureState

	// draft is the shape being stroked out while drawing. It lives outside
	// the committed document until pointer-up.
	draft *document.Shape

	// drawAnchor is the pointer-down point in document space; box shapes
	// recompute their extent from here on every move sample.
	drawAnchorX, drawAnchorY float64

	// dragLast is the previous drag sample in document space. Moves apply
	// the delta since the last sample, not since the gesture start, so
	// rounding never compounds.
	dragLastX, dragLastY float64

	// panLast is the previous pan sample in screen space.
	panLastX, panLastY float64

	// pinch bookkeeping, updated every touch-move sample.
	pinchDistance float64
	pinchMidX     float64
	pinchMidY     float64

	// textAnchor is the pending text-entry point; no shape exists until
	// the text is confirmed.
	textAnchor *document.Point

	resize *resizeDrag
	rotate *rotateDrag

	// onChange observes every new snapshot (commit and replace alike);
	// used for live sync and debounced persistence.
	onChange func(document.CanvasState)
}

// NewSession creates a session over a fresh empty canvas.
func NewSession() *Session {
	return NewSessionFrom(document.NewCanvasState())
}

// NewSessionFrom creates a session over an existing snapshot.
func NewSessionFrom(state document.CanvasState) *Session {
	return &Session{hist: history.New(state)}
}

// SetOnChange registers an observer for the snapshot stream.
func (s *Session) SetOnChange(fn func(document.CanvasState)) {
	s.onChange = fn
}

// State returns the current committed snapshot.
func (s *Session) State() document.CanvasState {
	return s.hist.Present()
}

// Shapes returns the shape list a renderer should draw: the committed
// shapes plus the in-progress draft, if any. The list is in insertion
// order; renderers wanting z-order-correct painting sort by zIndex.
func (s *Session) Shapes() []document.Shape {
	state := s.hist.Present()
	if s.draft == nil {
		return state.Shapes
	}
	return append(state.Shapes, s.draft.Clone())
}

// CanUndo reports whether an undo step exists.
func (s *Session) CanUndo() bool { return s.hist.CanUndo() }

// CanRedo reports whether a redo step exists.
func (s *Session) CanRedo() bool { return s.hist.CanRedo() }

// Undo steps the document back one commit. Exhausted history is a no-op.
func (s *Session) Undo() {
	s.notify(s.hist.Undo())
}

// Redo steps the document forward one commit.
func (s *Session) Redo() {
	s.notify(s.hist.Redo())
}

// Import replaces the document with a deserialized snapshot. A missing
// viewport key is backfilled with the default; invalid JSON fails the
// import and leaves the document untouched.
func (s *Session) Import(data []byte) error {
	state, err := document.Parse(data)
	if err != nil {
		return err
	}
	s.commit(state)
	return nil
}

// Export serializes the current snapshot.
func (s *Session) Export() ([]byte, error) {
	return document.Serialize(s.hist.Present())
}

// --- Pointer events (screen-space coordinates) ---

// PointerDown begins a gesture. secondary marks the middle-button or
// modifier-click pan gesture, which pans regardless of the active tool.
func (s *Session) PointerDown(x, y float64, secondary bool) {
	state := s.hist.Present()

	if secondary {
		s.gesture = gesturePanning
		s.panLastX, s.panLastY = x, y
		return
	}

	docX, docY := viewport.ToDocument(state.Viewport, x, y)

	switch {
	case state.CurrentTool == document.ToolSelect:
		hit, ok := geom.PickTopmost(docX, docY, state.Shapes)
		if ok {
			selectShape(&state, hit.ID)
			s.replace(state)
			s.gesture = gestureDraggingShape
			s.dragLastX, s.dragLastY = docX, docY
		} else {
			clearSelection(&state)
			s.replace(state)
			s.gesture = gesturePanning
			s.panLastX, s.panLastY = x, y
		}

	case state.CurrentTool.IsDrawing():
		s.draft = s.newDraft(state, docX, docY)
		s.drawAnchorX, s.drawAnchorY = docX, docY
		s.gesture = gestureDrawing

	case state.CurrentTool == document.ToolText:
		s.textAnchor = &document.Point{X: docX, Y: docY}
		s.gesture = gestureEditingText
	}
}

// PointerMove advances the active gesture by one sample.
func (s *Session) PointerMove(x, y float64) {
	switch s.gesture {
	case gestureDrawing:
		s.extendDraft(x, y)

	case gestureDraggingShape:
		state := s.hist.Present()
		docX, docY := viewport.ToDocument(state.Viewport, x, y)
		if state.SelectedShapeID != nil {
			if i := state.ShapeIndex(*state.SelectedShapeID); i >= 0 {
				state.Shapes[i] = geom.Translate(state.Shapes[i], docX-s.dragLastX, docY-s.dragLastY)
				s.replace(state)
			}
		}
		s.dragLastX, s.dragLastY = docX, docY

	case gesturePanning:
		state := s.hist.Present()
		state.Viewport = viewport.Pan(state.Viewport, x-s.panLastX, y-s.panLastY)
		s.replace(state)
		s.panLastX, s.panLastY = x, y

	case gestureIdle, gesturePinchZooming, gestureEditingText:
	}
}

// PointerUp finishes the active gesture. Only a completed drawing commits
// a history entry; drags and pans were applied sample by sample via
// replace, so releasing the pointer just clears the gesture bookkeeping.
func (s *Session) PointerUp() {
	if s.gesture == gestureDrawing && s.draft != nil {
		state := s.hist.Present()
		shape := s.draft.Clone()
		if shape.Type == document.ShapePen {
			b := geom.Bounds(shape)
			shape.X, shape.Y, shape.Width, shape.Height = b.X, b.Y, b.Width, b.Height
		}
		state.Shapes = append(state.Shapes, shape)
		s.commit(state)
	}
	s.draft = nil
	if s.gesture != gestureEditingText {
		s.gesture = gestureIdle
	}
}

// newDraft seeds a shape at the pointer-down point with the current style
// defaults: a single-point pen path, a zero-length line, or a zero-size box.
func (s *Session) newDraft(state document.CanvasState, docX, docY float64) *document.Shape {
	shape := document.Shape{
		ID:          typeid.NewShapeID(),
		Type:        document.ShapeType(state.CurrentTool),
		X:           docX,
		Y:           docY,
		StrokeColor: state.StrokeColor,
		FillColor:   state.FillColor,
		StrokeWidth: state.StrokeWidth,
		Roughness:   state.Roughness,
	}
	switch state.CurrentTool {
	case document.ToolPen:
		shape.Points = []document.Point{{X: docX, Y: docY}}
	case document.ToolLine, document.ToolArrow:
		shape.EndX, shape.EndY = docX, docY
	}
	return &shape
}

// extendDraft stretches the held shape to the current pointer sample.
// Box extents may go negative while dragging up or left; bounds and
// rendering normalize them.
func (s *Session) extendDraft(x, y float64) {
	if s.draft == nil {
		return
	}
	state := s.hist.Present()
	docX, docY := viewport.ToDocument(state.Viewport, x, y)

	switch s.draft.Type {
	case document.ShapePen:
		s.draft.Points = append(s.draft.Points, document.Point{X: docX, Y: docY})
	case document.ShapeLine, document.ShapeArrow:
		s.draft.EndX, s.draft.EndY = docX, docY
	case document.ShapeRectangle, document.ShapeCircle:
		s.draft.Width = docX - s.drawAnchorX
		s.draft.Height = docY - s.drawAnchorY
	case document.ShapeText:
	}
}

// --- Wheel ---

// Wheel handles a scroll event. With the precise-zoom modifier held, the
// delta sign maps to a fixed zoom step anchored at the pointer; a zero
// vertical delta has no direction and leaves the viewport alone. Without
// the modifier the canvas pans by the negated scroll delta.
func (s *Session) Wheel(deltaX, deltaY, x, y float64, zoomModifier bool) {
	state := s.hist.Present()
	if zoomModifier {
		var step float64
		switch {
		case deltaY < 0:
			step = wheelZoomStep
		case deltaY > 0:
			step = -wheelZoomStep
		default:
			return
		}
		state.Viewport = viewport.ZoomBy(state.Viewport, step, x, y)
	} else {
		state.Viewport = viewport.Pan(state.Viewport, -deltaX, -deltaY)
	}
	s.replace(state)
}

// --- Touch / pinch ---

// TouchStart begins a two-pointer pinch gesture. Single-pointer touches
// are delivered through the pointer events instead.
func (s *Session) TouchStart(x1, y1, x2, y2 float64) {
	s.pinchDistance = distance(x1, y1, x2, y2)
	s.pinchMidX = (x1 + x2) / 2
	s.pinchMidY = (y1 + y2) / 2
	s.gesture = gesturePinchZooming
}

// TouchMove advances a pinch: distance change zooms (anchored at the
// midpoint), midpoint displacement pans. Both go through small-delta
// thresholds so sensor jitter doesn't feed through, but the reference
// distance and midpoint advance every sample regardless.
func (s *Session) TouchMove(x1, y1, x2, y2 float64) {
	if s.gesture != gesturePinchZooming {
		return
	}
	newDistance := distance(x1, y1, x2, y2)
	newMidX := (x1 + x2) / 2
	newMidY := (y1 + y2) / 2

	state := s.hist.Present()
	changed := false

	zoomDelta := (newDistance - s.pinchDistance) * pinchZoomFactor
	if math.Abs(zoomDelta) > pinchZoomThreshold {
		state.Viewport = viewport.ZoomBy(state.Viewport, zoomDelta, newMidX, newMidY)
		changed = true
	}

	dx := newMidX - s.pinchMidX
	dy := newMidY - s.pinchMidY
	if math.Hypot(dx, dy) > pinchPanThreshold {
		state.Viewport = viewport.Pan(state.Viewport, dx, dy)
		changed = true
	}

	if changed {
		s.replace(state)
	}

	s.pinchDistance = newDistance
	s.pinchMidX = newMidX
	s.pinchMidY = newMidY
}

// TouchEnd finishes the pinch gesture.
func (s *Session) TouchEnd() {
	if s.gesture == gesturePinchZooming {
		s.gesture = gestureIdle
	}
}

// --- Text entry ---

// ConfirmText turns the pending text anchor into a text shape. Whitespace-
// only input discards the anchor without touching the document. New text
// takes a zIndex above every existing shape so it always draws on top.
func (s *Session) ConfirmText(text string) {
	anchor := s.textAnchor
	s.textAnchor = nil
	s.gesture = gestureIdle

	trimmed := strings.TrimSpace(text)
	if anchor == nil || trimmed == "" {
		return
	}

	state := s.hist.Present()
	shape := document.Shape{
		ID:          typeid.NewShapeID(),
		Type:        document.ShapeText,
		X:           anchor.X,
		Y:           anchor.Y,
		Width:       float64(len([]rune(trimmed))) * state.FontSize * textWidthFactor,
		Height:      state.FontSize,
		Text:        trimmed,
		FontSize:    state.FontSize,
		FontFamily:  state.FontFamily,
		StrokeColor: state.StrokeColor,
		FillColor:   state.FillColor,
		StrokeWidth: state.StrokeWidth,
		Roughness:   state.Roughness,
		ZIndex:      state.MaxZIndex() + 1,
	}
	state.Shapes = append(state.Shapes, shape)
	s.commit(state)
}

// CancelText discards the pending text anchor with no mutation.
func (s *Session) CancelText() {
	s.textAnchor = nil
	s.gesture = gestureIdle
}

// --- Tool and style setters (replace-class: not individually undoable) ---

func (s *Session) SetTool(tool document.Tool) {
	state := s.hist.Present()
	state.CurrentTool = tool
	s.replace(state)
}

func (s *Session) SetStrokeColor(color string) {
	state := s.hist.Present()
	state.StrokeColor = color
	s.replace(state)
}

func (s *Session) SetFillColor(color string) {
	state := s.hist.Present()
	state.FillColor = color
	s.replace(state)
}

func (s *Session) SetStrokeWidth(width float64) {
	state := s.hist.Present()
	state.StrokeWidth = width
	s.replace(state)
}

func (s *Session) SetRoughness(roughness float64) {
	state := s.hist.Present()
	state.Roughness = roughness
	s.replace(state)
}

func (s *Session) SetFontSize(size float64) {
	state := s.hist.Present()
	state.FontSize = size
	s.replace(state)
}

func (s *Session) SetFontFamily(family string) {
	state := s.hist.Present()
	state.FontFamily = family
	s.replace(state)
}

// --- Document commands (commit-class) ---

// DeleteSelected removes the selected shape.
func (s *Session) DeleteSelected() {
	state := s.hist.Present()
	if state.SelectedShapeID == nil {
		return
	}
	i := state.ShapeIndex(*state.SelectedShapeID)
	if i < 0 {
		return
	}
	state.Shapes = append(state.Shapes[:i], state.Shapes[i+1:]...)
	clearSelection(&state)
	s.commit(state)
}

// DuplicateSelected copies the selected shape offset down-right, gives the
// copy a fresh id and moves the selection onto it.
func (s *Session) DuplicateSelected() {
	state := s.hist.Present()
	if state.SelectedShapeID == nil {
		return
	}
	i := state.ShapeIndex(*state.SelectedShapeID)
	if i < 0 {
		return
	}

	copyShape := geom.Translate(state.Shapes[i], duplicateOffset, duplicateOffset)
	copyShape.ID = typeid.NewShapeID()
	state.Shapes[i].Selected = false
	copyShape.Selected = true
	state.Shapes = append(state.Shapes, copyShape)
	state.SelectedShapeID = &copyShape.ID
	s.commit(state)
}

// ClearCanvas removes every shape, keeping tool, styles and viewport.
func (s *Session) ClearCanvas() {
	state := s.hist.Present()
	state.Shapes = []document.Shape{}
	clearSelection(&state)
	s.commit(state)
}

// BringForward raises the selected shape's zIndex by one.
func (s *Session) BringForward() {
	s.adjustZIndex(+1)
}

// SendBackward lowers the selected shape's zIndex by one, floored at zero.
func (s *Session) SendBackward() {
	s.adjustZIndex(-1)
}

func (s *Session) adjustZIndex(delta int) {
	state := s.hist.Present()
	if state.SelectedShapeID == nil {
		return
	}
	i := state.ShapeIndex(*state.SelectedShapeID)
	if i < 0 {
		return
	}
	z := state.Shapes[i].ZIndex + delta
	if z < 0 {
		z = 0
	}
	if z == state.Shapes[i].ZIndex {
		return
	}
	state.Shapes[i].ZIndex = z
	s.commit(state)
}

// --- Programmatic viewport control (replace-class) ---

// ZoomBy applies a zoom delta anchored at a screen point.
func (s *Session) ZoomBy(delta, anchorX, anchorY float64) {
	state := s.hist.Present()
	state.Viewport = viewport.ZoomBy(state.Viewport, delta, anchorX, anchorY)
	s.replace(state)
}

// ResetZoom returns to 100% zoom without moving the offset.
func (s *Session) ResetZoom() {
	state := s.hist.Present()
	state.Viewport = viewport.SetZoom(state.Viewport, 1)
	s.replace(state)
}

// --- internal ---

func (s *Session) commit(state document.CanvasState) {
	s.hist.Commit(state)
	s.notify(state)
}

func (s *Session) replace(state document.CanvasState) {
	s.hist.Replace(state)
	s.notify(state)
}

func (s *Session) notify(state document.CanvasState) {
	if s.onChange != nil {
		s.onChange(state)
	}
}

// selectShape marks exactly one shape selected and syncs selectedShapeId.
func selectShape(state *document.CanvasState, id string) {
	for i := range state.Shapes {
		state.Shapes[i].Selected = state.Shapes[i].ID == id
	}
	state.SelectedShapeID = &id
}

func clearSelection(state *document.CanvasState) {
	for i := range state.Shapes {
		state.Shapes[i].Selected = false
	}
	state.SelectedShapeID = nil
}

func distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
