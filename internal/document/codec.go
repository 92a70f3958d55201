package document

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidDocument is returned when an imported payload is not valid JSON
// for a canvas snapshot. It is the only import failure the engine reports;
// structural oddities inside a shape are passed through untouched.
var ErrInvalidDocument = errors.New("invalid document")

// canvasStateIn mirrors CanvasState with pointer fields so a loader can
// tell "absent" apart from "zero". Snapshots written by older versions may
// predate any of these fields.
type canvasStateIn struct {
	Shapes          []Shape     `json:"shapes"`
	SelectedShapeID *string     `json:"selectedShapeId"`
	CurrentTool     *Tool       `json:"currentTool"`
	StrokeColor     *string     `json:"strokeColor"`
	FillColor       *string     `json:"fillColor"`
	StrokeWidth     *float64    `json:"strokeWidth"`
	Roughness       *float64    `json:"roughness"`
	FontSize        *float64    `json:"fontSize"`
	FontFamily      *string     `json:"fontFamily"`
	Viewport        *viewportIn `json:"viewport"`
}

// viewportIn shadows Viewport the same way: a stored viewport object may
// itself predate the zoom field, and zoom 0 would make every screen
// mapping singular.
type viewportIn struct {
	OffsetX *float64 `json:"offsetX"`
	OffsetY *float64 `json:"offsetY"`
	Zoom    *float64 `json:"zoom"`
}

// Parse decodes a serialized CanvasState, deep-merging the documented
// defaults over any missing fields. A payload without a viewport gets the
// origin/unit-zoom viewport rather than a zero value.
func Parse(data []byte) (CanvasState, error) {
	var in canvasStateIn
	if err := json.Unmarshal(data, &in); err != nil {
		return CanvasState{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	state := NewCanvasState()
	if in.Shapes != nil {
		state.Shapes = in.Shapes
	}
	state.SelectedShapeID = in.SelectedShapeID
	if in.CurrentTool != nil {
		state.CurrentTool = *in.CurrentTool
	}
	if in.StrokeColor != nil {
		state.StrokeColor = *in.StrokeColor
	}
	if in.FillColor != nil {
		state.FillColor = *in.FillColor
	}
	if in.StrokeWidth != nil {
		state.StrokeWidth = *in.StrokeWidth
	}
	if in.Roughness != nil {
		state.Roughness = *in.Roughness
	}
	if in.FontSize != nil {
		state.FontSize = *in.FontSize
	}
	if in.FontFamily != nil {
		state.FontFamily = *in.FontFamily
	}
	if in.Viewport != nil {
		if in.Viewport.OffsetX != nil {
			state.Viewport.OffsetX = *in.Viewport.OffsetX
		}
		if in.Viewport.OffsetY != nil {
			state.Viewport.OffsetY = *in.Viewport.OffsetY
		}
		if in.Viewport.Zoom != nil && *in.Viewport.Zoom > 0 {
			state.Viewport.Zoom = *in.Viewport.Zoom
		}
	}

	return state, nil
}

// Serialize is the identity JSON encoding of a snapshot.
func Serialize(state CanvasState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("marshal canvas state: %w", err)
	}
	return data, nil
}
