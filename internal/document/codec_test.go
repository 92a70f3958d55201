package document

import (
	"errors"
	"testing"
)

func TestParseBackfillsMissingViewport(t *testing.T) {
	data := []byte(`{"shapes":[{"id":"s1","type":"rectangle","x":1,"y":2,"width":3,"height":4,"strokeColor":"#fff","fillColor":"transparent","strokeWidth":2,"roughness":0}]}`)

	state, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if state.Viewport != DefaultViewport() {
		t.Errorf("viewport = %+v, want default %+v", state.Viewport, DefaultViewport())
	}
	if len(state.Shapes) != 1 || state.Shapes[0].ID != "s1" {
		t.Errorf("shapes = %+v", state.Shapes)
	}
}

func TestParseKeepsExplicitViewport(t *testing.T) {
	data := []byte(`{"shapes":[],"viewport":{"offsetX":10,"offsetY":-20,"zoom":2.5}}`)

	state, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := Viewport{OffsetX: 10, OffsetY: -20, Zoom: 2.5}
	if state.Viewport != want {
		t.Errorf("viewport = %+v, want %+v", state.Viewport, want)
	}
}

func TestParseBackfillsPartialViewport(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Viewport
	}{
		{
			name: "offsets without zoom",
			data: `{"shapes":[],"viewport":{"offsetX":10,"offsetY":20}}`,
			want: Viewport{OffsetX: 10, OffsetY: 20, Zoom: 1},
		},
		{
			name: "zoom without offsets",
			data: `{"shapes":[],"viewport":{"zoom":2}}`,
			want: Viewport{OffsetX: 0, OffsetY: 0, Zoom: 2},
		},
		{
			name: "explicit zero zoom",
			data: `{"shapes":[],"viewport":{"offsetX":5,"offsetY":5,"zoom":0}}`,
			want: Viewport{OffsetX: 5, OffsetY: 5, Zoom: 1},
		},
		{
			name: "empty viewport object",
			data: `{"shapes":[],"viewport":{}}`,
			want: DefaultViewport(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := Parse([]byte(tt.data))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if state.Viewport != tt.want {
				t.Errorf("viewport = %+v, want %+v", state.Viewport, tt.want)
			}
		})
	}
}

func TestParseBackfillsStyleDefaults(t *testing.T) {
	state, err := Parse([]byte(`{"shapes":[]}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if state.StrokeColor != DefaultStrokeColor {
		t.Errorf("strokeColor = %q, want %q", state.StrokeColor, DefaultStrokeColor)
	}
	if state.FontSize != DefaultFontSize {
		t.Errorf("fontSize = %v, want %v", state.FontSize, DefaultFontSize)
	}
	if state.CurrentTool != ToolPen {
		t.Errorf("currentTool = %q, want %q", state.CurrentTool, ToolPen)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"shapes": [`))
	if !errors.Is(err, ErrInvalidDocument) {
		t.Errorf("Parse() error = %v, want ErrInvalidDocument", err)
	}
}

func TestSerializeParseRoundTrip(t *testing.T) {
	state := NewCanvasState()
	id := "shape_1"
	state.Shapes = []Shape{
		{
			ID: id, Type: ShapePen,
			Points:      []Point{{X: 1, Y: 2}, {X: 3, Y: 4}},
			StrokeColor: "#abc", StrokeWidth: 3,
		},
		{
			ID: "shape_2", Type: ShapeArrow,
			X: 0, Y: 0, EndX: 50, EndY: 50,
			StrokeColor: "#def", Rotation: 0.5, ZIndex: 2,
		},
	}
	state.SelectedShapeID = &id
	state.Viewport = Viewport{OffsetX: 7, OffsetY: 8, Zoom: 0.9}

	data, err := Serialize(state)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(back.Shapes) != 2 {
		t.Fatalf("round trip lost shapes: %d", len(back.Shapes))
	}
	if back.Shapes[0].Points[1] != (Point{X: 3, Y: 4}) {
		t.Errorf("pen points = %+v", back.Shapes[0].Points)
	}
	if back.Shapes[1].EndX != 50 || back.Shapes[1].Rotation != 0.5 {
		t.Errorf("arrow fields = %+v", back.Shapes[1])
	}
	if back.SelectedShapeID == nil || *back.SelectedShapeID != id {
		t.Errorf("selectedShapeId = %v", back.SelectedShapeID)
	}
	if back.Viewport != state.Viewport {
		t.Errorf("viewport = %+v, want %+v", back.Viewport, state.Viewport)
	}
}

func TestCloneIsolation(t *testing.T) {
	state := NewCanvasState()
	id := "a"
	state.Shapes = []Shape{{ID: "a", Type: ShapePen, Points: []Point{{X: 1, Y: 1}}}}
	state.SelectedShapeID = &id

	clone := state.Clone()
	clone.Shapes[0].Points[0].X = 99
	*clone.SelectedShapeID = "b"

	if state.Shapes[0].Points[0].X != 1 {
		t.Error("clone shares point storage with the original")
	}
	if *state.SelectedShapeID != "a" {
		t.Error("clone shares the selection pointer with the original")
	}
}

func TestMaxZIndex(t *testing.T) {
	state := NewCanvasState()
	if got := state.MaxZIndex(); got != -1 {
		t.Errorf("MaxZIndex on empty = %d, want -1", got)
	}

	state.Shapes = []Shape{{ZIndex: 3}, {ZIndex: 0}, {ZIndex: 7}}
	if got := state.MaxZIndex(); got != 7 {
		t.Errorf("MaxZIndex = %d, want 7", got)
	}
}
