package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/roughcut/roughcut/backend-go/internal/document"
)

func TestSVGContainsShapeElements(t *testing.T) {
	state := document.NewCanvasState()
	state.Shapes = []document.Shape{
		{
			ID: "r1", Type: document.ShapeRectangle,
			X: 0, Y: 0, Width: 100, Height: 50,
			StrokeColor: "#ff0000", FillColor: "transparent", StrokeWidth: 2,
		},
		{
			ID: "c1", Type: document.ShapeCircle,
			X: 200, Y: 0, Width: 60, Height: 60,
			StrokeColor: "#00ff00", FillColor: "#0000ff", StrokeWidth: 1,
		},
		{
			ID: "t1", Type: document.ShapeText,
			X: 0, Y: 100, Width: 48, Height: 16,
			Text: "hello", FontSize: 16, FontFamily: "sans-serif",
			StrokeColor: "#ffffff",
		},
	}

	var buf bytes.Buffer
	if err := SVG(&buf, state); err != nil {
		t.Fatalf("SVG() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{"<svg", "<rect", "<circle", "hello", "</svg>"} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}
	if !strings.Contains(out, "fill:none") {
		t.Error("transparent fill should render as fill:none")
	}
}

func TestSVGArrowEmitsHeadStrokes(t *testing.T) {
	state := document.NewCanvasState()
	state.Shapes = []document.Shape{{
		ID: "a1", Type: document.ShapeArrow,
		X: 0, Y: 0, EndX: 100, EndY: 0,
		StrokeColor: "#fff", StrokeWidth: 2,
	}}

	var buf bytes.Buffer
	if err := SVG(&buf, state); err != nil {
		t.Fatalf("SVG() error = %v", err)
	}

	// Shaft plus two arrowhead strokes.
	if got := strings.Count(buf.String(), "<line"); got != 3 {
		t.Errorf("line elements = %d, want 3", got)
	}
}

func TestSVGRotatedShapeWrapsInGroup(t *testing.T) {
	state := document.NewCanvasState()
	state.Shapes = []document.Shape{{
		ID: "r1", Type: document.ShapeRectangle,
		X: 0, Y: 0, Width: 100, Height: 50,
		Rotation:    0.5,
		StrokeColor: "#fff", StrokeWidth: 2,
	}}

	var buf bytes.Buffer
	if err := SVG(&buf, state); err != nil {
		t.Fatalf("SVG() error = %v", err)
	}

	if !strings.Contains(buf.String(), "rotate(") {
		t.Error("rotated shape should carry a rotate transform")
	}
}

func TestSVGPaintsByZIndex(t *testing.T) {
	state := document.NewCanvasState()
	state.Shapes = []document.Shape{
		{
			ID: "front", Type: document.ShapeRectangle,
			X: 0, Y: 0, Width: 10, Height: 10,
			StrokeColor: "#aaaaaa", StrokeWidth: 1, ZIndex: 1,
		},
		{
			ID: "back", Type: document.ShapeRectangle,
			X: 0, Y: 0, Width: 10, Height: 10,
			StrokeColor: "#bbbbbb", StrokeWidth: 1, ZIndex: 0,
		},
	}

	var buf bytes.Buffer
	if err := SVG(&buf, state); err != nil {
		t.Fatalf("SVG() error = %v", err)
	}
	out := buf.String()

	// The lower zIndex paints first even though it was listed second.
	if strings.Index(out, "#bbbbbb") > strings.Index(out, "#aaaaaa") {
		t.Error("shapes painted in list order, want zIndex order")
	}
}
