package export

import (
	"math"
	"testing"

	"github.com/roughcut/roughcut/backend-go/internal/document"
	"github.com/roughcut/roughcut/backend-go/internal/geom"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
		ok      bool
	}{
		{"#ff0000", 255, 0, 0, true},
		{"#1a2b3c", 26, 43, 60, true},
		{"#fff", 255, 255, 255, true},
		{"#a0f", 170, 0, 255, true},
		{"transparent", 0, 0, 0, false},
		{"", 0, 0, 0, false},
		{"#xyz", 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, g, b, ok := parseHexColor(tt.in)
			if ok != tt.ok || r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("parseHexColor(%q) = (%d, %d, %d, %v), want (%d, %d, %d, %v)",
					tt.in, r, g, b, ok, tt.r, tt.g, tt.b, tt.ok)
			}
		})
	}
}

func TestContentBounds(t *testing.T) {
	shapes := []document.Shape{
		{Type: document.ShapeRectangle, X: 10, Y: 10, Width: 20, Height: 20},
		{Type: document.ShapeRectangle, X: 100, Y: 50, Width: 30, Height: 10},
	}

	got := contentBounds(shapes)
	want := geom.Rect{X: 10, Y: 10, Width: 120, Height: 50}
	if got != want {
		t.Errorf("contentBounds = %+v, want %+v", got, want)
	}
}

func TestPaintOrder(t *testing.T) {
	shapes := []document.Shape{
		{ID: "top", ZIndex: 5},
		{ID: "bottom", ZIndex: 0},
		{ID: "tie-a", ZIndex: 2},
		{ID: "tie-b", ZIndex: 2},
	}

	got := paintOrder(shapes)

	wantOrder := []string{"bottom", "tie-a", "tie-b", "top"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("paintOrder[%d] = %q, want %q", i, got[i].ID, id)
		}
	}

	// The input order must survive untouched.
	if shapes[0].ID != "top" {
		t.Error("paintOrder mutated its input")
	}
}

func TestArrowheadStrokes(t *testing.T) {
	// Arrow pointing right: both tip strokes sweep back and are the
	// configured length.
	segs := arrowheadStrokes(0, 0, 100, 0)

	for i, seg := range segs {
		if seg[0] != 100 || seg[1] != 0 {
			t.Errorf("stroke %d does not start at the tip: %+v", i, seg)
		}
		length := math.Hypot(seg[2]-seg[0], seg[3]-seg[1])
		if math.Abs(length-arrowheadLength) > 1e-9 {
			t.Errorf("stroke %d length = %v, want %v", i, length, arrowheadLength)
		}
		if seg[2] >= 100 {
			t.Errorf("stroke %d sweeps forward: %+v", i, seg)
		}
	}

	// The two strokes flare to opposite sides of the shaft.
	if segs[0][3]*segs[1][3] >= 0 {
		t.Errorf("strokes on the same side: %v and %v", segs[0][3], segs[1][3])
	}
}
