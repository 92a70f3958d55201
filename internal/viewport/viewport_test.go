package viewport

import (
	"math"
	"testing"

	"github.com/roughcut/roughcut/backend-go/internal/document"
)

func closeEnough(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScreenDocumentRoundTrip(t *testing.T) {
	v := document.Viewport{OffsetX: 40, OffsetY: -25, Zoom: 1.7}

	sx, sy := ToScreen(v, 100, 200)
	dx, dy := ToDocument(v, sx, sy)

	if !closeEnough(dx, 100) || !closeEnough(dy, 200) {
		t.Errorf("round trip = (%v, %v), want (100, 200)", dx, dy)
	}
}

func TestToDocumentAppliesOffsetAndZoom(t *testing.T) {
	v := document.Viewport{OffsetX: 100, OffsetY: 50, Zoom: 2}

	// screen = doc*zoom + offset, so doc = (screen-offset)/zoom.
	dx, dy := ToDocument(v, 300, 250)
	if !closeEnough(dx, 100) || !closeEnough(dy, 100) {
		t.Errorf("ToDocument = (%v, %v), want (100, 100)", dx, dy)
	}
}

func TestClampZoom(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"below minimum", 0.05, document.MinZoom},
		{"at minimum", document.MinZoom, document.MinZoom},
		{"in range", 1.3, 1.3},
		{"at maximum", document.MaxZoom, document.MaxZoom},
		{"above maximum", 7.2, document.MaxZoom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampZoom(tt.in); got != tt.want {
				t.Errorf("ClampZoom(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestZoomByKeepsAnchorStationary(t *testing.T) {
	v := document.Viewport{OffsetX: 30, OffsetY: -10, Zoom: 1}
	anchorX, anchorY := 400.0, 300.0

	docX, docY := ToDocument(v, anchorX, anchorY)
	zoomed := ZoomBy(v, 0.5, anchorX, anchorY)
	afterX, afterY := ToDocument(zoomed, anchorX, anchorY)

	if !closeEnough(afterX, docX) || !closeEnough(afterY, docY) {
		t.Errorf("anchor drifted from (%v, %v) to (%v, %v)", docX, docY, afterX, afterY)
	}
	if zoomed.Zoom != 1.5 {
		t.Errorf("zoom = %v, want 1.5", zoomed.Zoom)
	}
}

func TestZoomByClampsAtBounds(t *testing.T) {
	v := document.Viewport{Zoom: document.MaxZoom}
	got := ZoomBy(v, 1, 0, 0)
	if got.Zoom != document.MaxZoom {
		t.Errorf("zoom = %v, want clamp at %v", got.Zoom, document.MaxZoom)
	}
	// Clamped zoom means ratio 1, so the offset must not move either.
	if got.OffsetX != v.OffsetX || got.OffsetY != v.OffsetY {
		t.Error("offset moved under a fully clamped zoom")
	}

	v = document.Viewport{Zoom: document.MinZoom}
	if got := ZoomBy(v, -1, 0, 0); got.Zoom != document.MinZoom {
		t.Errorf("zoom = %v, want clamp at %v", got.Zoom, document.MinZoom)
	}
}

func TestSetZoomLeavesOffset(t *testing.T) {
	v := document.Viewport{OffsetX: 12, OffsetY: 34, Zoom: 2.5}
	got := SetZoom(v, 1)
	if got.Zoom != 1 || got.OffsetX != 12 || got.OffsetY != 34 {
		t.Errorf("SetZoom = %+v, want zoom 1 with offset untouched", got)
	}
}

func TestPan(t *testing.T) {
	v := document.Viewport{OffsetX: 10, OffsetY: 20, Zoom: 3}
	got := Pan(v, -5, 15)
	if got.OffsetX != 5 || got.OffsetY != 35 || got.Zoom != 3 {
		t.Errorf("Pan = %+v", got)
	}
}
