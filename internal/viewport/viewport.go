// Package viewport maps between screen pixel space and document space.
// The mapping is offset plus uniform zoom: screen = doc*zoom + offset.
package viewport

import (
	"github.com/roughcut/roughcut/backend-go/internal/document"
	"github.com/roughcut/roughcut/backend-go/internal/geom"
)

// Matrix returns the document→screen transform for a viewport.
func Matrix(v document.Viewport) geom.Matrix2D {
	return geom.Translation(v.OffsetX, v.OffsetY).Multiply(geom.Scale(v.Zoom, v.Zoom))
}

// ToScreen maps a document-space point to screen pixels.
func ToScreen(v document.Viewport, docX, docY float64) (float64, float64) {
	return Matrix(v).TransformPoint(docX, docY)
}

// ToDocument maps a screen-pixel point into document space.
func ToDocument(v document.Viewport, screenX, screenY float64) (float64, float64) {
	return Matrix(v).Invert().TransformPoint(screenX, screenY)
}

// ClampZoom bounds a zoom scalar to the allowed range. Zoom is clamped at
// the point of mutation and nowhere else.
func ClampZoom(zoom float64) float64 {
	if zoom < document.MinZoom {
		return document.MinZoom
	}
	if zoom > document.MaxZoom {
		return document.MaxZoom
	}
	return zoom
}

// ZoomBy applies a zoom delta anchored at a screen-space point. The
// document point under the anchor stays visually stationary: with
// ratio = newZoom/oldZoom, offset' = anchor - (anchor-offset)*ratio.
func ZoomBy(v document.Viewport, delta, anchorX, anchorY float64) document.Viewport {
	newZoom := ClampZoom(v.Zoom + delta)
	ratio := newZoom / v.Zoom
	return document.Viewport{
		OffsetX: anchorX - (anchorX-v.OffsetX)*ratio,
		OffsetY: anchorY - (anchorY-v.OffsetY)*ratio,
		Zoom:    newZoom,
	}
}

// SetZoom replaces the zoom without an anchor, leaving the offset alone.
// Used for programmatic resets like "zoom to 100%".
func SetZoom(v document.Viewport, zoom float64) document.Viewport {
	v.Zoom = ClampZoom(zoom)
	return v
}

// Pan shifts the viewport offset by a screen-space delta.
func Pan(v document.Viewport, dx, dy float64) document.Viewport {
	v.OffsetX += dx
	v.OffsetY += dy
	return v
}
