package geom

import (
	"github.com/roughcut/roughcut/backend-go/internal/document"
)

// hitPadding is added on all sides of a shape's bounds before a hit test,
// so thin lines and small shapes remain clickable.
const hitPadding = 5.0

// minScaleDenominator floors the old extent when computing resize scale
// factors, so degenerate zero-size shapes don't divide to infinity.
const minScaleDenominator = 0.1

// Bounds computes the axis-aligned bounding box of a shape, normalized to
// non-negative extents. For pen shapes the stored box fields are a cache;
// the points are authoritative. For lines and arrows the box spans the two
// endpoints.
func Bounds(s document.Shape) Rect {
	switch s.Type {
	case document.ShapePen:
		if len(s.Points) == 0 {
			return Rect{}
		}
		minX, minY := s.Points[0].X, s.Points[0].Y
		maxX, maxY := minX, minY
		for _, p := range s.Points[1:] {
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}
		return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}

	case document.ShapeLine, document.ShapeArrow:
		minX := min(s.X, s.EndX)
		minY := min(s.Y, s.EndY)
		return Rect{
			X:      minX,
			Y:      minY,
			Width:  max(s.X, s.EndX) - minX,
			Height: max(s.Y, s.EndY) - minY,
		}

	case document.ShapeRectangle, document.ShapeCircle, document.ShapeText:
		return Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}.Normalize()
	}
	return Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}.Normalize()
}

// HitTest reports whether the document-space point (x, y) hits the shape.
// The shape's bounds are padded on all sides; a rotated shape is tested by
// rotating the point back around the bounds' center.
func HitTest(x, y float64, s document.Shape) bool {
	bounds := Bounds(s).Expand(hitPadding)
	if s.Rotation != 0 {
		cx, cy := bounds.Center()
		x, y = RotateAbout(-s.Rotation, cx, cy).TransformPoint(x, y)
	}
	return bounds.Contains(x, y)
}

// PickTopmost returns the last shape in the list hit by the point. List
// order is the tiebreak, not zIndex; callers wanting z-order-correct
// picking must sort first.
func PickTopmost(x, y float64, shapes []document.Shape) (document.Shape, bool) {
	for i := len(shapes) - 1; i >= 0; i-- {
		if HitTest(x, y, shapes[i]) {
			return shapes[i], true
		}
	}
	return document.Shape{}, false
}

// Translate returns the shape moved by (dx, dy). All positional fields
// shift: every pen point, both line endpoints, and the cached box.
func Translate(s document.Shape, dx, dy float64) document.Shape {
	out := s.Clone()
	out.X += dx
	out.Y += dy

	switch s.Type {
	case document.ShapePen:
		for i := range out.Points {
			out.Points[i].X += dx
			out.Points[i].Y += dy
		}
	case document.ShapeLine, document.ShapeArrow:
		out.EndX += dx
		out.EndY += dy
	case document.ShapeRectangle, document.ShapeCircle, document.ShapeText:
	}
	return out
}

// Resize re-maps the shape from its current bounds into newBounds. Every
// positional field is scaled proportionally from the old bounds' origin to
// the new one.
func Resize(s document.Shape, newBounds Rect) document.Shape {
	old := Bounds(s)
	sx := newBounds.Width / max(old.Width, minScaleDenominator)
	sy := newBounds.Height / max(old.Height, minScaleDenominator)

	mapX := func(x float64) float64 { return newBounds.X + (x-old.X)*sx }
	mapY := func(y float64) float64 { return newBounds.Y + (y-old.Y)*sy }

	out := s.Clone()
	switch s.Type {
	case document.ShapePen:
		for i := range out.Points {
			out.Points[i].X = mapX(out.Points[i].X)
			out.Points[i].Y = mapY(out.Points[i].Y)
		}
		out.X = newBounds.X
		out.Y = newBounds.Y
		out.Width = newBounds.Width
		out.Height = newBounds.Height

	case document.ShapeLine, document.ShapeArrow:
		out.X = mapX(s.X)
		out.Y = mapY(s.Y)
		out.EndX = mapX(s.EndX)
		out.EndY = mapY(s.EndY)

	case document.ShapeRectangle, document.ShapeCircle, document.ShapeText:
		out.X = newBounds.X
		out.Y = newBounds.Y
		out.Width = newBounds.Width
		out.Height = newBounds.Height
	}
	return out
}

// SetRotation returns the shape with its rotation replaced. The angle is
// stored as-is; values beyond ±2π are fine.
func SetRotation(s document.Shape, radians float64) document.Shape {
	out := s.Clone()
	out.Rotation = radians
	return out
}
