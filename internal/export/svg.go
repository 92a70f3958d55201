package export

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo/float"

	"github.com/roughcut/roughcut/backend-go/internal/document"
	"github.com/roughcut/roughcut/backend-go/internal/geom"
)

// SVG writes the snapshot as vector markup. The coordinate space is
// relative to the content bounds with a fixed padding border; the viewport
// plays no part in the export.
func SVG(w io.Writer, state document.CanvasState) error {
	shapes := paintOrder(state.Shapes)
	bounds := contentBounds(shapes)

	canvas := svg.New(w)
	canvas.Start(bounds.Width+2*contentPadding, bounds.Height+2*contentPadding)

	// Shift content so the top-left shape sits at the padding offset.
	offX := contentPadding - bounds.X
	offY := contentPadding - bounds.Y

	for _, s := range shapes {
		writeSVGShape(canvas, s, offX, offY)
	}

	canvas.End()
	return nil
}

func writeSVGShape(canvas *svg.SVG, s document.Shape, offX, offY float64) {
	style := shapeStyle(s)

	rotated := s.Rotation != 0
	if rotated {
		b := geom.Bounds(s)
		cx, cy := b.Center()
		canvas.Gtransform(fmt.Sprintf("rotate(%.4f,%.4f,%.4f)",
			s.Rotation*180/math.Pi, cx+offX, cy+offY))
	}

	switch s.Type {
	case document.ShapeRectangle:
		b := geom.Bounds(s)
		canvas.Rect(b.X+offX, b.Y+offY, b.Width, b.Height, style)

	case document.ShapeCircle:
		b := geom.Bounds(s)
		cx, cy := b.Center()
		r := min(b.Width, b.Height) / 2
		canvas.Circle(cx+offX, cy+offY, r, style)

	case document.ShapeLine:
		canvas.Line(s.X+offX, s.Y+offY, s.EndX+offX, s.EndY+offY, style)

	case document.ShapeArrow:
		canvas.Line(s.X+offX, s.Y+offY, s.EndX+offX, s.EndY+offY, style)
		for _, seg := range arrowheadStrokes(s.X, s.Y, s.EndX, s.EndY) {
			canvas.Line(seg[0]+offX, seg[1]+offY, seg[2]+offX, seg[3]+offY, style)
		}

	case document.ShapePen:
		if len(s.Points) > 1 {
			xs := make([]float64, len(s.Points))
			ys := make([]float64, len(s.Points))
			for i, p := range s.Points {
				xs[i] = p.X + offX
				ys[i] = p.Y + offY
			}
			canvas.Polyline(xs, ys, style+";fill:none")
		}

	case document.ShapeText:
		canvas.Text(s.X+offX, s.Y+offY+s.FontSize,
			s.Text,
			fmt.Sprintf("fill:%s;font-size:%.2fpx;font-family:%s",
				s.StrokeColor, s.FontSize, s.FontFamily))
	}

	if rotated {
		canvas.Gend()
	}
}

func shapeStyle(s document.Shape) string {
	fill := s.FillColor
	if fill == "" || fill == "transparent" {
		fill = "none"
	}
	return fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%.2f", fill, s.StrokeColor, s.StrokeWidth)
}
