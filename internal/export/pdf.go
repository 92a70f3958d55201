package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/roughcut/roughcut/backend-go/internal/document"
	"github.com/roughcut/roughcut/backend-go/internal/geom"
)

// pdfScale maps document units to PDF millimetres so a typical canvas
// lands on an A4 page.
const pdfScale = 0.25

// PDF writes the snapshot as a single-page PDF, content-bounds-relative
// like the SVG export.
func PDF(w io.Writer, state document.CanvasState) error {
	shapes := paintOrder(state.Shapes)
	bounds := contentBounds(shapes)

	p := gofpdf.New("L", "mm", "A4", "")
	p.AddPage()
	p.SetFont("Helvetica", "", 12)

	offX := contentPadding - bounds.X
	offY := contentPadding - bounds.Y
	mapX := func(x float64) float64 { return (x + offX) * pdfScale }
	mapY := func(y float64) float64 { return (y + offY) * pdfScale }

	for _, s := range shapes {
		writePDFShape(p, s, mapX, mapY)
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func writePDFShape(p *gofpdf.Fpdf, s document.Shape, mapX, mapY func(float64) float64) {
	if r, g, b, ok := parseHexColor(s.StrokeColor); ok {
		p.SetDrawColor(int(r), int(g), int(b))
	} else {
		p.SetDrawColor(0, 0, 0)
	}
	p.SetLineWidth(s.StrokeWidth * pdfScale)

	styleStr := "D"
	if r, g, b, ok := parseHexColor(s.FillColor); ok {
		p.SetFillColor(int(r), int(g), int(b))
		styleStr = "FD"
	}

	switch s.Type {
	case document.ShapeRectangle:
		b := geom.Bounds(s)
		p.Rect(mapX(b.X), mapY(b.Y), b.Width*pdfScale, b.Height*pdfScale, styleStr)

	case document.ShapeCircle:
		b := geom.Bounds(s)
		cx, cy := b.Center()
		r := min(b.Width, b.Height) / 2 * pdfScale
		p.Ellipse(mapX(cx), mapY(cy), r, r, 0, styleStr)

	case document.ShapeLine:
		p.Line(mapX(s.X), mapY(s.Y), mapX(s.EndX), mapY(s.EndY))

	case document.ShapeArrow:
		p.Line(mapX(s.X), mapY(s.Y), mapX(s.EndX), mapY(s.EndY))
		for _, seg := range arrowheadStrokes(s.X, s.Y, s.EndX, s.EndY) {
			p.Line(mapX(seg[0]), mapY(seg[1]), mapX(seg[2]), mapY(seg[3]))
		}

	case document.ShapePen:
		for i := 1; i < len(s.Points); i++ {
			p.Line(
				mapX(s.Points[i-1].X), mapY(s.Points[i-1].Y),
				mapX(s.Points[i].X), mapY(s.Points[i].Y),
			)
		}

	case document.ShapeText:
		p.SetFontSize(s.FontSize * pdfScale * 2.83) // document units → points
		if r, g, b, ok := parseHexColor(s.StrokeColor); ok {
			p.SetTextColor(int(r), int(g), int(b))
		}
		p.Text(mapX(s.X), mapY(s.Y+s.FontSize), s.Text)
	}
}
