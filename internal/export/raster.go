package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/roughcut/roughcut/backend-go/internal/document"
	"github.com/roughcut/roughcut/backend-go/internal/geom"
)

var rasterBackground = color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}

// PNG writes a flat raster snapshot of the shape list: outlines and
// polylines at unit zoom, content-bounds-relative with the usual padding.
// The hand-drawn stroke styling is a renderer concern and is not
// reproduced here.
func PNG(w io.Writer, state document.CanvasState) error {
	shapes := paintOrder(state.Shapes)
	bounds := contentBounds(shapes)

	width := int(math.Ceil(bounds.Width + 2*contentPadding))
	height := int(math.Ceil(bounds.Height + 2*contentPadding))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		switch i % 4 {
		case 0:
			img.Pix[i] = rasterBackground.R
		case 1:
			img.Pix[i] = rasterBackground.G
		case 2:
			img.Pix[i] = rasterBackground.B
		case 3:
			img.Pix[i] = rasterBackground.A
		}
	}

	offX := contentPadding - bounds.X
	offY := contentPadding - bounds.Y

	for _, s := range shapes {
		drawShape(img, s, offX, offY)
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func drawShape(img *image.RGBA, s document.Shape, offX, offY float64) {
	col := strokeColor(s)

	switch s.Type {
	case document.ShapeRectangle:
		b := geom.Bounds(s)
		x0, y0 := b.X+offX, b.Y+offY
		x1, y1 := x0+b.Width, y0+b.Height
		drawLine(img, x0, y0, x1, y0, col)
		drawLine(img, x1, y0, x1, y1, col)
		drawLine(img, x1, y1, x0, y1, col)
		drawLine(img, x0, y1, x0, y0, col)

	case document.ShapeCircle:
		b := geom.Bounds(s)
		cx, cy := b.Center()
		r := min(b.Width, b.Height) / 2
		steps := int(math.Max(12, r))
		for i := 0; i < steps; i++ {
			a0 := 2 * math.Pi * float64(i) / float64(steps)
			a1 := 2 * math.Pi * float64(i+1) / float64(steps)
			drawLine(img,
				cx+offX+r*math.Cos(a0), cy+offY+r*math.Sin(a0),
				cx+offX+r*math.Cos(a1), cy+offY+r*math.Sin(a1), col)
		}

	case document.ShapeLine:
		drawLine(img, s.X+offX, s.Y+offY, s.EndX+offX, s.EndY+offY, col)

	case document.ShapeArrow:
		drawLine(img, s.X+offX, s.Y+offY, s.EndX+offX, s.EndY+offY, col)
		for _, seg := range arrowheadStrokes(s.X, s.Y, s.EndX, s.EndY) {
			drawLine(img, seg[0]+offX, seg[1]+offY, seg[2]+offX, seg[3]+offY, col)
		}

	case document.ShapePen:
		for i := 1; i < len(s.Points); i++ {
			drawLine(img,
				s.Points[i-1].X+offX, s.Points[i-1].Y+offY,
				s.Points[i].X+offX, s.Points[i].Y+offY, col)
		}

	case document.ShapeText:
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(col),
			Face: basicfont.Face7x13,
			Dot: fixed.Point26_6{
				X: fixed.I(int(s.X + offX)),
				Y: fixed.I(int(s.Y + offY + s.FontSize)),
			},
		}
		d.DrawString(s.Text)
	}
}

func strokeColor(s document.Shape) color.RGBA {
	if r, g, b, ok := parseHexColor(s.StrokeColor); ok {
		return color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}

// drawLine plots a 1px line sample by sample. Good enough for a snapshot
// export; antialiased stroking is the live renderer's job.
func drawLine(img *image.RGBA, x0, y0, x1, y1 float64, col color.RGBA) {
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0)))
	if steps == 0 {
		img.Set(int(x0), int(y0), col)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		img.Set(int(x0+(x1-x0)*t), int(y0+(y1-y0)*t), col)
	}
}
