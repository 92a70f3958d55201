package document

// NewSampleCanvas builds the canvas seeded into the playground board: a
// few shapes exercising every variant so a fresh client has something to
// look at.
func NewSampleCanvas() CanvasState {
	state := NewCanvasState()
	state.Shapes = []Shape{
		{
			ID: "shape_sample_rect", Type: ShapeRectangle,
			X: 120, Y: 80, Width: 200, Height: 140,
			StrokeColor: "#74c0fc", FillColor: "transparent",
			StrokeWidth: 2, Roughness: 1,
		},
		{
			ID: "shape_sample_circle", Type: ShapeCircle,
			X: 380, Y: 100, Width: 120, Height: 120,
			StrokeColor: "#ffa8a8", FillColor: "transparent",
			StrokeWidth: 2, Roughness: 1,
		},
		{
			ID: "shape_sample_arrow", Type: ShapeArrow,
			X: 330, Y: 150, EndX: 375, EndY: 155,
			StrokeColor: DefaultStrokeColor, StrokeWidth: 2,
		},
		{
			ID: "shape_sample_pen", Type: ShapePen,
			X: 140, Y: 280, Width: 120, Height: 40,
			Points: []Point{
				{X: 140, Y: 300}, {X: 170, Y: 280}, {X: 200, Y: 320},
				{X: 230, Y: 285}, {X: 260, Y: 310},
			},
			StrokeColor: "#b2f2bb", StrokeWidth: 3, Roughness: 1,
		},
		{
			ID: "shape_sample_text", Type: ShapeText,
			X: 130, Y: 40, Width: 180, Height: 20,
			Text: "welcome to roughcut", FontSize: 20, FontFamily: DefaultFontFamily,
			StrokeColor: DefaultStrokeColor, ZIndex: 1,
		},
	}
	return state
}
