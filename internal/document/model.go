package document

// Point is a coordinate in document space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ShapeType string

const (
	ShapePen       ShapeType = "pen"
	ShapeRectangle ShapeType = "rectangle"
	ShapeCircle    ShapeType = "circle"
	ShapeLine      ShapeType = "line"
	ShapeArrow     ShapeType = "arrow"
	ShapeText      ShapeType = "text"
)

// Shape is the closed shape variant set, discriminated by Type.
// Variant-specific fields are zero-valued for kinds that don't use them:
// Points is only meaningful for pen (where X/Y/Width/Height are a cached
// bounding box, not authoritative geometry), EndX/EndY for line and arrow,
// Text/FontSize/FontFamily for text. A circle is inscribed in its
// X/Y/Width/Height box.
type Shape struct {
	ID          string    `json:"id"`
	Type        ShapeType `json:"type"`
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
	Width       float64   `json:"width"`
	Height      float64   `json:"height"`
	StrokeColor string    `json:"strokeColor"`
	FillColor   string    `json:"fillColor"`
	StrokeWidth float64   `json:"strokeWidth"`
	Roughness   float64   `json:"roughness"`
	Rotation    float64   `json:"rotation,omitempty"`
	Selected    bool      `json:"selected,omitempty"`
	ZIndex      int       `json:"zIndex,omitempty"`

	Points []Point `json:"points,omitempty"`

	EndX float64 `json:"endX,omitempty"`
	EndY float64 `json:"endY,omitempty"`

	Text       string  `json:"text,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	FontFamily string  `json:"fontFamily,omitempty"`
}

// Clone returns a deep copy of the shape. Point slices must not be shared
// between snapshots stored in history.
func (s Shape) Clone() Shape {
	out := s
	if s.Points != nil {
		out.Points = make([]Point, len(s.Points))
		copy(out.Points, s.Points)
	}
	return out
}

type Tool string

const (
	ToolSelect    Tool = "select"
	ToolPen       Tool = "pen"
	ToolRectangle Tool = "rectangle"
	ToolCircle    Tool = "circle"
	ToolLine      Tool = "line"
	ToolArrow     Tool = "arrow"
	ToolText      Tool = "text"
)

// IsDrawing reports whether the tool creates a shape by dragging.
func (t Tool) IsDrawing() bool {
	switch t {
	case ToolPen, ToolRectangle, ToolCircle, ToolLine, ToolArrow:
		return true
	}
	return false
}

// Viewport is the affine mapping between screen pixels and document
// coordinates: screen = doc*zoom + offset.
type Viewport struct {
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
	Zoom    float64 `json:"zoom"`
}

const (
	MinZoom = 0.1
	MaxZoom = 5.0
)

// CanvasState is one immutable snapshot of the whole document: the shape
// list, selection, active tool, style defaults for the next shape, and the
// viewport. Mutations produce a new snapshot; snapshots stored in history
// are never aliased.
type CanvasState struct {
	Shapes          []Shape  `json:"shapes"`
	SelectedShapeID *string  `json:"selectedShapeId"`
	CurrentTool     Tool     `json:"currentTool"`
	StrokeColor     string   `json:"strokeColor"`
	FillColor       string   `json:"fillColor"`
	StrokeWidth     float64  `json:"strokeWidth"`
	Roughness       float64  `json:"roughness"`
	FontSize        float64  `json:"fontSize"`
	FontFamily      string   `json:"fontFamily"`
	Viewport        Viewport `json:"viewport"`
}

// Style defaults for a fresh canvas.
const (
	DefaultStrokeColor = "#f8f9fa"
	DefaultFillColor   = "transparent"
	DefaultStrokeWidth = 2.0
	DefaultRoughness   = 0.0
	DefaultFontSize    = 16.0
	DefaultFontFamily  = "sans-serif"
)

// DefaultViewport returns the origin/unit-zoom viewport.
func DefaultViewport() Viewport {
	return Viewport{OffsetX: 0, OffsetY: 0, Zoom: 1}
}

// NewCanvasState creates the initial empty document.
func NewCanvasState() CanvasState {
	return CanvasState{
		Shapes:      []Shape{},
		CurrentTool: ToolPen,
		StrokeColor: DefaultStrokeColor,
		FillColor:   DefaultFillColor,
		StrokeWidth: DefaultStrokeWidth,
		Roughness:   DefaultRoughness,
		FontSize:    DefaultFontSize,
		FontFamily:  DefaultFontFamily,
		Viewport:    DefaultViewport(),
	}
}

// Clone returns a deep copy of the snapshot.
func (c CanvasState) Clone() CanvasState {
	out := c
	out.Shapes = make([]Shape, len(c.Shapes))
	for i, s := range c.Shapes {
		out.Shapes[i] = s.Clone()
	}
	if c.SelectedShapeID != nil {
		id := *c.SelectedShapeID
		out.SelectedShapeID = &id
	}
	return out
}

// ShapeIndex returns the index of the shape with the given id, or -1.
func (c CanvasState) ShapeIndex(id string) int {
	for i := range c.Shapes {
		if c.Shapes[i].ID == id {
			return i
		}
	}
	return -1
}

// MaxZIndex returns the highest zIndex in the shape list, or -1 if the
// document is empty.
func (c CanvasState) MaxZIndex() int {
	maxZ := -1
	for i := range c.Shapes {
		if c.Shapes[i].ZIndex > maxZ {
			maxZ = c.Shapes[i].ZIndex
		}
	}
	return maxZ
}
