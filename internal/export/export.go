// Package export encodes canvas snapshots into interchange formats.
// Every encoder is a pure function of the snapshot; none of them touch the
// editing state machine.
package export

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/roughcut/roughcut/backend-go/internal/document"
	"github.com/roughcut/roughcut/backend-go/internal/geom"
)

// contentPadding is the border around the shape content in exported
// documents, in document units.
const contentPadding = 20.0

const (
	// arrowheadLength and arrowheadAngle describe the two strokes at the
	// tip of an arrow: each 15 units long, 30° off the shaft direction.
	arrowheadLength = 15.0
	arrowheadAngle  = 30.0 * math.Pi / 180.0
)

// arrowheadStrokes returns the two line segments forming an arrow tip.
func arrowheadStrokes(startX, startY, endX, endY float64) [2][4]float64 {
	angle := math.Atan2(endY-startY, endX-startX)
	left := angle + math.Pi - arrowheadAngle
	right := angle + math.Pi + arrowheadAngle
	return [2][4]float64{
		{endX, endY, endX + arrowheadLength*math.Cos(left), endY + arrowheadLength*math.Sin(left)},
		{endX, endY, endX + arrowheadLength*math.Cos(right), endY + arrowheadLength*math.Sin(right)},
	}
}

// contentBounds returns the union of all shape bounds.
func contentBounds(shapes []document.Shape) geom.Rect {
	var bounds geom.Rect
	first := true
	for _, s := range shapes {
		b := geom.Bounds(s)
		if first {
			bounds = b
			first = false
		} else {
			bounds = bounds.Union(b)
		}
	}
	return bounds
}

// paintOrder returns the shapes sorted by zIndex ascending, ties keeping
// insertion order. The engine never keeps the list itself sorted.
func paintOrder(shapes []document.Shape) []document.Shape {
	out := make([]document.Shape, len(shapes))
	copy(out, shapes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ZIndex < out[j].ZIndex
	})
	return out
}

// parseHexColor parses "#rgb" or "#rrggbb" into 8-bit channels. Anything
// unparseable (including "transparent") reports ok=false.
func parseHexColor(s string) (r, g, b uint8, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = fmt.Sprintf("%c%c%c%c%c%c", s[0], s[0], s[1], s[1], s[2], s[2])
	case 6:
	default:
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
