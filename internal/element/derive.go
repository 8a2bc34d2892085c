package element

import (
	"image/color"
	"math"

	"github.com/philipparndt/gostudio/pkg/geometry"
)

// Derive builds the element a draw gesture from anchor to end produces
// with the given tool
func Derive(tool Kind, anchor, end geometry.Point, thickness float64, c color.RGBA) Element {
	var shape geometry.Shape
	switch tool {
	case Circle:
		shape = geometry.NewCircle(anchor, anchor.Distance(end))
	case Ellipse:
		shape = geometry.NewEllipse(anchor, math.Abs(end.X-anchor.X), math.Abs(end.Y-anchor.Y), 0)
	case Rectangle:
		shape = geometry.RectangleFromCorners(anchor, end)
	case Triangle:
		// the third vertex sits above the anchor at half its height
		shape = geometry.NewTriangle(anchor, end, geometry.NewPoint(anchor.X, anchor.Y*0.5))
	default:
		shape = geometry.NewLine(anchor, end, thickness)
	}
	return New(shape, c)
}
