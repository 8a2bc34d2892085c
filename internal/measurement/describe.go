package measurement

import (
	"fmt"
	"math"

	"github.com/philipparndt/gostudio/internal/element"
	"github.com/philipparndt/gostudio/pkg/geometry"
)

// labelGap keeps labels clear of the element they describe
const labelGap = 6

// Describe returns a short dimension readout for an element
func Describe(e element.Element) string {
	switch s := e.Shape.(type) {
	case geometry.Line:
		return fmt.Sprintf("%.1f px", s.Length())
	case geometry.Circle:
		return fmt.Sprintf("r %.1f", s.Radius)
	case geometry.Ellipse:
		return fmt.Sprintf("%.1f × %.1f", 2*s.Width, 2*s.Height)
	case geometry.Rectangle:
		text := fmt.Sprintf("%.1f × %.1f", s.Width, s.Height)
		if s.Rotation != 0 {
			text += fmt.Sprintf(" @ %.0f°", s.Rotation*180/math.Pi)
		}
		return text
	case geometry.Triangle:
		return fmt.Sprintf("area %.1f", s.Area())
	}
	return ""
}

// Anchor returns where an element's label sits: the midpoint of a line,
// otherwise centered just above the element's bounds
func Anchor(e element.Element) geometry.Point {
	if l, ok := e.Shape.(geometry.Line); ok {
		return l.A.Add(l.B).Scale(0.5).Sub(geometry.NewPoint(0, labelGap))
	}
	b := e.Shape.Bounds()
	return geometry.NewPoint(b.Center().X, b.Min.Y-labelGap)
}
