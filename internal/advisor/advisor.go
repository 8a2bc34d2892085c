// Package advisor answers per-frame hover questions: which elements the
// pointer is close to and which alignment guides to show. It never
// mutates the elements it is given.
package advisor

import (
	"math"

	"github.com/philipparndt/gostudio/internal/element"
	"github.com/philipparndt/gostudio/pkg/geometry"
)

// DefaultRadius is the highlight and alignment distance in pixels
const DefaultRadius = 10.0

// Options configures a query
type Options struct {
	Radius      float64
	SnapEnabled bool
	Width       float64
	Height      float64
}

// Orientation of a guide line
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Guide is a full-canvas alignment line through a feature point
type Guide struct {
	Orientation Orientation
	Position    float64 // x for vertical guides, y for horizontal ones
	From, To    geometry.Point
}

// Highlight marks an element the pointer is near and where to draw the
// highlight rings
type Highlight struct {
	Element int
	Points  []geometry.Point
}

// Result is the advice for one frame
type Result struct {
	Highlights []Highlight
	Guides     []Guide
}

// Highlighted reports whether the element at index i is highlighted
func (r Result) Highlighted(i int) bool {
	for _, h := range r.Highlights {
		if h.Element == i {
			return true
		}
	}
	return false
}

// Advise computes highlights and guides for the pointer position
func Advise(pointer geometry.Point, elements []element.Element, opts Options) Result {
	var result Result
	if len(elements) == 0 {
		return result
	}

	radius := opts.Radius
	if radius <= 0 {
		radius = DefaultRadius
	}

	type guideKey struct {
		o   Orientation
		pos float64
	}
	seen := make(map[guideKey]bool)

	for i, e := range elements {
		features := e.Shape.FeaturePoints()

		for _, p := range features {
			if pointer.Distance(p) <= radius {
				result.Highlights = append(result.Highlights, Highlight{Element: i, Points: ringPoints(e.Shape)})
				break
			}
		}

		if !opts.SnapEnabled {
			continue
		}
		for _, p := range features {
			if math.Abs(pointer.X-p.X) < radius && !seen[guideKey{Vertical, p.X}] {
				seen[guideKey{Vertical, p.X}] = true
				result.Guides = append(result.Guides, Guide{
					Orientation: Vertical,
					Position:    p.X,
					From:        geometry.NewPoint(p.X, 0),
					To:          geometry.NewPoint(p.X, opts.Height),
				})
			}
			if math.Abs(pointer.Y-p.Y) < radius && !seen[guideKey{Horizontal, p.Y}] {
				seen[guideKey{Horizontal, p.Y}] = true
				result.Guides = append(result.Guides, Guide{
					Orientation: Horizontal,
					Position:    p.Y,
					From:        geometry.NewPoint(0, p.Y),
					To:          geometry.NewPoint(opts.Width, p.Y),
				})
			}
		}
	}

	return result
}

// ringPoints returns where highlight rings are drawn for a shape: every
// endpoint of lines and triangles, the center of everything else
func ringPoints(s geometry.Shape) []geometry.Point {
	switch v := s.(type) {
	case geometry.Line:
		return []geometry.Point{v.A, v.B}
	case geometry.Triangle:
		vs := v.Vertices()
		return vs[:]
	case geometry.Circle:
		return []geometry.Point{v.Center}
	case geometry.Ellipse:
		return []geometry.Point{v.Center}
	case geometry.Rectangle:
		return []geometry.Point{v.Center()}
	default:
		return nil
	}
}
