// Package element holds the drawable element model shared by the editor,
// the snap engine and the renderers.
package element

import (
	"image/color"

	"github.com/philipparndt/gostudio/pkg/geometry"
)

// Kind identifies the shape carried by an element
type Kind int

const (
	Line Kind = iota
	Circle
	Ellipse
	Rectangle
	Triangle
)

// Kinds lists every kind in toolbar order
var Kinds = []Kind{Line, Circle, Ellipse, Rectangle, Triangle}

// String returns the lower-case name of the kind
func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Circle:
		return "circle"
	case Ellipse:
		return "ellipse"
	case Rectangle:
		return "rectangle"
	case Triangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// ParseKind resolves a kind from its name
func ParseKind(name string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, true
		}
	}
	return Line, false
}

// Element is a colored shape on the canvas. The kind is derived from the
// concrete shape so the two can never disagree.
type Element struct {
	Color color.RGBA
	Shape geometry.Shape
}

// New creates an element
func New(shape geometry.Shape, c color.RGBA) Element {
	return Element{Color: c, Shape: shape}
}

// Kind derives the element kind from its shape
func (e Element) Kind() Kind {
	switch e.Shape.(type) {
	case geometry.Line:
		return Line
	case geometry.Circle:
		return Circle
	case geometry.Ellipse:
		return Ellipse
	case geometry.Rectangle:
		return Rectangle
	case geometry.Triangle:
		return Triangle
	default:
		return Line
	}
}

// Handle names one endpoint of an element
type Handle int

const (
	HandleA Handle = iota
	HandleB
	HandleC
)

func (h Handle) String() string {
	switch h {
	case HandleA:
		return "a"
	case HandleB:
		return "b"
	case HandleC:
		return "c"
	default:
		return "?"
	}
}

// Handles returns the draggable endpoints of the element: both ends of a
// line and the vertices of a triangle. Other shapes have none.
func (e Element) Handles() []Handle {
	switch e.Shape.(type) {
	case geometry.Line:
		return []Handle{HandleA, HandleB}
	case geometry.Triangle:
		return []Handle{HandleA, HandleB, HandleC}
	default:
		return nil
	}
}

// Endpoint returns the position of a handle
func (e Element) Endpoint(h Handle) (geometry.Point, bool) {
	switch s := e.Shape.(type) {
	case geometry.Line:
		switch h {
		case HandleA:
			return s.A, true
		case HandleB:
			return s.B, true
		}
	case geometry.Triangle:
		switch h {
		case HandleA:
			return s.A, true
		case HandleB:
			return s.B, true
		case HandleC:
			return s.C, true
		}
	}
	return geometry.Point{}, false
}

// WithEndpoint returns a copy of the element with the handle moved to p.
// Unknown handles leave the element unchanged.
func (e Element) WithEndpoint(h Handle, p geometry.Point) Element {
	switch s := e.Shape.(type) {
	case geometry.Line:
		switch h {
		case HandleA:
			s.A = p
		case HandleB:
			s.B = p
		}
		e.Shape = s
	case geometry.Triangle:
		switch h {
		case HandleA:
			s.A = p
		case HandleB:
			s.B = p
		case HandleC:
			s.C = p
		}
		e.Shape = s
	}
	return e
}
