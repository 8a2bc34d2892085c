package geometry

import "math"

// Line is a straight segment between two endpoints
type Line struct {
	A, B      Point
	Thickness float64
}

// NewLine creates a new line segment
func NewLine(a, b Point, thickness float64) Line {
	return Line{A: a, B: b, Thickness: thickness}
}

// Length returns the distance between the endpoints
func (l Line) Length() float64 {
	return l.A.Distance(l.B)
}

// SameSegment reports whether both lines join the same two points,
// regardless of direction
func (l Line) SameSegment(other Line) bool {
	return (l.A == other.A && l.B == other.B) ||
		(l.A == other.B && l.B == other.A)
}

// Circle is defined by its center and radius
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle creates a new circle
func NewCircle(center Point, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// Contains reports whether p lies inside or on the circle
func (c Circle) Contains(p Point) bool {
	return p.Distance(c.Center) <= c.Radius
}

// Extrema returns the four cardinal points: below, above, right, left
func (c Circle) Extrema() [4]Point {
	return [4]Point{
		{X: c.Center.X, Y: c.Center.Y + c.Radius},
		{X: c.Center.X, Y: c.Center.Y - c.Radius},
		{X: c.Center.X + c.Radius, Y: c.Center.Y},
		{X: c.Center.X - c.Radius, Y: c.Center.Y},
	}
}

// Ellipse is centered on Center with semi-axes Width and Height,
// rotated by Rotation radians
type Ellipse struct {
	Center   Point
	Width    float64
	Height   float64
	Rotation float64
}

// NewEllipse creates a new ellipse
func NewEllipse(center Point, width, height, rotation float64) Ellipse {
	return Ellipse{Center: center, Width: width, Height: height, Rotation: rotation}
}

// Extrema returns the ends of both axes after rotation:
// below, above, right, left in the unrotated frame
func (e Ellipse) Extrema() [4]Point {
	pts := [4]Point{
		{X: e.Center.X, Y: e.Center.Y + e.Height},
		{X: e.Center.X, Y: e.Center.Y - e.Height},
		{X: e.Center.X + e.Width, Y: e.Center.Y},
		{X: e.Center.X - e.Width, Y: e.Center.Y},
	}
	for i := range pts {
		pts[i] = pts[i].Rotate(e.Rotation, e.Center)
	}
	return pts
}

// Rectangle is anchored at its top-left corner and rotated around it
type Rectangle struct {
	Anchor   Point
	Width    float64
	Height   float64
	Rotation float64
}

// NewRectangle creates a new rectangle
func NewRectangle(anchor Point, width, height, rotation float64) Rectangle {
	return Rectangle{Anchor: anchor, Width: width, Height: height, Rotation: rotation}
}

// RectangleFromCorners returns the axis-aligned rectangle spanned by two
// opposite corners, whichever way they were given
func RectangleFromCorners(a, b Point) Rectangle {
	return Rectangle{
		Anchor: a.Min(b),
		Width:  math.Abs(b.X - a.X),
		Height: math.Abs(b.Y - a.Y),
	}
}

// Corners returns the four corners in clockwise screen order, starting at the anchor
func (r Rectangle) Corners() [4]Point {
	pts := [4]Point{
		r.Anchor,
		{X: r.Anchor.X + r.Width, Y: r.Anchor.Y},
		{X: r.Anchor.X + r.Width, Y: r.Anchor.Y + r.Height},
		{X: r.Anchor.X, Y: r.Anchor.Y + r.Height},
	}
	for i := range pts {
		pts[i] = pts[i].Rotate(r.Rotation, r.Anchor)
	}
	return pts
}

// Center returns the middle of the rectangle after rotation
func (r Rectangle) Center() Point {
	c := Point{X: r.Anchor.X + r.Width/2, Y: r.Anchor.Y + r.Height/2}
	return c.Rotate(r.Rotation, r.Anchor)
}

// Triangle is defined by three vertices
type Triangle struct {
	A, B, C Point
}

// NewTriangle creates a new triangle
func NewTriangle(a, b, c Point) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Vertices returns the three vertices in order
func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

// Area returns the unsigned area; collinear vertices give zero
func (t Triangle) Area() float64 {
	ab := t.B.Sub(t.A)
	ac := t.C.Sub(t.A)
	return math.Abs(ab.X*ac.Y-ab.Y*ac.X) / 2.0
}

// Perimeter returns the sum of the edge lengths
func (t Triangle) Perimeter() float64 {
	return t.A.Distance(t.B) + t.B.Distance(t.C) + t.C.Distance(t.A)
}
