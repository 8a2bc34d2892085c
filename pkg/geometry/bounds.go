package geometry

import "math"

// Bounds represents an axis-aligned bounding box
type Bounds struct {
	Min Point
	Max Point
}

// NewBounds creates an empty bounding box that any point will extend
func NewBounds() Bounds {
	return Bounds{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}
}

// Extend expands the bounding box to include a point
func (b *Bounds) Extend(point Point) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Empty reports whether no point has been added yet
func (b Bounds) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Size returns the dimensions of the bounding box
func (b Bounds) Size() Point {
	if b.Empty() {
		return Point{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b Bounds) Center() Point {
	if b.Empty() {
		return Point{}
	}
	return Point{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
	}
}
