package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point represents a 2D coordinate in screen space
type Point struct {
	X, Y float64
}

// NewPoint creates a new 2D point
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Vec converts the point to a gonum vector
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// FromVec converts a gonum vector to a point
func FromVec(v r2.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}

// Add returns the sum of two points
func (p Point) Add(other Point) Point {
	return FromVec(r2.Add(p.Vec(), other.Vec()))
}

// Sub returns the difference between two points
func (p Point) Sub(other Point) Point {
	return FromVec(r2.Sub(p.Vec(), other.Vec()))
}

// Scale multiplies both components by a scalar
func (p Point) Scale(f float64) Point {
	return FromVec(r2.Scale(f, p.Vec()))
}

// Length returns the magnitude of the point taken as a vector
func (p Point) Length() float64 {
	return r2.Norm(p.Vec())
}

// Distance returns the Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	return r2.Norm(r2.Sub(p.Vec(), other.Vec()))
}

// Rotate returns the point rotated by angle radians around pivot
func (p Point) Rotate(angle float64, pivot Point) Point {
	if angle == 0 {
		return p
	}
	return FromVec(r2.Rotate(p.Vec(), angle, pivot.Vec()))
}

// Min returns a point with the minimum components of two points
func (p Point) Min(other Point) Point {
	return Point{
		X: math.Min(p.X, other.X),
		Y: math.Min(p.Y, other.Y),
	}
}

// Max returns a point with the maximum components of two points
func (p Point) Max(other Point) Point {
	return Point{
		X: math.Max(p.X, other.X),
		Y: math.Max(p.Y, other.Y),
	}
}
