package geometry

import (
	"math"
	"testing"
)

func approxPoint(a, b Point) bool {
	return math.Abs(a.X-b.X) <= 1e-10 && math.Abs(a.Y-b.Y) <= 1e-10
}

func TestPointAdd(t *testing.T) {
	p1 := NewPoint(1, 2)
	p2 := NewPoint(4, 5)
	result := p1.Add(p2)

	expected := NewPoint(5, 7)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestPointSub(t *testing.T) {
	p1 := NewPoint(60, 55)
	p2 := NewPoint(50, 50)
	result := p1.Sub(p2)

	expected := NewPoint(10, 5)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestPointScale(t *testing.T) {
	p := NewPoint(1.5, -2)
	result := p.Scale(2)

	expected := NewPoint(3, -4)
	if result != expected {
		t.Errorf("Scale failed: expected %v, got %v", expected, result)
	}
}

func TestPointDistance(t *testing.T) {
	p1 := NewPoint(0, 0)
	p2 := NewPoint(3, 4)
	distance := p1.Distance(p2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
	if math.Abs(p2.Distance(p1)-expected) > 1e-10 {
		t.Errorf("Distance is not symmetric: got %v", p2.Distance(p1))
	}
}

func TestPointLength(t *testing.T) {
	p := NewPoint(-3, 4)

	expected := 5.0
	if math.Abs(p.Length()-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, p.Length())
	}
}

func TestPointRotate(t *testing.T) {
	p := NewPoint(2, 1)
	pivot := NewPoint(1, 1)
	result := p.Rotate(math.Pi/2, pivot)

	expected := NewPoint(1, 2)
	if !approxPoint(result, expected) {
		t.Errorf("Rotate failed: expected %v, got %v", expected, result)
	}
}

func TestPointRotateZero(t *testing.T) {
	p := NewPoint(2.5, 7.25)
	result := p.Rotate(0, NewPoint(100, 100))

	if result != p {
		t.Errorf("Rotate by zero changed the point: expected %v, got %v", p, result)
	}
}

func TestPointMinMax(t *testing.T) {
	p1 := NewPoint(1, 5)
	p2 := NewPoint(3, 2)

	if got := p1.Min(p2); got != NewPoint(1, 2) {
		t.Errorf("Min failed: expected %v, got %v", NewPoint(1, 2), got)
	}
	if got := p1.Max(p2); got != NewPoint(3, 5) {
		t.Errorf("Max failed: expected %v, got %v", NewPoint(3, 5), got)
	}
}
