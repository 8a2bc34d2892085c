package geometry

import (
	"math"
	"testing"
)

func TestLineLength(t *testing.T) {
	l := NewLine(NewPoint(0, 0), NewPoint(100, 0), 2)

	expected := 100.0
	if math.Abs(l.Length()-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, l.Length())
	}
}

func TestLineSameSegment(t *testing.T) {
	l1 := NewLine(NewPoint(0, 0), NewPoint(10, 10), 1)
	l2 := NewLine(NewPoint(10, 10), NewPoint(0, 0), 3)
	l3 := NewLine(NewPoint(0, 0), NewPoint(10, 11), 1)

	if !l1.SameSegment(l2) {
		t.Errorf("expected reversed line to be the same segment")
	}
	if l1.SameSegment(l3) {
		t.Errorf("expected different lines not to be the same segment")
	}
}

func TestCircleContains(t *testing.T) {
	c := NewCircle(NewPoint(50, 50), 20)

	if !c.Contains(NewPoint(55, 55)) {
		t.Errorf("expected interior point to be contained")
	}
	if !c.Contains(NewPoint(70, 50)) {
		t.Errorf("expected boundary point to be contained")
	}
	if c.Contains(NewPoint(71, 50)) {
		t.Errorf("expected exterior point not to be contained")
	}
}

func TestCircleExtrema(t *testing.T) {
	c := NewCircle(NewPoint(10, 20), 5)
	ext := c.Extrema()

	expected := [4]Point{
		NewPoint(10, 25),
		NewPoint(10, 15),
		NewPoint(15, 20),
		NewPoint(5, 20),
	}
	if ext != expected {
		t.Errorf("Extrema failed: expected %v, got %v", expected, ext)
	}
}

func TestCircleZeroRadius(t *testing.T) {
	c := NewCircle(NewPoint(3, 4), 0)
	for i, p := range c.Extrema() {
		if p != c.Center {
			t.Errorf("extremum %d: expected %v, got %v", i, c.Center, p)
		}
	}
	if !c.Contains(NewPoint(3, 4)) {
		t.Errorf("expected zero circle to contain its center")
	}
}

func TestEllipseExtremaRotated(t *testing.T) {
	e := NewEllipse(NewPoint(0, 0), 4, 2, math.Pi/2)
	ext := e.Extrema()

	expected := [4]Point{
		NewPoint(-2, 0),
		NewPoint(2, 0),
		NewPoint(0, 4),
		NewPoint(0, -4),
	}
	for i := range expected {
		if !approxPoint(ext[i], expected[i]) {
			t.Errorf("extremum %d: expected %v, got %v", i, expected[i], ext[i])
		}
	}
}

func TestRectangleCorners(t *testing.T) {
	r := NewRectangle(NewPoint(10, 10), 20, 10, 0)
	corners := r.Corners()

	expected := [4]Point{
		NewPoint(10, 10),
		NewPoint(30, 10),
		NewPoint(30, 20),
		NewPoint(10, 20),
	}
	if corners != expected {
		t.Errorf("Corners failed: expected %v, got %v", expected, corners)
	}

	center := r.Center()
	if center != NewPoint(20, 15) {
		t.Errorf("Center failed: expected %v, got %v", NewPoint(20, 15), center)
	}
}

func TestRectangleRotatesAroundAnchor(t *testing.T) {
	r := NewRectangle(NewPoint(0, 0), 10, 4, math.Pi/2)
	corners := r.Corners()

	if corners[0] != NewPoint(0, 0) {
		t.Errorf("anchor moved: got %v", corners[0])
	}
	if !approxPoint(corners[1], NewPoint(0, 10)) {
		t.Errorf("corner 1: expected %v, got %v", NewPoint(0, 10), corners[1])
	}
	if !approxPoint(r.Center(), NewPoint(-2, 5)) {
		t.Errorf("Center failed: expected %v, got %v", NewPoint(-2, 5), r.Center())
	}
}

func TestRectangleFromCorners(t *testing.T) {
	r := RectangleFromCorners(NewPoint(30, 5), NewPoint(10, 25))

	expected := NewRectangle(NewPoint(10, 5), 20, 20, 0)
	if r != expected {
		t.Errorf("RectangleFromCorners failed: expected %v, got %v", expected, r)
	}
}

func TestTriangleArea(t *testing.T) {
	tri := NewTriangle(NewPoint(0, 0), NewPoint(4, 0), NewPoint(0, 3))

	if math.Abs(tri.Area()-6.0) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", 6.0, tri.Area())
	}
	if math.Abs(tri.Perimeter()-12.0) > 1e-10 {
		t.Errorf("Perimeter failed: expected %v, got %v", 12.0, tri.Perimeter())
	}
	if tri.Vertices() != [3]Point{tri.A, tri.B, tri.C} {
		t.Errorf("Vertices out of order: got %v", tri.Vertices())
	}
}

func TestTriangleDegenerate(t *testing.T) {
	tri := NewTriangle(NewPoint(0, 0), NewPoint(1, 1), NewPoint(2, 2))

	if tri.Area() != 0 {
		t.Errorf("expected zero area for collinear vertices, got %v", tri.Area())
	}
}

func TestShapeFeaturePoints(t *testing.T) {
	var shapes = []Shape{
		NewLine(NewPoint(0, 0), NewPoint(1, 1), 1),
		NewCircle(NewPoint(0, 0), 1),
		NewEllipse(NewPoint(0, 0), 2, 1, 0),
		NewRectangle(NewPoint(0, 0), 2, 1, 0),
		NewTriangle(NewPoint(0, 0), NewPoint(1, 0), NewPoint(0, 1)),
	}
	expected := []int{2, 5, 5, 5, 3}

	for i, s := range shapes {
		if got := len(s.FeaturePoints()); got != expected[i] {
			t.Errorf("shape %d: expected %d feature points, got %d", i, expected[i], got)
		}
	}
}

func TestCircleBounds(t *testing.T) {
	b := NewCircle(NewPoint(50, 50), 20).Bounds()

	if b.Min != NewPoint(30, 30) || b.Max != NewPoint(70, 70) {
		t.Errorf("Bounds failed: expected (30,30)-(70,70), got %v-%v", b.Min, b.Max)
	}
}
