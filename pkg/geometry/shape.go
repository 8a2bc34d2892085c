package geometry

// Shape is implemented only by the value types in this package:
// Line, Circle, Ellipse, Rectangle and Triangle
type Shape interface {
	// FeaturePoints returns the points a pointer can be near to pick
	// or align with the shape
	FeaturePoints() []Point
	// Bounds returns the axis-aligned box around the feature points
	Bounds() Bounds
	shape()
}

func (Line) shape()      {}
func (Circle) shape()    {}
func (Ellipse) shape()   {}
func (Rectangle) shape() {}
func (Triangle) shape()  {}

// FeaturePoints returns both endpoints
func (l Line) FeaturePoints() []Point {
	return []Point{l.A, l.B}
}

// FeaturePoints returns the center followed by the cardinal extrema
func (c Circle) FeaturePoints() []Point {
	ext := c.Extrema()
	return append([]Point{c.Center}, ext[:]...)
}

// FeaturePoints returns the center followed by the axis ends
func (e Ellipse) FeaturePoints() []Point {
	ext := e.Extrema()
	return append([]Point{e.Center}, ext[:]...)
}

// FeaturePoints returns the center followed by the corners
func (r Rectangle) FeaturePoints() []Point {
	corners := r.Corners()
	return append([]Point{r.Center()}, corners[:]...)
}

// FeaturePoints returns the vertices
func (t Triangle) FeaturePoints() []Point {
	v := t.Vertices()
	return v[:]
}

func (l Line) Bounds() Bounds      { return boundsOf(l.FeaturePoints()) }
func (c Circle) Bounds() Bounds    { return boundsOf(c.FeaturePoints()) }
func (e Ellipse) Bounds() Bounds   { return boundsOf(e.FeaturePoints()) }
func (r Rectangle) Bounds() Bounds { return boundsOf(r.FeaturePoints()) }
func (t Triangle) Bounds() Bounds  { return boundsOf(t.FeaturePoints()) }

func boundsOf(points []Point) Bounds {
	b := NewBounds()
	for _, p := range points {
		b.Extend(p)
	}
	return b
}
