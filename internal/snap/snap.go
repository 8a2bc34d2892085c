// Package snap finds anchor points near the pointer: creation snapping,
// endpoint picking and the coincident groups that move together while
// dragging.
package snap

import (
	"math"

	"github.com/philipparndt/gostudio/internal/element"
	"github.com/philipparndt/gostudio/pkg/geometry"
)

// ExcludeEpsilon is the distance under which a candidate counts as one of
// the excluded points
const ExcludeEpsilon = 0.01

// Endpoint locates one draggable endpoint in the store
type Endpoint struct {
	Element int
	Handle  element.Handle
	Point   geometry.Point
}

// Coincident is a group member: an endpoint and where it was when the
// drag started
type Coincident struct {
	Element  int
	Handle   element.Handle
	Original geometry.Point
}

// FindClosestAnchor returns the candidate closest to target that lies
// strictly within radius and is not within ExcludeEpsilon of any exclude
// point. Ties keep the first candidate.
func FindClosestAnchor(target geometry.Point, candidates []geometry.Point, radius float64, exclude []geometry.Point) (geometry.Point, bool) {
	return closestAnchor(target, candidates, radius, exclude, false)
}

// FindDragAnchor is FindClosestAnchor with the radius itself included,
// used while dragging endpoints
func FindDragAnchor(target geometry.Point, candidates []geometry.Point, radius float64, exclude []geometry.Point) (geometry.Point, bool) {
	return closestAnchor(target, candidates, radius, exclude, true)
}

func closestAnchor(target geometry.Point, candidates []geometry.Point, radius float64, exclude []geometry.Point, inclusive bool) (geometry.Point, bool) {
	best := math.Inf(1)
	var found geometry.Point
	ok := false

	for _, c := range candidates {
		if excluded(c, exclude) {
			continue
		}
		d := target.Distance(c)
		if !within(d, radius, inclusive) {
			continue
		}
		if d < best {
			best = d
			found = c
			ok = true
		}
	}
	return found, ok
}

func within(d, radius float64, inclusive bool) bool {
	if inclusive {
		return d <= radius
	}
	return d < radius
}

func excluded(p geometry.Point, exclude []geometry.Point) bool {
	for _, e := range exclude {
		if p.Distance(e) < ExcludeEpsilon {
			return true
		}
	}
	return false
}

// LineAnchors returns the endpoints of every line, used when placing a
// new element
func LineAnchors(elements []element.Element) []geometry.Point {
	var points []geometry.Point
	for _, e := range elements {
		if l, ok := e.Shape.(geometry.Line); ok {
			points = append(points, l.A, l.B)
		}
	}
	return points
}

// Endpoints returns every draggable endpoint in store order
func Endpoints(elements []element.Element) []Endpoint {
	var endpoints []Endpoint
	for i, e := range elements {
		for _, h := range e.Handles() {
			p, _ := e.Endpoint(h)
			endpoints = append(endpoints, Endpoint{Element: i, Handle: h, Point: p})
		}
	}
	return endpoints
}

// Points extracts the positions of the endpoints
func Points(endpoints []Endpoint) []geometry.Point {
	points := make([]geometry.Point, len(endpoints))
	for i, e := range endpoints {
		points[i] = e.Point
	}
	return points
}

// FindCoincidentPoints returns every endpoint within epsilon of target
func FindCoincidentPoints(elements []element.Element, target geometry.Point, epsilon float64) []Coincident {
	var group []Coincident
	for _, e := range Endpoints(elements) {
		if e.Point.Distance(target) < epsilon {
			group = append(group, Coincident{Element: e.Element, Handle: e.Handle, Original: e.Point})
		}
	}
	return group
}

// FindClosestEndpoint returns the endpoint closest to target within
// radius, the radius included. Ties keep the first endpoint.
func FindClosestEndpoint(elements []element.Element, target geometry.Point, radius float64) (Endpoint, bool) {
	best := math.Inf(1)
	var found Endpoint
	ok := false

	for _, e := range Endpoints(elements) {
		d := e.Point.Distance(target)
		if d > radius {
			continue
		}
		if d < best {
			best = d
			found = e
			ok = true
		}
	}
	return found, ok
}

// SnapToScreenEdge pulls a coordinate onto a viewport border line when it
// lies within threshold of it, on either side
func SnapToScreenEdge(p geometry.Point, threshold, width, height float64) geometry.Point {
	switch {
	case math.Abs(p.X) < threshold:
		p.X = 0
	case math.Abs(p.X-width) < threshold:
		p.X = width
	}
	switch {
	case math.Abs(p.Y) < threshold:
		p.Y = 0
	case math.Abs(p.Y-height) < threshold:
		p.Y = height
	}
	return p
}
