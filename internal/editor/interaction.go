package editor

import (
	"github.com/philipparndt/gostudio/internal/element"
	"github.com/philipparndt/gostudio/internal/snap"
	"github.com/philipparndt/gostudio/pkg/geometry"
)

// PointerDown starts a gesture. An endpoint under the pointer is grabbed
// first; otherwise draw mode starts a new element; otherwise a circle
// under the pointer is grabbed by its body.
func (s *Session) PointerDown(p geometry.Point) {
	s.pointer = p
	if _, idle := s.mode.(Idle); !idle {
		return
	}

	if ep, ok := snap.FindClosestEndpoint(s.elements, p, s.settings.PickRadius); ok {
		s.checkpoint("drag point")
		group := snap.FindCoincidentPoints(s.elements, ep.Point, s.settings.CoincidentEpsilon)
		s.mode = DraggingPoint{
			Element:    ep.Element,
			Handle:     ep.Handle,
			DragAnchor: p,
			Group:      group,
		}
		Logger().Debug("drag point", "element", ep.Element, "handle", ep.Handle.String(), "group", len(group))
		return
	}

	if s.drawActive {
		anchor, _ := s.creationSnap(p)
		s.mode = Drawing{Anchor: anchor}
		Logger().Debug("drawing", "tool", s.tool.String(), "anchor", anchor)
		return
	}

	for i, e := range s.elements {
		if c, ok := e.Shape.(geometry.Circle); ok && c.Contains(p) {
			s.mode = DraggingShape{Element: i, Offset: p.Sub(c.Center)}
			Logger().Debug("drag shape", "element", i)
			return
		}
	}
}

// PointerMove updates the active gesture while the pointer is held
func (s *Session) PointerMove(p geometry.Point) {
	s.pointer = p

	switch m := s.mode.(type) {
	case DraggingPoint:
		s.movePointGroup(m, p)
	case DraggingShape:
		c, ok := s.elements[m.Element].Shape.(geometry.Circle)
		if !ok {
			return
		}
		center := p.Sub(m.Offset)
		if center == c.Center {
			return
		}
		if !m.moved {
			s.checkpoint("drag shape")
			m.moved = true
			s.mode = m
		}
		c.Center = center
		s.elements[m.Element].Shape = c
	}
}

// PointerUp finishes the active gesture. A drawing gesture that exceeds
// the minimum length for its tool adds one element; shorter ones are
// discarded without a checkpoint.
func (s *Session) PointerUp(p geometry.Point) {
	s.pointer = p

	if m, ok := s.mode.(Drawing); ok {
		end, _ := s.creationSnap(p)
		if m.Anchor.Distance(end) > s.settings.MinLength(s.tool) {
			s.checkpoint("create")
			s.elements = append(s.elements, s.derive(m.Anchor, end))
			Logger().Debug("created", "kind", s.tool.String(), "elements", len(s.elements))
		} else {
			Logger().Debug("discarded short gesture", "kind", s.tool.String())
		}
	}

	s.mode = Idle{}
}

// movePointGroup moves every member of the drag group by the pointer delta,
// snapping each onto other endpoints but never onto where the group
// started or onto another member
func (s *Session) movePointGroup(m DraggingPoint, p geometry.Point) {
	delta := p.Sub(m.DragAnchor)

	exclude := make([]geometry.Point, len(m.Group))
	for i, member := range m.Group {
		exclude[i] = member.Original
	}

	var candidates []geometry.Point
	for _, ep := range snap.Endpoints(s.elements) {
		if !inGroup(m.Group, ep) {
			candidates = append(candidates, ep.Point)
		}
	}

	for _, member := range m.Group {
		pos := member.Original.Add(delta)
		if target, ok := snap.FindDragAnchor(pos, candidates, s.settings.SnapRadius, exclude); ok {
			pos = snap.SnapToScreenEdge(target, s.settings.EdgeThreshold, s.width, s.height)
		}
		s.elements[member.Element] = s.elements[member.Element].WithEndpoint(member.Handle, pos)
	}
}

func inGroup(group []snap.Coincident, ep snap.Endpoint) bool {
	for _, member := range group {
		if member.Element == ep.Element && member.Handle == ep.Handle {
			return true
		}
	}
	return false
}

// creationSnap resolves a pointer to the nearest line endpoint, if any
func (s *Session) creationSnap(p geometry.Point) (geometry.Point, bool) {
	if target, ok := snap.FindClosestAnchor(p, snap.LineAnchors(s.elements), s.settings.SnapRadius, nil); ok {
		return target, true
	}
	return p, false
}

func (s *Session) derive(anchor, end geometry.Point) element.Element {
	return element.Derive(s.tool, anchor, end, s.thickness, s.color)
}
