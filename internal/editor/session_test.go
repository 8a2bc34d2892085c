package editor

import (
	"image/color"
	"testing"

	"github.com/philipparndt/gostudio/internal/element"
	"github.com/philipparndt/gostudio/pkg/geometry"
)

func newDrawingSession(tool element.Kind) *Session {
	s := NewSession(DefaultSettings())
	s.SetViewport(800, 600)
	s.SelectTool(tool)
	s.SetDrawActive(true)
	return s
}

func gesture(s *Session, from, to geometry.Point) {
	s.PointerDown(from)
	s.PointerMove(to)
	s.PointerUp(to)
}

func TestDrawLineUndoRedo(t *testing.T) {
	s := newDrawingSession(element.Line)
	gesture(s, geometry.NewPoint(0, 0), geometry.NewPoint(100, 0))

	if s.Len() != 1 {
		t.Fatalf("expected 1 element, got %d", s.Len())
	}
	if undo, _ := s.HistoryDepth(); undo != 1 {
		t.Errorf("expected undo depth 1, got %d", undo)
	}
	original := s.Elements()[0]

	if !s.Undo() {
		t.Fatalf("expected undo to succeed")
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store after undo, got %d", s.Len())
	}
	if _, redo := s.HistoryDepth(); redo != 1 {
		t.Errorf("expected redo depth 1, got %d", redo)
	}

	if !s.Redo() {
		t.Fatalf("expected redo to succeed")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 element after redo, got %d", s.Len())
	}
	l := s.Elements()[0].Shape.(geometry.Line)
	if l.A != geometry.NewPoint(0, 0) || l.B != geometry.NewPoint(100, 0) {
		t.Errorf("expected line (0,0)-(100,0), got %v-%v", l.A, l.B)
	}
	if s.Elements()[0] != original {
		t.Errorf("redo did not restore the exact element")
	}
}

func TestShortLineRejected(t *testing.T) {
	s := newDrawingSession(element.Line)
	gesture(s, geometry.NewPoint(0, 0), geometry.NewPoint(20, 0))

	if s.Len() != 0 {
		t.Errorf("expected line of exactly the threshold to be discarded, got %d elements", s.Len())
	}
	if s.CanUndo() {
		t.Errorf("expected no checkpoint for a discarded gesture")
	}
	if _, idle := s.Mode().(Idle); !idle {
		t.Errorf("expected idle after pointer-up, got %v", s.Mode())
	}
}

func TestShortCircleThreshold(t *testing.T) {
	s := newDrawingSession(element.Circle)
	gesture(s, geometry.NewPoint(100, 100), geometry.NewPoint(109, 100))
	if s.Len() != 0 {
		t.Errorf("expected short circle to be discarded")
	}

	gesture(s, geometry.NewPoint(100, 100), geometry.NewPoint(115, 100))
	if s.Len() != 1 {
		t.Fatalf("expected circle above the minimum to be created, got %d", s.Len())
	}
	c := s.Elements()[0].Shape.(geometry.Circle)
	if c.Radius != 15 {
		t.Errorf("expected radius 15, got %v", c.Radius)
	}
}

func TestCreationSnapsToLineEndpoint(t *testing.T) {
	s := newDrawingSession(element.Line)
	gesture(s, geometry.NewPoint(0, 0), geometry.NewPoint(100, 0))
	gesture(s, geometry.NewPoint(200, 200), geometry.NewPoint(106, 3))

	if s.Len() != 2 {
		t.Fatalf("expected 2 elements, got %d", s.Len())
	}
	l := s.Elements()[1].Shape.(geometry.Line)
	if l.B != geometry.NewPoint(100, 0) {
		t.Errorf("expected end to snap to (100,0), got %v", l.B)
	}
}

func TestCircleBodyDrag(t *testing.T) {
	s := NewSession(DefaultSettings())
	s.SetViewport(800, 600)
	s.Add(element.New(geometry.NewCircle(geometry.NewPoint(50, 50), 20), color.RGBA{A: 255}))

	s.PointerDown(geometry.NewPoint(50, 50))
	if _, ok := s.Mode().(DraggingShape); !ok {
		t.Fatalf("expected shape drag, got %v", s.Mode())
	}
	s.PointerMove(geometry.NewPoint(60, 55))
	s.PointerUp(geometry.NewPoint(60, 55))

	c := s.Elements()[0].Shape.(geometry.Circle)
	if c.Center != geometry.NewPoint(60, 55) {
		t.Errorf("expected center (60,55), got %v", c.Center)
	}
	if c.Radius != 20 {
		t.Errorf("expected radius unchanged, got %v", c.Radius)
	}

	s.Undo()
	c = s.Elements()[0].Shape.(geometry.Circle)
	if c.Center != geometry.NewPoint(50, 50) {
		t.Errorf("expected circle drag to be undoable, got %v", c.Center)
	}
}

func TestCircleClickWithoutMoveDoesNotCheckpoint(t *testing.T) {
	s := NewSession(DefaultSettings())
	s.Add(element.New(geometry.NewCircle(geometry.NewPoint(50, 50), 20), color.RGBA{A: 255}))

	s.PointerDown(geometry.NewPoint(55, 50))
	s.PointerMove(geometry.NewPoint(55, 50))
	s.PointerUp(geometry.NewPoint(55, 50))

	if undo, _ := s.HistoryDepth(); undo != 1 {
		t.Errorf("expected only the add checkpoint, got depth %d", undo)
	}
}

func TestCoincidentDragMovesTogether(t *testing.T) {
	s := newDrawingSession(element.Line)
	gesture(s, geometry.NewPoint(100, 100), geometry.NewPoint(200, 200))
	// ends on the first line's endpoint through creation snap
	s.SetDrawActive(true)
	gesture(s, geometry.NewPoint(300, 100), geometry.NewPoint(201, 201))

	elements := s.Elements()
	if elements[1].Shape.(geometry.Line).B != geometry.NewPoint(200, 200) {
		t.Fatalf("expected second line to end on the shared point")
	}

	s.SetDrawActive(false)
	s.PointerDown(geometry.NewPoint(200, 200))
	dp, ok := s.Mode().(DraggingPoint)
	if !ok {
		t.Fatalf("expected point drag, got %v", s.Mode())
	}
	if len(dp.Group) != 2 {
		t.Fatalf("expected both endpoints in the group, got %d", len(dp.Group))
	}

	s.PointerMove(geometry.NewPoint(203, 201))
	s.PointerMove(geometry.NewPoint(250, 260))
	s.PointerUp(geometry.NewPoint(250, 260))

	elements = s.Elements()
	b0 := elements[0].Shape.(geometry.Line).B
	b1 := elements[1].Shape.(geometry.Line).B
	if b0 != geometry.NewPoint(250, 260) || b1 != geometry.NewPoint(250, 260) {
		t.Errorf("expected both endpoints at (250,260), got %v and %v", b0, b1)
	}
}

func TestPointDragSnapsToOtherEndpoint(t *testing.T) {
	s := NewSession(DefaultSettings())
	s.SetViewport(800, 600)
	s.Add(element.New(geometry.NewLine(geometry.NewPoint(100, 100), geometry.NewPoint(200, 100), 1), color.RGBA{A: 255}))
	s.Add(element.New(geometry.NewLine(geometry.NewPoint(100, 300), geometry.NewPoint(300, 300), 1), color.RGBA{A: 255}))

	s.PointerDown(geometry.NewPoint(200, 100))
	s.PointerMove(geometry.NewPoint(296, 296))
	s.PointerUp(geometry.NewPoint(296, 296))

	b := s.Elements()[0].Shape.(geometry.Line).B
	if b != geometry.NewPoint(300, 300) {
		t.Errorf("expected endpoint to snap onto (300,300), got %v", b)
	}

	undo, _ := s.HistoryDepth()
	if undo != 3 {
		t.Errorf("expected point drag to checkpoint, got depth %d", undo)
	}
}

func TestPointDragSnapThenEdge(t *testing.T) {
	s := NewSession(DefaultSettings())
	s.SetViewport(800, 600)
	s.Add(element.New(geometry.NewLine(geometry.NewPoint(3, 300), geometry.NewPoint(200, 300), 1), color.RGBA{A: 255}))
	s.Add(element.New(geometry.NewLine(geometry.NewPoint(400, 400), geometry.NewPoint(500, 400), 1), color.RGBA{A: 255}))

	s.PointerDown(geometry.NewPoint(400, 400))
	s.PointerMove(geometry.NewPoint(8, 302))

	a := s.Elements()[1].Shape.(geometry.Line).A
	if a != geometry.NewPoint(0, 300) {
		t.Errorf("expected snapped point to be pulled onto the left edge, got %v", a)
	}

	s.PointerMove(geometry.NewPoint(4, 150))
	a = s.Elements()[1].Shape.(geometry.Line).A
	if a != geometry.NewPoint(4, 150) {
		t.Errorf("expected no edge snap without a point snap, got %v", a)
	}
}

func TestPointDragSnapsToOffscreenEndpoint(t *testing.T) {
	s := NewSession(DefaultSettings())
	s.SetViewport(800, 600)
	s.Add(element.New(geometry.NewLine(geometry.NewPoint(-40, 300), geometry.NewPoint(200, 300), 1), color.RGBA{A: 255}))
	s.Add(element.New(geometry.NewLine(geometry.NewPoint(400, 400), geometry.NewPoint(500, 400), 1), color.RGBA{A: 255}))

	s.PointerDown(geometry.NewPoint(400, 400))
	s.PointerMove(geometry.NewPoint(-36, 303))
	s.PointerUp(geometry.NewPoint(-36, 303))

	a := s.Elements()[1].Shape.(geometry.Line).A
	if a != geometry.NewPoint(-40, 300) {
		t.Errorf("expected endpoint to join the off-screen point (-40,300), got %v", a)
	}
}

func TestPointPickAtExactRadius(t *testing.T) {
	s := newDrawingSession(element.Line)
	s.Add(element.New(geometry.NewLine(geometry.NewPoint(100, 100), geometry.NewPoint(300, 100), 1), color.RGBA{A: 255}))

	s.PointerDown(geometry.NewPoint(103, 104))
	m, ok := s.Mode().(DraggingPoint)
	if !ok {
		t.Fatalf("expected a point drag at exactly the pick radius, got %v", s.Mode())
	}
	if m.Element != 0 || m.Handle != element.HandleA {
		t.Errorf("expected element 0 handle a, got %d %v", m.Element, m.Handle)
	}
}

func TestPointDragSnapAtExactRadius(t *testing.T) {
	s := NewSession(DefaultSettings())
	s.SetViewport(800, 600)
	s.Add(element.New(geometry.NewLine(geometry.NewPoint(100, 100), geometry.NewPoint(200, 100), 1), color.RGBA{A: 255}))
	s.Add(element.New(geometry.NewLine(geometry.NewPoint(100, 300), geometry.NewPoint(300, 300), 1), color.RGBA{A: 255}))

	s.PointerDown(geometry.NewPoint(200, 100))
	s.PointerMove(geometry.NewPoint(294, 292))

	b := s.Elements()[0].Shape.(geometry.Line).B
	if b != geometry.NewPoint(300, 300) {
		t.Errorf("expected endpoint at exactly the snap radius to snap onto (300,300), got %v", b)
	}
}

func TestSelectToolToggles(t *testing.T) {
	s := NewSession(DefaultSettings())

	s.SelectTool(element.Circle)
	if s.Tool() != element.Circle || !s.DrawActive() {
		t.Fatalf("expected circle tool with draw on")
	}
	s.SelectTool(element.Circle)
	if s.DrawActive() {
		t.Errorf("expected reselecting the tool to turn draw off")
	}
	s.SelectTool(element.Circle)
	if !s.DrawActive() {
		t.Errorf("expected reselecting again to turn draw on")
	}
	s.SelectTool(element.Rectangle)
	if s.Tool() != element.Rectangle || !s.DrawActive() {
		t.Errorf("expected rectangle tool with draw on")
	}
}

func TestCycleGrid(t *testing.T) {
	s := NewSession(DefaultSettings())
	expected := []int{1, 2, 3, 0, 1}

	for _, e := range expected {
		s.CycleGrid()
		if s.GridLevel() != e {
			t.Errorf("CycleGrid failed: expected %d, got %d", e, s.GridLevel())
		}
	}
}

func TestClearIsUndoable(t *testing.T) {
	s := newDrawingSession(element.Line)
	s.Clear()
	if s.CanUndo() {
		t.Errorf("expected clearing an empty store to do nothing")
	}

	gesture(s, geometry.NewPoint(0, 0), geometry.NewPoint(100, 0))
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("expected empty store after clear")
	}
	s.Undo()
	if s.Len() != 1 {
		t.Errorf("expected clear to be undoable, got %d elements", s.Len())
	}
}

func TestUndoIgnoredDuringGesture(t *testing.T) {
	s := newDrawingSession(element.Line)
	gesture(s, geometry.NewPoint(0, 0), geometry.NewPoint(100, 0))

	s.PointerDown(geometry.NewPoint(300, 300))
	if s.Undo() {
		t.Errorf("expected undo to be ignored while drawing")
	}
	s.PointerUp(geometry.NewPoint(400, 300))

	if s.Len() != 2 {
		t.Errorf("expected both lines, got %d", s.Len())
	}
}

func TestApplySettings(t *testing.T) {
	s := NewSession(DefaultSettings())
	settings := DefaultSettings()
	settings.Tool = element.Triangle
	settings.LineThickness = 5
	settings.HistoryLimit = 1

	s.ApplySettings(settings)
	if s.Tool() != element.Triangle || s.Thickness() != 5 {
		t.Errorf("expected tool and thickness to follow settings, got %v %v", s.Tool(), s.Thickness())
	}

	s.Add(element.New(geometry.NewCircle(geometry.NewPoint(0, 0), 1), color.RGBA{}))
	s.Add(element.New(geometry.NewCircle(geometry.NewPoint(0, 0), 2), color.RGBA{}))
	if undo, _ := s.HistoryDepth(); undo != 1 {
		t.Errorf("expected history limit 1, got depth %d", undo)
	}
}

func TestApplySettingsKeepsSessionChoices(t *testing.T) {
	s := NewSession(DefaultSettings())
	s.SelectTool(element.Circle)
	s.SetThickness(7)
	s.SetColor(color.RGBA{R: 255, A: 255})

	settings := DefaultSettings()
	settings.SnapRadius = 20
	s.ApplySettings(settings)

	if s.Tool() != element.Circle {
		t.Errorf("expected tool to stay circle, got %v", s.Tool())
	}
	if s.Thickness() != 7 {
		t.Errorf("expected thickness to stay 7, got %v", s.Thickness())
	}
	if s.Color() != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("expected color to stay red, got %v", s.Color())
	}
	if s.Settings().SnapRadius != 20 {
		t.Errorf("expected snap radius 20, got %v", s.Settings().SnapRadius)
	}

	settings.LineThickness = 3
	s.ApplySettings(settings)
	if s.Thickness() != 3 || s.Tool() != element.Circle {
		t.Errorf("expected only thickness to follow the changed default, got %v %v", s.Thickness(), s.Tool())
	}
}

func TestGridSpacing(t *testing.T) {
	expected := []float64{0, 100, 50, 25}
	for level, e := range expected {
		if got := GridSpacing(level); got != e {
			t.Errorf("GridSpacing(%d) failed: expected %v, got %v", level, e, got)
		}
	}
	if GridSpacing(GridLevels) != 0 {
		t.Errorf("expected out of range level to have no grid")
	}
}
