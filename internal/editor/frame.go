package editor

import (
	"image/color"

	"github.com/philipparndt/gostudio/internal/advisor"
	"github.com/philipparndt/gostudio/internal/element"
	"github.com/philipparndt/gostudio/internal/export"
	"github.com/philipparndt/gostudio/pkg/geometry"
)

// Input is everything a front end reports for one frame
type Input struct {
	Pointer  geometry.Point
	Pressed  bool // button went down this frame
	Down     bool // button is held
	Released bool // button went up this frame

	Width, Height float64

	Undo         bool
	Redo         bool
	ToggleSnap   bool
	CycleGrid    bool
	TogglePoints bool
	Clear        bool
	Export       bool

	SelectTool bool
	Tool       element.Kind

	SetDraw bool
	Draw    bool

	Thickness float64 // applied when positive
	SetColor  bool
	Color     color.RGBA
}

// Frame is what a renderer needs to draw one frame
type Frame struct {
	Elements []element.Element

	// Preview is the element the current drawing gesture would create
	Preview    element.Element
	HasPreview bool

	// SnapPreview is the creation snap target under the pointer
	SnapPreview    geometry.Point
	HasSnapPreview bool

	Advice advisor.Result

	Mode        Mode
	Tool        element.Kind
	DrawActive  bool
	SnapEnabled bool
	ShowPoints  bool
	GridLevel   int
	CanUndo     bool
	CanRedo     bool

	Pointer       geometry.Point
	Width, Height float64

	// Export holds the deduplicated lines when Exported is set
	Export   []geometry.Line
	Exported bool
}

// Step applies one frame of input and returns what to draw. Toggles are
// applied first, then undo and redo, then clear, then pointer down, move
// and up in that order.
func (s *Session) Step(in Input) Frame {
	s.SetViewport(in.Width, in.Height)

	if in.SelectTool {
		s.SelectTool(in.Tool)
	}
	if in.SetDraw {
		s.SetDrawActive(in.Draw)
	}
	if in.ToggleSnap {
		s.ToggleSnap()
	}
	if in.CycleGrid {
		s.CycleGrid()
	}
	if in.TogglePoints {
		s.ToggleShowPoints()
	}
	if in.Thickness > 0 {
		s.SetThickness(in.Thickness)
	}
	if in.SetColor {
		s.SetColor(in.Color)
	}

	if in.Undo {
		s.Undo()
	}
	if in.Redo {
		s.Redo()
	}
	if in.Clear {
		s.Clear()
	}

	if in.Pressed {
		s.PointerDown(in.Pointer)
	}
	if in.Pressed || in.Down {
		s.PointerMove(in.Pointer)
	} else {
		s.pointer = in.Pointer
	}
	if in.Released {
		s.PointerUp(in.Pointer)
	}

	frame := s.Frame()
	if in.Export {
		frame.Export = export.UniqueLines(s.elements)
		frame.Exported = true
	}
	return frame
}

// Frame describes the current state without applying any input
func (s *Session) Frame() Frame {
	frame := Frame{
		Elements:    s.Elements(),
		Mode:        s.mode,
		Tool:        s.tool,
		DrawActive:  s.drawActive,
		SnapEnabled: s.snapEnabled,
		ShowPoints:  s.showPoints,
		GridLevel:   s.gridLevel,
		CanUndo:     s.CanUndo(),
		CanRedo:     s.CanRedo(),
		Pointer:     s.pointer,
		Width:       s.width,
		Height:      s.height,
	}

	frame.Advice = advisor.Advise(s.pointer, s.elements, advisor.Options{
		Radius:      s.settings.HighlightRadius,
		SnapEnabled: s.snapEnabled,
		Width:       s.width,
		Height:      s.height,
	})

	if m, ok := s.mode.(Drawing); ok {
		end, _ := s.creationSnap(s.pointer)
		frame.Preview = s.derive(m.Anchor, end)
		frame.HasPreview = true
	}

	if s.drawActive {
		switch s.mode.(type) {
		case Idle, Drawing:
			frame.SnapPreview, frame.HasSnapPreview = s.creationSnap(s.pointer)
		}
	}

	return frame
}
