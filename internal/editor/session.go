// Package editor owns the element store and the create/drag state machine.
// A Session is driven by one frame loop and is not safe for concurrent use.
package editor

import (
	"image/color"
	"slices"

	"github.com/philipparndt/gostudio/internal/element"
	"github.com/philipparndt/gostudio/internal/history"
	"github.com/philipparndt/gostudio/pkg/geometry"
)

// GridLevels is the number of grid settings cycled through, 0 being off
const GridLevels = 4

// Session is one editing session: the element store, its history and the
// interaction state
type Session struct {
	settings Settings
	elements []element.Element
	history  *history.History
	mode     Mode

	tool        element.Kind
	drawActive  bool
	snapEnabled bool
	showPoints  bool
	gridLevel   int
	thickness   float64
	color       color.RGBA

	pointer       geometry.Point
	width, height float64
}

// NewSession creates an empty session
func NewSession(settings Settings) *Session {
	return &Session{
		settings:  settings,
		history:   history.New(settings.HistoryLimit),
		mode:      Idle{},
		tool:      settings.Tool,
		thickness: settings.LineThickness,
		color:     settings.Color,
	}
}

// Elements returns a copy of the store in z-order
func (s *Session) Elements() []element.Element {
	return slices.Clone(s.elements)
}

// Len returns the number of elements
func (s *Session) Len() int {
	return len(s.elements)
}

// Settings returns the active settings
func (s *Session) Settings() Settings {
	return s.settings
}

// ApplySettings swaps in new settings between frames. The current tool,
// thickness and color follow a default only when that default changed, so
// choices made in the session survive unrelated reloads. The store and
// history are kept.
func (s *Session) ApplySettings(settings Settings) {
	prev := s.settings
	s.settings = settings
	if settings.Tool != prev.Tool {
		s.tool = settings.Tool
	}
	if settings.LineThickness != prev.LineThickness {
		s.thickness = settings.LineThickness
	}
	if settings.Color != prev.Color {
		s.color = settings.Color
	}
	s.history.SetLimit(settings.HistoryLimit)
	Logger().Info("settings applied",
		"snapRadius", settings.SnapRadius,
		"tool", settings.Tool.String(),
		"historyLimit", settings.HistoryLimit)
}

// Mode returns the current gesture state
func (s *Session) Mode() Mode { return s.mode }

// Tool returns the selected tool
func (s *Session) Tool() element.Kind { return s.tool }

// DrawActive reports whether pointer-down starts a new element
func (s *Session) DrawActive() bool { return s.drawActive }

// SnapEnabled reports whether alignment guides are shown
func (s *Session) SnapEnabled() bool { return s.snapEnabled }

// ShowPoints reports whether the renderer marks endpoints
func (s *Session) ShowPoints() bool { return s.showPoints }

// GridLevel returns the grid setting, 0 to GridLevels-1
func (s *Session) GridLevel() int { return s.gridLevel }

// Thickness returns the line thickness used for new lines
func (s *Session) Thickness() float64 { return s.thickness }

// Color returns the color used for new elements
func (s *Session) Color() color.RGBA { return s.color }

// CanUndo reports whether an undo snapshot exists
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether a redo snapshot exists
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// HistoryDepth returns the number of undo and redo snapshots
func (s *Session) HistoryDepth() (undo, redo int) { return s.history.Depth() }

// SetViewport records the latest viewport size
func (s *Session) SetViewport(width, height float64) {
	s.width = width
	s.height = height
}

// Viewport returns the latest viewport size
func (s *Session) Viewport() (width, height float64) {
	return s.width, s.height
}

// SelectTool picks a drawing tool. Picking the tool that is already
// selected toggles draw mode; picking another one enables it.
func (s *Session) SelectTool(kind element.Kind) {
	if kind == s.tool {
		s.drawActive = !s.drawActive
	} else {
		s.tool = kind
		s.drawActive = true
	}
	Logger().Debug("tool selected", "tool", kind.String(), "draw", s.drawActive)
}

// SetDrawActive turns draw mode on or off
func (s *Session) SetDrawActive(active bool) {
	s.drawActive = active
}

// ToggleSnap flips alignment guides
func (s *Session) ToggleSnap() {
	s.snapEnabled = !s.snapEnabled
}

// ToggleShowPoints flips endpoint markers
func (s *Session) ToggleShowPoints() {
	s.showPoints = !s.showPoints
}

// CycleGrid advances the grid level, wrapping to off
func (s *Session) CycleGrid() {
	s.gridLevel = (s.gridLevel + 1) % GridLevels
}

// SetThickness sets the thickness of new lines. Non-positive values are ignored.
func (s *Session) SetThickness(t float64) {
	if t > 0 {
		s.thickness = t
	}
}

// SetColor sets the color of new elements
func (s *Session) SetColor(c color.RGBA) {
	s.color = c
}

// Undo restores the previous snapshot. It is a no-op during a gesture or
// when there is nothing to undo.
func (s *Session) Undo() bool {
	if _, idle := s.mode.(Idle); !idle {
		return false
	}
	elements, ok := s.history.Undo(s.elements)
	if ok {
		s.elements = elements
		Logger().Debug("undo", "elements", len(s.elements))
	}
	return ok
}

// Redo reapplies the most recently undone snapshot
func (s *Session) Redo() bool {
	if _, idle := s.mode.(Idle); !idle {
		return false
	}
	elements, ok := s.history.Redo(s.elements)
	if ok {
		s.elements = elements
		Logger().Debug("redo", "elements", len(s.elements))
	}
	return ok
}

// Clear removes every element. The removal is undoable; clearing an empty
// store does nothing.
func (s *Session) Clear() {
	if len(s.elements) == 0 {
		return
	}
	s.checkpoint("clear")
	s.elements = nil
	s.mode = Idle{}
}

// Add appends an element as one undoable step
func (s *Session) Add(e element.Element) {
	s.checkpoint("add")
	s.elements = append(s.elements, e)
}

func (s *Session) checkpoint(reason string) {
	s.history.Checkpoint(s.elements)
	undo, _ := s.history.Depth()
	Logger().Debug("checkpoint", "reason", reason, "elements", len(s.elements), "depth", undo)
}
