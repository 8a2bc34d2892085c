package editor

import (
	"github.com/philipparndt/gostudio/internal/element"
	"github.com/philipparndt/gostudio/internal/snap"
	"github.com/philipparndt/gostudio/pkg/geometry"
)

// Mode is the gesture the session is in. It is one of Idle, Drawing,
// DraggingPoint or DraggingShape.
type Mode interface {
	String() string
	mode()
}

// Idle waits for a pointer-down
type Idle struct{}

// Drawing places a new element from Anchor to the pointer
type Drawing struct {
	Anchor geometry.Point
}

// DraggingPoint moves an endpoint and every endpoint coincident with it
type DraggingPoint struct {
	Element    int
	Handle     element.Handle
	DragAnchor geometry.Point // pointer position at pointer-down
	Group      []snap.Coincident
}

// DraggingShape moves a circle by its body
type DraggingShape struct {
	Element int
	Offset  geometry.Point // pointer minus center at pointer-down
	moved   bool
}

func (Idle) mode()          {}
func (Drawing) mode()       {}
func (DraggingPoint) mode() {}
func (DraggingShape) mode() {}

func (Idle) String() string          { return "idle" }
func (Drawing) String() string       { return "drawing" }
func (DraggingPoint) String() string { return "dragging-point" }
func (DraggingShape) String() string { return "dragging-shape" }
