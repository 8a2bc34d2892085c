package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gostudio/internal/element"
	"github.com/philipparndt/gostudio/version"
)

const (
	buttonFontSize = 20
	buttonSpacing  = 18
	toolbarPadding = 10
)

var helpLines = []string{
	"Super+Z: Undo | Super+Y: Redo",
	"Super+S: Snap guides | Super+G: Grid",
	"Super+1..5: Line, Circle, Ellipse, Rectangle, Triangle",
	"C: Clear | E: Export | P: Points",
	"Drag an endpoint to move it and everything joined to it",
	"Drag a circle to move it when not drawing",
}

func newToolbar() ToolbarState {
	buttons := []ToolbarButton{
		{label: "UNDO", action: ActionUndo},
		{label: "REDO", action: ActionRedo},
		{label: "HELP", action: ActionHelp},
		{label: "GRID", action: ActionGrid},
		{label: "SNAP", action: ActionSnap},
		{label: "CLEAR", action: ActionClear},
	}
	for _, k := range element.Kinds {
		buttons = append(buttons, ToolbarButton{label: toolLabel(k), action: ActionTool, tool: k})
	}
	return ToolbarState{buttons: buttons, hovered: -1}
}

func toolLabel(k element.Kind) string {
	switch k {
	case element.Line:
		return "LINE"
	case element.Circle:
		return "CIRCLE"
	case element.Ellipse:
		return "ELLIPSE"
	case element.Rectangle:
		return "RECTANGLE"
	case element.Triangle:
		return "TRIANGLE"
	default:
		return "?"
	}
}

// layoutToolbar places the buttons left to right along the top edge
func (app *App) layoutToolbar() {
	x := float32(toolbarPadding)
	y := float32(toolbarPadding)
	for i := range app.Toolbar.buttons {
		b := &app.Toolbar.buttons[i]
		w := float32(rl.MeasureText(b.label, buttonFontSize))
		b.bounds = rl.Rectangle{X: x, Y: y, Width: w, Height: buttonFontSize}
		x += w + buttonSpacing
	}
	app.Toolbar.height = y + buttonFontSize + toolbarPadding
}

// toolbarButtonAt returns the index of the button under the pointer, or -1
func (app *App) toolbarButtonAt(p rl.Vector2) int {
	for i, b := range app.Toolbar.buttons {
		if rl.CheckCollisionPointRec(p, b.bounds) {
			return i
		}
	}
	return -1
}

// buttonColor mirrors the button's state: dim when unavailable, green
// when active, light when hovered
func (app *App) buttonColor(i int) rl.Color {
	b := app.Toolbar.buttons[i]
	hovered := app.Toolbar.hovered == i
	f := app.Frame

	switch b.action {
	case ActionUndo:
		return availableColor(f.CanUndo, hovered)
	case ActionRedo:
		return availableColor(f.CanRedo, hovered)
	case ActionClear:
		return availableColor(len(f.Elements) > 0, hovered)
	case ActionHelp:
		return activeColor(app.View.showHelp, hovered)
	case ActionGrid:
		return activeColor(f.GridLevel > 0, hovered)
	case ActionSnap:
		return activeColor(f.SnapEnabled, hovered)
	case ActionTool:
		return activeColor(f.DrawActive && f.Tool == b.tool, hovered)
	}
	return rl.Gray
}

func availableColor(available, hovered bool) rl.Color {
	switch {
	case !available:
		return rl.DarkGray
	case hovered:
		return rl.LightGray
	default:
		return rl.Gray
	}
}

func activeColor(active, hovered bool) rl.Color {
	if active || hovered {
		return rl.Green
	}
	return rl.Gray
}

// drawUI draws the toolbar, help and status line
func (app *App) drawUI() {
	for i, b := range app.Toolbar.buttons {
		rl.DrawText(b.label, int32(b.bounds.X), int32(b.bounds.Y), buttonFontSize, app.buttonColor(i))
	}

	if app.View.showHelp {
		y := int32(app.Toolbar.height) + 10
		for _, line := range helpLines {
			rl.DrawText(line, 10, y, 16, rl.LightGray)
			y += 20
		}
	}

	// Status in bottom-left corner
	bottomY := int32(rl.GetScreenHeight()) - 24
	f := app.Frame
	undo, redo := app.Session.HistoryDepth()
	status := fmt.Sprintf("v%s | %s | %s | elements: %d | undo: %d redo: %d | FPS: %d",
		version.GetVersion(), f.Tool, f.Mode, len(f.Elements), undo, redo, rl.GetFPS())
	rl.DrawText(status, 10, bottomY, 14, rl.Gray)

	pointer := fmt.Sprintf("%.0f, %.0f", f.Pointer.X, f.Pointer.Y)
	w := rl.MeasureText(pointer, 14)
	rl.DrawText(pointer, int32(rl.GetScreenWidth())-w-10, bottomY, 14, rl.Lime)
}
