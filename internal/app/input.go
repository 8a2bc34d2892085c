package app

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gostudio/internal/editor"
	"github.com/philipparndt/gostudio/internal/element"
	"github.com/philipparndt/gostudio/internal/export"
	"github.com/philipparndt/gostudio/pkg/geometry"
)

// toolKeys maps Super+digit to tools in toolbar order
var toolKeys = []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive}

// handleInput turns this frame's raylib input into editor input
func (app *App) handleInput() editor.Input {
	mouse := rl.GetMousePosition()
	in := editor.Input{
		Pointer: geometry.NewPoint(float64(mouse.X), float64(mouse.Y)),
		Width:   float64(rl.GetScreenWidth()),
		Height:  float64(rl.GetScreenHeight()),
	}

	superDown := rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)

	// Shortcuts with Super
	if superDown {
		if rl.IsKeyPressed(rl.KeyZ) {
			in.Undo = true
		}
		if rl.IsKeyPressed(rl.KeyY) {
			in.Redo = true
		}
		if rl.IsKeyPressed(rl.KeyS) {
			in.ToggleSnap = true
		}
		if rl.IsKeyPressed(rl.KeyG) {
			in.CycleGrid = true
		}
		for i, key := range toolKeys {
			if rl.IsKeyPressed(key) {
				in.SelectTool = true
				in.Tool = element.Kinds[i]
			}
		}
	} else {
		if rl.IsKeyPressed(rl.KeyE) {
			in.Export = true
		}
		if rl.IsKeyPressed(rl.KeyC) {
			in.Clear = true
		}
		if rl.IsKeyPressed(rl.KeyP) {
			in.TogglePoints = true
		}
	}

	// Help is shown while H is held
	if !app.View.helpLocked {
		app.View.showHelp = rl.IsKeyDown(rl.KeyH)
	}

	// Toolbar hover and clicks
	app.layoutToolbar()
	app.Toolbar.hovered = app.toolbarButtonAt(mouse)
	pressed := rl.IsMouseButtonPressed(rl.MouseLeftButton)
	if pressed {
		app.Toolbar.clicked = app.Toolbar.hovered >= 0
		if app.Toolbar.clicked {
			app.applyToolbarButton(app.Toolbar.buttons[app.Toolbar.hovered], &in)
		}
	}

	// Pointer events that start on the toolbar never reach the canvas
	if !app.Toolbar.clicked {
		in.Pressed = pressed
		in.Down = rl.IsMouseButtonDown(rl.MouseLeftButton)
	}
	in.Released = rl.IsMouseButtonReleased(rl.MouseLeftButton)
	if in.Released {
		app.Toolbar.clicked = false
	}

	return in
}

func (app *App) applyToolbarButton(b ToolbarButton, in *editor.Input) {
	switch b.action {
	case ActionUndo:
		in.Undo = true
	case ActionRedo:
		in.Redo = true
	case ActionHelp:
		app.View.helpLocked = !app.View.helpLocked
		app.View.showHelp = app.View.helpLocked
	case ActionGrid:
		in.CycleGrid = true
	case ActionSnap:
		in.ToggleSnap = true
	case ActionClear:
		in.Clear = true
	case ActionTool:
		in.SelectTool = true
		in.Tool = b.tool
	}
}

// handleExport prints the exported lines when an export was requested
func (app *App) handleExport() {
	if !app.Frame.Exported {
		return
	}
	if err := export.WriteLines(os.Stdout, app.Frame.Export); err != nil {
		editor.Logger().Warn("export failed", "error", err)
	}
}
