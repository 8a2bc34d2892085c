package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gostudio/internal/editor"
)

// Options configures the editor window
type Options struct {
	ConfigPath string
}

// Run opens the editor window and blocks until it is closed
func Run(opts Options) error {
	settings, err := loadSettings(opts.ConfigPath)
	if err != nil {
		return err
	}

	app := &App{
		Session: editor.NewSession(settings.EditorSettings()),
		Toolbar: newToolbar(),
		Config: ConfigState{
			path:     opts.ConfigPath,
			settings: settings,
		},
	}

	if err := app.setupConfigWatcher(); err != nil {
		fmt.Printf("Warning: %v\n", err)
		fmt.Println("Config hot reload will not be available")
	} else if app.Config.reloader != nil {
		defer app.Config.reloader.Close()
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(settings.Window.Width), int32(settings.Window.Height), settings.Window.Title)
	rl.SetTargetFPS(int32(settings.Window.FPS))
	defer rl.CloseWindow()

	// Escape must not close the window
	rl.SetExitKey(rl.KeyNull)

	for !rl.WindowShouldClose() {
		app.applyReloadedConfig()

		// Update
		in := app.handleInput()
		app.Frame = app.Session.Step(in)
		app.handleExport()

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)

		app.drawGrid()
		app.drawElements()
		app.drawPreview()
		app.drawAdvice()
		app.drawMeasurements()
		app.drawUI()

		rl.EndDrawing()
	}

	return nil
}
