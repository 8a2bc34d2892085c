package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gostudio/internal/config"
	"github.com/philipparndt/gostudio/internal/editor"
)

const reloadDebounce = 300 * time.Millisecond

// loadSettings reads the config file, or the defaults when no path is set
func loadSettings(path string) (config.Settings, error) {
	if path == "" {
		return config.Default(), nil
	}
	s, err := config.Load(path)
	if err != nil {
		return config.Settings{}, err
	}
	return s, nil
}

// setupConfigWatcher starts hot reloading of the config file
func (app *App) setupConfigWatcher() error {
	if app.Config.path == "" {
		return nil
	}

	r, err := config.Watch(app.Config.path, reloadDebounce)
	if err != nil {
		return fmt.Errorf("failed to watch config: %w", err)
	}
	app.Config.reloader = r
	editor.Logger().Info("watching config", "path", app.Config.path)
	return nil
}

// applyReloadedConfig swaps in settings delivered by the watcher. It runs
// on the frame loop between frames.
func (app *App) applyReloadedConfig() {
	if app.Config.reloader == nil {
		return
	}
	s, ok := app.Config.reloader.Poll()
	if !ok {
		return
	}

	app.Config.settings = s
	app.Session.ApplySettings(s.EditorSettings())
	rl.SetTargetFPS(int32(s.Window.FPS))
	rl.SetWindowTitle(s.Window.Title)
}
