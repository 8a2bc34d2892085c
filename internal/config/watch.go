package config

import (
	"fmt"
	"time"

	"github.com/philipparndt/gostudio/internal/editor"
	"github.com/philipparndt/gostudio/pkg/watcher"
)

// Reloader delivers freshly loaded settings whenever the config file
// changes. Invalid files are logged and skipped.
type Reloader struct {
	fw      *watcher.FileWatcher
	updates chan Settings
}

// Watch starts watching path for changes
func Watch(path string, debounce time.Duration) (*Reloader, error) {
	fw, err := watcher.NewFileWatcher(debounce)
	if err != nil {
		return nil, err
	}
	fw.SetLogger(editor.Logger())

	r := &Reloader{
		fw:      fw,
		updates: make(chan Settings, 1),
	}

	if err := fw.Watch([]string{path}, r.reload); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch config: %w", err)
	}
	fw.Start()
	return r, nil
}

func (r *Reloader) reload(path string) {
	s, err := Load(path)
	if err != nil {
		editor.Logger().Warn("config reload failed", "path", path, "error", err)
		return
	}
	editor.Logger().Info("config reloaded", "path", path)

	// keep only the newest settings if the frame loop has not caught up
	for {
		select {
		case r.updates <- s:
			return
		default:
		}
		select {
		case <-r.updates:
		default:
		}
	}
}

// Updates delivers reloaded settings. The frame loop polls it between frames.
func (r *Reloader) Updates() <-chan Settings {
	return r.updates
}

// Poll returns the latest reloaded settings without blocking
func (r *Reloader) Poll() (Settings, bool) {
	select {
	case s := <-r.updates:
		return s, true
	default:
		return Settings{}, false
	}
}

// Close stops watching
func (r *Reloader) Close() error {
	return r.fw.Close()
}
