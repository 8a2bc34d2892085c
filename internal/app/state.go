package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gostudio/internal/config"
	"github.com/philipparndt/gostudio/internal/editor"
	"github.com/philipparndt/gostudio/internal/element"
)

// ToolbarAction identifies what a toolbar button does
type ToolbarAction int

const (
	ActionUndo ToolbarAction = iota
	ActionRedo
	ActionHelp
	ActionGrid
	ActionSnap
	ActionClear
	ActionTool
)

// ToolbarButton is one clickable text label in the toolbar
type ToolbarButton struct {
	label  string
	action ToolbarAction
	tool   element.Kind // only for ActionTool
	bounds rl.Rectangle // recomputed every frame
}

// ToolbarState holds toolbar layout and hover state
type ToolbarState struct {
	buttons []ToolbarButton
	hovered int  // -1=none
	height  float32
	clicked bool // pointer-down this frame landed on the toolbar
}

// ViewSettings holds display-only state
type ViewSettings struct {
	showHelp   bool
	helpLocked bool // help toggled by the toolbar rather than held with H
}

// ConfigState holds the loaded settings and the hot-reload watcher
type ConfigState struct {
	path     string
	settings config.Settings
	reloader *config.Reloader
}

// App is the raylib editor window
type App struct {
	Session *editor.Session
	Frame   editor.Frame
	Toolbar ToolbarState
	View    ViewSettings
	Config  ConfigState
}
