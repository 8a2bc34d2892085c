package script

import (
	"github.com/philipparndt/gostudio/internal/editor"
	"github.com/philipparndt/gostudio/pkg/geometry"
)

// Result is the outcome of a replay
type Result struct {
	Frame   editor.Frame      // frame after the last command
	Frames  int               // number of frames stepped
	Exports [][]geometry.Line // one entry per export command
}

// Replay steps the session once per command
func Replay(session *editor.Session, commands []Command) Result {
	var result Result
	result.Frame = session.Frame()

	for _, cmd := range commands {
		result.Frame = session.Step(cmd.Input)
		result.Frames++
		if result.Frame.Exported {
			result.Exports = append(result.Exports, result.Frame.Export)
		}
		editor.Logger().Debug("replayed", "line", cmd.Line, "command", cmd.Name, "mode", result.Frame.Mode.String())
	}
	return result
}

// Run replays a parsed script on a fresh session
func Run(s *Script, settings editor.Settings) (*editor.Session, Result) {
	session := editor.NewSession(settings)
	return session, Replay(session, s.Commands)
}
