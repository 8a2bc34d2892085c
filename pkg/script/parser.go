// Package script reads line-oriented editor input scripts and replays
// them against a session, one frame per command.
//
//	viewport 800 600
//	tool line
//	drag 0 0 100 0
//	undo
package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gostudio/internal/config"
	"github.com/philipparndt/gostudio/internal/editor"
	"github.com/philipparndt/gostudio/internal/element"
	"github.com/philipparndt/gostudio/pkg/geometry"
)

// Default viewport used until a script sets one
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Command is one frame of input and the script line it came from
type Command struct {
	Line  int
	Name  string
	Input editor.Input
}

// Script is a parsed list of commands
type Script struct {
	Name     string
	Commands []Command
}

// ParseFile reads a script from disk
func ParseFile(filename string) (*Script, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	s, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	s.Name = filename
	return s, nil
}

// Parse reads a script. Blank lines and lines starting with # are skipped.
func Parse(reader io.Reader) (*Script, error) {
	scanner := bufio.NewScanner(reader)
	script := &Script{}

	width, height := float64(DefaultWidth), float64(DefaultHeight)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		name, args := strings.ToLower(fields[0]), fields[1:]

		in := editor.Input{Width: width, Height: height}
		add := func(in editor.Input) {
			script.Commands = append(script.Commands, Command{Line: lineNo, Name: name, Input: in})
		}

		switch name {
		case "viewport":
			v, err := floats(args, 2)
			if err != nil {
				return nil, lineError(lineNo, name, err)
			}
			if v[0] <= 0 || v[1] <= 0 {
				return nil, lineError(lineNo, name, fmt.Errorf("size must be positive"))
			}
			width, height = v[0], v[1]
			in.Width, in.Height = width, height
			add(in)

		case "tool":
			if len(args) != 1 {
				return nil, lineError(lineNo, name, fmt.Errorf("expected 1 argument, got %d", len(args)))
			}
			kind, ok := element.ParseKind(strings.ToLower(args[0]))
			if !ok {
				return nil, lineError(lineNo, name, fmt.Errorf("unknown tool %q", args[0]))
			}
			in.SelectTool, in.Tool = true, kind
			add(in)

		case "draw":
			if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
				return nil, lineError(lineNo, name, fmt.Errorf("expected on or off"))
			}
			in.SetDraw, in.Draw = true, args[0] == "on"
			add(in)

		case "down", "move", "up":
			v, err := floats(args, 2)
			if err != nil {
				return nil, lineError(lineNo, name, err)
			}
			in.Pointer = geometry.NewPoint(v[0], v[1])
			switch name {
			case "down":
				in.Pressed, in.Down = true, true
			case "move":
				in.Down = true
			case "up":
				in.Released = true
			}
			add(in)

		case "drag":
			v, err := floats(args, 4)
			if err != nil {
				return nil, lineError(lineNo, name, err)
			}
			from, to := geometry.NewPoint(v[0], v[1]), geometry.NewPoint(v[2], v[3])
			down, move, up := in, in, in
			down.Pointer, down.Pressed, down.Down = from, true, true
			move.Pointer, move.Down = to, true
			up.Pointer, up.Released = to, true
			add(down)
			add(move)
			add(up)

		case "undo":
			in.Undo = true
			add(in)
		case "redo":
			in.Redo = true
			add(in)
		case "snap":
			in.ToggleSnap = true
			add(in)
		case "grid":
			in.CycleGrid = true
			add(in)
		case "points":
			in.TogglePoints = true
			add(in)
		case "clear":
			in.Clear = true
			add(in)
		case "export":
			in.Export = true
			add(in)

		case "thickness":
			v, err := floats(args, 1)
			if err != nil {
				return nil, lineError(lineNo, name, err)
			}
			if v[0] <= 0 {
				return nil, lineError(lineNo, name, fmt.Errorf("thickness must be positive"))
			}
			in.Thickness = v[0]
			add(in)

		case "color":
			if len(args) != 1 {
				return nil, lineError(lineNo, name, fmt.Errorf("expected 1 argument, got %d", len(args)))
			}
			c, err := config.ParseColor(args[0])
			if err != nil {
				return nil, lineError(lineNo, name, err)
			}
			in.SetColor, in.Color = true, c
			add(in)

		default:
			return nil, fmt.Errorf("line %d: unknown command %q", lineNo, fields[0])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading script: %w", err)
	}

	return script, nil
}

func floats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d arguments, got %d", n, len(args))
	}
	v := make([]float64, n)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		v[i] = f
	}
	return v, nil
}

func lineError(line int, name string, err error) error {
	return fmt.Errorf("line %d: %s: %w", line, name, err)
}
