// Package config loads editor settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/gostudio/internal/editor"
	"github.com/philipparndt/gostudio/internal/element"
)

// Settings mirrors the TOML file layout
type Settings struct {
	Window    Window    `toml:"window"`
	Snap      Snap      `toml:"snap"`
	Create    Create    `toml:"create"`
	Highlight Highlight `toml:"highlight"`
	History   History   `toml:"history"`
}

// Window configures the desktop front ends
type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	FPS    int    `toml:"fps"`
}

type Snap struct {
	Radius            float64 `toml:"radius"`
	PickRadius        float64 `toml:"pick_radius"`
	EdgeThreshold     float64 `toml:"edge_threshold"`
	CoincidentEpsilon float64 `toml:"coincident_epsilon"`
}

type Create struct {
	MinShapeLength float64 `toml:"min_shape_length"`
	LineThickness  float64 `toml:"line_thickness"`
	Color          string  `toml:"color"`
	Tool           string  `toml:"tool"`
}

type Highlight struct {
	Radius float64 `toml:"radius"`
}

type History struct {
	Limit int `toml:"limit"`
}

// Default returns the settings used when no file is given
func Default() Settings {
	d := editor.DefaultSettings()
	return Settings{
		Window: Window{
			Width:  1280,
			Height: 800,
			Title:  "GoStudio",
			FPS:    60,
		},
		Snap: Snap{
			Radius:            d.SnapRadius,
			PickRadius:        d.PickRadius,
			EdgeThreshold:     d.EdgeThreshold,
			CoincidentEpsilon: d.CoincidentEpsilon,
		},
		Create: Create{
			MinShapeLength: d.MinShapeLength,
			LineThickness:  d.LineThickness,
			Color:          FormatColor(d.Color),
			Tool:           d.Tool.String(),
		},
		Highlight: Highlight{Radius: d.HighlightRadius},
		History:   History{Limit: d.HistoryLimit},
	}
}

// Load reads a TOML file on top of the defaults. Keys missing from the
// file keep their default values; unknown keys are an error.
func Load(path string) (Settings, error) {
	s := Default()
	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Settings{}, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return s, nil
}

// Validate checks that every value is usable
func (s Settings) Validate() error {
	var errs []error
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height))
	}
	if s.Window.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", s.Window.FPS))
	}
	if s.Snap.Radius <= 0 {
		errs = append(errs, fmt.Errorf("snap radius must be positive, got %v", s.Snap.Radius))
	}
	if s.Snap.PickRadius <= 0 {
		errs = append(errs, fmt.Errorf("pick radius must be positive, got %v", s.Snap.PickRadius))
	}
	if s.Snap.EdgeThreshold < 0 {
		errs = append(errs, fmt.Errorf("edge threshold must not be negative, got %v", s.Snap.EdgeThreshold))
	}
	if s.Snap.CoincidentEpsilon <= 0 {
		errs = append(errs, fmt.Errorf("coincident epsilon must be positive, got %v", s.Snap.CoincidentEpsilon))
	}
	if s.Create.MinShapeLength < 0 {
		errs = append(errs, fmt.Errorf("min shape length must not be negative, got %v", s.Create.MinShapeLength))
	}
	if s.Create.LineThickness <= 0 {
		errs = append(errs, fmt.Errorf("line thickness must be positive, got %v", s.Create.LineThickness))
	}
	if _, err := ParseColor(s.Create.Color); err != nil {
		errs = append(errs, err)
	}
	if _, ok := element.ParseKind(s.Create.Tool); !ok {
		errs = append(errs, fmt.Errorf("unknown tool %q", s.Create.Tool))
	}
	if s.Highlight.Radius <= 0 {
		errs = append(errs, fmt.Errorf("highlight radius must be positive, got %v", s.Highlight.Radius))
	}
	if s.History.Limit < 0 {
		errs = append(errs, fmt.Errorf("history limit must not be negative, got %d", s.History.Limit))
	}
	return errors.Join(errs...)
}

// EditorSettings converts validated settings for the editor
func (s Settings) EditorSettings() editor.Settings {
	c, err := ParseColor(s.Create.Color)
	if err != nil {
		c = editor.DefaultSettings().Color
	}
	tool, _ := element.ParseKind(s.Create.Tool)

	return editor.Settings{
		SnapRadius:        s.Snap.Radius,
		PickRadius:        s.Snap.PickRadius,
		EdgeThreshold:     s.Snap.EdgeThreshold,
		CoincidentEpsilon: s.Snap.CoincidentEpsilon,
		MinShapeLength:    s.Create.MinShapeLength,
		HighlightRadius:   s.Highlight.Radius,
		LineThickness:     s.Create.LineThickness,
		Color:             c,
		Tool:              tool,
		HistoryLimit:      s.History.Limit,
	}
}

// ParseColor parses an opaque "#RRGGBB" color
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// FormatColor formats a color as "#RRGGBB"
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
