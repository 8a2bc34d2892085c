package editor

import (
	"image/color"

	"github.com/philipparndt/gostudio/internal/element"
)

// Settings holds the tunable constants of the editor
type Settings struct {
	SnapRadius        float64 // creation and drag snapping distance
	PickRadius        float64 // distance to grab an endpoint
	EdgeThreshold     float64 // distance to pull a snapped point onto the viewport border
	CoincidentEpsilon float64 // endpoints closer than this move together
	MinShapeLength    float64 // minimum gesture length for non-line shapes
	HighlightRadius   float64
	LineThickness     float64
	Color             color.RGBA
	Tool              element.Kind
	HistoryLimit      int // 0 keeps every snapshot
}

// DefaultSettings returns the stock editor constants
func DefaultSettings() Settings {
	return Settings{
		SnapRadius:        10.0,
		PickRadius:        5.0,
		EdgeThreshold:     5.0,
		CoincidentEpsilon: 0.01,
		MinShapeLength:    10.0,
		HighlightRadius:   10.0,
		LineThickness:     2.0,
		Color:             color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Tool:              element.Line,
		HistoryLimit:      0,
	}
}

// MinLength returns the gesture length a new element of the given kind
// must exceed. Lines need twice the snap radius.
func (s Settings) MinLength(kind element.Kind) float64 {
	if kind == element.Line {
		return 2 * s.SnapRadius
	}
	return s.MinShapeLength
}

// GridSpacing returns the distance between grid lines for a grid level,
// or 0 when the grid is off
func GridSpacing(level int) float64 {
	switch level {
	case 1:
		return 100
	case 2:
		return 50
	case 3:
		return 25
	default:
		return 0
	}
}
