package measurement

import (
	"image/color"
	"math"
	"testing"

	"github.com/philipparndt/gostudio/internal/element"
	"github.com/philipparndt/gostudio/pkg/geometry"
)

func TestDescribe(t *testing.T) {
	c := color.RGBA{A: 255}
	tests := []struct {
		name     string
		shape    geometry.Shape
		expected string
	}{
		{"line", geometry.NewLine(geometry.NewPoint(0, 0), geometry.NewPoint(30, 40), 2), "50.0 px"},
		{"circle", geometry.NewCircle(geometry.NewPoint(0, 0), 12.5), "r 12.5"},
		{"ellipse", geometry.NewEllipse(geometry.NewPoint(0, 0), 10, 5, 0), "20.0 × 10.0"},
		{"rectangle", geometry.NewRectangle(geometry.NewPoint(0, 0), 30, 20, 0), "30.0 × 20.0"},
		{"rotated rectangle", geometry.NewRectangle(geometry.NewPoint(0, 0), 30, 20, math.Pi/2), "30.0 × 20.0 @ 90°"},
		{"triangle", geometry.NewTriangle(geometry.NewPoint(0, 0), geometry.NewPoint(4, 0), geometry.NewPoint(0, 3)), "area 6.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(element.New(tt.shape, c)); got != tt.expected {
				t.Errorf("Describe failed: expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestAnchor(t *testing.T) {
	c := color.RGBA{A: 255}

	line := element.New(geometry.NewLine(geometry.NewPoint(0, 100), geometry.NewPoint(100, 100), 2), c)
	if got := Anchor(line); got != geometry.NewPoint(50, 100-labelGap) {
		t.Errorf("Anchor failed for line: got %v", got)
	}

	circle := element.New(geometry.NewCircle(geometry.NewPoint(50, 50), 10), c)
	if got := Anchor(circle); got != geometry.NewPoint(50, 40-labelGap) {
		t.Errorf("Anchor failed for circle: got %v", got)
	}
}
