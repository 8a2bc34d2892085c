package export

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/philipparndt/gostudio/internal/element"
	"github.com/philipparndt/gostudio/pkg/geometry"
)

var red = color.RGBA{R: 255, A: 255}

func line(ax, ay, bx, by float64) element.Element {
	return element.New(geometry.NewLine(geometry.NewPoint(ax, ay), geometry.NewPoint(bx, by), 2), red)
}

func TestUniqueLinesDropsReversedDuplicate(t *testing.T) {
	elements := []element.Element{
		line(0, 0, 100, 0),
		line(100, 0, 0, 0),
		element.New(geometry.NewCircle(geometry.NewPoint(10, 10), 5), red),
		line(0, 0, 0, 100),
		line(0, 0, 100, 0),
	}

	lines := UniqueLines(elements)
	if len(lines) != 2 {
		t.Fatalf("expected 2 unique lines, got %d: %v", len(lines), lines)
	}
	if lines[0].B != geometry.NewPoint(100, 0) {
		t.Errorf("expected first occurrence to win, got %v", lines[0])
	}

	again := UniqueLines([]element.Element{
		element.New(lines[0], red),
		element.New(lines[1], red),
	})
	if len(again) != len(lines) {
		t.Errorf("expected dedup to be idempotent, got %d lines", len(again))
	}
}

func TestUniqueLinesEmpty(t *testing.T) {
	if lines := UniqueLines(nil); len(lines) != 0 {
		t.Errorf("expected no lines, got %v", lines)
	}
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	lines := []geometry.Line{
		geometry.NewLine(geometry.NewPoint(0, 0), geometry.NewPoint(100, 0), 1),
		geometry.NewLine(geometry.NewPoint(12.34, 5.06), geometry.NewPoint(7, 8.96), 1),
	}

	if err := WriteLines(&buf, lines); err != nil {
		t.Fatalf("WriteLines failed: %v", err)
	}

	out := buf.String()
	expected := []string{
		"var Polylines = [][2][2]float64{",
		"\t{{0.0, 0.0}, {100.0, 0.0}},",
		"\t{{12.3, 5.1}, {7.0, 9.0}},",
		"}",
	}
	for _, e := range expected {
		if !strings.Contains(out, e) {
			t.Errorf("expected output to contain %q, got:\n%s", e, out)
		}
	}
}

func TestRenderInvalidSize(t *testing.T) {
	opts := DefaultRenderOptions()
	opts.Width = 0

	if _, err := Render(nil, opts); err == nil {
		t.Errorf("expected error for zero width")
	}
}

func TestRenderPNG(t *testing.T) {
	elements := []element.Element{
		element.New(geometry.NewCircle(geometry.NewPoint(50, 50), 20), red),
		line(10, 90, 90, 90),
	}
	opts := DefaultRenderOptions()
	opts.Width = 100
	opts.Height = 100
	opts.Labels = true
	opts.Points = true

	var buf bytes.Buffer
	if err := RenderPNG(&buf, elements, opts); err != nil {
		t.Fatalf("RenderPNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Errorf("expected 100x100 image, got %dx%d", b.Dx(), b.Dy())
	}

	r, g, _, _ := img.At(50, 50).RGBA()
	if r>>8 < 200 || g>>8 > 60 {
		t.Errorf("expected circle center to be red, got r=%d g=%d", r>>8, g>>8)
	}

	r, g, _, _ = img.At(95, 5).RGBA()
	if r>>8 < 23 || r>>8 > 25 || g>>8 < 23 || g>>8 > 25 {
		t.Errorf("expected background in the corner, got r=%d g=%d", r>>8, g>>8)
	}
}
