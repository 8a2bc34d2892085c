package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gostudio/internal/advisor"
	"github.com/philipparndt/gostudio/internal/editor"
	"github.com/philipparndt/gostudio/internal/element"
	"github.com/philipparndt/gostudio/internal/measurement"
	"github.com/philipparndt/gostudio/pkg/geometry"
)

var (
	backgroundColor = rl.NewColor(15, 18, 25, 255)
	gridColor       = rl.NewColor(40, 44, 52, 255)
	previewColor    = rl.DarkGray
	highlightColor  = rl.Fade(rl.Yellow, 0.2)
	guideColor      = rl.Fade(rl.Yellow, 0.2)
	snapColor       = rl.Green
	pointColor      = rl.DarkBlue
)

const (
	ringRadius    = 10
	pointRadius   = 4
	ellipseDetail = 48
)

func vec(p geometry.Point) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}

// drawGrid draws the background grid for the current grid level
func (app *App) drawGrid() {
	spacing := float32(editor.GridSpacing(app.Frame.GridLevel))
	if spacing <= 0 {
		return
	}

	width := float32(app.Frame.Width)
	height := float32(app.Frame.Height)
	for x := spacing; x < width; x += spacing {
		rl.DrawLineV(rl.Vector2{X: x, Y: 0}, rl.Vector2{X: x, Y: height}, gridColor)
	}
	for y := spacing; y < height; y += spacing {
		rl.DrawLineV(rl.Vector2{X: 0, Y: y}, rl.Vector2{X: width, Y: y}, gridColor)
	}
}

// drawElements draws the store in z-order
func (app *App) drawElements() {
	for _, e := range app.Frame.Elements {
		drawElement(e, e.Color)
	}

	if !app.Frame.ShowPoints {
		return
	}
	for i, e := range app.Frame.Elements {
		for _, h := range e.Handles() {
			p, _ := e.Endpoint(h)
			c := pointColor
			if dp, ok := app.Frame.Mode.(editor.DraggingPoint); ok && dp.Element == i && dp.Handle == h {
				c = rl.Green
			}
			rl.DrawCircleV(vec(p), pointRadius, c)
		}
	}
}

// drawPreview draws the element being drawn and the creation snap target
func (app *App) drawPreview() {
	if app.Frame.HasPreview {
		drawElement(app.Frame.Preview, previewColor)
	}
	if app.Frame.HasSnapPreview {
		p := app.Frame.SnapPreview
		rl.DrawCircleLines(int32(p.X), int32(p.Y), ringRadius, snapColor)
	}
}

// drawAdvice draws highlight rings and alignment guides
func (app *App) drawAdvice() {
	for _, h := range app.Frame.Advice.Highlights {
		for _, p := range h.Points {
			rl.DrawCircleLines(int32(p.X), int32(p.Y), ringRadius, highlightColor)
		}
	}
	for _, g := range app.Frame.Advice.Guides {
		drawGuide(g)
	}
}

// drawMeasurements labels highlighted elements and the preview with their dimensions
func (app *App) drawMeasurements() {
	font := rl.GetFontDefault()
	active := activeElement(app.Frame.Mode)

	for _, h := range app.Frame.Advice.Highlights {
		if h.Element >= len(app.Frame.Elements) {
			continue
		}
		e := app.Frame.Elements[h.Element]
		label := measurement.Label{
			Text:       measurement.Describe(e),
			ScreenPos:  vec(measurement.Anchor(e)),
			BaseColor:  rl.LightGray,
			HoverColor: rl.White,
			IsSelected: h.Element == active,
			IsHovered:  true,
		}
		label.Draw(font, 14, 4)
	}

	if app.Frame.HasPreview {
		label := measurement.Label{
			Text:      measurement.Describe(app.Frame.Preview),
			ScreenPos: vec(measurement.Anchor(app.Frame.Preview)),
			BaseColor: rl.Gray,
		}
		label.Draw(font, 14, 4)
	}
}

// activeElement returns the index of the element being dragged, or -1
func activeElement(m editor.Mode) int {
	switch m := m.(type) {
	case editor.DraggingPoint:
		return m.Element
	case editor.DraggingShape:
		return m.Element
	}
	return -1
}

func drawGuide(g advisor.Guide) {
	rl.DrawLineEx(vec(g.From), vec(g.To), 1, guideColor)
}

func drawElement(e element.Element, c rl.Color) {
	switch s := e.Shape.(type) {
	case geometry.Line:
		rl.DrawLineEx(vec(s.A), vec(s.B), float32(s.Thickness), c)
	case geometry.Circle:
		rl.DrawCircleV(vec(s.Center), float32(s.Radius), c)
	case geometry.Ellipse:
		drawEllipse(s, c)
	case geometry.Rectangle:
		rec := rl.Rectangle{
			X:      float32(s.Anchor.X),
			Y:      float32(s.Anchor.Y),
			Width:  float32(s.Width),
			Height: float32(s.Height),
		}
		rl.DrawRectanglePro(rec, rl.Vector2{}, float32(s.Rotation*180/math.Pi), c)
	case geometry.Triangle:
		fillTriangle(s.A, s.B, s.C, c)
	}
}

// drawEllipse fills a rotated ellipse as a fan of triangles
func drawEllipse(e geometry.Ellipse, c rl.Color) {
	if e.Rotation == 0 {
		rl.DrawEllipse(int32(e.Center.X), int32(e.Center.Y), float32(e.Width), float32(e.Height), c)
		return
	}

	prev := ellipsePoint(e, 0)
	for i := 1; i <= ellipseDetail; i++ {
		next := ellipsePoint(e, 2*math.Pi*float64(i)/ellipseDetail)
		fillTriangle(e.Center, prev, next, c)
		prev = next
	}
}

func ellipsePoint(e geometry.Ellipse, t float64) geometry.Point {
	p := geometry.NewPoint(e.Center.X+e.Width*math.Cos(t), e.Center.Y+e.Height*math.Sin(t))
	return p.Rotate(e.Rotation, e.Center)
}

// fillTriangle draws a triangle whatever the winding of its vertices;
// raylib only fills counter-clockwise triangles
func fillTriangle(a, b, c geometry.Point, col rl.Color) {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if cross > 0 {
		b, c = c, b
	}
	rl.DrawTriangle(vec(a), vec(b), vec(c), col)
}
