package viewer

import (
	"image"
	"image/color"
	"image/draw"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gostudio/internal/editor"
	"github.com/philipparndt/gostudio/internal/element"
	"github.com/philipparndt/gostudio/internal/export"
	"github.com/philipparndt/gostudio/pkg/geometry"
)

var (
	backgroundColor = color.RGBA{R: 15, G: 18, B: 25, A: 255}
	gridColor       = color.RGBA{R: 40, G: 44, B: 52, A: 255}
	previewColor    = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	highlightColor  = color.RGBA{R: 253, G: 249, B: 0, A: 51}
	snapColor       = color.RGBA{R: 0, G: 228, B: 48, A: 255}
)

const ringRadius = 10

// Canvas is a fyne widget that feeds pointer events into an editor
// session and draws the resulting frame
type Canvas struct {
	widget.BaseWidget
	session  *editor.Session
	frame    editor.Frame
	raster   *canvas.Raster
	down     bool
	onChange func(editor.Frame)
	onExport func([]geometry.Line)
}

var (
	_ desktop.Mouseable = (*Canvas)(nil)
	_ desktop.Hoverable = (*Canvas)(nil)
	_ fyne.Draggable    = (*Canvas)(nil)
)

// NewCanvas creates a canvas widget for a session
func NewCanvas(session *editor.Session) *Canvas {
	c := &Canvas{session: session}
	c.raster = canvas.NewRaster(c.draw)
	c.frame = session.Frame()
	c.ExtendBaseWidget(c)
	return c
}

// SetOnChange sets the callback invoked after every frame
func (c *Canvas) SetOnChange(callback func(editor.Frame)) {
	c.onChange = callback
}

// SetOnExport sets the callback that receives exported lines
func (c *Canvas) SetOnExport(callback func([]geometry.Line)) {
	c.onExport = callback
}

// Frame returns the most recent frame
func (c *Canvas) Frame() editor.Frame {
	return c.frame
}

// Apply runs one editor step with the canvas's pointer and size filled in
func (c *Canvas) Apply(in editor.Input) {
	in.Pointer = c.frame.Pointer
	c.step(in)
}

func (c *Canvas) step(in editor.Input) {
	size := c.Size()
	in.Width = float64(size.Width)
	in.Height = float64(size.Height)

	c.frame = c.session.Step(in)
	if c.frame.Exported && c.onExport != nil {
		c.onExport(c.frame.Export)
	}
	if c.onChange != nil {
		c.onChange(c.frame)
	}
	c.raster.Refresh()
}

func toPoint(pos fyne.Position) geometry.Point {
	return geometry.NewPoint(float64(pos.X), float64(pos.Y))
}

// MouseDown starts a gesture with the primary button
func (c *Canvas) MouseDown(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary {
		return
	}
	c.down = true
	c.step(editor.Input{Pointer: toPoint(event.Position), Pressed: true, Down: true})
}

// MouseUp ends the current gesture
func (c *Canvas) MouseUp(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary || !c.down {
		return
	}
	c.down = false
	c.step(editor.Input{Pointer: toPoint(event.Position), Released: true})
}

// MouseIn handles the pointer entering the canvas
func (c *Canvas) MouseIn(event *desktop.MouseEvent) {
	c.MouseMoved(event)
}

// MouseMoved tracks the pointer for hover highlights
func (c *Canvas) MouseMoved(event *desktop.MouseEvent) {
	c.step(editor.Input{Pointer: toPoint(event.Position), Down: c.down})
}

// MouseOut handles the pointer leaving the canvas
func (c *Canvas) MouseOut() {}

// Dragged moves the pointer while the button is held
func (c *Canvas) Dragged(event *fyne.DragEvent) {
	c.step(editor.Input{Pointer: toPoint(event.Position), Down: true})
}

// DragEnd is handled by MouseUp
func (c *Canvas) DragEnd() {}

// CreateRenderer creates the renderer for the widget
func (c *Canvas) CreateRenderer() fyne.WidgetRenderer {
	return &canvasRenderer{canvas: c, objects: []fyne.CanvasObject{c.raster}}
}

// draw renders the current frame at the widget's logical size
func (c *Canvas) draw(w, h int) image.Image {
	f := c.frame
	if f.Width > 0 && f.Height > 0 {
		w, h = int(f.Width), int(f.Height)
	}
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, backgroundColor)
	drawGrid(img, editor.GridSpacing(f.GridLevel), gridColor)

	elements := f.Elements
	if f.HasPreview {
		elements = append(elements[:len(elements):len(elements)],
			element.New(f.Preview.Shape, previewColor))
	}

	opts := export.DefaultRenderOptions()
	opts.Width, opts.Height = w, h
	opts.Background = color.RGBA{}
	opts.Points = f.ShowPoints
	shapes, err := export.Render(elements, opts)
	if err != nil {
		editor.Logger().Warn("failed to render frame", "error", err)
		return img
	}
	draw.Draw(img, img.Bounds(), shapes, image.Point{}, draw.Over)

	for _, hl := range f.Advice.Highlights {
		for _, p := range hl.Points {
			ring(img, p, ringRadius, highlightColor)
		}
	}
	for _, g := range f.Advice.Guides {
		segment(img, g.From, g.To, highlightColor)
	}
	if f.HasSnapPreview {
		ring(img, f.SnapPreview, ringRadius, snapColor)
	}
	return img
}

type canvasRenderer struct {
	canvas  *Canvas
	objects []fyne.CanvasObject
}

func (r *canvasRenderer) Layout(size fyne.Size) {
	r.canvas.raster.Resize(size)
}

func (r *canvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *canvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *canvasRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *canvasRenderer) Destroy() {}
