package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"

	"github.com/gogpu/gg"
	"github.com/philipparndt/gostudio/internal/element"
	"github.com/philipparndt/gostudio/pkg/geometry"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// RenderOptions controls PNG output
type RenderOptions struct {
	Width      int
	Height     int
	Background color.RGBA
	// Labels draws each element's store index next to it
	Labels bool
	// Points marks every endpoint
	Points bool
}

// DefaultRenderOptions returns a dark 800x600 canvas
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Width:      800,
		Height:     600,
		Background: color.RGBA{R: 24, G: 24, B: 24, A: 255},
	}
}

const pointRadius = 4.0

// RenderPNG draws the elements and encodes the result as PNG
func RenderPNG(w io.Writer, elements []element.Element, opts RenderOptions) error {
	img, err := Render(elements, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// Render draws the elements into an image
func Render(elements []element.Element, opts RenderOptions) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	defer dc.Close()
	dc.ClearWithColor(gg.FromColor(opts.Background))

	for i, e := range elements {
		if err := drawElement(dc, e); err != nil {
			return nil, fmt.Errorf("failed to draw element %d: %w", i, err)
		}
	}

	if opts.Points {
		dc.SetColor(color.RGBA{R: 0, G: 121, B: 241, A: 255})
		for _, e := range elements {
			for _, h := range e.Handles() {
				p, _ := e.Endpoint(h)
				dc.DrawCircle(p.X, p.Y, pointRadius)
				if err := dc.Fill(); err != nil {
					return nil, fmt.Errorf("failed to draw point: %w", err)
				}
			}
		}
	}

	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("failed to flush: %w", err)
	}

	src := dc.Image()
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)

	if opts.Labels {
		drawLabels(img, elements)
	}
	return img, nil
}

func drawElement(dc *gg.Context, e element.Element) error {
	dc.SetColor(e.Color)

	switch s := e.Shape.(type) {
	case geometry.Line:
		dc.SetLineWidth(s.Thickness)
		dc.DrawLine(s.A.X, s.A.Y, s.B.X, s.B.Y)
		return dc.Stroke()
	case geometry.Circle:
		dc.DrawCircle(s.Center.X, s.Center.Y, s.Radius)
		return dc.Fill()
	case geometry.Ellipse:
		dc.Push()
		defer dc.Pop()
		dc.RotateAbout(s.Rotation, s.Center.X, s.Center.Y)
		dc.DrawEllipse(s.Center.X, s.Center.Y, s.Width, s.Height)
		return dc.Fill()
	case geometry.Rectangle:
		dc.Push()
		defer dc.Pop()
		dc.RotateAbout(s.Rotation, s.Anchor.X, s.Anchor.Y)
		dc.DrawRectangle(s.Anchor.X, s.Anchor.Y, s.Width, s.Height)
		return dc.Fill()
	case geometry.Triangle:
		dc.MoveTo(s.A.X, s.A.Y)
		dc.LineTo(s.B.X, s.B.Y)
		dc.LineTo(s.C.X, s.C.Y)
		dc.ClosePath()
		return dc.Fill()
	}
	return nil
}

// drawLabels writes each element's index at the top-left of its bounds
func drawLabels(img *image.RGBA, elements []element.Element) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 255, G: 255, B: 0, A: 255}),
		Face: basicfont.Face7x13,
	}
	for i, e := range elements {
		b := e.Shape.Bounds()
		d.Dot = fixed.P(int(b.Min.X)+2, int(b.Min.Y)-2)
		d.DrawString(strconv.Itoa(i))
	}
}
