package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/philipparndt/gostudio/pkg/geometry"
)

// fill paints every pixel with one color
func fill(img *image.RGBA, col color.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = col.R
		img.Pix[i+1] = col.G
		img.Pix[i+2] = col.B
		img.Pix[i+3] = col.A
	}
}

// blend composites a possibly translucent color over one pixel
func blend(img *image.RGBA, x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return
	}
	i := img.PixOffset(x, y)
	a := uint32(col.A)
	inv := 255 - a
	img.Pix[i] = uint8((uint32(col.R)*a + uint32(img.Pix[i])*inv) / 255)
	img.Pix[i+1] = uint8((uint32(col.G)*a + uint32(img.Pix[i+1])*inv) / 255)
	img.Pix[i+2] = uint8((uint32(col.B)*a + uint32(img.Pix[i+2])*inv) / 255)
	img.Pix[i+3] = uint8(a + uint32(img.Pix[i+3])*inv/255)
}

// drawGrid draws vertical and horizontal lines every spacing pixels
func drawGrid(img *image.RGBA, spacing float64, col color.RGBA) {
	if spacing <= 0 {
		return
	}
	b := img.Bounds()
	step := int(spacing)
	for x := step; x < b.Max.X; x += step {
		for y := 0; y < b.Max.Y; y++ {
			blend(img, x, y, col)
		}
	}
	for y := step; y < b.Max.Y; y += step {
		for x := 0; x < b.Max.X; x++ {
			blend(img, x, y, col)
		}
	}
}

// segment draws a one pixel line using Bresenham's algorithm
func segment(img *image.RGBA, a, b geometry.Point, col color.RGBA) {
	x0, y0 := int(math.Round(a.X)), int(math.Round(a.Y))
	x1, y1 := int(math.Round(b.X)), int(math.Round(b.Y))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		blend(img, x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// ring draws a circle outline using the midpoint algorithm
func ring(img *image.RGBA, center geometry.Point, radius int, col color.RGBA) {
	cx, cy := int(math.Round(center.X)), int(math.Round(center.Y))
	x, y := radius, 0
	d := 1 - radius

	for x >= y {
		plotOctants(img, cx, cy, x, y, col)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

func plotOctants(img *image.RGBA, cx, cy, x, y int, col color.RGBA) {
	pts := [8][2]int{
		{x, y}, {y, x}, {-y, x}, {-x, y},
		{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
	}
	seen := make(map[[2]int]bool, len(pts))
	for _, p := range pts {
		if seen[p] {
			continue
		}
		seen[p] = true
		blend(img, cx+p[0], cy+p[1], col)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
