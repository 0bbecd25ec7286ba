package graphics

import "fmt"

// Canvas is a fixed-size grid of pixels, stored row-major and
// initialized to black. Out-of-range access is a programmer error and
// panics; rendering code computes its own coordinates and must never
// produce one.
type Canvas struct {
	width, height int
	pixels        []Color
}

// NewCanvas creates a canvas of the given size with every pixel black
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels
func (c *Canvas) Height() int {
	return c.height
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) Color {
	c.checkBounds(x, y)
	return c.pixels[y*c.width+x]
}

// WritePixel sets the color at (x, y)
func (c *Canvas) WritePixel(x, y int, color Color) {
	c.checkBounds(x, y)
	c.pixels[y*c.width+x] = color
}

func (c *Canvas) checkBounds(x, y int) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		panic(fmt.Sprintf("graphics: out of range: (%d, %d) for size (%d, %d)",
			x, y, c.width, c.height))
	}
}
