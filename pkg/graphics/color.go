// Package graphics provides the color and canvas types the kernel
// renders into, and the plain-text image encoding of a canvas.
package graphics

import "github.com/yamgent/the-ray-tracer-challenge/pkg/math"

// Color represents an RGB color. Components are unbounded floats;
// values outside [0, 1] are only clamped at image encoding time.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns the zero color
func Black() Color {
	return Color{}
}

// White returns full-intensity white
func White() Color {
	return Color{R: 1, G: 1, B: 1}
}

// Add returns the component-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the component-wise difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the component-wise (Hadamard) product of two
// colors, used to blend a surface color with a light's intensity
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals reports whether two colors are equal within math.Epsilon
func (c Color) Equals(other Color) bool {
	return math.ApproxEqual(c.R, other.R) &&
		math.ApproxEqual(c.G, other.G) &&
		math.ApproxEqual(c.B, other.B)
}
