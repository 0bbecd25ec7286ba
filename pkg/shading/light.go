package shading

import (
	"github.com/yamgent/the-ray-tracer-challenge/pkg/graphics"
	"github.com/yamgent/the-ray-tracer-challenge/pkg/math"
)

// PointLight is a light source with no size, existing at a single
// point and radiating in every direction
type PointLight struct {
	Position  math.Point
	Intensity graphics.Color
}

// NewPointLight creates a new point light
func NewPointLight(position math.Point, intensity graphics.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
