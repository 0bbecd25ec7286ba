// Package geometry provides rays, spheres and the intersection
// bookkeeping that connects them.
package geometry

import "github.com/yamgent/the-ray-tracer-challenge/pkg/math"

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    math.Point
	Direction math.Vector
}

// NewRay creates a new ray
func NewRay(origin math.Point, direction math.Vector) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray. Negative t
// walks backwards from the origin.
func (r Ray) Position(t float64) math.Point {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns the ray with both origin and direction mapped
// through the given matrix
func (r Ray) Transform(m math.Matrix) Ray {
	return Ray{
		Origin:    m.MulPoint(r.Origin),
		Direction: m.MulVector(r.Direction),
	}
}

// Equals reports whether two rays are equal within math.Epsilon
func (r Ray) Equals(other Ray) bool {
	return r.Origin.Equals(other.Origin) && r.Direction.Equals(other.Direction)
}
