package math

import (
	"fmt"
	"math"
)

// Point represents a position in space. As a homogeneous tuple its
// fourth component is 1, which is implied by the type rather than
// stored; translation applies to points but not to vectors.
type Point struct {
	X, Y, Z float64
}

// Vector represents a direction with magnitude. As a homogeneous tuple
// its fourth component is 0, implied by the type.
type Vector struct {
	X, Y, Z float64
}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// NewVector creates a new Vector
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns the point displaced by a vector
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Subtract returns the vector from other to p
func (p Point) Subtract(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// SubtractVector returns the point displaced backwards by a vector
func (p Point) SubtractVector(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Equals reports whether two points are equal within Epsilon
func (p Point) Equals(other Point) bool {
	return ApproxEqual(p.X, other.X) &&
		ApproxEqual(p.Y, other.Y) &&
		ApproxEqual(p.Z, other.Z)
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vector) Subtract(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Negate returns the negative of the vector
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vector) Multiply(scalar float64) Vector {
	return Vector{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector scaled by the reciprocal of a scalar
func (v Vector) Divide(scalar float64) Vector {
	return Vector{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// Magnitude returns the Euclidean length of the vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction. Normalizing a
// zero-length vector has no defined direction; callers must guard, and
// the kernel panics rather than propagate NaN silently.
func (v Vector) Normalize() Vector {
	length := v.Magnitude()
	if length == 0 {
		panic(fmt.Sprintf("math: cannot normalize zero-length vector %v", v))
	}
	return Vector{v.X / length, v.Y / length, v.Z / length}
}

// Reflect returns the vector reflected about a normal: v - 2(v·n)n.
// The normal must be unit length.
func (v Vector) Reflect(normal Vector) Vector {
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

// Equals reports whether two vectors are equal within Epsilon
func (v Vector) Equals(other Vector) bool {
	return ApproxEqual(v.X, other.X) &&
		ApproxEqual(v.Y, other.Y) &&
		ApproxEqual(v.Z, other.Z)
}
