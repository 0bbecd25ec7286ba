package math

import "math"

// Translation returns a matrix that moves points by v. Vectors are
// unaffected by translation.
func Translation(v Vector) Matrix {
	return NewMatrix(4,
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	)
}

// Scaling returns a matrix that scales each axis by the corresponding
// component of v
func Scaling(v Vector) Matrix {
	return NewMatrix(4,
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	)
}

// RotationX returns a rotation around the x axis (radians)
func RotationX(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	return NewMatrix(4,
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// RotationY returns a rotation around the y axis (radians)
func RotationY(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	return NewMatrix(4,
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// RotationZ returns a rotation around the z axis (radians)
func RotationZ(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	return NewMatrix(4,
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Shearing returns a shear matrix where each parameter moves one
// coordinate in proportion to another: xy shears x in proportion to y,
// and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix(4,
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	)
}

// The builder methods below compose a transform fluently. Each call
// pre-multiplies the new operation onto the receiver, so a chain
//
//	Identity().Translate(a).RotateZ(r).Scale(s)
//
// applies translate, then rotate, then scale to a transformed point,
// in the order the calls were written.

// Translate composes a translation onto the transform
func (m Matrix) Translate(v Vector) Matrix {
	return Translation(v).Mul(m)
}

// Scale composes a scaling onto the transform
func (m Matrix) Scale(v Vector) Matrix {
	return Scaling(v).Mul(m)
}

// RotateX composes a rotation around the x axis onto the transform
func (m Matrix) RotateX(radians float64) Matrix {
	return RotationX(radians).Mul(m)
}

// RotateY composes a rotation around the y axis onto the transform
func (m Matrix) RotateY(radians float64) Matrix {
	return RotationY(radians).Mul(m)
}

// RotateZ composes a rotation around the z axis onto the transform
func (m Matrix) RotateZ(radians float64) Matrix {
	return RotationZ(radians).Mul(m)
}

// Shear composes a shear onto the transform
func (m Matrix) Shear(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Shearing(xy, xz, yx, yz, zx, zy).Mul(m)
}
