package geometry

import (
	"fmt"
	stdmath "math"

	"github.com/yamgent/the-ray-tracer-challenge/pkg/math"
	"github.com/yamgent/the-ray-tracer-challenge/pkg/shading"
)

// Sphere is a unit sphere at the local origin. Its shape in the world
// comes entirely from its object-to-world transform; the inverse and
// inverse-transpose are cached so intersection and normal computation
// never invert per ray.
type Sphere struct {
	transform    math.Matrix
	inverse      math.Matrix
	invTranspose math.Matrix
	material     shading.Material
}

// NewSphere creates a unit sphere with the identity transform and the
// default material
func NewSphere() *Sphere {
	s := &Sphere{material: shading.DefaultMaterial()}
	s.SetTransform(math.Identity())
	return s
}

// Transform returns the sphere's object-to-world transform
func (s *Sphere) Transform() math.Matrix {
	return s.transform
}

// SetTransform sets the object-to-world transform. The transform must
// be invertible; a singular matrix is a programmer error and panics.
func (s *Sphere) SetTransform(m math.Matrix) {
	inverse, err := m.Inverse()
	if err != nil {
		panic(fmt.Sprintf("geometry: sphere transform is not invertible: %v", err))
	}
	s.transform = m
	s.inverse = inverse
	s.invTranspose = inverse.Transpose()
}

// Material returns the sphere's material
func (s *Sphere) Material() shading.Material {
	return s.material
}

// SetMaterial sets the sphere's material
func (s *Sphere) SetMaterial(m shading.Material) {
	s.material = m
}

// Intersect returns the intersections of a world-space ray with the
// sphere, sorted ascending by t. Tangent rays yield two equal t
// values; a miss yields an empty collection.
func (s *Sphere) Intersect(ray Ray) Intersections {
	// Solve the quadratic in the sphere's object space, where it is
	// a unit sphere at the origin.
	localRay := ray.Transform(s.inverse)

	// Vector from the sphere's center to the ray origin
	oc := localRay.Origin.Subtract(math.NewPoint(0, 0, 0))

	a := localRay.Direction.Dot(localRay.Direction)
	b := 2 * localRay.Direction.Dot(oc)
	c := oc.Dot(oc) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return NewIntersections()
	}

	sqrtD := stdmath.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return NewIntersections(
		NewIntersection(t1, s),
		NewIntersection(t2, s),
	)
}

// NormalAt returns the world-space surface normal at a world-space
// point on the sphere. The object-space normal maps to world space
// through the inverse-transpose of the transform; taking only the
// spatial components there zeroes the w that non-uniform scaling
// would otherwise distort.
func (s *Sphere) NormalAt(worldPoint math.Point) math.Vector {
	localPoint := s.inverse.MulPoint(worldPoint)
	localNormal := localPoint.Subtract(math.NewPoint(0, 0, 0))
	worldNormal := s.invTranspose.MulVector(localNormal)
	return worldNormal.Normalize()
}
