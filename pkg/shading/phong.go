package shading

import (
	stdmath "math"

	"github.com/yamgent/the-ray-tracer-challenge/pkg/graphics"
	"github.com/yamgent/the-ray-tracer-challenge/pkg/math"
)

// Lighting computes the Phong illumination at a point on a surface:
// the sum of an ambient, a diffuse and a specular term. The result is
// unclamped; clamping happens only at image encoding. The eye and
// normal vectors must already be unit length.
func Lighting(material Material, light PointLight, point math.Point, eye, normal math.Vector) graphics.Color {
	effectiveColor := material.Color.MultiplyColor(light.Intensity)
	lightVec := light.Position.Subtract(point).Normalize()

	ambient := effectiveColor.Multiply(material.Ambient)
	diffuse := graphics.Black()
	specular := graphics.Black()

	lightDotNormal := lightVec.Dot(normal)
	if lightDotNormal > 0 {
		diffuse = effectiveColor.Multiply(material.Diffuse * lightDotNormal)

		reflectVec := lightVec.Negate().Reflect(normal)
		reflectDotEye := reflectVec.Dot(eye)
		if reflectDotEye > 0 {
			factor := stdmath.Pow(reflectDotEye, material.Shininess)
			specular = light.Intensity.Multiply(material.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular)
}
