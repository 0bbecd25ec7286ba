// Package shading implements the Phong local illumination model: a
// point light, a surface material, and the lighting function that
// combines them.
package shading

import "github.com/yamgent/the-ray-tracer-challenge/pkg/graphics"

// Material holds the surface color and the four Phong reflection
// coefficients. No ranges are enforced; the usual values keep
// ambient/diffuse/specular in [0, 1].
type Material struct {
	Color    graphics.Color
	Ambient  float64
	Diffuse  float64
	Specular float64
	// Shininess controls the specular highlight size; useful values
	// run from about 10 (large highlight) to 200 (small highlight).
	Shininess float64
}

// NewMaterial creates a material with explicit Phong coefficients
func NewMaterial(color graphics.Color, ambient, diffuse, specular, shininess float64) Material {
	return Material{
		Color:     color,
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

// DefaultMaterial returns a white material with the standard Phong
// coefficients
func DefaultMaterial() Material {
	return Material{
		Color:     graphics.White(),
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200.0,
	}
}
