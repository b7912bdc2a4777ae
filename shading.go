package deskscene

import (
	"image/color"
	"math"
)

// shadeFace computes the flat Phong color for one face. mid and normal are
// in camera space and normal must be unit length; the light position must
// already have been moved into camera space by the caller.
func shadeFace(mid, normal Vector3, base RGBA, mat Material, light PointLight) color.RGBA {
	lightDir := light.Position.Sub(mid).Normalized()
	viewDir := mid.Mult(-1).Normalized()

	ar := light.AmbientColor.X * mat.AmbientColor.X * mat.AmbientStrength
	ag := light.AmbientColor.Y * mat.AmbientColor.Y * mat.AmbientStrength
	ab := light.AmbientColor.Z * mat.AmbientColor.Z * mat.AmbientStrength

	diff := math.Max(normal.Dot(lightDir), 0)
	dr := light.DiffuseColor.X * mat.DiffuseColor.X * diff
	dg := light.DiffuseColor.Y * mat.DiffuseColor.Y * diff
	db := light.DiffuseColor.Z * mat.DiffuseColor.Z * diff

	// Reflect the light direction about the normal for the specular term.
	reflect := normal.Mult(2 * normal.Dot(lightDir)).Sub(lightDir)
	spec := math.Pow(math.Max(reflect.Dot(viewDir), 0), mat.Shininess) * light.SpecularIntensity / 100
	sr := light.SpecularColor.X * mat.SpecularColor.X * spec
	sg := light.SpecularColor.Y * mat.SpecularColor.Y * spec
	sb := light.SpecularColor.Z * mat.SpecularColor.Z * spec

	r := clamp01((ar+dr)*base.R + sr)
	g := clamp01((ag+dg)*base.G + sg)
	b := clamp01((ab+db)*base.B + sb)

	return color.RGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: uint8(clamp01(base.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
