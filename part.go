package deskscene

import "fmt"

// MeshKind selects one of the pre-loaded primitive meshes.
type MeshKind int

const (
	MeshPlane MeshKind = iota
	MeshBox
	MeshSphere
	MeshCylinder
	MeshTaperedCylinder
	MeshCone
	MeshTorus
	meshKindCount
)

func (k MeshKind) String() string {
	switch k {
	case MeshPlane:
		return "plane"
	case MeshBox:
		return "box"
	case MeshSphere:
		return "sphere"
	case MeshCylinder:
		return "cylinder"
	case MeshTaperedCylinder:
		return "tapered cylinder"
	case MeshCone:
		return "cone"
	case MeshTorus:
		return "torus"
	}
	return fmt.Sprintf("mesh(%d)", int(k))
}

// RGBA is a normalized color, components in [0,1].
type RGBA struct {
	R, G, B, A float64
}

// Appearance is the shader-facing look of a part: either a flat color, or a
// texture tag with UV scale and a material tag. Color is always applied; for
// textured parts it acts as a tint and is normally white.
type Appearance struct {
	Color    RGBA
	Texture  string // texture tag, empty for flat color
	UVScaleU float64
	UVScaleV float64
	Material string // material tag, empty for the scene default
}

func ColorLook(r, g, b, a float64) Appearance {
	return Appearance{Color: RGBA{R: r, G: g, B: b, A: a}}
}

func TexturedLook(texture string, u, v float64, material string) Appearance {
	return Appearance{
		Color:    RGBA{R: 1, G: 1, B: 1, A: 1},
		Texture:  texture,
		UVScaleU: u,
		UVScaleV: v,
		Material: material,
	}
}

// Part is one draw call's worth of placement: a primitive mesh with its
// scale, local rotation (degrees), object-local offset and appearance.
type Part struct {
	Kind     MeshKind
	Scale    Vector3
	Rotation Vector3
	Offset   Vector3
	Look     Appearance
}

// Object is a logical scene object: a base placement plus an ordered list of
// parts. Orientation angles are degrees, applied in the fixed z, -y, x order
// of RotateOffset.
type Object struct {
	Name        string
	Origin      Vector3
	Orientation Vector3
	Parts       []Part
}

// Validate checks an object before it enters the draw list, so malformed
// placements fail at load time instead of rendering garbage.
func (o *Object) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("object has no name")
	}
	if len(o.Parts) == 0 {
		return fmt.Errorf("object %q has no parts", o.Name)
	}
	if !o.Origin.IsFinite() || !o.Orientation.IsFinite() {
		return fmt.Errorf("object %q has a non-finite placement", o.Name)
	}
	for i, p := range o.Parts {
		if p.Kind < 0 || p.Kind >= meshKindCount {
			return fmt.Errorf("object %q part %d: unknown mesh kind %d", o.Name, i, int(p.Kind))
		}
		if !p.Scale.IsFinite() || !p.Rotation.IsFinite() || !p.Offset.IsFinite() {
			return fmt.Errorf("object %q part %d: non-finite values", o.Name, i)
		}
	}
	return nil
}

// partColumns builds parts from the tabular authoring form: one column per
// attribute, one row per part. All columns must have the same length; a
// ragged table is rejected here rather than read out of range later.
func partColumns(kind MeshKind, scales, rotations, offsets []Vector3, looks []Appearance) ([]Part, error) {
	n := len(scales)
	if len(rotations) != n || len(offsets) != n || len(looks) != n {
		return nil, fmt.Errorf("%s part table is ragged: %d scales, %d rotations, %d offsets, %d looks",
			kind, len(scales), len(rotations), len(offsets), len(looks))
	}
	parts := make([]Part, n)
	for i := 0; i < n; i++ {
		parts[i] = Part{
			Kind:     kind,
			Scale:    scales[i],
			Rotation: rotations[i],
			Offset:   offsets[i],
			Look:     looks[i],
		}
	}
	return parts, nil
}

// repeatVec and repeatLook expand a single value into a column, for tables
// where every row shares an attribute.
func repeatVec(v Vector3, n int) []Vector3 {
	col := make([]Vector3, n)
	for i := range col {
		col[i] = v
	}
	return col
}

func repeatLook(a Appearance, n int) []Appearance {
	col := make([]Appearance, n)
	for i := range col {
		col[i] = a
	}
	return col
}

// centerRaised lifts each offset by half the part's y scale, compensating
// for meshes whose origin is at their center rather than their base.
func centerRaised(offsets, scales []Vector3) []Vector3 {
	raised := make([]Vector3, len(offsets))
	for i := range offsets {
		raised[i] = offsets[i]
		if i < len(scales) {
			raised[i].Y += scales[i].Y / 2
		}
	}
	return raised
}
