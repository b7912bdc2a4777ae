package deskscene

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenRenderer is the software rasterizing backend. Faces are transformed
// into camera space on the CPU, flat shaded, clipped and projected, then
// batched for a single painter's-order pass onto the ebiten screen.
type EbitenRenderer struct {
	width  int
	height int

	meshes [meshKindCount]*MeshGeom
	view   Matrix

	scale    Vector3
	rotation Vector3
	position Vector3
	tint     RGBA
	texture  *Texture
	uvU, uvV float64
	material Material
	light    PointLight

	wireframe bool

	batch frameBatch
}

func NewEbitenRenderer(width, height int) *EbitenRenderer {
	return &EbitenRenderer{
		width:  width,
		height: height,
		view:   IdentMatrix(),
		tint:   RGBA{R: 1, G: 1, B: 1, A: 1},
		uvU:    1,
		uvV:    1,
	}
}

// SetView sets the world-to-camera transform for subsequent draws.
func (r *EbitenRenderer) SetView(view Matrix) {
	r.view = view
}

func (r *EbitenRenderer) LoadMesh(kind MeshKind) error {
	if r.meshes[kind] != nil {
		return nil
	}
	geom, err := GenerateMesh(kind)
	if err != nil {
		return err
	}
	r.meshes[kind] = geom
	return nil
}

func (r *EbitenRenderer) SetTransform(scale, rotation, position Vector3) {
	r.scale = scale
	r.rotation = rotation
	r.position = position
}

func (r *EbitenRenderer) SetColor(c RGBA) {
	r.tint = c
}

func (r *EbitenRenderer) SetTexture(tex *Texture) {
	r.texture = tex
}

func (r *EbitenRenderer) SetUVScale(u, v float64) {
	r.uvU = u
	r.uvV = v
}

func (r *EbitenRenderer) SetMaterial(m Material) {
	r.material = m
}

func (r *EbitenRenderer) SetLight(l PointLight) {
	r.light = l
}

// Draw runs one primitive through the pipeline with the current state and
// appends the surviving faces to the frame batch.
func (r *EbitenRenderer) Draw(kind MeshKind) error {
	mesh := r.meshes[kind]
	if mesh == nil {
		return fmt.Errorf("mesh %s not loaded", kind)
	}

	mv := r.view.MultiplyBy(ModelMatrix(r.scale, r.rotation, r.position))

	base := r.tint
	if r.texture != nil {
		avg := r.texture.AverageColor()
		base = RGBA{
			R: base.R * avg.R,
			G: base.G * avg.G,
			B: base.B * avg.B,
			A: base.A * avg.A,
		}
	}
	// shadeFace works in camera space, so the light moves with the view.
	light := r.light
	light.Position = r.view.TransformPoint(r.light.Position)

	for _, face := range mesh.Faces {
		pts := make([]Vector3, len(face.Points))
		for i, p := range face.Points {
			pts[i] = mv.TransformPoint(p)
		}
		normal := mv.TransformDirection(face.Normal).Normalized()

		mid := faceCentroid(pts)
		// Faces turned away from the camera are dropped; the eye sits at
		// the camera-space origin.
		if normal.Dot(mid) >= 0 {
			continue
		}

		clipped := clipAgainstNearPlane(pts)
		if len(clipped) < 3 {
			continue
		}

		col := shadeFace(mid, normal, base, r.material, light)

		xs := make([]float32, len(clipped))
		ys := make([]float32, len(clipped))
		for i, p := range clipped {
			xs[i], ys[i] = projectPoint(p, r.width, r.height)
		}
		r.batch.add(framePolygon{xs: xs, ys: ys, depth: mid.Z, col: col})
	}
	return nil
}

// SetWireframe toggles the face-outline overlay.
func (r *EbitenRenderer) SetWireframe(on bool) {
	r.wireframe = on
}

// Flush paints the batched frame far to near and clears the batch.
func (r *EbitenRenderer) Flush(screen *ebiten.Image) {
	r.batch.paint(screen, r.wireframe)
	r.batch.reset()
}

func faceCentroid(pts []Vector3) Vector3 {
	var sum Vector3
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Mult(1 / float64(len(pts)))
}
