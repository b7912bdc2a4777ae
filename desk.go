package deskscene

import (
	"fmt"
	"path/filepath"
)

// Texture tags used by the desk scene.
const (
	TexPages  = "pages"
	TexPage   = "page"
	TexRubiks = "rubiks"
	TexShadow = "shadow"
)

// Material tags used by the desk scene.
const (
	MatDefault = "default_material"
	MatTable   = "table_material"
	MatPaper   = "paper_material"
	MatWire    = "wire_material"
	MatRubiks  = "rubiks_material"
)

// DeskTextureFiles is the asset manifest for the desk scene, rooted at dir.
func DeskTextureFiles(dir string) []TextureFile {
	return []TextureFile{
		{Path: filepath.Join(dir, "pages.jpg"), Tag: TexPages},
		{Path: filepath.Join(dir, "page.jpg"), Tag: TexPage},
		{Path: filepath.Join(dir, "rubiks.jpg"), Tag: TexRubiks},
		{Path: filepath.Join(dir, "shadow.jpg"), Tag: TexShadow},
	}
}

// DefineDeskMaterials registers the material set the desk objects reference.
// Ambient strengths above 1 saturate the ambient term; the shading clamp
// absorbs them the way the shader did.
func DefineDeskMaterials(store *MaterialStore) {
	store.Define(Material{
		Tag:             MatDefault,
		AmbientColor:    Vec3(0.8, 0.8, 0.8),
		AmbientStrength: 100.5,
		DiffuseColor:    Vec3(0.7, 0.7, 0.8),
		SpecularColor:   Vec3(0.3, 0.5, 0.8),
		Shininess:       100.5,
	})
	store.Define(Material{
		Tag:             MatTable,
		AmbientColor:    Vec3(1, 1, 1),
		AmbientStrength: 1.0,
		DiffuseColor:    Vec3(0.8, 0.7, 0.8),
		SpecularColor:   Vec3(0.05, 0.05, 0.05),
		Shininess:       1.1,
	})
	store.Define(Material{
		Tag:             MatPaper,
		AmbientColor:    Vec3(0.99, 0.99, 0.99),
		AmbientStrength: 0.99,
		DiffuseColor:    Vec3(0.99, 0.99, 0.99),
		SpecularColor:   Vec3(0.1, 0.1, 0.1),
		Shininess:       100.0,
	})
	store.Define(Material{
		Tag:             MatWire,
		AmbientColor:    Vec3(0.8, 0.8, 0.8),
		AmbientStrength: 100.5,
		DiffuseColor:    Vec3(0.7, 0.7, 0.8),
		SpecularColor:   Vec3(0.3, 0.5, 0.8),
		Shininess:       100.5,
	})
	store.Define(Material{
		Tag:             MatRubiks,
		AmbientColor:    Vec3(0.5, 0.5, 0.5),
		AmbientStrength: 1.0,
		DiffuseColor:    Vec3(0.9, 0.5, 0.5),
		SpecularColor:   Vec3(0.1, 0.1, 0.9),
		Shininess:       1.0,
	})
}

// DeskLight is the single point light the still life is lit by.
func DeskLight() PointLight {
	return PointLight{
		Position:          Vec3(5, 4, -4),
		AmbientColor:      Vec3(0.7, 0.7, 0.5),
		DiffuseColor:      Vec3(0.5, 0.5, 0.5),
		SpecularColor:     Vec3(0.5, 0.5, 0.7),
		SpecularIntensity: 30,
	}
}

// TableObject is the table top: one large textured plane at the origin.
func TableObject() (*Object, error) {
	parts, err := partColumns(MeshPlane,
		[]Vector3{Vec3(20, 1, 20)},
		[]Vector3{Vec3(0, 0, 0)},
		[]Vector3{Vec3(0, 0, 0)},
		[]Appearance{TexturedLook(TexShadow, 1.1, 1.1, MatTable)},
	)
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	return &Object{Name: "table", Parts: parts}, nil
}

// PencilObject is the mechanical pencil leaning against the notebook. The
// parts are modelled upright along +y and the whole object is tilted by its
// orientation.
func PencilObject() (*Object, error) {
	obj := &Object{
		Name:        "pencil",
		Origin:      Vec3(0.2, 2.8, 5.4),
		Orientation: Vec3(50, 20, 245),
	}

	// Tip, grip collar, lead sleeve, barrel, eraser stub.
	cylinders, err := partColumns(MeshCylinder,
		[]Vector3{
			Vec3(0.3, 0.4, 0.3),
			Vec3(0.4, 0.6, 0.4),
			Vec3(0.25, 11.2, 0.25),
			Vec3(0.4, 10.8, 0.4),
			Vec3(0.075, 0.2, 0.075),
		},
		repeatVec(Vec3(0, 0, 0), 5),
		[]Vector3{
			Vec3(0, 0, 0),
			Vec3(0, 0.4, 0),
			Vec3(0, 1.0, 0),
			Vec3(0, 1.4, 0),
			Vec3(0, 14.8, 0),
		},
		[]Appearance{
			ColorLook(0.9, 0.9, 0.9, 0.9),
			ColorLook(0.1, 0.1, 0.1, 0.9),
			ColorLook(0.1, 0.1, 0.1, 0.9),
			ColorLook(0.7, 0.7, 0.7, 0.5),
			ColorLook(0.1, 0.1, 0.1, 0.9),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("pencil cylinders: %w", err)
	}
	obj.Parts = append(obj.Parts, cylinders...)

	// Nose taper between tip and barrel.
	taper, err := partColumns(MeshTaperedCylinder,
		[]Vector3{Vec3(0.4, 2.2, 0.4)},
		[]Vector3{Vec3(0, 0, 0)},
		[]Vector3{Vec3(0, 12.2, 0)},
		[]Appearance{ColorLook(0.1, 0.1, 0.1, 0.9)},
	)
	if err != nil {
		return nil, fmt.Errorf("pencil taper: %w", err)
	}
	obj.Parts = append(obj.Parts, taper...)

	// Pocket clip, two boxes.
	clipScales := []Vector3{
		Vec3(0.45, 0.9, 0.3),
		Vec3(0.4, 3.4, 0.12),
	}
	clipOffsets := centerRaised([]Vector3{
		Vec3(0, 2.25, 0.4),
		Vec3(0, 2.2, 0.6),
	}, clipScales)
	clip, err := partColumns(MeshBox,
		clipScales,
		repeatVec(Vec3(0, 0, 0), 2),
		clipOffsets,
		repeatLook(ColorLook(1, 0.4, 0.1, 0.9), 2),
	)
	if err != nil {
		return nil, fmt.Errorf("pencil clip: %w", err)
	}
	obj.Parts = append(obj.Parts, clip...)

	// Clip rivet.
	rivet, err := partColumns(MeshSphere,
		[]Vector3{Vec3(0.2, 0.2, 0.1)},
		[]Vector3{Vec3(0, 0, 0)},
		[]Vector3{Vec3(0, 5.3, 0.52)},
		[]Appearance{ColorLook(1, 0.4, 0.1, 0.7)},
	)
	if err != nil {
		return nil, fmt.Errorf("pencil rivet: %w", err)
	}
	obj.Parts = append(obj.Parts, rivet...)

	// Eraser cap.
	eraserCap, err := partColumns(MeshCone,
		[]Vector3{Vec3(0.2, 0.6, 0.2)},
		[]Vector3{Vec3(0, 0, 0)},
		[]Vector3{Vec3(0, 14.4, 0)},
		[]Appearance{ColorLook(0.1, 0.1, 0.1, 0.9)},
	)
	if err != nil {
		return nil, fmt.Errorf("pencil cap: %w", err)
	}
	obj.Parts = append(obj.Parts, eraserCap...)

	return obj, nil
}

// notebookRings is the number of spiral binding rings.
const notebookRings = 17

// NotebookObject is the spiral-bound notebook: cover block, a slightly
// raised page plane and the wire rings along the left edge.
func NotebookObject() (*Object, error) {
	obj := &Object{
		Name:        "notebook",
		Origin:      Vec3(5.5, 0, 0),
		Orientation: Vec3(0, 5, 0),
	}

	coverScales := []Vector3{Vec3(10, 2, 14)}
	cover, err := partColumns(MeshBox,
		coverScales,
		[]Vector3{Vec3(0, 0, 0)},
		centerRaised([]Vector3{Vec3(0, 0, 0)}, coverScales),
		[]Appearance{TexturedLook(TexPages, 1, 1, "")},
	)
	if err != nil {
		return nil, fmt.Errorf("notebook cover: %w", err)
	}
	obj.Parts = append(obj.Parts, cover...)

	page, err := partColumns(MeshPlane,
		[]Vector3{Vec3(5, 1, 7)},
		[]Vector3{Vec3(0, -1, 0)},
		[]Vector3{Vec3(0.1, 2.02, 0)},
		[]Appearance{TexturedLook(TexPage, 1, 1, MatPaper)},
	)
	if err != nil {
		return nil, fmt.Errorf("notebook page: %w", err)
	}
	obj.Parts = append(obj.Parts, page...)

	ringScales := repeatVec(Vec3(0.25, 0.25, 0.25), notebookRings)
	ringOffsets := make([]Vector3, notebookRings)
	for i := range ringOffsets {
		z := 13.5 / notebookRings * float64(8-i)
		ringOffsets[i] = Vec3(-5, 1.125, z)
	}
	rings, err := partColumns(MeshTorus,
		ringScales,
		repeatVec(Vec3(0, 0, 0), notebookRings),
		ringOffsets,
		repeatLook(ColorLook(0.7, 0.7, 0.7, 0.9), notebookRings),
	)
	if err != nil {
		return nil, fmt.Errorf("notebook rings: %w", err)
	}
	obj.Parts = append(obj.Parts, rings...)

	return obj, nil
}

// RubiksObject is the pile of four Rubik's cubes, each turned differently so
// the shared texture reads as a scrambled face on every cube.
func RubiksObject() (*Object, error) {
	scales := repeatVec(Vec3(3, 3, 3), 4)
	offsets := centerRaised([]Vector3{
		Vec3(0, 0, 0),
		Vec3(-3, 0, 1.5),
		Vec3(-3, 0, -1.5),
		Vec3(-1.5, 3, 0),
	}, scales)
	parts, err := partColumns(MeshBox,
		scales,
		[]Vector3{
			Vec3(0, 0, -90),
			Vec3(180, 0, 0),
			Vec3(0, -90, 0),
			Vec3(90, 180, 135),
		},
		offsets,
		repeatLook(TexturedLook(TexRubiks, 1, 1, MatRubiks), 4),
	)
	if err != nil {
		return nil, fmt.Errorf("rubiks: %w", err)
	}
	return &Object{Name: "rubiks", Origin: Vec3(-5.5, 0, 0), Parts: parts}, nil
}

// NewDeskScene assembles the complete still life: registries filled, assets
// loaded from textureDir, objects added in back-to-front authoring order and
// meshes prepared on the renderer.
func NewDeskScene(r Renderer, textureDir string) (*Scene, error) {
	s := NewScene(r)
	s.SetLight(DeskLight())
	s.SetDefaultMaterial(MatDefault)
	DefineDeskMaterials(s.Materials)
	s.LoadTextures(DeskTextureFiles(textureDir))

	builders := []func() (*Object, error){
		TableObject,
		PencilObject,
		NotebookObject,
		RubiksObject,
	}
	for _, build := range builders {
		obj, err := build()
		if err != nil {
			return nil, err
		}
		if err := s.AddObject(obj); err != nil {
			return nil, fmt.Errorf("add %q: %w", obj.Name, err)
		}
	}

	if err := s.Prepare(); err != nil {
		return nil, err
	}
	return s, nil
}
