package deskscene

import (
	"fmt"
	"log"
)

// TextureFile names one image asset and the tag it is registered under.
type TextureFile struct {
	Path string
	Tag  string
}

// Scene owns the draw list, the texture and material registries and the
// light, and replays the whole list through the rendering facade each frame.
// The scene is static: placements never change between frames.
type Scene struct {
	renderer  Renderer
	Textures  *TextureStore
	Materials *MaterialStore

	light           PointLight
	defaultMaterial string
	objects         []*Object
}

func NewScene(r Renderer) *Scene {
	return &Scene{
		renderer:  r,
		Textures:  NewTextureStore(),
		Materials: NewMaterialStore(),
	}
}

// AddObject validates an object and appends it to the draw list. Draw order
// follows insertion order.
func (s *Scene) AddObject(o *Object) error {
	if err := o.Validate(); err != nil {
		return err
	}
	s.objects = append(s.objects, o)
	return nil
}

func (s *Scene) Objects() []*Object {
	return s.objects
}

func (s *Scene) SetLight(l PointLight) {
	s.light = l
}

// SetDefaultMaterial names the material used by parts that do not name one.
func (s *Scene) SetDefaultMaterial(tag string) {
	s.defaultMaterial = tag
}

// LoadTextures loads every asset in the manifest. A missing or corrupt file
// is logged and skipped; the scene renders without that slot rather than
// refusing to start.
func (s *Scene) LoadTextures(files []TextureFile) {
	for _, f := range files {
		if err := s.Textures.Load(f.Path, f.Tag); err != nil {
			log.Printf("texture %q unavailable: %v", f.Tag, err)
		}
	}
}

// Prepare pushes the light and loads the mesh for every primitive kind the
// draw list uses. One mesh per kind, no matter how many draws reference it.
func (s *Scene) Prepare() error {
	s.renderer.SetLight(s.light)

	var used [meshKindCount]bool
	for _, obj := range s.objects {
		for _, p := range obj.Parts {
			used[p.Kind] = true
		}
	}
	for kind := MeshKind(0); kind < meshKindCount; kind++ {
		if !used[kind] {
			continue
		}
		if err := s.renderer.LoadMesh(kind); err != nil {
			return fmt.Errorf("load %s mesh: %w", kind, err)
		}
	}
	log.Printf("scene prepared: %d objects, %d textures, %d materials",
		len(s.objects), s.Textures.Count(), s.Materials.Count())
	return nil
}

// Render issues the full draw list for one frame.
func (s *Scene) Render() error {
	for _, obj := range s.objects {
		if err := s.drawObject(obj); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) drawObject(obj *Object) error {
	for i := range obj.Parts {
		p := &obj.Parts[i]

		position := WorldPosition(obj.Origin, obj.Orientation, p.Offset)
		rotation := obj.Orientation.Add(p.Rotation)

		s.renderer.SetTransform(p.Scale, rotation, position)
		s.applyLook(p.Look)

		if err := s.renderer.Draw(p.Kind); err != nil {
			return fmt.Errorf("object %q part %d (%s): %w", obj.Name, i, p.Kind, err)
		}
	}
	return nil
}

// applyLook pushes the color, texture and material state for one part. All
// three are set every time: the facade keeps no per-draw isolation, so
// leftovers from the previous part must be overwritten, not trusted.
func (s *Scene) applyLook(a Appearance) {
	s.renderer.SetColor(a.Color)

	if a.Texture == "" {
		s.renderer.SetTexture(nil)
	} else if tex, ok := s.Textures.Find(a.Texture); ok {
		s.renderer.SetTexture(tex)
		s.renderer.SetUVScale(a.UVScaleU, a.UVScaleV)
	} else {
		log.Printf("texture tag %q not loaded, drawing flat color", a.Texture)
		s.renderer.SetTexture(nil)
	}

	tag := a.Material
	if tag == "" {
		tag = s.defaultMaterial
	}
	if m, ok := s.Materials.Find(tag); ok {
		s.renderer.SetMaterial(m)
	} else if tag != "" {
		log.Printf("material tag %q not defined", tag)
	}
}
