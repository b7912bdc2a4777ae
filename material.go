package deskscene

// Material holds the Phong attributes pushed into the shader state before a
// draw.
type Material struct {
	Tag             string
	AmbientColor    Vector3
	AmbientStrength float64
	DiffuseColor    Vector3
	SpecularColor   Vector3
	Shininess       float64
}

// MaterialStore is the tag-to-material registry, populated once at startup.
type MaterialStore struct {
	materials []Material
}

func NewMaterialStore() *MaterialStore {
	return &MaterialStore{}
}

func (s *MaterialStore) Define(m Material) {
	s.materials = append(s.materials, m)
}

// Find returns the material registered under tag. ok reports whether the
// tag exists; a miss is the caller's signal to fall back, not a default
// material in disguise.
func (s *MaterialStore) Find(tag string) (Material, bool) {
	for _, m := range s.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

func (s *MaterialStore) Count() int {
	return len(s.materials)
}
