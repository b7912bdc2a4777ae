package deskscene

// recordingRenderer is a mock for testing purposes. It records every call so
// tests can check what the scene script pushed through the facade.
type recordingRenderer struct {
	loaded []MeshKind
	draws  []drawRecord
	light  PointLight

	// current uniform state, overwritten by Set* calls
	scale    Vector3
	rotation Vector3
	position Vector3
	tint     RGBA
	texture  *Texture
	uvU, uvV float64
	material Material

	colorSets    int
	textureSets  int
	materialSets int
}

// drawRecord is the uniform state captured at one Draw call.
type drawRecord struct {
	kind     MeshKind
	scale    Vector3
	rotation Vector3
	position Vector3
	tint     RGBA
	texture  *Texture
	uvU, uvV float64
	material Material
}

func (r *recordingRenderer) LoadMesh(kind MeshKind) error {
	r.loaded = append(r.loaded, kind)
	return nil
}

func (r *recordingRenderer) SetTransform(scale, rotation, position Vector3) {
	r.scale, r.rotation, r.position = scale, rotation, position
}

func (r *recordingRenderer) SetColor(c RGBA) {
	r.tint = c
	r.colorSets++
}

func (r *recordingRenderer) SetTexture(tex *Texture) {
	r.texture = tex
	r.textureSets++
}

func (r *recordingRenderer) SetUVScale(u, v float64) {
	r.uvU, r.uvV = u, v
}

func (r *recordingRenderer) SetMaterial(m Material) {
	r.material = m
	r.materialSets++
}

func (r *recordingRenderer) SetLight(l PointLight) {
	r.light = l
}

func (r *recordingRenderer) Draw(kind MeshKind) error {
	r.draws = append(r.draws, drawRecord{
		kind:     kind,
		scale:    r.scale,
		rotation: r.rotation,
		position: r.position,
		tint:     r.tint,
		texture:  r.texture,
		uvU:      r.uvU,
		uvV:      r.uvV,
		material: r.material,
	})
	return nil
}

func (r *recordingRenderer) kindCounts() map[MeshKind]int {
	counts := make(map[MeshKind]int)
	for _, d := range r.draws {
		counts[d.kind]++
	}
	return counts
}
