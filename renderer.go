package deskscene

// Renderer is the uniform-setting and draw facade the scene script talks to.
// Set* calls overwrite the corresponding uniform state; nothing is restored
// after a draw, so every part must push all the state it needs immediately
// before its own Draw.
type Renderer interface {
	// LoadMesh prepares the geometry for one primitive kind. Called once
	// per kind at scene setup; drawing an unloaded kind is an error.
	LoadMesh(kind MeshKind) error

	// SetTransform sets the model transform for the next draw. Rotation
	// angles are degrees.
	SetTransform(scale, rotation, position Vector3)

	// SetColor sets the flat color (or texture tint) for the next draw.
	SetColor(c RGBA)

	// SetTexture binds a texture for the next draw; nil unbinds.
	SetTexture(tex *Texture)

	// SetUVScale sets the texture coordinate scale for the next draw.
	SetUVScale(u, v float64)

	// SetMaterial sets the lighting material for the next draw.
	SetMaterial(m Material)

	// SetLight configures the scene's point light.
	SetLight(l PointLight)

	// Draw issues one draw of the given primitive with the current state.
	Draw(kind MeshKind) error
}
