package deskscene

// PointLight is the scene's single light source. Position is in world
// space; the renderer moves it into camera space before shading.
type PointLight struct {
	Position          Vector3
	AmbientColor      Vector3
	DiffuseColor      Vector3
	SpecularColor     Vector3
	SpecularIntensity float64
}
