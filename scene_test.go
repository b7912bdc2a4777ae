package deskscene

import "testing"

// buildDeskScene builds the still life against the recording mock with no
// texture files on disk, so every textured part falls back to flat color.
func buildDeskScene(t *testing.T) (*Scene, *recordingRenderer) {
	t.Helper()
	mock := &recordingRenderer{}
	scene, err := NewDeskScene(mock, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return scene, mock
}

func TestDeskSceneDrawCounts(t *testing.T) {
	scene, mock := buildDeskScene(t)
	if err := scene.Render(); err != nil {
		t.Fatal(err)
	}

	if len(mock.draws) != 34 {
		t.Errorf("total draws %d, want 34", len(mock.draws))
	}

	want := map[MeshKind]int{
		MeshPlane:           2,
		MeshBox:             7,
		MeshCylinder:        5,
		MeshTaperedCylinder: 1,
		MeshSphere:          1,
		MeshCone:            1,
		MeshTorus:           17,
	}
	got := mock.kindCounts()
	for kind, n := range want {
		if got[kind] != n {
			t.Errorf("%s draws: got %d, want %d", kind, got[kind], n)
		}
	}
}

func TestDeskSceneLoadsEachUsedMeshOnce(t *testing.T) {
	_, mock := buildDeskScene(t)

	seen := make(map[MeshKind]int)
	for _, kind := range mock.loaded {
		seen[kind]++
	}
	if len(seen) != 7 {
		t.Errorf("loaded %d kinds, want 7", len(seen))
	}
	for kind, n := range seen {
		if n != 1 {
			t.Errorf("%s loaded %d times", kind, n)
		}
	}
}

func TestDeskSceneLight(t *testing.T) {
	_, mock := buildDeskScene(t)
	if !vecAlmostEqual(mock.light.Position, Vec3(5, 4, -4)) {
		t.Errorf("light position %+v", mock.light.Position)
	}
	if !almostEqual(mock.light.SpecularIntensity, 30) {
		t.Errorf("specular intensity %v", mock.light.SpecularIntensity)
	}
}

func TestDeskSceneStatePushedBeforeEveryDraw(t *testing.T) {
	scene, mock := buildDeskScene(t)
	if err := scene.Render(); err != nil {
		t.Fatal(err)
	}

	// Color and texture state is re-pushed for every part. Material is too,
	// because every look resolves to some tag once the default applies.
	if mock.colorSets != len(mock.draws) {
		t.Errorf("%d color sets for %d draws", mock.colorSets, len(mock.draws))
	}
	if mock.textureSets != len(mock.draws) {
		t.Errorf("%d texture sets for %d draws", mock.textureSets, len(mock.draws))
	}
	if mock.materialSets != len(mock.draws) {
		t.Errorf("%d material sets for %d draws", mock.materialSets, len(mock.draws))
	}
}

func TestDeskSceneMissingTextureFallsBackToColor(t *testing.T) {
	scene, mock := buildDeskScene(t)
	if err := scene.Render(); err != nil {
		t.Fatal(err)
	}

	// No texture files were loadable, so every draw must run untextured.
	for i, d := range mock.draws {
		if d.texture != nil {
			t.Errorf("draw %d still carries texture %q", i, d.texture.Tag)
		}
	}
}

func TestDeskSceneRubiksPlacement(t *testing.T) {
	scene, mock := buildDeskScene(t)
	if err := scene.Render(); err != nil {
		t.Fatal(err)
	}

	// The rubiks pile draws last; its first cube sits at the pile origin,
	// raised by half its height.
	first := mock.draws[len(mock.draws)-4]
	if first.kind != MeshBox {
		t.Fatalf("kind %v", first.kind)
	}
	if !vecAlmostEqual(first.position, Vec3(-5.5, 1.5, 0)) {
		t.Errorf("position %+v", first.position)
	}
	if !vecAlmostEqual(first.scale, Vec3(3, 3, 3)) {
		t.Errorf("scale %+v", first.scale)
	}
	if !vecAlmostEqual(first.rotation, Vec3(0, 0, -90)) {
		t.Errorf("rotation %+v", first.rotation)
	}
}

func TestDeskScenePencilTilted(t *testing.T) {
	scene, mock := buildDeskScene(t)
	if err := scene.Render(); err != nil {
		t.Fatal(err)
	}

	// The pencil's parts inherit the object orientation, so the eraser stub
	// high on the local axis must land away from straight up.
	tilt := Vec3(50, 20, 245)
	for _, d := range mock.draws {
		if d.kind != MeshCylinder {
			continue
		}
		if !vecAlmostEqual(d.rotation, tilt) {
			t.Errorf("cylinder rotation %+v, want %+v", d.rotation, tilt)
		}
	}

	want := WorldPosition(Vec3(0.2, 2.8, 5.4), tilt, Vec3(0, 14.8, 0))
	found := false
	for _, d := range mock.draws {
		if d.kind == MeshCylinder && vecAlmostEqual(d.position, want) {
			found = true
		}
	}
	if !found {
		t.Errorf("no cylinder drawn at rotated eraser position %+v", want)
	}
}

func TestSceneDefaultMaterialApplied(t *testing.T) {
	scene, mock := buildDeskScene(t)
	if err := scene.Render(); err != nil {
		t.Fatal(err)
	}

	// The notebook cover names no material, so the scene default applies.
	def, ok := scene.Materials.Find(MatDefault)
	if !ok {
		t.Fatal("default material missing")
	}
	for _, d := range mock.draws {
		if d.kind == MeshBox && vecAlmostEqual(d.scale, Vec3(10, 2, 14)) {
			if d.material.Tag != def.Tag {
				t.Errorf("cover material %q, want %q", d.material.Tag, def.Tag)
			}
			return
		}
	}
	t.Fatal("notebook cover draw not found")
}

func TestSceneRejectsInvalidObject(t *testing.T) {
	scene := NewScene(&recordingRenderer{})
	err := scene.AddObject(&Object{Name: "hollow"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(scene.Objects()) != 0 {
		t.Error("invalid object was added anyway")
	}
}
