package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSceneAddIgnoresDuplicates(t *testing.T) {
	scene := NewScene()
	light := NewAmbientLight(mgl32.Vec3{1, 1, 1}, 1)

	scene.Add(light, light)
	scene.Add(light)

	if len(scene.Children()) != 1 {
		t.Errorf("Expected 1 child, got %d", len(scene.Children()))
	}
}

func TestSceneFiltersByType(t *testing.T) {
	scene := NewScene()
	dir := NewDirectionalLight(mgl32.Vec3{1, 1, 1}, 1)
	mesh := NewMesh("sphere", nil, NewStandardMaterial())
	helper := NewLightHelper(dir)
	scene.Add(dir, mesh, helper)

	if len(scene.Lights()) != 1 || len(scene.Meshes()) != 1 || len(scene.Helpers()) != 1 {
		t.Errorf("Unexpected split: %d lights, %d meshes, %d helpers",
			len(scene.Lights()), len(scene.Meshes()), len(scene.Helpers()))
	}
	if scene.FindNode("directional-helper") != helper {
		t.Error("FindNode should locate the helper by name")
	}
}

func TestSceneRemove(t *testing.T) {
	scene := NewScene()
	mesh := NewMesh("plane", nil, NewStandardMaterial())
	scene.Add(mesh)
	scene.Remove(mesh)

	if scene.Contains(mesh) {
		t.Error("Mesh should be gone after Remove")
	}
}

func TestMeshModelMatrixRotatesPlaneFlat(t *testing.T) {
	mesh := NewMesh("plane", nil, NewStandardMaterial())
	mesh.SetRotation(-mgl32.DegToRad(90), 0, 0)
	mesh.SetPosition(0, -0.5, 0)

	// A plane corner at local (2.5, 2.5, 0) lands on the floor.
	p := mesh.WorldPoint(mgl32.Vec3{2.5, 2.5, 0})
	if !p.ApproxEqualThreshold(mgl32.Vec3{2.5, -0.5, -2.5}, 1e-5) {
		t.Errorf("Unexpected world point %v", p)
	}
}
