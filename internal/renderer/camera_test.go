package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// testCamera is a 75 degree camera for a width x height viewport.
func testCamera(width, height int32) *Camera {
	return NewPerspectiveCamera(75, float32(width)/float32(height), 0.1, 100)
}

func TestNewPerspectiveCamera(t *testing.T) {
	cam := NewPerspectiveCamera(75, 800.0/600.0, 0.1, 100)

	if math.Abs(float64(cam.AspectRatio)-800.0/600.0) > 1e-6 {
		t.Errorf("Expected aspect 800/600, got %f", cam.AspectRatio)
	}
	if cam.Near != 0.1 || cam.Far != 100 || cam.Fov != 75 {
		t.Errorf("Unexpected frustum fov=%f near=%f far=%f", cam.Fov, cam.Near, cam.Far)
	}
	want := mgl32.Perspective(mgl32.DegToRad(75), 800.0/600.0, 0.1, 100)
	if cam.Projection != want {
		t.Error("Projection should be built on construction")
	}
}

func TestCameraGetViewMatrix(t *testing.T) {
	cam := testCamera(800, 600)
	cam.Position = mgl32.Vec3{0, 0, 5}
	cam.Target = mgl32.Vec3{0, 0, 0}

	view := cam.GetViewMatrix()

	if view.At(3, 3) != 1.0 {
		t.Error("View matrix should be valid (w component = 1)")
	}

	origin := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if math.Abs(float64(origin.Z())+5) > 1e-5 {
		t.Errorf("Target should be 5 units in front of the camera, got z=%f", origin.Z())
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := testCamera(800, 600)

	proj := cam.GetProjectionMatrix()

	if proj.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraSetAspectRatioUpdatesProjection(t *testing.T) {
	cam := testCamera(800, 600)
	before := cam.GetProjectionMatrix()

	cam.SetAspectRatio(2)

	if cam.GetProjectionMatrix() == before {
		t.Error("Projection should change with the aspect ratio")
	}
	if cam.AspectRatio != 2 {
		t.Errorf("Expected aspect 2, got %f", cam.AspectRatio)
	}
}

func TestCameraFrontWhenOnTarget(t *testing.T) {
	cam := testCamera(800, 600)
	cam.Position = mgl32.Vec3{1, 1, 1}
	cam.Target = mgl32.Vec3{1, 1, 1}

	if cam.Front() != (mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Expected default front, got %v", cam.Front())
	}
}
