package scenes

import (
	"errors"
	"math"
	"testing"

	"LightLab/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAssembleLightsVariant(t *testing.T) {
	a, err := Assemble(LightsVariant())
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if len(a.Lights) != 2 || len(a.Scene.Lights()) != 2 {
		t.Fatalf("Expected 2 lights, got %d", len(a.Lights))
	}
	ambient, directional := a.Light("ambient"), a.Light("directional")
	if ambient == nil || ambient.Kind != renderer.AMBIENT_LIGHT || ambient.Intensity != 1 {
		t.Errorf("Unexpected ambient light %+v", ambient)
	}
	if directional == nil || directional.Intensity != 1.5 || directional.Position != (mgl32.Vec3{2, 2, -1}) {
		t.Errorf("Unexpected directional light %+v", directional)
	}

	if a.Material.Roughness != 0.7 || a.Material.Metalness != 0 {
		t.Errorf("Unexpected material %+v", a.Material)
	}
	if a.Sphere.Geometry.Radius != 0.5 {
		t.Errorf("Sphere radius = %v", a.Sphere.Geometry.Radius)
	}
	if a.Camera.Fov != 75 || a.Camera.Position != (mgl32.Vec3{1, 1, 2}) {
		t.Errorf("Unexpected camera %+v", a.Camera)
	}
	if len(a.Helpers) != 0 {
		t.Errorf("Lights variant has no helpers, got %d", len(a.Helpers))
	}
}

func TestAssembleSharesMaterial(t *testing.T) {
	a, err := Assemble(LightsVariant())
	if err != nil {
		t.Fatal(err)
	}
	if a.Sphere.Material != a.Plane.Material || a.Sphere.Material != a.Material {
		t.Fatal("Sphere and plane should share one material")
	}
	a.Material.SetMetalness(0.4)
	if a.Plane.Material.Metalness != 0.4 {
		t.Error("A material edit should be seen by both meshes")
	}
}

func TestAssemblePlaneDefaults(t *testing.T) {
	a, err := Assemble(LightsVariant())
	if err != nil {
		t.Fatal(err)
	}
	if a.Plane.Position.Y() != -0.5 {
		t.Errorf("Plane y = %v, want -0.5", a.Plane.Position.Y())
	}
	if math.Abs(float64(a.Plane.Rotation.X())+math.Pi/2) > 1e-6 {
		t.Errorf("Plane rotation x = %v, want -pi/2", a.Plane.Rotation.X())
	}
	// The plane lies flat, so its normal points up.
	up := a.Plane.ModelMatrix().Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3()
	if up.Sub(mgl32.Vec3{0, 1, 0}).Len() > 1e-5 {
		t.Errorf("Plane normal = %v, want +Y", up)
	}
}

func TestAssembleInvalidGeometry(t *testing.T) {
	cfg := LightsVariant()
	cfg.Sphere.Radius = -1
	if _, err := Assemble(cfg); !errors.Is(err, renderer.ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidGeometry for a negative radius, got %v", err)
	}

	cfg = LightsVariant()
	cfg.Plane.Width = 0
	if _, err := Assemble(cfg); !errors.Is(err, renderer.ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidGeometry for a zero width plane, got %v", err)
	}
}

func TestAssembleInvalidConfig(t *testing.T) {
	cfg := LightsVariant()
	cfg.Lights[0].Kind = "laser"
	if _, err := Assemble(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestAssembleSpotlightHelpers(t *testing.T) {
	a, err := Assemble(SpotlightVariant())
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"directional-helper", "directional-shadow-camera", "spot-helper", "spot-shadow-camera"} {
		if a.Helper(name) == nil {
			t.Errorf("Missing helper %q", name)
		}
		if a.Scene.FindNode(name) == nil {
			t.Errorf("Helper %q not attached to the scene", name)
		}
	}
	spot := a.Light("spot")
	if spot == nil || spot.Kind != renderer.SPOT_LIGHT {
		t.Fatalf("Unexpected spot light %+v", spot)
	}
	if math.Abs(float64(spot.Angle)-math.Pi*0.3) > 1e-6 {
		t.Errorf("Spot angle = %v", spot.Angle)
	}
}

func TestAssembleDoesNotShareConfig(t *testing.T) {
	cfg := ShadowsVariant()
	a, err := Assemble(cfg)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Lights[1].Shadow.MapSize = 64
	if a.Config.Lights[1].Shadow.MapSize != 1024 {
		t.Error("Assembly should keep its own copy of the config")
	}
}
