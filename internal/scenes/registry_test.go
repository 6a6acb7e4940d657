package scenes

import (
	"errors"
	"reflect"
	"testing"
)

func TestAvailableVariantsSorted(t *testing.T) {
	want := []string{"animated", "lights", "shadows", "spotlight"}
	if got := AvailableVariants(); !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableVariants() = %v, want %v", got, want)
	}
}

func TestCreateVariantUnknown(t *testing.T) {
	if _, err := CreateVariant("fog"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Expected ErrUnknownVariant, got %v", err)
	}
}

func TestCreateVariantReturnsFreshConfig(t *testing.T) {
	a, _ := CreateVariant("shadows")
	a.Lights[1].Shadow.MapSize = 16
	b, _ := CreateVariant("shadows")
	if b.Lights[1].Shadow.MapSize != 1024 {
		t.Error("Each call should build a new config")
	}
}

func TestVariantsDifferOnlyInConfig(t *testing.T) {
	lights, _ := CreateVariant("lights")
	shadows, _ := CreateVariant("shadows")
	animated, _ := CreateVariant("animated")

	if lights.Shadows.Enabled || !shadows.Shadows.Enabled {
		t.Error("Only the shadow variants enable shadows")
	}
	if !animated.Animation.Enabled || animated.Animation.Params.Radius != 1.5 || animated.Animation.Params.Amplitude != 1 {
		t.Errorf("Unexpected animation %+v", animated.Animation)
	}
	if lights.Sphere.Radius != shadows.Sphere.Radius || lights.Plane.Width != animated.Plane.Width || lights.Camera != shadows.Camera {
		t.Error("Variants should share geometry and camera")
	}
}
