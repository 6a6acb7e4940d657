package scenes

import (
	"math"

	"LightLab/internal/behaviour"
	"LightLab/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// Shared by every variant: a rough white sphere resting over a 5x5 plane,
// seen from (1, 1, 2).
func baseConfig(name, description string) SceneConfig {
	return SceneConfig{
		Name:        name,
		Description: description,
		Background:  mgl32.Vec3{0, 0, 0},
		Lights: []LightConfig{
			{
				Name:      "ambient",
				Kind:      "ambient",
				Color:     renderer.HexColor(0xffffff),
				Intensity: 1,
			},
			{
				Name:      "directional",
				Kind:      "directional",
				Color:     renderer.HexColor(0xffffff),
				Intensity: 1.5,
				Position:  mgl32.Vec3{2, 2, -1},
			},
		},
		Material: MaterialConfig{
			Color:     mgl32.Vec3{1, 1, 1},
			Roughness: 0.7,
			Metalness: 0,
		},
		Sphere: SphereConfig{
			Radius:         0.5,
			WidthSegments:  32,
			HeightSegments: 32,
		},
		Plane: PlaneConfig{
			Width:          5,
			Height:         5,
			WidthSegments:  1,
			HeightSegments: 1,
			Position:       mgl32.Vec3{0, -0.5, 0},
			Rotation:       mgl32.Vec3{-math.Pi / 2, 0, 0},
		},
		Camera: CameraConfig{
			Fov:      75,
			Near:     0.1,
			Far:      100,
			Position: mgl32.Vec3{1, 1, 2},
		},
		Controls: ControlsConfig{
			EnableDamping: true,
			DampingFactor: 0.05,
		},
		Shadows: ShadowsConfig{Type: "pcf"},
	}
}

func lightDebugControls(intensityMax float32) []ControlConfig {
	return []ControlConfig{
		{Path: "ambient.intensity", Folder: "Ambient", Label: "intensity", Min: 0, Max: intensityMax, Step: 0.001},
		{Path: "directional.intensity", Folder: "Directional", Label: "intensity", Min: 0, Max: intensityMax, Step: 0.001},
		{Path: "directional.position.x", Folder: "Directional", Label: "x", Min: -5, Max: 5, Step: 0.001},
		{Path: "directional.position.y", Folder: "Directional", Label: "y", Min: -5, Max: 5, Step: 0.001},
		{Path: "directional.position.z", Folder: "Directional", Label: "z", Min: -5, Max: 5, Step: 0.001},
		{Path: "material.metalness", Folder: "Material", Label: "metalness", Min: 0, Max: 1, Step: 0.001},
		{Path: "material.roughness", Folder: "Material", Label: "roughness", Min: 0, Max: 1, Step: 0.001},
	}
}

func directionalShadow() *ShadowConfig {
	return &ShadowConfig{
		MapSize: 1024,
		Near:    1,
		Far:     6,
		Left:    -2,
		Right:   2,
		Top:     2,
		Bottom:  -2,
		Radius:  10,
	}
}

// LightsVariant is the plain lit scene: no shadows, no animation.
func LightsVariant() SceneConfig {
	cfg := baseConfig("lights", "Ambient and directional light over a sphere and plane")
	cfg.Debug = lightDebugControls(3)
	return cfg
}

// ShadowsVariant adds a shadow casting directional light.
func ShadowsVariant() SceneConfig {
	cfg := baseConfig("shadows", "Directional light casting the sphere's shadow onto the plane")
	cfg.Lights[1].CastShadow = true
	cfg.Lights[1].Shadow = directionalShadow()
	cfg.Lights[1].ShadowHelper = true

	cfg.Sphere.CastShadow = true
	cfg.Plane.ReceiveShadow = true
	cfg.Shadows = ShadowsConfig{Enabled: true, Type: "pcf"}

	cfg.Debug = append(lightDebugControls(3),
		ControlConfig{Path: "shadows.enabled", Folder: "Shadows", Label: "enabled"},
		ControlConfig{Path: "directional.shadow.radius", Folder: "Shadows", Label: "radius", Min: 0, Max: 20, Step: 0.1},
		ControlConfig{Path: "plane.receiveShadow", Folder: "Shadows", Label: "plane receives"},
		ControlConfig{Path: "shadowhelpers.directional.visible", Folder: "Shadows", Label: "camera helper"},
	)
	return cfg
}

// SpotlightVariant adds a hemisphere fill and a shadow casting spot light,
// each with a helper.
func SpotlightVariant() SceneConfig {
	cfg := ShadowsVariant()
	cfg.Name = "spotlight"
	cfg.Description = "Hemisphere and spot light added to the shadowed scene"

	cfg.Lights[1].Helper = true
	cfg.Lights = append(cfg.Lights,
		LightConfig{
			Name:        "hemisphere",
			Kind:        "hemisphere",
			Color:       renderer.HexColor(0x0000ff),
			GroundColor: renderer.HexColor(0x00ff00),
			Intensity:   0.3,
		},
		LightConfig{
			Name:       "spot",
			Kind:       "spot",
			Color:      renderer.HexColor(0xffffff),
			Intensity:  4,
			Position:   mgl32.Vec3{0, 2, 2},
			Distance:   10,
			Angle:      math.Pi * 0.3,
			Penumbra:   0.25,
			Decay:      1,
			CastShadow: true,
			Shadow: &ShadowConfig{
				MapSize: 1024,
				Near:    1,
				Far:     6,
				Radius:  10,
			},
			Helper:       true,
			ShadowHelper: true,
		},
	)

	cfg.Debug = append(lightDebugControls(4),
		ControlConfig{Path: "shadows.enabled", Folder: "Shadows", Label: "enabled"},
		ControlConfig{Path: "hemisphere.intensity", Folder: "Hemisphere", Label: "intensity", Min: 0, Max: 4, Step: 0.001},
		ControlConfig{Path: "hemisphere.color", Folder: "Hemisphere", Label: "sky"},
		ControlConfig{Path: "hemisphere.groundColor", Folder: "Hemisphere", Label: "ground"},
		ControlConfig{Path: "spot.intensity", Folder: "Spot", Label: "intensity", Min: 0, Max: 4, Step: 0.001},
		ControlConfig{Path: "spot.angle", Folder: "Spot", Label: "angle", Min: 0, Max: math.Pi / 2, Step: 0.001},
		ControlConfig{Path: "spot.penumbra", Folder: "Spot", Label: "penumbra", Min: 0, Max: 1, Step: 0.001},
		ControlConfig{Path: "spot.position.x", Folder: "Spot", Label: "x", Min: -5, Max: 5, Step: 0.001},
		ControlConfig{Path: "spot.position.y", Folder: "Spot", Label: "y", Min: -5, Max: 5, Step: 0.001},
		ControlConfig{Path: "spot.position.z", Folder: "Spot", Label: "z", Min: -5, Max: 5, Step: 0.001},
		ControlConfig{Path: "helpers.directional.visible", Folder: "Helpers", Label: "directional"},
		ControlConfig{Path: "helpers.spot.visible", Folder: "Helpers", Label: "spot"},
		ControlConfig{Path: "shadowhelpers.spot.visible", Folder: "Helpers", Label: "spot shadow camera"},
	)
	return cfg
}

// AnimatedVariant is the shadowed scene with the sphere orbiting the origin
// and bouncing on the plane.
func AnimatedVariant() SceneConfig {
	cfg := ShadowsVariant()
	cfg.Name = "animated"
	cfg.Description = "Shadowed scene with the sphere orbiting and bouncing"
	cfg.Lights[1].ShadowHelper = false

	cfg.Animation = AnimationConfig{
		Enabled:   true,
		Behaviour: "orbit-bounce",
		Params: behaviour.Params{
			Radius:       1.5,
			Amplitude:    1,
			Speed:        1,
			BobFrequency: 3,
		},
	}
	cfg.Debug = append(lightDebugControls(3),
		ControlConfig{Path: "shadows.enabled", Folder: "Shadows", Label: "enabled"},
		ControlConfig{Path: "animation.enabled", Folder: "Animation", Label: "enabled"},
	)
	return cfg
}
