package scenes

import (
	"fmt"

	"LightLab/internal/logger"
	"LightLab/internal/renderer"

	"go.uber.org/zap"
)

// Assembly is a built scene plus direct references to the objects the binder,
// shadow setup and render loop touch.
type Assembly struct {
	Config SceneConfig

	Scene    *renderer.Scene
	Camera   *renderer.Camera
	Material *renderer.StandardMaterial
	Sphere   *renderer.Mesh
	Plane    *renderer.Mesh
	Lights   []*renderer.Light // config order
	Helpers  []*renderer.Helper

	Shadows          renderer.ShadowSettings
	AnimationEnabled bool

	render renderer.Render
}

// Assemble builds the scene graph described by cfg. Shadows stay unconfigured
// until ConfigureShadows runs.
func Assemble(cfg SceneConfig) (*Assembly, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sphereGeom, err := renderer.NewSphereGeometry(cfg.Sphere.Radius, cfg.Sphere.WidthSegments, cfg.Sphere.HeightSegments)
	if err != nil {
		return nil, fmt.Errorf("sphere: %w", err)
	}
	planeGeom, err := renderer.NewPlaneGeometry(cfg.Plane.Width, cfg.Plane.Height, cfg.Plane.WidthSegments, cfg.Plane.HeightSegments)
	if err != nil {
		return nil, fmt.Errorf("plane: %w", err)
	}

	a := &Assembly{
		Config:           cfg.Clone(),
		Scene:            renderer.NewScene(),
		AnimationEnabled: cfg.Animation.Enabled,
	}
	a.Scene.Background = cfg.Background

	for _, lc := range cfg.Lights {
		light := buildLight(lc)
		a.Lights = append(a.Lights, light)
		a.Scene.Add(light)
	}

	// One material, shared by both meshes.
	a.Material = renderer.NewStandardMaterial()
	a.Material.SetColor(cfg.Material.Color[0], cfg.Material.Color[1], cfg.Material.Color[2])
	a.Material.SetRoughness(cfg.Material.Roughness)
	a.Material.SetMetalness(cfg.Material.Metalness)

	a.Sphere = renderer.NewMesh("sphere", sphereGeom, a.Material)
	a.Sphere.Position = cfg.Sphere.Position

	a.Plane = renderer.NewMesh("plane", planeGeom, a.Material)
	a.Plane.Position = cfg.Plane.Position
	a.Plane.Rotation = cfg.Plane.Rotation

	a.Scene.Add(a.Sphere, a.Plane)

	for i, lc := range cfg.Lights {
		light := a.Lights[i]
		if lc.Helper && light.Kind != renderer.AMBIENT_LIGHT && light.Kind != renderer.HEMISPHERE_LIGHT {
			a.addHelper(renderer.NewLightHelper(light))
		}
		if lc.ShadowHelper && light.CanCastShadow() {
			a.addHelper(renderer.NewShadowCameraHelper(light))
		}
	}

	cam := renderer.NewPerspectiveCamera(cfg.Camera.Fov, 1, cfg.Camera.Near, cfg.Camera.Far)
	cam.Position = cfg.Camera.Position
	cam.LookAt(cfg.Camera.Target)
	a.Camera = cam

	logger.Log.Info("Scene assembled",
		zap.String("variant", cfg.Name),
		zap.Int("lights", len(a.Lights)),
		zap.Int("helpers", len(a.Helpers)),
		zap.Int("nodes", len(a.Scene.Children())))
	return a, nil
}

func buildLight(lc LightConfig) *renderer.Light {
	kind, _ := renderer.ParseLightKind(lc.Kind)

	var light *renderer.Light
	switch kind {
	case renderer.AMBIENT_LIGHT:
		light = renderer.NewAmbientLight(lc.Color, lc.Intensity)
	case renderer.DIRECTIONAL_LIGHT:
		light = renderer.NewDirectionalLight(lc.Color, lc.Intensity)
	case renderer.HEMISPHERE_LIGHT:
		light = renderer.NewHemisphereLight(lc.Color, lc.GroundColor, lc.Intensity)
	case renderer.SPOT_LIGHT:
		light = renderer.NewSpotLight(lc.Color, lc.Intensity, lc.Distance, lc.Angle, lc.Penumbra, lc.Decay)
	}
	light.Name = lc.Name
	if kind == renderer.DIRECTIONAL_LIGHT || kind == renderer.SPOT_LIGHT {
		light.Position = lc.Position
		light.Target = lc.Target
	}
	return light
}

func (a *Assembly) addHelper(h *renderer.Helper) {
	a.Helpers = append(a.Helpers, h)
	a.Scene.Add(h)
}

// Light returns the named light, or nil.
func (a *Assembly) Light(name string) *renderer.Light {
	for _, l := range a.Lights {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Helper returns the named helper node, or nil.
func (a *Assembly) Helper(name string) *renderer.Helper {
	for _, h := range a.Helpers {
		if h.Name == name {
			return h
		}
	}
	return nil
}

// SetShadowsEnabled flips the global shadow switch, forwarding it to the
// renderer once ConfigureShadows has attached one.
func (a *Assembly) SetShadowsEnabled(enabled bool) {
	a.Shadows.Enabled = enabled
	if a.render != nil {
		a.render.SetShadowMap(a.Shadows)
	}
}
