package scenes

import (
	"LightLab/internal/logger"
	"LightLab/internal/renderer"

	"go.uber.org/zap"
)

// ConfigureShadows applies the config's shadow setup to the assembled scene
// and hands the global switch to render. The per-light and per-mesh flags are
// set whether or not shadows are enabled; with the switch off they have no
// effect on what is drawn.
func ConfigureShadows(a *Assembly, render renderer.Render) {
	cfg := a.Config

	for i, lc := range cfg.Lights {
		light := a.Lights[i]
		if !light.CanCastShadow() {
			continue
		}
		light.CastShadow = lc.CastShadow
		if lc.Shadow == nil {
			continue
		}
		sc := lc.Shadow
		light.Shadow = &renderer.LightShadow{
			MapSize: sc.MapSize,
			Camera: renderer.ShadowCamera{
				Near:   sc.Near,
				Far:    sc.Far,
				Left:   sc.Left,
				Right:  sc.Right,
				Top:    sc.Top,
				Bottom: sc.Bottom,
			},
			Radius: sc.Radius,
			Bias:   sc.Bias,
		}
		if !renderer.IsPowerOfTwo(sc.MapSize) {
			logger.Log.Warn("Shadow map size is not a power of two",
				zap.String("light", light.Name), zap.Int32("mapSize", sc.MapSize))
		}
	}

	a.Sphere.CastShadow = cfg.Sphere.CastShadow
	a.Sphere.ReceiveShadow = cfg.Sphere.ReceiveShadow
	a.Plane.CastShadow = cfg.Plane.CastShadow
	a.Plane.ReceiveShadow = cfg.Plane.ReceiveShadow

	shadowType, _ := renderer.ParseShadowMapType(cfg.Shadows.Type)
	a.Shadows = renderer.ShadowSettings{Enabled: cfg.Shadows.Enabled, Type: shadowType}
	a.render = render
	if render != nil {
		render.SetShadowMap(a.Shadows)
	}

	logger.Log.Info("Shadows configured",
		zap.String("variant", cfg.Name),
		zap.Bool("enabled", a.Shadows.Enabled),
		zap.Stringer("type", a.Shadows.Type))
}
