package renderer

import "github.com/go-gl/mathgl/mgl32"

// MaxPixelRatio bounds fill-rate cost on high density displays.
const MaxPixelRatio float32 = 2

// RenderSettings are the backend options chosen at startup.
type RenderSettings struct {
	ClearColor    mgl32.Vec3     `json:"clearColor"`
	Exposure      float32        `json:"exposure"`
	Wireframe     bool           `json:"wireframe"`
	MaxPixelRatio float32        `json:"maxPixelRatio"`
	Shadows       ShadowSettings `json:"shadows"`

	// Hardware MSAA is a window hint, so it only takes effect at window creation.
	MSAASamples int `json:"msaaSamples"` // 0, 2, 4, 8
}

// DefaultRenderSettings returns sensible defaults. Shadows stay off until a
// scene configures them.
func DefaultRenderSettings() RenderSettings {
	return RenderSettings{
		ClearColor:    mgl32.Vec3{0, 0, 0},
		Exposure:      1.0,
		MaxPixelRatio: MaxPixelRatio,
		Shadows:       ShadowSettings{Enabled: false, Type: PCF_SHADOW_MAP},
		MSAASamples:   4,
	}
}

// HighQualityRenderSettings favours image quality.
func HighQualityRenderSettings() RenderSettings {
	settings := DefaultRenderSettings()
	settings.MSAASamples = 8
	settings.Shadows.Type = PCF_SOFT_SHADOW_MAP
	return settings
}

// PerformanceRenderSettings favours frame rate.
func PerformanceRenderSettings() RenderSettings {
	settings := DefaultRenderSettings()
	settings.MSAASamples = 0
	settings.MaxPixelRatio = 1
	settings.Shadows.Type = BASIC_SHADOW_MAP
	return settings
}

// ClampPixelRatio caps a device pixel ratio at the configured maximum.
func (s RenderSettings) ClampPixelRatio(devicePixelRatio float32) float32 {
	limit := s.MaxPixelRatio
	if limit <= 0 {
		limit = MaxPixelRatio
	}
	if !(devicePixelRatio > 0) {
		return 1
	}
	if devicePixelRatio > limit {
		return limit
	}
	return devicePixelRatio
}
