package scenes

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"LightLab/internal/behaviour"
	"LightLab/internal/logger"
	"LightLab/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// ErrInvalidConfig is returned for scene configurations that cannot be built.
var ErrInvalidConfig = errors.New("invalid scene config")

type ShadowConfig struct {
	MapSize int32   `json:"mapSize"`
	Near    float32 `json:"near"`
	Far     float32 `json:"far"`
	Left    float32 `json:"left"`
	Right   float32 `json:"right"`
	Top     float32 `json:"top"`
	Bottom  float32 `json:"bottom"`
	Radius  float32 `json:"radius"`
	Bias    float32 `json:"bias"`
}

type LightConfig struct {
	Name        string     `json:"name"`
	Kind        string     `json:"kind"` // ambient, directional, hemisphere, spot
	Color       mgl32.Vec3 `json:"color"`
	GroundColor mgl32.Vec3 `json:"groundColor,omitempty"`
	Intensity   float32    `json:"intensity"`
	Position    mgl32.Vec3 `json:"position"`
	Target      mgl32.Vec3 `json:"target"`

	// Spot
	Distance float32 `json:"distance,omitempty"`
	Angle    float32 `json:"angle,omitempty"`
	Penumbra float32 `json:"penumbra,omitempty"`
	Decay    float32 `json:"decay,omitempty"`

	CastShadow   bool          `json:"castShadow"`
	Shadow       *ShadowConfig `json:"shadow,omitempty"`
	Helper       bool          `json:"helper"`
	ShadowHelper bool          `json:"shadowHelper"`
}

type MaterialConfig struct {
	Color     mgl32.Vec3 `json:"color"`
	Roughness float32    `json:"roughness"`
	Metalness float32    `json:"metalness"`
}

type SphereConfig struct {
	Radius         float32    `json:"radius"`
	WidthSegments  int        `json:"widthSegments"`
	HeightSegments int        `json:"heightSegments"`
	Position       mgl32.Vec3 `json:"position"`
	CastShadow     bool       `json:"castShadow"`
	ReceiveShadow  bool       `json:"receiveShadow"`
}

type PlaneConfig struct {
	Width          float32    `json:"width"`
	Height         float32    `json:"height"`
	WidthSegments  int        `json:"widthSegments"`
	HeightSegments int        `json:"heightSegments"`
	Position       mgl32.Vec3 `json:"position"`
	Rotation       mgl32.Vec3 `json:"rotation"`
	CastShadow     bool       `json:"castShadow"`
	ReceiveShadow  bool       `json:"receiveShadow"`
}

type CameraConfig struct {
	Fov      float32    `json:"fov"`
	Near     float32    `json:"near"`
	Far      float32    `json:"far"`
	Position mgl32.Vec3 `json:"position"`
	Target   mgl32.Vec3 `json:"target"`
}

type ControlsConfig struct {
	EnableDamping bool    `json:"enableDamping"`
	DampingFactor float32 `json:"dampingFactor"`
}

type AnimationConfig struct {
	Enabled   bool             `json:"enabled"`
	Behaviour string           `json:"behaviour"`
	Params    behaviour.Params `json:"params"`
}

type ShadowsConfig struct {
	Enabled bool   `json:"enabled"`
	Type    string `json:"type"` // basic, pcf, pcfsoft
}

// ControlConfig registers one debug control. Range fields only apply to
// numeric properties.
type ControlConfig struct {
	Path   string  `json:"path"`
	Folder string  `json:"folder,omitempty"`
	Label  string  `json:"label,omitempty"`
	Min    float32 `json:"min"`
	Max    float32 `json:"max"`
	Step   float32 `json:"step"`
}

// SceneConfig describes one variant. Variants differ only in their config.
type SceneConfig struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Background  mgl32.Vec3 `json:"background"`

	Lights   []LightConfig  `json:"lights"`
	Material MaterialConfig `json:"material"`
	Sphere   SphereConfig   `json:"sphere"`
	Plane    PlaneConfig    `json:"plane"`

	Camera    CameraConfig    `json:"camera"`
	Controls  ControlsConfig  `json:"controls"`
	Animation AnimationConfig `json:"animation"`
	Shadows   ShadowsConfig   `json:"shadows"`
	Debug     []ControlConfig `json:"debug"`
}

// LoadConfig reads a JSON file over base, so a file only needs the fields it
// changes.
func LoadConfig(path string, base SceneConfig) (SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneConfig{}, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := DecodeConfig(data, base)
	if err != nil {
		return SceneConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	logger.Log.Info("Scene config loaded", zap.String("path", path), zap.String("variant", cfg.Name))
	return cfg, nil
}

func DecodeConfig(data []byte, base SceneConfig) (SceneConfig, error) {
	cfg := base.Clone()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return SceneConfig{}, fmt.Errorf("decode: %v: %w", err, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return SceneConfig{}, err
	}
	return cfg, nil
}

// Clone copies the config deeply enough that edits never reach the original.
func (c SceneConfig) Clone() SceneConfig {
	out := c
	out.Lights = make([]LightConfig, len(c.Lights))
	for i, l := range c.Lights {
		if l.Shadow != nil {
			shadow := *l.Shadow
			l.Shadow = &shadow
		}
		out.Lights[i] = l
	}
	out.Debug = append([]ControlConfig(nil), c.Debug...)
	return out
}

// Validate checks everything except geometry, which the assembler validates
// as it builds.
func (c SceneConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("missing name: %w", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Lights))
	for i, l := range c.Lights {
		if l.Name == "" {
			return fmt.Errorf("light %d: missing name: %w", i, ErrInvalidConfig)
		}
		if reservedNames[l.Name] {
			return fmt.Errorf("light %q: name is reserved: %w", l.Name, ErrInvalidConfig)
		}
		if seen[l.Name] {
			return fmt.Errorf("light %q: duplicate name: %w", l.Name, ErrInvalidConfig)
		}
		seen[l.Name] = true

		kind, ok := renderer.ParseLightKind(l.Kind)
		if !ok {
			return fmt.Errorf("light %q: unknown kind %q: %w", l.Name, l.Kind, ErrInvalidConfig)
		}
		if l.Intensity < 0 {
			return fmt.Errorf("light %q: negative intensity: %w", l.Name, ErrInvalidConfig)
		}
		if l.Shadow != nil {
			if kind != renderer.DIRECTIONAL_LIGHT && kind != renderer.SPOT_LIGHT {
				return fmt.Errorf("light %q: %s lights cannot cast shadows: %w", l.Name, l.Kind, ErrInvalidConfig)
			}
			if l.Shadow.MapSize <= 0 {
				return fmt.Errorf("light %q: shadow map size %d: %w", l.Name, l.Shadow.MapSize, ErrInvalidConfig)
			}
			if !(l.Shadow.Near > 0) || l.Shadow.Far <= l.Shadow.Near {
				return fmt.Errorf("light %q: shadow near/far %v/%v: %w", l.Name, l.Shadow.Near, l.Shadow.Far, ErrInvalidConfig)
			}
		}
	}

	cam := c.Camera
	if !(cam.Fov > 0 && cam.Fov < 180) {
		return fmt.Errorf("camera fov %v: %w", cam.Fov, ErrInvalidConfig)
	}
	if !(cam.Near > 0) || cam.Far <= cam.Near {
		return fmt.Errorf("camera near/far %v/%v: %w", cam.Near, cam.Far, ErrInvalidConfig)
	}
	if c.Controls.EnableDamping && !(c.Controls.DampingFactor > 0 && c.Controls.DampingFactor <= 1) {
		return fmt.Errorf("damping factor %v: %w", c.Controls.DampingFactor, ErrInvalidConfig)
	}

	if _, ok := renderer.ParseShadowMapType(c.Shadows.Type); !ok {
		return fmt.Errorf("shadow type %q: %w", c.Shadows.Type, ErrInvalidConfig)
	}

	if c.Animation.Enabled {
		if c.Animation.Behaviour == "" {
			return fmt.Errorf("animation enabled without a behaviour: %w", ErrInvalidConfig)
		}
		if !behaviour.Exists(c.Animation.Behaviour) {
			return fmt.Errorf("animation behaviour %q: %w", c.Animation.Behaviour, ErrInvalidConfig)
		}
	}

	for i, d := range c.Debug {
		if d.Path == "" {
			return fmt.Errorf("debug control %d: missing path: %w", i, ErrInvalidConfig)
		}
	}
	return nil
}

// Light names share the path namespace with these.
var reservedNames = map[string]bool{
	"material":      true,
	"sphere":        true,
	"plane":         true,
	"camera":        true,
	"shadows":       true,
	"animation":     true,
	"helpers":       true,
	"shadowhelpers": true,
	"background":    true,
}
