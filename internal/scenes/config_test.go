package scenes

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinVariantsValidate(t *testing.T) {
	for _, name := range AvailableVariants() {
		cfg, err := CreateVariant(name)
		if err != nil {
			t.Fatalf("CreateVariant(%q): %v", name, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Variant %q does not validate: %v", name, err)
		}
		if cfg.Name != name {
			t.Errorf("Variant %q reports name %q", name, cfg.Name)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(c *SceneConfig){
		"missing name":       func(c *SceneConfig) { c.Name = "" },
		"duplicate light":    func(c *SceneConfig) { c.Lights[1].Name = c.Lights[0].Name },
		"reserved light":     func(c *SceneConfig) { c.Lights[0].Name = "material" },
		"unknown kind":       func(c *SceneConfig) { c.Lights[0].Kind = "point" },
		"negative intensity": func(c *SceneConfig) { c.Lights[0].Intensity = -1 },
		"ambient shadow":     func(c *SceneConfig) { c.Lights[0].Shadow = &ShadowConfig{MapSize: 512, Near: 1, Far: 2} },
		"zero map size":      func(c *SceneConfig) { c.Lights[1].Shadow.MapSize = 0 },
		"shadow far < near":  func(c *SceneConfig) { c.Lights[1].Shadow.Far = 0.5 },
		"camera fov":         func(c *SceneConfig) { c.Camera.Fov = 180 },
		"camera near":        func(c *SceneConfig) { c.Camera.Near = 0 },
		"damping factor":     func(c *SceneConfig) { c.Controls.DampingFactor = 0 },
		"shadow type":        func(c *SceneConfig) { c.Shadows.Type = "vsm" },
		"unknown behaviour":  func(c *SceneConfig) { c.Animation = AnimationConfig{Enabled: true, Behaviour: "spin"} },
		"missing behaviour":  func(c *SceneConfig) { c.Animation = AnimationConfig{Enabled: true} },
		"debug without path": func(c *SceneConfig) { c.Debug = append(c.Debug, ControlConfig{Label: "x"}) },
	}

	for name, mutate := range cases {
		cfg := ShadowsVariant()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestDecodeConfigOverlaysBase(t *testing.T) {
	base := LightsVariant()
	data := []byte(`{"name": "dim", "material": {"roughness": 0.2}, "shadows": {"enabled": true, "type": "pcfsoft"}}`)

	cfg, err := DecodeConfig(data, base)
	if err != nil {
		t.Fatalf("DecodeConfig failed: %v", err)
	}
	if cfg.Name != "dim" || cfg.Material.Roughness != 0.2 {
		t.Errorf("Overlay fields not applied: %+v", cfg.Material)
	}
	if !cfg.Shadows.Enabled || cfg.Shadows.Type != "pcfsoft" {
		t.Errorf("Unexpected shadows %+v", cfg.Shadows)
	}
	if cfg.Sphere.Radius != 0.5 || cfg.Camera.Fov != 75 {
		t.Error("Fields absent from the file should come from the base")
	}
	if base.Name != "lights" || base.Material.Roughness != 0.7 {
		t.Error("Decoding must not modify the base config")
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	if _, err := DecodeConfig([]byte(`{"name": `), LightsVariant()); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for broken JSON, got %v", err)
	}
	if _, err := DecodeConfig([]byte(`{"camera": {"fov": -1}}`), LightsVariant()); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for an invalid camera, got %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(`{"name": "from-file", "background": [0.1, 0.2, 0.3]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path, LightsVariant())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "from-file" || cfg.Background[2] != 0.3 {
		t.Errorf("Unexpected config %q %v", cfg.Name, cfg.Background)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"), LightsVariant()); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestCloneIsDeep(t *testing.T) {
	cfg := ShadowsVariant()
	clone := cfg.Clone()

	clone.Lights[1].Shadow.MapSize = 2048
	clone.Lights[0].Intensity = 0
	clone.Debug[0].Max = 10

	if cfg.Lights[1].Shadow.MapSize != 1024 || cfg.Lights[0].Intensity != 1 || cfg.Debug[0].Max != 3 {
		t.Error("Editing a clone should not reach the original")
	}
}
