package scenes

import (
	"reflect"
	"testing"

	"LightLab/internal/renderer"
)

func renderOnce(t *testing.T, a *Assembly, rend *renderer.TraceRenderer) renderer.FrameTrace {
	t.Helper()
	if err := rend.Render(a.Scene, a.Camera); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	frame, _ := rend.Last()
	return frame
}

func newTrace(t *testing.T) *renderer.TraceRenderer {
	t.Helper()
	rend := renderer.NewTraceRenderer()
	if err := rend.Init(800, 600, nil); err != nil {
		t.Fatal(err)
	}
	return rend
}

func TestConfigureShadowsAppliesConfig(t *testing.T) {
	a, err := Assemble(ShadowsVariant())
	if err != nil {
		t.Fatal(err)
	}
	rend := newTrace(t)
	ConfigureShadows(a, rend)

	light := a.Light("directional")
	if !light.CastShadow || light.Shadow.MapSize != 1024 || light.Shadow.Radius != 10 {
		t.Errorf("Unexpected light shadow %+v", light.Shadow)
	}
	cam := light.Shadow.Camera
	if cam.Near != 1 || cam.Far != 6 || cam.Left != -2 || cam.Top != 2 {
		t.Errorf("Unexpected shadow camera %+v", cam)
	}
	if !a.Sphere.CastShadow || a.Sphere.ReceiveShadow || a.Plane.CastShadow || !a.Plane.ReceiveShadow {
		t.Error("Sphere should cast and the plane receive")
	}
	if got := rend.ShadowMap(); !got.Enabled || got.Type != renderer.PCF_SHADOW_MAP {
		t.Errorf("Renderer shadow settings = %+v", got)
	}

	frame := renderOnce(t, a, rend)
	if len(frame.Shadows) != 1 || frame.Shadows[0].Light != "directional" {
		t.Fatalf("Expected one directional shadow pass, got %+v", frame.Shadows)
	}
	for _, d := range frame.Draws {
		shadowed := len(d.ShadowedBy) > 0
		if shadowed != (d.Mesh == "plane") {
			t.Errorf("%s shadowed = %v", d.Mesh, shadowed)
		}
	}
}

func TestDisabledShadowsMatchNoShadowSetup(t *testing.T) {
	configured := ShadowsVariant()
	configured.Shadows.Enabled = false

	bare := configured.Clone()
	bare.Lights[1].CastShadow = false
	bare.Lights[1].Shadow = nil
	bare.Sphere.CastShadow = false
	bare.Plane.ReceiveShadow = false
	bare.Shadows = ShadowsConfig{}

	render := func(cfg SceneConfig, configure bool) renderer.FrameTrace {
		a, err := Assemble(cfg)
		if err != nil {
			t.Fatal(err)
		}
		rend := newTrace(t)
		if configure {
			ConfigureShadows(a, rend)
		}
		return renderOnce(t, a, rend)
	}

	want := render(bare, false)
	got := render(configured, true)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Disabled shadows should leave the frame unchanged\n got: %+v\nwant: %+v", got, want)
	}
}

func TestShadowToggleIsIdempotent(t *testing.T) {
	a, err := Assemble(ShadowsVariant())
	if err != nil {
		t.Fatal(err)
	}
	rend := newTrace(t)
	ConfigureShadows(a, rend)
	first := renderOnce(t, a, rend)

	a.SetShadowsEnabled(false)
	a.SetShadowsEnabled(false)
	a.SetShadowsEnabled(true)
	second := renderOnce(t, a, rend)

	first.Frame, second.Frame = 0, 0
	if !reflect.DeepEqual(first, second) {
		t.Error("Toggling shadows off and on should restore the same frame")
	}
}

func TestPlaneWithoutReceiveIgnoresShadowLight(t *testing.T) {
	a, err := Assemble(ShadowsVariant())
	if err != nil {
		t.Fatal(err)
	}
	rend := newTrace(t)
	ConfigureShadows(a, rend)
	a.Plane.ReceiveShadow = false

	planeDraw := func(frame renderer.FrameTrace) renderer.DrawTrace {
		for _, d := range frame.Draws {
			if d.Mesh == "plane" {
				return d
			}
		}
		t.Fatal("No plane draw")
		return renderer.DrawTrace{}
	}

	before := planeDraw(renderOnce(t, a, rend))
	light := a.Light("directional")
	light.SetPosition(-3, 4, 1)
	light.Shadow.Radius = 2
	after := planeDraw(renderOnce(t, a, rend))

	if len(before.ShadowedBy) != 0 || !reflect.DeepEqual(before, after) {
		t.Errorf("Plane draw changed with shadow light edits: %+v -> %+v", before, after)
	}
}

func TestSpotlightShadowPasses(t *testing.T) {
	a, err := Assemble(SpotlightVariant())
	if err != nil {
		t.Fatal(err)
	}
	rend := newTrace(t)
	ConfigureShadows(a, rend)

	frame := renderOnce(t, a, rend)
	if len(frame.Shadows) != 2 {
		t.Fatalf("Expected directional and spot passes, got %d", len(frame.Shadows))
	}
	if frame.Shadows[0].Light != "directional" || frame.Shadows[1].Light != "spot" {
		t.Errorf("Unexpected pass order %s, %s", frame.Shadows[0].Light, frame.Shadows[1].Light)
	}
}

func TestConfigureShadowsWithoutRenderer(t *testing.T) {
	a, err := Assemble(ShadowsVariant())
	if err != nil {
		t.Fatal(err)
	}
	ConfigureShadows(a, nil)
	a.SetShadowsEnabled(false)
	if a.Shadows.Enabled {
		t.Error("Switch should still be tracked without a renderer")
	}
}
