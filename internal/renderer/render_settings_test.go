package renderer

import (
	"math"
	"testing"
)

func TestDefaultRenderSettings(t *testing.T) {
	settings := DefaultRenderSettings()

	if settings.MaxPixelRatio != 2 {
		t.Errorf("Default max pixel ratio should be 2, got %f", settings.MaxPixelRatio)
	}

	if settings.Shadows.Enabled {
		t.Error("Shadows should be off by default")
	}
}

func TestClampPixelRatio(t *testing.T) {
	settings := DefaultRenderSettings()

	cases := []struct {
		dpr, want float32
	}{
		{1, 1},
		{1.5, 1.5},
		{2, 2},
		{3, 2},
		{0, 1},
	}
	for _, c := range cases {
		if got := settings.ClampPixelRatio(c.dpr); got != c.want {
			t.Errorf("ClampPixelRatio(%v) = %v, want %v", c.dpr, got, c.want)
		}
	}
}

func TestPixelRatioRejectsNaN(t *testing.T) {
	nan := float32(math.NaN())

	if got := DefaultRenderSettings().ClampPixelRatio(nan); got != 1 {
		t.Errorf("ClampPixelRatio(NaN) = %v, want 1", got)
	}

	rend := NewTraceRenderer()
	rend.SetPixelRatio(1.5)
	rend.SetPixelRatio(nan)
	if rend.PixelRatio() != 1.5 {
		t.Errorf("A NaN ratio should be ignored, got %v", rend.PixelRatio())
	}
	rend.SetSize(100, 50)
	if w, h := rend.DrawingBufferSize(); w != 150 || h != 75 {
		t.Errorf("Drawing buffer = %dx%d, want 150x75", w, h)
	}
}

func TestPerformanceRenderSettingsCapsPixelRatio(t *testing.T) {
	settings := PerformanceRenderSettings()

	if got := settings.ClampPixelRatio(3); got != 1 {
		t.Errorf("Performance settings should cap pixel ratio at 1, got %v", got)
	}
	if settings.Shadows.Type != BASIC_SHADOW_MAP {
		t.Error("Performance settings should use basic shadow maps")
	}
}
