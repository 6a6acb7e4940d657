package renderer

import (
	"fmt"

	"LightLab/internal/logger"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

type LightTrace struct {
	Name        string
	Kind        LightKind
	Color       mgl32.Vec3
	GroundColor mgl32.Vec3
	Intensity   float32
	Position    mgl32.Vec3
	Target      mgl32.Vec3
	Angle       float32
	Penumbra    float32
}

type ShadowPassTrace struct {
	Light      string
	MapSize    int32
	Radius     float32
	LightSpace mgl32.Mat4
	Casters    []string
	Receivers  []string
}

type DrawTrace struct {
	Mesh       string
	Model      mgl32.Mat4
	Color      mgl32.Vec3
	Roughness  float32
	Metalness  float32
	ShadowedBy []string
}

// FrameTrace captures the arguments of one Render call, after shadow planning.
type FrameTrace struct {
	Frame          int
	Width          int32
	Height         int32
	PixelRatio     float32
	ShadowType     ShadowMapType
	CameraPosition mgl32.Vec3
	ViewProjection mgl32.Mat4
	Lights         []LightTrace
	Shadows        []ShadowPassTrace
	Draws          []DrawTrace
	Helpers        []string
}

// TraceRenderer is a headless backend that records what it would have drawn.
type TraceRenderer struct {
	surface
	Frames []FrameTrace
	Limit  int // keep only the last Limit frames; 0 keeps all
	FailAt int // Render returns an error on this frame number; 0 never fails

	frame       int
	initialized bool
}

func NewTraceRenderer() *TraceRenderer {
	return &TraceRenderer{}
}

func (rend *TraceRenderer) Init(width, height int32, _ *glfw.Window) error {
	rend.SetSize(width, height)
	rend.initialized = true
	logger.Log.Info("Trace render initialized", zap.Int32("width", width), zap.Int32("height", height))
	return nil
}

func (rend *TraceRenderer) Render(scene *Scene, camera *Camera) error {
	if !rend.initialized {
		return fmt.Errorf("trace renderer used before Init: %w", ErrRenderFailed)
	}
	rend.frame++
	if rend.FailAt > 0 && rend.frame >= rend.FailAt {
		return fmt.Errorf("frame %d: context lost: %w", rend.frame, ErrRenderFailed)
	}

	plan := PlanShadows(scene, rend.shadows)
	trace := FrameTrace{
		Frame:          rend.frame,
		Width:          rend.width,
		Height:         rend.height,
		PixelRatio:     rend.PixelRatio(),
		CameraPosition: camera.Position,
		ViewProjection: camera.GetViewProjection(),
	}
	if rend.shadows.Enabled {
		trace.ShadowType = rend.shadows.Type
	}

	for _, l := range scene.Lights() {
		trace.Lights = append(trace.Lights, LightTrace{
			Name:        l.Name,
			Kind:        l.Kind,
			Color:       l.Color,
			GroundColor: l.GroundColor,
			Intensity:   l.Intensity,
			Position:    l.Position,
			Target:      l.Target,
			Angle:       l.Angle,
			Penumbra:    l.Penumbra,
		})
	}

	for _, pass := range plan.Passes {
		trace.Shadows = append(trace.Shadows, ShadowPassTrace{
			Light:      pass.Light.Name,
			MapSize:    pass.Light.Shadow.MapSize,
			Radius:     pass.Light.Shadow.Radius,
			LightSpace: pass.LightSpace,
			Casters:    meshNames(pass.Casters),
			Receivers:  meshNames(pass.Receivers),
		})
	}

	for _, m := range scene.Meshes() {
		if !m.Visible {
			continue
		}
		draw := DrawTrace{Mesh: m.Name, Model: m.ModelMatrix()}
		if m.Material != nil {
			draw.Color = m.Material.Color
			draw.Roughness = m.Material.Roughness
			draw.Metalness = m.Material.Metalness
		}
		for _, l := range plan.ShadowedBy(m) {
			draw.ShadowedBy = append(draw.ShadowedBy, l.Name)
		}
		trace.Draws = append(trace.Draws, draw)
	}

	for _, h := range scene.Helpers() {
		if h.Visible {
			trace.Helpers = append(trace.Helpers, h.Name)
		}
	}

	rend.Frames = append(rend.Frames, trace)
	if rend.Limit > 0 && len(rend.Frames) > rend.Limit {
		rend.Frames = rend.Frames[len(rend.Frames)-rend.Limit:]
	}
	return nil
}

// Last returns the most recent frame, if any.
func (rend *TraceRenderer) Last() (FrameTrace, bool) {
	if len(rend.Frames) == 0 {
		return FrameTrace{}, false
	}
	return rend.Frames[len(rend.Frames)-1], true
}

// FrameCount is the number of successful and failed Render calls so far.
func (rend *TraceRenderer) FrameCount() int {
	return rend.frame
}

func (rend *TraceRenderer) Cleanup() {
	rend.Frames = nil
	rend.initialized = false
}

func meshNames(meshes []*Mesh) []string {
	names := make([]string, 0, len(meshes))
	for _, m := range meshes {
		names = append(names, m.Name)
	}
	return names
}
