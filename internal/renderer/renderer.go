package renderer

import (
	"errors"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// ErrRenderFailed wraps backend failures. The render loop treats it as fatal.
var ErrRenderFailed = errors.New("render failed")

// Render is a rendering backend. All methods run on the thread that owns the
// graphics context.
type Render interface {
	Init(width, height int32, window *glfw.Window) error
	Render(scene *Scene, camera *Camera) error
	SetSize(width, height int32)
	Size() (width, height int32)
	SetPixelRatio(ratio float32)
	PixelRatio() float32
	SetShadowMap(settings ShadowSettings)
	ShadowMap() ShadowSettings
	Cleanup()
}

// surface is the state every backend keeps about its target.
type surface struct {
	width      int32
	height     int32
	pixelRatio float32
	shadows    ShadowSettings
}

func (s *surface) SetSize(width, height int32) {
	s.width = width
	s.height = height
}

func (s *surface) Size() (int32, int32) {
	return s.width, s.height
}

// SetPixelRatio ignores ratios that are not positive, NaN included.
func (s *surface) SetPixelRatio(ratio float32) {
	if !(ratio > 0) {
		return
	}
	s.pixelRatio = ratio
}

func (s *surface) PixelRatio() float32 {
	if s.pixelRatio <= 0 {
		return 1
	}
	return s.pixelRatio
}

func (s *surface) SetShadowMap(settings ShadowSettings) {
	s.shadows = settings
}

func (s *surface) ShadowMap() ShadowSettings {
	return s.shadows
}

// DrawingBufferSize is the size in device pixels, i.e. size * pixel ratio.
func (s *surface) DrawingBufferSize() (int32, int32) {
	ratio := s.PixelRatio()
	return int32(float32(s.width) * ratio), int32(float32(s.height) * ratio)
}
