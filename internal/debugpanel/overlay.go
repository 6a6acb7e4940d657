package debugpanel

import (
	"LightLab/internal/logger"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
	"go.uber.org/zap"
)

// Overlay owns the imgui context and draws the panel over the scene once per
// frame. It lives on the thread that owns the GL context.
type Overlay struct {
	context  *imgui.Context
	platform *GLFWPlatform
	renderer *OpenGL3
	view     *View
}

func NewOverlay(window *glfw.Window, panel *Panel) (*Overlay, error) {
	context := imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	io.SetIniFilename("")

	platform := NewGLFWPlatform(window, io)
	glRenderer, err := NewOpenGL3(io)
	if err != nil {
		context.Destroy()
		logger.Log.Error("Failed to create overlay renderer", zap.Error(err))
		return nil, err
	}
	applyDarkTheme()

	logger.Log.Info("Debug overlay initialized", zap.String("panel", panel.Title), zap.Int("controls", panel.Len()))
	return &Overlay{
		context:  context,
		platform: platform,
		renderer: glRenderer,
		view:     NewView(panel),
	}, nil
}

func (o *Overlay) Platform() *GLFWPlatform {
	return o.platform
}

// WantCaptureMouse reports whether the pointer is over a widget, in which case
// camera controls should ignore it.
func (o *Overlay) WantCaptureMouse() bool {
	return imgui.CurrentIO().WantCaptureMouse()
}

func (o *Overlay) Render() {
	o.platform.NewFrame()
	imgui.NewFrame()
	o.view.Draw()
	imgui.Render()
	o.renderer.Render(o.platform.DisplaySize(), o.platform.FramebufferSize(), imgui.RenderedDrawData())
}

func (o *Overlay) Destroy() {
	o.renderer.Dispose()
	o.context.Destroy()
}

func applyDarkTheme() {
	style := imgui.CurrentStyle()

	// Go Cyan color (#00ADD8)
	goCyan := imgui.Vec4{X: 0.0, Y: 0.678, Z: 0.847, W: 1.0}
	goCyanHover := imgui.Vec4{X: 0.0, Y: 0.678, Z: 0.847, W: 0.6}
	goCyanActive := imgui.Vec4{X: 0.0, Y: 0.678, Z: 0.847, W: 0.8}
	goCyanDim := imgui.Vec4{X: 0.0, Y: 0.678, Z: 0.847, W: 0.4}

	style.SetColor(imgui.StyleColorWindowBg, imgui.Vec4{X: 0.1, Y: 0.1, Z: 0.1, W: 0.85})
	style.SetColor(imgui.StyleColorTitleBgActive, goCyan)
	style.SetColor(imgui.StyleColorHeader, goCyanDim)
	style.SetColor(imgui.StyleColorHeaderHovered, goCyanHover)
	style.SetColor(imgui.StyleColorHeaderActive, goCyan)
	style.SetColor(imgui.StyleColorFrameBg, imgui.Vec4{X: 0.2, Y: 0.2, Z: 0.2, W: 0.54})
	style.SetColor(imgui.StyleColorFrameBgHovered, imgui.Vec4{X: 0.25, Y: 0.25, Z: 0.25, W: 0.78})
	style.SetColor(imgui.StyleColorFrameBgActive, imgui.Vec4{X: 0.3, Y: 0.3, Z: 0.3, W: 0.67})

	// Sliders are most of the panel
	style.SetColor(imgui.StyleColorSliderGrab, goCyan)
	style.SetColor(imgui.StyleColorSliderGrabActive, goCyanActive)
	style.SetColor(imgui.StyleColorCheckMark, goCyan)

	style.SetWindowRounding(4.0)
	style.SetFrameRounding(2.0)
	style.SetGrabRounding(2.0)
}
