package engine

import (
	"fmt"
	"runtime"
	"time"

	"LightLab/internal/controls"
	"LightLab/internal/debugpanel"
	"LightLab/internal/logger"
	"LightLab/internal/renderer"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// GLFWHost runs the app in a window with an OpenGL 4.1 core context. Vsync
// paces the loop.
type GLFWHost struct {
	Title  string
	Width  int32
	Height int32
	X, Y   int

	window *glfw.Window
	app    *App
	// nil when the overlay failed to initialise
	overlay *debugpanel.Overlay
}

func NewGLFWHost(title string, width, height int32) *GLFWHost {
	return &GLFWHost{Title: title, Width: width, Height: height, X: 100, Y: 100}
}

func (h *GLFWHost) Init(app *App) error {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		logger.Log.Error("Could not initialize glfw", zap.Error(err))
		return fmt.Errorf("glfw init: %v: %w", err, renderer.ErrRenderFailed)
	}

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 32)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if samples := app.Settings.MSAASamples; samples > 0 {
		glfw.WindowHint(glfw.Samples, samples)
	}

	window, err := glfw.CreateWindow(int(h.Width), int(h.Height), h.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		logger.Log.Error("Could not create glfw window", zap.Error(err))
		return fmt.Errorf("create window: %v: %w", err, renderer.ErrRenderFailed)
	}
	h.window = window
	h.app = app
	window.SetPos(h.X, h.Y)
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	setTitleBarColor(window, app.Assembly.Scene.Background)

	if err := app.Renderer.Init(h.Width, h.Height, window); err != nil {
		window.Destroy()
		glfw.Terminate()
		return err
	}

	overlay, err := debugpanel.NewOverlay(window, app.Panel)
	if err != nil {
		logger.Log.Warn("Debug panel disabled", zap.Error(err))
	} else {
		h.overlay = overlay
		app.SetOverlay(overlay)
	}

	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	window.SetFramebufferSizeCallback(func(*glfw.Window, int, int) { h.resize() })
	window.SetMouseButtonCallback(h.mouseButtonCallback)
	window.SetCursorPosCallback(h.cursorPosCallback)
	window.SetScrollCallback(h.scrollCallback)
	window.SetKeyCallback(h.keyCallback)
	window.SetCharCallback(h.charCallback)
	h.resize()

	logger.Log.Info("Window created",
		zap.String("title", h.Title), zap.Int32("width", h.Width), zap.Int32("height", h.Height))
	return nil
}

// resize reads the window and framebuffer sizes; their ratio is the device
// pixel ratio.
func (h *GLFWHost) resize() {
	w, ht := h.window.GetSize()
	fbw, _ := h.window.GetFramebufferSize()
	dpr := float32(1)
	if w > 0 {
		dpr = float32(fbw) / float32(w)
	}
	h.app.Resize(int32(w), int32(ht), dpr)
}

var pointerButtons = map[glfw.MouseButton]controls.PointerButton{
	glfw.MouseButtonLeft:   controls.BUTTON_LEFT,
	glfw.MouseButtonRight:  controls.BUTTON_RIGHT,
	glfw.MouseButtonMiddle: controls.BUTTON_MIDDLE,
}

func (h *GLFWHost) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if h.overlay != nil {
		h.overlay.Platform().MouseButtonChange(button, action)
	}
	if action == glfw.Release {
		h.app.Controls.PointerUp()
		return
	}
	if h.app.PointerCaptured() {
		return
	}
	if b, ok := pointerButtons[button]; ok {
		x, y := w.GetCursorPos()
		h.app.Controls.PointerDown(b, float32(x), float32(y))
	}
}

func (h *GLFWHost) cursorPosCallback(_ *glfw.Window, x, y float64) {
	h.app.Controls.PointerMove(float32(x), float32(y))
}

func (h *GLFWHost) scrollCallback(_ *glfw.Window, x, y float64) {
	if h.overlay != nil {
		h.overlay.Platform().ScrollChange(x, y)
	}
	if !h.app.PointerCaptured() {
		h.app.Controls.Wheel(float32(y))
	}
}

func (h *GLFWHost) keyCallback(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if h.overlay != nil {
		h.overlay.Platform().KeyChange(key, action)
	}
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.KeyH:
		h.app.Panel.Visible = !h.app.Panel.Visible
	}
}

func (h *GLFWHost) charCallback(_ *glfw.Window, char rune) {
	if h.overlay != nil {
		h.overlay.Platform().CharChange(char)
	}
}

func (h *GLFWHost) ShouldClose() bool {
	return h.window.ShouldClose()
}

func (h *GLFWHost) Now() time.Time {
	return time.Now()
}

// Present swaps buffers, which blocks on vsync, then polls input.
func (h *GLFWHost) Present() {
	h.window.SwapBuffers()
	glfw.PollEvents()
}

func (h *GLFWHost) Destroy() {
	if h.window != nil {
		h.window.Destroy()
	}
	glfw.Terminate()
}
