package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"LightLab/internal/behaviour"
	"LightLab/internal/controls"
	"LightLab/internal/debugpanel"
	"LightLab/internal/logger"
	"LightLab/internal/renderer"
	"LightLab/internal/scenes"

	"go.uber.org/zap"
)

type LoopState int

const (
	IDLE LoopState = iota
	RUNNING
	STOPPED
)

func (s LoopState) String() string {
	switch s {
	case IDLE:
		return "idle"
	case RUNNING:
		return "running"
	case STOPPED:
		return "stopped"
	}
	return "unknown"
}

var ErrNotRunning = errors.New("render loop is not running")

// Overlay draws on top of the rendered scene. debugpanel.Overlay is the GLFW
// implementation; headless runs have none.
type Overlay interface {
	Render()
	WantCaptureMouse() bool
	Destroy()
}

// App is the application context for one variant: everything the render
// loop reads and writes each tick.
type App struct {
	// HOT DATA - touched every tick
	Assembly   *scenes.Assembly
	Camera     *renderer.Camera
	Controls   *controls.OrbitControls
	Renderer   renderer.Render
	Behaviours *behaviour.BehaviourManager
	overlay    Overlay

	// COLD DATA
	Panel    *debugpanel.Panel
	Settings renderer.RenderSettings

	state LoopState
	start time.Time
	last  time.Time
	frame uint64
}

// NewApp assembles cfg, applies its shadow setup to render and binds its
// debug controls. The renderer is not initialised here; the host does that
// once it has a surface.
func NewApp(cfg scenes.SceneConfig, render renderer.Render, settings renderer.RenderSettings) (*App, error) {
	assembly, err := scenes.Assemble(cfg)
	if err != nil {
		return nil, err
	}
	scenes.ConfigureShadows(assembly, render)

	panel := debugpanel.NewPanel(cfg.Name)
	if err := scenes.BindControls(panel, assembly); err != nil {
		return nil, err
	}

	orbit := controls.NewOrbitControls(assembly.Camera)
	orbit.Target = cfg.Camera.Target
	orbit.EnableDamping = cfg.Controls.EnableDamping
	if cfg.Controls.DampingFactor > 0 {
		orbit.DampingFactor = cfg.Controls.DampingFactor
	}

	behaviours := behaviour.NewBehaviourManager()
	if name := cfg.Animation.Behaviour; name != "" {
		b := behaviour.Create(name, assembly.Sphere, cfg.Animation.Params)
		if b == nil {
			return nil, fmt.Errorf("animation behaviour %q: %w", name, scenes.ErrInvalidConfig)
		}
		behaviours.Add(b)
	}

	app := &App{
		Assembly:   assembly,
		Camera:     assembly.Camera,
		Controls:   orbit,
		Renderer:   render,
		Behaviours: behaviours,
		Panel:      panel,
		Settings:   settings,
		state:      IDLE,
	}
	logger.Log.Info("App created",
		zap.String("variant", cfg.Name),
		zap.Int("controls", panel.Len()),
		zap.Int("behaviours", behaviours.Len()))
	return app, nil
}

func (app *App) State() LoopState {
	return app.state
}

// Frames is the number of completed ticks.
func (app *App) Frames() uint64 {
	return app.frame
}

// SetOverlay attaches the debug overlay. Hosts call it once the GL context
// exists.
func (app *App) SetOverlay(overlay Overlay) {
	app.overlay = overlay
}

// PointerCaptured reports whether pointer input belongs to the overlay rather
// than the camera controls.
func (app *App) PointerCaptured() bool {
	return app.overlay != nil && app.Panel.Visible && app.overlay.WantCaptureMouse()
}

// Start moves the loop from Idle to Running. It only succeeds once.
func (app *App) Start(now time.Time) error {
	if app.state != IDLE {
		return fmt.Errorf("start from %s: %w", app.state, ErrNotRunning)
	}
	app.state = RUNNING
	app.start = now
	app.last = now
	logger.Log.Info("Render loop started", zap.String("variant", app.Assembly.Config.Name))
	return nil
}

// Tick runs one frame: animation, controls, render, overlay. A render error
// stops the loop for good.
func (app *App) Tick(now time.Time) error {
	if app.state != RUNNING {
		return ErrNotRunning
	}

	frame := behaviour.Frame{
		Index:   app.frame,
		Delta:   now.Sub(app.last),
		Animate: app.Assembly.AnimationEnabled,
	}
	if frame.Animate {
		frame.Elapsed = now.Sub(app.start)
	}
	app.last = now

	app.Behaviours.UpdateAll(frame)
	app.Controls.Update()

	if err := app.Renderer.Render(app.Assembly.Scene, app.Camera); err != nil {
		app.state = STOPPED
		logger.Log.Error("Render failed, stopping", zap.Uint64("frame", app.frame), zap.Error(err))
		return err
	}
	if app.overlay != nil && app.Panel.Visible {
		app.overlay.Render()
	}

	app.frame++
	return nil
}

// Resize reacts to a new surface size in screen coordinates. A zero height
// is ignored.
func (app *App) Resize(width, height int32, devicePixelRatio float32) {
	if width <= 0 || height <= 0 {
		logger.Log.Debug("Ignoring degenerate resize", zap.Int32("width", width), zap.Int32("height", height))
		return
	}
	app.Camera.SetAspectRatio(float32(width) / float32(height))
	app.Renderer.SetSize(width, height)
	app.Renderer.SetPixelRatio(app.Settings.ClampPixelRatio(devicePixelRatio))
	app.Controls.SetViewportHeight(float32(height))
	logger.Log.Debug("Resized",
		zap.Int32("width", width), zap.Int32("height", height),
		zap.Float32("pixelRatio", app.Renderer.PixelRatio()))
}

// Stop ends the loop. Calling it again is harmless.
func (app *App) Stop() {
	if app.state == STOPPED {
		return
	}
	app.state = STOPPED
	logger.Log.Info("Render loop stopped", zap.Uint64("frames", app.frame))
}

// Run drives the app on host until the host closes, ctx is cancelled or a
// frame fails. Only a failed frame is reported as an error.
func (app *App) Run(ctx context.Context, host Host) error {
	if err := host.Init(app); err != nil {
		return err
	}
	defer func() {
		if app.overlay != nil {
			app.overlay.Destroy()
		}
		app.Renderer.Cleanup()
		host.Destroy()
	}()

	if err := app.Start(host.Now()); err != nil {
		return err
	}
	defer app.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("Render loop cancelled", zap.Error(ctx.Err()))
			return nil
		default:
		}
		if host.ShouldClose() {
			return nil
		}
		if err := app.Tick(host.Now()); err != nil {
			return err
		}
		host.Present()
	}
}
