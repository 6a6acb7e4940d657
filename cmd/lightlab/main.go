package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"LightLab/internal/engine"
	"LightLab/internal/logger"
	"LightLab/internal/renderer"
	"LightLab/internal/scenes"

	"go.uber.org/zap"
)

func init() {
	// GLFW must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		variant  = flag.String("variant", "lights", "Scene variant to run (see -list).")
		config   = flag.String("config", "", "JSON file overlaid on the chosen variant.")
		list     = flag.Bool("list", false, "List the built-in variants and exit.")
		headless = flag.Bool("headless", false, "Run without a window, using the trace renderer.")
		hz       = flag.Float64("hz", 60, "Tick rate in headless mode.")
		frames   = flag.Int("frames", 0, "Stop after N frames in headless mode (0 = run until interrupted).")
		width    = flag.Int("width", 1280, "Window width.")
		height   = flag.Int("height", 720, "Window height.")
		dpr      = flag.Float64("dpr", 1, "Device pixel ratio in headless mode.")
		quality  = flag.String("quality", "default", "Render settings preset: default, high or performance.")
		logLevel = flag.String("log-level", "", "Log level (debug, info, warn, error). Overrides "+logger.LevelEnv+".")
	)
	flag.Parse()

	if *logLevel != "" {
		logger.InitWithLevel(*logLevel)
	} else {
		logger.Init()
	}
	defer logger.Sync()

	if *list {
		for _, name := range scenes.AvailableVariants() {
			cfg, _ := scenes.CreateVariant(name)
			fmt.Printf("%-10s %s\n", name, cfg.Description)
		}
		return
	}

	if err := run(*variant, *config, *headless, *hz, *frames, int32(*width), int32(*height), float32(*dpr), *quality); err != nil {
		logger.Log.Error("LightLab exited with an error", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(variant, configPath string, headless bool, hz float64, frames int, width, height int32, dpr float32, quality string) error {
	cfg, err := scenes.CreateVariant(variant)
	if err != nil {
		return err
	}
	if configPath != "" {
		if cfg, err = scenes.LoadConfig(configPath, cfg); err != nil {
			return err
		}
	}

	settings, err := renderSettings(quality)
	if err != nil {
		return err
	}
	// Presets other than the default also pick the shadow filter.
	if quality != "default" && quality != "" {
		cfg.Shadows.Type = settings.Shadows.Type.String()
	}

	var (
		render renderer.Render
		host   engine.Host
	)
	if headless {
		render, host = newHeadless(width, height, hz, frames, dpr)
	} else {
		render = renderer.NewOpenGLRenderer(settings)
		host = engine.NewGLFWHost("LightLab - "+cfg.Name, width, height)
	}

	app, err := engine.NewApp(cfg, render, settings)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Log.Info("Starting LightLab",
		zap.String("variant", cfg.Name),
		zap.Bool("headless", headless),
		zap.String("quality", quality))
	return app.Run(ctx, host)
}

// headlessTraceLimit bounds the frame traces a headless run keeps. Runs
// without -frames go on until interrupted.
const headlessTraceLimit = 1

func newHeadless(width, height int32, hz float64, frames int, dpr float32) (*renderer.TraceRenderer, *engine.HeadlessHost) {
	rend := renderer.NewTraceRenderer()
	rend.Limit = headlessTraceLimit
	host := engine.NewHeadlessHost(width, height, hz, frames)
	host.PixelRatio = dpr
	return rend, host
}

func renderSettings(quality string) (renderer.RenderSettings, error) {
	switch quality {
	case "default", "":
		return renderer.DefaultRenderSettings(), nil
	case "high":
		return renderer.HighQualityRenderSettings(), nil
	case "performance":
		return renderer.PerformanceRenderSettings(), nil
	}
	return renderer.RenderSettings{}, fmt.Errorf("unknown quality preset %q", quality)
}
