package engine

import (
	"time"

	"LightLab/internal/logger"

	"go.uber.org/zap"
)

// Host owns the surface and the presentation clock. Run calls Init once,
// then alternates Tick and Present until ShouldClose.
type Host interface {
	Init(app *App) error
	ShouldClose() bool
	Now() time.Time
	// Present shows the frame and blocks until the next one is due.
	Present()
	Destroy()
}

// HeadlessHost ticks at a fixed rate without a window. Pair it with the trace
// renderer.
type HeadlessHost struct {
	Width      int32
	Height     int32
	PixelRatio float32
	Hz         float64 // 0 ticks as fast as possible
	Frames     int     // stop after this many frames; 0 runs until cancelled

	ticker    *time.Ticker
	presented int
}

func NewHeadlessHost(width, height int32, hz float64, frames int) *HeadlessHost {
	return &HeadlessHost{Width: width, Height: height, PixelRatio: 1, Hz: hz, Frames: frames}
}

func (h *HeadlessHost) Init(app *App) error {
	if err := app.Renderer.Init(h.Width, h.Height, nil); err != nil {
		return err
	}
	app.Resize(h.Width, h.Height, h.PixelRatio)
	if h.Hz > 0 {
		h.ticker = time.NewTicker(time.Duration(float64(time.Second) / h.Hz))
	}
	logger.Log.Info("Headless host ready",
		zap.Int32("width", h.Width), zap.Int32("height", h.Height),
		zap.Float64("hz", h.Hz), zap.Int("frames", h.Frames))
	return nil
}

func (h *HeadlessHost) ShouldClose() bool {
	return h.Frames > 0 && h.presented >= h.Frames
}

func (h *HeadlessHost) Now() time.Time {
	return time.Now()
}

func (h *HeadlessHost) Present() {
	h.presented++
	if h.ticker != nil && !h.ShouldClose() {
		<-h.ticker.C
	}
}

func (h *HeadlessHost) Destroy() {
	if h.ticker != nil {
		h.ticker.Stop()
	}
}

// Presented is the number of frames shown so far.
func (h *HeadlessHost) Presented() int {
	return h.presented
}
