// Package app runs the capture loop: read a frame, detect hands, extract
// features, draw the overlay and display the result.
package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/ayusman/handtrack/internal/capture"
	"github.com/ayusman/handtrack/internal/detector"
	"github.com/ayusman/handtrack/internal/display"
	"github.com/ayusman/handtrack/internal/features"
)

// DefaultMaxReadFailures is the number of consecutive failed camera reads
// after which Run gives up.
const DefaultMaxReadFailures = 30

// Config holds configuration options for the capture loop.
type Config struct {
	// Draw enables the skeleton, landmark, box and distance overlays.
	// The FPS counter is always drawn.
	Draw bool

	// HandIndex selects which detected hand gets points, box and distance.
	HandIndex int

	// MeasureDistance enables the DistanceFrom-DistanceTo measurement.
	MeasureDistance bool
	DistanceFrom    int
	DistanceTo      int

	MaxReadFailures int
}

// DefaultConfig measures thumb tip to index tip on the first hand.
func DefaultConfig() Config {
	return Config{
		Draw:            true,
		HandIndex:       0,
		MeasureDistance: true,
		DistanceFrom:    detector.ThumbTip,
		DistanceTo:      detector.IndexTip,
		MaxReadFailures: DefaultMaxReadFailures,
	}
}

// FrameResult is everything derived from one frame.
type FrameResult struct {
	Hands    []features.HandFeatures
	Selected *features.HandFeatures
	Distance float64
	Segment  features.Segment
	Measured bool
	FPS      float64
}

// App wires a camera, a landmark provider and a display together.
type App struct {
	config   Config
	camera   capture.Camera
	detector detector.Detector
	display  display.Display
	log      *zap.Logger
	fps      *fpsCounter

	// OnFrame, when set, is called with the result of every processed frame.
	OnFrame func(FrameResult)
}

// New creates a new App. A nil logger disables logging.
func New(config Config, cam capture.Camera, det detector.Detector, disp display.Display, log *zap.Logger) *App {
	if config.MaxReadFailures <= 0 {
		config.MaxReadFailures = DefaultMaxReadFailures
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &App{
		config:   config,
		camera:   cam,
		detector: det,
		display:  disp,
		log:      log,
		fps:      newFPSCounter(time.Now),
	}
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.detector = d
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	return a.detector
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}
