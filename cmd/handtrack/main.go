package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"

	"github.com/ayusman/handtrack/internal/app"
	"github.com/ayusman/handtrack/internal/capture"
	"github.com/ayusman/handtrack/internal/config"
	"github.com/ayusman/handtrack/internal/detector"
	"github.com/ayusman/handtrack/internal/display"
	"github.com/ayusman/handtrack/internal/logger"
)

func main() {
	fmt.Println("handtrack - webcam hand landmarks")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer lg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil {
		lg.Fatal("capture loop failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	cam := capture.NewCameraWithSize(cfg.CameraID, cfg.Width, cfg.Height)
	cam.SetFPS(cfg.FPS)

	// Try MediaPipe first, fall back to mock detector
	var det detector.Detector
	if mp, err := detector.NewMediaPipeDetector(cfg.Detector()); err == nil {
		det = mp
		lg.Info("using MediaPipe hand detection", zap.Strings("args", mp.Args()))
	} else if errors.Is(err, detector.ErrServiceNotFound) {
		lg.Warn("MediaPipe not available, no hands will be detected", zap.Error(err))
		det = detector.NewMockDetector()
	} else {
		return err
	}
	defer func() {
		if err := det.Close(); err != nil {
			lg.Warn("error closing detector", zap.Error(err))
		}
	}()

	win := display.NewWindow(cfg.WindowTitle)
	defer win.Close()

	a := app.New(app.Config{
		Draw:            cfg.Draw,
		HandIndex:       cfg.HandIndex,
		MeasureDistance: cfg.MeasureDistance,
		DistanceFrom:    cfg.DistanceFrom,
		DistanceTo:      cfg.DistanceTo,
		MaxReadFailures: cfg.MaxConsecutiveFails,
	}, cam, det, win, lg)

	return a.Run(ctx)
}
