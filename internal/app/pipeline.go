package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gocv.io/x/gocv"

	"github.com/ayusman/handtrack/internal/capture"
	"github.com/ayusman/handtrack/internal/detector"
	"github.com/ayusman/handtrack/internal/display"
	"github.com/ayusman/handtrack/internal/features"
	"github.com/ayusman/handtrack/internal/overlay"
)

// Run opens the camera and processes frames until ctx is cancelled, a stop
// key is pressed, the camera runs out of frames, or MaxReadFailures reads in
// a row fail. Per-frame detection and feature errors are logged and skipped.
//
// Loop:
// 1. Read a frame (blocks until one is available)
// 2. Run the landmark provider
// 3. Extract features and draw the overlay
// 4. Show the frame and poll for a stop key
func (a *App) Run(ctx context.Context) error {
	log := a.log.With(zap.String("session", uuid.NewString()))

	if err := a.camera.Open(); err != nil {
		return fmt.Errorf("open camera: %w", err)
	}
	defer func() {
		if err := a.camera.Close(); err != nil {
			log.Warn("error closing camera", zap.Error(err))
		}
	}()

	log.Info("capture loop started",
		zap.Int("width", a.camera.Resolution().X),
		zap.Int("height", a.camera.Resolution().Y),
		zap.Int("hand_index", a.config.HandIndex),
	)

	frames := 0
	failures := 0
	for {
		select {
		case <-ctx.Done():
			log.Info("capture loop cancelled", zap.Int("frames", frames))
			return nil
		default:
		}

		frame, err := a.camera.ReadFrame()
		if err != nil {
			if errors.Is(err, capture.ErrEndOfStream) {
				log.Info("capture stream ended", zap.Int("frames", frames))
				return nil
			}
			failures++
			log.Warn("error reading frame", zap.Error(err), zap.Int("consecutive", failures))
			if failures >= a.config.MaxReadFailures {
				return fmt.Errorf("%d consecutive read failures: %w", failures, err)
			}
			continue
		}
		failures = 0

		a.handleFrame(frame, log)
		frame.Close()
		frames++

		if key := a.display.PollKey(); display.IsStopKey(key) {
			log.Info("stop key pressed", zap.Int("key", key), zap.Int("frames", frames))
			return nil
		}
	}
}

// handleFrame detects, annotates and shows one frame. It never fails the loop.
func (a *App) handleFrame(frame *gocv.Mat, log *zap.Logger) {
	var hands []detector.HandLandmarks
	if a.detector != nil {
		var err error
		hands, err = a.detector.Detect(frame)
		if err != nil {
			log.Warn("error detecting hands", zap.Error(err))
			hands = nil
		}
	}

	result := a.ProcessFrame(frame, hands, log)

	if err := a.display.Show(frame); err != nil {
		log.Warn("error showing frame", zap.Error(err))
	}

	if a.OnFrame != nil {
		a.OnFrame(result)
	}
}

// ProcessFrame extracts features for the given detection results and draws
// them onto frame. The skeleton is drawn for every hand; points, box, finger
// count and distance only for the configured hand.
func (a *App) ProcessFrame(frame *gocv.Mat, hands []detector.HandLandmarks, log *zap.Logger) FrameResult {
	if log == nil {
		log = a.log
	}

	result := FrameResult{FPS: a.fps.Tick()}

	feats, err := features.ExtractAll(hands, frame.Cols(), frame.Rows())
	switch {
	case errors.Is(err, features.ErrNoDetection):
		log.Debug("no hands in frame")
	case err != nil:
		log.Warn("error extracting features", zap.Error(err))
	default:
		result.Hands = feats
	}

	if len(result.Hands) > 0 {
		if _, err := features.SelectHand(hands, a.config.HandIndex); err != nil {
			log.Debug("configured hand not in frame", zap.Error(err), zap.Int("hands", len(hands)))
		} else {
			result.Selected = &result.Hands[a.config.HandIndex]
		}
	}

	if result.Selected != nil && a.config.MeasureDistance {
		length, seg, err := features.Distance(a.config.DistanceFrom, a.config.DistanceTo, result.Selected.Landmarks)
		if err != nil {
			log.Warn("error measuring distance", zap.Error(err))
		} else {
			result.Distance, result.Segment, result.Measured = length, seg, true
		}
	}

	if a.config.Draw {
		for _, h := range result.Hands {
			overlay.Skeleton(frame, h.Landmarks)
		}
		if result.Selected != nil {
			overlay.Hand(frame, *result.Selected, overlay.Options{Points: true, Box: true, Count: true})
		}
		if result.Measured {
			overlay.Distance(frame, result.Segment)
		}
	}
	overlay.FPS(frame, result.FPS)

	if result.Selected != nil {
		log.Debug("hand features",
			zap.Int("hands", len(result.Hands)),
			zap.Ints("fingers", result.Selected.Fingers[:]),
			zap.Int("extended", result.Selected.Fingers.Count()),
			zap.Float64("distance", result.Distance),
		)
	}

	return result
}
