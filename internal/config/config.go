// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/ayusman/handtrack/internal/detector"
)

// Config holds every tunable of the capture loop and landmark provider.
type Config struct {
	CameraID int `env:"HANDTRACK_CAMERA_ID" envDefault:"0"`
	Width    int `env:"HANDTRACK_WIDTH"     envDefault:"640"`
	Height   int `env:"HANDTRACK_HEIGHT"    envDefault:"480"`
	FPS      int `env:"HANDTRACK_FPS"       envDefault:"30"`

	StaticMode          bool    `env:"HANDTRACK_STATIC_MODE"                  envDefault:"false"`
	MaxHands            int     `env:"HANDTRACK_MAX_HANDS"                    envDefault:"2"`
	MinDetectionConf    float64 `env:"HANDTRACK_MIN_DETECTION_CONFIDENCE"     envDefault:"0.5"`
	MinTrackingConf     float64 `env:"HANDTRACK_MIN_TRACKING_CONFIDENCE"      envDefault:"0.5"`
	Draw                bool    `env:"HANDTRACK_DRAW"                         envDefault:"true"`
	HandIndex           int     `env:"HANDTRACK_HAND_INDEX"                   envDefault:"0"`
	DistanceFrom        int     `env:"HANDTRACK_DISTANCE_FROM"                envDefault:"4"`
	DistanceTo          int     `env:"HANDTRACK_DISTANCE_TO"                  envDefault:"8"`
	MeasureDistance     bool    `env:"HANDTRACK_MEASURE_DISTANCE"             envDefault:"true"`
	WindowTitle         string  `env:"HANDTRACK_WINDOW"                       envDefault:"Capture"`
	MaxConsecutiveFails int     `env:"HANDTRACK_MAX_READ_FAILURES"            envDefault:"30"`

	LogLevel string `env:"HANDTRACK_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error

	if c.CameraID < 0 {
		errs = append(errs, fmt.Errorf("camera id must be >= 0, got %d", c.CameraID))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("resolution must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if c.MaxHands < 1 {
		errs = append(errs, fmt.Errorf("max hands must be >= 1, got %d", c.MaxHands))
	}
	if c.MinDetectionConf < 0 || c.MinDetectionConf > 1 {
		errs = append(errs, fmt.Errorf("min detection confidence must be in [0,1], got %f", c.MinDetectionConf))
	}
	if c.MinTrackingConf < 0 || c.MinTrackingConf > 1 {
		errs = append(errs, fmt.Errorf("min tracking confidence must be in [0,1], got %f", c.MinTrackingConf))
	}
	if c.HandIndex < 0 || c.HandIndex >= c.MaxHands {
		errs = append(errs, fmt.Errorf("hand index must be in [0,%d), got %d", c.MaxHands, c.HandIndex))
	}
	for _, id := range []int{c.DistanceFrom, c.DistanceTo} {
		if id < 0 || id >= detector.NumLandmarks {
			errs = append(errs, fmt.Errorf("distance landmark must be in [0,%d), got %d", detector.NumLandmarks, id))
		}
	}
	if c.MaxConsecutiveFails < 1 {
		errs = append(errs, fmt.Errorf("max read failures must be >= 1, got %d", c.MaxConsecutiveFails))
	}

	return errors.Join(errs...)
}

// Detector returns the landmark provider settings.
func (c *Config) Detector() detector.Config {
	return detector.Config{
		StaticMode:      c.StaticMode,
		MaxHands:        c.MaxHands,
		MinConfidence:   c.MinDetectionConf,
		MinTrackingConf: c.MinTrackingConf,
	}
}
