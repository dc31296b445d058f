package features

import (
	"fmt"

	"github.com/ayusman/handtrack/internal/detector"
)

// HandFeatures bundles the per-frame features of one detected hand.
type HandFeatures struct {
	Hand       int                   `json:"hand"`
	Handedness string                `json:"handedness"`
	Landmarks  detector.LandmarkList `json:"landmarks"`
	Box        BoundingBox           `json:"box"`
	Fingers    FingerStates          `json:"fingers"`
}

// SelectHand returns hand handNo from a frame's detection results.
func SelectHand(hands []detector.HandLandmarks, handNo int) (detector.HandLandmarks, error) {
	if len(hands) == 0 {
		return detector.HandLandmarks{}, ErrNoDetection
	}
	if handNo < 0 || handNo >= len(hands) {
		return detector.HandLandmarks{}, fmt.Errorf("hand %d of %d: %w", handNo, len(hands), ErrHandOutOfRange)
	}
	return hands[handNo], nil
}

// Extract converts one hand to pixel coordinates for a width x height frame
// and computes its bounding box and finger states.
func Extract(hand detector.HandLandmarks, index, width, height int) (HandFeatures, error) {
	lms := hand.ToPixels(width, height)

	box, err := ComputeBoundingBox(lms)
	if err != nil {
		return HandFeatures{}, fmt.Errorf("bounding box: %w", err)
	}

	fingers, err := ClassifyFingers(lms)
	if err != nil {
		return HandFeatures{}, fmt.Errorf("classify fingers: %w", err)
	}

	return HandFeatures{
		Hand:       index,
		Handedness: hand.Handedness,
		Landmarks:  lms,
		Box:        box,
		Fingers:    fingers,
	}, nil
}

// ExtractAll runs Extract for every hand in a frame.
// It returns ErrNoDetection when hands is empty.
func ExtractAll(hands []detector.HandLandmarks, width, height int) ([]HandFeatures, error) {
	if len(hands) == 0 {
		return nil, ErrNoDetection
	}

	out := make([]HandFeatures, 0, len(hands))
	for i, h := range hands {
		f, err := Extract(h, i, width, height)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i, err)
		}
		out = append(out, f)
	}
	return out, nil
}
