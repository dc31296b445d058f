// Package features derives geometric hand features from pixel landmark lists.
//
// Every function here is a pure function of its arguments. Callers pass the
// landmarks for the current frame explicitly; nothing is cached between calls.
package features

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/ayusman/handtrack/internal/detector"
)

var (
	// ErrNoDetection is returned when a frame produced no hands.
	ErrNoDetection = errors.New("no hand detected")

	// ErrEmptyLandmarks is returned when a computation is given an empty landmark list.
	ErrEmptyLandmarks = errors.New("empty landmark list")

	// ErrLandmarkOutOfRange is returned when a landmark ID is not present in the list.
	ErrLandmarkOutOfRange = errors.New("landmark id out of range")

	// ErrHandOutOfRange is returned when a hand index is not present in the frame results.
	ErrHandOutOfRange = errors.New("hand index out of range")
)

// BoundingBox is the smallest axis-aligned rectangle containing every landmark.
// Bounds are inclusive.
type BoundingBox struct {
	XMin int `json:"xmin"`
	YMin int `json:"ymin"`
	XMax int `json:"xmax"`
	YMax int `json:"ymax"`
}

// Rect returns the box as an image.Rectangle.
func (b BoundingBox) Rect() image.Rectangle {
	return image.Rect(b.XMin, b.YMin, b.XMax, b.YMax)
}

// Expand returns the box grown by pad pixels on every side.
func (b BoundingBox) Expand(pad int) BoundingBox {
	return BoundingBox{
		XMin: b.XMin - pad,
		YMin: b.YMin - pad,
		XMax: b.XMax + pad,
		YMax: b.YMax + pad,
	}
}

// FingerStates holds one flag per finger in thumb, index, middle, ring, pinky
// order. 1 means extended, 0 means folded.
type FingerStates [detector.NumFingers]int

// Count returns the number of extended fingers.
func (f FingerStates) Count() int {
	n := 0
	for _, v := range f {
		n += v
	}
	return n
}

// Segment holds the two pixel endpoints of a distance measurement.
type Segment struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Start returns the first endpoint.
func (s Segment) Start() image.Point { return image.Pt(s.X1, s.Y1) }

// End returns the second endpoint.
func (s Segment) End() image.Point { return image.Pt(s.X2, s.Y2) }

// Midpoint returns the integer midpoint of the segment.
func (s Segment) Midpoint() image.Point {
	return image.Pt((s.X1+s.X2)/2, (s.Y1+s.Y2)/2)
}

// ComputeBoundingBox returns the min/max extent over all landmarks.
// Any non-empty list is accepted.
func ComputeBoundingBox(lms detector.LandmarkList) (BoundingBox, error) {
	if len(lms) == 0 {
		return BoundingBox{}, ErrEmptyLandmarks
	}

	box := BoundingBox{
		XMin: lms[0].X, YMin: lms[0].Y,
		XMax: lms[0].X, YMax: lms[0].Y,
	}
	for _, lm := range lms[1:] {
		box.XMin = min(box.XMin, lm.X)
		box.YMin = min(box.YMin, lm.Y)
		box.XMax = max(box.XMax, lm.X)
		box.YMax = max(box.YMax, lm.Y)
	}
	return box, nil
}

// ClassifyFingers reports which fingers are extended.
//
// The thumb counts as extended when its tip lies to the right of the IP joint
// (tip X greater than the X of the landmark before it). This only holds for a
// right hand facing the camera upright; mirrored or rotated hands give wrong
// results. The other fingers are extended when the tip is higher on screen
// (smaller Y) than the PIP joint two positions before it.
func ClassifyFingers(lms detector.LandmarkList) (FingerStates, error) {
	var states FingerStates

	if len(lms) == 0 {
		return states, ErrEmptyLandmarks
	}
	if len(lms) <= detector.PinkyTip {
		return states, fmt.Errorf("%d landmarks, need %d: %w", len(lms), detector.NumLandmarks, ErrLandmarkOutOfRange)
	}

	thumb := detector.FingerTips[detector.Thumb]
	if lms[thumb].X > lms[thumb-1].X {
		states[detector.Thumb] = 1
	}

	for f := detector.Index; f < detector.NumFingers; f++ {
		tip := detector.FingerTips[f]
		if lms[tip].Y < lms[tip-2].Y {
			states[f] = 1
		}
	}

	return states, nil
}

// Distance returns the Euclidean pixel distance between landmarks p1 and p2
// along with their coordinates.
func Distance(p1, p2 int, lms detector.LandmarkList) (float64, Segment, error) {
	for _, id := range []int{p1, p2} {
		if id < 0 || id >= len(lms) {
			return 0, Segment{}, fmt.Errorf("landmark %d of %d: %w", id, len(lms), ErrLandmarkOutOfRange)
		}
	}

	seg := Segment{
		X1: lms[p1].X, Y1: lms[p1].Y,
		X2: lms[p2].X, Y2: lms[p2].Y,
	}
	length := math.Hypot(float64(seg.X2-seg.X1), float64(seg.Y2-seg.Y1))
	return length, seg, nil
}
