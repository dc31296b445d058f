// Package overlay draws landmarks and derived features onto video frames.
// All functions mutate the supplied Mat in place.
package overlay

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/handtrack/internal/detector"
	"github.com/ayusman/handtrack/internal/features"
)

// Drawing constants.
const (
	LandmarkRadius = 5
	BoxPadding     = 20
	BoxThickness   = 2
	LineThickness  = 3
	SkeletonWidth  = 2
	FPSFontScale   = 3
	LabelFontScale = 1
)

// Colours. gocv converts color.RGBA to OpenCV BGR order.
var (
	ColorLandmark = color.RGBA{R: 255, G: 0, B: 255, A: 0}
	ColorBox      = color.RGBA{R: 0, G: 255, B: 0, A: 0}
	ColorDistance = color.RGBA{R: 25, G: 200, B: 255, A: 0}
	ColorSkeleton = color.RGBA{R: 255, G: 255, B: 255, A: 0}
	ColorFPS      = color.RGBA{R: 255, G: 0, B: 255, A: 0}
)

// FPSOrigin is the bottom-left corner of the frame rate text.
var FPSOrigin = image.Pt(10, 70)

// Landmarks draws a filled circle at every landmark.
func Landmarks(img *gocv.Mat, lms detector.LandmarkList) {
	for _, lm := range lms {
		gocv.Circle(img, image.Pt(lm.X, lm.Y), LandmarkRadius, ColorLandmark, -1)
	}
}

// Skeleton connects landmarks along the hand topology. Connections that
// reference IDs missing from lms are skipped.
func Skeleton(img *gocv.Mat, lms detector.LandmarkList) {
	for _, c := range detector.Connections {
		if c[0] >= len(lms) || c[1] >= len(lms) {
			continue
		}
		a, b := lms[c[0]], lms[c[1]]
		gocv.Line(img, image.Pt(a.X, a.Y), image.Pt(b.X, b.Y), ColorSkeleton, SkeletonWidth)
	}
}

// Box draws the bounding box grown by BoxPadding on every side.
func Box(img *gocv.Mat, box features.BoundingBox) {
	gocv.Rectangle(img, box.Expand(BoxPadding).Rect(), ColorBox, BoxThickness)
}

// Distance draws the measured segment with filled endpoints.
func Distance(img *gocv.Mat, seg features.Segment) {
	gocv.Line(img, seg.Start(), seg.End(), ColorDistance, LineThickness)
	gocv.Circle(img, seg.Start(), LandmarkRadius, ColorDistance, -1)
	gocv.Circle(img, seg.End(), LandmarkRadius, ColorDistance, -1)
}

// FingerCount writes the extended-finger count just above the padded box.
func FingerCount(img *gocv.Mat, box features.BoundingBox, count int) {
	padded := box.Expand(BoxPadding)
	origin := image.Pt(padded.XMin, padded.YMin-8)
	gocv.PutText(img, fmt.Sprintf("fingers: %d", count), origin, gocv.FontHersheySimplex, LabelFontScale, ColorBox, BoxThickness)
}

// FPS writes the integer frame rate in the top-left corner.
func FPS(img *gocv.Mat, fps float64) {
	gocv.PutText(img, fmt.Sprintf("%d", int(fps)), FPSOrigin, gocv.FontHersheySimplex, FPSFontScale, ColorFPS, LineThickness)
}

// Options selects which layers Hand draws.
type Options struct {
	Skeleton bool
	Points   bool
	Box      bool
	Count    bool
}

// DefaultOptions draws every layer.
func DefaultOptions() Options {
	return Options{Skeleton: true, Points: true, Box: true, Count: true}
}

// Hand draws the selected layers for one hand.
func Hand(img *gocv.Mat, f features.HandFeatures, opts Options) {
	if opts.Skeleton {
		Skeleton(img, f.Landmarks)
	}
	if opts.Points {
		Landmarks(img, f.Landmarks)
	}
	if opts.Box {
		Box(img, f.Box)
	}
	if opts.Count {
		FingerCount(img, f.Box, f.Fingers.Count())
	}
}
