// Package frametest provides synthetic frames for capture loop tests.
package frametest

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// BlankFrame returns a black BGR frame of the given size. The caller owns it.
func BlankFrame(width, height int) *gocv.Mat {
	mat := gocv.Zeros(height, width, gocv.MatTypeCV8UC3)
	return &mat
}

// Sequence returns n frames, each with a white square stepped a little
// further to the right so consecutive frames differ.
func Sequence(n, width, height int) []*gocv.Mat {
	frames := make([]*gocv.Mat, 0, n)
	for i := 0; i < n; i++ {
		frame := BlankFrame(width, height)
		x := (i * 10) % max(width-20, 1)
		gocv.Rectangle(frame, image.Rect(x, 10, x+20, 30), color.RGBA{R: 255, G: 255, B: 255}, -1)
		frames = append(frames, frame)
	}
	return frames
}

// CloseAll releases every frame.
func CloseAll(frames []*gocv.Mat) {
	for _, f := range frames {
		f.Close()
	}
}
