// Package display shows annotated frames on screen and polls for key presses.
package display

import (
	"errors"
	"sync"

	"gocv.io/x/gocv"
)

// NoKey is returned by PollKey when nothing was pressed.
const NoKey = -1

// KeyEscape is the key code of the Escape key.
const KeyEscape = 27

// ErrClosed is returned when showing a frame on a closed display.
var ErrClosed = errors.New("display is closed")

// Display defines the interface for frame output.
type Display interface {
	// Show renders the frame. The frame is not retained.
	Show(frame *gocv.Mat) error

	// PollKey waits briefly for a key press and returns its code, or NoKey.
	PollKey() int

	// Close releases the window.
	Close() error
}

// IsStopKey reports whether key should end the capture loop.
func IsStopKey(key int) bool {
	switch key {
	case 'q', 'Q', KeyEscape:
		return true
	}
	return false
}

// Window is a Display backed by an OpenCV HighGUI window.
type Window struct {
	window *gocv.Window
	mu     sync.Mutex
}

// NewWindow opens a named window.
func NewWindow(title string) *Window {
	return &Window{window: gocv.NewWindow(title)}
}

// Show displays the frame.
func (w *Window) Show(frame *gocv.Mat) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.window == nil {
		return ErrClosed
	}
	w.window.IMShow(*frame)
	return nil
}

// PollKey waits one millisecond for a key press.
func (w *Window) PollKey() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.window == nil {
		return NoKey
	}
	return w.window.WaitKey(1)
}

// Close destroys the window. Calling Close more than once is safe.
func (w *Window) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.window == nil {
		return nil
	}
	err := w.window.Close()
	w.window = nil
	return err
}
