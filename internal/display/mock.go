package display

import (
	"sync"

	"gocv.io/x/gocv"
)

// MockDisplay records shown frames and replays scripted key presses.
type MockDisplay struct {
	keys   []int
	shown  int
	last   gocv.Mat
	closed bool
	mu     sync.Mutex
}

// NewMockDisplay creates a MockDisplay that returns keys in order from PollKey,
// then NoKey once they run out.
func NewMockDisplay(keys ...int) *MockDisplay {
	return &MockDisplay{keys: keys, last: gocv.NewMat()}
}

// Show copies the frame so tests can inspect it after the caller closes it.
func (d *MockDisplay) Show(frame *gocv.Mat) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	frame.CopyTo(&d.last)
	d.shown++
	return nil
}

// PollKey returns the next scripted key.
func (d *MockDisplay) PollKey() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.keys) == 0 {
		return NoKey
	}
	k := d.keys[0]
	d.keys = d.keys[1:]
	return k
}

// Shown returns the number of frames displayed.
func (d *MockDisplay) Shown() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shown
}

// Last returns a clone of the most recently shown frame. The caller owns it.
func (d *MockDisplay) Last() gocv.Mat {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last.Clone()
}

// Close marks the display closed and releases the stored frame.
func (d *MockDisplay) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.closed {
		d.last.Close()
		d.closed = true
	}
	return nil
}
