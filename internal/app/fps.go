package app

import "time"

// fpsCounter derives the instantaneous frame rate from the time between
// consecutive ticks. It is the only state carried across frames.
type fpsCounter struct {
	now  func() time.Time
	prev time.Time
}

func newFPSCounter(now func() time.Time) *fpsCounter {
	if now == nil {
		now = time.Now
	}
	return &fpsCounter{now: now}
}

// Tick records a frame and returns 1/elapsed seconds since the previous one.
// The first tick, and any tick with no elapsed time, returns 0.
func (c *fpsCounter) Tick() float64 {
	cur := c.now()
	prev := c.prev
	c.prev = cur

	if prev.IsZero() {
		return 0
	}
	elapsed := cur.Sub(prev).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return 1 / elapsed
}
