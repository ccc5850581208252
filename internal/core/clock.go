package core

import "time"

// FrameClock counts presented frames and measures the achieved frame rate
// over one-second windows.
type FrameClock struct {
	frame       uint64
	fps         int
	windowStart time.Time
	windowCount int
}

// Frame returns the monotonic frame counter.
func (c *FrameClock) Frame() uint64 {
	return c.frame
}

// FPS returns the frame rate measured over the last complete window.
func (c *FrameClock) FPS() int {
	return c.fps
}

// Tick records one presented frame at the given time.
func (c *FrameClock) Tick(now time.Time) {
	c.frame++
	if c.windowStart.IsZero() {
		c.windowStart = now
	}
	c.windowCount++
	if elapsed := now.Sub(c.windowStart); elapsed >= time.Second {
		c.fps = int(float64(c.windowCount) / elapsed.Seconds())
		c.windowStart = now
		c.windowCount = 0
	}
}
