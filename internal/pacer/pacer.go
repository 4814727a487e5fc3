package pacer

import (
	"math"
	"time"
)

// Pacer holds a loop to a fixed frame period. It sleeps only for what is
// left of the period after the frame's work.
type Pacer struct {
	clock Clock
	frame time.Duration

	begun    time.Time
	hasBegun bool
}

// New creates a pacer targeting fps frames per second. Non-positive fps
// falls back to 60.
func New(clock Clock, fps int) *Pacer {
	if fps <= 0 {
		fps = 60
	}
	if clock == nil {
		clock = RealClock{}
	}
	return &Pacer{
		clock: clock,
		frame: time.Second / time.Duration(fps),
	}
}

// Frame returns the target frame period.
func (p *Pacer) Frame() time.Duration { return p.frame }

// Begin marks the start of a frame and returns the time since the previous
// frame began. The first call returns zero.
func (p *Pacer) Begin() time.Duration {
	now := p.clock.Now()
	var dt time.Duration
	if p.hasBegun {
		dt = now.Sub(p.begun)
	}
	p.begun = now
	p.hasBegun = true
	return max(dt, 0)
}

// Wait sleeps until the current frame's deadline and returns how long it slept.
func (p *Pacer) Wait() time.Duration {
	if !p.hasBegun {
		return 0
	}
	remaining := p.frame - p.clock.Now().Sub(p.begun)
	if remaining <= 0 {
		return 0
	}
	p.clock.Sleep(remaining)
	return remaining
}

// FPSCounter counts frames and reports the rate once per second.
type FPSCounter struct {
	window time.Time
	frames int
	fps    int
}

// Tick records a frame at now. It returns the measured rate and true when
// at least a second has passed since the last report.
func (c *FPSCounter) Tick(now time.Time) (int, bool) {
	if c.window.IsZero() {
		c.window = now
		return c.fps, false
	}
	c.frames++
	elapsed := now.Sub(c.window)
	if elapsed < time.Second {
		return c.fps, false
	}
	c.fps = int(math.Round(float64(c.frames) / elapsed.Seconds()))
	c.frames = 0
	c.window = now
	return c.fps, true
}

// FPS returns the last reported rate.
func (c *FPSCounter) FPS() int { return c.fps }
