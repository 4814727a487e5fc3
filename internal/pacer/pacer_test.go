package pacer

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestPacerSleepsRemainder(t *testing.T) {
	clock := NewMockClock(epoch)
	p := New(clock, 50) // 20ms frames

	if dt := p.Begin(); dt != 0 {
		t.Errorf("first Begin = %v, expected 0", dt)
	}

	clock.Advance(5 * time.Millisecond) // frame work
	if slept := p.Wait(); slept != 15*time.Millisecond {
		t.Errorf("Wait slept %v, expected 15ms", slept)
	}

	if dt := p.Begin(); dt != 20*time.Millisecond {
		t.Errorf("Begin = %v, expected 20ms", dt)
	}
}

func TestPacerSlowFrame(t *testing.T) {
	clock := NewMockClock(epoch)
	p := New(clock, 50)

	p.Begin()
	clock.Advance(35 * time.Millisecond)
	if slept := p.Wait(); slept != 0 {
		t.Errorf("Wait slept %v after an overrun, expected 0", slept)
	}
	if dt := p.Begin(); dt != 35*time.Millisecond {
		t.Errorf("Begin = %v, expected the real elapsed 35ms", dt)
	}
}

func TestPacerSteadyRate(t *testing.T) {
	clock := NewMockClock(epoch)
	p := New(clock, 60)

	for i := 0; i < 120; i++ {
		p.Begin()
		clock.Advance(2 * time.Millisecond)
		p.Wait()
	}

	elapsed := clock.Now().Sub(epoch)
	want := 120 * p.Frame()
	if elapsed != want {
		t.Errorf("120 frames took %v, expected %v", elapsed, want)
	}
	if clock.Slept() != want-120*2*time.Millisecond {
		t.Errorf("Slept = %v", clock.Slept())
	}
}

func TestPacerDefaults(t *testing.T) {
	p := New(nil, 0)
	if p.Frame() != time.Second/60 {
		t.Errorf("Frame = %v, expected 1/60s", p.Frame())
	}
	if slept := p.Wait(); slept != 0 {
		t.Error("Wait before Begin should not sleep")
	}
}

func TestFPSCounter(t *testing.T) {
	var c FPSCounter
	now := epoch
	reports := 0

	for i := 0; i < 200; i++ {
		fps, ok := c.Tick(now)
		if ok {
			reports++
			if fps != 60 {
				t.Errorf("fps = %d, expected 60", fps)
			}
		}
		now = now.Add(time.Second / 60)
	}

	if reports != 3 {
		t.Errorf("got %d reports over ~3.3s, expected 3", reports)
	}
	if c.FPS() != 60 {
		t.Errorf("FPS() = %d, expected 60", c.FPS())
	}
}

func TestFPSCounterSlowLoop(t *testing.T) {
	var c FPSCounter
	now := epoch
	c.Tick(now)

	var fps int
	var ok bool
	for i := 0; i < 10; i++ {
		now = now.Add(100 * time.Millisecond)
		fps, ok = c.Tick(now)
	}
	if !ok || fps != 10 {
		t.Errorf("Tick = %d, %v, expected 10, true", fps, ok)
	}
}
