package sim

import "math"

// Snapshot contains the mutable part of a State for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     int
	BallX    float64
	BallY    float64
	BallVX   float64
	BallVY   float64
	Speed    float64
	PaddleX  float64
	GameOver bool
	YouWin   bool

	// Destroyed flags in row-major order
	Destroyed []bool
}

// Snapshot returns the current state as a Snapshot.
func (s *State) Snapshot() Snapshot {
	destroyed := make([]bool, len(s.Blocks))
	for i, b := range s.Blocks {
		destroyed[i] = b.Destroyed
	}
	return Snapshot{
		Tick:      s.Ticks,
		BallX:     s.Ball.X,
		BallY:     s.Ball.Y,
		BallVX:    s.Ball.VX,
		BallVY:    s.Ball.VY,
		Speed:     s.Ball.Speed,
		PaddleX:   s.Paddle.X,
		GameOver:  s.GameOver,
		YouWin:    s.YouWin,
		Destroyed: destroyed,
	}
}

// ApplySnapshot restores the mutable state. Block flags are only restored
// when the snapshot was taken from a grid of the same size.
func (s *State) ApplySnapshot(snap Snapshot) {
	s.Ticks = snap.Tick
	s.Ball.X = snap.BallX
	s.Ball.Y = snap.BallY
	s.Ball.VX = snap.BallVX
	s.Ball.VY = snap.BallVY
	s.Ball.Speed = snap.Speed
	s.Paddle.X = snap.PaddleX
	s.GameOver = snap.GameOver
	s.YouWin = snap.YouWin

	if len(snap.Destroyed) == len(s.Blocks) {
		for i := range s.Blocks {
			s.Blocks[i].Destroyed = snap.Destroyed[i]
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- hash computation
	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.Speed, snap.PaddleX} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + boolBit(snap.GameOver)
	h = h*31 + boolBit(snap.YouWin)
	for _, d := range snap.Destroyed {
		h = h*31 + boolBit(d)
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
