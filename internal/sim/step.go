package sim

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Events describes what happened during one Step.
type Events struct {
	WallX    bool // Horizontal velocity was reflected by a side wall
	WallTop  bool
	Paddle   bool
	Block    int // Index of the destroyed block, -1 if none
	GameOver bool
	YouWin   bool
}

// Step advances the round by dt seconds with the given paddle input.
//
// Order: paddle move, side walls, top wall, bottom edge, paddle, blocks,
// win check, integration. At most one block is destroyed per tick and there
// is no sub-stepping, so a fast ball can pass through a block or the paddle
// at low frame rates. Once GameOver or YouWin is set Step does nothing.
func (s *State) Step(dt float64, dir core.Direction) Events {
	ev := Events{Block: -1}
	if s.Done() {
		return ev
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	s.Ticks++

	s.movePaddle(dt, dir)

	p := &s.Params
	b := &s.Ball

	if b.X < 0 && b.VX < 0 {
		b.VX = -b.VX
		b.X = 0
		ev.WallX = true
	} else if b.Right() > p.WorldW && b.VX > 0 {
		b.VX = -b.VX
		b.X = p.WorldW - b.W
		ev.WallX = true
	}

	if b.Y < 0 && b.VY < 0 {
		b.VY = -b.VY
		b.Y = 0
		ev.WallTop = true
	}

	if b.Bottom() > p.WorldH {
		if p.Bottom == RuleRescue && b.Intersects(s.Paddle.Box) {
			s.bounceOffPaddle()
			ev.Paddle = true
		} else {
			s.GameOver = true
			ev.GameOver = true
			return ev
		}
	}

	// A ball at rest on the paddle counts as falling onto it.
	if p.Bottom == RuleGameOver && b.VY >= 0 && b.Intersects(s.Paddle.Box) {
		s.bounceOffPaddle()
		ev.Paddle = true
	}

	for i := range s.Blocks {
		blk := &s.Blocks[i]
		if blk.Destroyed || !b.Intersects(blk.Box) {
			continue
		}
		blk.Destroyed = true
		b.VY = -b.VY
		ev.Block = i
		break
	}

	if ev.Block >= 0 && s.Remaining() == 0 {
		s.YouWin = true
		ev.YouWin = true
	}

	b.X += b.VX * dt
	b.Y += b.VY * dt

	return ev
}

// movePaddle applies the directional input and keeps the paddle on screen.
func (s *State) movePaddle(dt float64, dir core.Direction) {
	pd := &s.Paddle
	pd.X += float64(dir) * s.Params.PaddleSpeed * dt
	pd.X = core.ClampF(pd.X, 0, s.Params.WorldW-pd.W)
}

// bounceOffPaddle sends the ball back up and seats it on the paddle so the
// same contact cannot trigger again next tick.
func (s *State) bounceOffPaddle() {
	p := &s.Params
	b := &s.Ball
	pd := &s.Paddle

	switch p.Bounce {
	case BounceAngled:
		offset := 0.0
		if pd.W > 0 {
			offset = core.ClampF((b.CenterX()-pd.CenterX())/(pd.W/2), -1, 1)
		}
		angle := offset * p.MaxBounceAngle

		factor := p.SpeedUp
		if factor <= 0 {
			factor = 1
		}
		if p.MaxBallSpeed > 0 && b.Speed > 0 && b.Speed*factor > p.MaxBallSpeed {
			factor = p.MaxBallSpeed / b.Speed
		}

		b.VX = b.Speed * offset * factor
		b.VY = -b.Speed * math.Cos(angle) * factor
		b.Speed *= factor
	default:
		b.VY = -math.Abs(b.VY)
	}

	b.Y = pd.Y - b.H
}
