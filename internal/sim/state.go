// Package sim holds the breakout simulation: the ball, the paddle, the block
// grid and the per-tick step that moves them. It knows nothing about terminals,
// timing sources or configuration files; the host owns a *State and calls Step.
package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BottomRule decides what happens when the ball crosses the bottom edge.
type BottomRule int

const (
	// RuleRescue lets the paddle save a ball touching the bottom edge.
	// The paddle has no other collision in this mode.
	RuleRescue BottomRule = iota
	// RuleGameOver ends the round on any bottom-edge touch. Paddle
	// collision is checked separately, every tick.
	RuleGameOver
)

// String returns the config name of the rule.
func (r BottomRule) String() string {
	switch r {
	case RuleRescue:
		return "rescue"
	case RuleGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("BottomRule(%d)", int(r))
	}
}

// ParseBottomRule converts a config name to a BottomRule.
func ParseBottomRule(s string) (BottomRule, error) {
	switch s {
	case "rescue":
		return RuleRescue, nil
	case "game_over":
		return RuleGameOver, nil
	default:
		return 0, fmt.Errorf("sim: unknown bottom rule %q", s)
	}
}

// BounceModel decides how the ball leaves the paddle.
type BounceModel int

const (
	// BounceReflect negates the vertical velocity.
	BounceReflect BounceModel = iota
	// BounceAngled derives the exit angle from where the ball hit the paddle
	// and speeds the ball up.
	BounceAngled
)

// String returns the config name of the model.
func (m BounceModel) String() string {
	switch m {
	case BounceReflect:
		return "reflect"
	case BounceAngled:
		return "angled"
	default:
		return fmt.Sprintf("BounceModel(%d)", int(m))
	}
}

// ParseBounceModel converts a config name to a BounceModel.
func ParseBounceModel(s string) (BounceModel, error) {
	switch s {
	case "reflect":
		return BounceReflect, nil
	case "angled":
		return BounceAngled, nil
	default:
		return 0, fmt.Errorf("sim: unknown bounce model %q", s)
	}
}

// Params are the fixed parameters of a round. Distances are world units,
// speeds are world units per second, angles are radians.
type Params struct {
	WorldW, WorldH float64

	BallSize   float64
	BallSpeed  float64 // Base speed used by the angled bounce
	BallStartX float64
	BallStartY float64
	BallVX     float64
	BallVY     float64

	PaddleW         float64
	PaddleH         float64
	PaddleSpeed     float64
	PaddleBottomGap float64 // Space between the paddle and the bottom edge

	Rows, Cols int // Block grid; zero rows means no blocks
	BlockH     float64
	BlockGap   float64
	BlockTop   float64

	Bottom         BottomRule
	Bounce         BounceModel
	MaxBounceAngle float64
	SpeedUp        float64
	MaxBallSpeed   float64 // 0 = uncapped
}

// DefaultParams returns the classic 640x480 layout with a 5x10 grid,
// instant loss at the bottom edge and the angled paddle bounce.
func DefaultParams() Params {
	return Params{
		WorldW:          640,
		WorldH:          480,
		BallSize:        13,
		BallSpeed:       120,
		BallStartX:      313.5,
		BallStartY:      250,
		BallVX:          0,
		BallVY:          120,
		PaddleW:         100,
		PaddleH:         20,
		PaddleSpeed:     200,
		PaddleBottomGap: 10,
		Rows:            5,
		Cols:            10,
		BlockH:          20,
		BlockGap:        4,
		BlockTop:        40,
		Bottom:          RuleGameOver,
		Bounce:          BounceAngled,
		MaxBounceAngle:  math.Pi / 4,
		SpeedUp:         1.1,
		MaxBallSpeed:    600,
	}
}

// Ball is the moving square.
type Ball struct {
	core.Box
	VX, VY float64
	// Speed is the scalar the angled bounce scales; it grows with each bounce.
	Speed float64
	Color core.Color
}

// Paddle is the player-controlled bar. Only X changes.
type Paddle struct {
	core.Box
}

// Block is one cell of the grid.
type Block struct {
	core.Box
	Row, Col  int
	Destroyed bool
}

// State is the complete simulation state of one round.
type State struct {
	Params Params

	Ball   Ball
	Paddle Paddle
	Blocks []Block // Row-major

	GameOver bool
	YouWin   bool
	Ticks    int
}

// New builds the initial state of a round.
func New(p Params) *State {
	s := &State{Params: p}
	s.Ball = Ball{
		Box:   core.Box{X: p.BallStartX, Y: p.BallStartY, W: p.BallSize, H: p.BallSize},
		VX:    p.BallVX,
		VY:    p.BallVY,
		Speed: p.BallSpeed,
		Color: core.ColorRed,
	}
	s.Paddle = Paddle{Box: core.Box{
		X: (p.WorldW - p.PaddleW) / 2,
		Y: p.WorldH - p.PaddleH - p.PaddleBottomGap,
		W: p.PaddleW,
		H: p.PaddleH,
	}}
	s.Blocks = layoutBlocks(p)
	return s
}

// layoutBlocks places Rows x Cols blocks across the world width,
// separated and framed by BlockGap.
func layoutBlocks(p Params) []Block {
	if p.Rows <= 0 || p.Cols <= 0 {
		return nil
	}
	w := (p.WorldW - float64(p.Cols+1)*p.BlockGap) / float64(p.Cols)
	blocks := make([]Block, 0, p.Rows*p.Cols)
	for row := 0; row < p.Rows; row++ {
		for col := 0; col < p.Cols; col++ {
			blocks = append(blocks, Block{
				Box: core.Box{
					X: p.BlockGap + float64(col)*(w+p.BlockGap),
					Y: p.BlockTop + float64(row)*(p.BlockH+p.BlockGap),
					W: w,
					H: p.BlockH,
				},
				Row: row,
				Col: col,
			})
		}
	}
	return blocks
}

// Remaining returns how many blocks are still standing.
func (s *State) Remaining() int {
	n := 0
	for _, b := range s.Blocks {
		if !b.Destroyed {
			n++
		}
	}
	return n
}

// Done reports whether the round reached a terminal outcome.
func (s *State) Done() bool {
	return s.GameOver || s.YouWin
}
