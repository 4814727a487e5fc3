package game

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/sim"
)

// Variant is one registered flavour of the game. All variants share the
// loaded config; Params pins the rules that make a variant what it is.
type Variant struct {
	ID          string
	Title       string
	Description string
	Params      func(cfg config.Config) (sim.Params, error)
}

// Variants lists the registered variants from the simplest to the full game.
var Variants = []Variant{
	{
		ID:          "paddle",
		Title:       "Paddle",
		Description: "Ball and paddle only, the paddle saves the ball at the bottom edge",
		Params: func(cfg config.Config) (sim.Params, error) {
			p, err := cfg.Params()
			if err != nil {
				return p, err
			}
			p.Rows = 0
			p.Bottom = sim.RuleRescue
			p.Bounce = sim.BounceReflect
			p.BallStartX, p.BallStartY = 0, 0
			p.BallVX, p.BallVY = p.BallSpeed, p.BallSpeed
			return p, nil
		},
	},
	{
		ID:          "blocks",
		Title:       "Blocks",
		Description: "Block grid to clear, straight paddle bounces, bottom edge loses",
		Params: func(cfg config.Config) (sim.Params, error) {
			p, err := cfg.Params()
			if err != nil {
				return p, err
			}
			p.Bottom = sim.RuleGameOver
			p.Bounce = sim.BounceReflect
			return p, nil
		},
	},
	{
		ID:          "breakout",
		Title:       "Breakout",
		Description: "Full game: angled paddle bounces that speed the ball up",
		Params: func(cfg config.Config) (sim.Params, error) {
			return cfg.Params()
		},
	},
}

// Lookup returns the variant with the given ID.
func Lookup(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}
