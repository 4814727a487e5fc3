package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:  640,
			Height: 480,
		},
		Ball: BallConfig{
			Size:   13,
			Speed:  120,
			StartX: 313.5,
			StartY: 250,
			VX:     0,
			VY:     120,
		},
		Paddle: PaddleConfig{
			Width:     100,
			Height:    20,
			Speed:     200,
			BottomGap: 10,
		},
		Blocks: BlocksConfig{
			Rows:   5,
			Cols:   10,
			Height: 20,
			Gap:    4,
			Top:    40,
		},
		Rules: RulesConfig{
			Bottom:       "game_over",
			Bounce:       "angled",
			MaxAngle:     45,
			SpeedUp:      1.1,
			MaxBallSpeed: 600,
			BlockPoints:  10,
		},
		Display: DisplayConfig{
			TickRate: 60,
			FontPath: "",
			HoldMS:   150,
		},
	}
}
