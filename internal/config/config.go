// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the breakout game.
package config

// Config contains all tunable parameters of a round and of the display.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Ball    BallConfig    `yaml:"ball"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Blocks  BlocksConfig  `yaml:"blocks"`
	Rules   RulesConfig   `yaml:"rules"`
	Display DisplayConfig `yaml:"display"`
}

// WorldConfig defines the logical playfield in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball size and launch state.
type BallConfig struct {
	Size   float64 `yaml:"size"`
	Speed  float64 `yaml:"speed"` // Base speed, units per second
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"`
	BottomGap float64 `yaml:"bottom_gap"`
}

// BlocksConfig defines the block grid.
type BlocksConfig struct {
	Rows   int     `yaml:"rows"`
	Cols   int     `yaml:"cols"`
	Height float64 `yaml:"height"`
	Gap    float64 `yaml:"gap"`
	Top    float64 `yaml:"top"`
}

// RulesConfig defines collision rules and scoring.
type RulesConfig struct {
	Bottom       string  `yaml:"bottom"`    // "rescue" or "game_over"
	Bounce       string  `yaml:"bounce"`    // "reflect" or "angled"
	MaxAngle     float64 `yaml:"max_angle"` // Degrees
	SpeedUp      float64 `yaml:"speed_up"`
	MaxBallSpeed float64 `yaml:"max_ball_speed"` // 0 = uncapped
	BlockPoints  int     `yaml:"block_points"`
}

// DisplayConfig defines presentation settings.
type DisplayConfig struct {
	TickRate int    `yaml:"tick_rate"` // Frames per second
	FontPath string `yaml:"font_path"` // Banner font, empty for plain text
	HoldMS   int    `yaml:"hold_ms"`   // How long a key press counts as held
}
