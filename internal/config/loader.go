package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/sim"
)

// Load loads the breakout configuration.
// Search order: customPath -> ~/.breakout/config.yaml -> ./configs/breakout.yaml -> embedded default.
// Fields missing from a file keep their default values. Only a broken
// customPath is an error; broken files on the search path are skipped.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "breakout.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := parse(defaultYAML); err == nil {
		return cfg, nil
	}
	return Default(), nil // Fallback to hardcoded if embed fails
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "config.yaml")
}

// Validate reports the first invalid value in the config.
func (c Config) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	case c.Ball.Size <= 0:
		return fmt.Errorf("config: ball size must be positive, got %v", c.Ball.Size)
	case c.Ball.Speed < 0:
		return fmt.Errorf("config: ball speed must not be negative, got %v", c.Ball.Speed)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("config: paddle size must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height)
	case c.Paddle.Width > c.World.Width:
		return fmt.Errorf("config: paddle width %v exceeds world width %v", c.Paddle.Width, c.World.Width)
	case c.Paddle.Speed < 0:
		return fmt.Errorf("config: paddle speed must not be negative, got %v", c.Paddle.Speed)
	case c.Blocks.Rows < 0 || c.Blocks.Cols < 0:
		return fmt.Errorf("config: block grid must not be negative, got %dx%d", c.Blocks.Rows, c.Blocks.Cols)
	case c.Blocks.Rows > 0 && c.Blocks.Cols > 0 && c.Blocks.Height <= 0:
		return fmt.Errorf("config: block height must be positive, got %v", c.Blocks.Height)
	case c.Blocks.Gap < 0:
		return fmt.Errorf("config: block gap must not be negative, got %v", c.Blocks.Gap)
	case c.Blocks.Cols > 0 && float64(c.Blocks.Cols+1)*c.Blocks.Gap >= c.World.Width:
		return fmt.Errorf("config: %d columns with gap %v do not fit the world", c.Blocks.Cols, c.Blocks.Gap)
	case c.Rules.MaxAngle < 0 || c.Rules.MaxAngle >= 90:
		return fmt.Errorf("config: max_angle must be in [0, 90), got %v", c.Rules.MaxAngle)
	case c.Rules.SpeedUp <= 0:
		return fmt.Errorf("config: speed_up must be positive, got %v", c.Rules.SpeedUp)
	case c.Rules.MaxBallSpeed < 0:
		return fmt.Errorf("config: max_ball_speed must not be negative, got %v", c.Rules.MaxBallSpeed)
	case c.Rules.BlockPoints < 0:
		return fmt.Errorf("config: block_points must not be negative, got %d", c.Rules.BlockPoints)
	case c.Display.TickRate <= 0:
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Display.TickRate)
	case c.Display.HoldMS < 0:
		return fmt.Errorf("config: hold_ms must not be negative, got %d", c.Display.HoldMS)
	}
	if _, err := sim.ParseBottomRule(c.Rules.Bottom); err != nil {
		return fmt.Errorf("config: rules.bottom: %w", err)
	}
	bounce, err := sim.ParseBounceModel(c.Rules.Bounce)
	if err != nil {
		return fmt.Errorf("config: rules.bounce: %w", err)
	}
	// The angled bounce rebuilds the velocity from ball.speed.
	if bounce == sim.BounceAngled && c.Ball.Speed <= 0 {
		return fmt.Errorf("config: ball speed must be positive with the angled bounce, got %v", c.Ball.Speed)
	}
	return nil
}

// Params converts the config into simulation parameters.
func (c Config) Params() (sim.Params, error) {
	if err := c.Validate(); err != nil {
		return sim.Params{}, err
	}
	bottom, _ := sim.ParseBottomRule(c.Rules.Bottom)
	bounce, _ := sim.ParseBounceModel(c.Rules.Bounce)

	return sim.Params{
		WorldW:          c.World.Width,
		WorldH:          c.World.Height,
		BallSize:        c.Ball.Size,
		BallSpeed:       c.Ball.Speed,
		BallStartX:      c.Ball.StartX,
		BallStartY:      c.Ball.StartY,
		BallVX:          c.Ball.VX,
		BallVY:          c.Ball.VY,
		PaddleW:         c.Paddle.Width,
		PaddleH:         c.Paddle.Height,
		PaddleSpeed:     c.Paddle.Speed,
		PaddleBottomGap: c.Paddle.BottomGap,
		Rows:            c.Blocks.Rows,
		Cols:            c.Blocks.Cols,
		BlockH:          c.Blocks.Height,
		BlockGap:        c.Blocks.Gap,
		BlockTop:        c.Blocks.Top,
		Bottom:          bottom,
		Bounce:          bounce,
		MaxBounceAngle:  c.Rules.MaxAngle * math.Pi / 180,
		SpeedUp:         c.Rules.SpeedUp,
		MaxBallSpeed:    c.Rules.MaxBallSpeed,
	}, nil
}

// YAML encodes the config in the same layout as the default file.
func (c Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return out, nil
}
