package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known difficulty presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the config as loaded.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		setBallSpeed(cfg, cfg.Ball.Speed*0.75)
		cfg.Paddle.Width = min(cfg.Paddle.Width*1.4, cfg.World.Width)
	case DifficultyHard:
		setBallSpeed(cfg, cfg.Ball.Speed*1.5)
		cfg.Paddle.Width *= 0.8
		if cfg.Rules.MaxBallSpeed > 0 {
			cfg.Rules.MaxBallSpeed *= 1.5
		}
	}
}

// setBallSpeed changes the base speed and scales the launch velocity with it.
func setBallSpeed(cfg *Config, speed float64) {
	if cfg.Ball.Speed > 0 {
		k := speed / cfg.Ball.Speed
		cfg.Ball.VX *= k
		cfg.Ball.VY *= k
	}
	cfg.Ball.Speed = speed
}
