package main

import (
	"context"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/cell"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"

	// Register the variants
	_ "github.com/vovakirdan/tui-breakout/internal/game"
)

// Presentation surfaces
const (
	surfaceTUI  = "tui"
	surfaceCell = "cell"
)

// loadConfig loads the config file and applies the difficulty preset.
func loadConfig(preset config.DifficultyPreset) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}
	return cfg, nil
}

// runtimeConfig reads the terminal size, falling back to 80x24.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}
	rt.TickRate = cfg.Display.TickRate
	return rt
}

// playRound runs one variant on the selected surface.
// Returns true if the player asked to go back to the menu.
func playRound(ctx context.Context, id string, cfg config.Config, rt core.RuntimeConfig, store *storage.Store) (bool, error) {
	game, err := registry.Create(id, cfg, logger)
	if err != nil {
		return false, err
	}

	hold := time.Duration(cfg.Display.HoldMS) * time.Millisecond
	logger.Debug("starting round", "variant", id, "surface", flagSurface, "fps", rt.TickRate)

	if flagSurface == surfaceCell {
		return cell.Run(ctx, game, cell.Options{Runtime: rt, Store: store, Logger: logger, Hold: hold})
	}
	return tui.Run(game, tui.Options{Runtime: rt, Store: store, Logger: logger, Hold: hold})
}
