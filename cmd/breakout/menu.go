package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick variants from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to choose a variant, left/right to change the
difficulty and Enter to play. After a round you return to the menu.
Tab shows the results of the rounds played in this session; they are
kept in memory only and are gone when the program exits.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Difficulty
  Enter/Space  - Play
  Tab          - Session results
  Q/Esc        - Quit

Examples:
  breakout menu
  breakout menu --fps 30
  breakout menu --surface cell`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	// Fail early on a broken config file
	cfg, err := loadConfig(preset)
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("results unavailable", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	rt := runtimeConfig(cfg)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, rt, preset)
		if err != nil {
			return err
		}
		rt = menuResult.Config
		preset = menuResult.Difficulty

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsResults {
			goBack, err := tui.RunResults(store, rt.ScreenW, rt.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		cfg, err = loadConfig(preset)
		if err != nil {
			return err
		}
		rt.TickRate = cfg.Display.TickRate

		back, err := playRound(cmd.Context(), menuResult.GameID, cfg, rt, store)
		if err != nil {
			logger.Error("round failed", "variant", menuResult.GameID, "err", err)
			continue
		}
		if !back {
			return nil // Quit from inside the round
		}
		if cmd.Context().Err() != nil {
			return nil
		}
	}
}
