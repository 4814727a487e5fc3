package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Left/Right, A/D  - Move the paddle
  P/Space          - Pause
  R                - Restart after the round ends
  Esc              - Leave the round
  Q/Ctrl+C         - Quit

Difficulty options:
  easy    - Slower ball, wider paddle
  normal  - Values from the config file
  hard    - Faster ball, narrower paddle

Examples:
  breakout play paddle
  breakout play breakout --difficulty easy
  breakout play blocks --surface cell --fps 30
  breakout play breakout --config ./my-breakout.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	id := args[0]

	if !registry.Exists(id) {
		return fmt.Errorf("unknown variant %q, run 'breakout list' to see available variants", id)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(preset)
	if err != nil {
		return err
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("results unavailable", "err", err)
		store = nil // Continue without storage - game still works
	} else {
		defer store.Close()
	}

	if _, err := playRound(cmd.Context(), id, cfg, runtimeConfig(cfg), store); err != nil {
		return fmt.Errorf("running %s: %w", id, err)
	}

	if store != nil {
		printLastResult(cmd, store)
	}
	return nil
}

// printLastResult prints a one-line summary of the last recorded round.
func printLastResult(cmd *cobra.Command, store *storage.Store) {
	results, err := store.Results(1)
	if err != nil || len(results) == 0 {
		return
	}
	r := results[0]
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, score %d, %d blocks in %.1fs\n",
		r.Variant, r.Outcome, r.Score, r.Blocks, r.Duration.Seconds())
}
