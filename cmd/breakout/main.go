// breakout plays Pong-to-Breakout in the terminal.
//
// Usage:
//
//	breakout list              - List available variants
//	breakout play <variant>    - Play a variant
//	breakout menu              - Pick variants interactively and review session results
//	breakout config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Config YAML (default: ~/.breakout/config.yaml, ./configs/breakout.yaml)
//	--difficulty <name>  - easy, normal or hard
//	--fps <rate>         - Override the tick rate
//	--surface <name>     - tui (Bubble Tea) or cell (tcell)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSurface    string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Error("breakout failed", "err", err)
		if logFile != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Pong-to-Breakout in your terminal",
	Long: `breakout is a terminal ball-and-paddle game in three variants, from a
bare paddle rally to the full block-breaking game.

Available commands:
  list     - Show all variants
  play     - Play a specific variant directly
  menu     - Interactive variant picker with session results
  config   - Print the effective configuration

Examples:
  breakout list
  breakout play breakout
  breakout play paddle --surface cell
  breakout menu --difficulty hard
  breakout config --config ./my-breakout.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagSurface, "surface", surfaceTUI, "Presentation surface: tui or cell")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}

// setup validates the global flags and builds the logger.
func setup(_ *cobra.Command, _ []string) error {
	switch flagSurface {
	case surfaceTUI, surfaceCell:
	default:
		return fmt.Errorf("unknown surface %q (want %s or %s)", flagSurface, surfaceTUI, surfaceCell)
	}
	if flagFPS < 0 {
		return fmt.Errorf("--fps must not be negative, got %d", flagFPS)
	}
	return initLog(flagLogLevel, flagLogFile)
}
