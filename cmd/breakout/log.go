package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var (
	logger  = log.NewWithOptions(os.Stderr, log.Options{Prefix: "breakout", Level: log.WarnLevel})
	logFile io.Closer
)

// initLog points the logger at the requested level and output. The default
// is stderr at warn, which keeps the alternate screen clean.
func initLog(level, path string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out, logFile = f, f
	}

	logger = log.NewWithOptions(out, log.Options{
		Prefix:          "breakout",
		Level:           lvl,
		ReportTimestamp: path != "",
	})
	return nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
	}
}
