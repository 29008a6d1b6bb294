// Package logging configures the process-wide default logger.
package logging

import (
	"log/slog"
	"os"
)

// Init installs a text handler on stderr as the slog default.
// Verbose enables debug-level output.
func Init(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
