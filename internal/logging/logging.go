package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"scriptdex/internal/config"
)

const (
	defaultMaxSizeMB = 10
	defaultMaxFiles  = 5
)

// Setup builds the process logger and returns it with a cleanup
// function. Logs go to stderr, never stdout, which belongs to the MCP
// transport; an optional file copy is size-rotated.
func Setup(cfg config.LogConfig) (*slog.Logger, func(), error) {
	var output io.Writer = os.Stderr
	cleanup := func() {}

	if cfg.File != "" {
		writer, err := NewRotatingWriter(cfg.File, defaultMaxSizeMB, defaultMaxFiles)
		if err != nil {
			return nil, nil, err
		}
		output = io.MultiWriter(os.Stderr, writer)
		cleanup = func() { _ = writer.Close() }
	}

	handler := slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	})
	return slog.New(handler), cleanup, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
