package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/quill-api/internal/config"
)

// ParseLevel converts a configured level name (case-insensitive) to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// New creates a JSON logger writing to w at the given level.
// An unknown level falls back to info and is reported on the returned logger.
func New(w io.Writer, levelName string) *slog.Logger {
	level, err := ParseLevel(levelName)

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	l := slog.New(handler)

	if err != nil {
		l.Warn("invalid log level configured, using default level",
			"configured_level", levelName,
			"default_level", "info")
	}

	return l
}

// Setup initializes the application's logging system from the server
// configuration. It creates a structured JSON logger on stdout and installs
// it as the slog default so package-level slog calls share it.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	l := New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(l)
	return l, nil
}
