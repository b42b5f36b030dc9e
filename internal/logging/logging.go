// Package logging builds the zerolog logger used for diagnostics.
// The terminal belongs to the UI, so output always goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"photogallery/internal/config"
)

// New returns a logger writing to w. Dev and local environments get the
// human-readable console format at debug level; anything else gets JSON at info.
func New(w io.Writer, env string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	level := zerolog.InfoLevel
	if env == config.EnvLocal || env == config.EnvDev {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().
		Timestamp().
		Str("service", "photogallery").
		Logger()
}

// OpenFile opens (or creates) path for appending and returns a logger on it.
// The caller closes the returned file on exit.
func OpenFile(path, env string) (zerolog.Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("logging: create dir for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("logging: open %s: %w", path, err)
	}
	return New(f, env), f, nil
}
