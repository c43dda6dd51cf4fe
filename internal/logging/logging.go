package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Setup creates a JSON logger writing to path at the given level. The
// terminal belongs to the UI, so logs only ever go to a file, truncated on
// each run so it reflects only the current session. An empty path returns a
// disabled logger.
func Setup(path, level string) (zerolog.Logger, func() error, error) {
	noop := func() error { return nil }
	if path == "" {
		return zerolog.Nop(), noop, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("parsing log level: %w", err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("opening log file: %w", err)
	}

	logger := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return logger, f.Close, nil
}
