package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// SetupLogging configures the global zerolog logger at the given level.
// With toFile set, logs are appended to ~/.cubetimer/cubetimer.log as JSON
// lines (the TUI owns the terminal); otherwise they go to stderr through a
// console writer. The returned closer releases the log file.
func SetupLogging(level string, toFile bool) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if !toFile {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
		return logger, nopCloser{}, nil
	}

	if err := EnsureGlobalDir(); err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	path, err := GlobalLogFile()
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logger := zerolog.New(f).With().Timestamp().Logger()
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
