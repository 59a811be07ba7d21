// Package logging builds the structured loggers used by spvgen commands.
package logging

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/Manu343726/spvgen/pkg/utils"
	slogmulti "github.com/samber/slog-multi"
)

var ErrInvalidLevel = errors.New("invalid log level")

// Logger settings, as read from the command line or the config file
type Config struct {
	// One of debug, info, warn or error (case insensitive). Empty means info
	Level string
	// Optional file receiving JSON records in addition to the console output
	File string
}

// Parses a level name
func ParseLevel(text string) (slog.Level, error) {
	if text == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(text)); err != nil {
		return slog.LevelInfo, utils.MakeError(ErrInvalidLevel, "%q", text)
	}

	return level, nil
}

// Returns a logger printing human readable records of at least the given level to console,
// also forwarding every record to the extra handlers
func New(console io.Writer, level slog.Level, extra ...slog.Handler) *slog.Logger {
	handlers := append([]slog.Handler{
		slog.NewTextHandler(console, &slog.HandlerOptions{Level: level}),
	}, extra...)

	if len(handlers) == 1 {
		return slog.New(handlers[0])
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

type nopCloser struct{}

func (nopCloser) Close() error {
	return nil
}

// Builds the logger described by config. The returned closer releases the log file, if any
func Open(config Config, console io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(config.Level)
	if err != nil {
		return nil, nil, err
	}

	if config.File == "" {
		return New(console, level), nopCloser{}, nil
	}

	file, err := os.OpenFile(config.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	return New(console, level, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})), file, nil
}
