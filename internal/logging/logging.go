// internal/logging/logging.go
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the application logger. Unknown levels fall back to info.
// console switches to zerolog's human-readable writer.
func New(level string, w io.Writer, console bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := w
	if console {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}
	logger := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	if err != nil {
		logger.Warn().Str("level", level).Msg("Unknown log level, using info")
	}
	return logger
}
