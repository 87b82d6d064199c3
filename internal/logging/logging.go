// FILE: internal/logging/logging.go
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup routes the global logger to w. Debug level is enabled with debug.
func Setup(w io.Writer, debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}).With().Timestamp().Logger()
}

// Debugf logs a formatted debug message when debug level is enabled.
func Debugf(format string, v ...any) {
	log.Debug().Msgf(format, v...)
}

// Enabled reports whether debug messages are written
func Enabled() bool {
	return zerolog.GlobalLevel() <= zerolog.DebugLevel
}
