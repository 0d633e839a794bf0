// Package logger builds the zerolog logger shared by the CLI and pipeline.
package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// New creates a console logger writing to w at the given level.
//
// Unknown level strings fall back to info rather than failing; logging
// configuration should never stop a run.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
