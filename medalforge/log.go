package medalforge

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns a no-op logger unless debug output is enabled.
func newLogger(opts ClientOpts) zerolog.Logger {
	if !opts.Debug {
		return zerolog.Nop()
	}
	if opts.Logger != nil {
		return opts.Logger.With().Str("component", "medalforge").Logger()
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("component", "medalforge").
		Logger()
}
