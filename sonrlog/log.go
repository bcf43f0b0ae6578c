// Package sonrlog is the structured logging façade shared by every sonr
// package.
//
// Grounded on the teacher's logging.go, which defines a pluggable Logger
// interface so the event loop can defer structured output to an external
// framework rather than own a logging implementation. This package
// generalizes that idea by wrapping github.com/joeycumines/logiface
// directly, with github.com/joeycumines/izerolog (backed by
// github.com/rs/zerolog) as the default writer, instead of reinventing a
// bespoke interface.
package sonrlog

import (
	"os"

	"github.com/joeycumines/izerolog"
	"github.com/joeycumines/logiface"
	"github.com/rs/zerolog"
)

// Logger is the logging handle passed to system.Engine (via
// system.WithLogger) and shared from there with the netio listeners.
type Logger = *logiface.Logger[*izerolog.Event]

// New builds a Logger backed by zerolog, writing JSON lines to w at the
// given minimum level.
func New(w *os.File, level logiface.Level) Logger {
	zl := zerolog.New(w).With().Timestamp().Logger()
	return logiface.New[*izerolog.Event](
		izerolog.L.WithZerolog(zl),
		logiface.WithLevel[*izerolog.Event](level),
	)
}

// Disabled returns a Logger that discards all output, matching the
// teacher's NewNoOpLogger default-construction behavior.
func Disabled() Logger {
	return logiface.New[*izerolog.Event](
		logiface.WithLevel[*izerolog.Event](logiface.LevelDisabled),
	)
}

// Default returns a Logger writing to stderr at informational level,
// suitable as a package-level default when the caller supplies none.
func Default() Logger {
	return New(os.Stderr, logiface.LevelInformational)
}
