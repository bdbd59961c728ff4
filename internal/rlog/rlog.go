// Package rlog centralizes the zerolog logger used for operational
// progress output (pruning-table builds, the HTTP server). Primary CLI
// output (the solution line) stays on fmt, matching the teacher's
// command texture; zerolog is reserved for everything behind the scenes.
package rlog

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the shared, process-wide structured logger.
var Logger = newLogger()

func newLogger() zerolog.Logger {
	var w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	if fi, err := os.Stderr.Stat(); err != nil || (fi.Mode()&os.ModeCharDevice) == 0 {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	return zerolog.New(w).With().Timestamp().Logger()
}
