// Package logging builds the shared hub logger.
package logging

import (
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// New returns a timestamped logger writing to stderr at the given level.
// Unknown levels fall back to info.
func New(level string) *clog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level string) *clog.Logger {
	lvl, err := clog.ParseLevel(level)
	if err != nil {
		lvl = clog.InfoLevel
	}
	return clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		Level:           lvl,
		Prefix:          "slidejet",
	})
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *clog.Logger {
	return clog.NewWithOptions(io.Discard, clog.Options{Level: clog.FatalLevel})
}
