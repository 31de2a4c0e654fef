package demo

import (
	"io"
	"log/slog"
)

// logger is this package's diagnostic sink. It defaults to a discard
// handler: nothing in this package's correctness depends on logging, so
// by default it produces none.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger replaces the package-level diagnostic logger. Passing nil
// restores the default (silent) logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = l
}
