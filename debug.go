package dpll

import (
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
)

// Logger is the solver's structured trace facility. It is a thin wrapper
// that, when enabled, formats assignments with github.com/kr/pretty so that
// they print as nested Go syntax rather than opaque pointers. Disabled Loggers do no work beyond a boolean check: tracing
// never materializes a message unless it will actually be printed.
//
// Tracing is gated on construction rather than checked ad hoc at each call
// site, so debug output never ends up unconditionally wired into the search
// loop's hot path.
type Logger struct {
	enabled bool
	w       io.Writer
}

// NewLogger returns a Logger that writes to w when enabled is true, and
// does nothing otherwise.
func NewLogger(enabled bool, w io.Writer) *Logger {
	return &Logger{enabled: enabled, w: w}
}

// newLoggerFromConfig builds the Logger a Solve call should use, writing to
// stderr when verbosity is on.
func newLoggerFromConfig(c config) *Logger {
	return NewLogger(c.verbose, os.Stderr)
}

// Tracef prints a formatted trace line if the logger is enabled.
func (l *Logger) Tracef(format string, args ...interface{}) {
	if l == nil || !l.enabled {
		return
	}
	fmt.Fprintf(l.w, format+"\n", args...)
}

// TraceAssignment pretty-prints a labeled Assignment snapshot if the logger
// is enabled.
func (l *Logger) TraceAssignment(label string, a Assignment) {
	if l == nil || !l.enabled {
		return
	}
	fmt.Fprintf(l.w, "%s: %# v\n", label, pretty.Formatter(a.states))
}
