// Package bjlog centralizes structured logging for the rest of the
// module on top of charmbracelet/log, the way lox/pokerforbots's bot and
// AI packages each hold a prefixed *log.Logger rather than calling the
// standard library's log package directly.
package bjlog

import (
	"os"

	"github.com/charmbracelet/log"
)

var base = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      "15:04:05",
})

// For returns a logger scoped to component, e.g. "engine" or "bench",
// mirroring logger.WithPrefix("ai") in the reference bot AI.
func For(component string) *log.Logger {
	return base.WithPrefix(component)
}

// Infof logs at info level against the unscoped base logger. Components
// with their own identity should call For(name) once and keep the result
// instead of going through this helper.
func Infof(format string, args ...any) {
	base.Infof(format, args...)
}

// Debugf logs at debug level against the unscoped base logger.
func Debugf(format string, args ...any) {
	base.Debugf(format, args...)
}

// SetLevel adjusts the base logger's verbosity, driven by the CLI's
// --verbose flag.
func SetLevel(level log.Level) {
	base.SetLevel(level)
}
