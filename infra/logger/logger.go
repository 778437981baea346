// Package logger adapts zerolog to the core Logger interface.
package logger

import corelogger "github.com/kilianp07/vehicleinfo/core/logger"

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

var (
	_ Logger = NopLogger{}
	_ Logger = (*ZerologLogger)(nil)
)

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// New returns a Logger for a command that runs before any configuration is
// loaded. APP_ENV=dev switches to console output.
func New(component string) Logger {
	return NewZerologLogger(component)
}

// FromConfig returns a Logger honouring the configured level and format.
func FromConfig(component, level, format string, opts Options) Logger {
	opts.Level = level
	opts.Format = format
	return NewZerologLoggerWithOptions(component, opts)
}
