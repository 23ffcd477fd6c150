// Package logger builds per-component charm loggers so each piece of
// swypath (the dictionary manager, the IPC server, the CLI) logs under
// its own prefix instead of sharing one unlabeled global logger.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// Default creates a logger for component that respects the global log
// level (set via log.SetLevel in cmd/swypath), writing plain text to
// stdout with no caller/timestamp noise -- the level a long-running
// server or lazily-loaded manager logs at day to day.
func Default(component string) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          component,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a logger for component with an explicit level and
// caller/timestamp reporting, independent of the global log level. Used
// where a component needs heavier diagnostics than the rest of the
// process, e.g. the IPC server under --v.
func NewWithConfig(component string, level log.Level, reportCaller, reportTimestamp bool, formatter log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          component,
		Level:           level,
		ReportCaller:    reportCaller,
		ReportTimestamp: reportTimestamp,
		Formatter:       formatter,
	})
}
