// Package logs holds the global diagnostic logger. User-facing command output
// goes to stdout via fmt; this logger is for debug/warning chatter on stderr.
package logs

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger *log.Logger

// Init sets up the global logger. If w is nil, logs go to stderr.
func Init(w io.Writer, verbose bool) {
	if w == nil {
		w = os.Stderr
	}
	logger = log.NewWithOptions(w, log.Options{
		Level:           log.InfoLevel,
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

func Debug(msg string, args ...any) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

func Warn(msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
