// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// LogLevels lists the accepted --log-level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// NewLogger builds the stderr diagnostics logger. quiet forces error level.
func NewLogger(dst io.Writer, level string, quiet bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q (want %s)", level, strings.Join(LogLevels, " | "))
	}
	if quiet {
		lvl = log.ErrorLevel
	}
	return log.NewWithOptions(dst, log.Options{
		Level:  lvl,
		Prefix: "ipfilter",
	}), nil
}
