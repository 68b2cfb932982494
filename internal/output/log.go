package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the global diagnostic logger.
var Logger *log.Logger

func init() {
	Logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "polymd",
	})
}

// SetupLogging configures the logger based on verbosity.
func SetupLogging(verbose bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	Logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: verbose,
		ReportCaller:    verbose,
		Prefix:          "polymd",
	})
	SetVerbose(verbose)
}

// NewDiscardLogger returns a logger that writes nowhere.
func NewDiscardLogger() *log.Logger {
	return log.New(io.Discard)
}
