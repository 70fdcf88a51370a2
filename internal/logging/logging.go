// internal/logging/logging.go
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// NewLogger creates the application logger with a specific level and format.
// format is "json" or "text"; anything else falls back to JSON.
// A nil writer means stdout.
func NewLogger(level, format string, out io.Writer) *logrus.Logger {

	var log = logrus.New()

	// Set the log format.
	// JSON is the default so log collectors in the cluster can parse it.
	switch strings.ToLower(format) {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	default:
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if out == nil {
		out = os.Stdout
	}
	log.SetOutput(out)

	switch strings.ToLower(level) {
	case "trace":
		log.SetLevel(logrus.TraceLevel)
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "info":
		log.SetLevel(logrus.InfoLevel)
	case "warn", "warning":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
