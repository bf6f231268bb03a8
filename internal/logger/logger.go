// =============================================================================
// PNL Generator - Logging Setup
// =============================================================================
//
// Thin wrapper around logrus. Commands call Init once; everything else logs
// through the package-level helpers so the core packages stay free of logger
// plumbing.
//
// =============================================================================

package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger instance.
var Log = logrus.New()

// Init configures the shared logger. The verbose flag forces debug level
// regardless of the configured level string.
func Init(level string, verbose bool) {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	if verbose {
		parsed = logrus.DebugLevel
	}
	Log.SetLevel(parsed)
}

// WithField returns an entry with one structured field attached.
func WithField(key string, value interface{}) *logrus.Entry {
	return Log.WithField(key, value)
}
