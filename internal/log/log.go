// Package log configures the application logger. A full-screen
// program cannot write diagnostics to the terminal it owns, so
// everything goes to a file under the config directory.
package log

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// Setup points the logger at <configDir>/ils.log. Until Setup runs,
// or when the file cannot be opened, log output is discarded.
func Setup(configDir string) error {
	logger.SetOutput(io.Discard)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetLevel(logrus.InfoLevel)
	if os.Getenv("ILS_DEBUG") != "" {
		logger.SetLevel(logrus.DebugLevel)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(configDir, "ils.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	logger.SetOutput(f)
	return nil
}

func Debugf(format string, args ...any) { logger.Debugf(format, args...) }
func Infof(format string, args ...any)  { logger.Infof(format, args...) }
func Warnf(format string, args ...any)  { logger.Warnf(format, args...) }
func Errorf(format string, args ...any) { logger.Errorf(format, args...) }

// WithField returns an entry carrying a structured field.
func WithField(key string, value any) *logrus.Entry {
	return logger.WithField(key, value)
}
