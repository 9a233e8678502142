// Package logging configures the logrus logger shared by the application.
// The terminal belongs to the UI, so entries go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Setup opens (or creates) path for appending and returns a logger writing to
// it at the given level. The returned closer releases the file.
func Setup(path, level string) (*logrus.Logger, io.Closer, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(path) == "" {
		return nil, nil, fmt.Errorf("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(file, lvl), file, nil
}

// New returns a logger writing text entries with full timestamps to w.
func New(w io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		DisableColors:    true,
		QuoteEmptyFields: true,
	})
	return logger
}

// Discard returns a logger that drops everything. Useful as a default.
func Discard() *logrus.Logger {
	return New(io.Discard, logrus.PanicLevel)
}

func parseLevel(level string) (logrus.Level, error) {
	trimmed := strings.TrimSpace(level)
	if trimmed == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse log level: %w", err)
	}
	return lvl, nil
}
