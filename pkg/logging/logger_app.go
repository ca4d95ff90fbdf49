package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// AppLogger is the application logger, a thin key-value facade over logrus
type AppLogger struct {
	logger *logrus.Logger
}

// NewAppLogger creates an application logger writing to the given path, or
// to stderr when the path is empty.
func NewAppLogger(logPath, level string) (*AppLogger, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)

	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening app log: %w", err)
		}
		logger.SetOutput(file)
	} else {
		logger.SetOutput(os.Stderr)
	}

	return &AppLogger{logger: logger}, nil
}

func newDiscardAppLogger() *AppLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &AppLogger{logger: logger}
}

// fields converts alternating key-value pairs to logrus fields. A trailing
// key without a value is dropped.
func fields(keyvals []interface{}) logrus.Fields {
	f := make(logrus.Fields, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keyvals[i])
		}
		f[key] = keyvals[i+1]
	}
	return f
}

// Debug logs a debug message with key-value context
func (l *AppLogger) Debug(message string, keyvals ...interface{}) {
	l.logger.WithFields(fields(keyvals)).Debug(message)
}

// Info logs an informational message with key-value context
func (l *AppLogger) Info(message string, keyvals ...interface{}) {
	l.logger.WithFields(fields(keyvals)).Info(message)
}

// Warn logs a warning with key-value context
func (l *AppLogger) Warn(message string, keyvals ...interface{}) {
	l.logger.WithFields(fields(keyvals)).Warn(message)
}

// Error logs an error with key-value context
func (l *AppLogger) Error(message string, keyvals ...interface{}) {
	l.logger.WithFields(fields(keyvals)).Error(message)
}

// IsDebug returns true if the logger is at debug level
func (l *AppLogger) IsDebug() bool {
	return l.logger.GetLevel() >= logrus.DebugLevel
}
