package logging

import (
	"fmt"
	"io"
)

// Config holds logging configuration
type Config struct {
	AppLogPath    string // Path to application log file; empty logs to stderr
	AccessLogPath string // Path to ACL decision log file; empty disables it
	Level         string // Minimum level for the application log
}

var (
	// App is the global application logger
	App *AppLogger
	// Access is the global ACL decision logger
	Access *AccessLogger
)

func init() {
	// Default loggers discard everything until Initialize runs, so
	// packages can log unconditionally.
	App = newDiscardAppLogger()
	Access = &AccessLogger{out: io.Discard}
}

// Initialize sets up the global loggers
func Initialize(config *Config) error {
	app, err := NewAppLogger(config.AppLogPath, config.Level)
	if err != nil {
		return fmt.Errorf("initializing app logger: %w", err)
	}

	access, err := NewAccessLogger(config.AccessLogPath)
	if err != nil {
		return fmt.Errorf("initializing access logger: %w", err)
	}

	App = app
	Access = access
	return nil
}

// MustInitialize initializes logging and panics on error
func MustInitialize(config *Config) {
	if err := Initialize(config); err != nil {
		panic(fmt.Sprintf("failed to initialize logging: %v", err))
	}
}
