package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// AccessLogger records ACL evaluation decisions in a flat key=value format,
// one line per evaluation.
type AccessLogger struct {
	out io.Writer
}

// NewAccessLogger creates a decision logger writing to the given path. An
// empty path disables decision logging.
func NewAccessLogger(logPath string) (*AccessLogger, error) {
	if logPath == "" {
		return &AccessLogger{out: io.Discard}, nil
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("creating access log directory: %w", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening access log: %w", err)
	}
	return &AccessLogger{out: file}, nil
}

// Decision logs the outcome of one ACL evaluation
func (l *AccessLogger) Decision(userID, accountID int, action string, view, edit bool, cacheStatus string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(l.out, "[%s] user=%d account=%d action=%s view=%t edit=%t cache=%s\n",
		timestamp, userID, accountID, action, view, edit, cacheStatus)
}
