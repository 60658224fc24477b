// Package usage appends one line per invocation to a plain-text usage log.
package usage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TimeLayout is the timestamp format at the start of each entry.
const TimeLayout = "02/01/2006 15:04:05"

// Log records invocations. A Log with an empty path is disabled.
type Log struct {
	path string
}

// New returns a log writing to path. An empty path disables recording.
func New(path string) *Log {
	return &Log{path: path}
}

// Enabled reports whether Record writes anything.
func (l *Log) Enabled() bool {
	return l != nil && l.path != ""
}

// Path returns the log file location.
func (l *Log) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Entry formats one log line (without the trailing newline).
func Entry(at time.Time, argv []string) string {
	fields := append([]string{at.Format(TimeLayout)}, argv...)
	return strings.Join(fields, " ")
}

// Record appends an entry for argv at time at.
func (l *Log) Record(at time.Time, argv []string) error {
	if !l.Enabled() {
		return nil // Usage log disabled
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("failed to create usage log directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open usage log: %w", err)
	}

	if _, err := fmt.Fprintln(f, Entry(at, argv)); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write usage log: %w", err)
	}
	return f.Close()
}
