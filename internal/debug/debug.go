// Package debug writes an opt-in trace log for diagnosing the TUI. While
// bubbletea owns the terminal there is no usable stderr, so diagnostics go to
// ~/.cadence/debug.log instead. The file is truncated on every launch.
package debug

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu   sync.RWMutex
	sink *log.Logger
	file *os.File

	// logPath is swapped out by tests.
	logPath = defaultLogPath
)

// Init opens the log file when enable is true. When enable is false every
// logging call becomes a no-op.
func Init(enable bool) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	if !enable {
		return nil
	}

	path, err := logPath()
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	file = f
	sink = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds)
	sink.Printf("cadence debug log started %s", time.Now().Format(time.RFC3339))
	return nil
}

// Close flushes and closes the log file. Safe to call repeatedly and when
// logging never was enabled.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if file != nil {
		_ = file.Close()
		file = nil
	}
	sink = nil
}

// Logf writes a formatted line when logging is enabled.
func Logf(format string, v ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if sink != nil {
		sink.Printf(format, v...)
	}
}

// Enabled reports whether Init opened a log file.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return sink != nil
}

func defaultLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home: %w", err)
	}
	return filepath.Join(home, ".cadence", "debug.log"), nil
}
