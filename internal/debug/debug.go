// Package debug provides optional file-based debug logging.
//
// When the TEXTFLOW_DEBUG environment variable is set to a file path, debug
// messages are appended to that file as JSON lines. Otherwise, logging is a
// no-op until Init is called.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "TEXTFLOW_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  = zerolog.Nop()
)

func init() {
	if path := os.Getenv(EnvVar); path != "" {
		// Logging is best effort; a bad path must not break the program.
		_ = Init(path)
	}
}

// Init starts appending debug messages to the file at path, replacing any
// previously opened log. If path is empty, uses "debug.log" in the current
// directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		path = "debug.log"
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	logFile = f
	logger = zerolog.New(f).With().Timestamp().Logger()
	return nil
}

// Close closes the debug log file. Later messages are dropped.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

// closeLocked does the actual close work. Caller must hold mu.
func closeLocked() error {
	logger = zerolog.Nop()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Enabled reports whether a debug log is open.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return logFile != nil
}

// Log writes a formatted message to the debug log.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.Debug().Msgf(format, args...)
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}
