// Package logging writes errors and trace events as JSON lines to a log
// file. The terminal belongs to the TUI, so nothing is written to stdout or
// stderr unless the log file itself cannot be opened.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const defaultLogFile = "squirrel-docs.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	base         = newLogger(defaultLogFile)
)

// fileWriter opens the log file for every write so that the file can be
// rotated or removed while the program runs.
type fileWriter struct {
	path string
}

func (w fileWriter) Write(p []byte) (int, error) {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return 0, err
	}
	defer f.Close()
	return f.Write(p)
}

func newLogger(path string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(fileWriter{path: path}).With().Timestamp().Logger()
}

func logger() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return base
}

// Logger returns a child logger annotated with the given component name.
func Logger(component string) zerolog.Logger {
	return logger().With().Str("component", component).Logger()
}

// Error writes err to the shared log file. Nil errors are ignored.
func Error(err error) {
	if err == nil {
		return
	}
	l := logger()
	l.Error().Err(err).Send()
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace writes anything.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	l := logger()
	e := l.Debug().Str("event", event)
	if payload != nil {
		e = e.Interface("payload", payload)
	}
	e.Send()
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		base = newLogger(logPath)
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		base = newLogger(logPath)
		return
	}
	logPath = path
	base = newLogger(logPath)
}

// Path returns the file log entries are written to.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}
