// Package logging provides leveled diagnostic logging to stderr. Output is
// human-readable console lines produced by zerolog; stdout stays reserved for
// command results.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Log levels
const (
	None    = 0
	Error   = 1
	Warning = 2
	Info    = 3
	Debug   = 4
)

// DefaultLevel keeps a normal run quiet apart from the final error report.
const DefaultLevel = Warning

var (
	currentLevel atomic.Int32

	mu     sync.RWMutex
	out    io.Writer
	logger zerolog.Logger
)

func init() {
	currentLevel.Store(DefaultLevel)
	SetOutput(os.Stderr)
}

func newLogger(w io.Writer) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: "15:04:05.000",
	}
	return zerolog.New(console).With().Timestamp().Logger()
}

// SetOutput redirects log output to w and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	logger = newLogger(w)
	return prev
}

// SetLevel sets the global logging level.
func SetLevel(level int) {
	currentLevel.Store(int32(level))
	Logf(Debug, "Log level set to %d", level)
}

// GetLevel returns the current logging level.
func GetLevel() int {
	return int(currentLevel.Load())
}

// ParseLevel converts a string level to an integer level.
func ParseLevel(levelStr string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "none":
		return None, nil
	case "error":
		return Error, nil
	case "warn", "warning":
		return Warning, nil
	case "info":
		return Info, nil
	case "debug":
		return Debug, nil
	default:
		return DefaultLevel, fmt.Errorf("invalid log level string: '%s'", levelStr)
	}
}

// SetupLogging sets the level from a string, falling back to DefaultLevel
// with a warning when the string is not recognized.
func SetupLogging(levelStr string) int {
	level, err := ParseLevel(levelStr)
	if err != nil {
		Logf(Warning, "Invalid log level '%s' provided, defaulting to 'warn'. %v", levelStr, err)
		level = DefaultLevel
	}
	SetLevel(level)
	return level
}

// Enabled reports whether messages at level would be written.
func Enabled(level int) bool {
	return level > None && int32(level) <= currentLevel.Load()
}

// Logf logs a formatted message if the given level is high enough.
func Logf(level int, format string, v ...any) {
	if !Enabled(level) {
		return
	}
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.WithLevel(zerologLevel(level)).Msgf(format, v...)
}

func zerologLevel(level int) zerolog.Level {
	switch level {
	case Error:
		return zerolog.ErrorLevel
	case Warning:
		return zerolog.WarnLevel
	case Info:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}
