// Package log is the leveled logger shared by the cssvalues tooling.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Level represents the severity of a log message
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
}

// ErrUnknownLevel is returned by ParseLevel for unrecognised names
var ErrUnknownLevel = errors.New("unknown log level")

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel maps "debug", "info", "warn" or "error" (any case) to a Level
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warning" {
		name = "warn"
	}
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

var (
	mu       sync.Mutex
	output   io.Writer = os.Stderr
	minLevel Level     = LevelInfo
	prefix   string    = "[cssvalues]"
)

// SetOutput sets the output destination. A nil writer silences logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// SetLevel sets the minimum log level to display
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = level
}

// GetLevel returns the current minimum log level
func GetLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return minLevel
}

func Debug(format string, args ...any) { write(LevelDebug, format, args...) }
func Info(format string, args ...any)  { write(LevelInfo, format, args...) }
func Warn(format string, args ...any)  { write(LevelWarn, format, args...) }
func Error(format string, args ...any) { write(LevelError, format, args...) }

func write(level Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if level < minLevel || output == nil {
		return
	}

	// [cssvalues] WARN: message
	fmt.Fprintf(output, "%s %s: %s\n", prefix, strings.ToUpper(level.String()), fmt.Sprintf(format, args...))
}
