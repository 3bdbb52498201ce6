// Package logging provides component-scoped logging for edmv on top of
// charmbracelet/log. Logs go to a file under the XDG state directory, with
// optional console output on stderr for verbose runs.
//
// Basic usage:
//
//	if err := logging.Init(logging.Config{Level: "info"}); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Close()
//
//	logger := logging.Get("executor")
//	logger.Info("applying plan", "renames", 3)
//
// Before Init is called all loggers write to io.Discard.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// Level represents a logging level.
type Level int

// Log levels from least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// toCharmLevel converts our Level to charmbracelet/log level.
func (l Level) toCharmLevel() log.Level {
	switch l {
	case LevelDebug:
		return log.DebugLevel
	case LevelWarn:
		return log.WarnLevel
	case LevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ErrInvalidLevel is returned when an invalid log level string is provided.
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel parses a string into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %s", ErrInvalidLevel, s)
	}
}

// Config configures the logging system.
type Config struct {
	// Level is the file log level (debug, info, warn, error).
	Level string

	// Path is the log file path. Empty uses DefaultLogPath().
	Path string

	// ConsoleLevel enables stderr output at the given level.
	// Empty disables console output.
	ConsoleLevel string
}

// Logger wraps charmbracelet/log with component identification.
type Logger struct {
	file    *log.Logger
	console *log.Logger
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...interface{}) { l.log(LevelDebug, msg, args...) }

// Info logs an info message.
func (l *Logger) Info(msg string, args ...interface{}) { l.log(LevelInfo, msg, args...) }

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...interface{}) { l.log(LevelWarn, msg, args...) }

// Error logs an error message.
func (l *Logger) Error(msg string, args ...interface{}) { l.log(LevelError, msg, args...) }

func (l *Logger) log(level Level, msg string, args ...interface{}) {
	logTo(l.file, level, msg, args...)
	if l.console != nil {
		logTo(l.console, level, msg, args...)
	}
}

func logTo(logger *log.Logger, level Level, msg string, args ...interface{}) {
	switch level {
	case LevelDebug:
		logger.Debug(msg, args...)
	case LevelInfo:
		logger.Info(msg, args...)
	case LevelWarn:
		logger.Warn(msg, args...)
	case LevelError:
		logger.Error(msg, args...)
	}
}

// With returns a new logger with additional context.
func (l *Logger) With(args ...interface{}) *Logger {
	out := &Logger{file: l.file.With(args...)}
	if l.console != nil {
		out.console = l.console.With(args...)
	}
	return out
}

// state holds the global logging state.
type state struct {
	mu          sync.RWMutex
	initialized bool
	logFile     *os.File
	level       Level
	consoleOn   bool
	consoleLvl  Level
}

var globalState = &state{}

// DefaultLogPath returns the default log file path under the XDG state
// directory.
func DefaultLogPath() string {
	path, err := xdg.StateFile("edmv/edmv.log")
	if err != nil {
		return filepath.Join(os.TempDir(), "edmv.log")
	}
	return path
}

// Init initializes the logging system. Loggers obtained before Init keep
// writing to io.Discard; call Get again after Init for a configured logger.
func Init(cfg Config) error {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if globalState.initialized && globalState.logFile != nil {
		if err := globalState.logFile.Close(); err != nil {
			return fmt.Errorf("closing existing log file: %w", err)
		}
		globalState.logFile = nil
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	globalState.level = level

	globalState.consoleOn = false
	if cfg.ConsoleLevel != "" {
		consoleLvl, err := ParseLevel(cfg.ConsoleLevel)
		if err != nil {
			return fmt.Errorf("parsing console log level: %w", err)
		}
		globalState.consoleOn = true
		globalState.consoleLvl = consoleLvl
	}

	path := cfg.Path
	if path == "" {
		path = DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	globalState.logFile = f
	globalState.initialized = true

	return nil
}

// Close flushes and closes the log file. Loggers fall back to io.Discard.
func Close() error {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	globalState.initialized = false
	if globalState.logFile == nil {
		return nil
	}
	err := globalState.logFile.Close()
	globalState.logFile = nil
	return err
}

// Get returns a logger for the given component. Safe to call before Init;
// output is discarded until the system is initialized.
func Get(component string) *Logger {
	globalState.mu.RLock()
	defer globalState.mu.RUnlock()

	var fileWriter io.Writer = io.Discard
	if globalState.initialized && globalState.logFile != nil {
		fileWriter = globalState.logFile
	}

	fileLogger := log.NewWithOptions(fileWriter, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
		Prefix:          component,
		Level:           globalState.level.toCharmLevel(),
	})

	logger := &Logger{file: fileLogger}
	if globalState.consoleOn {
		logger.console = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Prefix:          component,
			Level:           globalState.consoleLvl.toCharmLevel(),
		})
	}
	return logger
}
