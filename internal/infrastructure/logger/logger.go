package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	*slog.Logger
}

// DefaultLogger creates a logger using slog.Default()
func DefaultLogger() *Logger {
	return &Logger{
		Logger: slog.Default(),
	}
}

// NewLogger creates a configured logger based on environment variables:
// - MUSCAT_LOG_LEVEL: DEBUG, INFO, WARN, ERROR (default: INFO)
// - MUSCAT_LOG_FORMAT: json or text (default: text)
// - MUSCAT_LOG_OUTPUT: stdout, stderr, or file path (default: stdout)
func NewLogger() *Logger {
	return New(
		os.Getenv("MUSCAT_LOG_LEVEL"),
		os.Getenv("MUSCAT_LOG_FORMAT"),
		os.Getenv("MUSCAT_LOG_OUTPUT"),
	)
}

// New creates a configured logger from explicit settings. Empty values
// fall back to the same defaults as NewLogger.
func New(levelStr, format, output string) *Logger {
	level := parseLogLevel(levelStr)
	format = strings.ToLower(format)

	if format == "" {
		format = "text"
	}

	if output == "" {
		output = "stdout"
	}

	var writer io.Writer
	switch output {
	case "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	default:
		// File path: rotate so a long-running server cannot fill the disk
		writer = &lumberjack.Logger{
			Filename:   output,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: level,
	}

	if format == "json" {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// parseLogLevel parses log level from string
func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SLog exposes the underlying slog.Logger for middleware that needs it
func (l *Logger) SLog() *slog.Logger {
	return l.Logger
}

// SetDefaultLogger sets the logger as the default slog logger
func SetDefaultLogger(l *Logger) {
	slog.SetDefault(l.Logger)
}
