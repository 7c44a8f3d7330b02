// Package logging builds the slog handlers used by the dubstep binary.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Formats accepted by Setup
const (
	FormatText = "text"
	FormatJSON = "json"
)

// SetupHandlerText returns a charmbracelet text handler at the given level
func SetupHandlerText(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	reportCaller := false
	reportTimestamp := false
	lvl := log.InfoLevel
	switch strings.ToLower(logLevel) {
	case "trace":
		reportCaller = true
		reportTimestamp = true
		lvl = log.DebugLevel
	case "debug":
		reportTimestamp = true
		lvl = log.DebugLevel
	case "warn", "warning":
		lvl = log.WarnLevel
	case "error":
		lvl = log.ErrorLevel
	}

	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: reportTimestamp,
		ReportCaller:    reportCaller,
		Level:           lvl,
		Prefix:          "dubstep",
	})
}

// SetupHandlerJSON returns a JSON handler at the given level
func SetupHandlerJSON(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	level := slog.LevelInfo
	addSource := false
	switch strings.ToLower(logLevel) {
	case "trace":
		addSource = true
		level = slog.LevelDebug
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	})
}

// Setup builds a logger for format and level, writing to writer.
// Unknown formats fall back to text.
func Setup(format, logLevel string, writer io.Writer) *slog.Logger {
	if strings.ToLower(format) == FormatJSON {
		return slog.New(SetupHandlerJSON(logLevel, writer))
	}
	return slog.New(SetupHandlerText(logLevel, writer))
}

// SetupLogger configures the default logger and returns it
func SetupLogger(format, logLevel string, writer io.Writer) *slog.Logger {
	logger := Setup(format, logLevel, writer)
	slog.SetDefault(logger)
	return logger
}
