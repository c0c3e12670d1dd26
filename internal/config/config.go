package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	defaultLogFormat = FormatJSON

	envLogLevel  = "NATIVESHIM_LOG_LEVEL"
	envLogFormat = "NATIVESHIM_LOG_FORMAT"
	envDiagAddr  = "NATIVESHIM_DIAG_ADDR"
)

// Log output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config holds library configuration loaded from environment variables.
type Config struct {
	LogLevel  slog.Level
	LogFormat string

	// DiagAddr is the listen address of the diagnostics server. Empty disables it.
	DiagAddr string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	cfg := Config{
		LogLevel:  slog.LevelInfo,
		LogFormat: defaultLogFormat,
	}

	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = parseLogLevel(v)
	}
	if v := os.Getenv(envLogFormat); v != "" {
		cfg.LogFormat = parseLogFormat(v)
	}
	if v := os.Getenv(envDiagAddr); v != "" {
		cfg.DiagAddr = v
	}

	return cfg
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseLogFormat(s string) string {
	if strings.EqualFold(s, FormatText) {
		return FormatText
	}
	return FormatJSON
}

// NewLogger creates a structured logger writing to w at the configured level.
// Any format other than FormatText produces JSON.
func NewLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == FormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
