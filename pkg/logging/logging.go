package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents a log level.
type Level = slog.Level

// Log levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Format represents the log output format.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level to output.
	Level Level

	// Format is the output format (text or json).
	Format Format

	// Output is the writer to send logs to. Defaults to os.Stderr.
	Output io.Writer

	// AddSource adds source file and line to log entries.
	AddSource bool
}

// DefaultConfig logs warnings and errors as text to stderr. Generation
// warnings end up in the WSDL itself, so the CLI stays quiet by default.
func DefaultConfig() Config {
	return Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: os.Stderr,
	}
}

// New creates a new slog.Logger with the given configuration.
func New(cfg Config) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.Format == FormatJSON {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	} else {
		handler = slog.NewTextHandler(cfg.Output, opts)
	}
	return slog.New(handler)
}

// FromFlags builds a logger from the --log-level and --log-format flag
// values. Unlike ParseLevel and ParseFormat it rejects unknown values.
func FromFlags(level, format string, w io.Writer) (*slog.Logger, error) {
	cfg := DefaultConfig()
	cfg.Output = w

	if level != "" {
		l, ok := lookupLevel(level)
		if !ok {
			return nil, fmt.Errorf("invalid log level %q (use debug, info, warn or error)", level)
		}
		cfg.Level = l
	}
	switch strings.ToLower(format) {
	case "", "text":
	case "json":
		cfg.Format = FormatJSON
	default:
		return nil, fmt.Errorf("invalid log format %q (use text or json)", format)
	}
	return New(cfg), nil
}

// Nop returns a logger that discards all output.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel parses a log level name, ignoring case. Unknown names yield
// LevelInfo.
func ParseLevel(s string) Level {
	if l, ok := lookupLevel(s); ok {
		return l
	}
	return LevelInfo
}

// ParseFormat parses a log format name, ignoring case. Unknown names yield
// FormatText.
func ParseFormat(s string) Format {
	if strings.EqualFold(s, string(FormatJSON)) {
		return FormatJSON
	}
	return FormatText
}

func lookupLevel(s string) (Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, true
	case "info", "":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}
