package log

import (
	"fmt"
	"io"
	stdlog "log"
	"log/slog"
	"os"
	"strings"
)

// Level represents the severity level of a log message.
type Level int

// Log levels
const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name (debug|info|warn|error) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("log: unknown level %q", s)
	}
}

// Field is a single key/value pair of structured context.
type Field struct {
	Key   string
	Value any
}

// Str constructs a string field.
func Str(key, value string) Field { return Field{Key: key, Value: value} }

// Int constructs an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Err constructs an error field under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Component tags log lines with the emitting component.
func Component(name string) Field { return Field{Key: "component", Value: name} }

// Any constructs a field holding an arbitrary value.
func Any(key string, value any) Field { return Field{Key: key, Value: value} }

// Logger is the leveled structured logging interface for cuuid components.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a logger that includes the fields on every line.
	With(fields ...Field) Logger
}

// Config declares logger construction: level is debug|info|warn|error,
// format is text|json.
type Config struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

type options struct {
	level  Level
	format string
	out    io.Writer
}

// Option configures New.
type Option func(*options)

// WithLevel sets the minimum log level.
func WithLevel(level Level) Option {
	return func(o *options) { o.level = level }
}

// WithFormat selects the output format, text or json.
func WithFormat(format string) Option {
	return func(o *options) { o.format = format }
}

// WithWriter sets the output writer. Defaults to stderr.
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// New creates a logger with the given options.
func New(opts ...Option) Logger {
	o := options{level: InfoLevel, format: "text", out: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}
	ho := &slog.HandlerOptions{Level: toSlogLevel(o.level)}
	var h slog.Handler
	if o.format == "json" {
		h = slog.NewJSONHandler(o.out, ho)
	} else {
		h = slog.NewTextHandler(o.out, ho)
	}
	return &baseLogger{sl: slog.New(h)}
}

// ApplyConfig builds a logger from a declarative Config. Unset fields fall
// back to info/text; an unknown level or format is an error.
func ApplyConfig(cfg *Config) (Logger, error) {
	level := InfoLevel
	if cfg != nil && cfg.Level != "" {
		l, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		level = l
	}
	format := "text"
	if cfg != nil && cfg.Format != "" {
		switch cfg.Format {
		case "text", "json":
			format = cfg.Format
		default:
			return nil, fmt.Errorf("log: unknown format %q", cfg.Format)
		}
	}
	return New(WithLevel(level), WithFormat(format)), nil
}

// Nop returns a logger that discards everything. Useful in tests.
func Nop() Logger {
	return New(WithLevel(ErrorLevel), WithWriter(io.Discard))
}

type baseLogger struct {
	sl *slog.Logger
}

func (b *baseLogger) Debug(msg string, fields ...Field) { b.sl.Debug(msg, args(fields)...) }
func (b *baseLogger) Info(msg string, fields ...Field)  { b.sl.Info(msg, args(fields)...) }
func (b *baseLogger) Warn(msg string, fields ...Field)  { b.sl.Warn(msg, args(fields)...) }
func (b *baseLogger) Error(msg string, fields ...Field) { b.sl.Error(msg, args(fields)...) }

func (b *baseLogger) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return b
	}
	return &baseLogger{sl: b.sl.With(args(fields)...)}
}

func args(fields []Field) []any {
	if len(fields) == 0 {
		return nil
	}
	out := make([]any, 0, len(fields))
	for _, f := range fields {
		out = append(out, slog.Any(f.Key, f.Value))
	}
	return out
}

func toSlogLevel(level Level) slog.Level {
	switch level {
	case DebugLevel:
		return slog.LevelDebug
	case InfoLevel:
		return slog.LevelInfo
	case WarnLevel:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// RedirectStdLog routes standard library log output (used by Pebble) through
// the provided logger at info level.
func RedirectStdLog(l Logger) {
	stdlog.SetFlags(0)
	stdlog.SetOutput(stdWriter{l: l})
}

type stdWriter struct {
	l Logger
}

func (w stdWriter) Write(p []byte) (int, error) {
	w.l.Info(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
