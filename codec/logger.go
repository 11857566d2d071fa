package codec

import (
	"context"
	"log/slog"
)

// Logger is the minimal structured-logging interface the codecs use.
// It follows the log/slog convention of variadic key-value attribute
// pairs, which keeps it adaptable to slog, zap, or zerolog without a
// dependency on any of them.
type Logger interface {
	// Debug logs detailed diagnostic information.
	Debug(msg string, attrs ...any)

	// Info logs general operational information.
	Info(msg string, attrs ...any)

	// Warn logs potentially harmful situations.
	Warn(msg string, attrs ...any)

	// Error logs error conditions.
	Error(msg string, attrs ...any)

	// With returns a new Logger with the given attributes prepended to
	// every log.
	With(attrs ...any) Logger
}

// NopLogger is a no-op logger that discards all output.
// It is the default logger used when no logger is configured.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(_ string, _ ...any) {}

// Info implements Logger.
func (NopLogger) Info(_ string, _ ...any) {}

// Warn implements Logger.
func (NopLogger) Warn(_ string, _ ...any) {}

// Error implements Logger.
func (NopLogger) Error(_ string, _ ...any) {}

// With implements Logger.
func (n NopLogger) With(_ ...any) Logger { return n }

var _ Logger = NopLogger{}

// SlogAdapter wraps a *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a Logger backed by the given slog.Logger.
// Passing nil uses slog.Default().
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Debug implements Logger.
func (a *SlogAdapter) Debug(msg string, attrs ...any) {
	a.logger.Log(context.Background(), slog.LevelDebug, msg, attrs...)
}

// Info implements Logger.
func (a *SlogAdapter) Info(msg string, attrs ...any) {
	a.logger.Log(context.Background(), slog.LevelInfo, msg, attrs...)
}

// Warn implements Logger.
func (a *SlogAdapter) Warn(msg string, attrs ...any) {
	a.logger.Log(context.Background(), slog.LevelWarn, msg, attrs...)
}

// Error implements Logger.
func (a *SlogAdapter) Error(msg string, attrs ...any) {
	a.logger.Log(context.Background(), slog.LevelError, msg, attrs...)
}

// With implements Logger.
func (a *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: a.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)

// logOrNop returns l, or NopLogger when l is nil.
func logOrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}
