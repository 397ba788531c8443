package logger

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// SlogLogger implements the [Logger] interface by delegating to a
// [slog.Logger]. Trace records are emitted at slog level Debug-4; use
// ReplaceLevelAttr in the handler options to render them as "TRACE".
type SlogLogger struct {
	ctx    context.Context
	logger *slog.Logger
}

var _ Logger = (*SlogLogger)(nil)

// NewSlogLogger returns a new [SlogLogger] bound to ctx.
// It panics if the logger is nil.
func NewSlogLogger(ctx context.Context, logger *slog.Logger) *SlogLogger {
	if logger == nil {
		panic("nil logger")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &SlogLogger{
		ctx:    ctx,
		logger: logger,
	}
}

// Trace logs at the trace level.
func (l *SlogLogger) Trace(msg string, args ...any) {
	l.log(slog.Level(LevelTrace), msg, args...)
}

// Debug logs at the debug level.
func (l *SlogLogger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args...)
}

// Info logs at the info level.
func (l *SlogLogger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args...)
}

// Warn logs at the warn level.
func (l *SlogLogger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args...)
}

// Error logs at the error level.
func (l *SlogLogger) Error(msg string, args ...any) {
	l.log(slog.LevelError, msg, args...)
}

// log records the caller of the exported level method as the source.
func (l *SlogLogger) log(level slog.Level, msg string, args ...any) {
	if !l.logger.Enabled(l.ctx, level) {
		return
	}

	// skip [runtime.Callers, this function, the exported level method]
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)

	_ = l.logger.Handler().Handle(l.ctx, r)
}

// ReplaceLevelAttr is a [slog.HandlerOptions] ReplaceAttr function naming
// the trace level.
func ReplaceLevelAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if level, ok := a.Value.Any().(slog.Level); ok && level == slog.Level(LevelTrace) {
			a.Value = slog.StringValue(LevelTrace.String())
		}
	}
	return a
}
