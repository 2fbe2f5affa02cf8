package logger

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

type requestIDKey struct{}

var (
	globalLogger *AppLogger
	mu           sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(logger *AppLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance, falling back to a
// stdout JSON logger when none was set
func GetGlobalLogger() *AppLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		globalLogger, _ = NewAppLogger(Config{Level: "info"})
	}
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().WithFields(toLogrusFields(fields)).Info(msg)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().WithFields(toLogrusFields(fields)).Warn(msg)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().WithFields(toLogrusFields(fields)).Debug(msg)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().WithFields(toLogrusFields(fields)).Error(msg)
}

// Fatal logs a message and exits the process
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().WithFields(toLogrusFields(fields)).Fatal(msg)
}

// ContextWithRequestID stores the request id so that *Ctx helpers can tag entries with it
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request id stored by ContextWithRequestID
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// InfoCtx logs an info message tagged with the request id carried by ctx
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	entryFromContext(ctx, fields).Info(msg)
}

// WarnCtx logs a warning message tagged with the request id carried by ctx
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	entryFromContext(ctx, fields).Warn(msg)
}

// ErrorCtx logs an error message tagged with the request id carried by ctx
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	entryFromContext(ctx, fields).Error(msg)
}

func entryFromContext(ctx context.Context, fields []Field) *logrus.Entry {
	lf := toLogrusFields(fields)
	if id := RequestIDFromContext(ctx); id != "" {
		lf["request_id"] = id
	}
	return GetGlobalLogger().WithFields(lf)
}
