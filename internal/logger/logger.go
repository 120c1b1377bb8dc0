package logger

import (
	"context"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Context keys set by the HTTP middleware
type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	ClientIPKey  contextKey = "client_ip"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// Setup configures the standard logrus logger for the process
func Setup(level string, out io.Writer) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(out)
	logrus.SetLevel(ParseLevel(level))
}

// ParseLevel maps LOG_LEVEL values to logrus levels, defaulting to info
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the request information stored in ctx
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		logger.Entry = logger.Entry.WithField("request_id", id)
	}
	if ip, ok := ctx.Value(ClientIPKey).(string); ok && ip != "" {
		logger.Entry = logger.Entry.WithField("client_ip", ip)
	}

	return logger
}

// WithRequest stores request identifiers in ctx for WithContext
func WithRequest(ctx context.Context, requestID, clientIP string) context.Context {
	ctx = context.WithValue(ctx, RequestIDKey, requestID)
	return context.WithValue(ctx, ClientIPKey, clientIP)
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches err under the standard logrus error key
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
