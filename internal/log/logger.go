// Package log provides a thin slog wrapper with per-component tagging.
package log

import (
	"log/slog"
	"os"
)

// Standard component names used across the client.
const (
	ComponentApp       = "app"
	ComponentAPI       = "api"
	ComponentDashboard = "dashboard"
	ComponentBot       = "bot"
	ComponentCharts    = "charts"
)

// Common field names for structured logging.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldOperation  = "operation"
	FieldError      = "error"
)

// Logger wraps slog.Logger with a component attribute attached to
// every record.
type Logger struct {
	*slog.Logger
	component string
}

// Config holds logger configuration.
type Config struct {
	Level   slog.Level
	Handler slog.Handler
}

// New creates a logger for the given component. A nil Handler falls
// back to a text handler on stdout.
func New(component string, cfg Config) *Logger {
	handler := cfg.Handler
	if handler == nil {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level})
	}
	return &Logger{
		Logger:    slog.New(handler).With(FieldComponent, component),
		component: component,
	}
}

// WithComponent returns a logger sharing the handler but tagged with
// a different component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With(FieldComponent, component),
		component: component,
	}
}

// With returns a logger with extra attributes attached.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:    l.Logger.With(args...),
		component: l.component,
	}
}

// Component returns the logger's component name.
func (l *Logger) Component() string {
	return l.component
}
