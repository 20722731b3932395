// Package logging provides the structured logger used by the CLI.
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/ochairo/pyapp-maint/internal/domain/interfaces"
)

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgBlue),
	slog.LevelInfo:  color.New(color.FgGreen),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed),
}

// colorHandler colours each record by level and delegates formatting
type colorHandler struct {
	slog.Handler
	w io.Writer
}

func (h colorHandler) Handle(ctx context.Context, r slog.Record) error {
	c, ok := levelColors[r.Level]
	if !ok {
		return h.Handler.Handle(ctx, r)
	}
	c.SetWriter(h.w)
	err := h.Handler.Handle(ctx, r)
	c.UnsetWriter(h.w)
	return err
}

func (h colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return colorHandler{Handler: h.Handler.WithAttrs(attrs), w: h.w}
}

func (h colorHandler) WithGroup(name string) slog.Handler {
	return colorHandler{Handler: h.Handler.WithGroup(name), w: h.w}
}

// SlogLogger implements interfaces.Logger on top of log/slog
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a logger writing to w; debug output is enabled when verbose is set.
// Colour follows fatih/color's terminal detection.
func NewSlogLogger(w io.Writer, verbose bool) *SlogLogger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	base := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	})

	var handler slog.Handler = base
	if !color.NoColor {
		handler = colorHandler{Handler: base, w: w}
	}
	return &SlogLogger{logger: slog.New(handler)}
}

// Debug logs debug-level messages
func (l *SlogLogger) Debug(msg string, fields ...interfaces.Field) {
	l.logger.Debug(msg, attrs(fields)...)
}

// Info logs informational messages
func (l *SlogLogger) Info(msg string, fields ...interfaces.Field) {
	l.logger.Info(msg, attrs(fields)...)
}

// Warn logs warning messages
func (l *SlogLogger) Warn(msg string, fields ...interfaces.Field) {
	l.logger.Warn(msg, attrs(fields)...)
}

// Error logs error messages
func (l *SlogLogger) Error(msg string, fields ...interfaces.Field) {
	l.logger.Error(msg, attrs(fields)...)
}

func attrs(fields []interfaces.Field) []any {
	out := make([]any, 0, len(fields))
	for _, f := range fields {
		out = append(out, slog.Any(f.Key, f.Value))
	}
	return out
}
