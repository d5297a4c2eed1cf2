// Package telemetry sets up structured logging.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// NewLogger returns a JSON logger writing to out and, when logFile is set,
// appending to that file too. The returned close func releases the file.
func NewLogger(debug bool, out io.Writer, logFile string) (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	handlers := []slog.Handler{slog.NewJSONHandler(out, opts)}
	closeFn := func() error { return nil }

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
		closeFn = f.Close
	}

	var handler slog.Handler = handlers[0]
	if len(handlers) > 1 {
		handler = &multiHandler{handlers: handlers}
	}
	return slog.New(handler), closeFn, nil
}

// InitLogger installs the logger as the slog default. Logs go to stderr so
// stdout carries only reports.
func InitLogger(debug bool, logFile string) (func() error, error) {
	logger, closeFn, err := NewLogger(debug, os.Stderr, logFile)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return closeFn, nil
}

type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, h := range m.handlers {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		next[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: next}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		next[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: next}
}
