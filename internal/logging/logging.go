// Package logging sets up the process-wide slog logger.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// multiHandler dispatches log records to a console and a file handler.
type multiHandler struct {
	console slog.Handler // Warn level and above
	file    slog.Handler // configured level and above, nil when disabled
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.console.Enabled(ctx, level) {
		return true
	}
	return h.file != nil && h.file.Enabled(ctx, level)
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.file != nil && h.file.Enabled(ctx, r.Level) {
		if err := h.file.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	if h.console.Enabled(ctx, r.Level) {
		if err := h.console.Handle(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	m := &multiHandler{console: h.console.WithAttrs(attrs)}
	if h.file != nil {
		m.file = h.file.WithAttrs(attrs)
	}
	return m
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	m := &multiHandler{console: h.console.WithGroup(name)}
	if h.file != nil {
		m.file = h.file.WithGroup(name)
	}
	return m
}

// ParseLevel maps a level name to a slog level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}

// New builds a logger writing warnings to console. When file is set, records
// at level and above are also written there as JSON with rotation.
// The returned cleanup closes the log file.
func New(console io.Writer, level, file string) (*slog.Logger, func(), error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	h := &multiHandler{
		console: slog.NewTextHandler(console, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}),
	}

	cleanup := func() {}
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}

		// lumberjack handles log rotation
		lj := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10, // 10MB
			MaxBackups: 3,
			LocalTime:  true,
		}
		h.file = slog.NewJSONHandler(lj, &slog.HandlerOptions{
			Level:     lvl,
			AddSource: true,
		})
		cleanup = func() {
			if err := lj.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "close log file: %v\n", err)
			}
		}
	}

	return slog.New(h), cleanup, nil
}

// Init installs the logger as the slog default
func Init(level, file string) (func(), error) {
	logger, cleanup, err := New(os.Stderr, level, file)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return cleanup, nil
}
