package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"

	logFile = "mentormarket.log"
)

// SetupLogger builds the root logger for the given environment. In prod the
// output also goes to logPath/mentormarket.log when the file can be opened.
func SetupLogger(env, logPath string) *slog.Logger {
	var lg *slog.Logger

	switch env {
	case envLocal:
		lg = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		lg = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		var w io.Writer = os.Stdout
		if logPath != "" {
			f, err := os.OpenFile(filepath.Join(logPath, logFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err == nil {
				w = io.MultiWriter(os.Stdout, f)
			}
		}
		lg = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		lg = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return lg
}

// MessageSender delivers a plain text alert to an operator.
type MessageSender interface {
	SendMessage(msg string)
}

// SetupTelegramHandler returns a logger that additionally forwards records at
// or above level to the sender.
func SetupTelegramHandler(lg *slog.Logger, sender MessageSender, level slog.Level) *slog.Logger {
	if sender == nil {
		return lg
	}
	return slog.New(&alertHandler{
		next:   lg.Handler(),
		sender: sender,
		level:  level,
	})
}

type alertHandler struct {
	next   slog.Handler
	sender MessageSender
	level  slog.Level
	attrs  []slog.Attr
}

func (h *alertHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level) || level >= h.level
}

func (h *alertHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.level {
		h.sender.SendMessage(formatRecord(r, h.attrs))
	}
	if h.next.Enabled(ctx, r.Level) {
		return h.next.Handle(ctx, r)
	}
	return nil
}

func (h *alertHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &alertHandler{
		next:   h.next.WithAttrs(attrs),
		sender: h.sender,
		level:  h.level,
		attrs:  merged,
	}
}

// WithGroup flattens groups in alert text; the wrapped handler keeps them.
func (h *alertHandler) WithGroup(name string) slog.Handler {
	return &alertHandler{
		next:   h.next.WithGroup(name),
		sender: h.sender,
		level:  h.level,
		attrs:  h.attrs,
	}
}

func formatRecord(r slog.Record, attrs []slog.Attr) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s: %s", r.Level.String(), r.Message))
	for _, a := range attrs {
		b.WriteString(fmt.Sprintf("\n%s: %s", a.Key, a.Value.String()))
	}
	r.Attrs(func(a slog.Attr) bool {
		b.WriteString(fmt.Sprintf("\n%s: %s", a.Key, a.Value.String()))
		return true
	})
	return b.String()
}
