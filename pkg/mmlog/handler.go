package mmlog

import (
	"context"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
)

// Handler is a slog.Handler that routes records into a Logger. The record
// message plus any attributes are rendered into one line; the callsite is
// recovered from the record's program counter when available.
type Handler struct {
	logger *Logger
	target string
	attrs  []slog.Attr
}

// NewHandler wraps logger for use with log/slog. target names the
// subsystem in each record; groups opened with WithGroup extend it.
func NewHandler(logger *Logger, target string) *Handler {
	return &Handler{logger: logger, target: target}
}

// Enabled gates by the Logger's severity threshold.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Enabled(fromSlogLevel(level))
}

// Handle formats the record and appends it to the ring.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	level := fromSlogLevel(r.Level)
	if !h.logger.Enabled(level) {
		h.logger.metrics.ObserveDrop()
		return nil
	}

	callsite := ""
	if r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		if frame.File != "" {
			callsite = frame.File + ":" + strconv.Itoa(frame.Line)
		}
	}

	var sb strings.Builder
	sb.WriteString(r.Message)
	for i := range h.attrs {
		writeAttr(&sb, h.attrs[i])
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, a)
		return true
	})

	h.logger.Log(level, callsite, h.target, sb.String())
	return nil
}

// WithAttrs returns a copy of the handler carrying additional base
// attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &nh
}

// WithGroup returns a copy of the handler whose target is extended with
// the group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.target = h.target + "." + name
	return &nh
}

func writeAttr(sb *strings.Builder, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}

// fromSlogLevel maps slog levels onto the record severity scale.
func fromSlogLevel(level slog.Level) Level {
	switch {
	case level >= slog.LevelError:
		return LevelError
	case level >= slog.LevelWarn:
		return LevelWarn
	case level >= slog.LevelInfo:
		return LevelInfo
	case level >= slog.LevelDebug:
		return LevelDebug
	default:
		return LevelTrace
	}
}
