package loghandler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	colorReset   = "\033[0m"
	colorDim     = "\033[2m"
	colorCyan    = "\033[36m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBoldRed = "\033[1;31m"
)

// Options configures the Handler.
type Options struct {
	Level    slog.Level
	UseColor bool
}

// Handler is a compact, optionally colored slog.Handler for CLI output.
// cpupin logs a flat stream to stderr, so group qualification is not
// carried.
type Handler struct {
	w     io.Writer
	opts  Options
	mu    *sync.Mutex
	attrs []slog.Attr
}

// NewHandler creates a new Handler writing to w.
func NewHandler(w io.Writer, opts *Options) *Handler {
	h := &Handler{
		w:  w,
		mu: &sync.Mutex{},
	}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level
}

// Handle formats and writes the log record.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	h.formatTime(&buf, r.Time)
	buf.WriteByte(' ')
	h.formatLevel(&buf, r.Level)
	if r.Message != "" {
		buf.WriteByte(' ')
		buf.WriteString(r.Message)
	}

	for _, a := range h.attrs {
		h.writeAttr(&buf, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&buf, a)
		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := &Handler{
		w:     h.w,
		opts:  h.opts,
		mu:    h.mu,
		attrs: append(append([]slog.Attr(nil), h.attrs...), attrs...),
	}
	return h2
}

// WithGroup returns the handler unchanged; see the Handler doc.
func (h *Handler) WithGroup(_ string) slog.Handler {
	return h
}

func (h *Handler) formatTime(buf *bytes.Buffer, t time.Time) {
	if h.opts.UseColor {
		buf.WriteString(colorDim)
	}
	buf.WriteString(t.Format("15:04:05"))
	if h.opts.UseColor {
		buf.WriteString(colorReset)
	}
}

func (h *Handler) formatLevel(buf *bytes.Buffer, level slog.Level) {
	var label string
	var color string
	switch {
	case level >= slog.LevelError:
		label = "ERR"
		color = colorBoldRed
	case level >= slog.LevelWarn:
		label = "WRN"
		color = colorYellow
	case level >= slog.LevelInfo:
		label = "INF"
		color = colorGreen
	default:
		label = "DBG"
		color = colorCyan
	}
	if h.opts.UseColor {
		buf.WriteString(color)
	}
	buf.WriteString(label)
	if h.opts.UseColor {
		buf.WriteString(colorReset)
	}
}

func (h *Handler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	buf.WriteByte(' ')
	if h.opts.UseColor {
		buf.WriteString(colorDim)
	}
	buf.WriteString(a.Key)
	buf.WriteByte('=')
	h.writeValue(buf, a.Value)
	if h.opts.UseColor {
		buf.WriteString(colorReset)
	}
}

func (h *Handler) writeValue(buf *bytes.Buffer, v slog.Value) {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if needsQuoting(s) {
			buf.WriteString(strconv.Quote(s))
		} else {
			buf.WriteString(s)
		}
	case slog.KindTime:
		buf.WriteString(v.Time().Format(time.RFC3339))
	default:
		fmt.Fprint(buf, v.Any())
	}
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	return strings.ContainsAny(s, " \t\n\"=")
}
