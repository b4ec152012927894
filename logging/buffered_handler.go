package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
)

// BufferedHandler is a slog.Handler that keeps records in memory, one line
// per record, so tests can inspect what a server logged.
//
//	h := logging.NewBufferedHandler(slog.LevelDebug)
//	logging.SetLogger(slog.New(h))
//	...
//	h.Contains("new connection")
type BufferedHandler struct {
	level slog.Leveler
	state *bufferState
	attrs []string
	group string
}

type bufferState struct {
	mu     sync.Mutex
	buffer bytes.Buffer
}

// NewBufferedHandler captures records at or above level.
func NewBufferedHandler(level slog.Leveler) *BufferedHandler {
	return &BufferedHandler{level: level, state: &bufferState{}}
}

func (h *BufferedHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.level == nil || level >= h.level.Level()
}

func (h *BufferedHandler) Handle(_ context.Context, r slog.Record) error {
	var line strings.Builder
	line.WriteString(r.Level.String())
	line.WriteByte(' ')
	line.WriteString(r.Message)
	for _, a := range h.attrs {
		line.WriteString(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		line.WriteString(h.renderAttr(a))
		return true
	})
	line.WriteByte('\n')

	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	h.state.buffer.WriteString(line.String())
	return nil
}

// renderAttr formats a as " group.key=value" using the current group.
func (h *BufferedHandler) renderAttr(a slog.Attr) string {
	if h.group != "" {
		return " " + h.group + "." + a.String()
	}
	return " " + a.String()
}

func (h *BufferedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append([]string(nil), h.attrs...)
	for _, a := range attrs {
		c.attrs = append(c.attrs, h.renderAttr(a))
	}
	return &c
}

func (h *BufferedHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	if c.group != "" {
		c.group += "." + name
	} else {
		c.group = name
	}
	return &c
}

// String returns everything captured so far.
func (h *BufferedHandler) String() string {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	return h.state.buffer.String()
}

// Contains reports whether the captured output contains s.
func (h *BufferedHandler) Contains(s string) bool {
	return strings.Contains(h.String(), s)
}

// Reset drops the captured output.
func (h *BufferedHandler) Reset() {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	h.state.buffer.Reset()
}
