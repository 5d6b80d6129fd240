package logging

import (
	"context"
	"log/slog"

	"github.com/starshatterwars/missiongen/pkg/core"
)

// ContextProvider returns attributes added to every record.
type ContextProvider func() []slog.Attr

// MissionSource reports the mission under construction.
type MissionSource interface {
	Current() (id int, t core.MissionType, ok bool)
}

// MissionContext stamps records with mission_id and mission_type while a
// mission is being generated.
func MissionContext(src MissionSource) ContextProvider {
	return func() []slog.Attr {
		id, t, ok := src.Current()
		if !ok {
			return nil
		}
		return []slog.Attr{
			slog.Int("mission_id", id),
			slog.String("mission_type", t.String()),
		}
	}
}

// ContextHandler wraps a handler and appends the provider's attributes.
type ContextHandler struct {
	inner    slog.Handler
	provider ContextProvider
}

func NewContextHandler(inner slog.Handler, provider ContextProvider) *ContextHandler {
	return &ContextHandler{
		inner:    inner,
		provider: provider,
	}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.provider != nil {
		if attrs := h.provider(); len(attrs) > 0 {
			r.AddAttrs(attrs...)
		}
	}
	return h.inner.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{
		inner:    h.inner.WithAttrs(attrs),
		provider: h.provider,
	}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &ContextHandler{
		inner:    h.inner.WithGroup(name),
		provider: h.provider,
	}
}
