package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor derives an attribute from ctx. It returns false when ctx
// carries nothing for it.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// ContextString builds an extractor for a string value read from ctx with get.
// Empty values produce no attribute.
func ContextString(key string, get func(context.Context) string) ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v := get(ctx); v != "" {
			return slog.String(key, v), true
		}
		return slog.Attr{}, false
	}
}

// ContextHandler adds the attributes produced by its extractors to every
// record before passing it to the wrapped handler. Extractors run per call,
// so values set on a context after the logger was built are still picked up.
type ContextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewContextHandler wraps next. Nil extractors are ignored.
func NewContextHandler(next slog.Handler, extractors ...ContextExtractor) *ContextHandler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &ContextHandler{next: next, extractors: clean}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, rec slog.Record) error {
	var attrs []slog.Attr
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok && attr.Key != "" {
			attrs = append(attrs, attr)
		}
	}
	if len(attrs) > 0 {
		// Records passed by value share attribute storage with the caller.
		rec = rec.Clone()
		rec.AddAttrs(attrs...)
	}
	return h.next.Handle(ctx, rec)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
