// Package logging builds the application logger: JSON records on stderr,
// with per-call attributes (such as a request id) carried through the
// context instead of threaded through every layer.
package logging

import (
	"context"
	"log/slog"
	"os"
)

type requestAttrsKey struct{}

// attrHandler appends the attributes stored in the context to every record
// before delegating to the wrapped handler.
type attrHandler struct {
	slog.Handler
}

func (h attrHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(requestAttrsKey{}).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, r)
}

// ContextAttrs returns a context carrying the given attributes in addition
// to any it already holds. The stored slice is copied, so child contexts
// never mutate a parent's attributes.
func ContextAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	existing, _ := ctx.Value(requestAttrsKey{}).([]slog.Attr)
	merged := make([]slog.Attr, 0, len(existing)+len(attrs))
	merged = append(merged, existing...)
	merged = append(merged, attrs...)
	return context.WithValue(ctx, requestAttrsKey{}, merged)
}

// New builds the application logger. Debug level when verbose is set.
func New(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(attrHandler{slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})})
}
