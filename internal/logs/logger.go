// Package logs builds the structured logger used by the callexpr command.
package logs

import (
	"context"
	"io"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"
)

type inputKey struct{}

// InputKey is the attribute holding the name of the input being processed.
const InputKey = "input"

// WithInput returns a context whose log records carry the given input name.
func WithInput(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, inputKey{}, name)
}

// Handler adds the input name found in the context to every record.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v := ctx.Value(inputKey{}); v != nil {
		record.Add(InputKey, v.(string))
	}
	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name)}
}

// Options configure New.
type Options struct {
	Level slog.Leveler

	// File receives a JSON copy of every record when set.
	File io.Writer
}

// New returns a logger writing text records to w.
func New(w io.Writer, opts Options) *slog.Logger {
	handlerOptions := &slog.HandlerOptions{
		Level: opts.Level,
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(w, handlerOptions),
	}
	if opts.File != nil {
		handlers = append(handlers, slog.NewJSONHandler(opts.File, handlerOptions))
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}
