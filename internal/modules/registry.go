package modules

import (
	"context"

	"github.com/hijamacare/site-engine/internal/observability/metrics"
	"github.com/hijamacare/site-engine/pkg/logging"
)

// Handler renders one module instance's fields into an HTML fragment.
// The key is the instance's stable identity, passed through to the result.
type Handler interface {
	Render(ctx context.Context, key string, fields map[string]any) (Rendered, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, key string, fields map[string]any) (Rendered, error)

// Render implements Handler.
func (f HandlerFunc) Render(ctx context.Context, key string, fields map[string]any) (Rendered, error) {
	return f(ctx, key, fields)
}

// Registry maps module type tags to handlers. Content authoring drives the
// module list, so unknown tags degrade by omission rather than failing the
// page, and re-registering a tag silently replaces the previous handler.
type Registry struct {
	handlers map[string]Handler
	logger   *logging.Logger
	metrics  *metrics.ModuleMetrics
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *logging.Logger, m *metrics.ModuleMetrics) *Registry {
	if logger == nil {
		logger = logging.Default()
	}
	return &Registry{
		handlers: make(map[string]Handler),
		logger:   logger,
		metrics:  m,
	}
}

// Register associates a type tag with a handler. Last registration wins.
func (r *Registry) Register(typeTag string, h Handler) {
	if _, exists := r.handlers[typeTag]; exists {
		r.logger.Debug("module handler replaced", "type", typeTag)
	}
	r.handlers[typeTag] = h
}

// RegisterFunc associates a type tag with a handler function.
func (r *Registry) RegisterFunc(typeTag string, f HandlerFunc) {
	r.Register(typeTag, f)
}

// Known reports whether a handler is registered for the tag.
func (r *Registry) Known(typeTag string) bool {
	_, ok := r.handlers[typeTag]
	return ok
}

// Resolve renders an ordered module list. Output order equals input order;
// instances with unknown tags or failing handlers are omitted, never fatal.
// The list is rendering input only: keys for instances authored without one
// are minted into the output, never written back into the caller's slice,
// so a shared catalogue can be resolved concurrently.
func (r *Registry) Resolve(ctx context.Context, list []Instance) []Rendered {
	out := make([]Rendered, 0, len(list))
	for _, inst := range list {
		h, ok := r.handlers[inst.Type]
		if !ok {
			r.logger.Debug("skipping unknown module type", "type", inst.Type, "key", inst.Key)
			r.metrics.ObserveResolve(inst.Type, "unknown")
			continue
		}
		rendered, err := h.Render(ctx, inst.EnsureKey(), inst.Fields)
		if err != nil {
			r.logger.Error("module render failed", "type", inst.Type, "key", inst.Key, "error", err)
			r.metrics.ObserveResolve(inst.Type, "error")
			continue
		}
		r.metrics.ObserveResolve(inst.Type, "ok")
		out = append(out, rendered)
	}
	return out
}
