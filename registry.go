package mapline

import "sync"

// RendererFactory creates the renderer for an overlay of a registered kind.
type RendererFactory func(Overlay) OverlayRenderer

// Registry maps overlay kinds to renderer factories. Kinds without a factory
// get an InertRenderer.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[OverlayKind]RendererFactory
}

// NewRegistry returns a registry with the gradient polyline renderer
// registered. Renderers it creates start with spec, or the default spec when
// spec is nil.
func NewRegistry(spec *GradientSpec) *Registry {
	r := &Registry{factories: make(map[OverlayKind]RendererFactory)}
	r.Register(KindGradientPolyline, GradientPolylineFactory(spec))
	return r
}

// GradientPolylineFactory returns a factory creating gradient polyline
// renderers that start with spec.
func GradientPolylineFactory(spec *GradientSpec) RendererFactory {
	return func(o Overlay) OverlayRenderer {
		g, ok := o.(*GradientPolylineOverlay)
		if !ok {
			return NewInertRenderer(o)
		}
		return NewGradientPolylineRenderer(g, spec)
	}
}

// Register sets the factory for kind, replacing any previous one.
// A nil factory removes the kind.
func (r *Registry) Register(kind OverlayKind, factory RendererFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if factory == nil {
		delete(r.factories, kind)
		return
	}
	r.factories[kind] = factory
}

// Kinds returns the number of registered kinds.
func (r *Registry) Kinds() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

// RendererFor returns the renderer for o.
func (r *Registry) RendererFor(o Overlay) OverlayRenderer {
	r.mu.RLock()
	factory, ok := r.factories[o.Kind()]
	r.mu.RUnlock()
	if !ok {
		Logger().Debug("mapline: no renderer for overlay kind", "kind", string(o.Kind()))
		return NewInertRenderer(o)
	}
	return factory(o)
}

var defaultRegistry = NewRegistry(nil)

// RendererFor returns the renderer for o from the default registry.
func RendererFor(o Overlay) OverlayRenderer {
	return defaultRegistry.RendererFor(o)
}

// Register sets a factory in the default registry.
func Register(kind OverlayKind, factory RendererFactory) {
	defaultRegistry.Register(kind, factory)
}
