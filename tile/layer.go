package tile

import (
	"encoding/binary"
	"math"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"

	"github.com/gogpu/mapline"
)

// Snapshot is one immutable state of a Layer: the overlay, the renderer
// dispatched for it and the spec it draws with.
type Snapshot struct {
	Overlay  mapline.Overlay
	Renderer mapline.OverlayRenderer
	Spec     *mapline.GradientSpec

	// Fingerprint identifies the rendered content; two snapshots with the
	// same fingerprint produce the same tiles.
	Fingerprint uint64
}

// specSetter is implemented by renderers whose gradient can be configured.
type specSetter interface {
	SetGradientSpec(*mapline.GradientSpec)
}

// Layer holds the overlay being served. Replacing the overlay or the spec
// publishes a new Snapshot atomically; renders in flight keep the snapshot
// they started with.
type Layer struct {
	registry *mapline.Registry

	mu      sync.Mutex // serializes writers
	current atomic.Pointer[Snapshot]
}

// NewLayer creates a layer with an empty gradient polyline overlay.
// A nil registry uses a fresh one with the default renderers; a nil spec uses
// the default spec.
func NewLayer(registry *mapline.Registry, spec *mapline.GradientSpec) *Layer {
	if registry == nil {
		registry = mapline.NewRegistry(nil)
	}
	if spec == nil {
		spec = mapline.DefaultGradientSpec()
	}
	l := &Layer{registry: registry}
	l.publish(mapline.NewGradientPolylineOverlay(nil), spec)
	return l
}

// Snapshot returns the current state.
func (l *Layer) Snapshot() *Snapshot {
	return l.current.Load()
}

// Replace makes o the overlay being served, replacing the previous one.
func (l *Layer) Replace(o mapline.Overlay) *Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.publish(o, l.current.Load().Spec)
}

// SetGradientSpec changes the spec the overlay is drawn with.
func (l *Layer) SetGradientSpec(spec *mapline.GradientSpec) *Snapshot {
	if spec == nil {
		spec = mapline.DefaultGradientSpec()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.publish(l.current.Load().Overlay, spec)
}

func (l *Layer) publish(o mapline.Overlay, spec *mapline.GradientSpec) *Snapshot {
	r := l.registry.RendererFor(o)
	if s, ok := r.(specSetter); ok {
		s.SetGradientSpec(spec)
	}
	snap := &Snapshot{
		Overlay:     o,
		Renderer:    r,
		Spec:        spec,
		Fingerprint: Fingerprint(o, spec),
	}
	l.current.Store(snap)
	mapline.Logger().Debug("tile: layer updated",
		"kind", string(o.Kind()),
		"fingerprint", snap.Fingerprint)
	return snap
}

// Fingerprint hashes everything that affects the pixels of o drawn with spec.
func Fingerprint(o mapline.Overlay, spec *mapline.GradientSpec) uint64 {
	d := xxhash.New()
	var buf [8]byte
	f := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}

	_, _ = d.WriteString(string(o.Kind()))
	b := o.BoundingMapRect()
	f(b.Origin.X)
	f(b.Origin.Y)
	f(b.Size.Width)
	f(b.Size.Height)
	if g, ok := o.(*mapline.GradientPolylineOverlay); ok {
		for _, p := range g.Points() {
			f(p.Latitude)
			f(p.Longitude)
		}
	} else {
		c := o.Coordinate()
		f(c.Latitude)
		f(c.Longitude)
	}

	for _, s := range spec.Stops() {
		f(s.Offset)
		f(s.Color.R)
		f(s.Color.G)
		f(s.Color.B)
		f(s.Color.A)
	}
	f(float64(spec.Axis()))
	f(spec.StrokeWidth())
	f(float64(spec.LineCap()))
	f(float64(spec.LineJoin()))
	f(spec.MiterLimit())
	f(float64(spec.Interpolation()))
	if dash := spec.Dash(); dash != nil {
		for _, l := range dash.Array {
			f(l)
		}
		f(dash.Offset)
	}
	return d.Sum64()
}
