package mapline

import (
	"math"
	"sync/atomic"
)

// OverlayRenderer draws one overlay into a graphics context.
type OverlayRenderer interface {
	// Overlay returns the overlay being drawn.
	Overlay() Overlay
	// Draw renders the part of the overlay inside region at zoom into dc.
	// dc's transform must map the overlay's drawing space to device pixels,
	// see DrawingMatrix. Draw reports no errors; degenerate input draws
	// nothing.
	Draw(region MapRect, zoom ZoomScale, dc *Context)
}

// InertRenderer draws nothing. It is returned for overlay kinds without a
// registered renderer.
type InertRenderer struct {
	overlay Overlay
}

// NewInertRenderer returns a renderer that never draws.
func NewInertRenderer(o Overlay) *InertRenderer {
	return &InertRenderer{overlay: o}
}

// Overlay returns the overlay.
func (r *InertRenderer) Overlay() Overlay { return r.overlay }

// Draw does nothing.
func (*InertRenderer) Draw(MapRect, ZoomScale, *Context) {}

// GradientPolylineRenderer draws a GradientPolylineOverlay as a stroke
// filled with a linear gradient.
//
// The gradient configuration can be replaced with SetGradientSpec at any
// time, including while draws run on other goroutines: each draw uses the
// spec that was current when it started.
type GradientPolylineRenderer struct {
	overlay *GradientPolylineOverlay
	spec    atomic.Pointer[GradientSpec]
}

// NewGradientPolylineRenderer creates a renderer for o using spec, or the
// default spec when spec is nil.
func NewGradientPolylineRenderer(o *GradientPolylineOverlay, spec *GradientSpec) *GradientPolylineRenderer {
	r := &GradientPolylineRenderer{overlay: o}
	r.SetGradientSpec(spec)
	return r
}

// Overlay returns the overlay.
func (r *GradientPolylineRenderer) Overlay() Overlay { return r.overlay }

// GradientSpec returns the current spec.
func (r *GradientPolylineRenderer) GradientSpec() *GradientSpec {
	return r.spec.Load()
}

// SetGradientSpec replaces the spec. Nil restores the default.
func (r *GradientPolylineRenderer) SetGradientSpec(spec *GradientSpec) {
	if spec == nil {
		spec = DefaultGradientSpec()
	}
	r.spec.Store(spec)
}

// Draw implements OverlayRenderer.
func (r *GradientPolylineRenderer) Draw(region MapRect, zoom ZoomScale, dc *Context) {
	DrawGradientPolyline(dc, r.overlay, r.spec.Load(), region, zoom)
}

// DrawGradientPolyline draws overlay into dc and reports whether anything
// was painted. It is a pure function of its arguments and dc's transform
// and clip: repeating a call with the same inputs produces the same pixels.
//
// The points are projected into the overlay's drawing space, joined into a
// centerline and stroked at spec.StrokeWidth()/zoom, which keeps the device
// width constant. The stroke outline becomes the clip and the gradient runs
// across the outline's bounding box along spec.Axis(), padding beyond the
// ends. With a dash pattern only the dashes are clipped to, but the gradient
// still spans the solid outline. dc's transform and clip are restored before
// returning.
//
// Nothing is drawn for fewer than two points, a non-positive zoom, an
// outline with zero-area bounds, or an outline outside region.
func DrawGradientPolyline(dc *Context, overlay *GradientPolylineOverlay, spec *GradientSpec, region MapRect, zoom ZoomScale) bool {
	log := Logger()
	if spec == nil {
		spec = DefaultGradientSpec()
	}

	n := overlay.PointCount()
	if n < 2 {
		log.Debug("mapline: skip draw", "reason", "too few points", "points", n)
		return false
	}
	if z := float64(zoom); !(z > 0) || math.IsInf(z, 0) {
		log.Debug("mapline: skip draw", "reason", "invalid zoom scale", "zoom", z)
		return false
	}

	pr := NewProjector(overlay.BoundingMapRect().Origin)
	points := pr.ProjectPolyline(overlay.polyline())
	st := spec.Stroke(zoom)
	outline := StrokeOutline(BuildPath(points), st)

	bounds, ok := outline.Bounds()
	if !ok || bounds.IsEmpty() {
		log.Debug("mapline: skip draw", "reason", "degenerate outline", "points", n)
		return false
	}
	var visible Rect
	if !region.IsEmpty() {
		visible = pr.RectForMapRect(region)
		if !bounds.Intersects(visible) {
			log.Debug("mapline: skip draw", "reason", "outside region", "points", n)
			return false
		}
	}

	clipPath := outline
	if d := spec.dash; d.IsDashed() {
		// Dash ends cut at the edge of visible must stay out of sight.
		if !visible.IsEmpty() {
			visible = visible.Grow(st.Width * math.Max(st.MiterLimit, 2))
		}
		clipPath = StrokeOutline(d.Scale(1/float64(zoom)).Apply(points, visible), st)
	}

	dc.Push()
	defer dc.Pop()

	if !dc.Clip(clipPath) {
		log.Debug("mapline: skip draw", "reason", "no visible pixels", "points", n)
		return false
	}

	// The axis comes from the whole outline, not the visible part, so
	// neighbouring tiles paint a continuous ramp.
	dc.DrawLinearGradient(spec.gradient(bounds))

	log.Debug("mapline: drew gradient polyline",
		"points", n,
		"axis", spec.Axis().String(),
		"width", spec.StrokeWidth(),
		"dashed", spec.dash.IsDashed(),
		"zoom", float64(zoom))
	return true
}
