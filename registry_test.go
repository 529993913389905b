package mapline

import (
	"image"
	"testing"
)

// circleOverlay is an overlay kind nothing registers a renderer for.
type circleOverlay struct{}

func (circleOverlay) Kind() OverlayKind        { return "circle" }
func (circleOverlay) Coordinate() GeoPoint     { return Geo(1, 2) }
func (circleOverlay) BoundingMapRect() MapRect { return MapRectWorld }

func TestRegistry_UnknownKindIsInert(t *testing.T) {
	reg := NewRegistry(nil)
	o := circleOverlay{}

	r := reg.RendererFor(o)
	if _, ok := r.(*InertRenderer); !ok {
		t.Fatalf("RendererFor(circle) = %T, want *InertRenderer", r)
	}
	if r.Overlay() != Overlay(o) {
		t.Errorf("Overlay() = %v, want the circle overlay", r.Overlay())
	}

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	r.Draw(MapRectWorld, 1, NewContext(img))
	for i, v := range img.Pix {
		if v != 0 {
			t.Fatalf("inert renderer wrote Pix[%d] = %d", i, v)
		}
	}
}

func TestRegistry_GradientPolyline(t *testing.T) {
	spec, err := NewGradientSpec(WithAxis(AxisVertical))
	if err != nil {
		t.Fatalf("NewGradientSpec() error = %v", err)
	}
	reg := NewRegistry(spec)

	r := reg.RendererFor(NewGradientPolylineOverlay(sampleRoute))
	g, ok := r.(*GradientPolylineRenderer)
	if !ok {
		t.Fatalf("RendererFor() = %T, want *GradientPolylineRenderer", r)
	}
	if g.GradientSpec() != spec {
		t.Error("renderer does not use the registry's spec")
	}
}

func TestRegistry_RegisterAndRemove(t *testing.T) {
	reg := NewRegistry(nil)
	called := false
	reg.Register("circle", func(o Overlay) OverlayRenderer {
		called = true
		return NewInertRenderer(o)
	})
	if reg.Kinds() != 2 {
		t.Errorf("Kinds() = %d, want 2", reg.Kinds())
	}

	reg.RendererFor(circleOverlay{})
	if !called {
		t.Error("registered factory was not used")
	}

	reg.Register(KindGradientPolyline, nil)
	if _, ok := reg.RendererFor(NewGradientPolylineOverlay(sampleRoute)).(*InertRenderer); !ok {
		t.Error("removed kind did not fall back to the inert renderer")
	}
}

func TestGradientPolylineFactory_WrongType(t *testing.T) {
	// A foreign overlay claiming the gradient polyline kind still gets a
	// renderer that does nothing.
	f := GradientPolylineFactory(nil)
	if _, ok := f(circleOverlay{}).(*InertRenderer); !ok {
		t.Error("factory accepted an overlay of the wrong type")
	}
}

func TestDefaultRegistry(t *testing.T) {
	if _, ok := RendererFor(NewGradientPolylineOverlay(sampleRoute)).(*GradientPolylineRenderer); !ok {
		t.Error("default registry has no gradient polyline renderer")
	}
	if _, ok := RendererFor(circleOverlay{}).(*InertRenderer); !ok {
		t.Error("default registry did not return an inert renderer for an unknown kind")
	}
}
