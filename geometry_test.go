package mapline

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestRect_NewRect(t *testing.T) {
	tests := []struct {
		name      string
		p1, p2    Point
		expectMin Point
		expectMax Point
	}{
		{
			name: "normal order",
			p1:   Pt(0, 0), p2: Pt(10, 10),
			expectMin: Pt(0, 0), expectMax: Pt(10, 10),
		},
		{
			name: "reversed order",
			p1:   Pt(10, 10), p2: Pt(0, 0),
			expectMin: Pt(0, 0), expectMax: Pt(10, 10),
		},
		{
			name: "mixed",
			p1:   Pt(5, 0), p2: Pt(0, 5),
			expectMin: Pt(0, 0), expectMax: Pt(5, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRect(tt.p1, tt.p2)
			if !pointsEqual(r.Min, tt.expectMin, epsilon) {
				t.Errorf("Min = %v, want %v", r.Min, tt.expectMin)
			}
			if !pointsEqual(r.Max, tt.expectMax, epsilon) {
				t.Errorf("Max = %v, want %v", r.Max, tt.expectMax)
			}
		})
	}
}

func TestRect_IsEmptyAndIntersects(t *testing.T) {
	a := NewRect(Pt(0, 0), Pt(10, 10))
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", NewRect(Pt(5, 5), Pt(15, 15)), true},
		{"inside", NewRect(Pt(2, 2), Pt(3, 3)), true},
		{"touching edge", NewRect(Pt(10, 0), Pt(20, 10)), false},
		{"disjoint", NewRect(Pt(20, 20), Pt(30, 30)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}

	if a.IsEmpty() {
		t.Error("10x10 rect reported empty")
	}
	if !NewRect(Pt(0, 0), Pt(10, 0)).IsEmpty() {
		t.Error("zero-height rect not reported empty")
	}
}

func TestCubicBez_BoundingBoxIsTight(t *testing.T) {
	// Symmetric arch: control points at y=-40 but the curve peaks at y=-30.
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, -40), P2: Pt(40, -40), P3: Pt(40, 0)}
	bb := c.BoundingBox()

	if !almostEqual(bb.Min.Y, -30, 1e-9) {
		t.Errorf("Min.Y = %v, want -30", bb.Min.Y)
	}
	if !almostEqual(bb.Max.Y, 0, 1e-9) {
		t.Errorf("Max.Y = %v, want 0", bb.Max.Y)
	}
	if !almostEqual(bb.Min.X, 0, 1e-9) || !almostEqual(bb.Max.X, 40, 1e-9) {
		t.Errorf("X range = [%v, %v], want [0, 40]", bb.Min.X, bb.Max.X)
	}
}

func TestSolveQuadraticInUnitInterval(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    []float64
	}{
		{"two roots inside", 1, -1, 0.21, []float64{0.3, 0.7}},
		{"root on boundary", 1, -1.5, 0.5, []float64{0.5, 1}},
		{"no real roots", 1, 0, 1, nil},
		{"linear", 0, 2, -1, []float64{0.5}},
		{"roots outside", 1, -5, 6, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := solveQuadraticInUnitInterval(tt.a, tt.b, tt.c)
			if len(got) != len(tt.want) {
				t.Fatalf("roots = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !almostEqual(got[i], tt.want[i], 1e-9) {
					t.Errorf("root[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMatrix_MultiplyAppliesRightFirst(t *testing.T) {
	m := Scale(2, 2).Multiply(Translate(10, 0))
	got := m.TransformPoint(Pt(1, 1))
	if want := Pt(22, 2); !pointsEqual(got, want, epsilon) {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestMatrix_InvertSmallScale(t *testing.T) {
	// Map drawing matrices have tiny scales; they must still invert.
	m := Scale(1e-6, 1e-6).Multiply(Translate(-4e7, -1e8))
	inv := m.Invert()
	if inv.IsIdentity() {
		t.Fatal("Invert() treated a small-scale matrix as singular")
	}

	p := Pt(42935207, 103755923)
	back := inv.TransformPoint(m.TransformPoint(p))
	if !pointsEqual(back, p, 1e-4) {
		t.Errorf("round trip = %v, want %v", back, p)
	}
}

func TestMatrix_InvertSingular(t *testing.T) {
	if got := Scale(0, 1).Invert(); !got.IsIdentity() {
		t.Errorf("Invert() of singular matrix = %+v, want identity", got)
	}
}

func TestPath_Bounds(t *testing.T) {
	p := NewPath()
	if _, ok := p.Bounds(); ok {
		t.Error("empty path reported bounds")
	}

	p.MoveTo(0, 0)
	p.LineTo(10, 5)
	p.CubicTo(10, 45, 20, 45, 20, 5)

	bb, ok := p.Bounds()
	if !ok {
		t.Fatal("Bounds() ok = false")
	}
	if !pointsEqual(bb.Min, Pt(0, 0), 1e-9) {
		t.Errorf("Min = %v, want (0, 0)", bb.Min)
	}
	// Peak of the cubic is at 5 + 0.75*40 = 35, not the control points' 45.
	if !pointsEqual(bb.Max, Pt(20, 35), 1e-9) {
		t.Errorf("Max = %v, want (20, 35)", bb.Max)
	}
}

func TestPath_TransformAndSegments(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.Close()

	if got := p.SegmentCount(); got != 2 {
		t.Errorf("SegmentCount() = %d, want 2", got)
	}

	q := p.Transform(Translate(10, 20))
	first, ok := q.Elements()[0].(MoveTo)
	if !ok {
		t.Fatalf("first element = %T, want MoveTo", q.Elements()[0])
	}
	if !pointsEqual(first.Point, Pt(11, 22), epsilon) {
		t.Errorf("transformed MoveTo = %v, want (11, 22)", first.Point)
	}
	if got := q.CurrentPoint(); !pointsEqual(got, Pt(11, 22), epsilon) {
		t.Errorf("CurrentPoint() after Close = %v, want (11, 22)", got)
	}
}
