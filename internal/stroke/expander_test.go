package stroke

import (
	"math"
	"testing"
)

func pointsOf(els []Element) []Point {
	var pts []Point
	for _, el := range els {
		switch el := el.(type) {
		case MoveTo:
			pts = append(pts, el.Point)
		case LineTo:
			pts = append(pts, el.Point)
		case CubicTo:
			pts = append(pts, el.Point)
		}
	}
	return pts
}

func countCloses(els []Element) int {
	n := 0
	for _, el := range els {
		if _, ok := el.(Close); ok {
			n++
		}
	}
	return n
}

func hasCubic(els []Element) bool {
	for _, el := range els {
		if _, ok := el.(CubicTo); ok {
			return true
		}
	}
	return false
}

func pointNear(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestNewExpander(t *testing.T) {
	e := NewExpander(DefaultStyle())
	if e.Style().Width != 1 {
		t.Errorf("Width = %v, want 1", e.Style().Width)
	}
	if e.Style().MiterLimit != 10 {
		t.Errorf("MiterLimit = %v, want 10", e.Style().MiterLimit)
	}
	if e.tolerance != 0.25 {
		t.Errorf("tolerance = %v, want 0.25", e.tolerance)
	}

	e.SetTolerance(0.1)
	e.SetTolerance(-1)
	e.SetTolerance(0)
	if e.tolerance != 0.1 {
		t.Errorf("tolerance = %v, want 0.1", e.tolerance)
	}
}

func TestExpand_SimpleLine(t *testing.T) {
	e := NewExpander(Style{Width: 2, Cap: CapButt, Join: JoinMiter, MiterLimit: 10})
	out := e.Expand([]Element{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
	})

	want := []Point{{0, -1}, {10, -1}, {10, 1}, {0, 1}, {0, -1}}
	got := pointsOf(out)
	if len(got) != len(want) {
		t.Fatalf("got %d points %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if !pointNear(got[i], want[i]) {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
	if _, ok := out[0].(MoveTo); !ok {
		t.Errorf("first element = %T, want MoveTo", out[0])
	}
	if countCloses(out) != 1 {
		t.Errorf("closes = %d, want 1", countCloses(out))
	}
}

func TestExpand_Degenerate(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		input []Element
	}{
		{"empty", DefaultStyle(), nil},
		{"single move", DefaultStyle(), []Element{MoveTo{Point: Point{X: 5, Y: 5}}}},
		{"zero length line", DefaultStyle(), []Element{
			MoveTo{Point: Point{X: 5, Y: 5}},
			LineTo{Point: Point{X: 5, Y: 5}},
		}},
		{"zero width", Style{Width: 0}, []Element{
			MoveTo{Point: Point{X: 0, Y: 0}},
			LineTo{Point: Point{X: 5, Y: 5}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewExpander(tt.style).Expand(tt.input)
			if len(out) != 0 {
				t.Errorf("Expand() = %v, want empty", out)
			}
		})
	}
}

func TestExpand_MiterJoin(t *testing.T) {
	e := NewExpander(Style{Width: 2, Cap: CapButt, Join: JoinMiter, MiterLimit: 10})
	out := e.Expand([]Element{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 10}},
	})

	// The outer corner of a right angle is mitered to (11, -1).
	found := false
	for _, p := range pointsOf(out) {
		if pointNear(p, Point{X: 11, Y: -1}) {
			found = true
		}
	}
	if !found {
		t.Errorf("miter tip (11,-1) missing from %v", pointsOf(out))
	}
}

func TestExpand_MiterLimitFallsBackToBevel(t *testing.T) {
	e := NewExpander(Style{Width: 2, Cap: CapButt, Join: JoinMiter, MiterLimit: 1})
	out := e.Expand([]Element{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 10}},
	})
	for _, p := range pointsOf(out) {
		if pointNear(p, Point{X: 11, Y: -1}) {
			t.Fatal("miter tip emitted despite miter limit 1")
		}
	}
}

func TestExpand_Caps(t *testing.T) {
	line := []Element{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
	}

	t.Run("round", func(t *testing.T) {
		out := NewExpander(Style{Width: 2, Cap: CapRound, MiterLimit: 10}).Expand(line)
		if !hasCubic(out) {
			t.Error("round cap should emit cubic arcs")
		}
	})

	t.Run("square", func(t *testing.T) {
		out := NewExpander(Style{Width: 2, Cap: CapSquare, MiterLimit: 10}).Expand(line)
		minX, maxX := math.Inf(1), math.Inf(-1)
		for _, p := range pointsOf(out) {
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
		}
		if math.Abs(minX+1) > 1e-9 || math.Abs(maxX-11) > 1e-9 {
			t.Errorf("square cap x extent = [%v, %v], want [-1, 11]", minX, maxX)
		}
	})
}

func TestExpand_RoundJoin(t *testing.T) {
	e := NewExpander(Style{Width: 4, Cap: CapButt, Join: JoinRound, MiterLimit: 10})
	out := e.Expand([]Element{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 10}},
	})
	if !hasCubic(out) {
		t.Fatal("round join should emit cubic arcs")
	}
	// Every arc end lies on the circle of radius 2 around the corner.
	for _, el := range out {
		if c, ok := el.(CubicTo); ok {
			d := math.Hypot(c.Point.X-10, c.Point.Y)
			if math.Abs(d-2) > 1e-9 {
				t.Errorf("arc point %v at distance %v, want 2", c.Point, d)
			}
		}
	}
}

func TestExpand_ClosedSquare(t *testing.T) {
	e := NewExpander(Style{Width: 2, Join: JoinBevel, MiterLimit: 10})
	out := e.Expand([]Element{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 10}},
		LineTo{Point: Point{X: 0, Y: 10}},
		Close{},
	})
	if countCloses(out) != 2 {
		t.Errorf("closed subpath should produce 2 rings, got %d closes", countCloses(out))
	}
}

func TestExpand_MultipleSubpaths(t *testing.T) {
	e := NewExpander(Style{Width: 2, MiterLimit: 10})
	out := e.Expand([]Element{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
		MoveTo{Point: Point{X: 0, Y: 20}},
		LineTo{Point: Point{X: 10, Y: 20}},
	})
	moves := 0
	for _, el := range out {
		if _, ok := el.(MoveTo); ok {
			moves++
		}
	}
	if moves != 2 || countCloses(out) != 2 {
		t.Errorf("got %d moves and %d closes, want 2 and 2", moves, countCloses(out))
	}
}

func BenchmarkExpand(b *testing.B) {
	input := make([]Element, 0, 101)
	input = append(input, MoveTo{Point: Point{}})
	for i := 1; i <= 100; i++ {
		input = append(input, LineTo{Point: Point{X: float64(i) * 5, Y: float64(i%2) * 7}})
	}
	e := NewExpander(Style{Width: 3, Join: JoinRound, Cap: CapRound, MiterLimit: 10})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Expand(input)
	}
}
