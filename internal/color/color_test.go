package color

import (
	"math"
	"testing"
)

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestSRGBToLinearEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"mid gray", 0.5, math.Pow((0.5+0.055)/1.055, 2.4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SRGBToLinear(tt.input)
			if !near(got, tt.want, 1e-9) {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		s := float64(i) / 255
		got := LinearToSRGB(SRGBToLinear(s))
		if !near(got, s, 1e-9) {
			t.Fatalf("round trip of %v = %v", s, got)
		}
	}
}

func TestLerp(t *testing.T) {
	red := F64{R: 1, A: 1}
	blue := F64{B: 1, A: 1}

	tests := []struct {
		name  string
		space Space
		t     float64
		want  F64
	}{
		{"srgb start", SpaceSRGB, 0, red},
		{"srgb end", SpaceSRGB, 1, blue},
		{"srgb middle", SpaceSRGB, 0.5, F64{R: 0.5, B: 0.5, A: 1}},
		{"linear start", SpaceLinear, 0, red},
		{"linear end", SpaceLinear, 1, blue},
		// 0.5 linear re-encodes to ~0.7354 in sRGB
		{"linear middle", SpaceLinear, 0.5, F64{R: LinearToSRGB(0.5), B: LinearToSRGB(0.5), A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(red, blue, tt.t, tt.space)
			if !near(got.R, tt.want.R, 1e-9) || !near(got.G, tt.want.G, 1e-9) ||
				!near(got.B, tt.want.B, 1e-9) || !near(got.A, tt.want.A, 1e-9) {
				t.Errorf("Lerp(t=%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}
