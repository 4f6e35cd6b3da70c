package raster

import (
	"math"
	"testing"
)

// halfPlane is inside where x < edge.
type halfPlane struct {
	edge float64
}

func (h halfPlane) SignedDistance(x, y float64) float64 {
	return x - h.edge
}

// disc is a circular field for annulus tests.
type disc struct {
	cx, cy, r float64
}

func (d disc) SignedDistance(x, y float64) float64 {
	return math.Hypot(x-d.cx, y-d.cy) - d.r
}

func TestNewEdgeSampler_Clamp(t *testing.T) {
	tests := []struct {
		factor int
		want   int
	}{
		{-1, 1}, {0, 1}, {1, 1}, {2, 2}, {3, 3}, {4, 3}, {100, 3},
	}
	for _, tt := range tests {
		if got := NewEdgeSampler(tt.factor).Factor(); got != tt.want {
			t.Errorf("NewEdgeSampler(%d).Factor() = %d, want %d", tt.factor, got, tt.want)
		}
	}
}

func TestFillCoverage_Extremes(t *testing.T) {
	s := NewEdgeSampler(3)

	inside := halfPlane{edge: 100}
	if got := s.FillCoverage(inside, 0, 0); got != 1 {
		t.Errorf("fully inside coverage = %f, want 1", got)
	}
	outside := halfPlane{edge: -100}
	if got := s.FillCoverage(outside, 0, 0); got != 0 {
		t.Errorf("fully outside coverage = %f, want 0", got)
	}
}

func TestFillCoverage_HalfPixel(t *testing.T) {
	// An edge through the pixel center: half the samples are inside for
	// an even sample grid.
	s := NewEdgeSampler(2)
	if got := s.FillCoverage(halfPlane{edge: 0.5}, 0, 0); got != 0.5 {
		t.Errorf("half coverage = %f, want 0.5", got)
	}
}

func TestFillCoverage_Quantization(t *testing.T) {
	// Factor n can only report multiples of 1/(n*n).
	s := NewEdgeSampler(2)
	for _, edge := range []float64{0.1, 0.3, 0.6, 0.9} {
		got := s.FillCoverage(halfPlane{edge: edge}, 0, 0)
		scaled := got * 4
		if scaled != math.Trunc(scaled) {
			t.Errorf("edge %g: coverage %f is not a multiple of 1/4", edge, got)
		}
	}
}

func TestStrokeCoverage_Annulus(t *testing.T) {
	s := NewEdgeSampler(3)
	outer := disc{cx: 10, cy: 10, r: 8}
	inner := disc{cx: 10, cy: 10, r: 4}

	// Pixel centered in the ring.
	if got := s.StrokeCoverage(outer, inner, 3.5, 9.5); got != 1 {
		t.Errorf("ring coverage = %f, want 1", got)
	}
	// Pixel inside the hole.
	if got := s.StrokeCoverage(outer, inner, 9.5, 9.5); got != 0 {
		t.Errorf("hole coverage = %f, want 0", got)
	}
	// Pixel outside the outer hull.
	if got := s.StrokeCoverage(outer, inner, 30, 9.5); got != 0 {
		t.Errorf("outside coverage = %f, want 0", got)
	}
}

func TestStrokeCoverage_NilInner(t *testing.T) {
	// A collapsed inner hull makes the stroke behave like a fill.
	s := NewEdgeSampler(2)
	outer := disc{cx: 5, cy: 5, r: 4}
	if got := s.StrokeCoverage(outer, nil, 4.5, 4.5); got != 1 {
		t.Errorf("collapsed-inner coverage = %f, want 1", got)
	}
}
