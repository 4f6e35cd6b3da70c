package sdf

import (
	"math"
	"testing"
)

// bruteForceDistance samples the ellipse boundary densely and returns the
// unsigned distance to the closest sample. Reference for the Newton
// solver.
func bruteForceDistance(px, py, rx, ry float64) float64 {
	best := math.Inf(1)
	const n = 200000
	for i := 0; i <= n; i++ {
		theta := float64(i) / n * math.Pi / 2
		d := math.Hypot(rx*math.Cos(theta)-px, ry*math.Sin(theta)-py)
		if d < best {
			best = d
		}
	}
	return best
}

func TestEllipse_CircleCase(t *testing.T) {
	e := NewEllipse(10, 10)
	if d := e.SignedDistance(0, 0); math.Abs(d+10) > 1e-12 {
		t.Errorf("center distance = %f, want -10", d)
	}
	if d := e.SignedDistance(20, 0); math.Abs(d-10) > 1e-12 {
		t.Errorf("outside distance = %f, want 10", d)
	}
	if d := e.SignedDistance(0, -10); math.Abs(d) > 1e-12 {
		t.Errorf("boundary distance = %f, want 0", d)
	}
}

func TestEllipse_NewtonAccuracy(t *testing.T) {
	tests := []struct {
		name   string
		rx, ry float64
		px, py float64
	}{
		{"wide outside", 40, 10, 50, 20},
		{"tall outside", 10, 40, 20, 50},
		{"outside near boundary", 40, 10, 41, 2},
		{"inside near boundary", 40, 10, 36, 2},
		{"on axis", 40, 10, 45, 0},
		{"mild eccentricity", 30, 20, 10, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEllipse(tt.rx, tt.ry)
			got := math.Abs(e.SignedDistance(tt.px, tt.py))
			want := bruteForceDistance(tt.px, tt.py, tt.rx, tt.ry)
			// The renderer only consumes distances inside the one-pixel
			// AA band, where 5% of a pixel is far below what 8-bit
			// coverage resolves.
			if math.Abs(got-want) > 0.05 {
				t.Errorf("distance = %f, brute force = %f", got, want)
			}
		})
	}
}

func TestEllipse_SignConvention(t *testing.T) {
	e := NewEllipse(40, 10)
	if d := e.SignedDistance(0, 0); d >= 0 {
		t.Errorf("center = %f, want negative", d)
	}
	if d := e.SignedDistance(39, 9); d <= 0 {
		t.Errorf("outside corner = %f, want positive", d)
	}
	// Symmetry across all four quadrants.
	ref := e.SignedDistance(25, 7)
	for _, q := range [][2]float64{{-25, 7}, {25, -7}, {-25, -7}} {
		if d := e.SignedDistance(q[0], q[1]); math.Abs(d-ref) > 1e-12 {
			t.Errorf("quadrant (%g, %g) = %f, want %f", q[0], q[1], d, ref)
		}
	}
}

func TestEllipse_DegenerateAxis(t *testing.T) {
	// A zero axis collapses to a segment with closed-form distances.
	e := NewEllipse(0, 10)
	if d := e.SignedDistance(3, 0); math.Abs(d-3) > 1e-12 {
		t.Errorf("segment side distance = %f, want 3", d)
	}
	if d := e.SignedDistance(0, 14); math.Abs(d-4) > 1e-12 {
		t.Errorf("segment cap distance = %f, want 4", d)
	}

	flat := NewEllipse(10, 0)
	if d := flat.SignedDistance(13, 4); math.Abs(d-5) > 1e-12 {
		t.Errorf("flat cap distance = %f, want 5", d)
	}
}

func TestEllipse_SpanAtY(t *testing.T) {
	e := NewEllipse(40, 10)

	x0, x1, ok := e.SpanAtY(0)
	if !ok || x0 != -40 || x1 != 40 {
		t.Errorf("span at y=0: (%g, %g, %v), want (-40, 40, true)", x0, x1, ok)
	}

	x0, x1, ok = e.SpanAtY(5)
	want := 40 * math.Sqrt(1-0.25)
	if !ok || math.Abs(x1-want) > 1e-9 || math.Abs(x0+want) > 1e-9 {
		t.Errorf("span at y=5: (%g, %g), want +/-%g", x0, x1, want)
	}

	if _, _, ok := e.SpanAtY(10); ok {
		t.Error("expected no span at the pole")
	}
	if _, _, ok := e.SpanAtY(-12); ok {
		t.Error("expected no span past the pole")
	}
}
