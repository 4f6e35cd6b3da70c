package tint

import (
	"math"
	"testing"
)

func TestIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"zero translation", Translate(0, 0), true},
		{"scale 1,1", Scale(1, 1), true},
		{"translation", Translate(10, 20), false},
		{"scale", Scale(2, 2), false},
		{"rotation", Rotate(math.Pi / 4), false},
		{"zero matrix", Matrix{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.IsIdentity()
			if got != tt.want {
				t.Errorf("Matrix%+v.IsIdentity() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", Identity(), Point{X: 3, Y: 4}, Point{X: 3, Y: 4}},
		{"translate", Translate(10, 20), Point{X: 3, Y: 4}, Point{X: 13, Y: 24}},
		{"scale", Scale(2, 3), Point{X: 3, Y: 4}, Point{X: 6, Y: 12}},
		{"rotate 90deg", Rotate(math.Pi / 2), Point{X: 1, Y: 0}, Point{X: 0, Y: 1}},
		{"rotate 180deg", Rotate(math.Pi), Point{X: 1, Y: 2}, Point{X: -1, Y: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.p)
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMultiplyOrder(t *testing.T) {
	// Translate-then-scale differs from scale-then-translate.
	p := Point{X: 1, Y: 1}

	st := Scale(2, 2).Multiply(Translate(10, 0))
	got := st.TransformPoint(p)
	if got.X != 22 || got.Y != 2 {
		t.Errorf("scale*translate transformed %v to %v, want (22, 2)", p, got)
	}

	ts := Translate(10, 0).Multiply(Scale(2, 2))
	got = ts.TransformPoint(p)
	if got.X != 12 || got.Y != 2 {
		t.Errorf("translate*scale transformed %v to %v, want (12, 2)", p, got)
	}
}

func TestMultiplyIdentity(t *testing.T) {
	m := Rotate(0.3).Multiply(Translate(5, -7)).Multiply(Scale(2, 0.5))
	if got := m.Multiply(Identity()); got != m {
		t.Errorf("m * I = %+v, want %+v", got, m)
	}
	if got := Identity().Multiply(m); got != m {
		t.Errorf("I * m = %+v, want %+v", got, m)
	}
}
