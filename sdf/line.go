package sdf

import "math"

// axisEpsilon decides when a segment counts as axis-aligned. Slightly
// loose on purpose: a line 0.001px off axis still renders as crisp rows
// or columns.
const axisEpsilon = 1e-3

// Line is the signed distance field of a finite segment with thickness.
// Unlike the other SDFs it works in the segment's own coordinates rather
// than an origin-centered frame.
type Line struct {
	X0, Y0, X1, Y1 float64
	HalfWidth      float64
}

// NewLine creates a thick-segment SDF from endpoints and a stroke width.
func NewLine(x0, y0, x1, y1, width float64) Line {
	return Line{
		X0: x0, Y0: y0,
		X1: x1, Y1: y1,
		HalfWidth: math.Max(0, width/2),
	}
}

// IsAxisAligned reports whether the segment is horizontal or vertical.
// Axis-aligned lines need no anti-aliasing; callers draw them as filled
// rectangles instead.
func (l Line) IsAxisAligned() bool {
	return math.Abs(l.X1-l.X0) < axisEpsilon || math.Abs(l.Y1-l.Y0) < axisEpsilon
}

// SignedDistance returns the signed distance from (x, y) to the thick
// segment's boundary. Negative inside.
func (l Line) SignedDistance(x, y float64) float64 {
	vx := l.X1 - l.X0
	vy := l.Y1 - l.Y0
	wx := x - l.X0
	wy := y - l.Y0

	lenSq := vx*vx + vy*vy
	t := 0.0
	if lenSq > 0 {
		t = (wx*vx + wy*vy) / lenSq
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	return math.Hypot(wx-t*vx, wy-t*vy) - l.HalfWidth
}

// Bounds returns the axis-aligned bounding box of the thick segment.
func (l Line) Bounds() (minX, minY, maxX, maxY float64) {
	minX = math.Min(l.X0, l.X1) - l.HalfWidth
	minY = math.Min(l.Y0, l.Y1) - l.HalfWidth
	maxX = math.Max(l.X0, l.X1) + l.HalfWidth
	maxY = math.Max(l.Y0, l.Y1) + l.HalfWidth
	return
}
