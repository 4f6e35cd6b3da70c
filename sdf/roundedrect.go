package sdf

import "math"

// RoundedRect is the signed distance field of an origin-centered
// rectangle with elliptical corners. RadiusX and RadiusY apply to all
// four corners.
type RoundedRect struct {
	HalfWidth, HalfHeight float64
	RadiusX, RadiusY      float64
}

// NewRoundedRect creates a rounded-rectangle SDF for a width x height
// rectangle. Corner radii are clamped to the half extents so corners
// cannot overlap.
func NewRoundedRect(width, height, rx, ry float64) RoundedRect {
	hw := math.Max(0, width/2)
	hh := math.Max(0, height/2)
	return RoundedRect{
		HalfWidth:  hw,
		HalfHeight: hh,
		RadiusX:    math.Max(0, math.Min(rx, hw)),
		RadiusY:    math.Max(0, math.Min(ry, hh)),
	}
}

// SignedDistance returns the signed distance from (x, y) to the
// rectangle boundary. Negative inside.
func (r RoundedRect) SignedDistance(x, y float64) float64 {
	ax := math.Abs(x)
	ay := math.Abs(y)

	if r.RadiusX == r.RadiusY {
		// Canonical rounded-box distance: exact everywhere for circular
		// corners.
		rad := r.RadiusX
		qx := ax - (r.HalfWidth - rad)
		qy := ay - (r.HalfHeight - rad)
		outside := math.Hypot(math.Max(qx, 0), math.Max(qy, 0))
		inside := math.Min(math.Max(qx, qy), 0)
		return outside + inside - rad
	}

	qx := ax - (r.HalfWidth - r.RadiusX)
	qy := ay - (r.HalfHeight - r.RadiusY)
	if qx <= 0 || qy <= 0 {
		// Straight-edge zone: one axis dominates.
		return math.Max(ax-r.HalfWidth, ay-r.HalfHeight)
	}
	// Corner zone: distance to the corner ellipse.
	return ellipseDistance(qx, qy, r.RadiusX, r.RadiusY)
}

// SpanAtY returns the exact horizontal interval [x0, x1] of the shape at
// scanline y, or ok=false when the scanline misses the shape entirely.
// Straight rows are closed-form; corner rows come from the corner-ellipse
// equation. This is what lets the renderer skip per-pixel evaluation on
// interior rows.
func (r RoundedRect) SpanAtY(y float64) (x0, x1 float64, ok bool) {
	ay := math.Abs(y)
	if ay > r.HalfHeight {
		return 0, 0, false
	}
	if r.RadiusY < degenerateAxis || ay <= r.HalfHeight-r.RadiusY {
		return -r.HalfWidth, r.HalfWidth, true
	}
	dy := (ay - (r.HalfHeight - r.RadiusY)) / r.RadiusY
	half := r.HalfWidth - r.RadiusX + r.RadiusX*math.Sqrt(math.Max(0, 1-dy*dy))
	return -half, half, true
}
