package sdf

import "math"

// degenerateAxis is the radius below which an ellipse collapses to a
// segment and the Newton iteration would divide by zero.
const degenerateAxis = 1e-9

// Ellipse is the signed distance field of an origin-centered ellipse.
type Ellipse struct {
	RadiusX, RadiusY float64
}

// NewEllipse creates an ellipse SDF with the given radii.
// Negative radii are treated as zero.
func NewEllipse(rx, ry float64) Ellipse {
	return Ellipse{
		RadiusX: math.Max(0, rx),
		RadiusY: math.Max(0, ry),
	}
}

// SignedDistance returns the signed distance from (x, y) to the ellipse
// boundary. Negative inside.
func (e Ellipse) SignedDistance(x, y float64) float64 {
	return ellipseDistance(math.Abs(x), math.Abs(y), e.RadiusX, e.RadiusY)
}

// SpanAtY returns the horizontal interval [x0, x1] covered by the ellipse
// at scanline y, or ok=false when the scanline misses the ellipse.
func (e Ellipse) SpanAtY(y float64) (x0, x1 float64, ok bool) {
	if e.RadiusY < degenerateAxis || math.Abs(y) >= e.RadiusY {
		return 0, 0, false
	}
	t := y / e.RadiusY
	half := e.RadiusX * math.Sqrt(1-t*t)
	return -half, half, true
}

// ellipseDistance returns the signed distance from the first-quadrant
// point (px, py) to an ellipse with radii rx, ry. px and py must be
// non-negative.
//
// The nearest point on an ellipse has no closed form. Three fixed
// Newton-Raphson iterations on the parametric angle converge to well
// under a hundredth of a pixel for on-screen shape sizes, which is
// beyond what 8-bit coverage can resolve.
func ellipseDistance(px, py, rx, ry float64) float64 {
	// Degenerate axes collapse the ellipse to a segment (or a point);
	// those have closed-form distances and are never "inside".
	if rx < degenerateAxis {
		return math.Hypot(px, math.Max(0, py-ry))
	}
	if ry < degenerateAxis {
		return math.Hypot(math.Max(0, px-rx), py)
	}
	if rx == ry {
		return math.Hypot(px, py) - rx
	}

	theta := math.Atan2(py*rx, px*ry)
	for i := 0; i < 3; i++ {
		sin, cos := math.Sincos(theta)
		// f is the derivative of the squared distance along the ellipse;
		// its root is the nearest-point angle.
		f := (ry*ry-rx*rx)*sin*cos + rx*px*sin - ry*py*cos
		df := (ry*ry-rx*rx)*math.Cos(2*theta) + rx*px*cos + ry*py*sin
		if math.Abs(df) < degenerateAxis {
			break
		}
		theta -= f / df
		if theta < 0 {
			theta = 0
		} else if theta > math.Pi/2 {
			theta = math.Pi / 2
		}
	}

	sin, cos := math.Sincos(theta)
	dist := math.Hypot(rx*cos-px, ry*sin-py)

	// Interior test from the implicit equation fixes the sign.
	qx := px / rx
	qy := py / ry
	if qx*qx+qy*qy < 1 {
		return -dist
	}
	return dist
}
