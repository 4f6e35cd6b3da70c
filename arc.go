package tint

import (
	"fmt"
	"math"
)

// geomEpsilon guards the near-degenerate cases in the arc emitters:
// collinear tangents in ArcTo and coincident points in SvgArcTo.
const geomEpsilon = 1e-6

// QuadTo draws a quadratic Bezier curve from the current point to (x, y)
// with control point (cx, cy). The quadratic is converted to an exact
// cubic by degree elevation, so the path stays a pure cubic command list.
func (p *Path) QuadTo(cx, cy, x, y float64) error {
	if p.frozen {
		return fmt.Errorf("QuadTo: %w", ErrFrozenPath)
	}
	p.quadTo(cx, cy, x, y)
	return nil
}

func (p *Path) quadTo(cx, cy, x, y float64) {
	// Degree elevation: c1 = start + 2/3*(ctrl-start), c2 = end + 2/3*(ctrl-end).
	cur := p.current
	c1x := cur.X + 2.0/3.0*(cx-cur.X)
	c1y := cur.Y + 2.0/3.0*(cy-cur.Y)
	c2x := x + 2.0/3.0*(cx-x)
	c2y := y + 2.0/3.0*(cy-y)
	p.bezierTo(c1x, c1y, c2x, c2y, x, y)
}

// ArcTo draws a canvas-style corner arc of the given radius, tangent to
// the segment from the current point to (x1, y1) and to the segment from
// (x1, y1) to (x2, y2). A line is drawn to the first tangent point, then
// the arc to the second.
//
// Degenerate inputs (near-zero radius, coincident points, collinear
// tangents) fall back to a straight line to (x1, y1).
func (p *Path) ArcTo(x1, y1, x2, y2, radius float64) error {
	if p.frozen {
		return fmt.Errorf("ArcTo: %w", ErrFrozenPath)
	}
	if !p.hasCurrent {
		p.moveTo(x1, y1)
		return nil
	}

	p0 := p.current
	p1 := Pt(x1, y1)
	p2 := Pt(x2, y2)

	v0 := p1.Sub(p0)
	v1 := p2.Sub(p1)
	l0 := v0.Length()
	l1 := v1.Length()
	if radius < geomEpsilon || l0 < geomEpsilon || l1 < geomEpsilon {
		p.lineTo(x1, y1)
		return nil
	}

	d0 := v0.Mul(1 / l0)
	d1 := v1.Mul(1 / l1)
	cross := d0.Cross(d1)
	if math.Abs(cross) < geomEpsilon {
		// Tangents are collinear; no arc fits.
		p.lineTo(x1, y1)
		return nil
	}

	// Corner angle at p1 between the vectors toward p0 and toward p2.
	cosA := math.Max(-1, math.Min(1, -d0.Dot(d1)))
	half := math.Acos(cosA) / 2
	sinHalf := math.Sin(half)
	cosHalf := math.Cos(half)
	if sinHalf < geomEpsilon {
		p.lineTo(x1, y1)
		return nil
	}

	// Distance from the corner to each tangent point, clamped so the arc
	// never extends past the midpoint of the shorter adjacent segment.
	dist := radius / sinHalf * cosHalf
	maxDist := math.Min(l0, l1) / 2
	if dist > maxDist {
		dist = maxDist
		radius = dist * sinHalf / cosHalf
	}

	t0 := p1.Sub(d0.Mul(dist))
	t1 := p1.Add(d1.Mul(dist))

	// The center sits perpendicular to the incoming tangent, on the side
	// the path turns toward.
	sign := 1.0
	if cross < 0 {
		sign = -1.0
	}
	normal := Pt(-d0.Y, d0.X)
	center := t0.Add(normal.Mul(sign * radius))

	a0 := math.Atan2(t0.Y-center.Y, t0.X-center.X)
	a1 := math.Atan2(t1.Y-center.Y, t1.X-center.X)
	sweep := a1 - a0
	if cross > 0 && sweep < 0 {
		sweep += 2 * math.Pi
	} else if cross < 0 && sweep > 0 {
		sweep -= 2 * math.Pi
	}

	p.lineTo(t0.X, t0.Y)
	p.arcBeziers(center.X, center.Y, radius, radius, 0, a0, sweep)
	return nil
}

// Arc draws an elliptical arc centered at (cx, cy) with radii rx and ry,
// from startAngle to endAngle (radians). With ccw false the sweep runs in
// the direction of increasing angle (clockwise on screen with y down);
// with ccw true it runs the other way.
//
// If the path has no current point the arc starts with a MoveTo;
// otherwise a LineTo connects the current point to the arc's start,
// unless the two already coincide.
func (p *Path) Arc(cx, cy, rx, ry, startAngle, endAngle float64, ccw bool) error {
	if p.frozen {
		return fmt.Errorf("Arc: %w", ErrFrozenPath)
	}

	const twoPi = 2 * math.Pi
	sweep := endAngle - startAngle
	if !ccw {
		if sweep < 0 {
			sweep += twoPi * math.Ceil(-sweep/twoPi)
		}
		if sweep > twoPi {
			sweep = twoPi
		}
	} else {
		if sweep > 0 {
			sweep -= twoPi * math.Ceil(sweep/twoPi)
		}
		if sweep < -twoPi {
			sweep = -twoPi
		}
	}

	p.arcBeziers(cx, cy, rx, ry, 0, startAngle, sweep)
	return nil
}

// SvgArcTo draws an SVG elliptical arc from the current point to (x, y),
// with radii rx and ry, the ellipse's x-axis rotated by rotationDeg
// degrees, and the large-arc and sweep flags selecting among the four
// candidate arcs. This is the W3C endpoint-to-center parameterization.
//
// Identical endpoints are a no-op; near-zero radii degrade to a straight
// line, per the SVG specification.
func (p *Path) SvgArcTo(rx, ry, rotationDeg float64, largeArc, sweep bool, x, y float64) error {
	if p.frozen {
		return fmt.Errorf("SvgArcTo: %w", ErrFrozenPath)
	}
	p.svgArcTo(rx, ry, rotationDeg, largeArc, sweep, x, y)
	return nil
}

func (p *Path) svgArcTo(rx, ry, rotationDeg float64, largeArc, sweep bool, x, y float64) {
	x1, y1 := p.current.X, p.current.Y
	if math.Abs(x1-x) < geomEpsilon && math.Abs(y1-y) < geomEpsilon {
		return
	}
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx < geomEpsilon || ry < geomEpsilon {
		p.lineTo(x, y)
		return
	}

	phi := rotationDeg * math.Pi / 180
	cosPhi := math.Cos(phi)
	sinPhi := math.Sin(phi)

	// Step 1: midpoint of the endpoints in the ellipse's rotated frame.
	mx := (x1 - x) / 2
	my := (y1 - y) / 2
	px := cosPhi*mx + sinPhi*my
	py := -sinPhi*mx + cosPhi*my

	// Step 2: scale radii up if no ellipse with the given radii can reach
	// between the endpoints.
	lambda := px*px/(rx*rx) + py*py/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Step 3: center in the rotated frame. The sign convention picks one
	// of the two candidate centers from the large-arc/sweep flags.
	num := rx*rx*ry*ry - rx*rx*py*py - ry*ry*px*px
	den := rx*rx*py*py + ry*ry*px*px
	coef := math.Sqrt(math.Max(0, num/den))
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * rx * py / ry
	cyp := -coef * ry * px / rx

	// Step 4: center back in user space, start angle, and signed sweep.
	cx := cosPhi*cxp - sinPhi*cyp + (x1+x)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y1+y)/2

	ux := (px - cxp) / rx
	uy := (py - cyp) / ry
	vx := (-px - cxp) / rx
	vy := (-py - cyp) / ry

	theta1 := vectorAngle(1, 0, ux, uy)
	delta := vectorAngle(ux, uy, vx, vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	p.arcBeziers(cx, cy, rx, ry, phi, theta1, delta)
}

// vectorAngle returns the signed angle from vector u to vector v.
func vectorAngle(ux, uy, vx, vy float64) float64 {
	dot := ux*vx + uy*vy
	len := math.Sqrt((ux*ux + uy*uy) * (vx*vx + vy*vy))
	if len == 0 {
		return 0
	}
	a := math.Acos(math.Max(-1, math.Min(1, dot/len)))
	if ux*vy-uy*vx < 0 {
		return -a
	}
	return a
}

// arcBeziers appends cubic Bezier segments approximating an elliptical
// arc with center (cx, cy), radii rx/ry, axis rotation phi, starting at
// parametric angle start and sweeping by sweep radians.
//
// The sweep is split into segments of at most 90 degrees to bound the
// approximation error. If the arc's start point coincides with the
// current point (within 1e-6 squared distance) no connecting LineTo is
// emitted; stray micro-segments corrupt stroke joins on some rasterizers.
func (p *Path) arcBeziers(cx, cy, rx, ry, phi, start, sweep float64) {
	cosPhi := math.Cos(phi)
	sinPhi := math.Sin(phi)

	point := func(theta float64) Point {
		ct, st := math.Cos(theta), math.Sin(theta)
		return Pt(
			cx+rx*ct*cosPhi-ry*st*sinPhi,
			cy+rx*ct*sinPhi+ry*st*cosPhi,
		)
	}
	deriv := func(theta float64) Point {
		ct, st := math.Cos(theta), math.Sin(theta)
		return Pt(
			-rx*st*cosPhi-ry*ct*sinPhi,
			-rx*st*sinPhi+ry*ct*cosPhi,
		)
	}

	sp := point(start)
	if !p.hasCurrent {
		p.moveTo(sp.X, sp.Y)
	} else if p.current.Sub(sp).LengthSquared() > geomEpsilon {
		p.lineTo(sp.X, sp.Y)
	} else {
		p.current = sp
	}
	if sweep == 0 {
		return
	}

	// The 1e-9 slack keeps a sweep that lands on an exact multiple of 90
	// degrees (up to rounding) from splitting into an extra sliver.
	segments := int(math.Ceil(math.Abs(sweep)/(math.Pi/2) - 1e-9))
	if segments < 1 {
		segments = 1
	}
	delta := sweep / float64(segments)
	// Control-point distance along the tangent for a cubic segment.
	alpha := 4.0 / 3.0 * math.Tan(delta/4)

	theta1 := start
	p1 := point(theta1)
	for i := 0; i < segments; i++ {
		theta2 := theta1 + delta
		p2 := point(theta2)
		d1 := deriv(theta1)
		d2 := deriv(theta2)
		c1 := p1.Add(d1.Mul(alpha))
		c2 := p2.Sub(d2.Mul(alpha))
		p.bezierTo(c1.X, c1.Y, c2.X, c2.Y, p2.X, p2.Y)
		theta1 = theta2
		p1 = p2
	}
}
