package tint

import "math"

// bezierCircleKappa is the control-point distance, as a fraction of the
// radius, that makes a cubic Bezier best approximate a quarter circle:
// 4*(sqrt(2)-1)/3.
const bezierCircleKappa = 0.5522847498307936

// CornerRadii holds independent elliptical radii for each corner of a
// rounded rectangle. The X radius runs along the horizontal edge, the
// Y radius along the vertical edge.
type CornerRadii struct {
	TopLeftX, TopLeftY         float64
	TopRightX, TopRightY       float64
	BottomRightX, BottomRightY float64
	BottomLeftX, BottomLeftY   float64
}

// UniformCorners returns CornerRadii with the same circular radius at
// every corner.
func UniformCorners(r float64) CornerRadii {
	return CornerRadii{
		TopLeftX: r, TopLeftY: r,
		TopRightX: r, TopRightY: r,
		BottomRightX: r, BottomRightY: r,
		BottomLeftX: r, BottomLeftY: r,
	}
}

// clamped limits every radius to half the corresponding side length so
// adjacent corners can never overlap, and floors negatives at zero.
func (c CornerRadii) clamped(w, h float64) CornerRadii {
	clamp := func(r, limit float64) float64 {
		return math.Max(0, math.Min(r, limit))
	}
	return CornerRadii{
		TopLeftX: clamp(c.TopLeftX, w/2), TopLeftY: clamp(c.TopLeftY, h/2),
		TopRightX: clamp(c.TopRightX, w/2), TopRightY: clamp(c.TopRightY, h/2),
		BottomRightX: clamp(c.BottomRightX, w/2), BottomRightY: clamp(c.BottomRightY, h/2),
		BottomLeftX: clamp(c.BottomLeftX, w/2), BottomLeftY: clamp(c.BottomLeftY, h/2),
	}
}

// FromRect returns a frozen path tracing the rectangle clockwise.
func FromRect(x, y, w, h float64) *Path {
	p := NewPath()
	p.moveTo(x, y)
	p.lineTo(x+w, y)
	p.lineTo(x+w, y+h)
	p.lineTo(x, y+h)
	p.closePath()
	p.Freeze()
	return p
}

// FromRoundedRect returns a frozen path for a rectangle with per-corner
// elliptical radii. Radii are clamped to half the adjacent side length.
// Each corner is one cubic Bezier using the quarter-circle approximation.
func FromRoundedRect(x, y, w, h float64, radii CornerRadii) *Path {
	r := radii.clamped(w, h)
	const k = bezierCircleKappa

	p := NewPath()
	p.moveTo(x+r.TopLeftX, y)
	p.lineTo(x+w-r.TopRightX, y)
	p.bezierTo(
		x+w-r.TopRightX+k*r.TopRightX, y,
		x+w, y+r.TopRightY-k*r.TopRightY,
		x+w, y+r.TopRightY,
	)
	p.lineTo(x+w, y+h-r.BottomRightY)
	p.bezierTo(
		x+w, y+h-r.BottomRightY+k*r.BottomRightY,
		x+w-r.BottomRightX+k*r.BottomRightX, y+h,
		x+w-r.BottomRightX, y+h,
	)
	p.lineTo(x+r.BottomLeftX, y+h)
	p.bezierTo(
		x+r.BottomLeftX-k*r.BottomLeftX, y+h,
		x, y+h-r.BottomLeftY+k*r.BottomLeftY,
		x, y+h-r.BottomLeftY,
	)
	p.lineTo(x, y+r.TopLeftY)
	p.bezierTo(
		x, y+r.TopLeftY-k*r.TopLeftY,
		x+r.TopLeftX-k*r.TopLeftX, y,
		x+r.TopLeftX, y,
	)
	p.closePath()
	p.Freeze()
	return p
}

// FromEllipse returns a frozen path approximating an ellipse with four
// cubic Bezier segments.
func FromEllipse(cx, cy, rx, ry float64) *Path {
	ox := rx * bezierCircleKappa
	oy := ry * bezierCircleKappa

	p := NewPath()
	p.moveTo(cx+rx, cy)
	p.bezierTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.bezierTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.bezierTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.bezierTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.closePath()
	p.Freeze()
	return p
}

// FromCircle returns a frozen path approximating a circle.
func FromCircle(cx, cy, r float64) *Path {
	return FromEllipse(cx, cy, r, r)
}
