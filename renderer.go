package tint

import (
	"image"
	"math"

	"github.com/tintui/tint/internal/raster"
	"github.com/tintui/tint/sdf"
)

// aaHalfWidth is the half-width, in device pixels, of the anti-aliased
// boundary band. Pixels deeper inside the shape than this are written at
// full alpha, pixels deeper outside stay empty; only the band in between
// is supersampled.
const aaHalfWidth = 1.0

// strokePad is the extra surface pixel on every side of a stroke so
// boundary sampling can reach past the nominal edge. The blend is trimmed
// back to the requested rectangle, so padding never bleeds outward.
const strokePad = 1

// spanField is a distance field with an exact horizontal-span
// accelerator. The two shapes the renderer fills both provide one.
type spanField interface {
	raster.Field
	SpanAtY(y float64) (x0, x1 float64, ok bool)
}

// Renderer draws the primitive shape vocabulary — rounded rectangles,
// ellipses, and lines — with hybrid SDF anti-aliasing: exact solid spans
// inside, supersampled coverage on the 1-3px boundary band only. Cost
// scales with a shape's perimeter, not its area.
//
// A Renderer owns a surface pool and therefore belongs to a single
// rendering goroutine, as the pool does no locking.
type Renderer struct {
	pool    *SurfacePool
	sampler raster.EdgeSampler
	maxPix  int
}

// NewRenderer creates a renderer with its own surface pool.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		pool:    NewSurfacePool(),
		sampler: raster.NewEdgeSampler(o.supersample),
		maxPix:  o.maxSurfacePixels,
	}
}

// Release drops every pooled surface held for dst. Call when the
// destination goes away.
func (r *Renderer) Release(dst Dest) {
	r.pool.Release(dst)
}

// skip reports (and logs) whether a draw must be skipped up front.
// Oversized and degenerate draws never fail; rendering has to survive
// pathological layout inputs.
func (r *Renderer) skip(op string, w, h int, alpha uint8) bool {
	if w <= 0 || h <= 0 || alpha == 0 {
		Logger().Debug("draw skipped: degenerate", "op", op, "w", w, "h", h, "alpha", alpha)
		return true
	}
	if w*h > r.maxPix {
		Logger().Debug("draw skipped: surface too large", "op", op, "w", w, "h", h)
		return true
	}
	return false
}

// FillRect fills an axis-aligned rectangle with no anti-aliasing. This is
// the simple path DrawLine rejects axis-aligned lines toward; it writes
// the destination directly, without renting a surface.
func (r *Renderer) FillRect(dst Dest, x, y, w, h int, c BGRA) {
	if w <= 0 || h <= 0 || c.A == 0 {
		return
	}
	dw, dh := dst.Size()
	region := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, dw, dh))
	if region.Empty() {
		return
	}

	a := uint32(c.A)
	pb := uint8((uint32(c.B)*a + 127) / 255)
	pg := uint8((uint32(c.G)*a + 127) / 255)
	pr := uint8((uint32(c.R)*a + 127) / 255)
	inv := 255 - a

	pix := dst.Pix()
	stride := dst.Stride()
	for yy := region.Min.Y; yy < region.Max.Y; yy++ {
		row := pix[yy*stride:]
		for xx := region.Min.X; xx < region.Max.X; xx++ {
			i := xx * 4
			if c.A == 255 {
				row[i+0] = pb
				row[i+1] = pg
				row[i+2] = pr
				row[i+3] = 255
				continue
			}
			row[i+0] = pb + uint8((uint32(row[i+0])*inv+127)/255)
			row[i+1] = pg + uint8((uint32(row[i+1])*inv+127)/255)
			row[i+2] = pr + uint8((uint32(row[i+2])*inv+127)/255)
			row[i+3] = c.A + uint8((uint32(row[i+3])*inv+127)/255)
		}
	}
}

// FillRoundedRect fills a w x h rounded rectangle at (x, y) on dst with
// per-axis corner radii rx, ry (clamped to the half extents).
func (r *Renderer) FillRoundedRect(dst Dest, x, y, w, h int, rx, ry float64, c BGRA) {
	if r.skip("FillRoundedRect", w, h, c.A) {
		return
	}
	shape := sdf.NewRoundedRect(float64(w), float64(h), rx, ry)

	s := r.pool.Rent(dst, w, h)
	defer r.pool.Return(dst, s)
	s.Clear()
	r.fillSpans(s, shape, float64(w)/2, float64(h)/2, c)
	s.AlphaBlendTo(dst, x, y, image.Rect(x, y, x+w, y+h))
}

// FillEllipse fills the ellipse inscribed in the w x h rectangle at
// (x, y) on dst.
func (r *Renderer) FillEllipse(dst Dest, x, y, w, h int, c BGRA) {
	if r.skip("FillEllipse", w, h, c.A) {
		return
	}
	shape := sdf.NewEllipse(float64(w)/2, float64(h)/2)

	s := r.pool.Rent(dst, w, h)
	defer r.pool.Return(dst, s)
	s.Clear()
	r.fillSpans(s, shape, float64(w)/2, float64(h)/2, c)
	s.AlphaBlendTo(dst, x, y, image.Rect(x, y, x+w, y+h))
}

// StrokeRoundedRect strokes a w x h rounded rectangle at (x, y) with the
// given stroke width, drawn inward from the shape's bounds. The width is
// snapped to a whole pixel count for a crisp inner edge.
func (r *Renderer) StrokeRoundedRect(dst Dest, x, y, w, h int, rx, ry, strokeWidth float64, c BGRA) {
	sw := snapStrokeWidth(strokeWidth)
	if sw == 0 || r.skip("StrokeRoundedRect", w+2*strokePad, h+2*strokePad, c.A) {
		return
	}
	outer := sdf.NewRoundedRect(float64(w), float64(h), rx, ry)
	var inner raster.Field
	if iw, ih := float64(w)-2*float64(sw), float64(h)-2*float64(sw); iw > 0 && ih > 0 {
		hole := sdf.NewRoundedRect(iw, ih, math.Max(0, rx-float64(sw)), math.Max(0, ry-float64(sw)))
		inner = hole
	}
	r.strokeShape(dst, x, y, w, h, outer, inner, float64(w)/2, float64(h)/2, c)
}

// StrokeEllipse strokes the ellipse inscribed in the w x h rectangle at
// (x, y), with the stroke drawn inward from the ellipse boundary.
func (r *Renderer) StrokeEllipse(dst Dest, x, y, w, h int, strokeWidth float64, c BGRA) {
	sw := snapStrokeWidth(strokeWidth)
	if sw == 0 || r.skip("StrokeEllipse", w+2*strokePad, h+2*strokePad, c.A) {
		return
	}
	outer := sdf.NewEllipse(float64(w)/2, float64(h)/2)
	var inner raster.Field
	if irx, iry := float64(w)/2-float64(sw), float64(h)/2-float64(sw); irx > 0 && iry > 0 {
		hole := sdf.NewEllipse(irx, iry)
		inner = hole
	}
	r.strokeShape(dst, x, y, w, h, outer, inner, float64(w)/2, float64(h)/2, c)
}

// DrawLine draws an anti-aliased line of the given width between two
// points. Axis-aligned lines are rejected with a false return: they need
// no anti-aliasing and the caller draws them through FillRect instead.
// All other outcomes, including guarded skips, return true.
func (r *Renderer) DrawLine(dst Dest, x0, y0, x1, y1, width float64, c BGRA) bool {
	line := sdf.NewLine(x0, y0, x1, y1, width)
	if line.IsAxisAligned() {
		return false
	}
	if width <= 0 || c.A == 0 {
		Logger().Debug("draw skipped: degenerate", "op", "DrawLine", "width", width, "alpha", c.A)
		return true
	}

	minX, minY, maxX, maxY := line.Bounds()
	bx := int(math.Floor(minX - aaHalfWidth))
	by := int(math.Floor(minY - aaHalfWidth))
	w := int(math.Ceil(maxX+aaHalfWidth)) - bx
	h := int(math.Ceil(maxY+aaHalfWidth)) - by
	if w <= 0 || h <= 0 {
		return true
	}
	if w*h > r.maxPix {
		Logger().Debug("draw skipped: surface too large", "op", "DrawLine", "w", w, "h", h)
		return true
	}

	s := r.pool.Rent(dst, w, h)
	defer r.pool.Return(dst, s)
	s.Clear()

	for iy := 0; iy < h; iy++ {
		py := float64(by + iy)
		row := s.Row(iy)
		for ix := 0; ix < w; ix++ {
			px := float64(bx + ix)
			d := line.SignedDistance(px+0.5, py+0.5)
			switch {
			case d <= -aaHalfWidth:
				raster.StorePixel(row, ix, c.B, c.G, c.R, c.A, 1)
			case d >= aaHalfWidth:
				// outside
			default:
				cov := r.sampler.FillCoverage(line, px, py)
				raster.StorePixel(row, ix, c.B, c.G, c.R, c.A, cov)
			}
		}
	}

	s.AlphaBlendTo(dst, bx, by, image.Rect(bx, by, bx+w, by+h))
	return true
}

// fillSpans rasterizes a filled shape into s. The shape's local frame is
// centered at (cx, cy) in surface coordinates. Each scanline is split
// into a solid interior span written at full alpha, a boundary band that
// gets supersampled, and the rest, which stays empty.
func (r *Renderer) fillSpans(s *Surface, shape spanField, cx, cy float64, c BGRA) {
	for y := 0; y < s.Height(); y++ {
		ly := float64(y) + 0.5 - cy
		x0f, x1f, ok := shape.SpanAtY(ly)
		if !ok {
			continue
		}
		sx0 := x0f + cx
		sx1 := x1f + cx

		bandStart := clampInt(int(math.Floor(sx0-aaHalfWidth)), 0, s.Width())
		bandEnd := clampInt(int(math.Ceil(sx1+aaHalfWidth)), 0, s.Width())
		solidStart := clampInt(int(math.Ceil(sx0+aaHalfWidth)), bandStart, bandEnd)
		solidEnd := clampInt(int(math.Floor(sx1-aaHalfWidth)), bandStart, bandEnd)
		if solidStart > solidEnd {
			solidStart, solidEnd = bandEnd, bandEnd
		}

		row := s.Row(y)
		lyTop := float64(y) - cy
		for ix := bandStart; ix < solidStart; ix++ {
			cov := r.sampler.FillCoverage(shape, float64(ix)-cx, lyTop)
			raster.StorePixel(row, ix, c.B, c.G, c.R, c.A, cov)
		}
		raster.StoreSpan(row, solidStart, solidEnd, c.B, c.G, c.R, c.A)
		for ix := solidEnd; ix < bandEnd; ix++ {
			cov := r.sampler.FillCoverage(shape, float64(ix)-cx, lyTop)
			raster.StorePixel(row, ix, c.B, c.G, c.R, c.A, cov)
		}
	}
}

// strokeShape rasterizes the region between an outer hull and an inner
// hull (nil if the stroke collapsed to a fill) into a padded surface and
// composites it, trimmed to the requested rectangle.
func (r *Renderer) strokeShape(dst Dest, x, y, w, h int, outer spanField, inner raster.Field, halfW, halfH float64, c BGRA) {
	sw := w + 2*strokePad
	sh := h + 2*strokePad
	cx := halfW + strokePad
	cy := halfH + strokePad

	s := r.pool.Rent(dst, sw, sh)
	defer r.pool.Return(dst, s)
	s.Clear()

	for iy := 0; iy < sh; iy++ {
		ly := float64(iy) + 0.5 - cy
		x0f, x1f, ok := outer.SpanAtY(ly)
		if !ok {
			// Above or below the hull: only the AA band can reach here.
			if math.Abs(ly) > halfH+aaHalfWidth {
				continue
			}
			x0f, x1f = -halfW, halfW
		}

		bandStart := clampInt(int(math.Floor(x0f+cx-aaHalfWidth)), 0, sw)
		bandEnd := clampInt(int(math.Ceil(x1f+cx+aaHalfWidth)), 0, sw)
		row := s.Row(iy)
		lyTop := float64(iy) - cy

		for ix := bandStart; ix < bandEnd; ix++ {
			pcx := float64(ix) + 0.5 - cx
			dOuter := outer.SignedDistance(pcx, ly)
			if dOuter >= aaHalfWidth {
				continue
			}
			dInner := math.Inf(1)
			if inner != nil {
				dInner = inner.SignedDistance(pcx, ly)
				if dInner <= -aaHalfWidth {
					continue
				}
			}
			if dOuter <= -aaHalfWidth && dInner >= aaHalfWidth {
				raster.StorePixel(row, ix, c.B, c.G, c.R, c.A, 1)
				continue
			}
			cov := r.sampler.StrokeCoverage(outer, inner, float64(ix)-cx, lyTop)
			raster.StorePixel(row, ix, c.B, c.G, c.R, c.A, cov)
		}
	}

	// Trim the padding: no stroke pixel may land outside the requested
	// rectangle.
	s.AlphaBlendTo(dst, x-strokePad, y-strokePad, image.Rect(x, y, x+w, y+h))
}

// snapStrokeWidth rounds a stroke width to a whole pixel count so the
// inner and outer edges stay crisp. Positive widths never snap below 1.
func snapStrokeWidth(strokeWidth float64) int {
	if strokeWidth <= 0 {
		return 0
	}
	sw := int(math.Round(strokeWidth))
	if sw < 1 {
		sw = 1
	}
	return sw
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
