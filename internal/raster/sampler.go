// Package raster turns signed-distance evaluations into 8-bit
// anti-aliased pixel coverage. It is the only code in the module that
// touches raw pixel bytes.
package raster

// Field is a single signed distance evaluation. Negative is inside.
type Field interface {
	SignedDistance(x, y float64) float64
}

// EdgeSampler estimates a pixel's fractional coverage by sampling the
// distance field at N x N sub-pixel offsets and averaging the inside
// samples. It is only ever applied to boundary pixels; interior and
// exterior pixels are classified analytically by the renderer.
type EdgeSampler struct {
	offsets []float64
	inv     float64 // 1 / (N*N)
}

// NewEdgeSampler creates a sampler with the given supersample factor,
// clamped to [1, 3]. Factor 1 samples the pixel center only; factor 3
// gives 9 samples per pixel, enough for smooth edges at standard DPI.
func NewEdgeSampler(factor int) EdgeSampler {
	if factor < 1 {
		factor = 1
	} else if factor > 3 {
		factor = 3
	}
	offsets := make([]float64, factor)
	for i := range offsets {
		offsets[i] = (float64(i) + 0.5) / float64(factor)
	}
	return EdgeSampler{
		offsets: offsets,
		inv:     1 / float64(factor*factor),
	}
}

// Factor returns the clamped supersample factor.
func (s EdgeSampler) Factor() int {
	return len(s.offsets)
}

// FillCoverage returns the fraction of sub-pixel samples inside the
// field, for the pixel whose top-left corner is (px, py).
func (s EdgeSampler) FillCoverage(f Field, px, py float64) float64 {
	inside := 0
	for _, dy := range s.offsets {
		y := py + dy
		for _, dx := range s.offsets {
			if f.SignedDistance(px+dx, y) < 0 {
				inside++
			}
		}
	}
	return float64(inside) * s.inv
}

// StrokeCoverage returns the fraction of sub-pixel samples that fall
// between the outer and inner hulls: inside outer, outside inner. A nil
// inner hull means the stroke has collapsed to a fill.
func (s EdgeSampler) StrokeCoverage(outer, inner Field, px, py float64) float64 {
	inside := 0
	for _, dy := range s.offsets {
		y := py + dy
		for _, dx := range s.offsets {
			x := px + dx
			if outer.SignedDistance(x, y) >= 0 {
				continue
			}
			if inner != nil && inner.SignedDistance(x, y) < 0 {
				continue
			}
			inside++
		}
	}
	return float64(inside) * s.inv
}
