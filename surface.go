package tint

import "image"

// Dest is the destination pixel surface the renderer composites onto:
// a premultiplied BGRA buffer supplied by the platform graphics backend
// (a window's backing store, typically).
//
// Dest values key the renderer's surface pool, so implementations must
// be comparable — in practice, pointers.
type Dest interface {
	// Size returns the destination's dimensions in device pixels.
	Size() (width, height int)
	// Stride returns the byte distance between rows.
	Stride() int
	// Pix returns the premultiplied BGRA pixel bytes.
	Pix() []byte
}

// Surface is a pooled scratch buffer one draw call renders into before
// compositing onto the destination. Lifecycle: Rent, Clear, write rows,
// AlphaBlendTo, Return. A surface is owned by a single draw call and
// never shared.
type Surface struct {
	width  int
	height int
	stride int
	pix    []byte
}

func newSurface(w, h int) *Surface {
	s := &Surface{}
	s.resize(w, h)
	return s
}

// resize adjusts the surface's dimensions, reusing the existing buffer
// when it is large enough.
func (s *Surface) resize(w, h int) {
	s.width = w
	s.height = h
	s.stride = w * 4
	if need := h * s.stride; cap(s.pix) < need {
		s.pix = make([]byte, need)
	} else {
		s.pix = s.pix[:need]
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Stride returns the byte distance between rows.
func (s *Surface) Stride() int { return s.stride }

// Row returns the BGRA bytes of row y.
func (s *Surface) Row(y int) []byte {
	return s.pix[y*s.stride : y*s.stride+s.width*4]
}

// Clear zeroes the surface to transparent black.
func (s *Surface) Clear() {
	clear(s.pix)
}

// AlphaBlendTo composites the surface onto dst with its top-left corner
// at (dx, dy), using premultiplied source-over blending. Only pixels
// inside clip (destination coordinates) are written; strokes use this to
// trim their AA padding back to the requested rectangle.
func (s *Surface) AlphaBlendTo(dst Dest, dx, dy int, clip image.Rectangle) {
	dw, dh := dst.Size()
	region := image.Rect(dx, dy, dx+s.width, dy+s.height).
		Intersect(clip).
		Intersect(image.Rect(0, 0, dw, dh))
	if region.Empty() {
		return
	}

	dpix := dst.Pix()
	dstride := dst.Stride()
	for y := region.Min.Y; y < region.Max.Y; y++ {
		srow := s.Row(y - dy)
		drow := dpix[y*dstride:]
		for x := region.Min.X; x < region.Max.X; x++ {
			si := (x - dx) * 4
			sa := srow[si+3]
			if sa == 0 {
				continue
			}
			di := x * 4
			if sa == 255 {
				copy(drow[di:di+4], srow[si:si+4])
				continue
			}
			inv := uint32(255 - sa)
			drow[di+0] = srow[si+0] + uint8((uint32(drow[di+0])*inv+127)/255)
			drow[di+1] = srow[si+1] + uint8((uint32(drow[di+1])*inv+127)/255)
			drow[di+2] = srow[si+2] + uint8((uint32(drow[di+2])*inv+127)/255)
			drow[di+3] = sa + uint8((uint32(drow[di+3])*inv+127)/255)
		}
	}
}

// maxPooledPerDest caps how many idle surfaces the pool keeps per
// destination. Beyond this, returned surfaces are dropped for the GC.
const maxPooledPerDest = 4

// SurfacePool reuses scratch surfaces across draw calls, keyed by
// destination identity.
//
// The pool does no locking: Rent and Return for a given destination must
// happen on the goroutine that owns that destination, matching the
// single-threaded-per-window rendering model of the platform layer.
type SurfacePool struct {
	free map[Dest][]*Surface
}

// NewSurfacePool creates an empty surface pool.
func NewSurfacePool() *SurfacePool {
	return &SurfacePool{
		free: make(map[Dest][]*Surface),
	}
}

// Rent returns a w x h surface for drawing onto dst, reusing a pooled
// buffer when one is available. The caller must pass it back through
// Return on every exit path.
func (p *SurfacePool) Rent(dst Dest, w, h int) *Surface {
	list := p.free[dst]
	if n := len(list); n > 0 {
		s := list[n-1]
		p.free[dst] = list[:n-1]
		s.resize(w, h)
		return s
	}
	return newSurface(w, h)
}

// Return puts a surface back into dst's free list.
func (p *SurfacePool) Return(dst Dest, s *Surface) {
	list := p.free[dst]
	if len(list) >= maxPooledPerDest {
		return
	}
	p.free[dst] = append(list, s)
}

// Release drops every pooled surface for dst. Call when a destination
// goes away (window closed) so its buffers do not linger.
func (p *SurfacePool) Release(dst Dest) {
	delete(p.free, dst)
}
