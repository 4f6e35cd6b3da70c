package raster

// Row writing for premultiplied BGRA surfaces. The color never reaches
// the SDF or sampler layers; a single solid source color is scaled by
// per-pixel coverage right here. A SIMD batch variant can replace the
// span loop without changing callers.

// premul8 returns v scaled by alpha/255 with rounding.
func premul8(v, alpha uint32) uint8 {
	return uint8((v*alpha + 127) / 255)
}

// StoreSpan writes a solid premultiplied run of pixels [x0, x1) into a
// BGRA row.
func StoreSpan(row []byte, x0, x1 int, b, g, r, a uint8) {
	pb := premul8(uint32(b), uint32(a))
	pg := premul8(uint32(g), uint32(a))
	pr := premul8(uint32(r), uint32(a))
	for x := x0; x < x1; x++ {
		i := x * 4
		row[i+0] = pb
		row[i+1] = pg
		row[i+2] = pr
		row[i+3] = a
	}
}

// StorePixel writes one premultiplied pixel scaled by coverage in [0, 1].
func StorePixel(row []byte, x int, b, g, r, a uint8, coverage float64) {
	if coverage <= 0 {
		return
	}
	effA := coverage * float64(a)
	i := x * 4
	row[i+0] = uint8(float64(b)*effA/255 + 0.5)
	row[i+1] = uint8(float64(g)*effA/255 + 0.5)
	row[i+2] = uint8(float64(r)*effA/255 + 0.5)
	row[i+3] = uint8(effA + 0.5)
}
