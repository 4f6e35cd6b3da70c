package tint

import "image/color"

// BGRA is a solid color in the byte order the platform surfaces use.
// Components are not premultiplied; the row writer premultiplies when it
// stores pixels.
type BGRA struct {
	B, G, R, A uint8
}

// Color converts BGRA to the standard color.Color interface.
func (c BGRA) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to BGRA.
func FromColor(c color.Color) BGRA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return BGRA{}
	}
	// RGBA() returns premultiplied 16-bit components; undo both.
	return BGRA{
		B: uint8((b * 0xffff / a) >> 8),
		G: uint8((g * 0xffff / a) >> 8),
		R: uint8((r * 0xffff / a) >> 8),
		A: uint8(a >> 8),
	}
}
