package tint

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is an in-memory premultiplied BGRA buffer implementing Dest.
// Platform backends wrap their native backing stores instead; Pixmap is
// for software rendering and tests.
type Pixmap struct {
	width  int
	height int
	pix    []byte
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}
}

// Size returns the pixmap's dimensions in pixels.
func (p *Pixmap) Size() (width, height int) {
	return p.width, p.height
}

// Stride returns the byte distance between rows.
func (p *Pixmap) Stride() int {
	return p.width * 4
}

// Pix returns the raw premultiplied BGRA pixel bytes.
func (p *Pixmap) Pix() []byte {
	return p.pix
}

// Clear fills the pixmap with a solid color.
func (p *Pixmap) Clear(c BGRA) {
	a := uint32(c.A)
	pb := uint8((uint32(c.B)*a + 127) / 255)
	pg := uint8((uint32(c.G)*a + 127) / 255)
	pr := uint8((uint32(c.R)*a + 127) / 255)
	for i := 0; i < len(p.pix); i += 4 {
		p.pix[i+0] = pb
		p.pix[i+1] = pg
		p.pix[i+2] = pr
		p.pix[i+3] = c.A
	}
}

// GetPixel returns the un-premultiplied color of a single pixel.
// Out-of-range coordinates return the zero color.
func (p *Pixmap) GetPixel(x, y int) BGRA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return BGRA{}
	}
	i := (y*p.width + x) * 4
	a := uint32(p.pix[i+3])
	if a == 0 {
		return BGRA{}
	}
	return BGRA{
		B: uint8(uint32(p.pix[i+0]) * 255 / a),
		G: uint8(uint32(p.pix[i+1]) * 255 / a),
		R: uint8(uint32(p.pix[i+2]) * 255 / a),
		A: uint8(a),
	}
}

// Alpha returns the alpha byte of a single pixel, 0 outside the pixmap.
func (p *Pixmap) Alpha(x, y int) uint8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.pix[(y*p.width+x)*4+3]
}

// ToImage converts the pixmap to an image.RGBA, un-swizzling BGRA to
// RGBA. The result stays premultiplied, matching image.RGBA's encoding.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for i := 0; i < len(p.pix); i += 4 {
		img.Pix[i+0] = p.pix[i+2]
		img.Pix[i+1] = p.pix[i+1]
		img.Pix[i+2] = p.pix[i+0]
		img.Pix[i+3] = p.pix[i+3]
	}
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c := p.GetPixel(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
