package image3bit

import (
	"image"
	"image/color"
)

// RGB111 represents a color with one bit per channel.
//
// Any non-zero channel value is treated as fully on, so out of range values
// saturate instead of wrapping.
type RGB111 struct {
	R, G, B uint8
}

// The eight colors representable in 3 bpp mode.
var (
	Black   = RGB111{}
	Blue    = RGB111{B: 1}
	Green   = RGB111{G: 1}
	Cyan    = RGB111{G: 1, B: 1}
	Red     = RGB111{R: 1}
	Magenta = RGB111{R: 1, B: 1}
	Yellow  = RGB111{R: 1, G: 1}
	White   = RGB111{R: 1, G: 1, B: 1}
)

// Code returns the color in binary form, 0b00000rgb.
func (c RGB111) Code() byte {
	var b byte
	if c.R != 0 {
		b |= 0x4
	}
	if c.G != 0 {
		b |= 0x2
	}
	if c.B != 0 {
		b |= 0x1
	}
	return b
}

// FromCode returns the color stored in the low 3 bits of b.
func FromCode(b byte) RGB111 {
	return RGB111{R: (b >> 2) & 1, G: (b >> 1) & 1, B: b & 1}
}

// RGBA implements color.Color.
func (c RGB111) RGBA() (r, g, b, a uint32) {
	code := c.Code()
	return channel(code & 0x4), channel(code & 0x2), channel(code & 0x1), 0xFFFF
}

func channel(bit byte) uint32 {
	if bit != 0 {
		return 0xFFFF
	}
	return 0
}

// toRGB111 converts any color.Color to RGB111.
//
// Each channel is thresholded at half intensity.
func toRGB111(c color.Color) color.Color {
	if p, ok := c.(RGB111); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return RGB111{R: uint8(r >> 15), G: uint8(g >> 15), B: uint8(b >> 15)}
}

// Model converts colors to RGB111.
var Model = color.ModelFunc(toRGB111)

// Packed is a 3 bpp image where two horizontally adjacent pixels share a
// byte: bits 5-3 hold the left pixel and bits 2-0 the right pixel.
type Packed struct {
	Pix    []byte          // Pixel data (2 pixels per byte)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewPacked creates a new Packed image with the specified bounds.
// The width must be even (since 2 pixels per byte).
func NewPacked(r image.Rectangle) *Packed {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Packed{Rect: r}
	}
	if w%2 != 0 {
		panic("image3bit: width must be even")
	}
	stride := w / 2
	return &Packed{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Packed) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Packed) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *Packed) At(x, y int) color.Color {
	return p.RGB111At(x, y)
}

// RGB111At returns the color of the pixel at (x, y).
func (p *Packed) RGB111At(x, y int) RGB111 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return RGB111{}
	}
	offset, shift := p.pixOffset(x, y)
	return FromCode(p.Pix[offset] >> shift)
}

// Set implements draw.Image.
func (p *Packed) Set(x, y int, c color.Color) {
	p.SetRGB111(x, y, Model.Convert(c).(RGB111))
}

// SetRGB111 sets the color of the pixel at (x, y) without going through the
// color model.
func (p *Packed) SetRGB111(x, y int, c RGB111) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, shift := p.pixOffset(x, y)
	p.Pix[offset] = (p.Pix[offset] &^ (0x7 << shift)) | (c.Code() << shift)
}

// pixOffset returns the byte offset and bit shift for the pixel at (x, y).
// Even x (left pixel) uses shift 3, odd x uses shift 0.
func (p *Packed) pixOffset(x, y int) (offset int, shift uint) {
	offset = (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)/2
	shift = uint(3 * (1 - ((x - p.Rect.Min.X) & 1)))
	return
}
