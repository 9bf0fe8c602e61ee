// Package image18bit provides the 18 bpp color format of the ILI9488 display
// controller.
//
// Over SPI the controller takes 18 bpp pixels as three bytes, one per
// channel, with the six significant bits in bits 7-2 and bits 1-0 ignored.
// Image keeps its pixels in exactly that layout so it can be streamed
// without conversion.
package image18bit

import (
	"image"
	"image/color"
)

// Max is the largest channel value.
const Max = 0x3F

// RGB666 represents a color with six bits per channel.
//
// Channel values above Max saturate to Max.
type RGB666 struct {
	R, G, B uint8
}

// Clamp returns c with every channel limited to Max.
func (c RGB666) Clamp() RGB666 {
	return RGB666{R: sat(c.R), G: sat(c.G), B: sat(c.B)}
}

// Bytes returns the three wire bytes of c.
func (c RGB666) Bytes() [3]byte {
	c = c.Clamp()
	return [3]byte{c.R << 2, c.G << 2, c.B << 2}
}

// FromBytes decodes three wire bytes. The padding bits are ignored.
func FromBytes(r, g, b byte) RGB666 {
	return RGB666{R: r >> 2, G: g >> 2, B: b >> 2}
}

// RGBA implements color.Color.
func (c RGB666) RGBA() (r, g, b, a uint32) {
	c = c.Clamp()
	return expand(c.R), expand(c.G), expand(c.B), 0xFFFF
}

func sat(v uint8) uint8 {
	if v > Max {
		return Max
	}
	return v
}

// expand scales a 6-bit value to 16 bits by bit replication.
func expand(v uint8) uint32 {
	x := uint32(v)
	return x<<10 | x<<4 | x>>2
}

// toRGB666 converts any color.Color to RGB666.
//
// Channels are truncated, so the error is below one 6-bit step.
func toRGB666(c color.Color) color.Color {
	if p, ok := c.(RGB666); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return RGB666{R: uint8(r >> 10), G: uint8(g >> 10), B: uint8(b >> 10)}
}

// Model converts colors to RGB666.
var Model = color.ModelFunc(toRGB666)

// Image is an 18 bpp image stored as three wire bytes per pixel.
type Image struct {
	Pix    []byte          // Pixel data (3 bytes per pixel)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewImage creates a new Image with the specified bounds.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Image{Rect: r}
	}
	return &Image{
		Pix:    make([]byte, 3*w*h),
		Stride: 3 * w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *Image) At(x, y int) color.Color {
	return p.RGB666At(x, y)
}

// RGB666At returns the color of the pixel at (x, y).
func (p *Image) RGB666At(x, y int) RGB666 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return RGB666{}
	}
	i := p.PixOffset(x, y)
	return FromBytes(p.Pix[i], p.Pix[i+1], p.Pix[i+2])
}

// Set implements draw.Image.
func (p *Image) Set(x, y int, c color.Color) {
	p.SetRGB666(x, y, Model.Convert(c).(RGB666))
}

// SetRGB666 sets the color of the pixel at (x, y) without going through the
// color model.
func (p *Image) SetRGB666(x, y int, c RGB666) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	b := c.Bytes()
	copy(p.Pix[i:i+3], b[:])
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}
