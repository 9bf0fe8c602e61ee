package ili9488

import (
	"fmt"
	"image/color"

	"periph.io/x/devices/v3/ili9488/image18bit"
	"periph.io/x/devices/v3/ili9488/image3bit"
)

// PixelFormat is the pixel encoding used on the wire.
//
// In 4-wire SPI mode the ILI9488 only accepts 18 bpp and 3 bpp data.
type PixelFormat uint8

// Supported pixel formats. The zero value is RGB666.
const (
	RGB666 PixelFormat = iota // 18 bpp, 3 bytes per pixel
	RGB111                    // 3 bpp, 2 pixels per byte
)

func (f PixelFormat) String() string {
	switch f {
	case RGB666:
		return "RGB666"
	case RGB111:
		return "RGB111"
	}
	return fmt.Sprintf("PixelFormat(%d)", uint8(f))
}

func (f PixelFormat) valid() bool {
	return f == RGB666 || f == RGB111
}

// colmod returns the COLMOD parameter selecting f.
func (f PixelFormat) colmod() byte {
	if f == RGB111 {
		return 0x01
	}
	return 0x66
}

// ColorModel returns the color model matching the format.
func (f PixelFormat) ColorModel() color.Model {
	if f == RGB111 {
		return image3bit.Model
	}
	return image18bit.Model
}

// unit returns the smallest whole number of bytes and the number of pixels
// they hold.
func (f PixelFormat) unit() (bytes, pixels int) {
	if f == RGB111 {
		return 1, 2
	}
	return 3, 1
}

// BufferLen returns the number of wire bytes taken by n pixels.
func (f PixelFormat) BufferLen(n int) int {
	bytes, pixels := f.unit()
	return (n + pixels - 1) / pixels * bytes
}

// AppendPixels appends the wire encoding of src to dst.
func (f PixelFormat) AppendPixels(dst []byte, src []color.Color) []byte {
	return f.encoder()(dst, src)
}

// encoder appends the wire encoding of src to dst.
type encoder func(dst []byte, src []color.Color) []byte

// encoder returns the encoding function for f, resolved once so bulk writes
// do not branch on the format per pixel.
func (f PixelFormat) encoder() encoder {
	if f == RGB111 {
		return appendRGB111
	}
	return appendRGB666
}

func encodeRGB666(c color.Color) [3]byte {
	if p, ok := c.(image18bit.RGB666); ok {
		return p.Bytes()
	}
	return image18bit.Model.Convert(c).(image18bit.RGB666).Bytes()
}

func encodeRGB111(c color.Color) byte {
	if p, ok := c.(image3bit.RGB111); ok {
		return p.Code()
	}
	return image3bit.Model.Convert(c).(image3bit.RGB111).Code()
}

func appendRGB666(dst []byte, src []color.Color) []byte {
	for _, c := range src {
		b := encodeRGB666(c)
		dst = append(dst, b[0], b[1], b[2])
	}
	return dst
}

// appendRGB111 packs two pixels per byte. An odd trailing pixel is followed
// by a black padding pixel.
func appendRGB111(dst []byte, src []color.Color) []byte {
	i := 0
	for ; i+1 < len(src); i += 2 {
		dst = append(dst, encodeRGB111(src[i])<<3|encodeRGB111(src[i+1]))
	}
	if i < len(src) {
		dst = append(dst, encodeRGB111(src[i])<<3)
	}
	return dst
}

// rgb565 expands a RGB565 word to RGB666.
func rgb565(p uint16) image18bit.RGB666 {
	r := uint8(p>>11) & 0x1F
	g := uint8(p>>5) & 0x3F
	b := uint8(p) & 0x1F
	return image18bit.RGB666{R: r<<1 | r>>4, G: g, B: b<<1 | b>>4}
}
