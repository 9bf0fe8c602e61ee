// Package image3bit provides the 3 bpp color format of the ILI9488 display
// controller.
//
// In 3 bpp mode the controller takes one bit per channel and packs two
// pixels per byte. The left pixel uses bits 5-3, the right pixel bits 2-0,
// and bits 7-6 are ignored.
//
// Memory layout example for a 4-pixel row:
//
//	Pixels: 0      1      2      3
//	Colors: Red    Cyan   White  Black
//	Codes:  100    011    111    000
//	Bytes:  0x23          0x38
//	        (0x23 = 00 100 011)
//	        (0x38 = 00 111 000)
//
// This package provides:
//
// - RGB111: A color type with one saturating bit per channel
// - Model: A color model for converting standard Go colors to RGB111
// - Packed: An image.Image whose Pix buffer is in the controller wire layout
//
// Example usage:
//
//	img := image3bit.NewPacked(image.Rect(0, 0, 320, 480))
//	img.SetRGB111(10, 20, image3bit.Magenta)
//	draw.Draw(img, img.Bounds(), image.NewUniform(image3bit.Blue), image.Point{}, draw.Src)
package image3bit
