package ili9488

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/devices/v3/ili9488/image18bit"
	"periph.io/x/devices/v3/ili9488/image3bit"
)

func TestPixelFormat(t *testing.T) {
	for _, tc := range []struct {
		f      PixelFormat
		name   string
		colmod byte
		model  color.Model
	}{
		{RGB666, "RGB666", 0x66, image18bit.Model},
		{RGB111, "RGB111", 0x01, image3bit.Model},
	} {
		if got := tc.f.String(); got != tc.name {
			t.Errorf("String() = %q, want %q", got, tc.name)
		}
		if got := tc.f.colmod(); got != tc.colmod {
			t.Errorf("%s colmod() = %#x, want %#x", tc.f, got, tc.colmod)
		}
		if got := tc.f.ColorModel().Convert(color.White); got != tc.model.Convert(color.White) {
			t.Errorf("%s ColorModel() converts white to %v", tc.f, got)
		}
	}
	if got := PixelFormat(5).String(); got != "PixelFormat(5)" {
		t.Errorf("String() = %q", got)
	}
}

func TestBufferLen(t *testing.T) {
	for _, tc := range []struct {
		f    PixelFormat
		n    int
		want int
	}{
		{RGB666, 0, 0},
		{RGB666, 1, 3},
		{RGB666, 320 * 480, 460800},
		{RGB111, 1, 1},
		{RGB111, 2, 1},
		{RGB111, 3, 2},
		{RGB111, 320 * 480, 76800},
	} {
		if got := tc.f.BufferLen(tc.n); got != tc.want {
			t.Errorf("%s.BufferLen(%d) = %d, want %d", tc.f, tc.n, got, tc.want)
		}
	}
}

func TestAppendPixels(t *testing.T) {
	colors := []color.Color{
		color.RGBA{R: 0xFF, A: 0xFF},
		color.Black,
		image18bit.RGB666{G: 0x3F, B: 0x10},
	}
	for _, tc := range []struct {
		f    PixelFormat
		want []byte
	}{
		{RGB666, []byte{0xFC, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFC, 0x40}},
		{RGB111, []byte{0x20, 0x10}},
	} {
		got := tc.f.AppendPixels([]byte{0xAA}, colors)
		if diff := cmp.Diff(got, append([]byte{0xAA}, tc.want...)); diff != "" {
			t.Errorf("%s.AppendPixels() difference (-got +want):\n%s", tc.f, diff)
		}
		if len(got)-1 != tc.f.BufferLen(len(colors)) {
			t.Errorf("%s.AppendPixels() wrote %d bytes, BufferLen says %d", tc.f, len(got)-1, tc.f.BufferLen(len(colors)))
		}
	}
}

func TestPattern(t *testing.T) {
	p := RGB111.pattern(image3bit.Magenta)
	if diff := cmp.Diff(p, pattern{unit: []byte{0x2D}, pixels: 2, tail: []byte{0x28}}, cmp.AllowUnexported(pattern{})); diff != "" {
		t.Errorf("RGB111 pattern difference (-got +want):\n%s", diff)
	}
	p = RGB666.pattern(image18bit.RGB666{R: 0x3F, G: 0x01, B: 0x40})
	if diff := cmp.Diff(p, pattern{unit: []byte{0xFC, 0x04, 0xFC}, pixels: 1}, cmp.AllowUnexported(pattern{})); diff != "" {
		t.Errorf("RGB666 pattern difference (-got +want):\n%s", diff)
	}
}

func TestRGB565(t *testing.T) {
	for _, tc := range []struct {
		in   uint16
		want image18bit.RGB666
	}{
		{0x0000, image18bit.RGB666{}},
		{0xFFFF, image18bit.RGB666{R: 0x3F, G: 0x3F, B: 0x3F}},
		{0x8410, image18bit.RGB666{R: 0x21, G: 0x20, B: 0x21}},
		{0x0821, image18bit.RGB666{R: 0x02, G: 0x01, B: 0x02}},
		{0x8000, image18bit.RGB666{R: 0x21}},
		{0x07E0, image18bit.RGB666{G: 0x3F}},
		{0x5AEB, image18bit.RGB666{R: 0x16, G: 0x17, B: 0x16}},
	} {
		if got := rgb565(tc.in); got != tc.want {
			t.Errorf("rgb565(%#04x) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
