package image18bit

import (
	"image"
	"image/color"
	"testing"
)

func TestRGB666Bytes(t *testing.T) {
	tests := []struct {
		name string
		c    RGB666
		want [3]byte
	}{
		{"black", RGB666{}, [3]byte{0x00, 0x00, 0x00}},
		{"white", RGB666{Max, Max, Max}, [3]byte{0xFC, 0xFC, 0xFC}},
		{"mixed", RGB666{1, 0x20, 0x3E}, [3]byte{0x04, 0x80, 0xF8}},
		{"saturates", RGB666{0x40, 0xFF, 0x3F}, [3]byte{0xFC, 0xFC, 0xFC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Bytes(); got != tt.want {
				t.Errorf("Bytes() = % X, want % X", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := RGB666{uint8(v), uint8(255 - v), uint8(v / 4)}
		b := c.Bytes()
		got := FromBytes(b[0], b[1], b[2])
		if got != c.Clamp() {
			t.Fatalf("FromBytes(Bytes(%v)) = %v, want %v", c, got, c.Clamp())
		}
		// Out of range input never wraps to a darker value.
		if v > Max && got.R != Max {
			t.Fatalf("R = %d for input %d, want saturation at %d", got.R, v, Max)
		}
	}
}

func TestRGBA(t *testing.T) {
	r, g, b, a := RGB666{Max, 0, 0x20}.RGBA()
	if r != 0xFFFF || g != 0 || b != 0x8208 || a != 0xFFFF {
		t.Errorf("RGBA() = (%x, %x, %x, %x)", r, g, b, a)
	}
}

func TestModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  RGB666
	}{
		{"passthrough", RGB666{1, 2, 3}, RGB666{1, 2, 3}},
		{"black", color.Black, RGB666{}},
		{"white", color.White, RGB666{Max, Max, Max}},
		{"rgba", color.RGBA{0x80, 0x40, 0x03, 0xFF}, RGB666{0x20, 0x10, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Model.Convert(tt.input).(RGB666); got != tt.want {
				t.Errorf("Model.Convert(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestModelError(t *testing.T) {
	// Converting an 8-bit channel and back loses at most one 6-bit step.
	for v := 0; v < 256; v++ {
		in := color.RGBA{uint8(v), uint8(v), uint8(v), 0xFF}
		r, _, _, _ := Model.Convert(in).RGBA()
		want := uint32(v) * 0x101
		diff := int(want) - int(r)
		if diff < 0 {
			diff = -diff
		}
		if diff > 0xFFFF/Max {
			t.Fatalf("channel %d: got %x, want %x within one step", v, r, want)
		}
	}
}

func TestImage(t *testing.T) {
	img := NewImage(image.Rect(10, 10, 13, 12))
	if img.Stride != 9 || len(img.Pix) != 18 {
		t.Fatalf("Stride = %d, len(Pix) = %d, want 9, 18", img.Stride, len(img.Pix))
	}

	img.SetRGB666(11, 10, RGB666{0x3F, 0x01, 0x10})
	if got := img.Pix[3:6]; got[0] != 0xFC || got[1] != 0x04 || got[2] != 0x40 {
		t.Errorf("Pix[3:6] = % X, want FC 04 40", got)
	}
	if got := img.RGB666At(11, 10); got != (RGB666{0x3F, 0x01, 0x10}) {
		t.Errorf("RGB666At(11, 10) = %v", got)
	}

	img.Set(12, 11, color.White)
	if got, ok := img.At(12, 11).(RGB666); !ok || got != (RGB666{Max, Max, Max}) {
		t.Errorf("At(12, 11) = %v, want white", got)
	}

	img.SetRGB666(0, 0, RGB666{Max, Max, Max})
	if got := img.RGB666At(0, 0); got != (RGB666{}) {
		t.Errorf("out of bounds RGB666At = %v", got)
	}
	if img.ColorModel() != Model {
		t.Error("ColorModel() did not return Model")
	}
}
