package emulator

import (
	"bytes"
	"image"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// TerminalOpts represents the options available for a Terminal.
type TerminalOpts struct {
	Scale   int              // Pixels per character cell side (default: 1)
	Palette *ansi256.Palette // Default: ansi256.Default
	Output  io.Writer        // Default: stdout

	_ struct{}
}

// Terminal renders images on an ANSI 256 color console.
type Terminal struct {
	w       io.Writer
	scale   int
	palette ansi256.Palette

	buf bytes.Buffer
}

// NewTerminal returns a Terminal. opts can be nil.
func NewTerminal(opts *TerminalOpts) *Terminal {
	if opts == nil {
		opts = &TerminalOpts{}
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	t := &Terminal{w: opts.Output, scale: opts.Scale, palette: *p}
	if t.w == nil {
		t.w = colorable.NewColorableStdout()
	}
	if t.scale < 1 {
		t.scale = 1
	}
	return t
}

// Render draws img from the top left corner of the terminal, sampling one
// pixel per scale×scale block.
func (t *Terminal) Render(img image.Image) error {
	t.buf.Reset()
	_, _ = t.buf.WriteString("\033[H\033[0m")
	r := img.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y += t.scale {
		for x := r.Min.X; x < r.Max.X; x += t.scale {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			_, _ = io.WriteString(&t.buf, t.palette.Block(c))
		}
		_, _ = t.buf.WriteString("\033[0m\n")
	}
	_, err := t.buf.WriteTo(t.w)
	return err
}

// RenderPanel draws what p currently shows.
func (t *Terminal) RenderPanel(p *Panel) error {
	return t.Render(p.Screen())
}
