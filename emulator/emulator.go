// Package emulator implements a software ILI9488 that can be driven by
// ili9488.Dev in place of real hardware.
//
// Panel decodes the command stream into frame memory, so what a driver sent
// can be checked as pixels instead of bytes. Terminal renders the result on
// an ANSI 256 color console.
package emulator

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"periph.io/x/devices/v3/ili9488"
	"periph.io/x/devices/v3/ili9488/image18bit"
	"periph.io/x/devices/v3/ili9488/image3bit"
)

// Frame is one decoded command.
type Frame struct {
	Cmd    ili9488.Command
	Params []byte
	Data   int // bytes written to frame memory, for RAMWR
}

// params is the number of parameter bytes applied for each command. Extra
// bytes are ignored.
var params = map[ili9488.Command]int{
	ili9488.CASET:    4,
	ili9488.PASET:    4,
	ili9488.MADCTL:   1,
	ili9488.COLMOD:   1,
	ili9488.VSCRDEF:  6,
	ili9488.VSCRSADD: 2,
	ili9488.WRDISBV:  1,
	ili9488.WRCABC:   1,
}

const madctlMV = 0x20

// Panel is an emulated ILI9488 with its frame memory.
//
// MADCTL row/column exchange is honored; mirroring and BGR order are not.
// Frame memory is addressed in panel coordinates and Image transposes it for
// the landscape orientations.
type Panel struct {
	// Frames is every command received, in order.
	Frames []Frame
	// Resets counts hardware reset pulses.
	Resets int
	// Waited is the sum of all delays requested.
	Waited time.Duration

	w, h int
	ram  *image18bit.Image

	data bool
	cur  *Frame

	// Registers
	madctl     byte
	colmod     byte
	col, page  [2]int
	on         bool
	asleep     bool
	inverted   bool
	idle       bool
	brightness byte
	scroll     [3]int // top fixed, scroll area, bottom fixed
	vsp        int

	// Memory write cursor
	x, y    int
	partial []byte
}

// NewPanel returns a powered off panel of w×h pixels in portrait
// orientation.
func NewPanel(w, h int) *Panel {
	p := &Panel{
		w:   w,
		h:   h,
		ram: image18bit.NewImage(image.Rect(0, 0, w, h)),
	}
	p.reset()
	return p
}

func (p *Panel) String() string {
	return fmt.Sprintf("emulator.Panel{%dx%d}", p.w, p.h)
}

// reset restores the register defaults. Frame memory is kept.
func (p *Panel) reset() {
	p.madctl = 0
	p.colmod = 0x66
	p.col = [2]int{0, p.w - 1}
	p.page = [2]int{0, p.h - 1}
	p.on = false
	p.asleep = true
	p.inverted = false
	p.idle = false
	p.brightness = 0
	p.scroll = [3]int{0, p.h, 0}
	p.vsp = 0
}

// CommandMode implements ili9488.Transport.
func (p *Panel) CommandMode() error {
	p.data = false
	return nil
}

// DataMode implements ili9488.Transport.
func (p *Panel) DataMode() error {
	p.data = true
	return nil
}

// Write implements ili9488.Transport.
func (p *Panel) Write(b []byte) error {
	if !p.data {
		for _, c := range b {
			p.command(ili9488.Command(c))
		}
		return nil
	}
	if p.cur == nil {
		return fmt.Errorf("emulator: %d data bytes without a command", len(b))
	}
	if p.cur.Cmd == ili9488.RAMWR {
		p.cur.Data += len(b)
		p.memoryWrite(b)
		return nil
	}
	p.cur.Params = append(p.cur.Params, b...)
	if n, ok := params[p.cur.Cmd]; ok && len(p.cur.Params) >= n && len(p.cur.Params)-len(b) < n {
		p.apply(p.cur.Cmd, p.cur.Params[:n])
	}
	return nil
}

// WriteRepeated implements ili9488.RepeatWriter.
func (p *Panel) WriteRepeated(pattern []byte, n int) error {
	for i := 0; i < n; i++ {
		if err := p.Write(pattern); err != nil {
			return err
		}
	}
	return nil
}

// ResetPulse implements ili9488.Transport.
func (p *Panel) ResetPulse(d time.Duration) error {
	p.Resets++
	p.Waited += d
	p.reset()
	return nil
}

// Delay implements ili9488.Transport. It does not sleep.
func (p *Panel) Delay(d time.Duration) {
	p.Waited += d
}

func (p *Panel) command(c ili9488.Command) {
	p.Frames = append(p.Frames, Frame{Cmd: c})
	p.cur = &p.Frames[len(p.Frames)-1]
	switch c {
	case ili9488.SWRESET:
		p.reset()
	case ili9488.SLPIN:
		p.asleep = true
	case ili9488.SLPOUT:
		p.asleep = false
	case ili9488.INVOFF:
		p.inverted = false
	case ili9488.INVON:
		p.inverted = true
	case ili9488.DISPOFF:
		p.on = false
	case ili9488.DISPON:
		p.on = true
	case ili9488.IDMOFF:
		p.idle = false
	case ili9488.IDMON:
		p.idle = true
	case ili9488.RAMWR:
		p.x, p.y = p.col[0], p.page[0]
		p.partial = p.partial[:0]
	}
}

func (p *Panel) apply(c ili9488.Command, b []byte) {
	word := func(i int) int { return int(b[i])<<8 | int(b[i+1]) }
	switch c {
	case ili9488.CASET:
		p.col = [2]int{word(0), word(2)}
	case ili9488.PASET:
		p.page = [2]int{word(0), word(2)}
	case ili9488.MADCTL:
		p.madctl = b[0]
	case ili9488.COLMOD:
		p.colmod = b[0]
	case ili9488.VSCRDEF:
		p.scroll = [3]int{word(0), word(2), word(4)}
	case ili9488.VSCRSADD:
		p.vsp = word(0)
	case ili9488.WRDISBV:
		p.brightness = b[0]
	}
}

func (p *Panel) memoryWrite(b []byte) {
	if p.colmod == 0x01 {
		for _, v := range b {
			p.pixel(image3bit.FromCode(v >> 3))
			p.pixel(image3bit.FromCode(v))
		}
		return
	}
	for _, v := range b {
		p.partial = append(p.partial, v)
		if len(p.partial) == 3 {
			p.pixel(image18bit.FromBytes(p.partial[0], p.partial[1], p.partial[2]))
			p.partial = p.partial[:0]
		}
	}
}

// pixel stores c at the cursor and advances it. Pixels past the end of the
// window are dropped.
func (p *Panel) pixel(c color.Color) {
	if p.y > p.page[1] {
		return
	}
	x, y := p.x, p.y
	if p.madctl&madctlMV != 0 {
		x, y = y, x
	}
	if image.Pt(x, y).In(p.ram.Rect) {
		p.ram.Set(x, y, c)
	}
	if p.x++; p.x > p.col[1] {
		p.x = p.col[0]
		p.y++
	}
}

// Bounds returns the addressable area in the current orientation.
func (p *Panel) Bounds() image.Rectangle {
	if p.madctl&madctlMV != 0 {
		return image.Rect(0, 0, p.h, p.w)
	}
	return image.Rect(0, 0, p.w, p.h)
}

// Image returns a copy of frame memory in the current orientation.
func (p *Panel) Image() *image18bit.Image {
	return p.view(func(row int) int { return row })
}

// Screen returns what the panel shows: frame memory with the vertical scroll
// and inversion applied, or black when the display is off or asleep.
func (p *Panel) Screen() *image18bit.Image {
	if !p.on || p.asleep {
		return image18bit.NewImage(p.Bounds())
	}
	top, area := p.scroll[0], p.scroll[1]
	img := p.view(func(row int) int {
		if area <= 0 || row < top || row >= top+area {
			return row
		}
		m := (row - top + p.vsp - top) % area
		if m < 0 {
			m += area
		}
		return top + m
	})
	if p.inverted {
		for i := range img.Pix {
			img.Pix[i] ^= image18bit.Max << 2
		}
	}
	return img
}

// view copies frame memory, reading panel row src(row) for each row.
func (p *Panel) view(src func(row int) int) *image18bit.Image {
	out := image18bit.NewImage(p.Bounds())
	mv := p.madctl&madctlMV != 0
	for y := 0; y < p.h; y++ {
		sy := src(y)
		for x := 0; x < p.w; x++ {
			c := p.ram.RGB666At(x, sy)
			if mv {
				out.SetRGB666(y, x, c)
			} else {
				out.SetRGB666(x, y, c)
			}
		}
	}
	return out
}

// On reports whether the display output is enabled and awake.
func (p *Panel) On() bool {
	return p.on && !p.asleep
}

// Inverted reports whether display inversion is on.
func (p *Panel) Inverted() bool {
	return p.inverted
}

// Idle reports whether idle mode is on.
func (p *Panel) Idle() bool {
	return p.idle
}

// Brightness returns the last WRDISBV value.
func (p *Panel) Brightness() byte {
	return p.brightness
}

// ColMod returns the interface pixel format register.
func (p *Panel) ColMod() byte {
	return p.colmod
}

// MADCTL returns the memory access control register.
func (p *Panel) MADCTL() byte {
	return p.madctl
}

// ScrollArea returns the VSCRDEF top fixed, scroll and bottom fixed areas.
func (p *Panel) ScrollArea() (top, area, bottom int) {
	return p.scroll[0], p.scroll[1], p.scroll[2]
}

// ScrollStart returns the VSCRSADD line.
func (p *Panel) ScrollStart() int {
	return p.vsp
}

var _ ili9488.Transport = &Panel{}
var _ ili9488.RepeatWriter = &Panel{}
