package ili9488

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/ili9488/image18bit"
	"periph.io/x/devices/v3/ili9488/image3bit"
)

// Native panel size.
const (
	Width  = 320
	Height = 480
)

// chunkSize bounds the encode buffer used when streaming pixels.
const chunkSize = 4096

// DefaultFrequency is the SPI clock used by NewSPI when Opts.Frequency is 0.
const DefaultFrequency = 20 * physic.MegaHertz

// Opts is the configuration for the ILI9488 display.
type Opts struct {
	// Panel dimensions in portrait orientation
	W int // Width (default: 320, ≤320)
	H int // Height (default: 480, ≤480)

	Format      PixelFormat // Wire pixel format (default: RGB666)
	Orientation Orientation // Applied at the end of Init
	Inverted    bool        // Send INVON instead of INVOFF, for IPS panels

	// Optional pins
	RST       gpio.PinOut // Hardware reset, used by NewSPI
	Backlight gpio.PinOut // Switched on by Init and off by Halt

	// SPI clock used by NewSPI (default: DefaultFrequency)
	Frequency physic.Frequency
}

// Dev is the device handle for the ILI9488 display.
type Dev struct {
	// Communication
	t  Transport
	bl gpio.PinOut

	// Pixel encoding, fixed at construction
	format PixelFormat
	encode encoder
	step   int // pixels encoded per Write

	// Display geometry
	w, h   int // portrait size
	orient Orientation
	rect   image.Rectangle // bounds in the current orientation

	inverted bool
	scroll   scroller
	buf      []byte
}

// scroller is the vertical scroll state.
type scroller struct {
	defined     bool
	top, height int
	offset      int // current VSCRSADD line
}

// New returns a Dev driving the controller through t and initializes it.
//
// opts can be nil to use defaults (320x480, RGB666, portrait).
func New(t Transport, opts *Opts) (*Dev, error) {
	if t == nil {
		return nil, errors.New("ili9488: transport is required")
	}
	o := Opts{}
	if opts != nil {
		o = *opts
	}
	if o.W == 0 {
		o.W = Width
	}
	if o.H == 0 {
		o.H = Height
	}
	if o.W < 1 || o.W > Width {
		return nil, fmt.Errorf("ili9488: width must be between 1 and %d", Width)
	}
	if o.H < 1 || o.H > Height {
		return nil, fmt.Errorf("ili9488: height must be between 1 and %d", Height)
	}
	if !o.Format.valid() {
		return nil, fmt.Errorf("ili9488: unsupported pixel format %s", o.Format)
	}
	if o.Orientation > LandscapeFlipped {
		return nil, fmt.Errorf("ili9488: unsupported orientation %s", o.Orientation)
	}

	bytes, pixels := o.Format.unit()
	d := &Dev{
		t:        t,
		bl:       o.Backlight,
		format:   o.Format,
		encode:   o.Format.encoder(),
		step:     chunkSize / bytes * pixels,
		w:        o.W,
		h:        o.H,
		orient:   o.Orientation,
		inverted: o.Inverted,
		buf:      make([]byte, 0, chunkSize),
	}
	d.rect = d.bounds(d.orient)

	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// NewSPI returns a Dev connected via SPI.
//
// The SPI port is configured for Mode0, 8-bit transfers at opts.Frequency.
// The dc (Data/Command) GPIO pin must be provided.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil || dc == gpio.INVALID {
		return nil, errors.New("ili9488: dc pin is required")
	}
	if opts == nil {
		opts = &Opts{}
	}
	f := opts.Frequency
	if f == 0 {
		f = DefaultFrequency
	}
	c, err := p.Connect(f, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ili9488: %w", err)
	}
	return New(NewSPITransport(c, dc, opts.RST), opts)
}

// Init resets the controller and sends the bring-up sequence, leaving the
// display on in the current orientation.
//
// It can be called again to recover after a TransportError. The scroll area
// is cleared by the software reset.
func (d *Dev) Init() error {
	if err := d.command(NOP); err != nil {
		return err
	}
	if err := d.t.ResetPulse(resetPulse); err != nil {
		return &TransportError{Op: "reset", Err: err}
	}
	d.t.Delay(resetWait)
	for _, f := range initSequence(d.format, d.orient, d.inverted) {
		if err := d.command(f.cmd, f.params...); err != nil {
			return err
		}
		if f.delay > 0 {
			d.t.Delay(f.delay)
		}
	}
	d.scroll = scroller{}
	return d.SetBacklight(true)
}

// command sends op followed by its parameters.
func (d *Dev) command(op Command, params ...byte) error {
	if err := d.t.CommandMode(); err != nil {
		return &TransportError{Op: op.String(), Err: err}
	}
	if err := d.t.Write([]byte{byte(op)}); err != nil {
		return &TransportError{Op: op.String(), Err: err}
	}
	if len(params) == 0 {
		return nil
	}
	if err := d.t.DataMode(); err != nil {
		return &TransportError{Op: op.String(), Err: err}
	}
	return d.write(op, params)
}

// write sends data bytes belonging to op. The transport must be in data mode.
func (d *Dev) write(op Command, p []byte) error {
	if err := d.t.Write(p); err != nil {
		return &TransportError{Op: op.String(), Err: err}
	}
	return nil
}

// startRAM opens a memory write and switches to data mode.
func (d *Dev) startRAM() error {
	if err := d.command(RAMWR); err != nil {
		return err
	}
	if err := d.t.DataMode(); err != nil {
		return &TransportError{Op: RAMWR.String(), Err: err}
	}
	return nil
}

func (d *Dev) bounds(o Orientation) image.Rectangle {
	if o.Landscape() {
		return image.Rect(0, 0, d.h, d.w)
	}
	return image.Rect(0, 0, d.w, d.h)
}

// Orientation returns the orientation last set successfully.
func (d *Dev) Orientation() Orientation {
	return d.orient
}

// SetOrientation sends MADCTL for o. The bounds swap width and height for
// the landscape orientations.
func (d *Dev) SetOrientation(o Orientation) error {
	if o > LandscapeFlipped {
		return fmt.Errorf("ili9488: unsupported orientation %s", o)
	}
	if err := d.command(MADCTL, o.madctl()); err != nil {
		return err
	}
	d.orient = o
	d.rect = d.bounds(o)
	return nil
}

func (d *Dev) checkRect(r image.Rectangle) error {
	if r.Empty() || !r.In(d.rect) {
		return fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, r, d.rect)
	}
	return nil
}

// SetWindow sets the frame memory area written by the next memory write.
func (d *Dev) SetWindow(r image.Rectangle) error {
	if err := d.checkRect(r); err != nil {
		return err
	}
	return d.setWindow(r)
}

func (d *Dev) setWindow(r image.Rectangle) error {
	x0, x1 := r.Min.X, r.Max.X-1
	y0, y1 := r.Min.Y, r.Max.Y-1
	if err := d.command(CASET, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1)); err != nil {
		return err
	}
	return d.command(PASET, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1))
}

// WritePixels writes colors row by row into r.
//
// len(colors) must equal the area of r. Colors are converted with the
// display color model, saturating out of range channels.
func (d *Dev) WritePixels(r image.Rectangle, colors []color.Color) error {
	if err := d.checkRect(r); err != nil {
		return err
	}
	if n := r.Dx() * r.Dy(); len(colors) != n {
		return fmt.Errorf("%w: got %d colors for %d pixels", ErrLengthMismatch, len(colors), n)
	}
	if err := d.setWindow(r); err != nil {
		return err
	}
	if err := d.startRAM(); err != nil {
		return err
	}
	for len(colors) > 0 {
		n := min(d.step, len(colors))
		d.buf = d.encode(d.buf[:0], colors[:n])
		if err := d.write(RAMWR, d.buf); err != nil {
			return err
		}
		colors = colors[n:]
	}
	return nil
}

// Fill sets every pixel of r to c.
//
// The color is encoded once and repeated, so no per pixel work is done.
func (d *Dev) Fill(r image.Rectangle, c color.Color) error {
	if err := d.checkRect(r); err != nil {
		return err
	}
	if err := d.setWindow(r); err != nil {
		return err
	}
	if err := d.startRAM(); err != nil {
		return err
	}
	return d.fillRAM(d.format.pattern(c), r.Dx()*r.Dy())
}

// DrawPixel sets a single pixel.
func (d *Dev) DrawPixel(x, y int, c color.Color) error {
	return d.Fill(image.Rect(x, y, x+1, y+1), c)
}

// WriteRGB565 writes RGB565 pixels row by row into r.
func (d *Dev) WriteRGB565(r image.Rectangle, pix []uint16) error {
	if err := d.checkRect(r); err != nil {
		return err
	}
	colors := make([]color.Color, len(pix))
	for i, p := range pix {
		colors[i] = rgb565(p)
	}
	return d.WritePixels(r, colors)
}

// SetScrollArea defines the vertical scroll area as height lines starting at
// top, in frame memory lines. The remaining lines form the fixed top and
// bottom areas.
//
// The three areas always add up to the controller's 480 lines, so with a
// smaller Opts.H the bottom fixed area includes the lines past the panel.
func (d *Dev) SetScrollArea(top, height int) error {
	if top < 0 || height < 1 || top+height > Height {
		return fmt.Errorf("%w: scroll area %d+%d not in 0-%d", ErrOutOfBounds, top, height, Height)
	}
	bottom := Height - top - height
	if err := d.command(VSCRDEF,
		byte(top>>8), byte(top),
		byte(height>>8), byte(height),
		byte(bottom>>8), byte(bottom),
	); err != nil {
		return err
	}
	d.scroll = scroller{defined: true, top: top, height: height, offset: top}
	return nil
}

// ScrollTo shows frame memory line as the first line of the scroll area.
func (d *Dev) ScrollTo(line int) error {
	if !d.scroll.defined {
		return ErrNoScrollArea
	}
	if line < d.scroll.top || line >= d.scroll.top+d.scroll.height {
		return fmt.Errorf("%w: line %d not in scroll area", ErrOutOfBounds, line)
	}
	if err := d.command(VSCRSADD, byte(line>>8), byte(line)); err != nil {
		return err
	}
	d.scroll.offset = line
	return nil
}

// Scroll moves the scroll area content by lines, wrapping around. Negative
// values scroll the other way.
func (d *Dev) Scroll(lines int) error {
	if !d.scroll.defined {
		return ErrNoScrollArea
	}
	s := d.scroll
	rel := (s.offset - s.top + lines) % s.height
	if rel < 0 {
		rel += s.height
	}
	return d.ScrollTo(s.top + rel)
}

// Invert switches display inversion.
func (d *Dev) Invert(invert bool) error {
	op := INVOFF
	if invert {
		op = INVON
	}
	if err := d.command(op); err != nil {
		return err
	}
	d.inverted = invert
	return nil
}

// Sleep enters or leaves sleep mode.
func (d *Dev) Sleep(sleep bool) error {
	if sleep {
		return d.command(SLPIN)
	}
	if err := d.command(SLPOUT); err != nil {
		return err
	}
	d.t.Delay(sleepOutWait)
	return nil
}

// Idle enters or leaves idle mode, where only 8 colors are shown.
func (d *Dev) Idle(idle bool) error {
	if idle {
		return d.command(IDMON)
	}
	return d.command(IDMOFF)
}

// SetBrightness sets the display brightness value.
func (d *Dev) SetBrightness(v byte) error {
	return d.command(WRDISBV, v)
}

// SetAdaptiveBrightness selects the content adaptive brightness mode.
func (d *Dev) SetAdaptiveBrightness(m AdaptiveBrightness) error {
	return d.command(WRCABC, byte(m))
}

// SetFrameRate sets the frame rate used in normal mode.
func (d *Dev) SetFrameRate(div ClockDivision, rate FrameRate) error {
	return d.command(FRMCTR1, byte(div), byte(rate))
}

// SetIdleFrameRate sets the frame rate used in idle mode.
func (d *Dev) SetIdleFrameRate(div ClockDivision, rate FrameRate) error {
	return d.command(FRMCTR2, byte(div), byte(rate))
}

// SetBacklight switches the backlight pin, if any.
func (d *Dev) SetBacklight(on bool) error {
	if d.bl == nil || d.bl == gpio.INVALID {
		return nil
	}
	if err := d.bl.Out(gpio.Level(on)); err != nil {
		return fmt.Errorf("ili9488: failed to set backlight: %w", err)
	}
	return nil
}

// Halt turns the display and the backlight off.
//
// The device stays usable. SetDisplay(true) or Init turns it back on.
func (d *Dev) Halt() error {
	if err := d.SetDisplay(false); err != nil {
		return err
	}
	return d.SetBacklight(false)
}

// SetDisplay turns the display output on or off. Frame memory is kept.
func (d *Dev) SetDisplay(on bool) error {
	if on {
		return d.command(DISPON)
	}
	return d.command(DISPOFF)
}

// ColorModel returns the color model of the wire format.
func (d *Dev) ColorModel() color.Model {
	return d.format.ColorModel()
}

// Bounds returns the display bounds in the current orientation.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Format returns the wire pixel format.
func (d *Dev) Format() PixelFormat {
	return d.format
}

// Draw draws src onto the display, aligning sp with r.Min.
//
// An *image18bit.Image or *image3bit.Packed matching the wire format and
// covering r exactly is sent as is.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	orig := r
	r = r.Intersect(d.rect)
	if r.Empty() {
		return nil
	}
	sp = sp.Add(r.Min.Sub(orig.Min))
	if pix, ok := d.wirePixels(r, src, sp); ok {
		if err := d.setWindow(r); err != nil {
			return err
		}
		if err := d.startRAM(); err != nil {
			return err
		}
		return d.write(RAMWR, pix)
	}
	colors := make([]color.Color, 0, r.Dx()*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			colors = append(colors, src.At(x-r.Min.X+sp.X, y-r.Min.Y+sp.Y))
		}
	}
	return d.WritePixels(r, colors)
}

// wirePixels returns the pixel buffer of src when it can be sent unchanged.
func (d *Dev) wirePixels(r image.Rectangle, src image.Image, sp image.Point) ([]byte, bool) {
	sr := r.Sub(r.Min).Add(sp)
	switch img := src.(type) {
	case *image18bit.Image:
		if d.format == RGB666 && img.Rect == sr && img.Stride == 3*sr.Dx() {
			return img.Pix[:img.Stride*sr.Dy()], true
		}
	case *image3bit.Packed:
		if d.format == RGB111 && img.Rect == sr && img.Stride*2 == sr.Dx() {
			return img.Pix[:img.Stride*sr.Dy()], true
		}
	}
	return nil, false
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ili9488.Dev{%dx%d, %s}", d.rect.Dx(), d.rect.Dy(), d.format)
}

var _ display.Drawer = &Dev{}
