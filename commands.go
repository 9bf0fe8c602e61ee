package ili9488

import (
	"fmt"
	"time"
)

// Command is an ILI9488 command opcode.
type Command byte

// Commands used by this driver, from the ILI9488 datasheet.
const (
	NOP      Command = 0x00 // No operation
	SWRESET  Command = 0x01 // Software reset
	SLPIN    Command = 0x10 // Sleep in
	SLPOUT   Command = 0x11 // Sleep out
	INVOFF   Command = 0x20 // Display inversion off
	INVON    Command = 0x21 // Display inversion on
	DISPOFF  Command = 0x28 // Display off
	DISPON   Command = 0x29 // Display on
	CASET    Command = 0x2A // Column address set
	PASET    Command = 0x2B // Page address set
	RAMWR    Command = 0x2C // Memory write
	VSCRDEF  Command = 0x33 // Vertical scrolling definition
	MADCTL   Command = 0x36 // Memory access control
	VSCRSADD Command = 0x37 // Vertical scrolling start address
	IDMOFF   Command = 0x38 // Idle mode off
	IDMON    Command = 0x39 // Idle mode on
	COLMOD   Command = 0x3A // Interface pixel format
	WRDISBV  Command = 0x51 // Write display brightness
	WRCABC   Command = 0x55 // Write content adaptive brightness control
	IFMODE   Command = 0xB0 // Interface mode control
	FRMCTR1  Command = 0xB1 // Frame rate control, normal mode
	FRMCTR2  Command = 0xB2 // Frame rate control, idle mode
	INVCTR   Command = 0xB4 // Display inversion control
	DISCTRL  Command = 0xB6 // Display function control
	ETMOD    Command = 0xB7 // Entry mode set
	PWCTRL1  Command = 0xC0 // Power control 1
	PWCTRL2  Command = 0xC1 // Power control 2
	VMCTRL   Command = 0xC5 // VCOM control
	PGAMCTRL Command = 0xE0 // Positive gamma control
	NGAMCTRL Command = 0xE1 // Negative gamma control
	ADJCTRL3 Command = 0xF7 // Adjust control 3
)

var commandNames = map[Command]string{
	NOP: "NOP", SWRESET: "SWRESET", SLPIN: "SLPIN", SLPOUT: "SLPOUT",
	INVOFF: "INVOFF", INVON: "INVON", DISPOFF: "DISPOFF", DISPON: "DISPON",
	CASET: "CASET", PASET: "PASET", RAMWR: "RAMWR", VSCRDEF: "VSCRDEF",
	MADCTL: "MADCTL", VSCRSADD: "VSCRSADD", IDMOFF: "IDMOFF", IDMON: "IDMON",
	COLMOD: "COLMOD", WRDISBV: "WRDISBV", WRCABC: "WRCABC", IFMODE: "IFMODE",
	FRMCTR1: "FRMCTR1", FRMCTR2: "FRMCTR2", INVCTR: "INVCTR", DISCTRL: "DISCTRL",
	ETMOD: "ETMOD", PWCTRL1: "PWCTRL1", PWCTRL2: "PWCTRL2", VMCTRL: "VMCTRL",
	PGAMCTRL: "PGAMCTRL", NGAMCTRL: "NGAMCTRL", ADJCTRL3: "ADJCTRL3",
}

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Command(0x%02X)", byte(c))
}

// MADCTL bits.
const (
	madctlMY  = 0x80 // Row address order
	madctlMX  = 0x40 // Column address order
	madctlMV  = 0x20 // Row/column exchange
	madctlML  = 0x10 // Vertical refresh order
	madctlBGR = 0x08 // Panel is wired BGR
	madctlMH  = 0x04 // Horizontal refresh order
)

// Orientation selects how frame memory maps to the panel.
type Orientation uint8

// Supported orientations. The zero value is Portrait.
const (
	Portrait Orientation = iota
	Landscape
	PortraitFlipped
	LandscapeFlipped
)

// madctl returns the MADCTL parameter byte.
func (o Orientation) madctl() byte {
	switch o {
	case Landscape:
		return madctlMV | madctlBGR
	case PortraitFlipped:
		return madctlMY | madctlBGR
	case LandscapeFlipped:
		return madctlMX | madctlMY | madctlMV | madctlBGR
	default:
		return madctlMX | madctlBGR
	}
}

// Landscape reports whether the orientation swaps width and height.
func (o Orientation) Landscape() bool {
	return o == Landscape || o == LandscapeFlipped
}

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "Portrait"
	case Landscape:
		return "Landscape"
	case PortraitFlipped:
		return "PortraitFlipped"
	case LandscapeFlipped:
		return "LandscapeFlipped"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// AdaptiveBrightness is the content adaptive brightness control mode.
type AdaptiveBrightness byte

// Adaptive brightness modes.
const (
	CABCOff           AdaptiveBrightness = 0x00
	CABCUserInterface AdaptiveBrightness = 0x01
	CABCStillPicture  AdaptiveBrightness = 0x02
	CABCMovingImage   AdaptiveBrightness = 0x03
)

// FrameRate is the FRMCTR frame rate selection, in Hz at Fosc.
type FrameRate byte

// Frame rates.
const (
	FrameRate119 FrameRate = 0x10
	FrameRate112 FrameRate = 0x11
	FrameRate106 FrameRate = 0x12
	FrameRate100 FrameRate = 0x13
	FrameRate95  FrameRate = 0x14
	FrameRate90  FrameRate = 0x15
	FrameRate86  FrameRate = 0x16
	FrameRate83  FrameRate = 0x17
	FrameRate79  FrameRate = 0x18
	FrameRate76  FrameRate = 0x19
	FrameRate73  FrameRate = 0x1A
	FrameRate70  FrameRate = 0x1B
	FrameRate68  FrameRate = 0x1C
	FrameRate65  FrameRate = 0x1D
	FrameRate63  FrameRate = 0x1E
	FrameRate61  FrameRate = 0x1F
)

// ClockDivision is the FRMCTR internal clock division ratio.
type ClockDivision byte

// Clock divisions.
const (
	Fosc     ClockDivision = 0x00
	FoscDiv2 ClockDivision = 0x01
	FoscDiv4 ClockDivision = 0x02
	FoscDiv8 ClockDivision = 0x03
)

// frame is one command with its parameters and the wait required after it.
type frame struct {
	cmd    Command
	params []byte
	delay  time.Duration
}

// Reset timings.
const (
	resetPulse   = 20 * time.Millisecond  // RST held low
	resetWait    = 150 * time.Millisecond // RST high to first command
	swResetWait  = 150 * time.Millisecond // SWRESET to SLPOUT
	sleepOutWait = 120 * time.Millisecond // SLPOUT to DISPON
)

// initSequence returns the bring-up table sent after the hardware reset.
//
// Values from https://github.com/Bodmer/TFT_eSPI/blob/master/TFT_Drivers/ILI9488_Init.h
func initSequence(f PixelFormat, o Orientation, inverted bool) []frame {
	inv := INVOFF
	if inverted {
		inv = INVON
	}
	return []frame{
		{cmd: SWRESET, delay: swResetWait},
		{cmd: PGAMCTRL, params: []byte{
			0x00, 0x03, 0x09, 0x08, 0x16, 0x0A, 0x3F, 0x78,
			0x4C, 0x09, 0x0A, 0x08, 0x16, 0x1A, 0x0F,
		}},
		{cmd: NGAMCTRL, params: []byte{
			0x00, 0x16, 0x19, 0x03, 0x0F, 0x05, 0x32, 0x45,
			0x46, 0x04, 0x0E, 0x0D, 0x35, 0x37, 0x0F,
		}},
		{cmd: PWCTRL1, params: []byte{0x17, 0x15}}, // VREG1OUT 5V, VREG2OUT -4.875V
		{cmd: PWCTRL2, params: []byte{0x41}},       // VGH VCI x6, VGL -VCI x4
		{cmd: VMCTRL, params: []byte{0x00, 0x12, 0x80}},
		{cmd: MADCTL, params: []byte{madctlMX | madctlBGR}},
		{cmd: COLMOD, params: []byte{f.colmod()}},
		{cmd: IFMODE, params: []byte{0x00}},
		{cmd: FRMCTR1, params: []byte{0xA0}},
		{cmd: INVCTR, params: []byte{0x02}}, // 2 dot inversion
		{cmd: DISCTRL, params: []byte{0x02, 0x02, 0x3B}},
		{cmd: ETMOD, params: []byte{0xC6}},
		{cmd: ADJCTRL3, params: []byte{0xA9, 0x51, 0x2C, 0x82}},
		{cmd: inv},
		{cmd: SLPOUT, delay: sleepOutWait},
		{cmd: MADCTL, params: []byte{o.madctl()}},
		{cmd: DISPON},
	}
}
