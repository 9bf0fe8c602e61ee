// Package ili9488 controls an ILI9488 TFT LCD controller via SPI.
//
// The ILI9488 drives panels of up to 320×480 pixels. Over 4-wire SPI it only
// accepts 18 bpp (RGB666, 3 bytes per pixel) and 3 bpp (RGB111, 2 pixels per
// byte) pixel data. This driver implements the display.Drawer interface from
// periph.io.
//
// # Hardware Connection
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCK         → SPI Clock (SCLK)
//	SDI/MOSI    → SPI Data (MOSI)
//	DC/RS       → GPIO (any available pin)
//	CS          → SPI Chip Select
//	RESET       → Optional: GPIO for hardware reset
//	LED         → Optional: GPIO for the backlight
//
// # Basic Usage
//
//	if _, err := host.Init(); err != nil {
//		log.Fatal(err)
//	}
//	p, err := spireg.Open("")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//
//	dev, err := ili9488.NewSPI(p, gpioreg.ByName("GPIO24"), &ili9488.Opts{
//		RST:         gpioreg.ByName("GPIO25"),
//		Orientation: ili9488.Landscape,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer dev.Halt()
//
//	dev.Fill(dev.Bounds(), color.Black)
//	dev.Fill(image.Rect(10, 10, 110, 60), color.RGBA{R: 255, A: 255})
//
// # Pixel Formats
//
// The format is chosen once in Opts. RGB666 keeps 6 bits per channel, RGB111
// keeps one and cuts the bytes sent per frame by six. Draw accepts any
// image.Image; an image18bit.Image or image3bit.Packed matching the format is
// sent without conversion.
//
// Fill encodes the color once and repeats it, so clearing the whole panel
// costs no per pixel work on the host.
//
// # Orientation
//
// Bounds are expressed in the current orientation: 320×480 in portrait and
// 480×320 in landscape.
//
// # Vertical Scrolling
//
//	dev.SetScrollArea(40, 400) // 40 fixed lines on top and bottom
//	dev.Scroll(1)              // move the area content by one line
//
// # Transports
//
// Dev talks to the controller through a Transport. NewSPI wires an
// SPITransport on a periph.io spi.Port; New accepts any other implementation,
// such as the software panel in the emulator package.
//
// # Datasheet
//
// https://www.hpinfotech.ro/ILI9488.pdf
package ili9488
