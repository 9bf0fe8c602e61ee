package ili9488

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// Transport is the bus the controller is driven through.
//
// CommandMode and DataMode select how the bytes of following Write calls are
// interpreted: command opcodes or parameters and pixel data. Every call
// completes before returning.
type Transport interface {
	CommandMode() error
	DataMode() error
	Write(p []byte) error
	// ResetPulse holds the hardware reset line low for d. It is a no-op when
	// there is no reset line.
	ResetPulse(d time.Duration) error
	Delay(d time.Duration)
}

// RepeatWriter is implemented by a Transport that can send the same pattern
// many times without Dev building the repeated bytes.
type RepeatWriter interface {
	WriteRepeated(pattern []byte, n int) error
}

// SPITransport drives the controller over 4-wire SPI with a data/command pin.
type SPITransport struct {
	c     spi.Conn
	dc    gpio.PinOut
	rst   gpio.PinOut
	maxTx int
}

// NewSPITransport returns a Transport over c. rst may be nil.
func NewSPITransport(c spi.Conn, dc, rst gpio.PinOut) *SPITransport {
	s := &SPITransport{c: c, dc: dc, rst: rst}
	if l, ok := c.(conn.Limits); ok {
		s.maxTx = l.MaxTxSize()
	}
	return s
}

func (s *SPITransport) String() string {
	return fmt.Sprintf("%s, dc=%s", s.c, s.dc)
}

// CommandMode pulls DC low.
func (s *SPITransport) CommandMode() error {
	if err := s.dc.Out(gpio.Low); err != nil {
		return fmt.Errorf("failed to pull DC low: %w", err)
	}
	return nil
}

// DataMode pulls DC high.
func (s *SPITransport) DataMode() error {
	if err := s.dc.Out(gpio.High); err != nil {
		return fmt.Errorf("failed to pull DC high: %w", err)
	}
	return nil
}

// Write sends p, split into transactions no larger than the port allows.
func (s *SPITransport) Write(p []byte) error {
	for len(p) > 0 {
		n := len(p)
		if s.maxTx > 0 && n > s.maxTx {
			n = s.maxTx
		}
		if err := s.c.Tx(p[:n], nil); err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}

// ResetPulse pulses RST low for d, then leaves it high.
func (s *SPITransport) ResetPulse(d time.Duration) error {
	if s.rst == nil || s.rst == gpio.INVALID {
		return nil
	}
	if err := s.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("failed to pull RST high: %w", err)
	}
	time.Sleep(5 * time.Millisecond)
	if err := s.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("failed to pull RST low: %w", err)
	}
	time.Sleep(d)
	if err := s.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("failed to pull RST high: %w", err)
	}
	return nil
}

// Delay sleeps for d.
func (s *SPITransport) Delay(d time.Duration) {
	time.Sleep(d)
}

var _ Transport = &SPITransport{}
