package ili9488

import "image/color"

// pattern is the precomputed wire encoding of a single color.
type pattern struct {
	unit   []byte // repeated for every group of pixels
	pixels int    // pixels covered by unit
	tail   []byte // sent when the area is not a multiple of pixels
}

func (f PixelFormat) pattern(c color.Color) pattern {
	if f == RGB111 {
		k := encodeRGB111(c)
		return pattern{unit: []byte{k<<3 | k}, pixels: 2, tail: []byte{k << 3}}
	}
	b := encodeRGB666(c)
	return pattern{unit: b[:], pixels: 1}
}

// fillRAM streams n pixels of p. The controller must already be in a memory
// write.
func (d *Dev) fillRAM(p pattern, n int) error {
	if err := d.writeRepeated(p.unit, n/p.pixels); err != nil {
		return err
	}
	if n%p.pixels != 0 {
		return d.write(RAMWR, p.tail)
	}
	return nil
}

// writeRepeated sends unit n times, through RepeatWriter when the transport
// has it.
func (d *Dev) writeRepeated(unit []byte, n int) error {
	if n == 0 {
		return nil
	}
	if rw, ok := d.t.(RepeatWriter); ok {
		if err := rw.WriteRepeated(unit, n); err != nil {
			return &TransportError{Op: RAMWR.String(), Err: err}
		}
		return nil
	}
	per := max(1, chunkSize/len(unit))
	buf := d.buf[:0]
	for i := 0; i < min(per, n); i++ {
		buf = append(buf, unit...)
	}
	d.buf = buf
	for n > 0 {
		k := min(per, n)
		if err := d.write(RAMWR, buf[:k*len(unit)]); err != nil {
			return err
		}
		n -= k
	}
	return nil
}
