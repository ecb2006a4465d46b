// Package sunlz implements the LZSS variant Sunsoft used to compress graphics
// in Super Nintendo titles such as Sugoi Hebereke and Pirates of Dark Water.
//
// A stream is a 16-bit size header followed by groups of one control byte and
// up to eight payload units. Bit i of the control byte (least significant
// first) selects a literal byte (1) or a two-byte back-reference (0) into a
// 4 KiB ring buffer that starts zero-filled with its cursor at 0xFEE.
package sunlz

import (
	"encoding/binary"
	"fmt"
)

const (
	headerSize = 2 // u16 compressed size
	refSize    = 2 // back-reference descriptor
	flagBits   = 8 // decisions per control byte
	maxPayload = 0xFFFF
)

// Format describes the constants of one LZSS format family member.
type Format struct {
	Name         string
	WindowSize   int              // ring buffer capacity, power of two
	SeedValue    byte             // initial window contents
	SeedOffset   int              // initial window cursor
	MinLength    int              // shortest back-reference, stored as length-MinLength
	LengthBits   uint             // bits of the descriptor's high byte holding the length
	DistanceBits uint             // bits holding the window position
	Lookahead    int              // extra probe length on top of MinLength
	HeaderOrder  binary.ByteOrder // byte order of the size header
}

// Sunsoft is the format found in Sunsoft SNES cartridges.
var Sunsoft = Format{
	Name:         "sunsoft",
	WindowSize:   0x1000,
	SeedValue:    0x00,
	SeedOffset:   0xFEE,
	MinLength:    3,
	LengthBits:   4,
	DistanceBits: 12,
	Lookahead:    0x0F,
	HeaderOrder:  binary.LittleEndian,
}

// MaxLength returns the longest back-reference the descriptor can hold.
func (f Format) MaxLength() int {
	return f.MinLength + (1 << f.LengthBits) - 1
}

// probeLimit is the longest probe the match finder tries.
func (f Format) probeLimit() int {
	return f.Lookahead + f.MinLength
}

// Validate checks that the constants describe a usable format.
func (f Format) Validate() error {
	switch {
	case f.WindowSize <= 0 || f.WindowSize&(f.WindowSize-1) != 0:
		return fmt.Errorf("%w: window size %d is not a power of two", ErrInvalidFormat, f.WindowSize)
	case f.SeedOffset < 0 || f.SeedOffset >= f.WindowSize:
		return fmt.Errorf("%w: seed offset 0x%X outside window", ErrInvalidFormat, f.SeedOffset)
	case f.LengthBits == 0 || f.LengthBits > 7:
		return fmt.Errorf("%w: %d length bits", ErrInvalidFormat, f.LengthBits)
	case f.LengthBits+f.DistanceBits != 8*refSize:
		return fmt.Errorf("%w: descriptor must be %d bits, got %d", ErrInvalidFormat, 8*refSize, f.LengthBits+f.DistanceBits)
	case 1<<f.DistanceBits != f.WindowSize:
		return fmt.Errorf("%w: %d distance bits cannot address a 0x%X byte window", ErrInvalidFormat, f.DistanceBits, f.WindowSize)
	case f.MinLength < 1:
		return fmt.Errorf("%w: minimum length %d", ErrInvalidFormat, f.MinLength)
	case f.Lookahead < 0 || f.probeLimit() > f.MaxLength():
		return fmt.Errorf("%w: lookahead %d exceeds maximum length %d", ErrInvalidFormat, f.Lookahead, f.MaxLength())
	case f.HeaderOrder == nil:
		return fmt.Errorf("%w: missing header byte order", ErrInvalidFormat)
	}
	return nil
}

// encodeRef packs a back-reference into its two descriptor bytes:
// the low byte of the position, then the high position bits above the length.
func (f Format) encodeRef(distance, length int) (lo, hi byte) {
	lo = byte(distance)
	hi = byte((distance>>8)<<f.LengthBits | (length - f.MinLength))
	return lo, hi
}

// decodeRef is the inverse of encodeRef.
func (f Format) decodeRef(lo, hi byte) (distance, length int) {
	lengthMask := byte(1<<f.LengthBits - 1)
	distance = int(lo) | int(hi>>f.LengthBits)<<8
	length = int(hi&lengthMask) + f.MinLength
	return distance, length
}

// newWindow returns a freshly seeded window. The format must be valid.
func (f Format) newWindow() *Window {
	w, err := NewWindow(f.WindowSize, f.SeedValue, f.SeedOffset)
	if err != nil {
		panic(err)
	}
	return w
}
