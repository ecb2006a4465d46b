package tile

import "fmt"

// Color is an 8-bit per channel palette entry.
type Color struct {
	R, G, B byte
}

// Grayscale returns n evenly spaced shades from black to white.
func Grayscale(n int) []Color {
	pal := make([]Color, n)
	for i := range pal {
		v := byte(0)
		if n > 1 {
			v = byte(i * 255 / (n - 1))
		}
		pal[i] = Color{v, v, v}
	}
	return pal
}

// LoadPalette reads n BGR555 colours (little-endian words, as in CGRAM)
// starting at offset in data.
func LoadPalette(data []byte, offset, n int) ([]Color, error) {
	if offset < 0 || n < 0 || offset+2*n > len(data) {
		return nil, fmt.Errorf("%w: %d colours at 0x%X, have 0x%X bytes", ErrShortPalette, n, offset, len(data))
	}

	pal := make([]Color, n)
	for i := range pal {
		w := uint16(data[offset+2*i]) | uint16(data[offset+2*i+1])<<8
		pal[i] = Color{
			R: expand5(w),
			G: expand5(w >> 5),
			B: expand5(w >> 10),
		}
	}
	return pal, nil
}

// expand5 scales the low five bits of v to eight bits.
func expand5(v uint16) byte {
	c := byte(v & 0x1F)
	return c<<3 | c>>2
}
