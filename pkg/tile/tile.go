// Package tile renders SNES planar tile data as indexed images.
//
// An 8x8 tile stores one bitplane pair per row: bytes 2y and 2y+1 hold planes
// 0 and 1 of row y, the next 16 bytes planes 2 and 3, and so on. Bit 7 of a
// plane byte is the leftmost pixel.
package tile

import "fmt"

const (
	Size       = 8  // tile width and height in pixels
	planeBlock = 16 // bytes per bitplane pair
)

// Sheet is a grid of decoded tiles. Pix holds one palette index per pixel,
// row-major, top row first.
type Sheet struct {
	Width  int
	Height int
	Depth  int
	Tiles  int
	Pix    []byte
}

// BytesPerTile returns the size of one tile at bpp bits per pixel.
func BytesPerTile(bpp int) int {
	return bpp * Size
}

// Decode lays out every complete tile in data, columns tiles per row.
// Bytes after the last complete tile are ignored.
func Decode(data []byte, bpp, columns int) (*Sheet, error) {
	if bpp != 2 && bpp != 4 && bpp != 8 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, bpp)
	}
	if columns <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidColumns, columns)
	}

	count := len(data) / BytesPerTile(bpp)
	rows := (count + columns - 1) / columns
	s := &Sheet{
		Width:  columns * Size,
		Height: rows * Size,
		Depth:  bpp,
		Tiles:  count,
	}
	s.Pix = make([]byte, s.Width*s.Height)

	for n := 0; n < count; n++ {
		t := data[n*BytesPerTile(bpp):]
		ox := (n % columns) * Size
		oy := (n / columns) * Size
		for y := 0; y < Size; y++ {
			row := s.Pix[(oy+y)*s.Width+ox:]
			for x := 0; x < Size; x++ {
				row[x] = pixel(t, bpp, x, y)
			}
		}
	}

	return s, nil
}

// pixel gathers the bit of (x, y) from every plane of tile t.
func pixel(t []byte, bpp, x, y int) byte {
	var v byte
	shift := 7 - x
	for p := 0; p < bpp; p++ {
		b := t[(p/2)*planeBlock+2*y+p%2]
		v |= (b >> shift & 1) << p
	}
	return v
}
