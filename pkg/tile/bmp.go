package tile

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// BitmapFileHeader is the Windows BMP file header (14 bytes).
type BitmapFileHeader struct {
	Type       uint16 // "BM" = 0x4D42
	Size       uint32 // File size
	Reserved1  uint16
	Reserved2  uint16
	OffsetBits uint32 // Offset to pixel data
}

// BitmapInfoHeader is the Windows BMP info header (40 bytes).
type BitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

// RGBQuad represents a color in the palette (4 bytes).
type RGBQuad struct {
	Blue     byte
	Green    byte
	Red      byte
	Reserved byte
}

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	maxColors      = 256
)

// WriteBMP writes the sheet as an 8-bit paletted, bottom-up BMP.
// Indices beyond the palette show up as black.
func (s *Sheet) WriteBMP(w io.Writer, palette []Color) error {
	if len(palette) > maxColors {
		palette = palette[:maxColors]
	}

	stride := (s.Width + 3) &^ 3
	paletteSize := len(palette) * 4
	dataSize := stride * s.Height

	bmf := BitmapFileHeader{
		Type:       0x4D42, // "BM"
		OffsetBits: uint32(fileHeaderSize + infoHeaderSize + paletteSize),
	}
	bmf.Size = bmf.OffsetBits + uint32(dataSize)

	bmi := BitmapInfoHeader{
		Size:      infoHeaderSize,
		Width:     int32(s.Width),
		Height:    int32(s.Height),
		Planes:    1,
		BitCount:  8,
		SizeImage: uint32(dataSize),
		ClrUsed:   uint32(len(palette)),
	}

	if err := binary.Write(w, binary.LittleEndian, &bmf); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, &bmi); err != nil {
		return err
	}

	for _, c := range palette {
		q := RGBQuad{Blue: c.B, Green: c.G, Red: c.R}
		if err := binary.Write(w, binary.LittleEndian, &q); err != nil {
			return err
		}
	}

	// BMP rows run bottom to top, each padded to 4 bytes
	row := make([]byte, stride)
	for y := s.Height - 1; y >= 0; y-- {
		copy(row, s.Pix[y*s.Width:(y+1)*s.Width])
		if _, err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// WriteBMPFile writes the sheet as a BMP file to disk.
func (s *Sheet) WriteBMPFile(path string, palette []Color) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create BMP file: %w", err)
	}
	defer f.Close()

	if err := s.WriteBMP(f, palette); err != nil {
		return fmt.Errorf("failed to write BMP file: %w", err)
	}
	return f.Close()
}
