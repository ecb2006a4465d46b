// Package rom provides cursor-based random access to cartridge images.
package rom

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"

	"github.com/sunlz/pkg/tbl"
)

// Encoding selects how ReadString interprets raw bytes.
type Encoding string

const (
	ASCII Encoding = "ascii"
	SJIS  Encoding = "sjis"
	UTF8  Encoding = "utf8"
	UTF16 Encoding = "utf16" // big-endian, two bytes per character
)

// ParseEncoding maps a user supplied name to an Encoding.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "")) {
	case "ascii":
		return ASCII, nil
	case "sjis", "shiftjis":
		return SJIS, nil
	case "utf8":
		return UTF8, nil
	case "utf16", "utf16be":
		return UTF16, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
}

// Image is an in-memory cartridge image with a read cursor.
// Multi-byte reads use the configured byte order, little-endian by default.
type Image struct {
	Path  string
	data  []byte
	pos   int
	order binary.ByteOrder
}

// New wraps data. The slice is not copied.
func New(data []byte) *Image {
	return &Image{data: data, order: binary.LittleEndian}
}

// Open reads the whole image at path.
func Open(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	im := New(data)
	im.Path = path
	return im, nil
}

// Bytes returns the underlying image data.
func (im *Image) Bytes() []byte { return im.data }

// Size returns the image length in bytes.
func (im *Image) Size() int { return len(im.data) }

// Offset returns the cursor position.
func (im *Image) Offset() int { return im.pos }

// SetOrder changes the byte order of Read16 and Read32.
func (im *Image) SetOrder(order binary.ByteOrder) { im.order = order }

// Seek moves the cursor. Seeking to Size is allowed; reads there fail.
func (im *Image) Seek(offset int) error {
	if offset < 0 || offset > len(im.data) {
		return fmt.Errorf("%w: 0x%X, image is 0x%X bytes", ErrOffsetOutOfRange, offset, len(im.data))
	}
	im.pos = offset
	return nil
}

// next returns the following n bytes and advances the cursor.
func (im *Image) next(n int) ([]byte, error) {
	if n < 0 || n > len(im.data)-im.pos {
		return nil, fmt.Errorf("reading %d bytes at 0x%X: %w", n, im.pos, io.ErrUnexpectedEOF)
	}
	b := im.data[im.pos : im.pos+n]
	im.pos += n
	return b, nil
}

func (im *Image) Read8() (uint8, error) {
	b, err := im.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (im *Image) Read16() (uint16, error) {
	b, err := im.next(2)
	if err != nil {
		return 0, err
	}
	return im.order.Uint16(b), nil
}

func (im *Image) Read32() (uint32, error) {
	b, err := im.next(4)
	if err != nil {
		return 0, err
	}
	return im.order.Uint32(b), nil
}

// ReadBytes returns a copy of the next n bytes.
func (im *Image) ReadBytes(n int) ([]byte, error) {
	b, err := im.next(n)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(b), nil
}

// ReadString reads n characters in the given encoding. For UTF16 that is
// 2n bytes, for every other encoding n bytes.
func (im *Image) ReadString(n int, enc Encoding) (string, error) {
	size := n
	if enc == UTF16 {
		size = 2 * n
	}
	if _, err := ParseEncoding(string(enc)); err != nil {
		return "", err
	}

	b, err := im.next(size)
	if err != nil {
		return "", err
	}

	switch enc {
	case SJIS:
		out, err := japanese.ShiftJIS.NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("failed to decode Shift-JIS: %w", err)
		}
		return string(out), nil
	case UTF16:
		out, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("failed to decode UTF-16: %w", err)
		}
		return string(out), nil
	case UTF8:
		return strings.ToValidUTF8(string(b), string(utf8.RuneError)), nil
	default:
		return decodeASCII(b), nil
	}
}

// ReadTable reads n bytes and decodes them through t.
func (im *Image) ReadTable(n int, t *tbl.Table) (string, error) {
	b, err := im.next(n)
	if err != nil {
		return "", err
	}
	return t.Decode(b), nil
}

// Index returns the offset of the first occurrence of seq, or -1.
func (im *Image) Index(seq []byte) int {
	return bytes.Index(im.data, seq)
}

// Contains reports whether seq occurs anywhere in the image.
func (im *Image) Contains(seq []byte) bool {
	return im.Index(seq) >= 0
}

func decodeASCII(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		if c < utf8.RuneSelf {
			sb.WriteByte(c)
		} else {
			sb.WriteRune(utf8.RuneError)
		}
	}
	return sb.String()
}
