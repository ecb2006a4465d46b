package sunlz

// Codec compresses and decompresses streams of one Format. A Codec holds no
// mutable state; every call builds its own window and buffers, so one Codec
// may be shared between goroutines.
type Codec struct {
	format Format
}

// New returns a codec for f.
func New(f Format) (*Codec, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &Codec{format: f}, nil
}

// Format returns the codec's format constants.
func (c *Codec) Format() Format { return c.format }

var sunsoft = &Codec{format: Sunsoft}

// Decompress decodes the Sunsoft stream starting at offset in src.
func Decompress(src []byte, offset int) ([]byte, error) {
	return sunsoft.Decompress(src, offset)
}

// Compress encodes src as a Sunsoft stream. Options nil means DefaultCompressOptions().
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	return sunsoft.Compress(src, opts)
}
