package tile

import "errors"

var (
	ErrInvalidDepth   = errors.New("unsupported bit depth: want 2, 4 or 8")
	ErrInvalidColumns = errors.New("tile columns must be positive")
	ErrShortPalette   = errors.New("palette data too short")
)
