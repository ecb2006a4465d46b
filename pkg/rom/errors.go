package rom

import "errors"

var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrPatchOverflow    = errors.New("patch runs past end of image")
	ErrUnknownEncoding  = errors.New("unknown text encoding")
)
