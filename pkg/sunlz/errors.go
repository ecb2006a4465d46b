package sunlz

import "errors"

var (
	ErrInvalidFormat    = errors.New("invalid format constants")
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrTruncated        = errors.New("compressed stream truncated")
	ErrTooLarge         = errors.New("compressed payload exceeds 16-bit size header")
)
