package tbl

import "errors"

var ErrInvalidEntry = errors.New("invalid table entry")
