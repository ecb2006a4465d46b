package rom

import (
	"fmt"
	"os"
)

// Patch overwrites len(data) bytes of the file at path starting at offset.
// The file is never grown: a patch ending past the current size is refused
// before anything is written.
func Patch(path string, offset int, data []byte) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat image: %w", err)
	}

	if offset < 0 || int64(offset)+int64(len(data)) > info.Size() {
		return fmt.Errorf("%w: 0x%X bytes at 0x%X, image is 0x%X bytes",
			ErrPatchOverflow, len(data), offset, info.Size())
	}

	if _, err := f.WriteAt(data, int64(offset)); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}

	return f.Close()
}
