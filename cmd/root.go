package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sunlz/pkg/sunlz"
)

var rootCmd = &cobra.Command{
	Use:   "sunlz",
	Short: "Sunsoft SNES graphics compressor / decompressor",
	Long: `sunlz decompresses and recompresses graphics from Super Nintendo games
developed by Sunsoft, which use an LZSS variant with a 16-bit size header.

Known compatible games:
  - [SNES] Sugoi Hebereke
  - [SNES] Pirates of Dark Water

Supported operations:
  - Decompress data at an offset in a ROM
  - Compress a file and insert it at an offset in a ROM
  - Dump text from a ROM with a table file
  - Render decompressed tiles as a BMP sheet`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// parseOffset accepts decimal, 0x hex, 0o/0 octal and 0b binary offsets.
func parseOffset(s string) (int, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("offset must not be negative: %s", s)
	}
	return int(v), nil
}

// newCodec returns the codec every command uses.
func newCodec() *sunlz.Codec {
	codec, err := sunlz.New(sunlz.Sunsoft)
	if err != nil {
		panic(err)
	}
	return codec
}
