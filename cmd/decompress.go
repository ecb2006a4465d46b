package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sunlz/pkg/rom"
	"github.com/sunlz/pkg/tile"
)

var (
	decompressVerbose bool
	decompressTiles   string
	decompressBpp     int
	decompressColumns int
)

var decompressCmd = &cobra.Command{
	Use:     "decompress <rom> <output> <offset>",
	Aliases: []string{"d", "D"},
	Short:   "Decompress data at an offset in a ROM",
	Long: `Decompress the stream whose size header sits at <offset> in <rom> and
write the raw data to <output>.

Offsets may be decimal, hex (0x...), octal (0o...) or binary (0b...).

Examples:
  # Decompress graphics at 0x48000
  sunlz decompress hebereke.sfc font.bin 0x48000

  # Also render the result as a 4bpp tile sheet
  sunlz decompress hebereke.sfc font.bin 0x48000 -t font.bmp`,
	Args: cobra.ExactArgs(3),
	RunE: runDecompress,
}

func init() {
	rootCmd.AddCommand(decompressCmd)

	decompressCmd.Flags().BoolVarP(&decompressVerbose, "verbose", "v", false,
		"print stream statistics")
	decompressCmd.Flags().StringVarP(&decompressTiles, "tiles", "t", "",
		"also render the decompressed data to this BMP file")
	decompressCmd.Flags().IntVar(&decompressBpp, "bpp", 4,
		"bits per pixel for --tiles (2, 4 or 8)")
	decompressCmd.Flags().IntVar(&decompressColumns, "columns", 16,
		"tiles per row for --tiles")
}

func runDecompress(cmd *cobra.Command, args []string) error {
	romPath, outputPath := args[0], args[1]

	offset, err := parseOffset(args[2])
	if err != nil {
		return err
	}

	image, err := rom.Open(romPath)
	if err != nil {
		return err
	}

	fmt.Printf("Decompressing at 0x%08X...\n", offset)

	codec := newCodec()
	data, n, err := codec.DecompressStream(image.Bytes(), offset)
	if err != nil {
		return fmt.Errorf("decompression failed: %w", err)
	}

	if decompressVerbose {
		st, err := codec.Inspect(image.Bytes(), offset)
		if err != nil {
			return fmt.Errorf("failed to inspect stream: %w", err)
		}
		fmt.Printf("Stream: 0x%08X-0x%08X (0x%X bytes)\n", offset, offset+n, n)
		fmt.Printf("Control bytes: %d\n", st.ControlBytes)
		fmt.Printf("Literals: %d\n", st.Literals)
		fmt.Printf("References: %d (length %d-%d)\n", st.References, st.MinRefLength, st.MaxRefLength)
		fmt.Printf("Ratio: %.2f\n", st.Ratio())
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Printf("Decompressed size: 0x%08X\n", len(data))

	if decompressTiles != "" {
		if err := renderTiles(data, decompressTiles, decompressBpp, decompressColumns, nil); err != nil {
			return err
		}
		fmt.Printf("Tiles: %s\n", decompressTiles)
	}

	fmt.Println("Finished!")
	return nil
}

// renderTiles writes data as a tile sheet, in grayscale when palette is nil.
func renderTiles(data []byte, path string, bpp, columns int, palette []tile.Color) error {
	sheet, err := tile.Decode(data, bpp, columns)
	if err != nil {
		return fmt.Errorf("failed to decode tiles: %w", err)
	}
	if palette == nil {
		palette = tile.Grayscale(1 << bpp)
	}
	return sheet.WriteBMPFile(path, palette)
}
