package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sunlz/pkg/tile"
)

var (
	tilesBpp           int
	tilesColumns       int
	tilesPalette       string
	tilesPaletteOffset string
	tilesVerbose       bool
)

var tilesCmd = &cobra.Command{
	Use:   "tiles <input> [output.bmp]",
	Short: "Render decompressed graphics as a BMP tile sheet",
	Long: `Render SNES planar tile data (as written by decompress) as an 8-bit BMP.

Without --palette the sheet is drawn in grayscale. A palette file holds
BGR555 colours as in CGRAM; --palette-offset selects where they start,
which allows reading a palette straight out of a ROM.

Examples:
  # Render a 4bpp font, 16 tiles per row
  sunlz tiles font.bin

  # Render 2bpp data with a palette from the ROM
  sunlz tiles font.bin font.bmp --bpp 2 -p hebereke.sfc --palette-offset 0x1C000`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runTiles,
}

func init() {
	rootCmd.AddCommand(tilesCmd)

	tilesCmd.Flags().IntVarP(&tilesBpp, "bpp", "b", 4,
		"bits per pixel (2, 4 or 8)")
	tilesCmd.Flags().IntVarP(&tilesColumns, "columns", "c", 16,
		"tiles per row")
	tilesCmd.Flags().StringVarP(&tilesPalette, "palette", "p", "",
		"file holding BGR555 palette data")
	tilesCmd.Flags().StringVar(&tilesPaletteOffset, "palette-offset", "0",
		"offset of the palette in the palette file")
	tilesCmd.Flags().BoolVarP(&tilesVerbose, "verbose", "v", false,
		"print verbose progress information")
}

func runTiles(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := strings.TrimSuffix(input, ".bin") + ".bmp"
	if len(args) > 1 {
		output = args[1]
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("input not found: %s", input)
	}

	var palette []tile.Color
	if tilesPalette != "" {
		offset, err := parseOffset(tilesPaletteOffset)
		if err != nil {
			return err
		}
		raw, err := os.ReadFile(tilesPalette)
		if err != nil {
			return fmt.Errorf("failed to read palette: %w", err)
		}
		if palette, err = tile.LoadPalette(raw, offset, 1<<tilesBpp); err != nil {
			return err
		}
	}

	if tilesVerbose {
		fmt.Printf("Rendering %s -> %s\n", input, output)
	}
	if err := renderTiles(data, output, tilesBpp, tilesColumns, palette); err != nil {
		return err
	}

	fmt.Printf("Converted: %s (%d tiles)\n", output, len(data)/tile.BytesPerTile(tilesBpp))
	return nil
}
