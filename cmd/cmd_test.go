package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// run executes the root command with flag variables reset to their defaults.
func run(t *testing.T, args ...string) error {
	t.Helper()
	decompressVerbose, decompressTiles, decompressBpp, decompressColumns = false, "", 4, 16
	compressVerify, compressLegacyHeader, compressDryRun, compressVerbose = false, false, false, false
	textTable, textEncoding = "", "ascii"
	tilesBpp, tilesColumns, tilesPalette, tilesPaletteOffset, tilesVerbose = 4, 16, "", "0", false

	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseOffset(t *testing.T) {
	cases := map[string]int{"0x48000": 0x48000, "1024": 1024, "0o17": 15, "0b101": 5, "0": 0}
	for in, want := range cases {
		got, err := parseOffset(in)
		if err != nil || got != want {
			t.Fatalf("parseOffset(%q) = %d, %v", in, got, err)
		}
	}
	for _, in := range []string{"", "-4", "0xZZ", "offset"} {
		if _, err := parseOffset(in); err == nil {
			t.Fatalf("parseOffset(%q) accepted", in)
		}
	}
}

func TestCompressThenDecompress(t *testing.T) {
	dir := t.TempDir()
	romPath := writeFile(t, dir, "game.sfc", bytes.Repeat([]byte{0xFF}, 0x800))
	input := bytes.Repeat([]byte{0x00, 0x11, 0x22, 0x33, 0x00, 0x00, 0x44, 0x55}, 32)
	inputPath := writeFile(t, dir, "font.bin", input)

	if err := run(t, "compress", romPath, inputPath, "0x100", "--verify"); err != nil {
		t.Fatalf("compress: %v", err)
	}

	rom, err := os.ReadFile(romPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(rom) != 0x800 {
		t.Fatalf("ROM resized to 0x%X", len(rom))
	}
	if !bytes.Equal(rom[:0x100], bytes.Repeat([]byte{0xFF}, 0x100)) {
		t.Fatal("bytes before the offset were modified")
	}

	outPath := filepath.Join(dir, "out.bin")
	bmpPath := filepath.Join(dir, "out.bmp")
	if err := run(t, "decompress", romPath, outPath, "0x100", "-v", "-t", bmpPath); err != nil {
		t.Fatalf("decompress: %v", err)
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, input) {
		t.Fatalf("decompressed %d bytes, want %d", len(got), len(input))
	}
	if _, err := os.Stat(bmpPath); err != nil {
		t.Fatalf("tile sheet not written: %v", err)
	}
}

func TestCompressDryRun(t *testing.T) {
	dir := t.TempDir()
	original := bytes.Repeat([]byte{0xAA}, 0x100)
	romPath := writeFile(t, dir, "game.sfc", original)
	inputPath := writeFile(t, dir, "in.bin", []byte("abcabcabcabc"))

	if err := run(t, "compress", romPath, inputPath, "0", "-n", "--legacy-header", "--verify"); err != nil {
		t.Fatal(err)
	}
	rom, err := os.ReadFile(romPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(rom, original) {
		t.Fatal("dry run modified the ROM")
	}
}

func TestCompressRefusesOverflow(t *testing.T) {
	dir := t.TempDir()
	original := bytes.Repeat([]byte{0xAA}, 16)
	romPath := writeFile(t, dir, "game.sfc", original)
	inputPath := writeFile(t, dir, "in.bin", []byte("no repeats here"))

	if err := run(t, "compress", romPath, inputPath, "8"); err == nil {
		t.Fatal("expected overflow error")
	}
	rom, err := os.ReadFile(romPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(rom, original) {
		t.Fatal("failed insert modified the ROM")
	}
}

func TestUsageErrors(t *testing.T) {
	dir := t.TempDir()
	romPath := writeFile(t, dir, "game.sfc", make([]byte, 16))

	cases := [][]string{
		{"decompress", romPath, filepath.Join(dir, "o.bin")},
		{"decompress", romPath, filepath.Join(dir, "o.bin"), "zz"},
		{"decompress", filepath.Join(dir, "missing.sfc"), filepath.Join(dir, "o.bin"), "0"},
		{"decompress", romPath, filepath.Join(dir, "o.bin"), "0x20"},
		{"compress", filepath.Join(dir, "missing.sfc"), romPath, "0"},
		{"text", romPath, "0", "4", "-e", "ebcdic"},
		{"tiles", romPath, filepath.Join(dir, "o.bmp"), "--bpp", "3"},
	}
	for _, args := range cases {
		if err := run(t, args...); err == nil {
			t.Fatalf("%v: expected error", args)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "o.bin")); !os.IsNotExist(err) {
		t.Fatal("failed decompress left an output file")
	}
}

func TestTextAndTiles(t *testing.T) {
	dir := t.TempDir()
	romPath := writeFile(t, dir, "game.sfc", append([]byte("..SUNSOFT.."), make([]byte, 64)...))
	tablePath := writeFile(t, dir, "game.tbl", []byte("53=S\n55=U\n"))

	if err := run(t, "text", romPath, "2", "7", "-t", tablePath); err != nil {
		t.Fatal(err)
	}
	if err := run(t, "text", romPath, "2", "7"); err != nil {
		t.Fatal(err)
	}

	palPath := writeFile(t, dir, "pal.bin", make([]byte, 32))
	if err := run(t, "tiles", romPath, filepath.Join(dir, "sheet.bmp"), "-p", palPath, "-c", "2"); err != nil {
		t.Fatal(err)
	}
}
