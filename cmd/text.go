package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sunlz/pkg/rom"
	"github.com/sunlz/pkg/tbl"
)

var (
	textTable    string
	textEncoding string
)

var textCmd = &cobra.Command{
	Use:   "text <rom> <offset> <length>",
	Short: "Dump text from a ROM",
	Long: `Read <length> characters at <offset> in <rom> and print them.

With --table the bytes are decoded through a .tbl file (HEX=text lines),
preferring two byte codes; unmapped bytes print as [$XX]. Otherwise
--encoding selects ascii, sjis, utf8 or utf16 (big-endian, <length> is
then counted in characters of two bytes).

Examples:
  # Dump 32 bytes with a table
  sunlz text hebereke.sfc 0x70000 32 -t hebereke.tbl

  # Dump a Shift-JIS string
  sunlz text hebereke.sfc 0x71000 16 -e sjis`,
	Args: cobra.ExactArgs(3),
	RunE: runText,
}

func init() {
	rootCmd.AddCommand(textCmd)

	textCmd.Flags().StringVarP(&textTable, "table", "t", "",
		"text table file")
	textCmd.Flags().StringVarP(&textEncoding, "encoding", "e", string(rom.ASCII),
		"encoding when no table is given (ascii, sjis, utf8, utf16)")
}

func runText(cmd *cobra.Command, args []string) error {
	offset, err := parseOffset(args[1])
	if err != nil {
		return err
	}
	length, err := parseOffset(args[2])
	if err != nil {
		return fmt.Errorf("invalid length %q", args[2])
	}

	var table *tbl.Table
	enc := rom.ASCII
	if textTable != "" {
		if table, err = tbl.Load(textTable); err != nil {
			return err
		}
	} else if enc, err = rom.ParseEncoding(textEncoding); err != nil {
		return err
	}

	image, err := rom.Open(args[0])
	if err != nil {
		return err
	}
	if err := image.Seek(offset); err != nil {
		return err
	}

	var text string
	if table != nil {
		text, err = image.ReadTable(length, table)
	} else {
		text, err = image.ReadString(length, enc)
	}
	if err != nil {
		return fmt.Errorf("failed to read text: %w", err)
	}

	fmt.Println(text)
	return nil
}
