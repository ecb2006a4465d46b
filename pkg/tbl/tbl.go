// Package tbl loads text tables (.tbl) and decodes game text with them.
//
// Each line maps a one or two byte code, written in hex, to a string:
//
//	00=A
//	8140=　
//
// Blank lines and lines starting with # are ignored.
package tbl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Table maps byte codes to strings.
type Table struct {
	single map[byte]string
	double map[uint16]string
}

// Load reads a table file from disk.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads table entries from r.
func Parse(r io.Reader) (*Table, error) {
	t := &Table{
		single: make(map[byte]string),
		double: make(map[uint16]string),
	}

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}

		key, value, ok := strings.Cut(text, "=")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: missing '='", ErrInvalidEntry, line)
		}
		key = strings.TrimSpace(key)

		code, err := strconv.ParseUint(key, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad code %q", ErrInvalidEntry, line, key)
		}

		switch len(key) {
		case 1, 2:
			t.single[byte(code)] = value
		case 3, 4:
			t.double[uint16(code)] = value
		default:
			return nil, fmt.Errorf("%w: line %d: code %q longer than two bytes", ErrInvalidEntry, line, key)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}

	return t, nil
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.single) + len(t.double)
}

// Decode converts b to text, preferring two byte codes over one byte codes
// at every position. Bytes without an entry become [$XX].
func (t *Table) Decode(b []byte) string {
	var sb strings.Builder
	for i := 0; i < len(b); {
		if i+1 < len(b) {
			if s, ok := t.double[uint16(b[i])<<8|uint16(b[i+1])]; ok {
				sb.WriteString(s)
				i += 2
				continue
			}
		}
		if s, ok := t.single[b[i]]; ok {
			sb.WriteString(s)
		} else {
			fmt.Fprintf(&sb, "[$%02X]", b[i])
		}
		i++
	}
	return sb.String()
}
