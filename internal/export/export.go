// Package export writes the customer and segment tables as delimited text
// with a header row of the display column names.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"cdms/internal/models"
)

var (
	CustomerHeader = []string{"Customer ID", "First Name", "Last Name", "Email", "Phone", "State", "Purchase Amount"}
	SegmentHeader  = []string{"Customer ID", "Full Name", "State", "Segment"}
)

const DefaultDelimiter = ','

// Options controls the text layout
type Options struct {
	Delimiter rune
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return DefaultDelimiter
	}
	return o.Delimiter
}

// ParseDelimiter accepts a single character or the word "tab"
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return DefaultDelimiter, nil
	case "tab", `\t`:
		return '\t', nil
	}

	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	if r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("delimiter %q is not allowed", s)
	}
	return r, nil
}

// WriteCustomers writes one row per customer in the given order
func WriteCustomers(w io.Writer, customers []models.Customer, opts Options) error {
	rows := make([][]string, 0, len(customers))
	for i := range customers {
		rows = append(rows, customers[i].FieldStrings())
	}
	return writeTable(w, CustomerHeader, rows, opts)
}

// WriteSegments writes one row per segment result in the given order
func WriteSegments(w io.Writer, segments []*models.SegmentResult, opts Options) error {
	rows := make([][]string, 0, len(segments))
	for _, s := range segments {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(s.ID), 10),
			s.FullName,
			s.State,
			string(s.Category),
		})
	}
	return writeTable(w, SegmentHeader, rows, opts)
}

// WriteFile creates path, including missing parent directories, and fills
// it through write. A failed write leaves no partial file behind.
func WriteFile(path string, write func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close export file: %w", closeErr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return write(f)
}

func writeTable(w io.Writer, header []string, rows [][]string, opts Options) error {
	cw := csv.NewWriter(w)
	cw.Comma = opts.delimiter()

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}
