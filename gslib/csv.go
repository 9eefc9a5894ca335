package gslib

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV parses a headered numeric CSV into a Table. The first record
// supplies the column names; every following record must parse as
// float64 across the full width.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	names := make([]string, len(header))
	for j, h := range header {
		names[j] = strings.TrimSpace(h)
	}

	table := &Table{Names: names}
	for lineNo := 2; ; lineNo++ {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			// encoding/csv reports mismatched widths itself.
			return nil, fmt.Errorf("%w: line %d: %v", ErrColumnCount, lineNo, readErr)
		}
		row := make([]float64, len(record))
		for j, f := range record {
			v, convErr := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if convErr != nil {
				return nil, fmt.Errorf("%w: %q on line %d", ErrBadValue, f, lineNo)
			}
			row[j] = v
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// WriteCSV renders the table as headered CSV.
func WriteCSV(w io.Writer, t *Table) error {
	if t == nil {
		return ErrNilTable
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(t.Names); err != nil {
		return fmt.Errorf("gslib: write: %w", err)
	}
	record := make([]string, len(t.Names))
	for _, row := range t.Rows {
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("gslib: write: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("gslib: write: %w", err)
	}

	return nil
}
