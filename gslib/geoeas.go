package gslib

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadGeoEAS parses a Geo-EAS formatted table: title line, variable
// count, one name per line, then whitespace-separated numeric rows.
//
// Blank data lines are skipped (some writers pad the tail). Extra
// fields on a data row are rejected, not truncated.
func ReadGeoEAS(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)

	title, ok := scanLine(scanner)
	if !ok {
		return nil, ErrEmptyInput
	}

	countLine, ok := scanLine(scanner)
	if !ok {
		return nil, fmt.Errorf("%w: missing variable count", ErrBadHeader)
	}
	fields := strings.Fields(countLine)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: blank variable count line", ErrBadHeader)
	}
	nvar, err := strconv.Atoi(fields[0])
	if err != nil || nvar < 1 {
		return nil, fmt.Errorf("%w: variable count %q", ErrBadHeader, fields[0])
	}

	names := make([]string, nvar)
	for i := 0; i < nvar; i++ {
		name, okName := scanLine(scanner)
		if !okName {
			return nil, fmt.Errorf("%w: expected %d variable names, got %d", ErrBadHeader, nvar, i)
		}
		names[i] = strings.TrimSpace(name)
	}

	table := &Table{Title: strings.TrimSpace(title), Names: names}
	lineNo := 2 + nvar
	for {
		line, okLine := scanLine(scanner)
		if !okLine {
			break
		}
		lineNo++
		raw := strings.Fields(line)
		if len(raw) == 0 {
			continue
		}
		if len(raw) != nvar {
			return nil, fmt.Errorf("%w: line %d has %d fields, want %d",
				ErrColumnCount, lineNo, len(raw), nvar)
		}
		row := make([]float64, nvar)
		for j, f := range raw {
			v, convErr := strconv.ParseFloat(f, 64)
			if convErr != nil {
				return nil, fmt.Errorf("%w: %q on line %d", ErrBadValue, f, lineNo)
			}
			row[j] = v
		}
		table.Rows = append(table.Rows, row)
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("gslib: read: %w", err)
	}

	return table, nil
}

// WriteGeoEAS renders the table in Geo-EAS layout.
func WriteGeoEAS(w io.Writer, t *Table) error {
	if t == nil {
		return ErrNilTable
	}

	if _, err := fmt.Fprintf(w, "%s\n%d\n", t.Title, len(t.Names)); err != nil {
		return fmt.Errorf("gslib: write: %w", err)
	}
	for _, name := range t.Names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return fmt.Errorf("gslib: write: %w", err)
		}
	}
	for _, row := range t.Rows {
		parts := make([]string, len(row))
		for j, v := range row {
			parts[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if _, err := fmt.Fprintln(w, strings.Join(parts, " ")); err != nil {
			return fmt.Errorf("gslib: write: %w", err)
		}
	}

	return nil
}

// scanLine reads the next line, reporting false at EOF.
func scanLine(s *bufio.Scanner) (string, bool) {
	if !s.Scan() {
		return "", false
	}

	return s.Text(), true
}
