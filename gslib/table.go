// Package gslib table model and sentinel errors.
package gslib

import (
	"errors"
	"fmt"
)

// Sentinel errors for table I/O.
var (
	// ErrEmptyInput indicates the reader produced no usable content.
	ErrEmptyInput = errors.New("gslib: input is empty")
	// ErrBadHeader indicates a malformed title/nvar/name header.
	ErrBadHeader = errors.New("gslib: malformed header")
	// ErrBadValue indicates a non-numeric data field.
	ErrBadValue = errors.New("gslib: non-numeric value")
	// ErrColumnCount indicates a row with the wrong number of fields.
	ErrColumnCount = errors.New("gslib: wrong number of columns")
	// ErrNilTable indicates a nil table passed to a writer.
	ErrNilTable = errors.New("gslib: table is nil")
	// ErrUnknownColumn indicates a column name absent from the table.
	ErrUnknownColumn = errors.New("gslib: unknown column")
)

// Table is a dense numeric table with named columns.
type Table struct {
	// Title is the Geo-EAS free-text title; empty for CSV sources.
	Title string
	// Names holds the column names in file order.
	Names []string
	// Rows holds one float64 slice per data row, len(Names) wide.
	Rows [][]float64
}

// Column returns the values of the named column as a fresh slice.
func (t *Table) Column(name string) ([]float64, error) {
	for j, n := range t.Names {
		if n != name {
			continue
		}
		col := make([]float64, len(t.Rows))
		for i, row := range t.Rows {
			col[i] = row[j]
		}

		return col, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}
