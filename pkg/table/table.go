package table

import (
	"github.com/matzehuels/tablewrap/pkg/errors"
)

// Table is an ordered list of rows. Row 0 is the header.
type Table [][]string

// Columns returns the column count of the table, taken from the header.
// An empty table has zero columns.
func (t Table) Columns() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// DataLen returns the number of rows below the header.
func (t Table) DataLen() int {
	if len(t) == 0 {
		return 0
	}
	return len(t) - 1
}

// Header returns the header row, or nil for an empty table.
func (t Table) Header() []string {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

// Validate checks that every row has the header's column count and that
// the header has at least one column. An empty table is valid.
//
// Rows are reported by 1-based line number, matching the input they were
// read from.
func (t Table) Validate() error {
	if len(t) == 0 {
		return nil
	}
	cols := len(t[0])
	if cols == 0 {
		return errors.New(errors.ErrCodeMalformedInput, "line 1: header has no columns")
	}
	for i, row := range t[1:] {
		if len(row) != cols {
			return errors.New(errors.ErrCodeMalformedInput,
				"line %d: got %d columns, want %d", i+2, len(row), cols)
		}
	}
	return nil
}
