package table

import (
	"github.com/matzehuels/tablewrap/pkg/errors"
)

// MaxLineToWrap is the largest accepted wrap height. Every block is padded
// to the full height, so the wrapped table always holds 1+lineToWrap rows
// however short the input is.
const MaxLineToWrap = 1 << 20

// Layout is a table reshaped into side-by-side blocks.
type Layout struct {
	// Blocks is the number of side-by-side header repetitions.
	Blocks int
	// Table has 1+lineToWrap rows and Columns*Blocks columns.
	Table Table
}

// Wrap reshapes t so that at most lineToWrap data rows are stacked
// vertically; the remaining rows continue in further blocks to the right,
// each under its own copy of the header.
//
// Body row l (0-based) of block i holds source row lineToWrap*i + l + 1,
// or Columns empty cells if that row does not exist. A table with a header
// but no data rows still gets one block, so the header is printed.
//
// Wrap returns an INVALID_PARAMETER error if lineToWrap is not within
// [1, MaxLineToWrap]. An empty table yields an empty Layout. t is not
// modified.
func Wrap(t Table, lineToWrap int) (Layout, error) {
	if err := CheckLineToWrap(lineToWrap); err != nil {
		return Layout{}, err
	}
	if len(t) == 0 {
		return Layout{}, nil
	}

	cols := t.Columns()
	blocks := blockCount(t.DataLen(), lineToWrap)

	out := make(Table, 0, lineToWrap+1)

	header := make([]string, 0, cols*blocks)
	for range blocks {
		header = append(header, t[0]...)
	}
	out = append(out, header)

	for l := range lineToWrap {
		row := make([]string, 0, cols*blocks)
		for i := range blocks {
			if src := lineToWrap*i + l + 1; src < len(t) {
				row = append(row, t[src]...)
			} else {
				row = append(row, make([]string, cols)...)
			}
		}
		out = append(out, row)
	}

	return Layout{Blocks: blocks, Table: out}, nil
}

// CheckLineToWrap reports an INVALID_PARAMETER error unless
// 1 <= lineToWrap <= MaxLineToWrap.
func CheckLineToWrap(lineToWrap int) error {
	if lineToWrap < 1 {
		return errors.New(errors.ErrCodeInvalidParameter, "line_to_wrap must be positive, got %d", lineToWrap)
	}
	if lineToWrap > MaxLineToWrap {
		return errors.New(errors.ErrCodeInvalidParameter, "line_to_wrap must be at most %d, got %d", MaxLineToWrap, lineToWrap)
	}
	return nil
}

// blockCount is ceil(dataRows/lineToWrap), but never less than one.
func blockCount(dataRows, lineToWrap int) int {
	if dataRows == 0 {
		return 1
	}
	return (dataRows-1)/lineToWrap + 1
}
