package table

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/tablewrap/pkg/errors"
)

// NaturalWidths returns, for each column, the length of its longest cell
// across all rows including the header. Length is the number of code
// points, not display width. It returns nil for an empty table.
func NaturalWidths(t Table) []int {
	if len(t) == 0 {
		return nil
	}
	widths := make([]int, t.Columns())
	for _, row := range t {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}
	return widths
}

// ExpandWidths returns blocks copies of widths laid end to end, matching
// the column count of a table produced by [Wrap]. Zero blocks yield an
// empty slice.
func ExpandWidths(widths []int, blocks int) []int {
	out := make([]int, 0, len(widths)*blocks)
	for range blocks {
		out = append(out, widths...)
	}
	return out
}

// ParseWidths parses a comma-separated list of positive integers such as
// "1,4,2,3,4". Surrounding whitespace around each entry is ignored.
func ParseWidths(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	widths := make([]int, 0, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "width %d: %q is not an integer", i+1, p)
		}
		if n < 1 {
			return nil, errors.New(errors.ErrCodeInvalidParameter, "width %d must be positive, got %d", i+1, n)
		}
		widths = append(widths, n)
	}
	return widths, nil
}

// CheckWidths verifies that an explicit width vector has one entry per
// column and that every entry is positive.
func CheckWidths(widths []int, columns int) error {
	if len(widths) != columns {
		return errors.New(errors.ErrCodeConfigMismatch,
			"max width has %d entries but the table has %d columns", len(widths), columns)
	}
	if i := slices.IndexFunc(widths, func(w int) bool { return w < 1 }); i >= 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "width %d must be positive, got %d", i+1, widths[i])
	}
	return nil
}
