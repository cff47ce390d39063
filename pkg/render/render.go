package render

import (
	"strings"
	"unicode"

	"github.com/matzehuels/tablewrap/pkg/errors"
	"github.com/matzehuels/tablewrap/pkg/table"
)

// Style selects the characters used for horizontal rules.
type Style struct {
	Light rune // top border and body separators
	Heavy rune // separator under the header row
}

// DefaultStyle draws light rules with '-' and the header rule with '='.
var DefaultStyle = Style{Light: '-', Heavy: '='}

// Validate checks that both rule characters are printable and not spaces.
func (s Style) Validate() error {
	for _, r := range []rune{s.Light, s.Heavy} {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return errors.New(errors.ErrCodeInvalidParameter, "rule character %q is not printable", r)
		}
	}
	return nil
}

// Render draws t as a boxed table using one width per column. Lines are
// joined with "\n"; no trailing newline is added. An empty table renders
// as the empty string.
//
// Render returns an INVALID_PARAMETER error if any width is less than one
// or the style is invalid, and a CONFIG_MISMATCH error if a row's cell
// count differs from len(widths).
func Render(t table.Table, widths []int, style Style) (string, error) {
	if len(t) == 0 {
		return "", nil
	}
	if err := style.Validate(); err != nil {
		return "", err
	}
	for i, w := range widths {
		if w < 1 {
			return "", errors.New(errors.ErrCodeInvalidParameter, "column %d has width %d, widths must be positive", i+1, w)
		}
	}
	for i, row := range t {
		if len(row) != len(widths) {
			return "", errors.New(errors.ErrCodeConfigMismatch, "row %d has %d cells but %d widths were given", i+1, len(row), len(widths))
		}
	}

	lines := []string{Rule(widths, style.Light)}
	for i, row := range t {
		lines = append(lines, RenderRow(row, widths)...)
		sep := style.Light
		if i == 0 {
			sep = style.Heavy
		}
		lines = append(lines, Rule(widths, sep))
	}
	return strings.Join(lines, "\n"), nil
}

// Rule draws a horizontal rule: width+2 copies of ch per column, joined
// with '+' and enclosed by '+'.
func Rule(widths []int, ch rune) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat(string(ch), w+2*padding)
	}
	return "+" + strings.Join(parts, "+") + "+"
}
