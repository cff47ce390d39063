package render

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// padding is the number of spaces on each side of a cell.
const padding = 1

// RenderRow renders one logical row as printed lines. Each cell is wrapped
// to its column's width; cells that wrap to fewer lines than the tallest
// cell are padded with empty lines at the bottom. Line h right-aligns line
// h of every cell within its column:
//
//	| he |   x |
//	| ll |     |
//	|  o |     |
//
// widths must hold one positive width per cell.
func RenderRow(row []string, widths []int) []string {
	cells := make([][]string, len(row))
	height := 0
	for i, cell := range row {
		cells[i] = slices.Collect(WrapCell(cell, widths[i]))
		height = max(height, len(cells[i]))
	}
	for i := range cells {
		for len(cells[i]) < height {
			cells[i] = append(cells[i], "")
		}
	}

	lines := make([]string, height)
	var b strings.Builder
	for h := range height {
		b.Reset()
		b.WriteByte('|')
		for i, cell := range cells {
			writeCell(&b, cell[h], widths[i])
			b.WriteByte('|')
		}
		lines[h] = b.String()
	}
	return lines
}

// writeCell writes text right-aligned in width columns, with padding.
func writeCell(b *strings.Builder, text string, width int) {
	fill := width - utf8.RuneCountInString(text)
	b.WriteString(strings.Repeat(" ", padding+max(fill, 0)))
	b.WriteString(text)
	b.WriteString(strings.Repeat(" ", padding))
}
