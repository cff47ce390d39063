// Package render draws a table as boxed plain text.
//
// Rendering works in three layers:
//
//   - [WrapCell] splits one cell into fixed-width lines
//   - [RenderRow] wraps every cell of a row and reconciles them to a common
//     height, producing the printed lines for that row
//   - [Render] stacks rows between horizontal [Rule] lines
//
// Cells are right-aligned with one space of padding on each side and
// separated by '|'. Rules join columns with '+'. The rule under the header
// uses the heavy character of the [Style]; the top border and every other
// separator use the light one:
//
//	+---+---+
//	| a | b |
//	+===+===+
//	| 1 | 2 |
//	+---+---+
//
// All widths are counted in code points; a rune always occupies one column.
// Text longer than its column wraps onto further lines instead of being
// truncated.
package render
