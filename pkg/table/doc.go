// Package table holds the tabular data model and the pure transforms that
// prepare a table for rendering.
//
// # Data Model
//
// A [Table] is an ordered list of rows, each an ordered list of cell
// strings. Row 0 is the header. Every row has the same column count C,
// which [Table.Validate] checks and [Read] enforces on input.
//
// # Transforms
//
// The transforms never modify their input; each returns a fresh value:
//
//   - [NaturalWidths]: per-column max cell length, counted in code points
//   - [Wrap]: reshape a tall table into side-by-side blocks of fixed height
//   - [ExpandWidths]: repeat a width vector once per block
//
// # Block Layout
//
// Given N data rows and a wrap height h, [Wrap] produces
// blocks = ceil(N/h) side-by-side copies of the header, followed by h body
// rows. Body row l of block i comes from source row h*i + l + 1; positions
// past the end of the data are filled with empty cells so every block has
// exactly h rows:
//
//	a,b              a | b | a | b
//	1,2     h=2      1 | 2 | 5 | 6
//	3,4     ---->    3 | 4 |   |
//	5,6
package table
