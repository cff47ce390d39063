package render

import (
	"fmt"
	"iter"
)

// WrapCell returns the lines of text when wrapped to width code points.
// Every line holds exactly width code points except the last, which holds
// the remainder. Empty text yields a single empty line, so every cell
// occupies at least one line.
//
// The sequence is computed lazily as it is ranged over. WrapCell panics if
// width < 1; callers validate widths before rendering.
func WrapCell(text string, width int) iter.Seq[string] {
	if width < 1 {
		panic(fmt.Sprintf("render: cell width must be positive, got %d", width))
	}
	return func(yield func(string) bool) {
		if text == "" {
			yield("")
			return
		}
		start, n := 0, 0
		for i := range text {
			if n == width {
				if !yield(text[start:i]) {
					return
				}
				start, n = i, 0
			}
			n++
		}
		yield(text[start:])
	}
}
