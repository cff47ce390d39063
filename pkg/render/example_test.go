package render_test

import (
	"fmt"
	"slices"

	"github.com/matzehuels/tablewrap/pkg/render"
	"github.com/matzehuels/tablewrap/pkg/table"
)

func ExampleWrapCell() {
	fmt.Printf("%q\n", slices.Collect(render.WrapCell("hello", 2)))
	fmt.Printf("%q\n", slices.Collect(render.WrapCell("", 2)))
	// Output:
	// ["he" "ll" "o"]
	// [""]
}

func ExampleRender() {
	t := table.Table{
		{"city", "pop"},
		{"Oslo", "709k"},
		{"Bergen", "291k"},
	}

	out, _ := render.Render(t, table.NaturalWidths(t), render.DefaultStyle)
	fmt.Println(out)
	// Output:
	// +--------+------+
	// |   city |  pop |
	// +========+======+
	// |   Oslo | 709k |
	// +--------+------+
	// | Bergen | 291k |
	// +--------+------+
}
