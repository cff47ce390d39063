// Package pipeline provides the read → transform → render pipeline behind
// tablewrap.
//
// # Architecture
//
// The pipeline runs in three stages, each a pure function of the previous
// stage's output:
//
//  1. Read: split delimited lines into a [table.Table] and check that every
//     row has the same column count
//  2. Transform: compute column widths (natural or explicit), wrap the rows
//     into side-by-side blocks of LineToWrap rows, repeat the widths once
//     per block
//  3. Render: draw the wrapped table as boxed text
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, os.Stdin, pipeline.Options{LineToWrap: 20})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Output)
//
// Re-render an already-read table with different options:
//
//	result, err := runner.Format(ctx, result.Table, pipeline.Options{LineToWrap: 10})
package pipeline

import (
	"time"

	"github.com/matzehuels/tablewrap/pkg/errors"
	"github.com/matzehuels/tablewrap/pkg/render"
	"github.com/matzehuels/tablewrap/pkg/table"
)

// DefaultDelimiter is the default cell separator.
const DefaultDelimiter = table.DefaultDelimiter

// DefaultStyle is the default rule style.
var DefaultStyle = render.DefaultStyle

// Options contains all configuration for one pipeline run.
type Options struct {
	// LineToWrap is the number of data rows per block. Required.
	LineToWrap int

	// MaxWidths holds one wrap width per source column. When empty, each
	// column gets its natural width (longest cell).
	MaxWidths []int

	// Delimiter separates cells within an input line.
	Delimiter string

	// Style selects the rule characters.
	Style render.Style
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Table is the table as read, before wrapping.
	Table table.Table

	// Layout is the table wrapped into side-by-side blocks.
	Layout table.Layout

	// Widths holds one width per column of Layout.Table.
	Widths []int

	// Output is the rendered table without a trailing newline. It is empty
	// when the input had no rows.
	Output string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows          int // input rows including the header
	Columns       int // input columns
	Blocks        int
	ReadTime      time.Duration
	TransformTime time.Duration
	RenderTime    time.Duration
}

// DataRows returns the number of input rows below the header.
func (s Stats) DataRows() int {
	return max(s.Rows-1, 0)
}

// SetDefaults fills in the delimiter and style when unset.
func (o *Options) SetDefaults() {
	if o.Delimiter == "" {
		o.Delimiter = DefaultDelimiter
	}
	if o.Style == (render.Style{}) {
		o.Style = DefaultStyle
	}
}

// Validate checks the options without consulting any input.
// Width vector length is checked later, against the table.
func (o *Options) Validate() error {
	if err := table.CheckLineToWrap(o.LineToWrap); err != nil {
		return err
	}
	for i, w := range o.MaxWidths {
		if w < 1 {
			return errors.New(errors.ErrCodeInvalidParameter, "width %d must be positive, got %d", i+1, w)
		}
	}
	if o.Delimiter == "" {
		return errors.New(errors.ErrCodeInvalidParameter, "delimiter must not be empty")
	}
	return o.Style.Validate()
}

// ValidateAndSetDefaults applies defaults and validates.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}
