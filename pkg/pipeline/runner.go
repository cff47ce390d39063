package pipeline

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tablewrap/pkg/errors"
	"github.com/matzehuels/tablewrap/pkg/observability"
	"github.com/matzehuels/tablewrap/pkg/render"
	"github.com/matzehuels/tablewrap/pkg/table"
)

// Runner executes the pipeline and logs each stage.
//
// The Runner holds no per-run state; the same Runner can format any
// number of tables.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute reads a table from in and formats it. in is read to EOF but not
// closed.
func (r *Runner) Execute(ctx context.Context, in io.Reader, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	readStart := time.Now()
	t, err := table.Read(in, opts.Delimiter)
	readTime := time.Since(readStart)
	observability.Pipeline().OnReadComplete(ctx, len(t), t.Columns(), readTime, err)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	r.Logger.Debug("read input",
		"rows", len(t),
		"columns", t.Columns())

	result, err := r.Format(ctx, t, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.ReadTime = readTime
	return result, nil
}

// Format wraps and renders an already-read table. t is not modified.
func (r *Runner) Format(ctx context.Context, t table.Table, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	result := &Result{
		Table: t,
		Stats: Stats{Rows: len(t), Columns: t.Columns()},
	}
	if len(t) == 0 {
		r.Logger.Debug("empty input, nothing to render")
		return result, nil
	}

	widths, err := columnWidths(t, opts.MaxWidths)
	if err != nil {
		return nil, fmt.Errorf("widths: %w", err)
	}

	// Stage 2: Transform
	transformStart := time.Now()
	layout, err := table.Wrap(t, opts.LineToWrap)
	result.Stats.TransformTime = time.Since(transformStart)
	observability.Pipeline().OnTransformComplete(ctx, layout.Blocks, result.Stats.TransformTime, err)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}
	result.Layout = layout
	result.Widths = table.ExpandWidths(widths, layout.Blocks)
	result.Stats.Blocks = layout.Blocks

	r.Logger.Debug("transformed table",
		"line_to_wrap", opts.LineToWrap,
		"blocks", layout.Blocks,
		"widths", widths)

	// Stage 3: Render
	renderStart := time.Now()
	out, err := render.Render(layout.Table, result.Widths, opts.Style)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, len(out), result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Output = out

	r.Logger.Debug("rendered table", "bytes", len(out))

	return result, nil
}

// columnWidths returns the explicit widths if given, otherwise the natural
// widths of t. Either way every column must end up at least one wide.
func columnWidths(t table.Table, explicit []int) ([]int, error) {
	if len(explicit) > 0 {
		if err := table.CheckWidths(explicit, t.Columns()); err != nil {
			return nil, err
		}
		return slices.Clone(explicit), nil
	}

	widths := table.NaturalWidths(t)
	if i := slices.Index(widths, 0); i >= 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameter,
			"column %d is empty in every row, so its width is 0; pass an explicit max width", i+1)
	}
	return widths, nil
}
