package pipeline

import (
	"math"
	"testing"

	"github.com/matzehuels/tablewrap/pkg/errors"
	"github.com/matzehuels/tablewrap/pkg/render"
)

func TestOptionsDefaults(t *testing.T) {
	opts := Options{LineToWrap: 3}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Valid options should pass: %v", err)
	}
	if opts.Delimiter != DefaultDelimiter {
		t.Errorf("Delimiter = %q, want %q", opts.Delimiter, DefaultDelimiter)
	}
	if opts.Style != DefaultStyle {
		t.Errorf("Style = %v, want %v", opts.Style, DefaultStyle)
	}
}

func TestOptionsDefaultsKeepExplicitValues(t *testing.T) {
	style := render.Style{Light: '~', Heavy: '#'}
	opts := Options{LineToWrap: 1, Delimiter: ";", Style: style}
	opts.SetDefaults()

	if opts.Delimiter != ";" {
		t.Errorf("Delimiter = %q, want %q", opts.Delimiter, ";")
	}
	if opts.Style != style {
		t.Errorf("Style = %v, want %v", opts.Style, style)
	}
}

func TestStatsDataRows(t *testing.T) {
	tests := []struct {
		rows int
		want int
	}{
		{0, 0},
		{1, 0},
		{4, 3},
	}

	for _, tt := range tests {
		if got := (Stats{Rows: tt.rows}).DataRows(); got != tt.want {
			t.Errorf("Stats{Rows: %d}.DataRows() = %d, want %d", tt.rows, got, tt.want)
		}
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantCode errors.Code
	}{
		{
			name: "valid",
			opts: Options{LineToWrap: 5, MaxWidths: []int{1, 2}},
		},
		{
			name:     "zero line_to_wrap",
			opts:     Options{LineToWrap: 0},
			wantCode: errors.ErrCodeInvalidParameter,
		},
		{
			name:     "negative line_to_wrap",
			opts:     Options{LineToWrap: -3},
			wantCode: errors.ErrCodeInvalidParameter,
		},
		{
			name:     "line_to_wrap above maximum",
			opts:     Options{LineToWrap: math.MaxInt},
			wantCode: errors.ErrCodeInvalidParameter,
		},
		{
			name:     "zero max width",
			opts:     Options{LineToWrap: 5, MaxWidths: []int{3, 0}},
			wantCode: errors.ErrCodeInvalidParameter,
		},
		{
			name:     "bad style",
			opts:     Options{LineToWrap: 5, Style: render.Style{Light: '-', Heavy: '\t'}},
			wantCode: errors.ErrCodeInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("ValidateAndSetDefaults() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("ValidateAndSetDefaults() error = %v, want code %v", err, tt.wantCode)
			}
		})
	}
}
