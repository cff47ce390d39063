package table

import (
	"slices"
	"testing"

	"github.com/matzehuels/tablewrap/pkg/errors"
)

func TestNaturalWidths(t *testing.T) {
	tests := []struct {
		name  string
		table Table
		want  []int
	}{
		{
			name:  "empty table",
			table: nil,
			want:  nil,
		},
		{
			name:  "header wider than data",
			table: Table{{"name", "id"}, {"al", "1"}},
			want:  []int{4, 2},
		},
		{
			name:  "data wider than header",
			table: Table{{"a", "b"}, {"hello", "1"}, {"x", "12345678"}},
			want:  []int{5, 8},
		},
		{
			name:  "code points not bytes",
			table: Table{{"名前", "ü"}, {"東京都", "äöü"}},
			want:  []int{3, 3},
		},
		{
			name:  "all empty column",
			table: Table{{"", "a"}, {"", "b"}},
			want:  []int{0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NaturalWidths(tt.table); !slices.Equal(got, tt.want) {
				t.Errorf("NaturalWidths() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpandWidths(t *testing.T) {
	tests := []struct {
		name   string
		widths []int
		blocks int
		want   []int
	}{
		{"zero blocks", []int{1, 2}, 0, []int{}},
		{"one block", []int{1, 2}, 1, []int{1, 2}},
		{"three blocks", []int{3, 1, 4}, 3, []int{3, 1, 4, 3, 1, 4, 3, 1, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandWidths(tt.widths, tt.blocks)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ExpandWidths() = %v, want %v", got, tt.want)
			}
			if len(got) != len(tt.widths)*tt.blocks {
				t.Errorf("len = %d, want %d", len(got), len(tt.widths)*tt.blocks)
			}
		})
	}
}

func TestExpandWidthsDoesNotAlias(t *testing.T) {
	widths := []int{1, 2}
	got := ExpandWidths(widths, 1)
	got[0] = 99
	if widths[0] != 1 {
		t.Error("ExpandWidths should not share storage with its input")
	}
}

func TestParseWidths(t *testing.T) {
	tests := []struct {
		input    string
		want     []int
		wantCode errors.Code
	}{
		{"1,4,2,3,4", []int{1, 4, 2, 3, 4}, ""},
		{"7", []int{7}, ""},
		{" 3 , 5 ", []int{3, 5}, ""},
		{"", nil, errors.ErrCodeInvalidConfig},
		{"1,,2", nil, errors.ErrCodeInvalidConfig},
		{"1,x", nil, errors.ErrCodeInvalidConfig},
		{"1,0", nil, errors.ErrCodeInvalidParameter},
		{"-2", nil, errors.ErrCodeInvalidParameter},
	}

	for _, tt := range tests {
		got, err := ParseWidths(tt.input)
		if tt.wantCode != "" {
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("ParseWidths(%q) error = %v, want code %v", tt.input, err, tt.wantCode)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWidths(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("ParseWidths(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCheckWidths(t *testing.T) {
	tests := []struct {
		name     string
		widths   []int
		columns  int
		wantCode errors.Code
	}{
		{"matching", []int{1, 2, 3}, 3, ""},
		{"too few", []int{1, 2}, 3, errors.ErrCodeConfigMismatch},
		{"too many", []int{1, 2, 3, 4}, 3, errors.ErrCodeConfigMismatch},
		{"zero entry", []int{1, 0, 3}, 3, errors.ErrCodeInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckWidths(tt.widths, tt.columns)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("CheckWidths() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("CheckWidths() error = %v, want code %v", err, tt.wantCode)
			}
		})
	}
}
