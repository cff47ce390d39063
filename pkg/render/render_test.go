package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/tablewrap/pkg/errors"
	"github.com/matzehuels/tablewrap/pkg/table"
)

func TestRender(t *testing.T) {
	tbl := table.Table{
		{"a", "b", "a", "b"},
		{"1", "2", "5", "6"},
		{"3", "4", "", ""},
	}

	got, err := Render(tbl, []int{1, 1, 1, 1}, DefaultStyle)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := strings.Join([]string{
		"+---+---+---+---+",
		"| a | b | a | b |",
		"+===+===+===+===+",
		"| 1 | 2 | 5 | 6 |",
		"+---+---+---+---+",
		"| 3 | 4 |   |   |",
		"+---+---+---+---+",
	}, "\n")
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderWrapsCells(t *testing.T) {
	tbl := table.Table{
		{"word", "n"},
		{"hello", "42"},
	}

	got, err := Render(tbl, []int{2, 2}, Style{Light: '.', Heavy: '#'})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := strings.Join([]string{
		"+....+....+",
		"| wo |  n |",
		"| rd |    |",
		"+####+####+",
		"| he | 42 |",
		"| ll |    |",
		"|  o |    |",
		"+....+....+",
	}, "\n")
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderEmptyTable(t *testing.T) {
	got, err := Render(nil, nil, DefaultStyle)
	if err != nil || got != "" {
		t.Errorf("Render(nil) = %q, %v; want empty string, nil", got, err)
	}
}

func TestRenderNoTrailingNewline(t *testing.T) {
	got, err := Render(table.Table{{"x"}}, []int{1}, DefaultStyle)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("Render() output should not end with a newline")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	tbl := table.Table{{"k", "v"}, {"alpha", "1"}, {"beta", "22"}}
	widths := []int{3, 2}

	first, err := Render(tbl, widths, DefaultStyle)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	second, _ := Render(tbl, widths, DefaultStyle)
	if first != second {
		t.Error("Render() should produce identical output for identical input")
	}
}

func TestRenderErrors(t *testing.T) {
	tbl := table.Table{{"a", "b"}, {"1", "2"}}

	tests := []struct {
		name     string
		widths   []int
		style    Style
		wantCode errors.Code
	}{
		{"zero width", []int{1, 0}, DefaultStyle, errors.ErrCodeInvalidParameter},
		{"too few widths", []int{1}, DefaultStyle, errors.ErrCodeConfigMismatch},
		{"too many widths", []int{1, 1, 1}, DefaultStyle, errors.ErrCodeConfigMismatch},
		{"blank rule", []int{1, 1}, Style{Light: ' ', Heavy: '='}, errors.ErrCodeInvalidParameter},
		{"unset rule", []int{1, 1}, Style{Light: '-'}, errors.ErrCodeInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tbl, tt.widths, tt.style)
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Render() error = %v, want code %v", err, tt.wantCode)
			}
		})
	}
}

func TestRule(t *testing.T) {
	tests := []struct {
		widths []int
		ch     rune
		want   string
	}{
		{[]int{1}, '-', "+---+"},
		{[]int{2, 4}, '=', "+====+======+"},
		{[]int{3, 1, 2}, '─', "+─────+───+────+"},
		{nil, '-', "++"},
	}

	for _, tt := range tests {
		if got := Rule(tt.widths, tt.ch); got != tt.want {
			t.Errorf("Rule(%v, %q) = %q, want %q", tt.widths, tt.ch, got, tt.want)
		}
	}
}
