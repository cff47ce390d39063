package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/tablewrap/pkg/pipeline"
	"github.com/matzehuels/tablewrap/pkg/table"
)

const (
	defaultViewWidth  = 80
	defaultViewHeight = 24
	scrollStep        = 4 // columns per left/right keypress
)

// =============================================================================
// ViewerModel - Interactive table viewer
// =============================================================================

// ViewerModel is the bubbletea model behind --interactive. It shows the
// rendered table in a scrollable window and re-wraps it when the user
// changes the wrap height.
type ViewerModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	table  table.Table
	opts   pipeline.Options

	result *pipeline.Result
	lines  []string
	err    error

	Width, Height int
	XOff, YOff    int
}

// NewViewerModel creates a viewer for an already formatted result.
func NewViewerModel(ctx context.Context, runner *pipeline.Runner, result *pipeline.Result, opts pipeline.Options) ViewerModel {
	m := ViewerModel{
		ctx:    ctx,
		runner: runner,
		table:  result.Table,
		opts:   opts,
		Width:  defaultViewWidth,
		Height: defaultViewHeight,
	}
	m.setResult(result)
	return m
}

func (m *ViewerModel) setResult(r *pipeline.Result) {
	m.result = r
	m.lines = strings.Split(r.Output, "\n")
}

func (m ViewerModel) Init() tea.Cmd {
	return nil
}

func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.YOff--
		case "down", "j":
			m.YOff++
		case "left", "h":
			m.XOff -= scrollStep
		case "right", "l":
			m.XOff += scrollStep
		case "pgup":
			m.YOff -= m.bodyHeight()
		case "pgdown", " ":
			m.YOff += m.bodyHeight()
		case "g", "home":
			m.XOff, m.YOff = 0, 0
		case "G", "end":
			m.YOff = len(m.lines)
		case "+", "=":
			m.rewrap(m.opts.LineToWrap + 1)
		case "-", "_":
			if m.opts.LineToWrap > 1 {
				m.rewrap(m.opts.LineToWrap - 1)
			}
		}
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
	}
	m.clamp()
	return m, nil
}

// rewrap re-renders the table with a new wrap height. On failure the
// previous rendering stays and the error is shown in the status bar.
func (m *ViewerModel) rewrap(lineToWrap int) {
	opts := m.opts
	opts.LineToWrap = lineToWrap
	r, err := m.runner.Format(m.ctx, m.table, opts)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.opts = opts
	m.setResult(r)
}

// bodyHeight is the number of table lines that fit above the status bar.
func (m ViewerModel) bodyHeight() int {
	return max(m.Height-1, 1)
}

func (m *ViewerModel) clamp() {
	maxY := max(len(m.lines)-m.bodyHeight(), 0)
	m.YOff = min(max(m.YOff, 0), maxY)

	widest := 0
	for _, l := range m.lines {
		widest = max(widest, len([]rune(l)))
	}
	maxX := max(widest-m.Width, 0)
	m.XOff = min(max(m.XOff, 0), maxX)
}

func (m ViewerModel) View() string {
	var b strings.Builder

	end := min(m.YOff+m.bodyHeight(), len(m.lines))
	for _, line := range m.lines[m.YOff:end] {
		b.WriteString(sliceRunes(line, m.XOff, m.Width))
		b.WriteString("\n")
	}
	for i := end - m.YOff; i < m.bodyHeight(); i++ {
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine())

	return b.String()
}

func (m ViewerModel) statusLine() string {
	if m.err != nil {
		return styleIconError.Render(iconError) + " " + m.err.Error()
	}
	s := m.result.Stats
	info := fmt.Sprintf("%d rows · %d cols · %d blocks · wrap %s · line %d/%d",
		s.DataRows(), s.Columns, s.Blocks,
		StyleHighlight.Render(fmt.Sprint(m.opts.LineToWrap)),
		m.YOff+1, len(m.lines))
	return info + StyleDim.Render("  ←↑↓→ scroll  +/- wrap  q quit")
}

// sliceRunes returns at most n runes of s starting at rune offset from.
func sliceRunes(s string, from, n int) string {
	r := []rune(s)
	if from >= len(r) {
		return ""
	}
	return string(r[from:min(from+n, len(r))])
}

// runViewer shows result full-screen until the user quits. Keys are read
// from the terminal, since stdin carries the table data.
func runViewer(ctx context.Context, runner *pipeline.Runner, result *pipeline.Result, opts pipeline.Options) error {
	p := tea.NewProgram(
		NewViewerModel(ctx, runner, result, opts),
		tea.WithAltScreen(),
		tea.WithInputTTY(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
