package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"

	"github.com/julianshen/pricemap/internal/board"
)

const (
	colName     = "name"
	colProvider = "provider"
	colContext  = "context"
	colInput    = "input"
	colOutput   = "output"
	colCost     = "cost"
	colDocs     = "docs"
)

var (
	lowestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#38a169")).Bold(true)
	highestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53e3e"))
	bothStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#d69e2e")).Bold(true)
	featuredStyle = lipgloss.NewStyle().Bold(true)
	emptyStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"})
)

// PriceGrid renders board rows in a scrollable bubble-table.
type PriceGrid struct {
	table   table.Model
	rows    int
	focused bool
}

// NewPriceGrid creates an empty grid showing pageSize rows per page.
func NewPriceGrid(pageSize int) *PriceGrid {
	cols := []table.Column{
		table.NewColumn(colName, "Model", 28),
		table.NewColumn(colProvider, "Provider", 16),
		table.NewColumn(colContext, "Context", 9),
		table.NewColumn(colInput, "Input", 26),
		table.NewColumn(colOutput, "Output", 26),
		table.NewColumn(colCost, "Your cost", 12),
	}
	t := table.New(cols).
		BorderRounded().
		WithPageSize(clampPage(pageSize))
	return &PriceGrid{table: t}
}

func clampPage(n int) int {
	if n < 3 {
		return 3
	}
	return n
}

// SetBoard replaces the grid contents.
func (g *PriceGrid) SetBoard(b board.Board) {
	rows := make([]table.Row, 0, len(b.Rows))
	for _, r := range b.Rows {
		row := table.NewRow(table.RowData{
			colName:     r.Record.DisplayName(),
			colProvider: r.Record.DisplayProvider(),
			colContext:  r.Record.DisplayContext(),
			colInput:    highlightCell(r.InputLabel(), r.InputHighlight),
			colOutput:   highlightCell(r.OutputLabel(), r.OutputHighlight),
			colCost:     r.CostLabel(),
			colDocs:     r.Record.DocumentationURL,
		})
		if r.Record.Featured {
			row = row.WithStyle(featuredStyle)
		}
		rows = append(rows, row)
	}
	g.rows = len(rows)
	g.table = g.table.WithRows(rows)
}

// highlightCell styles a price label by its extreme flag. Plain labels are
// returned as strings.
func highlightCell(label string, h board.Highlight) any {
	switch h {
	case board.HighlightLowest:
		return table.NewStyledCell(label, lowestStyle)
	case board.HighlightHighest:
		return table.NewStyledCell(label, highestStyle)
	case board.HighlightBoth:
		return table.NewStyledCell(label, bothStyle)
	}
	return label
}

// Len returns the number of rows.
func (g *PriceGrid) Len() int { return g.rows }

// SetPageSize changes the number of visible rows.
func (g *PriceGrid) SetPageSize(n int) {
	g.table = g.table.WithPageSize(clampPage(n))
}

// Focus enables row navigation.
func (g *PriceGrid) Focus() {
	g.focused = true
	g.table = g.table.Focused(true)
}

// Blur disables row navigation.
func (g *PriceGrid) Blur() {
	g.focused = false
	g.table = g.table.Focused(false)
}

// Focused reports whether the grid has focus.
func (g *PriceGrid) Focused() bool { return g.focused }

// SelectedDocURL returns the documentation URL of the highlighted row.
func (g *PriceGrid) SelectedDocURL() string {
	if g.rows == 0 {
		return ""
	}
	url, _ := g.table.HighlightedRow().Data[colDocs].(string)
	return url
}

// Update forwards navigation keys to the table.
func (g *PriceGrid) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	g.table, cmd = g.table.Update(msg)
	return cmd
}

// View renders the table, or a placeholder when no rows match.
func (g *PriceGrid) View() string {
	if g.rows == 0 {
		return emptyStyle.Render("No models match the current filters.")
	}
	return g.table.View()
}
