package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianshen/pricemap/internal/catalog"
	"github.com/julianshen/pricemap/internal/diagram"
)

// Style definitions for the TUI view.
var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#EEEEEE"})
	fieldStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"})
	activeTabStyle = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#667eea"))
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"})
	cardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(30)
)

// View implements tea.Model. It renders the TUI as a string.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if m.uiState == StateConfigOverlay && m.configForm != nil {
		return m.configForm.Form().View()
	}

	var b strings.Builder
	b.WriteString(RenderBanner())
	b.WriteString("\n")

	switch m.view {
	case ViewDiagram:
		b.WriteString(m.diagramView())
	case ViewServices:
		b.WriteString(m.servicesView())
	default:
		b.WriteString(m.gridView())
	}

	b.WriteString("\n")
	b.WriteString(m.statusBar.View())
	b.WriteString("\n")
	b.WriteString(help.New().ShortHelpView(m.keys.ShortHelp()))
	return b.String()
}

func (m *Model) gridView() string {
	var b strings.Builder
	fields := lipgloss.JoinHorizontal(lipgloss.Top,
		m.fieldView(m.input, m.state.Tokens.Input),
		"  ",
		m.fieldView(m.output, m.state.Tokens.Output),
	)
	b.WriteString(fields)
	b.WriteString("\n")

	providers := make([]string, 0, len(catalog.ProviderGroups()))
	for _, g := range catalog.ProviderGroups() {
		providers = append(providers, string(g))
	}
	classes := make([]string, 0, len(catalog.ModelClasses()))
	for _, c := range catalog.ModelClasses() {
		classes = append(classes, string(c))
	}
	b.WriteString(renderTabs("Provider", providers, string(m.state.Selection.Provider)))
	b.WriteString("\n")
	b.WriteString(renderTabs("Class   ", classes, string(m.state.Selection.Class)))
	b.WriteString("\n")
	b.WriteString(m.grid.View())
	if url := m.grid.SelectedDocURL(); m.grid.Focused() && url != "" {
		b.WriteString("\n")
		b.WriteString(fieldStyle.Render("Docs: " + url))
	}
	return b.String()
}

func (m *Model) fieldView(ia *InputArea, tokens int) string {
	title := fmt.Sprintf("%s · %d tokens", ia.Title(), tokens)
	return lipgloss.JoinVertical(lipgloss.Left, fieldStyle.Render(title), ia.View())
}

func (m *Model) diagramView() string {
	cols := m.width - 2
	if cols < 40 {
		cols = 40
	}
	rows := m.height - 14
	if rows < 12 {
		rows = 12
	}
	plot := diagram.Plot(m.diagram, cols, rows, m.leafFocus).String()

	title := "Official sources"
	if g := m.selector.Group(); g != "" {
		title = g + " documentation"
	}
	links, err := m.mdRenderer.Render(LinksMarkdown(title, m.selector.Current()))
	if err != nil {
		links = LinksMarkdown(title, m.selector.Current())
	}
	return headerStyle.Render(m.diagram.Central.Label) + "\n" + plot + "\n" + links
}

func (m *Model) servicesView() string {
	var b strings.Builder
	b.WriteString(renderTabs("Category", m.categories, m.categories[m.category]))
	b.WriteString("\n")

	cards := m.VisibleCards()
	tiles := make([]string, 0, len(cards))
	for _, c := range cards {
		body := headerStyle.Render(c.Title) + "\n" +
			fieldStyle.Render(c.Group+" · "+c.Category) + "\n" +
			c.URL
		tiles = append(tiles, cardStyle.Render(body))
	}

	perRow := m.width / 34
	if perRow < 1 {
		perRow = 1
	}
	for i := 0; i < len(tiles); i += perRow {
		end := i + perRow
		if end > len(tiles) {
			end = len(tiles)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tiles[i:end]...))
		b.WriteString("\n")
	}
	return b.String()
}

func renderTabs(label string, names []string, active string) string {
	parts := make([]string, 0, len(names)+1)
	parts = append(parts, fieldStyle.Render(label+":"))
	for _, n := range names {
		if n == active {
			parts = append(parts, activeTabStyle.Render(n))
		} else {
			parts = append(parts, tabStyle.Render(n))
		}
	}
	return strings.Join(parts, " ")
}
