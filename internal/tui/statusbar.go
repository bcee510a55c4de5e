package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar displays token counts, the active filters, the cheapest model
// and when the catalog was last refreshed.
type StatusBar struct {
	width        int
	inputTokens  int
	outputTokens int
	provider     string
	class        string
	cheapest     string
	updated      time.Time
	notice       string
	style        lipgloss.Style
}

// NewStatusBar creates a new StatusBar with the given terminal width.
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{
		width: width,
		style: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}),
	}
}

// SetWidth sets the render width.
func (s *StatusBar) SetWidth(w int) { s.width = w }

// SetTokens sets the input and output token estimates.
func (s *StatusBar) SetTokens(in, out int) { s.inputTokens = in; s.outputTokens = out }

// SetFilters sets the active provider and class tabs.
func (s *StatusBar) SetFilters(provider, class string) { s.provider = provider; s.class = class }

// SetCheapest sets the cheapest model name, or "" for none.
func (s *StatusBar) SetCheapest(name string) { s.cheapest = name }

// SetUpdated sets the last-updated instant.
func (s *StatusBar) SetUpdated(t time.Time) { s.updated = t }

// SetNotice sets a transient message such as a refresh error.
func (s *StatusBar) SetNotice(msg string) { s.notice = msg }

// View renders the status bar as a styled string.
func (s *StatusBar) View() string {
	line := fmt.Sprintf(" In %s · Out %s tokens  %s/%s",
		formatTokens(s.inputTokens),
		formatTokens(s.outputTokens),
		s.provider, s.class,
	)
	if s.cheapest != "" {
		line += "  Cheapest: " + s.cheapest
	}
	if !s.updated.IsZero() {
		line += "  Updated " + s.updated.Local().Format(time.DateTime)
	}
	if s.notice != "" {
		line += "  " + s.notice
	}
	style := s.style
	if s.width > 0 {
		style = style.MaxWidth(s.width)
	}
	return style.Render(line)
}

// formatTokens formats a token count for compact display.
func formatTokens(n int) string {
	if n >= 1000 {
		if n%1000 == 0 {
			return fmt.Sprintf("%dk", n/1000)
		}
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	}
	return fmt.Sprintf("%d", n)
}
