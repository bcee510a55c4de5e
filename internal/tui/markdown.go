package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/julianshen/pricemap/internal/diagram"
)

// MarkdownRenderer wraps Glamour for rendering markdown to styled terminal output.
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer creates a MarkdownRenderer with dark style
// and the given word wrap width. Dark style is used instead of auto-detect
// because the TUI runs inside Bubble Tea which manages the terminal directly.
// Returns an error if the Glamour renderer cannot be created.
func NewMarkdownRenderer(width int) (*MarkdownRenderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating glamour renderer: %w", err)
	}
	return &MarkdownRenderer{renderer: r}, nil
}

// Render processes markdown text into styled terminal output.
func (m *MarkdownRenderer) Render(md string) (string, error) {
	if md == "" {
		return "", nil
	}
	if m == nil || m.renderer == nil {
		return md, nil
	}
	return m.renderer.Render(md)
}

// LinksMarkdown formats a link list under a heading. An empty list renders
// a placeholder line.
func LinksMarkdown(title string, links []diagram.Link) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", title)
	if len(links) == 0 {
		b.WriteString("_No links available._\n")
		return b.String()
	}
	for _, l := range links {
		fmt.Fprintf(&b, "- [%s](%s)\n", l.Name, l.URL)
	}
	return b.String()
}
