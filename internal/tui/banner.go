package tui

import "github.com/charmbracelet/lipgloss"

// bannerStyle uses the same adaptive color scheme as the header for consistency.
var bannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#4c51bf", Dark: "#667eea"}).
	Bold(true)

// Banner is the title art shown above the text fields.
const Banner = ` ┌─┐┬─┐┬┌─┐┌─┐┌┬┐┌─┐┌─┐
 ├─┘├┬┘││  ├┤ │││├─┤├─┘
 ┴  ┴└─┴└─┘└─┘┴ ┴┴ ┴┴  `

// RenderBanner returns the styled banner.
func RenderBanner() string {
	return bannerStyle.Render(Banner)
}
