package diagram

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"sort"
	"strconv"
)

// gradient is a two-stop colour pair.
type gradient struct{ from, to string }

var (
	centralColors = gradient{"#667eea", "#4c51bf"}
	groupColors   = map[string]gradient{
		"aws":       {"#ff9900", "#e68900"},
		"azure":     {"#0078d4", "#106ebe"},
		"gcp":       {"#4285f4", "#3367d6"},
		"openai":    {"#10a37f", "#0d8f72"},
		"anthropic": {"#d97706", "#c2680a"},
	}
	fallbackGroupColors = gradient{"#a0aec0", "#718096"}
)

// GroupColor returns the primary colour of a group key.
func GroupColor(key string) string {
	if g, ok := groupColors[key]; ok {
		return g.from
	}
	return fallbackGroupColors.from
}

// svgWriter accumulates the first write error so the drawing code can stay
// linear.
type svgWriter struct {
	w   *bufio.Writer
	err error
}

func (s *svgWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// RenderSVG writes d as a standalone SVG document.
func RenderSVG(w io.Writer, d Diagram) error {
	s := &svgWriter{w: bufio.NewWriter(w)}
	s.printf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(d.Canvas.Width), num(d.Canvas.Height), num(d.Canvas.Width), num(d.Canvas.Height))
	writeDefs(s, d)
	writeStyle(s)

	for _, e := range d.Edges {
		switch e.Kind {
		case EdgeLine:
			s.printf(`  <line class="mindmap-line" x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n",
				num(e.From.X), num(e.From.Y), num(e.To.X), num(e.To.Y))
		case EdgeCurve:
			c := e.From
			if e.Control != nil {
				c = *e.Control
			}
			s.printf(`  <path class="mindmap-connection" d="M %s %s Q %s %s %s %s"/>`+"\n",
				num(e.From.X), num(e.From.Y), num(c.X), num(c.Y), num(e.To.X), num(e.To.Y))
		}
	}

	c := d.Central
	s.printf(`  <g class="mindmap-node">` + "\n")
	s.printf(`    <circle cx="%s" cy="%s" r="%s" fill="url(#centralGlow)" opacity="0.3"/>`+"\n", num(c.Center.X), num(c.Center.Y), num(c.Glow))
	s.printf(`    <circle class="mindmap-central" cx="%s" cy="%s" r="%s" fill="url(#centralGradient)"/>`+"\n", num(c.Center.X), num(c.Center.Y), num(c.Radius))
	s.printf(`    <text class="mindmap-text central" x="%s" y="%s">%s</text>`+"\n", num(c.Center.X), num(c.Center.Y), html.EscapeString(c.Label))
	s.printf("  </g>\n")

	for _, g := range d.Groups {
		s.printf(`  <g class="mindmap-node">` + "\n")
		s.printf(`    <circle cx="%s" cy="%s" r="%s" fill="url(#%sGlow)" opacity="0.2"/>`+"\n", num(g.Center.X), num(g.Center.Y), num(g.Glow), g.GroupKey)
		s.printf(`    <circle class="mindmap-branch provider-%s" cx="%s" cy="%s" r="%s" fill="url(#%sGradient)"/>`+"\n",
			g.GroupKey, num(g.Center.X), num(g.Center.Y), num(g.Radius), g.GroupKey)
		s.printf(`    <text class="mindmap-text branch" x="%s" y="%s">%s</text>`+"\n", num(g.Center.X), num(g.Center.Y), html.EscapeString(g.Label))
		s.printf("  </g>\n")
	}

	for _, l := range d.Leaves {
		s.printf(`  <g class="mindmap-node" data-group="%s">`+"\n", html.EscapeString(l.Group))
		if l.DocURL != "" {
			s.printf(`    <title>%s</title>`+"\n", html.EscapeString(l.DocURL))
		}
		if l.Box != nil {
			b := l.Box
			s.printf(`    <rect class="mindmap-leaf" x="%s" y="%s" width="%s" height="%s" rx="%s" ry="%s" fill="url(#leafGradient)"/>`+"\n",
				num(b.X), num(b.Y), num(b.Width), num(b.Height), num(b.RX), num(b.RX))
		}
		s.printf(`    <text class="mindmap-text leaf" x="%s" y="%s">%s</text>`+"\n", num(l.Center.X), num(l.Center.Y), html.EscapeString(l.Label))
		s.printf("  </g>\n")
	}

	s.printf("</svg>\n")
	if s.err != nil {
		return fmt.Errorf("writing svg: %w", s.err)
	}
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	return nil
}

func writeDefs(s *svgWriter, d Diagram) {
	s.printf("  <defs>\n")
	radial(s, "centralGradient", centralColors, false)
	radial(s, "centralGlow", gradient{centralColors.from, centralColors.from}, true)
	radial(s, "branchGradient", gradient{"#ffffff", "#f7fafc"}, false)
	linear(s, "leafGradient", gradient{"#ffffff", "#edf2f7"})
	linear(s, "lineGradient", gradient{"#a0aec0", "#cbd5e0"})
	linear(s, "connectionGradient", gradient{"#e2e8f0", "#cbd5e0"})

	keys := make([]string, 0, len(d.Groups))
	seen := map[string]bool{}
	for _, g := range d.Groups {
		if !seen[g.GroupKey] {
			seen[g.GroupKey] = true
			keys = append(keys, g.GroupKey)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		colors, ok := groupColors[k]
		if !ok {
			colors = fallbackGroupColors
		}
		radial(s, k+"Gradient", colors, false)
		radial(s, k+"Glow", gradient{colors.from, colors.from}, true)
	}
	s.printf("  </defs>\n")
}

func radial(s *svgWriter, id string, g gradient, glow bool) {
	s.printf(`    <radialGradient id="%s">`+"\n", id)
	if glow {
		s.printf(`      <stop offset="0%%" stop-color="%s" stop-opacity="0.4"/>`+"\n", g.from)
		s.printf(`      <stop offset="100%%" stop-color="%s" stop-opacity="0"/>`+"\n", g.to)
	} else {
		s.printf(`      <stop offset="0%%" stop-color="%s"/>`+"\n", g.from)
		s.printf(`      <stop offset="100%%" stop-color="%s"/>`+"\n", g.to)
	}
	s.printf("    </radialGradient>\n")
}

func linear(s *svgWriter, id string, g gradient) {
	s.printf(`    <linearGradient id="%s">`+"\n", id)
	s.printf(`      <stop offset="0%%" stop-color="%s"/>`+"\n", g.from)
	s.printf(`      <stop offset="100%%" stop-color="%s"/>`+"\n", g.to)
	s.printf("    </linearGradient>\n")
}

func writeStyle(s *svgWriter) {
	s.printf(`  <style>
    .mindmap-line { stroke: url(#lineGradient); stroke-width: 3; }
    .mindmap-connection { fill: none; stroke: url(#connectionGradient); stroke-width: 2; }
    .mindmap-leaf { stroke: #cbd5e0; stroke-width: 1; }
    .mindmap-text { text-anchor: middle; dominant-baseline: middle; font-family: sans-serif; }
    .mindmap-text.central { fill: #ffffff; font-size: 18px; font-weight: 700; }
    .mindmap-text.branch { fill: #ffffff; font-size: 14px; font-weight: 600; }
    .mindmap-text.leaf { fill: #2d3748; font-size: 13px; }
  </style>
`)
}
