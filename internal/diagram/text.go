package diagram

import (
	"math"
	"strings"
)

// Grid is a character canvas used to plot a diagram in a terminal.
type Grid struct {
	cols, rows int
	cells      [][]rune
}

// NewGrid returns a blank grid of the given size.
func NewGrid(cols, rows int) *Grid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", cols))
	}
	return &Grid{cols: cols, rows: rows, cells: cells}
}

func (g *Grid) set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= g.cols || y >= g.rows {
		return
	}
	g.cells[y][x] = r
}

// text writes s centred on (x, y), clipped to the grid.
func (g *Grid) text(x, y int, s string) {
	runes := []rune(s)
	start := x - len(runes)/2
	for i, r := range runes {
		g.set(start+i, y, r)
	}
}

// Lines returns the grid rows with trailing spaces removed.
func (g *Grid) Lines() []string {
	out := make([]string, g.rows)
	for i, row := range g.cells {
		out[i] = strings.TrimRight(string(row), " ")
	}
	return out
}

// String joins Lines with newlines.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// Plot scales d onto a cols×rows grid. Edges are sampled as dots, nodes are
// drawn as their labels. The leaf at index focus, if any, is bracketed.
func Plot(d Diagram, cols, rows, focus int) *Grid {
	g := NewGrid(cols, rows)
	if d.Canvas.Width <= 0 || d.Canvas.Height <= 0 {
		return g
	}
	sx := float64(g.cols-1) / d.Canvas.Width
	sy := float64(g.rows-1) / d.Canvas.Height
	cell := func(p Point) (int, int) {
		return int(math.Round(p.X * sx)), int(math.Round(p.Y * sy))
	}

	for _, e := range d.Edges {
		const steps = 24
		for i := 0; i <= steps; i++ {
			x, y := cell(edgePoint(e, float64(i)/steps))
			g.set(x, y, '·')
		}
	}

	x, y := cell(d.Central.Center)
	g.text(x, y, "("+d.Central.Label+")")
	for _, n := range d.Groups {
		x, y := cell(n.Center)
		g.text(x, y, "["+n.Label+"]")
	}
	for i, n := range d.Leaves {
		x, y := cell(n.Center)
		label := n.Label
		if i == focus {
			label = "▶ " + label + " ◀"
		}
		g.text(x, y, label)
	}
	return g
}

// edgePoint returns the point at parameter t ∈ [0, 1] along e.
func edgePoint(e Edge, t float64) Point {
	if e.Kind == EdgeCurve && e.Control != nil {
		u := 1 - t
		c := *e.Control
		return Point{
			X: u*u*e.From.X + 2*u*t*c.X + t*t*e.To.X,
			Y: u*u*e.From.Y + 2*u*t*c.Y + t*t*e.To.Y,
		}
	}
	return Point{
		X: e.From.X + (e.To.X-e.From.X)*t,
		Y: e.From.Y + (e.To.Y-e.From.Y)*t,
	}
}
