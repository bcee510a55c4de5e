package diagram

import "math"

// Canvas is the drawing area in user units.
type Canvas struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DefaultCanvas is the 1400×1200 view box.
func DefaultCanvas() Canvas {
	return Canvas{Width: 1400, Height: 1200}
}

// Center returns the midpoint of the canvas.
func (c Canvas) Center() Point {
	return Point{X: c.Width / 2, Y: c.Height / 2}
}

// LayoutConfig holds the geometric constants of the radial layout.
type LayoutConfig struct {
	CentralRadius float64
	CentralGlow   float64
	GroupOrbit    float64
	GroupRadius   float64
	GroupGlow     float64
	// LeafSpread is the angular width of the arc a group's leaves fan across.
	LeafSpread float64
	// Leaves alternate between LeafDistance and LeafDistance+LeafStagger.
	LeafDistance  float64
	LeafStagger   float64
	ControlRadius float64
	// Connectors stop short of the leaf centre by LeafInsetX·cos θ and
	// LeafInsetY·sin θ so they end at the label's rounded edge.
	LeafInsetX float64
	LeafInsetY float64
	Label      LabelMetrics
}

// DefaultLayoutConfig returns the standard mind-map geometry.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		CentralRadius: 70,
		CentralGlow:   85,
		GroupOrbit:    380,
		GroupRadius:   50,
		GroupGlow:     60,
		LeafSpread:    1.4 * math.Pi,
		LeafDistance:  220,
		LeafStagger:   50,
		ControlRadius: 105,
		LeafInsetX:    45,
		LeafInsetY:    15,
		Label:         DefaultLabelMetrics(),
	}
}

// Point is a position on the canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polar returns the point at distance r from p along angle theta.
func (p Point) Polar(theta, r float64) Point {
	return Point{X: p.X + math.Cos(theta)*r, Y: p.Y + math.Sin(theta)*r}
}

// NodeKind distinguishes the three tiers of the diagram.
type NodeKind string

const (
	NodeCentral NodeKind = "central"
	NodeGroup   NodeKind = "group"
	NodeLeaf    NodeKind = "leaf"
)

// Node is one positioned label. Central and group nodes are circles; leaf
// nodes carry a label box.
type Node struct {
	Kind   NodeKind `json:"kind"`
	Label  string   `json:"label"`
	Center Point    `json:"center"`
	Angle  float64  `json:"angle"`
	Radius float64  `json:"radius,omitempty"`
	Glow   float64  `json:"glow,omitempty"`
	Box    *Rect    `json:"box,omitempty"`
	// GroupKey is the owning group's key for group and leaf nodes.
	GroupKey string `json:"group_key,omitempty"`
	// Group is the owning group's label, used for hover lookups.
	Group  string `json:"group,omitempty"`
	DocURL string `json:"doc_url,omitempty"`
}

// EdgeKind is the connector shape.
type EdgeKind string

const (
	EdgeLine  EdgeKind = "line"
	EdgeCurve EdgeKind = "curve"
)

// Edge connects two node boundaries. Curves are quadratic Béziers through
// Control.
type Edge struct {
	Kind     EdgeKind `json:"kind"`
	From     Point    `json:"from"`
	To       Point    `json:"to"`
	Control  *Point   `json:"control,omitempty"`
	GroupKey string   `json:"group_key"`
}

// Diagram is the complete layout result.
type Diagram struct {
	Canvas  Canvas `json:"canvas"`
	Central Node   `json:"central"`
	Groups  []Node `json:"groups"`
	Leaves  []Node `json:"leaves"`
	Edges   []Edge `json:"edges"`
}

// GroupAngle returns the angle of group i out of n, starting due north.
func GroupAngle(i, n int) float64 {
	return float64(i)*(2*math.Pi/float64(n)) - math.Pi/2
}

// LeafAngle returns the angle of leaf j out of m fanned across spread around
// groupAngle. A single leaf sits on the group's own angle.
func LeafAngle(groupAngle float64, j, m int, spread float64) float64 {
	if m <= 1 {
		return groupAngle
	}
	return groupAngle - spread/2 + float64(j)/float64(m-1)*spread
}

// Layout positions every node of t on canvas. The result depends only on
// its inputs.
func Layout(t Taxonomy, canvas Canvas, cfg LayoutConfig) Diagram {
	center := canvas.Center()
	d := Diagram{
		Canvas: canvas,
		Central: Node{
			Kind:   NodeCentral,
			Label:  t.Root,
			Center: center,
			Radius: cfg.CentralRadius,
			Glow:   cfg.CentralGlow,
		},
		Groups: make([]Node, 0, len(t.Groups)),
		Leaves: make([]Node, 0, t.LeafCount()),
		Edges:  make([]Edge, 0, len(t.Groups)+t.LeafCount()),
	}

	n := len(t.Groups)
	for i, g := range t.Groups {
		theta := GroupAngle(i, n)
		pos := center.Polar(theta, cfg.GroupOrbit)
		d.Groups = append(d.Groups, Node{
			Kind:     NodeGroup,
			Label:    g.Label,
			Center:   pos,
			Angle:    theta,
			Radius:   cfg.GroupRadius,
			Glow:     cfg.GroupGlow,
			GroupKey: g.Key,
			Group:    g.Label,
		})
		d.Edges = append(d.Edges, Edge{
			Kind:     EdgeLine,
			From:     center.Polar(theta, cfg.CentralRadius),
			To:       pos.Polar(theta, -cfg.GroupRadius),
			GroupKey: g.Key,
		})

		m := len(g.Leaves)
		for j, leaf := range g.Leaves {
			phi := LeafAngle(theta, j, m, cfg.LeafSpread)
			dist := cfg.LeafDistance + float64(j%2)*cfg.LeafStagger
			lp := pos.Polar(phi, dist)
			box := cfg.Label.Box(leaf.Label, lp)
			ctrl := pos.Polar(phi, cfg.ControlRadius)
			d.Leaves = append(d.Leaves, Node{
				Kind:     NodeLeaf,
				Label:    leaf.Label,
				Center:   lp,
				Angle:    phi,
				Box:      &box,
				GroupKey: g.Key,
				Group:    g.Label,
				DocURL:   leaf.DocURL,
			})
			d.Edges = append(d.Edges, Edge{
				Kind: EdgeCurve,
				From: pos.Polar(phi, cfg.GroupRadius),
				To: Point{
					X: lp.X - math.Cos(phi)*cfg.LeafInsetX,
					Y: lp.Y - math.Sin(phi)*cfg.LeafInsetY,
				},
				Control:  &ctrl,
				GroupKey: g.Key,
			})
		}
	}
	return d
}
