package diagram

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func twoSingleLeafGroups() Taxonomy {
	return Taxonomy{
		Root: "root",
		Groups: []Group{
			{Key: "a", Label: "A", Leaves: []Leaf{{Label: "a1"}}},
			{Key: "b", Label: "B", Leaves: []Leaf{{Label: "b1"}}},
		},
	}
}

func TestLayoutTwoGroupsSingleLeaf(t *testing.T) {
	cfg := DefaultLayoutConfig()
	d := Layout(twoSingleLeafGroups(), DefaultCanvas(), cfg)

	assert.Equal(t, NodeCentral, d.Central.Kind)
	assert.Equal(t, Point{X: 700, Y: 600}, d.Central.Center)
	require.Len(t, d.Groups, 2)
	require.Len(t, d.Leaves, 2)
	require.Len(t, d.Edges, 4)

	assert.InDelta(t, -math.Pi/2, d.Groups[0].Angle, eps)
	assert.InDelta(t, math.Pi/2, d.Groups[1].Angle, eps)

	// North and south of the centre on the group orbit.
	assert.InDelta(t, 700, d.Groups[0].Center.X, eps)
	assert.InDelta(t, 600-380, d.Groups[0].Center.Y, eps)
	assert.InDelta(t, 600+380, d.Groups[1].Center.Y, eps)

	for i, leaf := range d.Leaves {
		assert.InDelta(t, d.Groups[i].Angle, leaf.Angle, eps)
		assert.False(t, math.IsNaN(leaf.Center.X))
		assert.False(t, math.IsNaN(leaf.Center.Y))
	}
	// Single leaf sits at j=0, the near radius.
	assert.InDelta(t, 600-380-220, d.Leaves[0].Center.Y, eps)
}

func TestLayoutGroupEdgeStopsAtBoundaries(t *testing.T) {
	cfg := DefaultLayoutConfig()
	d := Layout(DefaultTaxonomy(), DefaultCanvas(), cfg)
	c := d.Central.Center
	for i, g := range d.Groups {
		e := d.Edges[edgeIndexOfGroup(DefaultTaxonomy(), i)]
		assert.Equal(t, EdgeLine, e.Kind)
		assert.InDelta(t, cfg.CentralRadius, dist(c, e.From), 1e-6)
		assert.InDelta(t, cfg.GroupRadius, dist(g.Center, e.To), 1e-6)
	}
}

func TestLayoutLeavesFanAcrossSpread(t *testing.T) {
	cfg := DefaultLayoutConfig()
	tax := DefaultTaxonomy()
	d := Layout(tax, DefaultCanvas(), cfg)
	require.Len(t, d.Leaves, tax.LeafCount())

	// First group (AWS, 5 leaves) at −π/2.
	theta := d.Groups[0].Angle
	aws := d.Leaves[:5]
	assert.InDelta(t, theta-cfg.LeafSpread/2, aws[0].Angle, eps)
	assert.InDelta(t, theta+cfg.LeafSpread/2, aws[4].Angle, eps)
	assert.InDelta(t, theta, aws[2].Angle, eps)

	for j, leaf := range aws {
		want := 220.0
		if j%2 == 1 {
			want = 270
		}
		assert.InDelta(t, want, dist(d.Groups[0].Center, leaf.Center), 1e-6)
	}
}

func TestLayoutLeafCurves(t *testing.T) {
	cfg := DefaultLayoutConfig()
	d := Layout(twoSingleLeafGroups(), DefaultCanvas(), cfg)
	e := d.Edges[1]
	require.Equal(t, EdgeCurve, e.Kind)
	require.NotNil(t, e.Control)

	g := d.Groups[0].Center
	leaf := d.Leaves[0]
	assert.InDelta(t, cfg.GroupRadius, dist(g, e.From), 1e-6)
	assert.InDelta(t, cfg.ControlRadius, dist(g, *e.Control), 1e-6)
	// At −π/2 the end inset is 15 along y only.
	assert.InDelta(t, leaf.Center.X, e.To.X, 1e-6)
	assert.InDelta(t, leaf.Center.Y+15, e.To.Y, 1e-6)
}

func TestLayoutDeterministic(t *testing.T) {
	a := Layout(DefaultTaxonomy(), DefaultCanvas(), DefaultLayoutConfig())
	b := Layout(DefaultTaxonomy(), DefaultCanvas(), DefaultLayoutConfig())
	assert.Equal(t, a, b)
}

func TestLayoutEmptyTaxonomy(t *testing.T) {
	d := Layout(Taxonomy{Root: "solo"}, DefaultCanvas(), DefaultLayoutConfig())
	assert.Equal(t, "solo", d.Central.Label)
	assert.Empty(t, d.Groups)
	assert.Empty(t, d.Leaves)
	assert.Empty(t, d.Edges)
}

func TestLeafAngleGuard(t *testing.T) {
	assert.Equal(t, 1.25, LeafAngle(1.25, 0, 1, math.Pi))
	assert.Equal(t, 1.25, LeafAngle(1.25, 0, 0, math.Pi))
	assert.InDelta(t, 1.25+math.Pi/2, LeafAngle(1.25, 1, 2, math.Pi), eps)
}

func TestLabelBox(t *testing.T) {
	m := DefaultLabelMetrics()
	box := m.Box("Claude API", Point{X: 100, Y: 50})
	// 10 runes · 9 + 30
	assert.Equal(t, 120.0, box.Width)
	assert.Equal(t, 36.0, box.Height)
	assert.Equal(t, 40.0, box.X)
	assert.Equal(t, 32.0, box.Y)
	assert.Equal(t, 18.0, box.RX)

	assert.Equal(t, m.Width("éé"), m.Width("ab"))
}

func edgeIndexOfGroup(t Taxonomy, i int) int {
	idx := 0
	for k := 0; k < i; k++ {
		idx += 1 + len(t.Groups[k].Leaves)
	}
	return idx
}

func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
