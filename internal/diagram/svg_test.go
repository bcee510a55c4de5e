package diagram

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSVG(t *testing.T) {
	d := Layout(DefaultTaxonomy(), DefaultCanvas(), DefaultLayoutConfig())
	var buf bytes.Buffer
	require.NoError(t, RenderSVG(&buf, d))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.Contains(t, out, `viewBox="0 0 1400.00 1200.00"`)
	assert.Contains(t, out, `id="awsGradient"`)
	assert.Contains(t, out, `stop-color="#ff9900"`)
	assert.Contains(t, out, `id="centralGlow"`)
	assert.Contains(t, out, ">AI Services</text>")
	assert.Equal(t, 5, strings.Count(out, "<line "))
	assert.Equal(t, 20, strings.Count(out, "<path "))
	assert.Equal(t, 20, strings.Count(out, "<rect "))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
}

func TestRenderSVGEscapesLabels(t *testing.T) {
	tax := Taxonomy{Root: "R&D", Groups: []Group{{Key: "x", Label: "<x>", Leaves: []Leaf{{Label: "a&b"}}}}}
	var buf bytes.Buffer
	require.NoError(t, RenderSVG(&buf, Layout(tax, DefaultCanvas(), DefaultLayoutConfig())))
	out := buf.String()
	assert.Contains(t, out, "R&amp;D")
	assert.Contains(t, out, "&lt;x&gt;")
	assert.Contains(t, out, "a&amp;b")
	// Unknown keys fall back to the neutral palette.
	assert.Contains(t, out, `id="xGradient"`)
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRenderSVGWriteError(t *testing.T) {
	d := Layout(DefaultTaxonomy(), DefaultCanvas(), DefaultLayoutConfig())
	err := RenderSVG(brokenWriter{}, d)
	assert.ErrorContains(t, err, "closed")
}

func TestPlot(t *testing.T) {
	d := Layout(DefaultTaxonomy(), DefaultCanvas(), DefaultLayoutConfig())
	g := Plot(d, 140, 48, 0)
	out := g.String()
	assert.Contains(t, out, "(AI Services)")
	assert.Contains(t, out, "[AWS]")
	assert.Contains(t, out, "▶ Amazon Bedrock ◀")
	assert.Len(t, g.Lines(), 48)

	unfocused := Plot(d, 140, 48, -1).String()
	assert.NotContains(t, unfocused, "▶")
}

func TestPlotDegenerateCanvas(t *testing.T) {
	g := Plot(Diagram{}, 0, 0, -1)
	assert.Equal(t, []string{""}, g.Lines())
}
