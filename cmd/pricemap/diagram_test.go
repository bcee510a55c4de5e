package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianshen/pricemap/internal/diagram"
)

func TestDiagramCmdSVG(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "diagram")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, `viewBox="0 0 1400.00 1200.00"`)
	assert.Contains(t, out, "Amazon Bedrock")
}

func TestDiagramCmdJSON(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "diagram", "--format", "json", "--width", "800", "--height", "600")
	require.NoError(t, err)

	var d diagram.Diagram
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, 800.0, d.Canvas.Width)
	assert.Equal(t, 600.0, d.Canvas.Height)
	assert.Len(t, d.Groups, 5)
	assert.Len(t, d.Leaves, 20)
	assert.Equal(t, 400.0, d.Central.Center.X)
}

func TestDiagramCmdWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.svg")

	out, err := runCLI(t, dir, "diagram", "--out", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "</svg>")
}

func TestDiagramCmdTextDefaultLinks(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "diagram", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "(AI Services)")
	assert.Contains(t, out, "Pricing pages:")
	assert.Contains(t, out, "https://aws.amazon.com/bedrock/pricing/")
}

func TestDiagramCmdTextFocus(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "diagram", "--format", "text", "--focus", "claude api")
	require.NoError(t, err)
	assert.Contains(t, out, "Anthropic documentation:")
	assert.Contains(t, out, "https://docs.anthropic.com/claude/reference")
	assert.NotContains(t, out, "Pricing pages:")
}

func TestDiagramCmdErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"format", []string{"diagram", "--format", "png"}, "unknown diagram format"},
		{"focus", []string{"diagram", "--format", "text", "--focus", "Nope"}, "unknown service"},
		{"canvas", []string{"diagram", "--width", "0"}, "invalid canvas"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, t.TempDir(), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestServicesCmdFilters(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "services", "--category", "speech")
	require.NoError(t, err)
	assert.Contains(t, out, "Whisper API")
	assert.NotContains(t, out, "Amazon Bedrock")
}

func TestServicesCmdJSON(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "services", "--json")
	require.NoError(t, err)

	var cards []diagram.Card
	require.NoError(t, json.Unmarshal([]byte(out), &cards))
	assert.Len(t, cards, 20)
}

func TestServicesCmdUnknownCategory(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "services", "--category", "robotics")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}
