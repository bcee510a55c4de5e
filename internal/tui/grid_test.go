package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julianshen/pricemap/internal/board"
	"github.com/julianshen/pricemap/internal/catalog"
)

func TestPriceGridRows(t *testing.T) {
	g := NewPriceGrid(10)
	g.SetBoard(board.Build(testRecords(), board.NewState()))
	assert.Equal(t, 3, g.Len())
	view := g.View()
	assert.Contains(t, view, "GPT-4")
	assert.Contains(t, view, "Your cost")
}

func TestPriceGridEmpty(t *testing.T) {
	g := NewPriceGrid(10)
	s := board.NewState()
	s.SetProvider(catalog.GroupGCP)
	g.SetBoard(board.Build(testRecords(), s))
	assert.Equal(t, 0, g.Len())
	assert.Contains(t, g.View(), "No models match")
	assert.Empty(t, g.SelectedDocURL())
}

func TestPriceGridSelectedDocURL(t *testing.T) {
	g := NewPriceGrid(10)
	g.SetBoard(board.Build(testRecords(), board.NewState()))
	g.Focus()
	assert.True(t, g.Focused())
	assert.Equal(t, "https://platform.openai.com/docs/models/gpt-4", g.SelectedDocURL())
	g.Blur()
	assert.False(t, g.Focused())
}

func TestHighlightCell(t *testing.T) {
	assert.Equal(t, "x", highlightCell("x", board.HighlightNone))
	assert.NotEqual(t, "x", highlightCell("x", board.HighlightLowest))
}
