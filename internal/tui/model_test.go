package tui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianshen/pricemap/internal/catalog"
	"github.com/julianshen/pricemap/internal/config"
	"github.com/julianshen/pricemap/internal/diagram"
	"github.com/julianshen/pricemap/internal/snapshot"
)

func testRecords() []catalog.ModelRecord {
	return []catalog.ModelRecord{
		{Name: "GPT-4", Provider: "OpenAI", ProviderGroup: catalog.GroupOpenAI, InputPrice: 0.03, OutputPrice: 0.06,
			DocumentationURL: "https://platform.openai.com/docs/models/gpt-4"},
		{Name: "Claude 3 Haiku", Provider: "Anthropic", ProviderGroup: catalog.GroupAnthropic, InputPrice: 0.00025, OutputPrice: 0.00125},
		{Name: "Llama 2 70B", Provider: "AWS Bedrock", ProviderGroup: catalog.GroupAWS, InputPrice: 0.00195, OutputPrice: 0.00256},
	}
}

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func send(m *Model, msgs ...tea.Msg) *Model {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(*Model)
	}
	return m
}

func TestUIStateConstants(t *testing.T) {
	states := []UIState{StateBrowse, StateRefreshing, StateConfigOverlay}
	seen := make(map[UIState]bool)
	for _, s := range states {
		assert.False(t, seen[s], "duplicate UIState value: %d", s)
		seen[s] = true
	}
}

func TestNewModel(t *testing.T) {
	m := NewModel(testRecords(), nil, "", nil)

	assert.Equal(t, StateBrowse, m.uiState)
	assert.Equal(t, ViewGrid, m.ViewMode())
	assert.Equal(t, FocusInput, m.focus)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 24, m.height)
	assert.False(t, m.quitting)
	assert.Len(t, m.Board().Rows, 3)
	assert.Equal(t, diagram.DefaultLinks(), m.Links())
	assert.Equal(t, -1, m.leafFocus)
	assert.False(t, m.updated.IsZero())
}

func TestNewModelAppliesConfigView(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.View.Provider = "anthropic"
	m := NewModel(testRecords(), nil, "", cfg)
	require.Len(t, m.Board().Rows, 1)
	assert.Equal(t, "Claude 3 Haiku", m.Board().Rows[0].Record.Name)
}

func TestModelInit(t *testing.T) {
	m := NewModel(testRecords(), nil, "", nil)
	assert.NotNil(t, m.Init())
}

func TestModelTypingUpdatesTokensAndCosts(t *testing.T) {
	m := NewModel(testRecords(), nil, "", nil)
	m = send(m, runes("abcde"))

	assert.Equal(t, "abcde", m.input.Value())
	assert.Equal(t, 2, m.Board().Tokens.Input)
	assert.Equal(t, 0, m.Board().Tokens.Output)
	assert.InDelta(t, 0.002*0.03, m.Board().Rows[0].Cost, 1e-12)
}

func TestModelTabMovesToOutputField(t *testing.T) {
	m := NewModel(testRecords(), nil, "", nil)
	m = send(m, keyMsg(tea.KeyTab), runes("abcdefghi"))

	assert.Equal(t, FocusOutput, m.focus)
	assert.Empty(t, m.input.Value())
	assert.Equal(t, 3, m.Board().Tokens.Output)

	m = send(m, keyMsg(tea.KeyTab))
	assert.Equal(t, FocusGrid, m.focus)
	assert.True(t, m.grid.Focused())

	m = send(m, keyMsg(tea.KeyTab))
	assert.Equal(t, FocusInput, m.focus)
	assert.False(t, m.grid.Focused())
}

func TestModelProviderTabs(t *testing.T) {
	m := NewModel(testRecords(), nil, "", nil)
	m = send(m, keyMsg(tea.KeyCtrlF))
	assert.Equal(t, catalog.GroupOpenAI, m.Board().Selection.Provider)
	require.Len(t, m.Board().Rows, 1)

	// Cycle back around to all.
	for i := 0; i < len(catalog.ProviderGroups())-1; i++ {
		m = send(m, keyMsg(tea.KeyCtrlF))
	}
	assert.Equal(t, catalog.GroupAll, m.Board().Selection.Provider)
	assert.Len(t, m.Board().Rows, 3)
}

func TestModelClassTabs(t *testing.T) {
	m := NewModel(testRecords(), nil, "", nil)
	m = send(m, keyMsg(tea.KeyCtrlG))
	assert.Equal(t, catalog.ClassGPT4, m.Board().Selection.Class)
	require.Len(t, m.Board().Rows, 1)
	assert.Equal(t, "GPT-4", m.Board().Rows[0].Record.Name)
}

func TestModelEmptyFilterRendersEmptyGrid(t *testing.T) {
	m := NewModel(testRecords(), nil, "", nil)
	// openai → anthropic → aws → azure
	m = send(m, keyMsg(tea.KeyCtrlF), keyMsg(tea.KeyCtrlF), keyMsg(tea.KeyCtrlF), keyMsg(tea.KeyCtrlF))
	assert.Equal(t, catalog.GroupAzure, m.Board().Selection.Provider)
	assert.Empty(t, m.Board().Rows)
	assert.Contains(t, m.View(), "No models match")
}

func TestModelDiagramHover(t *testing.T) {
	m := NewModel(testRecords(), nil, "", nil)
	m = send(m, keyMsg(tea.KeyCtrlD))
	assert.Equal(t, ViewDiagram, m.ViewMode())

	m = send(m, keyMsg(tea.KeyRight))
	assert.Equal(t, 0, m.leafFocus)
	assert.Equal(t, diagram.GroupLinks(diagram.DefaultTaxonomy(), "AWS"), m.Links())

	// Walking backwards from the first leaf wraps to the last group.
	m = send(m, keyMsg(tea.KeyLeft))
	assert.Equal(t, len(m.diagram.Leaves)-1, m.leafFocus)
	assert.Equal(t, diagram.GroupLinks(diagram.DefaultTaxonomy(), "Anthropic"), m.Links())

	m = send(m, keyMsg(tea.KeyEsc))
	assert.Equal(t, -1, m.leafFocus)
	assert.Equal(t, diagram.DefaultLinks(), m.Links())
}

func TestModelLeavingDiagramRestoresDefaultLinks(t *testing.T) {
	m := NewModel(testRecords(), nil, "", nil)
	m = send(m, keyMsg(tea.KeyCtrlD), keyMsg(tea.KeyRight), keyMsg(tea.KeyCtrlD))
	assert.Equal(t, ViewServices, m.ViewMode())
	assert.Equal(t, diagram.DefaultLinks(), m.Links())
}

func TestModelServicesFilter(t *testing.T) {
	m := NewModel(testRecords(), nil, "", nil)
	m = send(m, keyMsg(tea.KeyCtrlD), keyMsg(tea.KeyCtrlD))
	assert.Len(t, m.VisibleCards(), diagram.DefaultTaxonomy().LeafCount())

	m = send(m, keyMsg(tea.KeyRight))
	cat := m.categories[m.category]
	require.NotEqual(t, diagram.FilterAll, cat)
	for _, c := range m.VisibleCards() {
		assert.True(t, c.HasCategory(cat))
	}

	m = send(m, keyMsg(tea.KeyLeft))
	assert.Equal(t, 0, m.category)

	m = send(m, keyMsg(tea.KeyCtrlD))
	assert.Equal(t, ViewGrid, m.ViewMode())
}

func TestModelViews(t *testing.T) {
	m := NewModel(testRecords(), nil, "", nil)
	m = send(m, tea.WindowSizeMsg{Width: 140, Height: 50})

	assert.Contains(t, m.View(), "Provider:")
	m = send(m, keyMsg(tea.KeyCtrlD), keyMsg(tea.KeyRight))
	view := m.View()
	assert.Contains(t, view, "(AI Services)")
	assert.Contains(t, view, "documentation")
	assert.Equal(t, "AWS", m.selector.Group())

	m = send(m, keyMsg(tea.KeyCtrlD))
	assert.Contains(t, m.View(), "Category:")
}

func TestModelUpdateWindowSize(t *testing.T) {
	m := NewModel(testRecords(), nil, "", nil)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)

	m = send(m, tea.WindowSizeMsg{Width: 5, Height: 3})
	assert.NotEmpty(t, m.View())
}

func TestModelUpdateCtrlC(t *testing.T) {
	m := NewModel(testRecords(), nil, "", nil)
	updated, cmd := m.Update(keyMsg(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, updated.(*Model).quitting)
	assert.Equal(t, "Goodbye!\n", updated.(*Model).View())
}

func TestModelRefreshWithoutRefresher(t *testing.T) {
	m := NewModel(testRecords(), nil, "", nil)
	_, cmd := m.Update(keyMsg(tea.KeyCtrlR))
	assert.Nil(t, cmd)
	assert.Equal(t, StateBrowse, m.uiState)
}

func TestModelRefreshReplacesCatalog(t *testing.T) {
	r := snapshot.NewRefresher(catalog.StaticSource{}, nil)
	m := NewModel(testRecords(), r, "", nil)

	_, cmd := m.Update(keyMsg(tea.KeyCtrlR))
	require.NotNil(t, cmd)
	assert.Equal(t, StateRefreshing, m.uiState)

	// A second press while in flight is ignored.
	_, again := m.Update(keyMsg(tea.KeyCtrlR))
	assert.Nil(t, again)

	msg := cmd()
	require.IsType(t, refreshedMsg{}, msg)
	m = send(m, msg)
	assert.Equal(t, StateBrowse, m.uiState)
	assert.Len(t, m.Board().Rows, catalog.Static().Len())
	assert.Equal(t, msg.(refreshedMsg).snap.Timestamp, m.updated)
}

func TestModelRefreshFailureKeepsCatalog(t *testing.T) {
	m := NewModel(testRecords(), nil, "", nil)
	m.uiState = StateRefreshing
	m = send(m, refreshedMsg{err: errors.New("boom")})
	assert.Equal(t, StateBrowse, m.uiState)
	assert.Len(t, m.Board().Rows, 3)
	assert.Contains(t, m.statusBar.View(), "refresh failed")
}

func TestModelRefreshCmdUsesRefresher(t *testing.T) {
	r := snapshot.NewRefresher(catalog.StaticSource{}, nil)
	m := NewModel(nil, r, "", nil)
	msg := m.refreshCmd()().(refreshedMsg)
	require.NoError(t, msg.err)

	want, err := r.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want.Data, msg.snap.Data)
}

func TestModelConfigOverlayView(t *testing.T) {
	m := NewModel(testRecords(), nil, "/tmp/test-config.toml", config.DefaultConfig())
	m = send(m, keyMsg(tea.KeyCtrlO))
	assert.Equal(t, StateConfigOverlay, m.uiState)

	// The view should render the form, not the normal TUI
	assert.NotContains(t, m.View(), "Provider:")
}

func TestModelConfigOverlayCompleted(t *testing.T) {
	cfg := config.DefaultConfig()
	path := filepath.Join(t.TempDir(), "config.toml")
	m := NewModel(testRecords(), nil, path, cfg)

	m = send(m, keyMsg(tea.KeyCtrlO))
	require.Equal(t, StateConfigOverlay, m.uiState)

	// Simulate form completion by setting state directly
	cfg.View.Class = "claude3"
	m.configForm.Form().State = huh.StateCompleted
	m = send(m, keyMsg(tea.KeyEnter))

	assert.Equal(t, StateBrowse, m.uiState)
	assert.Nil(t, m.configForm)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "claude3", loaded.View.Class)
}

func TestModelConfigOverlayAborted(t *testing.T) {
	m := NewModel(testRecords(), nil, "/tmp/test-config.toml", config.DefaultConfig())
	m = send(m, keyMsg(tea.KeyCtrlO))

	m.configForm.Form().State = huh.StateAborted
	m = send(m, keyMsg(tea.KeyEsc))

	assert.Equal(t, StateBrowse, m.uiState)
	assert.Nil(t, m.configForm)
}

func TestModelUpdateUnknownMsg(t *testing.T) {
	m := NewModel(testRecords(), nil, "", nil)
	type custom struct{}
	_, cmd := m.Update(custom{})
	assert.Nil(t, cmd)
}
