package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Init implements tea.Model. It focuses the input field.
func (m *Model) Init() tea.Cmd {
	return m.input.Focus()
}

// Update implements tea.Model. It processes incoming messages and returns the
// updated model and any commands to execute.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Route messages to config form overlay when active.
	if m.uiState == StateConfigOverlay && m.configForm != nil {
		if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		form, cmd := m.configForm.Form().Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.configForm.SetForm(f)
		}
		switch m.configForm.Form().State {
		case huh.StateCompleted:
			if err := m.configForm.Save(); err != nil {
				m.log.Warn().Err(err).Str("path", m.configPath).Msg("saving config")
				m.statusBar.SetNotice("config not saved")
			}
			m.uiState = StateBrowse
			m.configForm = nil
		case huh.StateAborted:
			m.uiState = StateBrowse
			m.configForm = nil
		}
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		half := (m.width - 4) / 2
		m.input.SetWidth(half)
		m.output.SetWidth(half)
		m.statusBar.SetWidth(m.width)
		// Banner (3), field titles and areas (5), tabs (2), status (1), help (1), table chrome (6).
		m.grid.SetPageSize(m.height - 18)
		return m, nil

	case refreshedMsg:
		m.applyRefresh(msg)
		return m, nil
	}

	return m, nil
}

// handleKeyMsg processes keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.View):
		m.nextView()
		return m, nil

	case key.Matches(msg, m.keys.Provider):
		m.cycleProvider()
		return m, nil

	case key.Matches(msg, m.keys.Class):
		m.cycleClass()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.refresher == nil || m.uiState == StateRefreshing {
			return m, nil
		}
		m.uiState = StateRefreshing
		m.statusBar.SetNotice("refreshing…")
		return m, m.refreshCmd()

	case key.Matches(msg, m.keys.Config):
		m.configForm = NewConfigForm(m.cfg, m.configPath)
		m.uiState = StateConfigOverlay
		return m, m.configForm.Form().Init()
	}

	switch m.view {
	case ViewDiagram:
		return m.handleDiagramKey(msg)
	case ViewServices:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.moveCategory(-1)
		case key.Matches(msg, m.keys.Right):
			m.moveCategory(1)
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.NextFocus) {
		return m, m.nextFocus()
	}

	switch m.focus {
	case FocusInput:
		cmd := m.input.Update(msg)
		m.recountTokens()
		return m, cmd
	case FocusOutput:
		cmd := m.output.Update(msg)
		m.recountTokens()
		return m, cmd
	default:
		return m, m.grid.Update(msg)
	}
}

// handleDiagramKey moves the leaf cursor. The cursor stands in for pointer
// hover: landing on a leaf enters its group, esc leaves.
func (m *Model) handleDiagramKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveLeaf(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveLeaf(1)
	case key.Matches(msg, m.keys.Leave):
		m.leaveLeaf()
	}
	return m, nil
}
