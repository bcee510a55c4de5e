package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/julianshen/pricemap/internal/board"
	"github.com/julianshen/pricemap/internal/catalog"
	"github.com/julianshen/pricemap/internal/config"
	"github.com/julianshen/pricemap/internal/diagram"
	"github.com/julianshen/pricemap/internal/snapshot"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	// StateBrowse is the normal interactive state.
	StateBrowse UIState = iota
	// StateRefreshing indicates a catalog refresh is in flight.
	StateRefreshing
	// StateConfigOverlay indicates the TUI is showing the config overlay.
	StateConfigOverlay
)

// ViewMode selects the main panel.
type ViewMode int

const (
	ViewGrid ViewMode = iota
	ViewDiagram
	ViewServices
)

// Focus is the widget receiving unbound keys in the grid view.
type Focus int

const (
	FocusInput Focus = iota
	FocusOutput
	FocusGrid
)

// refreshedMsg carries the result of a background catalog refresh.
type refreshedMsg struct {
	snap snapshot.Snapshot
	err  error
}

// Model is the Bubble Tea model for the pricemap TUI.
type Model struct {
	records    []catalog.ModelRecord
	state      board.State
	board      board.Board
	cfg        *config.Config
	configPath string
	configForm *ConfigForm
	input      *InputArea
	output     *InputArea
	grid       *PriceGrid
	statusBar  *StatusBar
	mdRenderer *MarkdownRenderer
	taxonomy   diagram.Taxonomy
	diagram    diagram.Diagram
	selector   *diagram.LinkSelector
	leafFocus  int
	cards      []diagram.Card
	categories []string
	category   int
	refresher  *snapshot.Refresher
	updated    time.Time
	log        zerolog.Logger
	keys       KeyMap
	uiState    UIState
	view       ViewMode
	focus      Focus
	width      int
	height     int
	quitting   bool
}

// Ensure Model satisfies the tea.Model interface at compile time.
var _ tea.Model = (*Model)(nil)

// NewModel creates a TUI Model over records. The refresher and config may be
// nil for testing purposes; without a refresher ctrl+r is a no-op.
func NewModel(records []catalog.ModelRecord, refresher *snapshot.Refresher, configPath string, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	st := board.NewState()
	st.SetProvider(catalog.ProviderGroup(cfg.View.Provider))
	st.SetClass(catalog.ModelClass(cfg.View.Class))

	tax := diagram.DefaultTaxonomy()
	canvas := diagram.Canvas{Width: cfg.Diagram.Width, Height: cfg.Diagram.Height}
	cards := diagram.Cards(tax)

	// Glamour renderer creation is unlikely to fail with static "dark" style;
	// Render falls back to raw text if renderer is nil.
	mdRenderer, _ := NewMarkdownRenderer(60)

	m := &Model{
		records:    append([]catalog.ModelRecord(nil), records...),
		state:      st,
		cfg:        cfg,
		configPath: configPath,
		input:      NewInputArea("Input text", "Paste the prompt you plan to send..."),
		output:     NewInputArea("Output text", "Paste an example response..."),
		grid:       NewPriceGrid(12),
		statusBar:  NewStatusBar(80),
		mdRenderer: mdRenderer,
		taxonomy:   tax,
		diagram:    diagram.Layout(tax, canvas, diagram.DefaultLayoutConfig()),
		selector:   diagram.NewLinkSelector(tax),
		leafFocus:  -1,
		cards:      cards,
		categories: diagram.CardCategories(cards),
		refresher:  refresher,
		log:        zerolog.Nop(),
		keys:       DefaultKeyMap(),
		uiState:    StateBrowse,
		view:       ViewGrid,
		focus:      FocusInput,
		width:      80,
		height:     24,
	}
	if refresher != nil {
		m.updated = refresher.LastUpdated()
	} else {
		m.updated = time.Now()
	}
	m.input.Focus()
	m.rebuild()
	return m
}

// SetLogger sets the logger used for refresh and config failures.
func (m *Model) SetLogger(l zerolog.Logger) { m.log = l }

// Board returns the board currently displayed.
func (m *Model) Board() board.Board { return m.board }

// ViewMode returns the active panel.
func (m *Model) ViewMode() ViewMode { return m.view }

// Links returns the visible link list.
func (m *Model) Links() []diagram.Link { return m.selector.Current() }

// VisibleCards returns the service cards matching the active category.
func (m *Model) VisibleCards() []diagram.Card {
	return diagram.FilterCards(m.cards, m.categories[m.category])
}

// rebuild recomputes the board from the records and view state and pushes
// it to the widgets.
func (m *Model) rebuild() {
	m.board = board.Build(m.records, m.state)
	m.grid.SetBoard(m.board)
	m.statusBar.SetTokens(m.state.Tokens.Input, m.state.Tokens.Output)
	m.statusBar.SetFilters(string(m.state.Selection.Provider), string(m.state.Selection.Class))
	m.statusBar.SetUpdated(m.updated)
	if best, ok := m.board.Cheapest(); ok {
		m.statusBar.SetCheapest(best.Record.DisplayName())
	} else {
		m.statusBar.SetCheapest("")
	}
}

// recountTokens re-estimates both fields from their full contents.
func (m *Model) recountTokens() {
	m.state.SetTexts(m.input.Value(), m.output.Value())
	m.rebuild()
}

// cycleProvider advances to the next provider tab.
func (m *Model) cycleProvider() {
	groups := catalog.ProviderGroups()
	m.state.SetProvider(groups[(indexOf(groups, m.state.Selection.Provider)+1)%len(groups)])
	m.rebuild()
}

// cycleClass advances to the next model-class tab.
func (m *Model) cycleClass() {
	classes := catalog.ModelClasses()
	m.state.SetClass(classes[(indexOf(classes, m.state.Selection.Class)+1)%len(classes)])
	m.rebuild()
}

func indexOf[T comparable](list []T, v T) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return -1
}

// nextFocus cycles input → output → grid.
func (m *Model) nextFocus() tea.Cmd {
	m.input.Blur()
	m.output.Blur()
	m.grid.Blur()
	m.focus = (m.focus + 1) % 3
	switch m.focus {
	case FocusInput:
		return m.input.Focus()
	case FocusOutput:
		return m.output.Focus()
	default:
		m.grid.Focus()
		return nil
	}
}

// nextView cycles grid → diagram → services. Leaving the diagram clears
// hover focus.
func (m *Model) nextView() {
	if m.view == ViewDiagram {
		m.leaveLeaf()
	}
	m.view = (m.view + 1) % 3
}

// moveLeaf moves the diagram cursor by delta leaves, wrapping around, and
// reports the new leaf's group to the link selector.
func (m *Model) moveLeaf(delta int) {
	n := len(m.diagram.Leaves)
	if n == 0 {
		return
	}
	if m.leafFocus < 0 {
		if delta > 0 {
			m.leafFocus = 0
		} else {
			m.leafFocus = n - 1
		}
	} else {
		m.leafFocus = ((m.leafFocus+delta)%n + n) % n
	}
	m.selector.Enter(m.diagram.Leaves[m.leafFocus].Group)
}

// leaveLeaf clears the diagram cursor and restores the default links.
func (m *Model) leaveLeaf() {
	m.leafFocus = -1
	m.selector.Leave()
}

// moveCategory cycles the service-card filter tab.
func (m *Model) moveCategory(delta int) {
	n := len(m.categories)
	m.category = ((m.category+delta)%n + n) % n
}

// refreshCmd reloads the catalog in the background.
func (m *Model) refreshCmd() tea.Cmd {
	r := m.refresher
	return func() tea.Msg {
		snap, err := r.Refresh(context.Background())
		return refreshedMsg{snap: snap, err: err}
	}
}

// applyRefresh swaps in a refreshed catalog. On failure the current
// catalog stays in place.
func (m *Model) applyRefresh(msg refreshedMsg) {
	m.uiState = StateBrowse
	if msg.err != nil {
		m.log.Warn().Err(msg.err).Msg("catalog refresh failed")
		m.statusBar.SetNotice("refresh failed")
		return
	}
	m.records = msg.snap.Data
	m.updated = msg.snap.Timestamp
	m.statusBar.SetNotice("")
	m.rebuild()
}
