package ui

import (
	"reflect"

	"rdct/internal/catalog"
	"rdct/internal/distro"
	"rdct/internal/script"
	"rdct/internal/theme"
	"rdct/internal/ui/state"

	tea "github.com/charmbracelet/bubbletea"
)

// Mode is the session state: exactly one is active at a time.
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeReviewing
	ModeSaving
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeReviewing:
		return "reviewing"
	case ModeSaving:
		return "saving"
	default:
		return "unknown"
	}
}

// Outcome tells the caller what to do after the program exits.
type Outcome int

const (
	// OutcomeQuit ends the session without running anything.
	OutcomeQuit Outcome = iota
	// OutcomeRun asks the caller to execute FinalScript with sudo.
	OutcomeRun
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the setup composer.
type Model struct {
	tree *catalog.Tree
	dist distro.Distribution
	nav  *state.Navigator

	mode   Mode
	reboot bool

	saveForm   *SaveForm
	statusMsg  string
	statusErr  bool
	filter     string
	filterOn   bool

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	outcome     Outcome
	finalScript string

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI over the given catalogue. Width/height of 0
// track the terminal size.
func NewModel(tree *catalog.Tree, dist distro.Distribution, width, height int, showFooter, verbose bool) *Model {
	m := &Model{
		tree:       tree,
		dist:       dist,
		nav:        state.NewNavigator(tree),
		mode:       ModeBrowsing,
		showFooter: showFooter,
		verbose:    verbose,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.nav.EnsureCursorVisible(m.maxVisibleItems())
	return nil
}

// Outcome reports how the session ended.
func (m *Model) Outcome() Outcome { return m.outcome }

// FinalScript returns the script captured when the session ended with
// OutcomeRun.
func (m *Model) FinalScript() string { return m.finalScript }

// synthesize renders the script for the current selection snapshot.
func (m *Model) synthesize() string {
	return script.Synthesize(m.tree, m.dist, m.reboot)
}

// previewScript renders the browsing-screen preview. It never carries the
// reboot trailer; reboot belongs to the install flow chosen when leaving
// the catalogue, not to the catalogue itself.
func (m *Model) previewScript() string {
	return script.Synthesize(m.tree, m.dist, false)
}
