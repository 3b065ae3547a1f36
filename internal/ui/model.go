package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/atomicstack/squirrel-docs/internal/backend"
	"github.com/atomicstack/squirrel-docs/internal/nav"
	"github.com/atomicstack/squirrel-docs/internal/router"
	"github.com/atomicstack/squirrel-docs/internal/theme"
	"github.com/atomicstack/squirrel-docs/internal/ui/command"
	uistate "github.com/atomicstack/squirrel-docs/internal/ui/state"
	"github.com/atomicstack/squirrel-docs/internal/ui/tree"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

const (
	headerSeparator = " → "
	rootTitle       = "Documentation"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a sidebar Model.
type Options struct {
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
	CurrentPath string
	Policy      uistate.Policy
	Navigator   router.Navigator
	Watcher     *backend.Watcher
	Context     context.Context
}

// Model implements the Bubble Tea model for the documentation sidebar.
type Model struct {
	nav       *nav.Model
	expansion uistate.Expansion
	current   string
	sidebar   *level
	pending   string

	errMsg            string
	infoMsg           string
	infoExpire        time.Time
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	backend           *backend.Watcher
	backendLastErr    string
	showFooter        bool
	verbose           bool
	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler

	bus *command.Bus
	ctx context.Context
}

// NewModel initialises the sidebar for model. Groups leading to the page at
// opts.CurrentPath start open and the cursor starts on that page.
func NewModel(model *nav.Model, opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	current := opts.CurrentPath
	if opts.Navigator != nil && opts.Navigator.Current() != "" {
		current = opts.Navigator.Current()
	}
	exp := uistate.NewExpansion(opts.Policy)
	trail := tree.ActiveTrail(model, current)
	if trail != nil {
		exp = tree.Reveal(exp, trail)
	}
	m := &Model{
		nav:        model,
		expansion:  exp,
		current:    current,
		bus:        command.New(opts.Navigator),
		backend:    opts.Watcher,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		ctx:        ctx,
	}
	m.sidebar = uistate.NewLevel(tree.Render(model, exp, current), tree.Leaves(model, current))
	if trail != nil {
		m.sidebar.MoveCursorTo(m.sidebar.IndexOf(trail.Key()))
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.syncViewport()
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleNavigateResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
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

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// refresh re-renders the rows from the model, expansion and location.
func (m *Model) refresh() {
	m.sidebar.SetRows(
		tree.Render(m.nav, m.expansion, m.current),
		tree.Leaves(m.nav, m.current),
	)
	m.syncViewport()
}

// Expansion returns the current expansion state.
func (m *Model) Expansion() uistate.Expansion {
	return m.expansion
}

// Rows returns the rows currently on screen.
func (m *Model) Rows() []uistate.Row {
	return uistate.CloneRows(m.sidebar.Items)
}

// CurrentPath returns the location used for active highlighting.
func (m *Model) CurrentPath() string {
	return m.current
}
