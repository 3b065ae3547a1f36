package ui

import (
	"fmt"

	"github.com/atomicstack/squirrel-docs/internal/logging"
	"github.com/atomicstack/squirrel-docs/internal/logging/events"
	"github.com/atomicstack/squirrel-docs/internal/nav"
	"github.com/atomicstack/squirrel-docs/internal/ui/command"
	uistate "github.com/atomicstack/squirrel-docs/internal/ui/state"
	"github.com/atomicstack/squirrel-docs/internal/ui/tree"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleEscapeKey() tea.Cmd {
	if m.sidebar.Filter != "" {
		m.clearFilter()
		return nil
	}
	return tea.Quit
}

// handleEnterKey toggles the group under the cursor or navigates to the
// leaf under it. Section rows are labels and do nothing.
func (m *Model) handleEnterKey() tea.Cmd {
	row, ok := m.sidebar.Current()
	if !ok {
		return nil
	}
	switch row.Kind {
	case uistate.RowGroup:
		m.toggleGroup(row)
		return nil
	case uistate.RowLeaf:
		return m.activateLeaf(row)
	default:
		return nil
	}
}

// toggleGroup applies a Toggle for row and keeps the cursor on it.
func (m *Model) toggleGroup(row uistate.Row) {
	m.expansion = m.expansion.Apply(uistate.Toggle{Path: row.Path})
	events.Sidebar.Toggle(row.Path.String(), m.expansion.IsOpen(row.Path))
	m.refresh()
	m.focusRow(row.Key())
	m.errMsg = ""
	m.forceClearInfo()
}

// resetExpansion drops every toggle and returns the groups to their policy
// state. The cursor follows its row, or the nearest visible ancestor.
func (m *Model) resetExpansion() {
	var p nav.Path
	if row, ok := m.sidebar.Current(); ok {
		p = row.Path
	}
	m.expansion = m.expansion.Apply(uistate.Reset{})
	m.refresh()
	for ; p != nil; p = p.Parent() {
		if idx := m.sidebar.IndexOf(p.Key()); idx >= 0 {
			m.focusRow(p.Key())
			break
		}
	}
	m.setInfo("Groups reset")
}

func (m *Model) activateLeaf(row uistate.Row) tea.Cmd {
	events.Sidebar.Activate(row.Path.String(), row.Target, m.sidebar.Filter)
	if m.sidebar.Filtering() {
		before := m.sidebar.FilterCursorPos()
		m.sidebar.SetFilter("", 0)
		m.noteFilterCursorChange(before)
		m.expansion = tree.Reveal(m.expansion, row.Path)
		m.refresh()
		m.focusRow(row.Key())
	}
	m.pending = row.Target
	m.errMsg = ""
	m.forceClearInfo()
	return m.bus.Navigate(m.ctx, command.Request{Target: row.Target, Label: row.Title})
}

// openOrDescend opens a closed group under the cursor. On an open group it
// moves to the first child instead.
func (m *Model) openOrDescend() {
	row, ok := m.sidebar.Current()
	if !ok || row.Kind != uistate.RowGroup {
		return
	}
	if !row.Open {
		m.toggleGroup(row)
		return
	}
	m.moveCursorDown()
}

// closeOrAscend closes an open group under the cursor, otherwise it moves
// the cursor to the enclosing group or section.
func (m *Model) closeOrAscend() {
	row, ok := m.sidebar.Current()
	if !ok {
		return
	}
	if row.Kind == uistate.RowGroup && row.Open {
		m.toggleGroup(row)
		return
	}
	if parent := row.Path.Parent(); parent != nil {
		m.focusRow(parent.Key())
	}
}

func (m *Model) focusRow(key string) {
	if m.sidebar.MoveCursorTo(m.sidebar.IndexOf(key)) {
		m.traceCursor()
	}
	m.syncViewport()
}

func (m *Model) traceCursor() {
	if row, ok := m.sidebar.Current(); ok {
		events.Sidebar.Cursor(row.Path.String(), m.sidebar.Cursor)
	}
}

func (m *Model) moveCursorUp() {
	if m.sidebar.MoveCursorUp() {
		m.traceCursor()
	}
	m.syncViewport()
}

func (m *Model) moveCursorDown() {
	if m.sidebar.MoveCursorDown() {
		m.traceCursor()
	}
	m.syncViewport()
}

func (m *Model) moveCursorPageUp() {
	if m.sidebar.MoveCursorPageUp(m.maxVisibleItems()) {
		m.traceCursor()
	}
	m.syncViewport()
}

func (m *Model) moveCursorPageDown() {
	if m.sidebar.MoveCursorPageDown(m.maxVisibleItems()) {
		m.traceCursor()
	}
	m.syncViewport()
}

func (m *Model) moveCursorHome() {
	if m.sidebar.MoveCursorHome() {
		m.traceCursor()
	}
	m.syncViewport()
}

func (m *Model) moveCursorEnd() {
	if m.sidebar.MoveCursorEnd() {
		m.traceCursor()
	}
	m.syncViewport()
}

func (m *Model) syncViewport() {
	if m.sidebar == nil {
		return
	}
	m.sidebar.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+r":
		m.resetExpansion()
	case "esc":
		return m.handleEscapeKey()
	case "enter", " ":
		return m.handleEnterKey()
	case "up":
		m.moveCursorUp()
	case "down":
		m.moveCursorDown()
	case "right":
		if !m.sidebar.Filtering() {
			m.openOrDescend()
		}
	case "left":
		if !m.sidebar.Filtering() {
			m.closeOrAscend()
		}
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}

func (m *Model) handleNavigateResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	m.pending = ""
	if res.Location != "" {
		m.current = res.Location
	}
	if res.Err != nil {
		logging.Error(res.Err)
		m.errMsg = fmt.Sprintf("navigate to %s: %v", res.Target, res.Err)
	} else {
		m.errMsg = ""
		if m.verbose {
			m.setInfo(fmt.Sprintf("Opened %s", res.Label))
		}
	}
	m.refresh()
	return nil
}
