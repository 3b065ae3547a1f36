package ui

import (
	"fmt"

	"github.com/atomicstack/squirrel-docs/internal/backend"
	"github.com/atomicstack/squirrel-docs/internal/logging"
	"github.com/atomicstack/squirrel-docs/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent swaps in a reloaded navigation model. Expansion state is
// keyed by title path, so groups that survive the edit keep their state and
// the cursor follows the row it was on. A failed reload keeps the previous
// model on screen.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		logging.Error(evt.Err)
		m.backendLastErr = evt.Err.Error()
		m.errMsg = fmt.Sprintf("Reload failed: %v", evt.Err)
		return
	}
	if evt.Model == nil {
		return
	}
	var key string
	if row, ok := m.sidebar.Current(); ok {
		key = row.Key()
	}
	m.nav = evt.Model
	m.backendLastErr = ""
	m.errMsg = ""
	m.refresh()
	if idx := m.sidebar.IndexOf(key); idx >= 0 {
		m.sidebar.MoveCursorTo(idx)
		m.syncViewport()
	}
	events.Sidebar.Reload(len(evt.Model.Groups()), len(evt.Model.Leaves()))
	m.setInfo("Navigation reloaded")
}
