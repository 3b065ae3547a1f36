package events

import "github.com/atomicstack/squirrel-docs/internal/logging"

type SidebarTracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	Sidebar = SidebarTracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (SidebarTracer) Toggle(path string, open bool) {
	logging.Trace("sidebar.toggle", map[string]interface{}{"path": path, "open": open})
}

func (SidebarTracer) Cursor(path string, cursor int) {
	logging.Trace("sidebar.cursor", map[string]interface{}{"path": path, "cursor": cursor})
}

func (SidebarTracer) Activate(path, target, filter string) {
	logging.Trace("sidebar.activate", map[string]interface{}{
		"path":   path,
		"target": target,
		"filter": filter,
	})
}

func (SidebarTracer) Reload(groups int, leaves int) {
	logging.Trace("sidebar.reload", map[string]interface{}{"groups": groups, "leaves": leaves})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) WordBackspace(filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) CursorWord(pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (CommandTracer) Queue(target, label string) {
	logging.Trace("command.queue", map[string]interface{}{"target": target, "label": label})
}

func (CommandTracer) Result(target, label, location string) {
	logging.Trace("command.result", map[string]interface{}{"target": target, "label": label, "location": location})
}

func (CommandTracer) Error(target, label string, err error) {
	logging.Trace("command.error", map[string]interface{}{"target": target, "label": label, "error": err.Error()})
}
