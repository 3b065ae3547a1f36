package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/squirrel-docs/internal/backend"
	"github.com/atomicstack/squirrel-docs/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

func extendedSite(t *testing.T) *nav.Model {
	t.Helper()
	sections := nav.Site().Sections()
	sections = append(sections, nav.Section{Title: "Changelog", Items: []nav.Item{
		&nav.Leaf{Title: "Releases", Target: "/docs/changelog"},
	}})
	model, err := nav.New(sections...)
	if err != nil {
		t.Fatalf("build model: %v", err)
	}
	return model
}

func TestReloadKeepsExpansionAndCursor(t *testing.T) {
	m := newSiteModel(Options{})
	h := NewHarness(m)
	focus(t, m, middleware)
	h.Key(tea.KeyEnter)
	focus(t, m, utilities.Child("Cookies"))

	h.Send(backendEventMsg{event: backend.Event{Model: extendedSite(t)}})

	if m.Expansion().IsOpen(middleware) {
		t.Fatalf("expected Middleware to stay closed across the reload")
	}
	if m.sidebar.IndexOf(nav.Path{"Changelog", "Releases"}.Key()) < 0 {
		t.Fatalf("expected the new section rendered")
	}
	if row := currentRow(t, m); row.Title != "Cookies" {
		t.Fatalf("expected cursor to follow Cookies, got %q", row.Title)
	}
	if info := m.currentInfo(); info != "Navigation reloaded" {
		t.Fatalf("expected reload notice, got %q", info)
	}
}

func TestReloadFailureKeepsPreviousModel(t *testing.T) {
	m := newSiteModel(Options{})
	h := NewHarness(m)
	before := m.Rows()

	h.Send(backendEventMsg{event: backend.Event{Err: errors.New("nav.yaml: group has no children")}})

	if len(m.Rows()) != len(before) {
		t.Fatalf("expected rows unchanged, got %d from %d", len(m.Rows()), len(before))
	}
	if !strings.Contains(m.errMsg, "Reload failed") {
		t.Fatalf("expected reload error surfaced, got %q", m.errMsg)
	}
	if m.backendLastErr == "" {
		t.Fatalf("expected last backend error recorded")
	}
}

func TestBackendDoneDetachesWatcher(t *testing.T) {
	m := newSiteModel(Options{})
	m.Update(backendDoneMsg{})
	if m.backend != nil {
		t.Fatalf("expected watcher detached")
	}
}
