package state

import (
	"sort"

	"github.com/atomicstack/squirrel-docs/internal/nav"
)

// Policy decides whether a group starts open.
//
// Closed and Open name individual groups and win over OpenDepth. Otherwise a
// group at depth d (1 for a section's direct children) starts open when
// OpenDepth <= 0 or d <= OpenDepth.
type Policy struct {
	OpenDepth int
	Open      []nav.Path
	Closed    []nav.Path
}

// Action is an input to Expansion.Apply.
type Action interface {
	isAction()
}

// Toggle flips the open state of the group at Path.
type Toggle struct {
	Path nav.Path
}

// Reset drops every toggle made since construction.
type Reset struct{}

func (Toggle) isAction() {}
func (Reset) isAction()  {}

// Expansion records which groups are open. It is a value: every transition
// returns a new Expansion and leaves the receiver untouched. The zero value
// opens every group.
type Expansion struct {
	openDepth int
	defaults  map[string]bool
	overrides map[string]bool
}

// NewExpansion returns the initial state for policy.
func NewExpansion(policy Policy) Expansion {
	e := Expansion{openDepth: policy.OpenDepth}
	if len(policy.Open)+len(policy.Closed) > 0 {
		e.defaults = make(map[string]bool, len(policy.Open)+len(policy.Closed))
		for _, p := range policy.Open {
			e.defaults[p.Key()] = true
		}
		for _, p := range policy.Closed {
			e.defaults[p.Key()] = false
		}
	}
	return e
}

// IsOpen reports whether the group at p is expanded. Paths that were never
// toggled fall back to the policy, so unknown paths are answered too.
func (e Expansion) IsOpen(p nav.Path) bool {
	key := p.Key()
	if open, ok := e.overrides[key]; ok {
		return open
	}
	return e.initial(key, p)
}

func (e Expansion) initial(key string, p nav.Path) bool {
	if open, ok := e.defaults[key]; ok {
		return open
	}
	return e.openDepth <= 0 || p.Depth() <= e.openDepth
}

// Toggle is shorthand for Apply(Toggle{Path: p}).
func (e Expansion) Toggle(p nav.Path) Expansion {
	return e.Apply(Toggle{Path: p})
}

// Apply is the single transition function for expansion state. Only the
// group named by a Toggle changes; all other entries are carried over.
func (e Expansion) Apply(action Action) Expansion {
	switch a := action.(type) {
	case Toggle:
		key := a.Path.Key()
		next := !e.IsOpen(a.Path)
		overrides := make(map[string]bool, len(e.overrides)+1)
		for k, v := range e.overrides {
			overrides[k] = v
		}
		if next == e.initial(key, a.Path) {
			delete(overrides, key)
		} else {
			overrides[key] = next
		}
		e.overrides = overrides
		return e
	case Reset:
		e.overrides = nil
		return e
	default:
		return e
	}
}

// Toggled lists the groups whose state differs from the policy, sorted by key.
func (e Expansion) Toggled() []nav.Path {
	keys := make([]string, 0, len(e.overrides))
	for key := range e.overrides {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]nav.Path, len(keys))
	for i, key := range keys {
		out[i] = nav.ParseKey(key)
	}
	return out
}
