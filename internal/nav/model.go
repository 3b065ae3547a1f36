// Package nav describes the documentation site's navigation tree.
//
// A Model is an ordered list of Sections. Each Section holds Items, and every
// Item is exactly one of *Leaf (a page with a target path) or *Group (a named
// list of further items). Models are validated and deep-copied on
// construction and expose read access only.
package nav

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoSections    = errors.New("model has no sections")
	ErrEmptyTitle    = errors.New("title is empty")
	ErrEmptySection  = errors.New("section has no items")
	ErrEmptyGroup    = errors.New("group has no children")
	ErrEmptyTarget   = errors.New("leaf has no target")
	ErrMalformedNode = errors.New("node must be exactly one of leaf or group")
	ErrCycle         = errors.New("group is its own ancestor")
)

// ValidationError reports a construction failure for the node at Path.
type ValidationError struct {
	Path Path
	Err  error
}

func (e *ValidationError) Error() string {
	if len(e.Path) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Item is a node of the navigation tree. It is implemented by *Leaf and
// *Group only.
type Item interface {
	ItemTitle() string
	isItem()
}

// Leaf is a navigable page.
type Leaf struct {
	Title  string
	Target string
}

// Group is a collapsible list of child items.
type Group struct {
	Title    string
	Children []Item
}

func (l *Leaf) ItemTitle() string { return l.Title }
func (*Leaf) isItem()             {}

func (g *Group) ItemTitle() string { return g.Title }
func (*Group) isItem()             {}

// Section is the root of an independent tree, rendered with a label and icon.
type Section struct {
	Title string
	Icon  string
	Items []Item
}

// Model is the immutable navigation description for the whole site.
type Model struct {
	sections []Section
}

// New validates the sections and returns a model holding a private copy of
// them. All invariant violations are reported together.
func New(sections ...Section) (*Model, error) {
	if err := validate(sections); err != nil {
		return nil, err
	}
	copied := make([]Section, len(sections))
	for i, sec := range sections {
		copied[i] = Section{
			Title: strings.TrimSpace(sec.Title),
			Icon:  strings.TrimSpace(sec.Icon),
			Items: cloneItems(sec.Items),
		}
	}
	return &Model{sections: copied}, nil
}

// MustNew is New for literal models declared in code. It panics on invalid
// input.
func MustNew(sections ...Section) *Model {
	m, err := New(sections...)
	if err != nil {
		panic(fmt.Sprintf("nav: invalid model: %v", err))
	}
	return m
}

// Sections returns a deep copy of the top-level sections in declaration
// order. Changes to the copy never reach the model.
func (m *Model) Sections() []Section {
	if m == nil {
		return nil
	}
	out := make([]Section, len(m.sections))
	for i, sec := range m.sections {
		out[i] = Section{Title: sec.Title, Icon: sec.Icon, Items: cloneItems(sec.Items)}
	}
	return out
}

// Walk visits every item depth-first in declaration order. Returning false
// from fn skips the item's children.
func (m *Model) Walk(fn func(p Path, item Item) bool) {
	if m == nil || fn == nil {
		return
	}
	for _, sec := range m.sections {
		walkItems(Path{sec.Title}, sec.Items, fn)
	}
}

func walkItems(parent Path, items []Item, fn func(Path, Item) bool) {
	for _, item := range items {
		p := parent.Child(item.ItemTitle())
		if !fn(p, item) {
			continue
		}
		if g, ok := item.(*Group); ok {
			walkItems(p, g.Children, fn)
		}
	}
}

// Find returns the item addressed by p. The first element of p names the
// section.
func (m *Model) Find(p Path) (Item, bool) {
	if m == nil || len(p) < 2 {
		return nil, false
	}
	var found Item
	m.Walk(func(candidate Path, item Item) bool {
		if found != nil {
			return false
		}
		if candidate.Equal(p) {
			found = item
			return false
		}
		return candidate.IsAncestorOf(p)
	})
	return found, found != nil
}

// LeafRef pairs a leaf with its title path.
type LeafRef struct {
	Path Path
	Leaf *Leaf
}

// Leaves lists every leaf in declaration order.
func (m *Model) Leaves() []LeafRef {
	var out []LeafRef
	m.Walk(func(p Path, item Item) bool {
		if leaf, ok := item.(*Leaf); ok {
			out = append(out, LeafRef{Path: p, Leaf: leaf})
		}
		return true
	})
	return out
}

// Groups lists the path of every group in declaration order.
func (m *Model) Groups() []Path {
	var out []Path
	m.Walk(func(p Path, item Item) bool {
		if _, ok := item.(*Group); ok {
			out = append(out, p)
		}
		return true
	})
	return out
}

// Duplicates maps each canonical target shared by more than one leaf to the
// paths of those leaves. Duplicates are allowed; every copy renders active.
func (m *Model) Duplicates() map[string][]Path {
	seen := make(map[string][]Path)
	for _, ref := range m.Leaves() {
		key := Canonical(ref.Leaf.Target)
		seen[key] = append(seen[key], ref.Path)
	}
	for target, paths := range seen {
		if len(paths) < 2 {
			delete(seen, target)
		}
	}
	return seen
}

// Count returns the number of items (groups and leaves, sections excluded).
func (m *Model) Count() int {
	n := 0
	m.Walk(func(Path, Item) bool {
		n++
		return true
	})
	return n
}

func validate(sections []Section) error {
	if len(sections) == 0 {
		return &ValidationError{Err: ErrNoSections}
	}
	var errs []error
	for _, sec := range sections {
		title := strings.TrimSpace(sec.Title)
		p := Path{title}
		if title == "" {
			errs = append(errs, &ValidationError{Path: p, Err: ErrEmptyTitle})
		}
		if len(sec.Items) == 0 {
			errs = append(errs, &ValidationError{Path: p, Err: ErrEmptySection})
		}
		errs = validateItems(errs, p, sec.Items, map[*Group]struct{}{})
	}
	return errors.Join(errs...)
}

func validateItems(errs []error, parent Path, items []Item, ancestors map[*Group]struct{}) []error {
	for _, item := range items {
		switch node := item.(type) {
		case *Leaf:
			if node == nil {
				errs = append(errs, &ValidationError{Path: parent, Err: ErrMalformedNode})
				continue
			}
			p := parent.Child(node.Title)
			if strings.TrimSpace(node.Title) == "" {
				errs = append(errs, &ValidationError{Path: p, Err: ErrEmptyTitle})
			}
			if Canonical(node.Target) == "" {
				errs = append(errs, &ValidationError{Path: p, Err: ErrEmptyTarget})
			}
		case *Group:
			if node == nil {
				errs = append(errs, &ValidationError{Path: parent, Err: ErrMalformedNode})
				continue
			}
			p := parent.Child(node.Title)
			if _, cyclic := ancestors[node]; cyclic {
				errs = append(errs, &ValidationError{Path: p, Err: ErrCycle})
				continue
			}
			if strings.TrimSpace(node.Title) == "" {
				errs = append(errs, &ValidationError{Path: p, Err: ErrEmptyTitle})
			}
			if len(node.Children) == 0 {
				errs = append(errs, &ValidationError{Path: p, Err: ErrEmptyGroup})
				continue
			}
			ancestors[node] = struct{}{}
			errs = validateItems(errs, p, node.Children, ancestors)
			delete(ancestors, node)
		default:
			errs = append(errs, &ValidationError{Path: parent, Err: ErrMalformedNode})
		}
	}
	return errs
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		switch node := item.(type) {
		case *Leaf:
			out[i] = &Leaf{
				Title:  strings.TrimSpace(node.Title),
				Target: strings.TrimSpace(node.Target),
			}
		case *Group:
			out[i] = &Group{
				Title:    strings.TrimSpace(node.Title),
				Children: cloneItems(node.Children),
			}
		}
	}
	return out
}
