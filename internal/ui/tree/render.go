// Package tree turns a navigation model into the rows the sidebar shows.
package tree

import (
	"github.com/atomicstack/squirrel-docs/internal/nav"
	"github.com/atomicstack/squirrel-docs/internal/ui/state"
)

// Render walks the model depth-first in declaration order. Every section
// yields a row, followed by its items. A group's children are emitted only
// while exp reports the group open, and a leaf is marked active when it
// matches current.
func Render(m *nav.Model, exp state.Expansion, current string) []state.Row {
	var rows []state.Row
	for _, sec := range m.Sections() {
		p := nav.Path{sec.Title}
		rows = append(rows, state.Row{
			Kind:  state.RowSection,
			Path:  p,
			Title: sec.Title,
			Icon:  sec.Icon,
		})
		rows = renderItems(rows, p, sec.Items, exp, current)
	}
	return rows
}

func renderItems(rows []state.Row, parent nav.Path, items []nav.Item, exp state.Expansion, current string) []state.Row {
	for _, item := range items {
		p := parent.Child(item.ItemTitle())
		switch node := item.(type) {
		case *nav.Leaf:
			rows = append(rows, leafRow(p, node, current))
		case *nav.Group:
			open := exp.IsOpen(p)
			rows = append(rows, state.Row{
				Kind:  state.RowGroup,
				Path:  p,
				Title: node.Title,
				Depth: p.Depth(),
				Open:  open,
			})
			if open {
				rows = renderItems(rows, p, node.Children, exp, current)
			}
		}
	}
	return rows
}

func leafRow(p nav.Path, leaf *nav.Leaf, current string) state.Row {
	return state.Row{
		Kind:   state.RowLeaf,
		Path:   p,
		Title:  leaf.Title,
		Target: leaf.Target,
		Depth:  p.Depth(),
		Active: nav.IsActive(leaf, current),
	}
}

// Leaves returns one row per leaf regardless of expansion. It is the corpus
// the sidebar filter searches.
func Leaves(m *nav.Model, current string) []state.Row {
	refs := m.Leaves()
	rows := make([]state.Row, 0, len(refs))
	for _, ref := range refs {
		rows = append(rows, leafRow(ref.Path, ref.Leaf, current))
	}
	return rows
}

// ActiveTrail returns the path of the first leaf matching current, or nil.
func ActiveTrail(m *nav.Model, current string) nav.Path {
	active := m.ActiveLeaves(current)
	if len(active) == 0 {
		return nil
	}
	return active[0].Path
}

// Reveal returns exp with every closed ancestor group of p opened.
func Reveal(exp state.Expansion, p nav.Path) state.Expansion {
	for i := 2; i < len(p); i++ {
		ancestor := p[:i]
		if !exp.IsOpen(ancestor) {
			exp = exp.Toggle(ancestor)
		}
	}
	return exp
}
