package state

import "github.com/atomicstack/squirrel-docs/internal/nav"

// RowKind distinguishes the three kinds of sidebar rows.
type RowKind int

const (
	RowSection RowKind = iota
	RowGroup
	RowLeaf
)

func (k RowKind) String() string {
	switch k {
	case RowSection:
		return "section"
	case RowGroup:
		return "group"
	case RowLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// Row is one rendered line of the sidebar.
type Row struct {
	Kind   RowKind
	Path   nav.Path
	Title  string
	Icon   string // sections only
	Target string // leaves only
	Depth  int
	Open   bool // groups only
	Active bool // leaves only
}

// Key identifies the row across re-renders.
func (r Row) Key() string {
	return r.Path.Key()
}

// Breadcrumb is the row's path without its own title, for display next to
// flattened filter results.
func (r Row) Breadcrumb() string {
	return r.Path.Parent().String()
}

// CloneRows produces a shallow copy of the provided rows.
func CloneRows(rows []Row) []Row {
	dup := make([]Row, len(rows))
	copy(dup, rows)
	return dup
}
