package state

// Level holds the sidebar's cursor, viewport and filter state over the
// rendered rows.
//
// Tree is the full expansion-aware rendering and Leaves the flat search
// corpus. Items is what is on screen: Tree while the filter is empty,
// otherwise the leaves that match it.
type Level struct {
	Items          []Row
	Tree           []Row
	Leaves         []Row
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel constructs a Level over the provided rows.
func NewLevel(tree, leaves []Row) *Level {
	l := &Level{
		Cursor:     -1,
		LastCursor: -1,
	}
	l.SetRows(tree, leaves)
	return l
}

// IndexOf returns the index of the visible row with the given key.
func (l *Level) IndexOf(key string) int {
	if key == "" {
		return -1
	}
	for i, row := range l.Items {
		if row.Key() == key {
			return i
		}
	}
	return -1
}

// Current returns the row under the cursor.
func (l *Level) Current() (Row, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Row{}, false
	}
	return l.Items[l.Cursor], true
}

// Filtering reports whether the flat search results are on screen.
func (l *Level) Filtering() bool {
	return filterActive(l.Filter)
}

// SetRows replaces the rendered rows, keeping the viewport where possible.
// Callers that want the cursor on a particular row follow up with IndexOf.
func (l *Level) SetRows(tree, leaves []Row) {
	prevOffset := l.ViewportOffset
	l.Tree = CloneRows(tree)
	l.Leaves = CloneRows(leaves)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 {
		prevOffset = 0
	}
	if prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}
