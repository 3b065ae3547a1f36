package tree

import (
	"strings"

	"github.com/atomicstack/squirrel-docs/internal/theme"
	"github.com/atomicstack/squirrel-docs/internal/ui/state"
)

const (
	indentUnit   = "  "
	openMarker   = "▾ "
	closedMarker = "▸ "
	activeMarker = "• "
	leafMarker   = "  "
)

// Line formats a single row without styling.
func Line(row state.Row) string {
	var b strings.Builder
	if row.Depth > 1 {
		b.WriteString(strings.Repeat(indentUnit, row.Depth-1))
	}
	switch row.Kind {
	case state.RowSection:
		b.WriteString(theme.Glyph(row.Icon))
		b.WriteString(" ")
	case state.RowGroup:
		if row.Open {
			b.WriteString(openMarker)
		} else {
			b.WriteString(closedMarker)
		}
	case state.RowLeaf:
		if row.Active {
			b.WriteString(activeMarker)
		} else {
			b.WriteString(leafMarker)
		}
	}
	b.WriteString(row.Title)
	return b.String()
}

// Text renders rows one per line.
func Text(rows []state.Row) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(Line(row))
		b.WriteByte('\n')
	}
	return b.String()
}
