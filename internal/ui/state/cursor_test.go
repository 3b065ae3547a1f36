package state

import (
	"testing"

	"github.com/atomicstack/squirrel-docs/internal/nav"
)

func testRow(section, title, target string) Row {
	return Row{Kind: RowLeaf, Path: nav.Path{section, title}, Title: title, Target: target, Depth: 1}
}

func newTestLevel(titles ...string) *Level {
	rows := make([]Row, len(titles))
	for i, title := range titles {
		rows[i] = testRow("Test", title, "/"+title)
	}
	return NewLevel(rows, rows)
}

func TestNewLevelStartsAtFirstRow(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}
	row, ok := l.Current()
	if !ok || row.Title != "a" {
		t.Fatalf("expected current row a, got %#v", row)
	}
	if _, ok := newTestLevel().Current(); ok {
		t.Fatalf("expected no current row for empty level")
	}
}

func TestMoveCursorUpDownWraps(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if !l.MoveCursorUp() || l.Cursor != 2 {
		t.Fatalf("expected wrap to last row, got %d", l.Cursor)
	}
	if !l.MoveCursorDown() || l.Cursor != 0 {
		t.Fatalf("expected wrap to first row, got %d", l.Cursor)
	}
	if !l.MoveCursorDown() || l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}

	single := newTestLevel("only")
	if single.MoveCursorDown() {
		t.Fatalf("expected no movement with a single row")
	}
	empty := newTestLevel()
	if empty.MoveCursorUp() {
		t.Fatalf("expected no movement for empty level")
	}
}

func TestMoveCursorTo(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if !l.MoveCursorTo(2) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if l.MoveCursorTo(5) || l.Cursor != 2 {
		t.Fatalf("expected out of range index to be ignored, got %d", l.Cursor)
	}
	if l.MoveCursorTo(-1) {
		t.Fatalf("expected negative index to be ignored")
	}
}

func TestIndexOfUsesPathKey(t *testing.T) {
	l := newTestLevel("a", "b")
	if idx := l.IndexOf(nav.Path{"Test", "b"}.Key()); idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	if idx := l.IndexOf(nav.Path{"Other", "b"}.Key()); idx != -1 {
		t.Fatalf("expected -1 for unknown path, got %d", idx)
	}
	if idx := l.IndexOf(""); idx != -1 {
		t.Fatalf("expected -1 for empty key, got %d", idx)
	}
}

func TestSetRowsKeepsViewport(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d")
	l.ViewportOffset = 2
	l.Cursor = 3
	rows := l.Tree[:3]
	l.SetRows(rows, rows)
	if l.ViewportOffset != 2 {
		t.Fatalf("expected viewport kept, got %d", l.ViewportOffset)
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor clamped to 2, got %d", l.Cursor)
	}
	l.SetRows(rows[:1], rows[:1])
	if l.ViewportOffset != 0 {
		t.Fatalf("expected viewport reset, got %d", l.ViewportOffset)
	}
}

func TestMoveCursorHome(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 2
	if !l.MoveCursorHome() {
		t.Fatalf("expected move when items exist")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}

	empty := newTestLevel()
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty level")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorEnd(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 0
	if !l.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}

	empty := newTestLevel()
	if empty.MoveCursorEnd() {
		t.Fatalf("expected no movement for empty level")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 0
	if !l.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on first page down")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on second page down")
	}
	if l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	if l.MoveCursorPageDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	if !l.MoveCursorPageUp(2) {
		t.Fatalf("expected movement on page up")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2 after page up, got %d", l.Cursor)
	}
	if !l.MoveCursorPageUp(10) {
		t.Fatalf("expected movement back to start")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.ViewportOffset = 0
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}

	l.Cursor = -1
	l.EnsureCursorVisible(2)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor normalized to 0, got %d", l.Cursor)
	}

	l.ViewportOffset = 4
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", l.ViewportOffset)
	}

	l.ViewportOffset = 4
	l.Cursor = 1
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", l.ViewportOffset)
	}
}
