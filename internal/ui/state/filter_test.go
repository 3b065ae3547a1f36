package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	level := newTestLevel("one", "two", "three")
	level.Cursor = 2
	level.SetFilter("two", len("two"))

	if level.Filter != "two" {
		t.Fatalf("expected filter persisted, got %q", level.Filter)
	}
	if level.FilterCursor != len("two") {
		t.Fatalf("expected cursor at end, got %d", level.FilterCursor)
	}
	if level.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", level.Cursor)
	}
	if len(level.Items) != 1 || level.Items[0].Title != "two" {
		t.Fatalf("expected filtered items to contain only 'two', got %#v", level.Items)
	}

	level.SetFilter("", 0)
	if level.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", level.Cursor)
	}
	if level.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", level.LastCursor)
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	level := newTestLevel("alpha")

	if !level.InsertFilterText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if level.Filter != "ab" || level.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", level.Filter, level.FilterCursor)
	}

	level.FilterCursor = 1
	if !level.InsertFilterText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if level.Filter != "azb" {
		t.Fatalf("expected insert into middle, got %q", level.Filter)
	}
	if level.FilterCursor != 2 {
		t.Fatalf("expected cursor 2 after insert, got %d", level.FilterCursor)
	}

	if !level.DeleteFilterRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if level.Filter != "ab" || level.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", level.Filter, level.FilterCursor)
	}

	level.SetFilter("abc def", len("abc def"))
	if !level.DeleteFilterWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if level.Filter != "abc " {
		t.Fatalf("expected trailing word removed, got %q", level.Filter)
	}

	level.SetFilter("abc", 0)
	if level.DeleteFilterRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
}

func TestFilterCursorNavigation(t *testing.T) {
	level := newTestLevel("one", "two")
	level.SetFilter("one two", len("one two"))

	if !level.MoveFilterCursorWordBackward() {
		t.Fatal("expected word backward movement")
	}
	if level.FilterCursor != 4 {
		t.Fatalf("expected cursor at 4, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorWordForward() {
		t.Fatal("expected word forward movement")
	}
	if level.FilterCursor != len("one two") {
		t.Fatalf("expected cursor restored to end, got %d", level.FilterCursor)
	}

	if !level.MoveFilterCursorRuneBackward() {
		t.Fatal("expected rune backward movement")
	}
	if level.FilterCursor != len("one two")-1 {
		t.Fatalf("expected cursor len-1, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorRuneForward() {
		t.Fatal("expected rune forward movement")
	}
	if level.FilterCursor != len("one two") {
		t.Fatalf("expected cursor at end, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorStart() {
		t.Fatal("expected move to start")
	}
	if level.FilterCursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorEnd() {
		t.Fatal("expected move back to end")
	}
}

func TestFilterRowsAndClone(t *testing.T) {
	rows := []Row{testRow("Docs", "Alpha", "/a"), testRow("Docs", "Beta", "/b")}
	filtered := FilterRows(rows, "alp")
	if len(filtered) != 1 || filtered[0].Title != "Alpha" {
		t.Fatalf("unexpected filtered results %#v", filtered)
	}
	filtered = FilterRows(rows, "ta")
	if len(filtered) != 1 || filtered[0].Title != "Beta" {
		t.Fatalf("expected fuzzy match for Beta, got %#v", filtered)
	}

	clone := CloneRows(rows)
	if &clone[0] == &rows[0] {
		t.Fatal("expected clone to allocate new backing array")
	}

	filtered[0].Title = "changed"
	if rows[1].Title != "Beta" {
		t.Fatal("expected original slice to remain unchanged")
	}

	if len(FilterRows(rows, "nomatch")) != 0 {
		t.Fatal("expected empty results when nothing matches")
	}
}

func TestFilterRowsFallsBackToTargetAndBreadcrumb(t *testing.T) {
	rows := []Row{
		testRow("Guides", "Routing", "/docs/guides/routing"),
		testRow("Examples", "REST API", "/docs/examples/rest-api"),
	}
	filtered := FilterRows(rows, "examples/")
	if len(filtered) != 1 || filtered[0].Title != "REST API" {
		t.Fatalf("expected target match, got %#v", filtered)
	}
	filtered = FilterRows(rows, "guides")
	if len(filtered) != 1 || filtered[0].Title != "Routing" {
		t.Fatalf("expected breadcrumb match, got %#v", filtered)
	}
}

func TestFilterRowsKeepsDeclarationOrder(t *testing.T) {
	rows := []Row{
		testRow("API", "Middleware Type", "/docs/api/middleware"),
		testRow("Guides", "Middleware", "/docs/guides/middleware"),
		testRow("Examples", "Middleware Usage", "/docs/examples/middleware"),
	}
	got := FilterRows(rows, "middleware")
	if diff := cmp.Diff(rows, got); diff != "" {
		t.Fatalf("filtered rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBestMatchIndex(t *testing.T) {
	rows := []Row{
		testRow("Docs", "First", "/one"),
		testRow("Docs", "Second", "/two"),
		testRow("Docs", "Third", "/three"),
	}

	if idx := BestMatchIndex(rows, "Second"); idx != 1 {
		t.Fatalf("expected exact title match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(rows, "two"); idx != 1 {
		t.Fatalf("expected target match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(rows, "th"); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(rows, "zzz"); idx != 0 {
		t.Fatalf("expected fallback index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}

func TestSetFilterSwitchesBetweenTreeAndLeaves(t *testing.T) {
	section := Row{Kind: RowSection, Path: []string{"Docs"}, Title: "Docs"}
	alpha := testRow("Docs", "Alpha", "/a")
	beta := testRow("Docs", "Beta", "/b")
	level := NewLevel([]Row{section, alpha, beta}, []Row{alpha, beta})
	level.Cursor = 2

	level.SetFilter("alp", 3)
	if !level.Filtering() {
		t.Fatal("expected filtering to be active")
	}
	if level.Cursor != 0 {
		t.Fatalf("expected fuzzy match to select first item, got %d", level.Cursor)
	}
	if diff := cmp.Diff([]Row{alpha}, level.Items); diff != "" {
		t.Fatalf("filtered items mismatch (-want +got):\n%s", diff)
	}

	level.SetFilter("  ", 2)
	if level.Filtering() {
		t.Fatal("expected whitespace-only filter to show the tree")
	}
	if len(level.Items) != 3 {
		t.Fatalf("expected tree rows back, got %d", len(level.Items))
	}
	if level.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", level.Cursor)
	}
}
