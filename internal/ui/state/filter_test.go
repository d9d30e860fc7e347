package state

import (
	"testing"

	"github.com/drawerfm/drawer/internal/tab"
)

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	l := newTestList("one", "two", "three")
	l.Cursor = 2
	l.SetFilter("two", len("two"))

	if l.Filter != "two" {
		t.Fatalf("expected filter persisted, got %q", l.Filter)
	}
	if l.FilterCursor != len("two") {
		t.Fatalf("expected cursor at end, got %d", l.FilterCursor)
	}
	if l.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", l.Cursor)
	}
	if len(l.Items) != 1 || l.Items[0].Name != "two" {
		t.Fatalf("expected filtered rows to contain only 'two', got %#v", l.Items)
	}

	l.SetFilter("", 0)
	if l.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", l.Cursor)
	}
	if l.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", l.LastCursor)
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	l := newTestList("alpha")

	if !l.InsertFilterText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if l.Filter != "ab" || l.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", l.Filter, l.FilterCursor)
	}

	l.FilterCursor = 1
	if !l.InsertFilterText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if l.Filter != "azb" {
		t.Fatalf("expected insert into middle, got %q", l.Filter)
	}
	if l.FilterCursor != 2 {
		t.Fatalf("expected cursor 2 after insert, got %d", l.FilterCursor)
	}

	if !l.DeleteFilterRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if l.Filter != "ab" || l.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", l.Filter, l.FilterCursor)
	}

	l.SetFilter("abc def", len("abc def"))
	if !l.DeleteFilterWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if l.Filter != "abc " {
		t.Fatalf("expected trailing word removed, got %q", l.Filter)
	}

	l.SetFilter("abc", 0)
	if l.DeleteFilterRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
}

func TestFilterCursorNavigation(t *testing.T) {
	l := newTestList("one", "two")
	l.SetFilter("one two", len("one two"))

	if !l.MoveFilterCursorWordBackward() {
		t.Fatal("expected word backward movement")
	}
	if l.FilterCursor != 4 {
		t.Fatalf("expected cursor at 4, got %d", l.FilterCursor)
	}
	if !l.MoveFilterCursorWordForward() {
		t.Fatal("expected word forward movement")
	}
	if l.FilterCursor != len("one two") {
		t.Fatalf("expected cursor restored to end, got %d", l.FilterCursor)
	}

	if !l.MoveFilterCursorRuneBackward() {
		t.Fatal("expected rune backward movement")
	}
	if l.FilterCursor != len("one two")-1 {
		t.Fatalf("expected cursor len-1, got %d", l.FilterCursor)
	}
	if !l.MoveFilterCursorRuneForward() {
		t.Fatal("expected rune forward movement")
	}
	if !l.MoveFilterCursorStart() {
		t.Fatal("expected move to start")
	}
	if l.FilterCursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", l.FilterCursor)
	}
	if !l.MoveFilterCursorEnd() {
		t.Fatal("expected move back to end")
	}
}

func TestFilterItems(t *testing.T) {
	items := []tab.Item{
		{Name: "alpha.txt", Path: "/tmp/alpha.txt"},
		{Name: "beta.txt", Path: "/tmp/beta.txt"},
	}
	filtered := FilterItems(items, "alp")
	if len(filtered) != 1 || filtered[0].Name != "alpha.txt" {
		t.Fatalf("unexpected filtered results %#v", filtered)
	}
	filtered = FilterItems(items, "eta")
	if len(filtered) != 1 || filtered[0].Name != "beta.txt" {
		t.Fatalf("expected contains match for beta.txt, got %#v", filtered)
	}

	clone := CloneItems(items)
	if &clone[0] == &items[0] {
		t.Fatal("expected clone to allocate new backing array")
	}

	if len(FilterItems(items, "nomatch")) != 0 {
		t.Fatal("expected empty results when nothing matches")
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := []tab.Item{
		{Name: "README.md"},
		{Name: "main.go"},
		{Name: "main_test.go"},
	}

	if idx := BestMatchIndex(items, "main.go"); idx != 1 {
		t.Fatalf("expected exact name match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "main_"); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, "read"); idx != 0 {
		t.Fatalf("expected prefix match index 0, got %d", idx)
	}
	if idx := BestMatchIndex(items, "zzz"); idx != 0 {
		t.Fatalf("expected fallback index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}
