package state

import (
	"testing"

	"github.com/drawerfm/drawer/internal/tab"
)

func TestUpdateItemsKeepsCursorOnEntry(t *testing.T) {
	l := newTestList("a.txt", "b.txt", "c.txt")
	l.Cursor = 1

	l.UpdateItems([]tab.Item{
		{Name: "a.txt"},
		{Name: "a2.txt"},
		{Name: "b.txt"},
		{Name: "c.txt"},
	})
	if l.Cursor != 2 {
		t.Fatalf("expected cursor to follow b.txt to index 2, got %d", l.Cursor)
	}
}

func TestUpdateItemsClampsWhenEntryGone(t *testing.T) {
	l := newTestList("a.txt", "b.txt", "c.txt")
	l.Cursor = 2

	l.UpdateItems([]tab.Item{{Name: "a.txt"}})
	if l.Cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", l.Cursor)
	}

	l.UpdateItems(nil)
	if l.Cursor != 0 || l.ViewportOffset != 0 {
		t.Fatalf("expected zeroed state for empty listing, got cursor %d offset %d", l.Cursor, l.ViewportOffset)
	}
}

func TestUpdateItemsReappliesFilter(t *testing.T) {
	l := newTestList("notes.txt", "todo.txt")
	l.SetFilter("todo", 4)
	if len(l.Items) != 1 {
		t.Fatalf("expected one filtered row, got %d", len(l.Items))
	}

	l.UpdateItems([]tab.Item{
		{Name: "notes.txt"},
		{Name: "todo.txt"},
		{Name: "todo-old.txt"},
	})
	if len(l.Items) != 2 {
		t.Fatalf("expected filter to apply to new rows, got %d", len(l.Items))
	}
	for _, item := range l.Items {
		if item.Name != "todo.txt" && item.Name != "todo-old.txt" {
			t.Fatalf("unexpected row %q after refresh", item.Name)
		}
	}
}

func TestCurrent(t *testing.T) {
	l := newTestList("a", "b")
	l.Cursor = 1
	item, ok := l.Current()
	if !ok || item.Name != "b" {
		t.Fatalf("expected current row b, got %#v ok=%v", item, ok)
	}

	empty := newTestList()
	if _, ok := empty.Current(); ok {
		t.Fatal("expected no current row for empty listing")
	}
}

func TestIndexOf(t *testing.T) {
	l := newTestList("a", "b", "c")
	if idx := l.IndexOf("b"); idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	if idx := l.IndexOf("missing"); idx != -1 {
		t.Fatalf("expected -1 for unknown name, got %d", idx)
	}
	if idx := l.IndexOf(""); idx != -1 {
		t.Fatalf("expected -1 for empty name, got %d", idx)
	}
}
