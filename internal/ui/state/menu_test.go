package state

import (
	"testing"

	"github.com/drawerfm/drawer/internal/action"
	"github.com/drawerfm/drawer/internal/menu"
)

func button(label string) menu.Item {
	return menu.Item{Kind: menu.Button, Label: label, Action: action.Of(action.Open)}
}

func divider() menu.Item {
	return menu.Item{Kind: menu.Divider}
}

func disabled(label string) menu.Item {
	item := button(label)
	item.Disabled = true
	return item
}

func TestNewMenuLevelSkipsLeadingUnselectable(t *testing.T) {
	l := NewMenuLevel("context", "", []menu.Item{disabled("Open"), button("Rename")})
	if l.Cursor != 1 {
		t.Fatalf("expected cursor on first selectable row, got %d", l.Cursor)
	}

	empty := NewMenuLevel("context", "", nil)
	if empty.Cursor != -1 {
		t.Fatalf("expected cursor -1 for empty sheet, got %d", empty.Cursor)
	}
}

func TestMenuCursorSkipsDividers(t *testing.T) {
	l := NewMenuLevel("context", "", []menu.Item{
		button("New folder..."),
		divider(),
		button("Select all"),
		divider(),
		button("Sort by name"),
	})
	if l.Cursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", l.Cursor)
	}
	if !l.CursorDown() {
		t.Fatal("expected cursor to move")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected divider skipped, cursor at 2, got %d", l.Cursor)
	}
	if !l.CursorDown() {
		t.Fatal("expected cursor to move")
	}
	if l.Cursor != 4 {
		t.Fatalf("expected cursor at 4, got %d", l.Cursor)
	}
}

func TestMenuCursorWraps(t *testing.T) {
	l := NewMenuLevel("bar", "", []menu.Item{button("File"), button("Edit"), button("View")})
	l.Cursor = 2
	if !l.CursorDown() {
		t.Fatal("expected wrap move")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected wrap to top, got %d", l.Cursor)
	}
	if !l.CursorUp() {
		t.Fatal("expected wrap move")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected wrap to bottom, got %d", l.Cursor)
	}
}

func TestMenuCursorSkipsDisabled(t *testing.T) {
	l := NewMenuLevel("context", "", []menu.Item{
		button("Open"),
		disabled("Open with..."),
		button("Rename..."),
	})
	if !l.CursorDown() {
		t.Fatal("expected cursor to move")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected disabled row skipped, cursor at 2, got %d", l.Cursor)
	}
}

func TestMenuCursorHomeEnd(t *testing.T) {
	l := NewMenuLevel("context", "", []menu.Item{
		divider(),
		button("Open"),
		button("Rename..."),
		divider(),
	})
	l.Cursor = 2
	if !l.CursorHome() {
		t.Fatal("expected home move")
	}
	if l.Cursor != 1 {
		t.Fatalf("expected first selectable row, got %d", l.Cursor)
	}
	if !l.CursorEnd() {
		t.Fatal("expected end move")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected last selectable row, got %d", l.Cursor)
	}
}

func TestMenuCurrentOnAllUnselectable(t *testing.T) {
	l := NewMenuLevel("context", "", []menu.Item{divider(), disabled("Open")})
	if l.Cursor != -1 {
		t.Fatalf("expected no resting place, got %d", l.Cursor)
	}
	if _, ok := l.Current(); ok {
		t.Fatal("expected no current item")
	}
	if l.CursorDown() {
		t.Fatal("expected no movement with nothing selectable")
	}
}

func TestMenuEnsureVisibleFollowsCursor(t *testing.T) {
	items := make([]menu.Item, 0, 8)
	for _, label := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		items = append(items, button(label))
	}
	l := NewMenuLevel("bar", "", items)

	l.Cursor = 6
	l.EnsureVisible(4)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}

	l.Cursor = 1
	l.EnsureVisible(4)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset 1, got %d", l.ViewportOffset)
	}

	l.EnsureVisible(20)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when everything fits, got %d", l.ViewportOffset)
	}
}
