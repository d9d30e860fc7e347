package state

import "github.com/drawerfm/drawer/internal/menu"

// MenuLevel is one sheet of the menu overlay. Levels stack as
// submenus open; popping a level restores the parent's cursor.
type MenuLevel struct {
	Kind           string
	Title          string
	Items          []menu.Item
	Cursor         int
	ViewportOffset int
}

// NewMenuLevel opens a sheet with the cursor on the first row it can
// rest on.
func NewMenuLevel(kind, title string, items []menu.Item) *MenuLevel {
	l := &MenuLevel{Kind: kind, Title: title, Items: items, Cursor: -1}
	l.Cursor = l.nextSelectable(0, 1)
	return l
}

// Selectable reports whether the cursor can rest on row i. Dividers
// and disabled entries cannot take the cursor.
func (l *MenuLevel) Selectable(i int) bool {
	if i < 0 || i >= len(l.Items) {
		return false
	}
	item := l.Items[i]
	return item.Kind != menu.Divider && !item.Disabled
}

// Current returns the item under the cursor.
func (l *MenuLevel) Current() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// CursorDown moves to the next selectable row, wrapping at the bottom.
func (l *MenuLevel) CursorDown() bool { return l.moveCursor(1) }

// CursorUp moves to the previous selectable row, wrapping at the top.
func (l *MenuLevel) CursorUp() bool { return l.moveCursor(-1) }

// CursorHome moves to the first selectable row.
func (l *MenuLevel) CursorHome() bool {
	next := l.nextSelectable(0, 1)
	if next < 0 || next == l.Cursor {
		return false
	}
	l.Cursor = next
	return true
}

// CursorEnd moves to the last selectable row.
func (l *MenuLevel) CursorEnd() bool {
	next := l.nextSelectable(len(l.Items)-1, -1)
	if next < 0 || next == l.Cursor {
		return false
	}
	l.Cursor = next
	return true
}

func (l *MenuLevel) moveCursor(step int) bool {
	if len(l.Items) == 0 {
		return false
	}
	next := l.nextSelectable(l.Cursor+step, step)
	if next < 0 || next == l.Cursor {
		return false
	}
	l.Cursor = next
	return true
}

// EnsureVisible scrolls the sheet so the cursor row is on screen when
// at most maxRows rows fit.
func (l *MenuLevel) EnsureVisible(maxRows int) {
	if maxRows <= 0 || len(l.Items) <= maxRows {
		l.ViewportOffset = 0
		return
	}
	if l.Cursor >= 0 && l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if l.Cursor >= l.ViewportOffset+maxRows {
		l.ViewportOffset = l.Cursor - maxRows + 1
	}
	if max := len(l.Items) - maxRows; l.ViewportOffset > max {
		l.ViewportOffset = max
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
}

// nextSelectable scans from start in step direction, wrapping around
// at most once.
func (l *MenuLevel) nextSelectable(start, step int) int {
	n := len(l.Items)
	if n == 0 {
		return -1
	}
	i := start
	for seen := 0; seen < n; seen++ {
		if i < 0 {
			i = n - 1
		}
		if i >= n {
			i = 0
		}
		if l.Selectable(i) {
			return i
		}
		i += step
	}
	return -1
}
