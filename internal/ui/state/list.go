package state

import (
	"github.com/drawerfm/drawer/internal/tab"
)

// List tracks what one tab's listing pane shows: the visible rows, the
// find-as-you-type filter, and cursor/viewport positions.
type List struct {
	Location       string
	Items          []tab.Item
	Full           []tab.Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewList constructs listing state for a location.
func NewList(location string, items []tab.Item) *List {
	l := &List{
		Location:   location,
		Cursor:     -1,
		LastCursor: -1,
	}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the row index showing the named entry.
func (l *List) IndexOf(name string) int {
	if name == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.Name == name {
			return i
		}
	}
	return -1
}

// Current returns the row under the cursor.
func (l *List) Current() (tab.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return tab.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the rows, keeping the cursor on the entry it
// was on when that entry survived the reload.
func (l *List) UpdateItems(items []tab.Item) {
	var keep string
	if l.Cursor >= 0 && l.Cursor < len(l.Items) {
		keep = l.Items[l.Cursor].Name
	}
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if keep != "" {
		if idx := l.IndexOf(keep); idx >= 0 {
			l.Cursor = idx
		}
	}
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 || prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}
