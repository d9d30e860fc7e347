package state

import "github.com/drawerfm/drawer/internal/tab"

// CloneItems produces a shallow copy of the provided listing rows.
func CloneItems(items []tab.Item) []tab.Item {
	dup := make([]tab.Item, len(items))
	copy(dup, items)
	return dup
}
