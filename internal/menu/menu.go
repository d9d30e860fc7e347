// Package menu builds the menu trees the UI renders: the context
// menu, the top menu bar, the picker view controls, and the breadcrumb
// menu. Builders are pure functions over tab state and the key binding
// table; activating an item emits its Action for the update loop.
package menu

import (
	"github.com/drawerfm/drawer/internal/action"
	"github.com/drawerfm/drawer/internal/icons"
	"github.com/drawerfm/drawer/internal/keymap"
	"github.com/drawerfm/drawer/internal/tab"
	"github.com/drawerfm/drawer/internal/trash"
)

// Kind discriminates menu tree nodes.
type Kind int

const (
	Button Kind = iota
	Checkbox
	Divider
	Submenu
)

// Item is one node of a menu tree.
type Item struct {
	Kind     Kind
	Label    string
	Icon     icons.Handle
	Action   action.Action
	Shortcut string
	Checked  bool
	Disabled bool
	Children []Item
}

// Binds is the key binding table menus resolve shortcut labels from.
type Binds = map[keymap.Bind]action.Action

// trashEntries reports the user trash bin count. It is a variable so
// tests can pin the gate.
var trashEntries = trash.Entries

func iconFor(name string) icons.Handle {
	if name == "" {
		return icons.Handle{}
	}
	return icons.GetHandle(name, icons.SizeMenu)
}

func button(label, icon string, act action.Action, binds Binds) Item {
	return Item{
		Kind:     Button,
		Label:    label,
		Icon:     iconFor(icon),
		Action:   act,
		Shortcut: keymap.ShortcutFor(binds, act),
	}
}

// optional is a button that renders insensitive when its gate is off.
func optional(label, icon string, act action.Action, enabled bool, binds Binds) Item {
	item := button(label, icon, act, binds)
	item.Disabled = !enabled
	return item
}

func checkbox(label, icon string, checked bool, act action.Action, binds Binds) Item {
	item := button(label, icon, act, binds)
	item.Kind = Checkbox
	item.Checked = checked
	return item
}

func divider() Item {
	return Item{Kind: Divider}
}

func submenu(label, icon string, children []Item) Item {
	return Item{Kind: Submenu, Label: label, Icon: iconFor(icon), Children: children}
}

// normalize drops leading, doubled, and trailing dividers so gate
// combinations never leave stray separators.
func normalize(items []Item) []Item {
	out := items[:0]
	for _, item := range items {
		if item.Kind == Divider && (len(out) == 0 || out[len(out)-1].Kind == Divider) {
			continue
		}
		out = append(out, item)
	}
	for len(out) > 0 && out[len(out)-1].Kind == Divider {
		out = out[:len(out)-1]
	}
	return out
}

// sortToggle renders a sort column button, suffixing the active column
// with the direction the listing flows.
func sortToggle(t *tab.Tab, label string, field tab.SortField) Item {
	sortField, ascending := t.SortOptions()
	if sortField == field {
		if ascending {
			label += " ⬇"
		} else {
			label += " ⬆"
		}
	}
	return Item{Kind: Button, Label: label, Action: action.ToggleSort(field)}
}

// sortPreset renders one of the six fixed orderings as a checkbox.
func sortPreset(label string, field tab.SortField, ascending bool, current tab.SortField, currentAsc, haveTab bool) Item {
	return Item{
		Kind:    Checkbox,
		Label:   label,
		Checked: haveTab && current == field && currentAsc == ascending,
		Action:  action.SetSort(field, ascending),
	}
}
