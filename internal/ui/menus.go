package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drawerfm/drawer/internal/logging/events"
	"github.com/drawerfm/drawer/internal/menu"
	"github.com/drawerfm/drawer/internal/tab"
	uistate "github.com/drawerfm/drawer/internal/ui/state"
)

// openContextMenu opens the selection menu for the current listing.
func (m *Model) openContextMenu() tea.Cmd {
	t := m.currentTab()
	if t == nil {
		return nil
	}
	return m.openMenu("context", t.Location.Title(), menu.ContextMenu(t, m.binds))
}

// openBarMenu opens the window menu: the full bar for browse windows,
// the compact view controls for pickers.
func (m *Model) openBarMenu() tea.Cmd {
	t := m.currentTab()
	if t == nil {
		return nil
	}
	showDetails := m.panel == panelDetails
	if t.Mode.Kind == tab.ModePicker {
		return m.openMenu("controls", "View", menu.ViewControls(t, showDetails, m.binds))
	}
	return m.openMenu("bar", "Menu", menu.Bar(t, showDetails, m.binds))
}

// openLocationMenu opens the breadcrumb menu for ancestor idx. The
// ancestor list is pinned while the menu is up so the indexes its
// items emit resolve against exactly what was shown.
func (m *Model) openLocationMenu(idx int) tea.Cmd {
	t := m.currentTab()
	if t == nil {
		return nil
	}
	ancestors := t.Location.Ancestors()
	if idx < 0 || idx >= len(ancestors) {
		return nil
	}
	m.menuAncestors = ancestors
	return m.openMenu("location", ancestors[idx].Title(), menu.LocationMenu(idx))
}

func (m *Model) openMenu(kind, title string, items []menu.Item) tea.Cmd {
	if len(items) == 0 {
		return nil
	}
	level := uistate.NewMenuLevel(kind, title, items)
	level.EnsureVisible(m.maxMenuRows())
	m.menuStack = []*uistate.MenuLevel{level}
	m.mode = ModeMenu
	events.Menu.Open(kind, len(items))
	return nil
}

// menuEnter descends into a submenu or fires the item's action.
func (m *Model) menuEnter() tea.Cmd {
	level := m.currentMenu()
	if level == nil {
		return nil
	}
	item, ok := level.Current()
	if !ok {
		return nil
	}
	if item.Kind == menu.Submenu {
		title := item.Label
		if title == "" {
			title = level.Title
		}
		sub := uistate.NewMenuLevel(level.Kind, title, item.Children)
		sub.EnsureVisible(m.maxMenuRows())
		m.menuStack = append(m.menuStack, sub)
		events.Menu.Enter(level.Kind, item.Label)
		return nil
	}
	events.Menu.Select(item.Action.String())
	m.menuStack = nil
	m.mode = ModeBrowse
	cmd := m.apply(item.Action)
	m.menuAncestors = nil
	return cmd
}

// menuBack pops one submenu; at the root it dismisses the menu.
func (m *Model) menuBack() tea.Cmd {
	if len(m.menuStack) > 1 {
		level := m.currentMenu()
		m.menuStack = m.menuStack[:len(m.menuStack)-1]
		events.Menu.Back(level.Kind)
		return nil
	}
	m.dismissMenu()
	return nil
}

// dismissMenu closes the whole menu overlay without firing anything.
func (m *Model) dismissMenu() {
	if m.mode != ModeMenu {
		return
	}
	events.Menu.Dismiss(events.MenuReasonEscape)
	m.menuStack = nil
	m.menuAncestors = nil
	m.mode = ModeBrowse
}

func (m *Model) handleMenuKey(keyMsg tea.KeyMsg) tea.Cmd {
	level := m.currentMenu()
	if level == nil {
		m.mode = ModeBrowse
		return nil
	}
	switch keyMsg.String() {
	case "esc", "backspace", "left":
		return m.menuBack()
	case "f9", "f10":
		m.dismissMenu()
		return nil
	case "enter", " ":
		return m.menuEnter()
	case "right":
		if item, ok := level.Current(); ok && item.Kind == menu.Submenu {
			return m.menuEnter()
		}
		return nil
	case "up":
		if level.CursorUp() {
			level.EnsureVisible(m.maxMenuRows())
			events.Menu.Cursor(level.Kind, level.Cursor)
		}
		return nil
	case "down":
		if level.CursorDown() {
			level.EnsureVisible(m.maxMenuRows())
			events.Menu.Cursor(level.Kind, level.Cursor)
		}
		return nil
	case "home":
		if level.CursorHome() {
			level.EnsureVisible(m.maxMenuRows())
			events.Menu.Cursor(level.Kind, level.Cursor)
		}
		return nil
	case "end":
		if level.CursorEnd() {
			level.EnsureVisible(m.maxMenuRows())
			events.Menu.Cursor(level.Kind, level.Cursor)
		}
		return nil
	}
	return nil
}
