package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drawerfm/drawer/internal/logging/events"
	"github.com/drawerfm/drawer/internal/tab"
	uistate "github.com/drawerfm/drawer/internal/ui/state"
)

// navigateTo points the active tab at a new location and loads it.
func (m *Model) navigateTo(loc tab.Location) tea.Cmd {
	tv := m.current()
	if tv == nil {
		return nil
	}
	if tv.tab.Location == loc {
		return nil
	}
	tv.tab.Navigate(loc)
	return m.afterLocationChange(tv)
}

// afterLocationChange resets pane state once the tab's location moved
// (navigate, up, back) and starts the load.
func (m *Model) afterLocationChange(tv *tabView) tea.Cmd {
	tv.list = uistate.NewList(tv.tab.Location.String(), nil)
	m.panelScroll = 0
	m.loading = true
	m.errMsg = ""
	m.forceClearInfo()
	m.ensureWatch()
	events.UI.Navigate(tv.tab.Location.String())
	return m.loadListing(tv.tab.Location)
}

// locationUp moves to the parent directory.
func (m *Model) locationUp() tea.Cmd {
	tv := m.current()
	if tv == nil || !tv.tab.Up() {
		return nil
	}
	return m.afterLocationChange(tv)
}

// historyBack revisits the location the tab showed before this one.
func (m *Model) historyBack() tea.Cmd {
	tv := m.current()
	if tv == nil || !tv.tab.Back() {
		return nil
	}
	return m.afterLocationChange(tv)
}

// openCursor handles enter on the listing: directories navigate,
// files open (or get picked).
func (m *Model) openCursor() tea.Cmd {
	tv := m.current()
	if tv == nil {
		return nil
	}
	item, ok := tv.list.Current()
	if !ok {
		return nil
	}
	if item.IsDir {
		return m.navigateTo(tab.PathLocation(item.Path))
	}
	if tv.tab.Mode.Kind == tab.ModePicker {
		return m.pick([]tab.Item{item})
	}
	return m.openItems([]tab.Item{item})
}

// newTab opens a tab at loc and makes it active. Picker windows stay
// single-surface.
func (m *Model) newTab(loc tab.Location) tea.Cmd {
	cur := m.currentTab()
	if cur == nil || cur.Mode.Kind == tab.ModePicker {
		return nil
	}
	nt := tab.New(cur.Mode, loc)
	nt.Config = cur.Config
	tv := &tabView{tab: nt, list: uistate.NewList(loc.String(), nil)}
	m.tabs = append(m.tabs, tv)
	m.active = len(m.tabs) - 1
	events.UI.TabNew(m.active, loc.String())
	return m.afterLocationChange(tv)
}

// closeTab closes the active tab; closing the last one quits.
func (m *Model) closeTab() tea.Cmd {
	cur := m.currentTab()
	if cur == nil || cur.Mode.Kind == tab.ModePicker {
		return nil
	}
	idx := m.active
	events.UI.TabClose(idx)
	if len(m.tabs) == 1 {
		return tea.Quit
	}
	m.tabs = append(m.tabs[:idx], m.tabs[idx+1:]...)
	if m.active >= len(m.tabs) {
		m.active = len(m.tabs) - 1
	}
	return m.activateTab(m.active)
}

// activateTab switches to the tab at idx and reloads its listing so
// it never shows stale rows.
func (m *Model) activateTab(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.tabs) {
		return nil
	}
	m.active = idx
	tv := m.tabs[idx]
	m.panelScroll = 0
	m.loading = true
	m.ensureWatch()
	events.UI.TabSwitch(idx, tv.tab.Location.String())
	return m.loadListing(tv.tab.Location)
}

func (m *Model) nextTab() tea.Cmd {
	if len(m.tabs) < 2 {
		return nil
	}
	return m.activateTab((m.active + 1) % len(m.tabs))
}

func (m *Model) prevTab() tea.Cmd {
	if len(m.tabs) < 2 {
		return nil
	}
	return m.activateTab((m.active - 1 + len(m.tabs)) % len(m.tabs))
}

// moveCursorVert moves the listing cursor one step, wrapping at the
// ends. Grid view jumps a full row per step and clamps instead.
func (m *Model) moveCursorVert(up bool) tea.Cmd {
	tv := m.current()
	if tv == nil {
		return nil
	}
	if tv.tab.Config.View == tab.ViewGrid {
		step := m.gridColumns()
		if up {
			step = -step
		}
		m.moveCursorClamped(tv, step)
		return nil
	}
	if up {
		tv.list.MoveCursorUp()
	} else {
		tv.list.MoveCursorDown()
	}
	m.afterCursorMove(tv)
	return nil
}

// moveCursorClamped shifts the cursor by delta rows without wrapping,
// stopping at the first or last entry.
func (m *Model) moveCursorClamped(tv *tabView, delta int) {
	if len(tv.list.Items) == 0 {
		return
	}
	next := tv.list.Cursor + delta
	if next < 0 {
		next = 0
	}
	if next > len(tv.list.Items)-1 {
		next = len(tv.list.Items) - 1
	}
	tv.list.Cursor = next
	m.afterCursorMove(tv)
}

func (m *Model) moveCursorHome() tea.Cmd {
	tv := m.current()
	if tv == nil {
		return nil
	}
	tv.list.MoveCursorHome()
	m.afterCursorMove(tv)
	return nil
}

func (m *Model) moveCursorEnd() tea.Cmd {
	tv := m.current()
	if tv == nil {
		return nil
	}
	tv.list.MoveCursorEnd()
	m.afterCursorMove(tv)
	return nil
}

func (m *Model) moveCursorPage(up bool) tea.Cmd {
	tv := m.current()
	if tv == nil {
		return nil
	}
	if up {
		tv.list.MoveCursorPageUp(m.maxVisibleItems())
	} else {
		tv.list.MoveCursorPageDown(m.maxVisibleItems())
	}
	m.afterCursorMove(tv)
	return nil
}

func (m *Model) afterCursorMove(tv *tabView) {
	tv.list.EnsureCursorVisible(m.maxVisibleItems())
	m.panelScroll = 0
	events.UI.Cursor(tv.list.Location, tv.list.Cursor)
}

// toggleSelect flips selection on the cursor entry, then moves the
// cursor so repeated presses sweep a range. Single-choice pickers
// keep at most one mark.
func (m *Model) toggleSelect(dir int) tea.Cmd {
	tv := m.current()
	if tv == nil {
		return nil
	}
	item, ok := tv.list.Current()
	if !ok {
		return nil
	}
	if !tv.tab.Mode.Multiple() && !item.Selected {
		tv.tab.ClearSelection()
	}
	tv.tab.ToggleSelectPath(item.Path)
	events.UI.Select(tv.list.Location, item.Name, !item.Selected)
	m.syncList(tv)
	if dir > 0 {
		tv.list.MoveCursorDown()
	} else if dir < 0 {
		tv.list.MoveCursorUp()
	}
	m.afterCursorMove(tv)
	return nil
}
