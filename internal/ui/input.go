package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drawerfm/drawer/internal/keymap"
	"github.com/drawerfm/drawer/internal/logging/events"
	"github.com/drawerfm/drawer/internal/tab"
)

const wheelScrollLines = 3

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.mode {
	case ModeMenu:
		return m.handleMenuKey(keyMsg)
	case ModeOverlay:
		return m.handleOverlayKey(keyMsg)
	}
	return m.handleBrowseKey(keyMsg)
}

func (m *Model) handleBrowseKey(keyMsg tea.KeyMsg) tea.Cmd {
	if handled, cmd := m.handleFilterInput(keyMsg); handled {
		return cmd
	}
	tv := m.current()
	switch keyMsg.String() {
	case "tab":
		return m.toggleSelect(1)
	case "shift+tab":
		return m.toggleSelect(-1)
	case "enter":
		return m.openCursor()
	case "esc":
		return m.handleEscape()
	case "up":
		return m.moveCursorVert(true)
	case "down":
		return m.moveCursorVert(false)
	case "left":
		if tv != nil && tv.tab.Config.View == tab.ViewGrid && tv.list.Filter == "" {
			m.moveCursorClamped(tv, -1)
		}
		return nil
	case "right":
		if tv != nil && tv.tab.Config.View == tab.ViewGrid && tv.list.Filter == "" {
			m.moveCursorClamped(tv, 1)
		}
		return nil
	case "pgup":
		return m.moveCursorPage(true)
	case "pgdown":
		return m.moveCursorPage(false)
	case "home":
		return m.moveCursorHome()
	case "end":
		return m.moveCursorEnd()
	case "backspace":
		// With no filter to erase, backspace walks up the tree.
		return m.locationUp()
	case "f5":
		m.loading = true
		return m.refresh()
	case "f9":
		return m.openBarMenu()
	case "f10":
		return m.openContextMenu()
	case "ctrl+pgdown":
		return m.nextTab()
	case "ctrl+pgup":
		return m.prevTab()
	case "ctrl+o":
		return m.pickCurrent()
	}
	if keyMsg.Alt && len(keyMsg.Runes) == 1 && keyMsg.Runes[0] >= '1' && keyMsg.Runes[0] <= '9' {
		return m.openLocationMenu(int(keyMsg.Runes[0] - '1'))
	}
	if bind, err := keymap.ParseBind(keyMsg.String()); err == nil {
		if act, ok := m.binds[bind]; ok {
			return m.apply(act)
		}
	}
	return nil
}

// handleEscape unwinds transient state a layer at a time: the filter,
// then the selection, then the side panel. Pickers close on a bare
// escape, choosing nothing.
func (m *Model) handleEscape() tea.Cmd {
	tv := m.current()
	if tv == nil {
		return nil
	}
	if tv.list.Filter != "" {
		tv.list.SetFilter("", 0)
		m.markFilterDirty()
		events.Filter.Cleared(tv.list.Location)
		tv.list.EnsureCursorVisible(m.maxVisibleItems())
		return nil
	}
	if len(tv.tab.Selected()) > 0 {
		tv.tab.ClearSelection()
		m.syncList(tv)
		return nil
	}
	if m.panel != panelNone {
		m.panel = panelNone
		return nil
	}
	if tv.tab.Mode.Kind == tab.ModePicker {
		return tea.Quit
	}
	return nil
}

// handleFilterInput feeds text editing keys to the listing filter. It
// reports whether the key was consumed; keys the filter has no use
// for fall through to navigation and the binding table.
func (m *Model) handleFilterInput(keyMsg tea.KeyMsg) (bool, tea.Cmd) {
	tv := m.current()
	if tv == nil {
		return false, nil
	}
	list := tv.list
	switch keyMsg.Type {
	case tea.KeyRunes, tea.KeySpace:
		if keyMsg.Alt {
			if len(keyMsg.Runes) == 1 {
				switch keyMsg.Runes[0] {
				case 'b':
					if list.MoveFilterCursorWordBackward() {
						m.markFilterDirty()
						return true, nil
					}
				case 'f':
					if list.MoveFilterCursorWordForward() {
						m.markFilterDirty()
						return true, nil
					}
				}
			}
			return false, nil
		}
		text := string(keyMsg.Runes)
		if keyMsg.Type == tea.KeySpace {
			text = " "
		}
		if text == "" {
			return false, nil
		}
		if list.InsertFilterText(text) {
			m.markFilterDirty()
			events.Filter.Append(list.Location, list.Filter)
			list.EnsureCursorVisible(m.maxVisibleItems())
		}
		return true, nil
	case tea.KeyBackspace:
		if list.Filter == "" {
			return false, nil
		}
		if list.DeleteFilterRuneBackward() {
			m.markFilterDirty()
			events.Filter.Backspace(list.Location, list.Filter)
			list.EnsureCursorVisible(m.maxVisibleItems())
		}
		return true, nil
	case tea.KeyCtrlW:
		if !list.DeleteFilterWordBackward() {
			return false, nil
		}
		m.markFilterDirty()
		events.Filter.WordBackspace(list.Location, list.Filter)
		list.EnsureCursorVisible(m.maxVisibleItems())
		return true, nil
	case tea.KeyCtrlU:
		if list.Filter == "" {
			return false, nil
		}
		list.SetFilter("", 0)
		m.markFilterDirty()
		events.Filter.Cleared(list.Location)
		list.EnsureCursorVisible(m.maxVisibleItems())
		return true, nil
	case tea.KeyLeft:
		if keyMsg.Alt {
			return false, nil
		}
		if list.MoveFilterCursorRuneBackward() {
			m.markFilterDirty()
			return true, nil
		}
		return false, nil
	case tea.KeyRight:
		if keyMsg.Alt {
			return false, nil
		}
		if list.MoveFilterCursorRuneForward() {
			m.markFilterDirty()
			return true, nil
		}
		return false, nil
	case tea.KeyCtrlA:
		if list.MoveFilterCursorStart() {
			m.markFilterDirty()
			return true, nil
		}
		return false, nil
	case tea.KeyCtrlE:
		if list.MoveFilterCursorEnd() {
			m.markFilterDirty()
			return true, nil
		}
		return false, nil
	}
	return false, nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouseMsg, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch mouseMsg.Button {
	case tea.MouseButtonWheelUp:
		return m.wheelScroll(-wheelScrollLines)
	case tea.MouseButtonWheelDown:
		return m.wheelScroll(wheelScrollLines)
	}
	return nil
}

// wheelScroll routes the mouse wheel to whatever pane is on top:
// overlay, menu, side panel, then the listing.
func (m *Model) wheelScroll(delta int) tea.Cmd {
	switch m.mode {
	case ModeOverlay:
		m.scrollOverlay(delta)
		return nil
	case ModeMenu:
		level := m.currentMenu()
		if level == nil {
			return nil
		}
		steps := delta
		if steps < 0 {
			steps = -steps
		}
		moved := false
		for i := 0; i < steps; i++ {
			if delta < 0 {
				moved = level.CursorUp() || moved
			} else {
				moved = level.CursorDown() || moved
			}
		}
		if moved {
			level.EnsureVisible(m.maxMenuRows())
		}
		return nil
	case ModePrompt, ModeConfirm:
		return nil
	}
	if m.panel != panelNone {
		m.scrollPanel(delta)
		return nil
	}
	tv := m.current()
	if tv == nil {
		return nil
	}
	m.moveCursorClamped(tv, delta)
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	sizeMsg, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = sizeMsg.Width
	}
	if !m.fixedHeight {
		m.height = sizeMsg.Height
	}
	if tv := m.current(); tv != nil {
		tv.list.EnsureCursorVisible(m.maxVisibleItems())
	}
	if level := m.currentMenu(); level != nil {
		level.EnsureVisible(m.maxMenuRows())
	}
	return nil
}
