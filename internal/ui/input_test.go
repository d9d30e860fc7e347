package ui

import (
	"fmt"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drawerfm/drawer/internal/tab"
)

func TestFilterTypingNarrowsListing(t *testing.T) {
	m := newTestModel(t, seedDir(t, "apple.txt", "banana.txt", "docs/"))
	loadModel(t, m)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ap")})
	list := m.currentList()
	if list.Filter != "ap" {
		t.Fatalf("expected filter %q, got %q", "ap", list.Filter)
	}
	if len(list.Items) != 1 || list.Items[0].Name != "apple.txt" {
		t.Fatalf("expected apple.txt to be the only match, got %#v", list.Items)
	}
	if pos := list.FilterCursorPos(); pos != 2 {
		t.Fatalf("expected filter cursor at end, got %d", pos)
	}
}

func TestBackspaceErasesFilterThenWalksUp(t *testing.T) {
	parent := seedDir(t, "sub/")
	sub := filepath.Join(parent, "sub")
	m := newTestModel(t, sub)
	loadModel(t, m)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.currentList().Filter; got != "" {
		t.Fatalf("expected filter erased, got %q", got)
	}
	if got := m.currentTab().Location.Path; got != sub {
		t.Fatalf("expected location unchanged while erasing, got %s", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.currentTab().Location.Path; got != parent {
		t.Fatalf("expected walk up to %s, got %s", parent, got)
	}
	if !m.loading {
		t.Fatalf("expected a load in flight after walking up")
	}
}

func TestCtrlASelectsAllWhenFilterEmpty(t *testing.T) {
	m := newTestModel(t, seedDir(t, "a.txt", "b.txt"))
	loadModel(t, m)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	if got := len(m.currentTab().Selected()); got != 2 {
		t.Fatalf("expected both entries selected, got %d", got)
	}
}

func TestCtrlAMovesFilterCursorWhileEditing(t *testing.T) {
	m := newTestModel(t, seedDir(t, "a.txt", "b.txt"))
	loadModel(t, m)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("tx")})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	list := m.currentList()
	if pos := list.FilterCursorPos(); pos != 0 {
		t.Fatalf("expected filter cursor at start, got %d", pos)
	}
	if got := len(m.currentTab().Selected()); got != 0 {
		t.Fatalf("expected selection untouched while editing, got %d marks", got)
	}
}

func TestEscapeUnwindsOneLayerAtATime(t *testing.T) {
	m := newTestModel(t, seedDir(t, "a.txt", "b.txt"))
	loadModel(t, m)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.togglePanel(panelDetails)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.currentList().Filter != "" {
		t.Fatalf("expected first escape to clear the filter")
	}
	if len(m.currentTab().Selected()) != 1 {
		t.Fatalf("expected selection to survive the first escape")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if len(m.currentTab().Selected()) != 0 {
		t.Fatalf("expected second escape to clear the selection")
	}
	if m.panel != panelDetails {
		t.Fatalf("expected panel to survive the second escape")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.panel != panelNone {
		t.Fatalf("expected third escape to close the panel")
	}
}

func TestEscapeClosesPicker(t *testing.T) {
	dir := seedDir(t, "a.txt")
	m := newPickerModel(t, dir, tab.PickerOpenFile)
	loadModel(t, m)
	cmd := m.handleEscape()
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if msg := cmd(); msg == nil {
		t.Fatalf("expected a message from the quit command")
	} else if _, ok := msg.(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", msg)
	}
	if m.Picked() != nil {
		t.Fatalf("expected cancelled picker to choose nothing, got %v", m.Picked())
	}
}

func TestWheelScrollMovesListingCursor(t *testing.T) {
	m := newTestModel(t, t.TempDir())
	items := make([]tab.Item, 10)
	for i := range items {
		items[i] = fileItem(fmt.Sprintf("item-%02d", i))
	}
	setItems(m, items...)

	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if got := m.currentList().Cursor; got != wheelScrollLines {
		t.Fatalf("expected cursor at %d after wheel down, got %d", wheelScrollLines, got)
	}
	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if got := m.currentList().Cursor; got != 0 {
		t.Fatalf("expected cursor clamped at 0, got %d", got)
	}
}

func TestWheelScrollDrivesOpenMenu(t *testing.T) {
	m := newTestModel(t, seedDir(t, "a.txt"))
	loadModel(t, m)
	m.openContextMenu()
	level := m.currentMenu()
	if level == nil {
		t.Fatalf("expected a menu level")
	}
	start := level.Cursor
	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if level.Cursor == start {
		t.Fatalf("expected wheel to move the menu cursor")
	}
}
