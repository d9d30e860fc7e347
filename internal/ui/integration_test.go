package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drawerfm/drawer/internal/tab"
)

// TestBrowseFilterOpenFlow drives a whole session the way a user
// would: load a folder, narrow it with the filter, descend, walk back
// up, juggle tabs, and peek at the menu.
func TestBrowseFilterOpenFlow(t *testing.T) {
	dir := seedDir(t, "docs/", "music/", "readme.md")
	if err := os.WriteFile(filepath.Join(dir, "docs", "todo.txt"), []byte("contents"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := newTestModel(t, dir)
	h := NewHarness(m)
	h.processCmd(m.Init())

	view := m.View()
	for _, want := range []string{"docs", "music", "readme.md"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q after initial load, got:\n%s", want, view)
		}
	}

	// Narrow with find-as-you-type.
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("do")})
	if got := m.currentList().Filter; got != "do" {
		t.Fatalf("expected filter %q, got %q", "do", got)
	}
	if view := m.View(); strings.Contains(view, "music") {
		t.Fatalf("expected music filtered out, got:\n%s", view)
	}

	// Enter descends into the only match.
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.currentTab().Location.Path; got != filepath.Join(dir, "docs") {
		t.Fatalf("expected to descend into docs, got %q", got)
	}
	if m.loading {
		t.Fatalf("expected listing loaded")
	}
	if view := m.View(); !strings.Contains(view, "todo.txt") {
		t.Fatalf("expected nested entry, got:\n%s", view)
	}

	// Navigation cleared the filter, so backspace walks up.
	h.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.currentTab().Location.Path; got != dir {
		t.Fatalf("expected to walk back up, got %q", got)
	}

	h.Send(tea.KeyMsg{Type: tea.KeyCtrlT})
	if len(m.tabs) != 2 || m.active != 1 {
		t.Fatalf("expected second tab active, got %d tabs active %d", len(m.tabs), m.active)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlW})
	if len(m.tabs) != 1 {
		t.Fatalf("expected tab closed, got %d", len(m.tabs))
	}

	h.Send(tea.KeyMsg{Type: tea.KeyF9})
	if m.mode != ModeMenu {
		t.Fatalf("expected menu open, got mode %v", m.mode)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != ModeBrowse {
		t.Fatalf("expected menu dismissed, got mode %v", m.mode)
	}
}

// TestPickerFlowChoosesFiles drives a multi-file picker end to end.
func TestPickerFlowChoosesFiles(t *testing.T) {
	dir := seedDir(t, "a.txt", "b.txt")
	m := newPickerModel(t, dir, tab.PickerOpenFiles)
	h := NewHarness(m)
	h.processCmd(m.Init())

	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	if got := len(m.currentTab().Selected()); got != 2 {
		t.Fatalf("expected both entries marked, got %d", got)
	}

	h.Send(tea.KeyMsg{Type: tea.KeyCtrlO})
	got := m.Picked()
	want := []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v picked, got %v", want, got)
	}
}
