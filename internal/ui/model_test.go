package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drawerfm/drawer/internal/icons"
	"github.com/drawerfm/drawer/internal/tab"
)

// seedDir creates a temp directory holding the named entries. A
// trailing slash makes a subdirectory.
func seedDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if strings.HasSuffix(name, "/") {
			if err := os.Mkdir(filepath.Join(dir, strings.TrimSuffix(name, "/")), 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", name, err)
			}
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte("contents"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

// newTestModel builds a browse model over dir with a fixed window and
// a caret that never schedules blink ticks.
func newTestModel(t *testing.T, dir string) *Model {
	t.Helper()
	m := NewModel(Options{
		Start:  tab.PathLocation(dir),
		Config: tab.DefaultConfig(),
		Width:  80,
		Height: 24,
	})
	m.filterCursor.SetMode(cursor.CursorStatic)
	return m
}

func newPickerModel(t *testing.T, dir string, kind tab.PickerKind) *Model {
	t.Helper()
	m := NewModel(Options{
		Start:  tab.PathLocation(dir),
		Mode:   tab.Picker(kind),
		Config: tab.DefaultConfig(),
		Width:  80,
		Height: 24,
	})
	m.filterCursor.SetMode(cursor.CursorStatic)
	return m
}

// loadModel runs the initial listing load synchronously so tests see
// the directory contents right away.
func loadModel(t *testing.T, m *Model) {
	t.Helper()
	NewHarness(m).processCmd(m.loadListing(m.currentTab().Location))
	if m.errMsg != "" {
		t.Fatalf("listing load failed: %s", m.errMsg)
	}
	if m.loading {
		t.Fatalf("expected load to finish")
	}
}

// setItems pushes synthetic items straight into the active tab,
// bypassing the filesystem.
func setItems(m *Model, items ...tab.Item) {
	tv := m.current()
	tv.tab.SetItems(items)
	m.syncList(tv)
}

func fileItem(name string) tab.Item {
	return tab.Item{Name: name, Path: "/" + name, Mime: "text/plain", Size: 64, Modified: time.Now()}
}

func dirItem(name string) tab.Item {
	return tab.Item{Name: name, Path: "/" + name, IsDir: true, Mime: "inode/directory", Modified: time.Now()}
}

func TestNewModelStartsWithOneTab(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, dir)
	if len(m.tabs) != 1 {
		t.Fatalf("expected one tab, got %d", len(m.tabs))
	}
	if m.mode != ModeBrowse {
		t.Fatalf("expected browse mode, got %d", m.mode)
	}
	loc := m.currentTab().Location
	if loc.Kind != tab.LocationPath || loc.Path != dir {
		t.Fatalf("unexpected start location %#v", loc)
	}
	if m.Picked() != nil {
		t.Fatalf("expected no picked paths, got %v", m.Picked())
	}
}

func TestHandlerForKnownAndUnknownMessages(t *testing.T) {
	m := newTestModel(t, t.TempDir())
	if m.handlerFor(tea.KeyMsg{Type: tea.KeyEnter}) == nil {
		t.Fatalf("expected a handler for key messages")
	}
	if m.handlerFor(listingLoadedMsg{}) == nil {
		t.Fatalf("expected a handler for listing loads")
	}
	if m.handlerFor("bogus") != nil {
		t.Fatalf("expected no handler for unknown message types")
	}
	if m.handlerFor(nil) != nil {
		t.Fatalf("expected no handler for nil")
	}
}

func TestIconSizeClampsZoom(t *testing.T) {
	m := newTestModel(t, t.TempDir())
	if got := m.iconSize(); got != icons.SizeMenu {
		t.Fatalf("expected default icon size %d, got %d", icons.SizeMenu, got)
	}
	m.currentTab().Config.IconZoom = -5
	if got := m.iconSize(); got != 1 {
		t.Fatalf("expected icon size clamped to 1, got %d", got)
	}
	m.currentTab().Config.IconZoom = 9
	if got := m.iconSize(); got != 4 {
		t.Fatalf("expected icon size clamped to 4, got %d", got)
	}
}

func TestInfoMessageExpires(t *testing.T) {
	m := newTestModel(t, t.TempDir())
	m.setInfo("copied")
	if got := m.currentInfo(); got != "copied" {
		t.Fatalf("expected fresh info shown, got %q", got)
	}
	m.infoExpire = time.Now().Add(-time.Second)
	if got := m.currentInfo(); got != "" {
		t.Fatalf("expected info expired, got %q", got)
	}
}

func TestWindowSizeIgnoredWhenFixed(t *testing.T) {
	m := newTestModel(t, t.TempDir())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	if m.width != 80 || m.height != 24 {
		t.Fatalf("expected fixed 80x24, got %dx%d", m.width, m.height)
	}
}

func TestWindowSizeTracksTerminal(t *testing.T) {
	m := NewModel(Options{Start: tab.PathLocation(t.TempDir()), Config: tab.DefaultConfig()})
	m.filterCursor.SetMode(cursor.CursorStatic)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	if m.width != 120 || m.height != 50 {
		t.Fatalf("expected 120x50, got %dx%d", m.width, m.height)
	}
}

func TestStaleListingLoadIsDropped(t *testing.T) {
	dir := seedDir(t, "a.txt")
	m := newTestModel(t, dir)
	loadModel(t, m)
	other := tab.PathLocation(t.TempDir())
	m.Update(listingLoadedMsg{location: other, items: []tab.Item{fileItem("ghost")}})
	list := m.currentList()
	if len(list.Items) != 1 || list.Items[0].Name != "a.txt" {
		t.Fatalf("expected stale load dropped, got %#v", list.Items)
	}
}
