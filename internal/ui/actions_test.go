package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drawerfm/drawer/internal/action"
	"github.com/drawerfm/drawer/internal/recents"
	"github.com/drawerfm/drawer/internal/tab"
	"github.com/drawerfm/drawer/internal/trash"
)

func TestOpenFileGoesThroughOpener(t *testing.T) {
	orig := openPathFn
	defer func() { openPathFn = orig }()
	var opened []string
	openPathFn = func(ctx context.Context, path string) error {
		opened = append(opened, path)
		return nil
	}

	dir := seedDir(t, "a.txt")
	m := newTestModel(t, dir)
	loadModel(t, m)

	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	want := filepath.Join(dir, "a.txt")
	if len(opened) != 1 || opened[0] != want {
		t.Fatalf("expected opener called with %s, got %v", want, opened)
	}
	if m.errMsg != "" {
		t.Fatalf("expected no error, got %q", m.errMsg)
	}
	entries := m.history.Entries()
	if len(entries) != 1 || entries[0].Action != "open" {
		t.Fatalf("expected an open entry in history, got %#v", entries)
	}
}

func TestCopyPasteDuplicatesFile(t *testing.T) {
	src := seedDir(t, "a.txt")
	dest := t.TempDir()
	m := newTestModel(t, src)
	loadModel(t, m)

	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	if paths, move := m.clipboard.Paths(); len(paths) != 1 || move {
		t.Fatalf("expected one staged copy, got %v move=%v", paths, move)
	}

	h.processCmd(m.navigateTo(tab.PathLocation(dest)))
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlV})

	if _, err := os.Stat(filepath.Join(dest, "a.txt")); err != nil {
		t.Fatalf("expected pasted copy: %v", err)
	}
	if _, err := os.Stat(filepath.Join(src, "a.txt")); err != nil {
		t.Fatalf("expected source intact after copy: %v", err)
	}
	if paths, _ := m.clipboard.Paths(); len(paths) != 1 {
		t.Fatalf("expected clipboard still staged after copy, got %v", paths)
	}
}

func TestCutPasteMovesAndClearsClipboard(t *testing.T) {
	src := seedDir(t, "a.txt")
	dest := t.TempDir()
	m := newTestModel(t, src)
	loadModel(t, m)

	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlX})
	h.processCmd(m.navigateTo(tab.PathLocation(dest)))
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlV})

	if _, err := os.Stat(filepath.Join(dest, "a.txt")); err != nil {
		t.Fatalf("expected moved file at destination: %v", err)
	}
	if _, err := os.Stat(filepath.Join(src, "a.txt")); !os.IsNotExist(err) {
		t.Fatalf("expected source gone after move, got %v", err)
	}
	if paths, _ := m.clipboard.Paths(); len(paths) != 0 {
		t.Fatalf("expected clipboard cleared after move, got %v", paths)
	}
}

func TestPasteEmptyClipboardReportsInfo(t *testing.T) {
	m := newTestModel(t, t.TempDir())
	if cmd := m.paste(action.Of(action.Paste)); cmd != nil {
		t.Fatalf("expected no command for an empty clipboard")
	}
	if got := m.currentInfo(); got != "Clipboard is empty" {
		t.Fatalf("expected empty-clipboard info, got %q", got)
	}
}

func TestDeleteMovesFileToTrashBin(t *testing.T) {
	dir := seedDir(t, "junk.txt")
	bin := trash.NewBin(t.TempDir())
	m := NewModel(Options{
		Start:  tab.PathLocation(dir),
		Config: tab.DefaultConfig(),
		Width:  80,
		Height: 24,
		Bin:    bin,
	})
	m.filterCursor.SetMode(cursor.CursorStatic)
	loadModel(t, m)

	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyDelete})

	if _, err := os.Stat(filepath.Join(dir, "junk.txt")); !os.IsNotExist(err) {
		t.Fatalf("expected file trashed, got %v", err)
	}
	if got := bin.Count(); got != 1 {
		t.Fatalf("expected one trashed entry, got %d", got)
	}
	if got := m.currentInfo(); !strings.Contains(got, "Moved 1 item to trash") {
		t.Fatalf("unexpected info %q", got)
	}
}

func TestEmptyTrashAsksBeforeDeleting(t *testing.T) {
	dir := seedDir(t, "junk.txt")
	bin := trash.NewBin(t.TempDir())
	if _, err := bin.Move(filepath.Join(dir, "junk.txt")); err != nil {
		t.Fatalf("seeding bin: %v", err)
	}
	m := NewModel(Options{
		Start:  tab.PathLocation(dir),
		Config: tab.DefaultConfig(),
		Width:  80,
		Height: 24,
		Bin:    bin,
	})
	m.filterCursor.SetMode(cursor.CursorStatic)
	loadModel(t, m)

	m.apply(action.Of(action.EmptyTrash))
	if m.mode != ModeConfirm || m.confirm == nil {
		t.Fatalf("expected a confirmation question")
	}
	if !strings.Contains(m.confirm.question, "Permanently delete 1") {
		t.Fatalf("unexpected question %q", m.confirm.question)
	}

	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if got := bin.Count(); got != 0 {
		t.Fatalf("expected bin emptied, got %d entries", got)
	}
	if m.mode != ModeBrowse {
		t.Fatalf("expected browse mode after confirming")
	}
}

func TestAddToSidebarSkipsExistingFavorites(t *testing.T) {
	store, err := recents.Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	dir := seedDir(t, "docs/")
	m := NewModel(Options{
		Start:  tab.PathLocation(dir),
		Config: tab.DefaultConfig(),
		Width:  80,
		Height: 24,
		Store:  store,
	})
	m.filterCursor.SetMode(cursor.CursorStatic)
	loadModel(t, m)

	h := NewHarness(m)
	h.processCmd(m.apply(action.Of(action.AddToSidebar)))
	want := filepath.Join(dir, "docs")
	if favs, err := store.Favorites(); err != nil || len(favs) != 1 || favs[0] != want {
		t.Fatalf("expected favorites [%s], got %v err %v", want, favs, err)
	}

	h.processCmd(m.apply(action.Of(action.AddToSidebar)))
	if got := m.currentInfo(); got != "Already in sidebar" {
		t.Fatalf("expected duplicate add flagged, got %q", got)
	}
	if favs, _ := store.Favorites(); len(favs) != 1 {
		t.Fatalf("expected favorites unchanged, got %v", favs)
	}
}

func TestTrashPrunesStoreRows(t *testing.T) {
	store, err := recents.Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	dir := seedDir(t, "junk.txt")
	path := filepath.Join(dir, "junk.txt")
	if err := store.Touch(path); err != nil {
		t.Fatalf("touch: %v", err)
	}
	if err := store.AddFavorite(path); err != nil {
		t.Fatalf("add favorite: %v", err)
	}

	bin := trash.NewBin(t.TempDir())
	m := NewModel(Options{
		Start:  tab.PathLocation(dir),
		Config: tab.DefaultConfig(),
		Width:  80,
		Height: 24,
		Bin:    bin,
		Store:  store,
	})
	m.filterCursor.SetMode(cursor.CursorStatic)
	loadModel(t, m)

	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyDelete})

	if recs, err := store.Recents(10); err != nil || len(recs) != 0 {
		t.Fatalf("expected recents pruned, got %v err %v", recs, err)
	}
	if favs, err := store.Favorites(); err != nil || len(favs) != 0 {
		t.Fatalf("expected favorites pruned, got %v err %v", favs, err)
	}
}

func TestCopyPathJoinsSelectionWithNewlines(t *testing.T) {
	orig := clipboardWriteFn
	defer func() { clipboardWriteFn = orig }()
	var wrote string
	clipboardWriteFn = func(text string) error {
		wrote = text
		return nil
	}

	m := newTestModel(t, t.TempDir())
	setItems(m, fileItem("a"), fileItem("b"))
	m.currentTab().SelectAll()
	m.syncList(m.current())

	m.apply(action.Of(action.CopyPath))
	if wrote != "/a\n/b" {
		t.Fatalf("expected joined paths, got %q", wrote)
	}
	if got := m.currentInfo(); !strings.Contains(got, "Copied 2 items") {
		t.Fatalf("unexpected info %q", got)
	}
}

func TestCopyPathReportsClipboardError(t *testing.T) {
	orig := clipboardWriteFn
	defer func() { clipboardWriteFn = orig }()
	clipboardWriteFn = func(string) error { return errors.New("no clipboard") }

	m := newTestModel(t, t.TempDir())
	setItems(m, fileItem("a"))
	m.apply(action.Of(action.CopyPath))
	if m.errMsg != "no clipboard" {
		t.Fatalf("expected clipboard error surfaced, got %q", m.errMsg)
	}
}

func TestZoomStopsAtBundledSizes(t *testing.T) {
	m := newTestModel(t, t.TempDir())
	for i := 0; i < 5; i++ {
		m.apply(action.Of(action.ZoomIn))
	}
	if got := m.currentTab().Config.IconZoom; got != 2 {
		t.Fatalf("expected zoom capped at 2, got %d", got)
	}
	for i := 0; i < 9; i++ {
		m.apply(action.Of(action.ZoomOut))
	}
	if got := m.currentTab().Config.IconZoom; got != -1 {
		t.Fatalf("expected zoom floored at -1, got %d", got)
	}
	m.apply(action.Of(action.ZoomDefault))
	if got := m.currentTab().Config.IconZoom; got != 0 {
		t.Fatalf("expected default zoom restored, got %d", got)
	}
}

func TestToggleShowHiddenDropsHiddenMarks(t *testing.T) {
	m := newTestModel(t, t.TempDir())
	m.currentTab().Config.ShowHidden = true
	hidden := fileItem(".secret")
	hidden.Hidden = true
	setItems(m, hidden, fileItem("plain"))
	m.currentTab().SelectAll()
	m.syncList(m.current())

	m.apply(action.Of(action.ToggleShowHidden))
	sel := m.currentTab().Selected()
	if len(sel) != 1 || sel[0].Name != "plain" {
		t.Fatalf("expected hidden entries unmarked, got %#v", sel)
	}
	if got := len(m.currentList().Items); got != 1 {
		t.Fatalf("expected one visible row, got %d", got)
	}
}

func TestActionDoneRecordsHistoryAndError(t *testing.T) {
	m := newTestModel(t, t.TempDir())
	m.Update(actionDoneMsg{
		act:   action.Of(action.Paste),
		paths: []string{"/x"},
		err:   errors.New("boom"),
	})
	if m.errMsg != "boom" {
		t.Fatalf("expected error surfaced, got %q", m.errMsg)
	}
	entries := m.history.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected one history entry, got %d", len(entries))
	}
	if entries[0].Action != "paste" || entries[0].Err != "boom" {
		t.Fatalf("unexpected history entry %#v", entries[0])
	}
}

func TestTogglePanelFlipsAndResets(t *testing.T) {
	m := newTestModel(t, t.TempDir())
	m.togglePanel(panelDetails)
	if m.panel != panelDetails {
		t.Fatalf("expected details panel on")
	}
	m.panelScroll = 7
	m.togglePanel(panelGallery)
	if m.panel != panelGallery || m.panelScroll != 0 {
		t.Fatalf("expected gallery panel with scroll reset, got %v scroll %d", m.panel, m.panelScroll)
	}
	m.togglePanel(panelGallery)
	if m.panel != panelNone {
		t.Fatalf("expected panel toggled off")
	}
}

func TestOpenTerminalUsesSelectedDirectory(t *testing.T) {
	orig := openTerminalFn
	defer func() { openTerminalFn = orig }()
	var got string
	openTerminalFn = func(dir string) error {
		got = dir
		return nil
	}

	dir := seedDir(t, "sub/")
	m := newTestModel(t, dir)
	loadModel(t, m)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	h := NewHarness(m)
	h.processCmd(m.apply(action.Of(action.OpenTerminal)))
	want := filepath.Join(dir, "sub")
	if got != want {
		t.Fatalf("expected terminal in %s, got %s", want, got)
	}
}
