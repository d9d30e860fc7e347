package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drawerfm/drawer/internal/action"
	"github.com/drawerfm/drawer/internal/logging/events"
	"github.com/drawerfm/drawer/internal/tab"
)

type promptKind int

const (
	promptRename promptKind = iota
	promptNewFolder
	promptNewFile
	promptSaveAs
	promptOpenWith
	promptSearch
)

// prompt is a single-line text question at the bottom of the window.
type prompt struct {
	kind   promptKind
	title  string
	help   string
	input  textinput.Model
	target tab.Item
}

// confirm is a yes/no question. accept runs when the user says yes.
type confirm struct {
	question string
	accept   func() tea.Cmd
}

func (m *Model) startPrompt(kind promptKind, title, placeholder, initial string, target tab.Item) tea.Cmd {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 255
	if initial != "" {
		ti.SetValue(initial)
		ti.CursorEnd()
	}
	cmd := ti.Focus()
	m.prompt = &prompt{
		kind:   kind,
		title:  title,
		help:   "Press Enter to confirm. Esc to cancel.",
		input:  ti,
		target: target,
	}
	m.mode = ModePrompt
	return cmd
}

func (m *Model) closePrompt() {
	m.prompt = nil
	m.mode = ModeBrowse
}

func (m *Model) startConfirm(question string, accept func() tea.Cmd) tea.Cmd {
	m.confirm = &confirm{question: question, accept: accept}
	m.mode = ModeConfirm
	return nil
}

// startRename prompts for the new name of the first target.
func (m *Model) startRename() tea.Cmd {
	t := m.currentTab()
	if t == nil || t.Location.Kind == tab.LocationTrash || t.Location.Kind == tab.LocationRecents {
		return nil
	}
	items := m.targets()
	if len(items) == 0 {
		return nil
	}
	item := items[0]
	return m.startPrompt(promptRename, fmt.Sprintf("Rename %s", item.Name), "new name", item.Name, item)
}

func (m *Model) startCreatePrompt(kind promptKind) tea.Cmd {
	t := m.currentTab()
	if t == nil || t.Location.Kind != tab.LocationPath {
		return nil
	}
	if kind == promptNewFolder {
		return m.startPrompt(promptNewFolder, "New folder", "folder name", "", tab.Item{})
	}
	return m.startPrompt(promptNewFile, "New file", "file name", "", tab.Item{})
}

func (m *Model) startSearchPrompt() tea.Cmd {
	t := m.currentTab()
	if t == nil || !t.Location.CanSearch() {
		return nil
	}
	title := fmt.Sprintf("Search %s", t.Location.Title())
	return m.startPrompt(promptSearch, title, "name contains", "", tab.Item{})
}

// startOpenWith asks for the command to open the single target with.
// $EDITOR prefills the field when set.
func (m *Model) startOpenWith() tea.Cmd {
	items := m.targets()
	if len(items) != 1 {
		return nil
	}
	title := fmt.Sprintf("Open %s with", items[0].Name)
	return m.startPrompt(promptOpenWith, title, "command", os.Getenv("EDITOR"), items[0])
}

// startSavePrompt asks for the file name a save picker should report.
// The cursor entry prefills the field so picking an existing file to
// overwrite is one keypress.
func (m *Model) startSavePrompt() tea.Cmd {
	t := m.currentTab()
	if t == nil || !t.Mode.Save() || t.Location.Kind != tab.LocationPath {
		return nil
	}
	initial := ""
	if item, ok := m.currentList().Current(); ok && !item.IsDir {
		initial = item.Name
	}
	return m.startPrompt(promptSaveAs, "Save as", "file name", initial, tab.Item{})
}

func (m *Model) updatePrompt(msg tea.Msg) (bool, tea.Cmd) {
	p := m.prompt
	if p == nil {
		m.mode = ModeBrowse
		return false, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// Blink ticks and the like keep the input animated.
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return false, cmd
	}
	switch keyMsg.Type {
	case tea.KeyEsc:
		m.closePrompt()
		return true, nil
	case tea.KeyEnter:
		return true, m.submitPrompt(p)
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(keyMsg)
	return true, cmd
}

func (m *Model) updateConfirm(msg tea.Msg) (bool, tea.Cmd) {
	c := m.confirm
	if c == nil {
		m.mode = ModeBrowse
		return false, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch keyMsg.String() {
	case "y", "Y", "enter":
		m.confirm = nil
		m.mode = ModeBrowse
		return true, c.accept()
	case "n", "N", "esc":
		m.confirm = nil
		m.mode = ModeBrowse
		return true, nil
	}
	return true, nil
}

func (m *Model) submitPrompt(p *prompt) tea.Cmd {
	value := strings.TrimSpace(p.input.Value())
	switch p.kind {
	case promptRename:
		return m.submitRename(p.target, value)
	case promptNewFolder:
		return m.submitCreate(value, true)
	case promptNewFile:
		return m.submitCreate(value, false)
	case promptSaveAs:
		return m.submitSaveAs(value)
	case promptOpenWith:
		return m.submitOpenWith(p.target, value)
	case promptSearch:
		if value == "" {
			m.closePrompt()
			return nil
		}
		t := m.currentTab()
		m.closePrompt()
		return m.navigateTo(tab.SearchLocation(t.Location.Path, value))
	}
	m.closePrompt()
	return nil
}

// validateEntryName rejects names the filesystem cannot take as a
// single path element.
func validateEntryName(name string) error {
	if name == "" {
		return errors.New("name is empty")
	}
	if strings.ContainsRune(name, filepath.Separator) {
		return errors.New("name cannot contain a path separator")
	}
	if name == "." || name == ".." {
		return errors.New("invalid name")
	}
	return nil
}

func (m *Model) submitRename(item tab.Item, name string) tea.Cmd {
	if name == "" || name == item.Name {
		m.closePrompt()
		return nil
	}
	if err := validateEntryName(name); err != nil {
		// Keep the prompt up so the name can be fixed in place.
		m.errMsg = err.Error()
		return nil
	}
	m.closePrompt()
	m.errMsg = ""
	oldPath := item.Path
	newPath := filepath.Join(filepath.Dir(item.Path), name)
	m.revealName = name
	done := actionDoneMsg{
		paths:  []string{oldPath, newPath},
		info:   fmt.Sprintf("Renamed to %s", name),
		reload: true,
	}
	return m.runAction(action.Of(action.Rename), done, func(ctx context.Context) error {
		if _, err := os.Lstat(newPath); err == nil {
			return fmt.Errorf("%s already exists", name)
		}
		if err := os.Rename(oldPath, newPath); err != nil {
			return err
		}
		events.FS.Rename(oldPath, newPath)
		return nil
	})
}

func (m *Model) submitCreate(name string, dir bool) tea.Cmd {
	t := m.currentTab()
	if name == "" || t == nil || t.Location.Kind != tab.LocationPath {
		m.closePrompt()
		return nil
	}
	if err := validateEntryName(name); err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.closePrompt()
	m.errMsg = ""
	path := filepath.Join(t.Location.Path, name)
	m.revealName = name
	op := action.NewFile
	if dir {
		op = action.NewFolder
	}
	done := actionDoneMsg{
		paths:  []string{path},
		info:   fmt.Sprintf("Created %s", name),
		reload: true,
	}
	return m.runAction(action.Of(op), done, func(ctx context.Context) error {
		if dir {
			if err := os.Mkdir(path, 0o755); err != nil {
				return err
			}
		} else {
			f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
			if err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
		}
		events.FS.NewEntry(path, dir)
		return nil
	})
}

func (m *Model) submitSaveAs(name string) tea.Cmd {
	t := m.currentTab()
	if name == "" || t == nil || t.Location.Kind != tab.LocationPath {
		m.closePrompt()
		return nil
	}
	if err := validateEntryName(name); err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.closePrompt()
	m.errMsg = ""
	path := filepath.Join(t.Location.Path, name)
	if _, err := os.Lstat(path); err == nil {
		return m.startConfirm(fmt.Sprintf("Replace %s?", name), func() tea.Cmd {
			m.picked = []string{path}
			return tea.Quit
		})
	}
	m.picked = []string{path}
	return tea.Quit
}

func (m *Model) submitOpenWith(item tab.Item, commandLine string) tea.Cmd {
	if commandLine == "" {
		m.closePrompt()
		return nil
	}
	m.closePrompt()
	m.errMsg = ""
	path := item.Path
	store := m.store
	done := actionDoneMsg{
		paths: []string{path},
		info:  fmt.Sprintf("Opened %s", item.Name),
	}
	return m.runAction(action.Of(action.OpenWith), done, func(ctx context.Context) error {
		if err := openWithFn(ctx, commandLine, path); err != nil {
			return err
		}
		events.FS.Open(path)
		if store != nil {
			return store.Touch(path)
		}
		return nil
	})
}
