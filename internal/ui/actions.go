package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drawerfm/drawer/internal/action"
	"github.com/drawerfm/drawer/internal/archive"
	"github.com/drawerfm/drawer/internal/fileops"
	"github.com/drawerfm/drawer/internal/logging/events"
	"github.com/drawerfm/drawer/internal/opener"
	"github.com/drawerfm/drawer/internal/tab"
	"github.com/drawerfm/drawer/internal/trash"
)

// External effects are variables so tests can pin them.
var (
	clipboardWriteFn = clipboard.WriteAll
	openPathFn       = opener.Open
	openWithFn       = opener.OpenWith
	openTerminalFn   = opener.Terminal
	newWindowFn      = opener.NewWindow
)

// apply executes one user intent. Cheap state changes happen inline;
// anything that touches the filesystem or spawns a process goes
// through the command bus and reports back with an actionDoneMsg.
func (m *Model) apply(act action.Action) tea.Cmd {
	tv := m.current()
	if tv == nil {
		return nil
	}
	t := tv.tab
	switch act.Op {
	case action.Open:
		return m.openTargets(act)
	case action.OpenWith:
		return m.startOpenWith()
	case action.OpenInNewTab:
		if loc, ok := m.ancestorAt(act.Index); ok {
			return m.newTab(loc)
		}
		return m.openDirsInTabs()
	case action.OpenInNewWindow:
		if loc, ok := m.ancestorAt(act.Index); ok {
			return m.openNewWindow(act, loc.Path)
		}
		return m.openDirsInWindows(act)
	case action.OpenItemLocation:
		return m.openItemLocation()
	case action.OpenTerminal:
		return m.openTerminal(act)

	case action.Cut:
		return m.clipboardSet(true)
	case action.Copy:
		return m.clipboardSet(false)
	case action.CopyPath:
		return m.copyPathToSystemClipboard()
	case action.Paste:
		return m.paste(act)

	case action.Rename:
		return m.startRename()
	case action.NewFolder:
		return m.startCreatePrompt(promptNewFolder)
	case action.NewFile:
		return m.startCreatePrompt(promptNewFile)

	case action.MoveToTrash:
		return m.moveToTrash(act)
	case action.RestoreFromTrash:
		return m.restoreFromTrash(act)
	case action.EmptyTrash:
		return m.confirmEmptyTrash(act)

	case action.ExtractHere:
		return m.extractHere(act)
	case action.Compress:
		return m.compress(act)

	case action.AddToSidebar:
		return m.addToSidebar(act)

	case action.Search:
		return m.startSearchPrompt()

	case action.SelectAll:
		t.SelectAll()
		m.syncList(tv)
		return nil

	case action.Preview:
		if loc, ok := m.ancestorAt(act.Index); ok {
			return m.showPathDetails(loc.Path)
		}
		m.togglePanel(panelDetails)
		return nil
	case action.Gallery:
		m.togglePanel(panelGallery)
		return nil

	case action.EditHistory:
		m.showHistoryOverlay()
		return nil
	case action.Settings:
		m.showSettingsOverlay()
		return nil
	case action.About:
		m.showAboutOverlay()
		return nil

	case action.SortSet:
		t.SetSort(act.Sort, act.Ascending)
		m.syncList(tv)
		return nil
	case action.SortToggle:
		t.ToggleSort(act.Sort)
		m.syncList(tv)
		return nil

	case action.TabNew:
		return m.newTab(t.Location)
	case action.TabClose:
		return m.closeTab()
	case action.TabNext:
		return m.nextTab()
	case action.TabPrev:
		return m.prevTab()

	case action.TabViewList:
		t.Config.View = tab.ViewList
		tv.list.EnsureCursorVisible(m.maxVisibleItems())
		return nil
	case action.TabViewGrid:
		t.Config.View = tab.ViewGrid
		tv.list.EnsureCursorVisible(m.maxVisibleItems())
		return nil
	case action.ToggleShowHidden:
		t.Config.ShowHidden = !t.Config.ShowHidden
		if !t.Config.ShowHidden {
			// No selection may survive outside the visible listing.
			for i := range t.Items {
				if t.Items[i].Hidden {
					t.Items[i].Selected = false
				}
			}
		}
		m.syncList(tv)
		return nil
	case action.ToggleFoldersFirst:
		t.Config.FoldersFirst = !t.Config.FoldersFirst
		t.SetSort(t.Sort, t.Ascending)
		m.syncList(tv)
		return nil

	case action.ZoomIn:
		return m.zoomBy(1)
	case action.ZoomOut:
		return m.zoomBy(-1)
	case action.ZoomDefault:
		t.Config.IconZoom = 0
		return nil

	case action.LocationUp:
		return m.locationUp()
	case action.HistoryPrevious:
		return m.historyBack()

	case action.WindowNew:
		dir := ""
		if t.Location.Kind == tab.LocationPath {
			dir = t.Location.Path
		}
		return m.openNewWindow(act, dir)
	case action.WindowClose:
		return tea.Quit
	}
	return nil
}

// targets resolves what an action operates on: the selection when one
// exists, else the entry under the cursor.
func (m *Model) targets() []tab.Item {
	tv := m.current()
	if tv == nil {
		return nil
	}
	if sel := tv.tab.Selected(); len(sel) > 0 {
		return sel
	}
	if item, ok := tv.list.Current(); ok {
		return []tab.Item{item}
	}
	return nil
}

func itemPaths(items []tab.Item) []string {
	paths := make([]string, 0, len(items))
	for _, item := range items {
		paths = append(paths, item.Path)
	}
	return paths
}

func countLabel(n int) string {
	if n == 1 {
		return "item"
	}
	return "items"
}

// ancestorAt resolves a breadcrumb index against the ancestors the
// open location menu was built for. It reports false whenever no
// location menu is up, so plain context and bar emissions never
// alias into the breadcrumb list.
func (m *Model) ancestorAt(index int) (tab.Location, bool) {
	if m.menuAncestors == nil || index < 0 || index >= len(m.menuAncestors) {
		return tab.Location{}, false
	}
	return m.menuAncestors[index], true
}

// openTargets opens the selection: a single directory navigates, a
// picker picks, files go to the platform opener.
func (m *Model) openTargets(act action.Action) tea.Cmd {
	items := m.targets()
	if len(items) == 0 {
		return nil
	}
	t := m.currentTab()
	if t.Mode.Kind == tab.ModePicker {
		if t.Mode.Save() {
			return m.startSavePrompt()
		}
		return m.pick(items)
	}
	if len(items) == 1 && items[0].IsDir {
		return m.navigateTo(tab.PathLocation(items[0].Path))
	}
	return m.openItems(items)
}

// openItems hands files to the platform opener and records them as
// recently used.
func (m *Model) openItems(items []tab.Item) tea.Cmd {
	files := make([]tab.Item, 0, len(items))
	for _, item := range items {
		if !item.IsDir {
			files = append(files, item)
		}
	}
	if len(files) == 0 {
		return nil
	}
	store := m.store
	paths := itemPaths(files)
	done := actionDoneMsg{paths: paths}
	return m.runAction(action.Of(action.Open), done, func(ctx context.Context) error {
		for _, p := range paths {
			if err := openPathFn(ctx, p); err != nil {
				return err
			}
			events.FS.Open(p)
			if store != nil {
				if err := store.Touch(p); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// pick finishes a picker window with the chosen paths.
func (m *Model) pick(items []tab.Item) tea.Cmd {
	t := m.currentTab()
	if t == nil || t.Mode.Kind != tab.ModePicker {
		return nil
	}
	kind := t.Mode.Picker
	var paths []string
	for _, item := range items {
		if kind == tab.PickerOpenFolder {
			if !item.IsDir {
				continue
			}
		} else if item.IsDir {
			continue
		}
		paths = append(paths, item.Path)
	}
	if len(paths) == 0 {
		return nil
	}
	if !kind.Multiple() && len(paths) > 1 {
		paths = paths[:1]
	}
	m.picked = paths
	return tea.Quit
}

// pickCurrent accepts the picker's current state: the shown folder
// for a folder picker, a save prompt for a save picker, the selection
// otherwise.
func (m *Model) pickCurrent() tea.Cmd {
	t := m.currentTab()
	if t == nil || t.Mode.Kind != tab.ModePicker {
		return nil
	}
	switch {
	case t.Mode.Picker == tab.PickerOpenFolder:
		if t.Location.Kind != tab.LocationPath {
			return nil
		}
		m.picked = []string{t.Location.Path}
		return tea.Quit
	case t.Mode.Save():
		return m.startSavePrompt()
	default:
		return m.pick(m.targets())
	}
}

// openDirsInTabs opens every selected directory in its own tab.
func (m *Model) openDirsInTabs() tea.Cmd {
	var cmds []tea.Cmd
	for _, item := range m.targets() {
		if item.IsDir {
			if cmd := m.newTab(tab.PathLocation(item.Path)); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) openDirsInWindows(act action.Action) tea.Cmd {
	var dirs []string
	for _, item := range m.targets() {
		if item.IsDir {
			dirs = append(dirs, item.Path)
		}
	}
	if len(dirs) == 0 {
		return nil
	}
	done := actionDoneMsg{paths: dirs}
	return m.runAction(act, done, func(ctx context.Context) error {
		for _, dir := range dirs {
			if err := newWindowFn(dir); err != nil {
				return err
			}
		}
		return nil
	})
}

func (m *Model) openNewWindow(act action.Action, dir string) tea.Cmd {
	if dir == "" {
		return nil
	}
	done := actionDoneMsg{paths: []string{dir}}
	return m.runAction(act, done, func(ctx context.Context) error {
		return newWindowFn(dir)
	})
}

// openItemLocation jumps to the directory containing the cursor entry
// and puts the cursor on it. Search and recents rows carry full paths
// from anywhere in the tree.
func (m *Model) openItemLocation() tea.Cmd {
	items := m.targets()
	if len(items) == 0 {
		return nil
	}
	item := items[0]
	m.revealName = item.Name
	return m.navigateTo(tab.PathLocation(filepath.Dir(item.Path)))
}

// openTerminal spawns a terminal in the selected directory, or in the
// listing's directory when nothing is selected.
func (m *Model) openTerminal(act action.Action) tea.Cmd {
	t := m.currentTab()
	dir := ""
	if t.Location.Kind == tab.LocationPath {
		dir = t.Location.Path
	}
	if sel := t.Selected(); len(sel) == 1 && sel[0].IsDir {
		dir = sel[0].Path
	}
	if dir == "" {
		return nil
	}
	done := actionDoneMsg{paths: []string{dir}}
	return m.runAction(act, done, func(ctx context.Context) error {
		return openTerminalFn(dir)
	})
}

// clipboardSet stages the selection for a later paste.
func (m *Model) clipboardSet(move bool) tea.Cmd {
	items := m.targets()
	if len(items) == 0 {
		return nil
	}
	paths := itemPaths(items)
	m.clipboard.Set(paths, move)
	verb := "Copied"
	if move {
		verb = "Cut"
	}
	m.setInfo(fmt.Sprintf("%s %d %s", verb, len(paths), countLabel(len(paths))))
	return nil
}

// copyPathToSystemClipboard puts the selected paths on the system
// clipboard, one per line.
func (m *Model) copyPathToSystemClipboard() tea.Cmd {
	paths := itemPaths(m.targets())
	if len(paths) == 0 {
		return nil
	}
	if err := clipboardWriteFn(strings.Join(paths, "\n")); err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.setInfo(fmt.Sprintf("Copied %d %s to clipboard", len(paths), countLabel(len(paths))))
	return nil
}

// paste copies or moves the staged clipboard entries into the shown
// directory. A move clears the clipboard once it lands.
func (m *Model) paste(act action.Action) tea.Cmd {
	t := m.currentTab()
	if t.Location.Kind != tab.LocationPath {
		return nil
	}
	if m.clipboard.Empty() {
		m.setInfo("Clipboard is empty")
		return nil
	}
	paths, move := m.clipboard.Paths()
	dest := t.Location.Path
	done := actionDoneMsg{
		paths:     paths,
		info:      fmt.Sprintf("Pasted %d %s", len(paths), countLabel(len(paths))),
		reload:    true,
		clearClip: move,
	}
	return m.runAction(act, done, func(ctx context.Context) error {
		for _, src := range paths {
			var err error
			if move {
				_, err = fileops.MoveInto(src, dest)
			} else {
				_, err = fileops.CopyInto(src, dest)
			}
			if err != nil {
				return err
			}
		}
		events.FS.Paste(len(paths), move)
		return nil
	})
}

// moveToTrash puts the selection in the trash bin.
func (m *Model) moveToTrash(act action.Action) tea.Cmd {
	t := m.currentTab()
	if t.Location.Kind == tab.LocationTrash {
		return nil
	}
	items := m.targets()
	if len(items) == 0 {
		return nil
	}
	bin := m.bin
	if bin == nil {
		return nil
	}
	paths := itemPaths(items)
	store := m.store
	done := actionDoneMsg{
		paths:  paths,
		info:   fmt.Sprintf("Moved %d %s to trash", len(paths), countLabel(len(paths))),
		reload: true,
	}
	return m.runAction(act, done, func(ctx context.Context) error {
		for _, p := range paths {
			if _, err := bin.Move(p); err != nil {
				return err
			}
			// The path left the filesystem; its recents and sidebar
			// rows go with it.
			if store != nil {
				_ = store.Forget(p)
				_ = store.RemoveFavorite(p)
			}
		}
		events.FS.Trash(paths)
		return nil
	})
}

// restoreFromTrash puts trashed entries back where they came from.
func (m *Model) restoreFromTrash(act action.Action) tea.Cmd {
	t := m.currentTab()
	if t.Location.Kind != tab.LocationTrash {
		return nil
	}
	items := m.targets()
	if len(items) == 0 {
		return nil
	}
	bin := m.bin
	if bin == nil {
		return nil
	}
	restored := make([]trash.Item, 0, len(items))
	origins := make([]string, 0, len(items))
	for _, item := range items {
		restored = append(restored, trash.Item{
			Name:      item.Name,
			TrashPath: item.Path,
			OrigPath:  item.OrigPath,
			DeletedAt: item.DeletedAt,
			IsDir:     item.IsDir,
		})
		origins = append(origins, item.OrigPath)
	}
	done := actionDoneMsg{
		paths:  origins,
		info:   fmt.Sprintf("Restored %d %s", len(origins), countLabel(len(origins))),
		reload: true,
	}
	return m.runAction(act, done, func(ctx context.Context) error {
		for i := range restored {
			if err := bin.Restore(&restored[i]); err != nil {
				return err
			}
		}
		events.FS.Restore(origins)
		return nil
	})
}

// confirmEmptyTrash asks before deleting everything for good.
func (m *Model) confirmEmptyTrash(act action.Action) tea.Cmd {
	bin := m.bin
	if bin == nil {
		return nil
	}
	count := bin.Count()
	if count == 0 {
		m.setInfo("Trash is already empty")
		return nil
	}
	question := fmt.Sprintf("Permanently delete %d trashed %s?", count, countLabel(count))
	return m.startConfirm(question, func() tea.Cmd {
		done := actionDoneMsg{
			paths:  []string{bin.Dir()},
			info:   "Trash emptied",
			reload: true,
		}
		return m.runAction(act, done, func(ctx context.Context) error {
			if err := bin.EmptyAll(); err != nil {
				return err
			}
			events.FS.EmptyTrash(count)
			return nil
		})
	})
}

// extractHere unpacks the selected archives into the shown directory.
func (m *Model) extractHere(act action.Action) tea.Cmd {
	t := m.currentTab()
	if t.Location.Kind != tab.LocationPath {
		return nil
	}
	items := m.targets()
	if len(items) == 0 {
		return nil
	}
	dest := t.Location.Path
	extract := make([]tab.Item, len(items))
	copy(extract, items)
	done := actionDoneMsg{
		paths:  itemPaths(items),
		info:   fmt.Sprintf("Extracted %d %s", len(items), countLabel(len(items))),
		reload: true,
	}
	return m.runAction(act, done, func(ctx context.Context) error {
		for _, item := range extract {
			if err := archive.Extract(ctx, item.Path, item.Mime, dest); err != nil {
				return err
			}
			events.FS.Extract(item.Path)
		}
		return nil
	})
}

// compress packs the selection into a tarball beside it.
func (m *Model) compress(act action.Action) tea.Cmd {
	t := m.currentTab()
	if t.Location.Kind != tab.LocationPath {
		return nil
	}
	items := m.targets()
	if len(items) == 0 {
		return nil
	}
	dir := t.Location.Path
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	done := actionDoneMsg{
		paths:  itemPaths(items),
		info:   "Archive created",
		reload: true,
	}
	return m.runAction(act, done, func(ctx context.Context) error {
		dest, err := archive.Compress(ctx, dir, names)
		if err != nil {
			return err
		}
		events.FS.Compress(dest)
		return nil
	})
}

// addToSidebar records the target paths as favorites. Paths already
// on the sidebar are filtered out so the flash reports what changed.
func (m *Model) addToSidebar(act action.Action) tea.Cmd {
	store := m.store
	if store == nil {
		return nil
	}
	var paths []string
	if loc, ok := m.ancestorAt(act.Index); ok {
		paths = []string{loc.Path}
	} else {
		paths = itemPaths(m.targets())
	}
	if len(paths) == 0 {
		return nil
	}
	if existing, err := store.Favorites(); err == nil {
		paths = withoutFavorites(paths, existing)
	}
	if len(paths) == 0 {
		m.setInfo("Already in sidebar")
		return nil
	}
	done := actionDoneMsg{
		paths: paths,
		info:  fmt.Sprintf("Added %d %s to sidebar", len(paths), countLabel(len(paths))),
	}
	return m.runAction(act, done, func(ctx context.Context) error {
		for _, p := range paths {
			if err := store.AddFavorite(p); err != nil {
				return err
			}
		}
		return nil
	})
}

func withoutFavorites(paths, favorites []string) []string {
	have := make(map[string]bool, len(favorites))
	for _, p := range favorites {
		have[p] = true
	}
	kept := paths[:0]
	for _, p := range paths {
		if !have[p] {
			kept = append(kept, p)
		}
	}
	return kept
}

// zoomBy nudges the active tab's icon zoom, clamped to the bundled
// icon sizes.
func (m *Model) zoomBy(delta int) tea.Cmd {
	t := m.currentTab()
	if t == nil {
		return nil
	}
	zoom := t.Config.IconZoom + delta
	if zoom < -1 {
		zoom = -1
	}
	if zoom > 2 {
		zoom = 2
	}
	t.Config.IconZoom = zoom
	return nil
}

// togglePanel switches the side panel between off and the given kind.
func (m *Model) togglePanel(kind panelKind) {
	if m.panel == kind {
		m.panel = panelNone
	} else {
		m.panel = kind
		m.panelScroll = 0
	}
}
