package menu

import (
	"github.com/drawerfm/drawer/internal/action"
	"github.com/drawerfm/drawer/internal/tab"
)

// Bar builds the File, Edit, View, and Sort roots of the menu bar.
// The tab may be nil before the first listing loads; gates then treat
// the selection as empty and nothing is checked.
func Bar(t *tab.Tab, showDetails bool, binds Binds) []Item {
	var sum selectionSummary
	if t != nil {
		sum = summarize(t)
	}
	return []Item{
		submenu("File", "", fileMenu(sum, binds)),
		submenu("Edit", "", editMenu(sum, binds)),
		submenu("View", "", viewMenu(t, sum, showDetails, binds)),
		submenu("Sort", "", sortMenu(t)),
	}
}

func fileMenu(sum selectionSummary, binds Binds) []Item {
	openable := (sum.count > 0 && sum.dirs == 0) || (sum.dirs == 1 && sum.count == 1)
	return []Item{
		button("New tab", "tab-new-filled-symbolic", action.Of(action.TabNew), binds),
		button("New window", "display-symbolic", action.Of(action.WindowNew), binds),
		button("New folder...", "folder-new-symbolic", action.Of(action.NewFolder), binds),
		button("New file...", "paper-symbolic", action.Of(action.NewFile), binds),
		optional("Open", "document-open-symbolic", action.Of(action.Open), openable, binds),
		optional("Open with...", "external-link-symbolic", action.Of(action.OpenWith), sum.count == 1, binds),
		divider(),
		optional("Rename...", "edit-symbolic", action.Of(action.Rename), sum.count > 0, binds),
		divider(),
		optional("Add to sidebar", "dock-left-symbolic", action.Of(action.AddToSidebar), sum.count > 0, binds),
		divider(),
		optional("Move to trash", "user-trash-symbolic", action.Of(action.MoveToTrash), sum.count > 0, binds),
		divider(),
		button("Close tab", "cross-small-square-filled-symbolic", action.Of(action.TabClose), binds),
		button("Quit", "arrow-into-box-symbolic", action.Of(action.WindowClose), binds),
	}
}

func editMenu(sum selectionSummary, binds Binds) []Item {
	return []Item{
		optional("Cut", "cut-symbolic", action.Of(action.Cut), sum.count > 0, binds),
		optional("Copy", "copy-symbolic", action.Of(action.Copy), sum.count > 0, binds),
		optional("Copy path", "symbolic-link-symbolic", action.Of(action.CopyPath), sum.count > 0, binds),
		button("Paste", "clipboard-symbolic", action.Of(action.Paste), binds),
		button("Select all", "edit-select-all-symbolic", action.Of(action.SelectAll), binds),
		divider(),
		button("History", "history-undo-symbolic", action.Of(action.EditHistory), binds),
	}
}

func viewMenu(t *tab.Tab, sum selectionSummary, showDetails bool, binds Binds) []Item {
	// Tab checkboxes stay unchecked until a tab exists; show details is
	// window state and stands on its own.
	var cfg tab.Config
	haveTab := t != nil
	if haveTab {
		cfg = t.Config
	}
	return []Item{
		button("Zoom in", "value-increase-symbolic", action.Of(action.ZoomIn), binds),
		button("Default size", "loupe-symbolic", action.Of(action.ZoomDefault), binds),
		button("Zoom out", "value-decrease-symbolic", action.Of(action.ZoomOut), binds),
		divider(),
		checkbox("Grid view", "grid-symbolic", haveTab && cfg.View == tab.ViewGrid, action.Of(action.TabViewGrid), binds),
		checkbox("List view", "list-large-symbolic", haveTab && cfg.View == tab.ViewList, action.Of(action.TabViewList), binds),
		divider(),
		checkbox("Show hidden files", "view-conceal-symbolic", haveTab && cfg.ShowHidden, action.Of(action.ToggleShowHidden), binds),
		checkbox("List directories first", "folder-symbolic", haveTab && cfg.FoldersFirst, action.Of(action.ToggleFoldersFirst), binds),
		checkbox("Show details", "info-outline-symbolic", showDetails, action.Of(action.Preview), binds),
		divider(),
		optional("Gallery preview", "image-round-symbolic", action.Of(action.Gallery), sum.gallery > 0, binds),
		divider(),
		button("Settings...", "settings-symbolic", action.Of(action.Settings), binds),
		divider(),
		button("About", "info-outline-symbolic", action.Of(action.About), binds),
	}
}

func sortMenu(t *tab.Tab) []Item {
	var (
		field   tab.SortField
		asc     bool
		inTrash bool
	)
	if t != nil {
		field, asc = t.SortOptions()
		inTrash = t.Location.Kind == tab.LocationTrash
	}
	dateField := tab.SortModified
	if inTrash {
		dateField = tab.SortTrashedOn
	}
	haveTab := t != nil
	return []Item{
		sortPreset("A-Z", tab.SortName, true, field, asc, haveTab),
		sortPreset("Z-A", tab.SortName, false, field, asc, haveTab),
		sortPreset("Newest first", dateField, false, field, asc, haveTab),
		sortPreset("Oldest first", dateField, true, field, asc, haveTab),
		sortPreset("Smallest to largest", tab.SortSize, true, field, asc, haveTab),
		sortPreset("Largest to smallest", tab.SortSize, false, field, asc, haveTab),
	}
}
