package menu

import (
	"sort"

	"github.com/drawerfm/drawer/internal/action"
	"github.com/drawerfm/drawer/internal/archive"
	"github.com/drawerfm/drawer/internal/tab"
)

// selectionSummary condenses the selected items into the facts the
// menu gates depend on.
type selectionSummary struct {
	count     int
	dirs      int
	trashOnly bool
	gallery   int
	mimes     []string
}

func summarize(t *tab.Tab) selectionSummary {
	var sum selectionSummary
	seen := map[string]bool{}
	trashed := false
	for _, item := range t.Items {
		if !item.Selected {
			continue
		}
		sum.count++
		if item.IsDir {
			sum.dirs++
		}
		if item.Trashed {
			trashed = true
		}
		if item.CanGallery() {
			sum.gallery++
		}
		if !seen[item.Mime] {
			seen[item.Mime] = true
			sum.mimes = append(sum.mimes, item.Mime)
		}
	}
	// A lone trashed item gets the restore-oriented menu.
	sum.trashOnly = trashed && sum.count == 1
	sort.Strings(sum.mimes)
	return sum
}

// ContextMenu builds the right-click menu for the current tab.
func ContextMenu(t *tab.Tab, binds Binds) []Item {
	sum := summarize(t)
	switch {
	case t.Location.Kind == tab.LocationTrash:
		return normalize(trashContext(t, sum, binds))
	case t.Mode.Kind == tab.ModeBrowse:
		return normalize(browseContext(t, sum, binds))
	default:
		return normalize(pickerContext(t, sum, binds))
	}
}

func browseContext(t *tab.Tab, sum selectionSummary, binds Binds) []Item {
	var items []Item
	switch {
	case sum.trashOnly:
		items = append(items, button("Open", "document-open-symbolic", action.Of(action.Open), binds))
		if trashEntries() > 0 {
			items = append(items, button("Empty trash", "empty-trash-bin-symbolic", action.Of(action.EmptyTrash), binds))
		}
	case sum.count > 0:
		if (sum.dirs == 1 && sum.count == 1) || sum.dirs == 0 {
			items = append(items, button("Open", "document-open-symbolic", action.Of(action.Open), binds))
		}
		if sum.count == 1 {
			items = append(items, button("Open with...", "external-link-symbolic", action.Of(action.OpenWith), binds))
			if sum.dirs == 1 {
				items = append(items, button("Open in terminal", "terminal-symbolic", action.Of(action.OpenTerminal), binds))
			}
		}
		if t.Location.Kind == tab.LocationSearch {
			items = append(items, button("Open item location", "folder-open-symbolic", action.Of(action.OpenItemLocation), binds))
		}
		if sum.count == sum.dirs {
			items = append(items,
				button("Open in new tab", "tab-new-filled-symbolic", action.Of(action.OpenInNewTab), binds),
				button("Open in new window", "display-symbolic", action.Of(action.OpenInNewWindow), binds),
			)
		}
		items = append(items,
			divider(),
			button("Rename...", "edit-symbolic", action.Of(action.Rename), binds),
			button("Cut", "cut-symbolic", action.Of(action.Cut), binds),
			button("Copy", "copy-symbolic", action.Of(action.Copy), binds),
			button("Copy path", "symbolic-link-symbolic", action.Of(action.CopyPath), binds),
			divider(),
		)
		if archive.AllSupported(sum.mimes) {
			items = append(items, button("Extract here", "archive-extract-symbolic", action.Of(action.ExtractHere), binds))
		}
		items = append(items,
			button("Compress", "package-x-generic-symbolic", action.Of(action.Compress), binds),
			divider(),
			button("Show details", "info-outline-symbolic", action.Of(action.Preview), binds),
			divider(),
			button("Add to sidebar", "dock-left-symbolic", action.Of(action.AddToSidebar), binds),
			divider(),
			button("Move to trash", "user-trash-symbolic", action.Of(action.MoveToTrash), binds),
		)
	default:
		items = append(items,
			button("New folder...", "folder-new-symbolic", action.Of(action.NewFolder), binds),
			button("New file...", "paper-symbolic", action.Of(action.NewFile), binds),
			button("Open in terminal", "terminal-symbolic", action.Of(action.OpenTerminal), binds),
			divider(),
		)
		if t.Mode.Multiple() {
			items = append(items, button("Select all", "edit-select-all-symbolic", action.Of(action.SelectAll), binds))
		}
		items = append(items,
			button("Paste", "clipboard-symbolic", action.Of(action.Paste), binds),
			divider(),
			sortToggle(t, "Sort by name", tab.SortName),
			sortToggle(t, "Sort by modified", tab.SortModified),
			sortToggle(t, "Sort by size", tab.SortSize),
		)
	}
	return items
}

func pickerContext(t *tab.Tab, sum selectionSummary, binds Binds) []Item {
	var items []Item
	if sum.count > 0 {
		if (sum.dirs == 1 && sum.count == 1) || sum.dirs == 0 {
			items = append(items, button("Open", "document-open-symbolic", action.Of(action.Open), binds))
		}
		if t.Location.Kind == tab.LocationSearch {
			items = append(items, button("Open item location", "folder-open-symbolic", action.Of(action.OpenItemLocation), binds))
		}
		items = append(items,
			divider(),
			button("Show details", "info-outline-symbolic", action.Of(action.Preview), binds),
		)
		return items
	}
	if t.Mode.Save() {
		items = append(items, button("New folder...", "folder-new-symbolic", action.Of(action.NewFolder), binds))
	}
	if t.Mode.Multiple() {
		items = append(items, button("Select all", "edit-select-all-symbolic", action.Of(action.SelectAll), binds))
	}
	if len(items) > 0 {
		items = append(items, divider())
	}
	items = append(items,
		sortToggle(t, "Sort by name", tab.SortName),
		sortToggle(t, "Sort by modified", tab.SortModified),
		sortToggle(t, "Sort by size", tab.SortSize),
	)
	return items
}

func trashContext(t *tab.Tab, sum selectionSummary, binds Binds) []Item {
	var items []Item
	if t.Mode.Multiple() {
		items = append(items, button("Select all", "edit-select-all-symbolic", action.Of(action.SelectAll), binds))
	}
	if len(items) > 0 {
		items = append(items, divider())
	}
	if sum.count > 0 {
		items = append(items,
			button("Show details", "info-outline-symbolic", action.Of(action.Preview), binds),
			divider(),
			button("Restore from trash", "history-undo-symbolic", action.Of(action.RestoreFromTrash), binds),
		)
		return items
	}
	items = append(items,
		sortToggle(t, "Sort by name", tab.SortName),
		sortToggle(t, "Sort by trashed", tab.SortTrashedOn),
		sortToggle(t, "Sort by size", tab.SortSize),
	)
	return items
}
