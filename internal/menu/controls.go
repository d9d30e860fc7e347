package menu

import (
	"github.com/drawerfm/drawer/internal/action"
	"github.com/drawerfm/drawer/internal/tab"
)

// ViewControls builds the compact header menus picker windows show in
// place of the full bar: a view switcher, a sort chooser, and an
// overflow menu. Roots carry icons only; their labels stay empty.
func ViewControls(t *tab.Tab, showDetails bool, binds Binds) []Item {
	var sum selectionSummary
	view := tab.ViewList
	ascending := true
	if t != nil {
		sum = summarize(t)
		view = t.Config.View
		_, ascending = t.SortOptions()
	}

	viewIcon := "view-list-symbolic"
	if view == tab.ViewGrid {
		viewIcon = "view-grid-symbolic"
	}
	sortIcon := "view-sort-descending-symbolic"
	if ascending {
		sortIcon = "view-sort-ascending-symbolic"
	}

	return []Item{
		submenu("", viewIcon, []Item{
			checkbox("Grid view", "", view == tab.ViewGrid, action.Of(action.TabViewGrid), binds),
			checkbox("List view", "", view == tab.ViewList, action.Of(action.TabViewList), binds),
		}),
		submenu("", sortIcon, sortMenu(t)),
		submenu("", "view-more-symbolic", moreMenu(t, sum, showDetails, binds)),
	}
}

func moreMenu(t *tab.Tab, sum selectionSummary, showDetails bool, binds Binds) []Item {
	cfg := tab.DefaultConfig()
	if t != nil {
		cfg = t.Config
	}
	return []Item{
		button("Zoom in", "value-increase-symbolic", action.Of(action.ZoomIn), binds),
		button("Default size", "loupe-symbolic", action.Of(action.ZoomDefault), binds),
		button("Zoom out", "value-decrease-symbolic", action.Of(action.ZoomOut), binds),
		divider(),
		checkbox("Show hidden files", "view-conceal-symbolic", cfg.ShowHidden, action.Of(action.ToggleShowHidden), binds),
		checkbox("List directories first", "folder-symbolic", cfg.FoldersFirst, action.Of(action.ToggleFoldersFirst), binds),
		checkbox("Show details", "info-outline-symbolic", showDetails, action.Of(action.Preview), binds),
		divider(),
		optional("Gallery preview", "image-round-symbolic", action.Of(action.Gallery), sum.gallery > 0, binds),
	}
}
