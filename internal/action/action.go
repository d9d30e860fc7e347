// Package action enumerates the user intents menu items and key
// bindings emit. The UI translates them into operations; nothing in
// this package performs work.
package action

import (
	"fmt"

	"github.com/drawerfm/drawer/internal/tab"
)

// Op is the intent discriminator.
type Op int

const (
	None Op = iota
	About
	AddToSidebar
	Compress
	Copy
	CopyPath
	Cut
	EditHistory
	EmptyTrash
	ExtractHere
	Gallery
	HistoryPrevious
	LocationUp
	MoveToTrash
	NewFile
	NewFolder
	Open
	OpenInNewTab
	OpenInNewWindow
	OpenItemLocation
	OpenTerminal
	OpenWith
	Paste
	Preview
	Rename
	RestoreFromTrash
	Search
	SelectAll
	Settings
	SortSet
	SortToggle
	TabClose
	TabNew
	TabNext
	TabPrev
	TabViewGrid
	TabViewList
	ToggleFoldersFirst
	ToggleShowHidden
	WindowClose
	WindowNew
	ZoomDefault
	ZoomIn
	ZoomOut
)

var opNames = map[Op]string{
	None:               "none",
	About:              "about",
	AddToSidebar:       "add-to-sidebar",
	Compress:           "compress",
	Copy:               "copy",
	CopyPath:           "copy-path",
	Cut:                "cut",
	EditHistory:        "edit-history",
	EmptyTrash:         "empty-trash",
	ExtractHere:        "extract-here",
	Gallery:            "gallery",
	HistoryPrevious:    "history-previous",
	LocationUp:         "location-up",
	MoveToTrash:        "move-to-trash",
	NewFile:            "new-file",
	NewFolder:          "new-folder",
	Open:               "open",
	OpenInNewTab:       "open-in-new-tab",
	OpenInNewWindow:    "open-in-new-window",
	OpenItemLocation:   "open-item-location",
	OpenTerminal:       "open-terminal",
	OpenWith:           "open-with",
	Paste:              "paste",
	Preview:            "preview",
	Rename:             "rename",
	RestoreFromTrash:   "restore-from-trash",
	Search:             "search",
	SelectAll:          "select-all",
	Settings:           "settings",
	SortSet:            "sort-set",
	SortToggle:         "sort-toggle",
	TabClose:           "tab-close",
	TabNew:             "tab-new",
	TabNext:            "tab-next",
	TabPrev:            "tab-prev",
	TabViewGrid:        "tab-view-grid",
	TabViewList:        "tab-view-list",
	ToggleFoldersFirst: "toggle-folders-first",
	ToggleShowHidden:   "toggle-show-hidden",
	WindowClose:        "window-close",
	WindowNew:          "window-new",
	ZoomDefault:        "zoom-default",
	ZoomIn:             "zoom-in",
	ZoomOut:            "zoom-out",
}

// String renders the op's stable name, used in traces and the key
// binding config file.
func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// ParseOp resolves a stable name back to its op.
func ParseOp(name string) (Op, error) {
	for op, n := range opNames {
		if n == name {
			return op, nil
		}
	}
	return None, fmt.Errorf("unknown action %q", name)
}

// All lists every op once, for exhaustiveness checks.
func All() []Op {
	out := make([]Op, 0, len(opNames))
	for op := range opNames {
		out = append(out, op)
	}
	return out
}

// Action is an op plus its parameters. The sort fields are meaningful
// for SortSet and SortToggle; Index carries the breadcrumb ancestor
// for location menu emissions. Actions are value types and compare
// with ==.
type Action struct {
	Op        Op
	Sort      tab.SortField
	Ascending bool
	Index     int
}

// Of wraps a bare op.
func Of(op Op) Action {
	return Action{Op: op}
}

// SetSort orders a listing by field in the given direction.
func SetSort(field tab.SortField, ascending bool) Action {
	return Action{Op: SortSet, Sort: field, Ascending: ascending}
}

// ToggleSort orders by field, flipping direction when field is already
// active.
func ToggleSort(field tab.SortField) Action {
	return Action{Op: SortToggle, Sort: field}
}

// AtIndex attaches a breadcrumb ancestor index to an op.
func AtIndex(op Op, index int) Action {
	return Action{Op: op, Index: index}
}

// String renders the action for traces.
func (a Action) String() string {
	switch a.Op {
	case SortSet:
		dir := "descending"
		if a.Ascending {
			dir = "ascending"
		}
		return fmt.Sprintf("%s(%s,%s)", a.Op, a.Sort, dir)
	case SortToggle:
		return fmt.Sprintf("%s(%s)", a.Op, a.Sort)
	default:
		return a.Op.String()
	}
}
