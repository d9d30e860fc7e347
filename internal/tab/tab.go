// Package tab models what a file manager tab shows: a location, the
// items listed there, and the per-tab view configuration. Everything
// here is state and pure transforms over it; loading lives in Loader.
package tab

// View selects the listing presentation.
type View int

const (
	ViewList View = iota
	ViewGrid
)

// Config carries the per-tab presentation switches the view menus
// toggle.
type Config struct {
	View         View
	ShowHidden   bool
	FoldersFirst bool
	IconZoom     int
}

// DefaultConfig is the presentation a fresh tab starts with.
func DefaultConfig() Config {
	return Config{View: ViewList, FoldersFirst: true, IconZoom: 0}
}

// Tab is one open location with its listing and view state.
type Tab struct {
	Mode      Mode
	Location  Location
	Config    Config
	Sort      SortField
	Ascending bool

	// Items is nil until the first load finishes.
	Items []Item

	history []Location
}

// New opens a tab in the given mode at the given location.
func New(mode Mode, loc Location) *Tab {
	t := &Tab{
		Mode:      mode,
		Location:  loc,
		Config:    DefaultConfig(),
		Sort:      SortName,
		Ascending: true,
	}
	if loc.Kind == LocationTrash {
		t.Sort = SortTrashedOn
		t.Ascending = false
	}
	return t
}

// SortOptions reports the active sort column and direction.
func (t *Tab) SortOptions() (SortField, bool) {
	return t.Sort, t.Ascending
}

// SetSort replaces the sort order and re-sorts the listing.
func (t *Tab) SetSort(field SortField, ascending bool) {
	t.Sort = field
	t.Ascending = ascending
	t.resort()
}

// ToggleSort switches direction on the active column or moves to a new
// column ascending.
func (t *Tab) ToggleSort(field SortField) {
	if t.Sort == field {
		t.Ascending = !t.Ascending
	} else {
		t.Sort = field
		t.Ascending = true
	}
	t.resort()
}

func (t *Tab) resort() {
	SortItems(t.Items, t.Sort, t.Ascending, t.Config.FoldersFirst)
}

// SetItems installs a freshly loaded listing, sorted per the tab.
func (t *Tab) SetItems(items []Item) {
	t.Items = items
	t.resort()
}

// Navigate moves the tab to a new location, remembering where it was.
func (t *Tab) Navigate(loc Location) {
	if loc == t.Location {
		return
	}
	t.history = append(t.history, t.Location)
	t.Location = loc
	t.Items = nil
	if loc.Kind == LocationTrash && t.Sort == SortName {
		t.Sort = SortTrashedOn
		t.Ascending = false
	}
	if loc.Kind != LocationTrash && t.Sort == SortTrashedOn {
		t.Sort = SortName
		t.Ascending = true
	}
}

// Back returns to the previously shown location, if any.
func (t *Tab) Back() bool {
	if len(t.history) == 0 {
		return false
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	t.Location = last
	t.Items = nil
	return true
}

// Up navigates to the parent of a path location.
func (t *Tab) Up() bool {
	anc := t.Location.Ancestors()
	if len(anc) < 2 {
		return false
	}
	t.Navigate(anc[len(anc)-2])
	return true
}

// Visible returns the listing rows the tab presents, honoring the
// hidden-file switch.
func (t *Tab) Visible() []Item {
	if t.Config.ShowHidden {
		out := make([]Item, len(t.Items))
		copy(out, t.Items)
		return out
	}
	out := make([]Item, 0, len(t.Items))
	for _, it := range t.Items {
		if !it.Hidden {
			out = append(out, it)
		}
	}
	return out
}

// SelectAll marks every visible item selected when the mode allows it.
func (t *Tab) SelectAll() {
	if !t.Mode.Multiple() {
		return
	}
	for i := range t.Items {
		if t.Items[i].Hidden && !t.Config.ShowHidden {
			continue
		}
		t.Items[i].Selected = true
	}
}

// ClearSelection unmarks every item.
func (t *Tab) ClearSelection() {
	for i := range t.Items {
		t.Items[i].Selected = false
	}
}

// ToggleSelect flips one item's selection. In single-selection modes
// selecting an item clears the rest.
func (t *Tab) ToggleSelect(index int) {
	if index < 0 || index >= len(t.Items) {
		return
	}
	if !t.Mode.Multiple() && !t.Items[index].Selected {
		t.ClearSelection()
	}
	t.Items[index].Selected = !t.Items[index].Selected
}

// ToggleSelectPath flips selection of the item at path.
func (t *Tab) ToggleSelectPath(path string) {
	for i := range t.Items {
		if t.Items[i].Path == path {
			t.ToggleSelect(i)
			return
		}
	}
}

// Selected returns the selected items in listing order.
func (t *Tab) Selected() []Item {
	var out []Item
	for _, it := range t.Items {
		if it.Selected {
			out = append(out, it)
		}
	}
	return out
}
