package menu

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/drawerfm/drawer/internal/action"
	"github.com/drawerfm/drawer/internal/keymap"
	"github.com/drawerfm/drawer/internal/tab"
)

func TestContextMenuLayout(t *testing.T) {
	selectedTail := []string{
		"---",
		"Rename...",
		"Cut",
		"Copy",
		"Copy path",
		"---",
		"Compress",
		"---",
		"Show details",
		"---",
		"Add to sidebar",
		"---",
		"Move to trash",
	}

	tests := []struct {
		name string
		tab  *tab.Tab
		want []string
	}{
		{
			name: "browse no selection",
			tab:  browseTab(),
			want: []string{
				"New folder...",
				"New file...",
				"Open in terminal",
				"---",
				"Select all",
				"Paste",
				"---",
				"Sort by name ⬇",
				"Sort by modified",
				"Sort by size",
			},
		},
		{
			name: "browse single file",
			tab:  browseTab(file("notes.txt", "text/plain")),
			want: append([]string{"Open", "Open with..."}, selectedTail...),
		},
		{
			name: "browse single directory",
			tab:  browseTab(dir("docs")),
			want: append([]string{
				"Open",
				"Open with...",
				"Open in terminal",
				"Open in new tab",
				"Open in new window",
			}, selectedTail...),
		},
		{
			name: "browse two directories",
			tab:  browseTab(dir("docs"), dir("src")),
			want: append([]string{"Open in new tab", "Open in new window"}, selectedTail...),
		},
		{
			name: "browse mixed selection",
			tab:  browseTab(dir("docs"), file("notes.txt", "text/plain")),
			want: selectedTail[1:],
		},
		{
			name: "search single file",
			tab:  searchTab(file("notes.txt", "text/plain")),
			want: append([]string{"Open", "Open with...", "Open item location"}, selectedTail...),
		},
		{
			name: "picker save no selection",
			tab:  pickerTab(tab.PickerSaveFile),
			want: []string{
				"New folder...",
				"---",
				"Sort by name ⬇",
				"Sort by modified",
				"Sort by size",
			},
		},
		{
			name: "picker open file no selection",
			tab:  pickerTab(tab.PickerOpenFile),
			want: []string{"Sort by name ⬇", "Sort by modified", "Sort by size"},
		},
		{
			name: "picker open files no selection",
			tab:  pickerTab(tab.PickerOpenFiles),
			want: []string{
				"Select all",
				"---",
				"Sort by name ⬇",
				"Sort by modified",
				"Sort by size",
			},
		},
		{
			name: "picker single file",
			tab:  pickerTab(tab.PickerOpenFile, file("notes.txt", "text/plain")),
			want: []string{"Open", "---", "Show details"},
		},
		{
			name: "picker two directories",
			tab:  pickerTab(tab.PickerOpenFolder, dir("docs"), dir("src")),
			want: []string{"Show details"},
		},
		{
			name: "trash no selection",
			tab:  trashTab(),
			want: []string{
				"Select all",
				"---",
				"Sort by name",
				"Sort by trashed ⬆",
				"Sort by size",
			},
		},
	}

	binds := keymap.Default()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := labels(ContextMenu(tc.tab, binds))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("menu mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestContextMenuExtractGate(t *testing.T) {
	allArchives := browseTab(
		file("a.zip", "application/zip"),
		file("b.tar.gz", "application/gzip"),
	)
	menu := ContextMenu(allArchives, nil)
	if !hasLabel(menu, "Extract here") {
		t.Fatalf("archive-only selection lost Extract here: %v", labels(menu))
	}
	extract := find(t, menu, "Extract here")
	if extract.Action != action.Of(action.ExtractHere) {
		t.Fatalf("extract action = %v", extract.Action)
	}

	mixed := browseTab(
		file("a.zip", "application/zip"),
		file("notes.txt", "text/plain"),
	)
	if menu := ContextMenu(mixed, nil); hasLabel(menu, "Extract here") {
		t.Fatalf("mixed selection offered Extract here: %v", labels(menu))
	}
}

func TestContextMenuTrashedItem(t *testing.T) {
	restore := trashEntries
	t.Cleanup(func() { trashEntries = restore })

	gone := file("gone.txt", "text/plain")
	gone.Trashed = true

	trashEntries = func() int { return 3 }
	got := labels(ContextMenu(browseTab(gone), nil))
	if diff := cmp.Diff([]string{"Open", "Empty trash"}, got); diff != "" {
		t.Fatalf("menu mismatch (-want +got):\n%s", diff)
	}

	trashEntries = func() int { return 0 }
	got = labels(ContextMenu(browseTab(gone), nil))
	if diff := cmp.Diff([]string{"Open"}, got); diff != "" {
		t.Fatalf("empty bin menu mismatch (-want +got):\n%s", diff)
	}
}

func TestContextMenuTrashSelection(t *testing.T) {
	gone := file("gone.txt", "text/plain")
	gone.Trashed = true
	got := labels(ContextMenu(trashTab(gone), nil))
	want := []string{
		"Select all",
		"---",
		"Show details",
		"---",
		"Restore from trash",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("menu mismatch (-want +got):\n%s", diff)
	}
}

func TestContextMenuSortDirectionFollowsTab(t *testing.T) {
	tb := browseTab()
	tb.ToggleSort(tab.SortSize)

	menu := ContextMenu(tb, nil)
	if !hasLabel(menu, "Sort by size ⬇") {
		t.Fatalf("active size column missing arrow: %v", labels(menu))
	}
	if !hasLabel(menu, "Sort by name") || hasLabel(menu, "Sort by name ⬇") {
		t.Fatalf("inactive name column kept arrow: %v", labels(menu))
	}

	tb.ToggleSort(tab.SortSize)
	if menu := ContextMenu(tb, nil); !hasLabel(menu, "Sort by size ⬆") {
		t.Fatalf("descending size column arrow wrong: %v", labels(menu))
	}

	item := find(t, menu, "Sort by modified")
	if item.Action != action.ToggleSort(tab.SortModified) {
		t.Fatalf("sort item action = %v", item.Action)
	}
}

func TestContextMenuPickerSearchLocation(t *testing.T) {
	tb := tab.New(tab.Picker(tab.PickerOpenFile), tab.SearchLocation("/home/user/files", "report"))
	tb.SetItems([]tab.Item{file("notes.txt", "text/plain")})

	got := labels(ContextMenu(tb, nil))
	want := []string{"Open", "Open item location", "---", "Show details"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("menu mismatch (-want +got):\n%s", diff)
	}
}
