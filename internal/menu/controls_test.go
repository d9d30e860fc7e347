package menu

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/drawerfm/drawer/internal/tab"
)

func TestViewControlsRootIcons(t *testing.T) {
	controls := ViewControls(pickerTab(tab.PickerOpenFile), false, nil)
	if len(controls) != 3 {
		t.Fatalf("got %d roots, want 3", len(controls))
	}
	for _, root := range controls {
		if root.Kind != Submenu || root.Label != "" {
			t.Fatalf("root %+v is not an icon submenu", root)
		}
	}
	if got := controls[0].Icon.Name(); got != "view-list-symbolic" {
		t.Fatalf("view icon = %q", got)
	}
	if got := controls[1].Icon.Name(); got != "view-sort-ascending-symbolic" {
		t.Fatalf("sort icon = %q", got)
	}
	if got := controls[2].Icon.Name(); got != "view-more-symbolic" {
		t.Fatalf("more icon = %q", got)
	}

	tb := pickerTab(tab.PickerOpenFile)
	tb.Config.View = tab.ViewGrid
	tb.SetSort(tab.SortName, false)
	controls = ViewControls(tb, false, nil)
	if got := controls[0].Icon.Name(); got != "view-grid-symbolic" {
		t.Fatalf("grid view icon = %q", got)
	}
	if got := controls[1].Icon.Name(); got != "view-sort-descending-symbolic" {
		t.Fatalf("descending sort icon = %q", got)
	}
}

func TestViewControlsViewSwitch(t *testing.T) {
	controls := ViewControls(pickerTab(tab.PickerOpenFile), false, nil)
	got := checkedLabels(controls[0].Children)
	if diff := cmp.Diff([]string{"List view"}, got); diff != "" {
		t.Fatalf("view checks mismatch (-want +got):\n%s", diff)
	}

	tb := pickerTab(tab.PickerOpenFile)
	tb.Config.View = tab.ViewGrid
	controls = ViewControls(tb, false, nil)
	got = checkedLabels(controls[0].Children)
	if diff := cmp.Diff([]string{"Grid view"}, got); diff != "" {
		t.Fatalf("view checks mismatch (-want +got):\n%s", diff)
	}
}

func TestViewControlsMoreMenu(t *testing.T) {
	controls := ViewControls(pickerTab(tab.PickerOpenFiles, file("p.png", "image/png")), true, nil)
	more := controls[2].Children

	want := []string{
		"Zoom in",
		"Default size",
		"Zoom out",
		"---",
		"Show hidden files",
		"List directories first",
		"Show details",
		"---",
		"Gallery preview",
	}
	if diff := cmp.Diff(want, labels(more)); diff != "" {
		t.Fatalf("more menu mismatch (-want +got):\n%s", diff)
	}
	if find(t, more, "Gallery preview").Disabled {
		t.Fatalf("gallery disabled with an image selected")
	}
	if !find(t, more, "Show details").Checked {
		t.Fatalf("show details unchecked")
	}

	controls = ViewControls(pickerTab(tab.PickerOpenFile), false, nil)
	if !find(t, controls[2].Children, "Gallery preview").Disabled {
		t.Fatalf("gallery enabled without an image selected")
	}
}

func TestViewControlsSortPresets(t *testing.T) {
	tb := pickerTab(tab.PickerSaveFile)
	tb.SetSort(tab.SortSize, true)
	controls := ViewControls(tb, false, nil)
	got := checkedLabels(controls[1].Children)
	if diff := cmp.Diff([]string{"Smallest to largest"}, got); diff != "" {
		t.Fatalf("sort checks mismatch (-want +got):\n%s", diff)
	}
}
