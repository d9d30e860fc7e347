package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/drawerfm/drawer/internal/format/table"
	"github.com/drawerfm/drawer/internal/mimetype"
	"github.com/drawerfm/drawer/internal/tab"
)

// panelKind is what the side panel shows.
type panelKind int

const (
	panelNone panelKind = iota
	panelDetails
	panelGallery
)

// overlay is a scrollable full-pane text sheet.
type overlay struct {
	title  string
	lines  []string
	scroll int
}

const timestampLayout = "2006-01-02 15:04"

// detailLines builds the rows the details panel shows for one entry.
func detailLines(item tab.Item) []string {
	kind := item.Mime
	if item.IsDir {
		kind = "folder"
	}
	rows := [][]string{
		{"Name", item.Name},
		{"Type", kind},
		{"Size", item.DisplaySize()},
		{"Modified", fmt.Sprintf("%s (%s)", item.Modified.Format(timestampLayout), humanize.Time(item.Modified))},
		{"Path", item.Path},
	}
	if item.Trashed {
		rows = append(rows,
			[]string{"Original", item.OrigPath},
			[]string{"Deleted", fmt.Sprintf("%s (%s)", item.DeletedAt.Format(timestampLayout), humanize.Time(item.DeletedAt))},
		)
	}
	return table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft})
}

// galleryLines builds the gallery panel rows: a large icon plus the
// entry's metadata. Terminal cells can't show the image itself, so
// the panel leans on the icon and the facts.
func galleryLines(item tab.Item, iconArt string) []string {
	lines := strings.Split(iconArt, "\n")
	lines = append(lines, "")
	lines = append(lines, item.Name)
	if !item.CanGallery() {
		lines = append(lines, styles.PreviewError.Render("No preview for this type"))
		return lines
	}
	lines = append(lines,
		item.Mime,
		styles.SizeColumn.Render(item.DisplaySize()),
		humanize.Time(item.Modified),
	)
	return lines
}

func (m *Model) scrollPanel(delta int) {
	m.panelScroll += delta
	if m.panelScroll < 0 {
		m.panelScroll = 0
	}
}

func (m *Model) showOverlay(title string, lines []string) {
	m.overlay = &overlay{title: title, lines: lines}
	m.mode = ModeOverlay
}

func (m *Model) closeOverlay() {
	m.overlay = nil
	m.mode = ModeBrowse
}

func (m *Model) scrollOverlay(delta int) {
	if m.overlay == nil {
		return
	}
	m.overlay.scroll += delta
	if m.overlay.scroll < 0 {
		m.overlay.scroll = 0
	}
}

func (m *Model) handleOverlayKey(keyMsg tea.KeyMsg) tea.Cmd {
	switch keyMsg.String() {
	case "esc", "q", "enter":
		m.closeOverlay()
	case "up":
		m.scrollOverlay(-1)
	case "down":
		m.scrollOverlay(1)
	case "pgup":
		m.scrollOverlay(-m.overlayPageSize())
	case "pgdown":
		m.scrollOverlay(m.overlayPageSize())
	case "home":
		if m.overlay != nil {
			m.overlay.scroll = 0
		}
	case "end":
		if m.overlay != nil {
			m.overlay.scroll = len(m.overlay.lines)
		}
	}
	return nil
}

// showPathDetails opens a details sheet for a path that is not a
// listing row, e.g. a breadcrumb ancestor.
func (m *Model) showPathDetails(path string) tea.Cmd {
	info, err := os.Stat(path)
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	item := tab.Item{
		Name:     filepath.Base(path),
		Path:     path,
		IsDir:    info.IsDir(),
		Size:     info.Size(),
		Modified: info.ModTime(),
		Mime:     mimetype.ForName(filepath.Base(path), info.IsDir()),
	}
	m.showOverlay("Details", detailLines(item))
	return nil
}

// showHistoryOverlay lists completed operations, newest first.
func (m *Model) showHistoryOverlay() {
	if m.history.Len() == 0 {
		m.showOverlay("History", []string{"No operations yet"})
		return
	}
	entries := m.history.Entries()
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		status := "ok"
		if e.Err != "" {
			status = e.Err
		}
		rows = append(rows, []string{
			e.Time.Format("15:04:05"),
			e.Action,
			summarizePaths(e.Paths),
			status,
		})
	}
	aligns := []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft, table.AlignLeft}
	m.showOverlay("History", table.Format(rows, aligns))
}

// summarizePaths compresses a path list into one readable cell.
func summarizePaths(paths []string) string {
	switch len(paths) {
	case 0:
		return ""
	case 1:
		return paths[0]
	}
	return fmt.Sprintf("%s and %d more", paths[0], len(paths)-1)
}

// showSettingsOverlay lists the active view switches and the binding
// table.
func (m *Model) showSettingsOverlay() {
	t := m.currentTab()
	if t == nil {
		return
	}
	viewName := "list"
	if t.Config.View == tab.ViewGrid {
		viewName = "grid"
	}
	field, asc := t.SortOptions()
	dir := "descending"
	if asc {
		dir = "ascending"
	}
	lines := []string{
		fmt.Sprintf("View                %s", viewName),
		fmt.Sprintf("Show hidden files   %v", t.Config.ShowHidden),
		fmt.Sprintf("Folders first       %v", t.Config.FoldersFirst),
		fmt.Sprintf("Icon zoom           %+d", t.Config.IconZoom),
		fmt.Sprintf("Sort                %s, %s", field, dir),
		"",
		"Key bindings",
	}
	binds := make([][]string, 0, len(m.binds))
	for b, a := range m.binds {
		binds = append(binds, []string{b.String(), a.String()})
	}
	sort.Slice(binds, func(i, j int) bool { return binds[i][1] < binds[j][1] })
	lines = append(lines, table.Format(binds, []table.Alignment{table.AlignLeft, table.AlignLeft})...)
	m.showOverlay("Settings", lines)
}

func (m *Model) showAboutOverlay() {
	version := m.version
	if version == "" {
		version = "dev"
	}
	m.showOverlay("About", []string{
		"drawer " + version,
		"",
		"A keyboard-driven file manager for the terminal.",
		"Filter listings as you type, manage tabs, trash,",
		"and archives, and pick files for other programs.",
		"",
		"https://github.com/drawerfm/drawer",
	})
}
