package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/drawerfm/drawer/internal/format/table"
	"github.com/drawerfm/drawer/internal/icons"
	"github.com/drawerfm/drawer/internal/menu"
	"github.com/drawerfm/drawer/internal/tab"
	"github.com/drawerfm/drawer/internal/theme"
	uistate "github.com/drawerfm/drawer/internal/ui/state"
)

const (
	panelMinWidth       = 30  // minimum cols for the side panel; below this it renders inline
	panelFraction       = 0.4 // fraction of total width given to the side panel
	inlinePanelMaxLines = 10  // cap for the inline details/gallery block
	galleryIconSize     = 4
	gridNameWidth       = 20
	gridCellGap         = 2
	menuSheetMinWidth   = 24
)

// panelBorder styles used when drawing the side panel box.
var (
	panelBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	panelScrollStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// hasSidePanel reports whether the details or gallery panel renders in
// its own column rather than inline below the listing.
func (m *Model) hasSidePanel() bool {
	if m.panel == panelNone {
		return false
	}
	return m.sidePanelWidth() > 0
}

// sidePanelWidth returns the width in columns for the right-hand
// panel. Returns 0 when the terminal is too narrow to split.
func (m *Model) sidePanelWidth() int {
	if m.panel == panelNone || m.width <= 0 {
		return 0
	}
	w := int(float64(m.width) * panelFraction)
	if w < panelMinWidth {
		return 0
	}
	return w
}

// listingWidth returns the width available for the listing column.
func (m *Model) listingWidth() int {
	return m.width - m.sidePanelWidth()
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case ModeMenu:
		return m.viewMenu()
	case ModeOverlay:
		return m.viewOverlay()
	}
	if m.hasSidePanel() {
		return m.viewSideBySide()
	}
	return m.viewVertical()
}

// viewVertical is the standard single-column layout with an optional
// inline details or gallery block below the listing (used when the
// terminal is too narrow for side-by-side).
func (m *Model) viewVertical() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, m.headerLines()...)
	lines = append(lines, m.listingLines(m.width)...)
	if m.panel != panelNone && !m.hasSidePanel() {
		if item, ok := m.cursorItem(); ok {
			title, body, raw := m.panelLines(item)
			if len(body) > inlinePanelMaxLines {
				body = body[:inlinePanelMaxLines]
			}
			lines = append(lines, styledLine{})
			lines = append(lines, styledLine{text: fmt.Sprintf("%s: %s", title, item.Name), style: styles.PreviewTitle})
			for _, row := range body {
				if raw {
					lines = append(lines, styledLine{text: row, raw: true})
				} else {
					lines = append(lines, styledLine{text: row, style: styles.PreviewBody})
				}
			}
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.footerText(), style: styles.Footer})
	}
	bottom := m.bottomBar()
	lines = limitHeight(lines, m.height-len(bottom), m.width)
	lines = applyWidth(lines, m.width)
	lines = append(lines, bottom...)
	return renderLines(lines)
}

// viewSideBySide renders the listing on the left and the details or
// gallery panel on the right.
func (m *Model) viewSideBySide() string {
	listW := m.listingWidth()
	panelW := m.sidePanelWidth()

	contentLines := make([]styledLine, 0, 16)
	contentLines = append(contentLines, m.headerLines()...)
	contentLines = append(contentLines, m.listingLines(listW)...)
	if info := m.currentInfo(); info != "" {
		contentLines = append(contentLines, styledLine{})
		contentLines = append(contentLines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		contentLines = append(contentLines, styledLine{})
		contentLines = append(contentLines, styledLine{text: m.footerText(), style: styles.Footer})
	}

	// Pad content lines so the columns fill the space above the bottom bar.
	bottom := m.bottomBar()
	panelH := m.height - len(bottom)
	if panelH < 1 {
		panelH = 1
	}
	if len(contentLines) > panelH {
		contentLines = contentLines[:panelH]
	}
	for len(contentLines) < panelH {
		contentLines = append(contentLines, styledLine{})
	}

	contentLines = applyWidth(contentLines, listW)
	leftStr := renderLines(contentLines)

	// Every rendered row must hold exactly listW visible columns or
	// JoinHorizontal pushes the panel off the right edge. Width and
	// truncation have to be ANSI-aware; rows carry escape sequences.
	leftRows := strings.Split(leftStr, "\n")
	for i, row := range leftRows {
		w := lipgloss.Width(row)
		if w > listW {
			leftRows[i] = truncate.StringWithTail(row, uint(listW-1), "…")
		} else if w < listW {
			leftRows[i] = row + strings.Repeat(" ", listW-w)
		}
	}
	leftStr = strings.Join(leftRows, "\n")

	rightStr := m.renderSidePanel(panelW, panelH)

	topSection := lipgloss.JoinHorizontal(lipgloss.Top, leftStr, rightStr)
	bottomStr := renderLines(bottom)
	return topSection + "\n" + bottomStr
}

// headerLines builds the window header: the picker heading or tab
// strip, then the breadcrumb row.
func (m *Model) headerLines() []styledLine {
	t := m.currentTab()
	if t == nil {
		return nil
	}
	lines := make([]styledLine, 0, 2)
	if title := pickerTitle(t.Mode); title != "" {
		lines = append(lines, styledLine{text: title, style: styles.Header})
	} else if len(m.tabs) > 1 {
		lines = append(lines, styledLine{text: m.tabStrip(), raw: true})
	}
	lines = append(lines, styledLine{text: m.breadcrumbs(), raw: true})
	return lines
}

// headerRows counts the header lines without building them.
func (m *Model) headerRows() int {
	t := m.currentTab()
	if t == nil {
		return 0
	}
	rows := 1
	if pickerTitle(t.Mode) != "" || len(m.tabs) > 1 {
		rows++
	}
	return rows
}

func pickerTitle(mode tab.Mode) string {
	if mode.Kind != tab.ModePicker {
		return ""
	}
	switch mode.Picker {
	case tab.PickerOpenFile:
		return "Open file"
	case tab.PickerOpenFiles:
		return "Open files"
	case tab.PickerOpenFolder:
		return "Select folder"
	case tab.PickerSaveFile:
		return "Save file"
	}
	return ""
}

// tabStrip renders "1:name 2:name" with the active tab emphasized.
func (m *Model) tabStrip() string {
	segments := make([]string, len(m.tabs))
	for i, tv := range m.tabs {
		seg := fmt.Sprintf(" %d:%s ", i+1, tv.tab.Location.Title())
		if i == m.active {
			segments[i] = styles.BreadcrumbActive.Render(seg)
		} else {
			segments[i] = styles.Breadcrumb.Render(seg)
		}
	}
	return strings.Join(segments, "")
}

// breadcrumbs renders the ancestor chain of the current location. The
// segment order matches the indexes the location menu resolves.
func (m *Model) breadcrumbs() string {
	t := m.currentTab()
	ancestors := t.Location.Ancestors()
	segments := make([]string, len(ancestors))
	for i, loc := range ancestors {
		label := loc.Title()
		if i == len(ancestors)-1 {
			segments[i] = styles.BreadcrumbActive.Render(label)
		} else {
			segments[i] = styles.Breadcrumb.Render(label)
		}
	}
	return strings.Join(segments, styles.Breadcrumb.Render(" › "))
}

// listingLines builds the rows of the listing area in the active view.
func (m *Model) listingLines(width int) []styledLine {
	tv := m.current()
	if tv == nil {
		return nil
	}
	if m.loading && len(tv.list.Items) == 0 && tv.list.Filter == "" {
		return []styledLine{{text: "Loading…", style: styles.Loading}}
	}
	if len(tv.list.Items) == 0 {
		msg := "(no entries)"
		if tv.list.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", tv.list.Filter)
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}
	if tv.tab.Config.View == tab.ViewGrid {
		return m.gridLines(tv.list)
	}
	return m.listLines(tv, width)
}

// listLines renders the column view: one aligned row per entry under a
// header row. Column cells stay unstyled until the whole line is
// styled; escape codes would skew the column math.
func (m *Model) listLines(tv *tabView, width int) []styledLine {
	list := tv.list
	header, rows, aligns := listingTable(tv.tab.Location, list.Items)
	formatted := table.Format(append([][]string{header}, rows...), aligns)

	start := 0
	visible := list.Items
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(visible) > maxItems {
		start = list.ViewportOffset
		if start < 0 {
			start = 0
		}
		if start+maxItems > len(visible) {
			start = len(visible) - maxItems
			if start < 0 {
				start = 0
			}
			list.ViewportOffset = start
		}
		visible = visible[start : start+maxItems]
	}

	lines := make([]styledLine, 0, len(visible)+1)
	gutter := strings.Repeat(" ", 4+m.iconSize()+1)
	lines = append(lines, styledLine{text: gutter + formatted[0], style: styles.TableHeader})
	for i := range visible {
		idx := start + i
		lines = append(lines, m.buildItemLine(visible[i], formatted[idx+1], idx, list, width))
	}
	return lines
}

// listingTable lays out the column cells for the location kind.
func listingTable(loc tab.Location, items []tab.Item) ([]string, [][]string, []table.Alignment) {
	switch loc.Kind {
	case tab.LocationTrash:
		rows := make([][]string, len(items))
		for i, it := range items {
			rows[i] = []string{it.Name, it.DisplaySize(), humanize.Time(it.DeletedAt)}
		}
		return []string{"Name", "Size", "Deleted"}, rows,
			[]table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft}
	case tab.LocationRecents, tab.LocationSearch:
		rows := make([][]string, len(items))
		for i, it := range items {
			rows[i] = []string{it.Name, filepath.Dir(it.Path), humanize.Time(it.Modified)}
		}
		return []string{"Name", "Folder", "Modified"}, rows,
			[]table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft}
	default:
		rows := make([][]string, len(items))
		for i, it := range items {
			rows[i] = []string{it.Name, it.DisplaySize(), humanize.Time(it.Modified)}
		}
		return []string{"Name", "Size", "Modified"}, rows,
			[]table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft}
	}
}

// buildItemLine constructs a single styledLine for a listing row:
// marked indicator, selection mark, icon, and the aligned columns.
// width is the target column width; when > 0 the text is padded so
// that the cursor row's background spans the full pane.
func (m *Model) buildItemLine(item tab.Item, columns string, idx int, list *uistate.List, width int) styledLine {
	indicatorStyle := styles.ItemIndicator
	mark := " "
	if item.Selected {
		indicatorStyle = styles.MarkedIndicator
		mark = "✓"
	}
	icon := iconCell(item.IconName(), m.iconSize())
	fullText := fmt.Sprintf("▌ %s %s %s", mark, icon, columns)
	if width > 0 {
		if pad := width - lipgloss.Width(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         itemStyle(item, idx == list.Cursor),
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

// itemStyle picks the row style: the cursor wins, then kind tints,
// then the extension tint for recognized file types.
func itemStyle(item tab.Item, oncursor bool) *lipgloss.Style {
	if oncursor {
		return styles.SelectedItem
	}
	if item.Hidden {
		return styles.ItemHidden
	}
	if item.IsDir {
		return styles.ItemDir
	}
	if c, ok := theme.ForExtension(filepath.Ext(item.Name)); ok {
		return extensionStyle(c)
	}
	return styles.Item
}

// extensionStyles caches one style per tint color. Rendering happens on
// the update goroutine only, so the map needs no lock.
var extensionStyles = map[lipgloss.Color]*lipgloss.Style{}

func extensionStyle(c lipgloss.Color) *lipgloss.Style {
	if s, ok := extensionStyles[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(c)
	extensionStyles[c] = &s
	return &s
}

// iconCell is the unstyled icon glyph padded to its cell width.
// Listing rows take their color from the whole-row style, so the
// styled handles from the icon cache cannot be embedded here.
func iconCell(name string, size int) string {
	if name == "" {
		return strings.Repeat(" ", size)
	}
	sym := runewidth.Truncate(theme.Resolve(name).Symbol, size, "")
	return runewidth.FillRight(sym, size)
}

// gridLines renders the icon grid: rows of fixed-width cells. The
// viewport offset is kept on a row boundary so columns stay aligned
// while scrolling.
func (m *Model) gridLines(list *uistate.List) []styledLine {
	cols := m.gridColumns()
	cellW := m.gridCellWidth()
	maxRows := m.listingRows()
	rowCount := (len(list.Items) + cols - 1) / cols

	startRow := 0
	if maxRows > 0 && rowCount > maxRows {
		cursorRow := 0
		if list.Cursor >= 0 {
			cursorRow = list.Cursor / cols
		}
		startRow = list.ViewportOffset / cols
		if cursorRow < startRow {
			startRow = cursorRow
		}
		if cursorRow >= startRow+maxRows {
			startRow = cursorRow - maxRows + 1
		}
		if startRow > rowCount-maxRows {
			startRow = rowCount - maxRows
		}
		if startRow < 0 {
			startRow = 0
		}
		list.ViewportOffset = startRow * cols
	} else {
		list.ViewportOffset = 0
	}

	endRow := rowCount
	if maxRows > 0 && endRow > startRow+maxRows {
		endRow = startRow + maxRows
	}
	lines := make([]styledLine, 0, endRow-startRow)
	for r := startRow; r < endRow; r++ {
		var b strings.Builder
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			if idx >= len(list.Items) {
				break
			}
			b.WriteString(m.gridCell(list.Items[idx], idx == list.Cursor, cellW))
		}
		lines = append(lines, styledLine{text: b.String(), raw: true})
	}
	return lines
}

func (m *Model) gridCell(item tab.Item, oncursor bool, cellW int) string {
	mark := " "
	if item.Selected {
		mark = "✓"
	}
	icon := iconCell(item.IconName(), m.iconSize())
	name := runewidth.FillRight(runewidth.Truncate(item.Name, gridNameWidth, "…"), gridNameWidth)
	text := fmt.Sprintf("%s%s %s", mark, icon, name)
	if pad := cellW - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return itemStyle(item, oncursor).Render(text)
}

// gridCellWidth is the cell a grid entry renders in: mark, icon, and
// the fixed name column.
func (m *Model) gridCellWidth() int {
	return 1 + m.iconSize() + 1 + gridNameWidth + gridCellGap
}

func (m *Model) gridColumns() int {
	width := m.listingWidth()
	if width <= 0 {
		return 1
	}
	cols := width / m.gridCellWidth()
	if cols < 1 {
		cols = 1
	}
	return cols
}

// cursorItem returns the listing entry under the cursor.
func (m *Model) cursorItem() (tab.Item, bool) {
	list := m.currentList()
	if list == nil {
		return tab.Item{}, false
	}
	return list.Current()
}

// panelLines builds the side panel body for one entry. Gallery rows
// carry styled icon cells, so they render raw.
func (m *Model) panelLines(item tab.Item) (string, []string, bool) {
	switch m.panel {
	case panelGallery:
		return "Gallery", galleryLines(item, icons.Get(item.IconName(), galleryIconSize)), true
	default:
		return "Details", detailLines(item), false
	}
}

// renderSidePanel builds the bordered panel box as a string with
// exactly height rows and totalWidth columns.
func (m *Model) renderSidePanel(totalWidth, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)

	innerW := totalWidth - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	titleLabel := "Details"
	if m.panel == panelGallery {
		titleLabel = "Gallery"
	}
	scrollInfo := ""
	var contentLines []string
	rawANSI := false

	if item, ok := m.cursorItem(); ok {
		var body []string
		titleLabel, body, rawANSI = m.panelLines(item)
		titleLabel = titleLabel + ": " + item.Name
		maxOffset := len(body) - innerH
		if maxOffset < 0 {
			maxOffset = 0
		}
		if m.panelScroll > maxOffset {
			m.panelScroll = maxOffset
		}
		if m.panelScroll < 0 {
			m.panelScroll = 0
		}
		end := m.panelScroll + innerH
		if end > len(body) {
			end = len(body)
		}
		contentLines = body[m.panelScroll:end]
		if len(body) > innerH {
			scrollInfo = fmt.Sprintf(" %d/%d ", m.panelScroll+len(contentLines), len(body))
		}
	} else {
		contentLines = []string{"Nothing selected"}
	}

	// Build top border: ╭─ title ──────────── scrollInfo ─╮
	// Total fixed chars: corners plus one dash on each side of the
	// title and scroll segments.
	titleSeg := " " + titleLabel + " "
	scrollSeg := scrollInfo
	dashes := totalWidth - 4 - len([]rune(titleSeg)) - len([]rune(scrollSeg))
	if dashes < 0 {
		// Too narrow for scroll info; drop it.
		scrollSeg = ""
		dashes = totalWidth - 4 - len([]rune(titleSeg))
	}
	if dashes < 0 {
		// Still too narrow; truncate title.
		titleSeg = " … "
		dashes = totalWidth - 4 - len([]rune(titleSeg))
	}
	if dashes < 0 {
		dashes = 0
	}
	topLine := panelBorderStyle.Render(tlc+hz) +
		styles.PreviewTitle.Render(titleSeg) +
		panelBorderStyle.Render(strings.Repeat(hz, dashes)) +
		panelScrollStyle.Render(scrollSeg) +
		panelBorderStyle.Render(hz + trc)

	bottomLine := panelBorderStyle.Render(blc + strings.Repeat(hz, innerW) + brc)

	bodyStyle := styles.PreviewBody

	rows := make([]string, 0, height)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(contentLines) {
			content = contentLines[i]
		}
		// Truncate and pad using ANSI-aware measurement; gallery rows
		// carry escape sequences from the icon cache.
		w := lipgloss.Width(content)
		if w > innerW {
			content = truncate.StringWithTail(content, uint(innerW-1), "…")
			w = lipgloss.Width(content)
		}
		if w < innerW {
			content = content + strings.Repeat(" ", innerW-w)
		}
		var styledContent string
		if rawANSI {
			styledContent = content
		} else if bodyStyle != nil {
			styledContent = bodyStyle.Render(content)
		} else {
			styledContent = content
		}
		rows = append(rows, panelBorderStyle.Render(vt)+styledContent+panelBorderStyle.Render(vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
}

// viewMenu renders the header, the open menu sheet, and the bottom bar.
func (m *Model) viewMenu() string {
	header := renderLines(applyWidth(m.headerLines(), m.width))
	bottom := renderLines(m.bottomBar())
	level := m.currentMenu()
	if level == nil {
		return header + "\n" + bottom
	}
	return header + "\n" + m.renderMenuSheet(level) + "\n" + bottom
}

// renderMenuSheet draws one menu level as a boxed sheet: title,
// divider, then the visible window of rows.
func (m *Model) renderMenuSheet(level *uistate.MenuLevel) string {
	width := menuSheetWidth(level)
	if max := m.width - 4; max > 0 && width > max {
		width = max
	}

	start := 0
	end := len(level.Items)
	if maxRows := m.maxMenuRows(); maxRows > 0 && end > maxRows {
		start = level.ViewportOffset
		if start < 0 {
			start = 0
		}
		if start+maxRows > len(level.Items) {
			start = len(level.Items) - maxRows
			if start < 0 {
				start = 0
			}
			level.ViewportOffset = start
		}
		end = start + maxRows
	}

	rows := make([]string, 0, end-start+2)
	title := truncateText(level.Title, width)
	title = title + strings.Repeat(" ", width-len([]rune(title)))
	rows = append(rows, styles.Header.Render(title))
	rows = append(rows, styles.MenuDivider.Render(strings.Repeat("─", width)))
	for idx := start; idx < end; idx++ {
		rows = append(rows, m.menuRow(level, idx, width))
	}
	return styles.Menu.Render(strings.Join(rows, "\n"))
}

// menuSheetWidth sizes the sheet to its widest row so shortcut hints
// align across all of them.
func menuSheetWidth(level *uistate.MenuLevel) int {
	width := menuSheetMinWidth
	if w := lipgloss.Width(level.Title); w > width {
		width = w
	}
	for _, item := range level.Items {
		check, body, hint := menuRowParts(item)
		need := lipgloss.Width(check+body) + 2 + lipgloss.Width(hint)
		if need > width {
			width = need
		}
	}
	return width
}

// menuRowParts splits an item into the check column, the icon and
// label body, and the right-aligned hint.
func menuRowParts(item menu.Item) (string, string, string) {
	check := "  "
	if item.Kind == menu.Checkbox && item.Checked {
		check = "✓ "
	}
	body := iconCell(item.Icon.Name(), icons.SizeMenu) + " " + item.Label
	hint := item.Shortcut
	if item.Kind == menu.Submenu {
		hint = "▸"
	}
	return check, body, hint
}

func (m *Model) menuRow(level *uistate.MenuLevel, idx, width int) string {
	item := level.Items[idx]
	if item.Kind == menu.Divider {
		return styles.MenuDivider.Render(strings.Repeat("─", width))
	}
	check, body, hint := menuRowParts(item)
	pad := width - lipgloss.Width(check+body) - lipgloss.Width(hint)
	if pad < 1 {
		body = truncateText(body, width-lipgloss.Width(check)-lipgloss.Width(hint)-1)
		pad = 1
	}
	filler := strings.Repeat(" ", pad)
	switch {
	case idx == level.Cursor:
		return styles.MenuItemActive.Render(check + body + filler + hint)
	case item.Disabled:
		return styles.MenuItemDisabled.Render(check + body + filler + hint)
	}
	return styles.MenuChecked.Render(check) +
		styles.MenuItem.Render(body+filler) +
		styles.MenuShortcut.Render(hint)
}

// viewOverlay renders a full-pane text sheet: history, settings, or
// the about page.
func (m *Model) viewOverlay() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, m.headerLines()...)
	o := m.overlay
	if o == nil {
		return renderLines(applyWidth(lines, m.width))
	}

	page := m.overlayPageSize()
	maxScroll := len(o.lines) - page
	if maxScroll < 0 {
		maxScroll = 0
	}
	if o.scroll > maxScroll {
		o.scroll = maxScroll
	}
	if o.scroll < 0 {
		o.scroll = 0
	}
	end := o.scroll + page
	if end > len(o.lines) {
		end = len(o.lines)
	}

	title := o.title
	if len(o.lines) > page {
		title = fmt.Sprintf("%s (%d-%d of %d)", o.title, o.scroll+1, end, len(o.lines))
	}
	lines = append(lines, styledLine{text: title, style: styles.Header})
	lines = append(lines, styledLine{})
	for _, row := range o.lines[o.scroll:end] {
		lines = append(lines, styledLine{text: row, style: styles.Info})
	}

	bottom := m.bottomBar()
	lines = limitHeight(lines, m.height-len(bottom), m.width)
	lines = applyWidth(lines, m.width)
	lines = append(lines, bottom...)
	return renderLines(lines)
}

// bottomBar builds the rows pinned under the content: the prompt or
// confirm question when one is up, otherwise the status line and the
// filter prompt.
func (m *Model) bottomBar() []styledLine {
	switch m.mode {
	case ModePrompt:
		if m.prompt != nil {
			return applyWidth([]styledLine{
				{text: m.prompt.title, style: styles.Header},
				{text: m.prompt.input.View(), raw: true},
				{text: m.prompt.help, style: styles.FilterPlaceholder},
			}, m.width)
		}
	case ModeConfirm:
		if m.confirm != nil {
			return applyWidth([]styledLine{
				{text: m.confirm.question, style: styles.Header},
				{text: "y to confirm. n to cancel.", style: styles.FilterPlaceholder},
			}, m.width)
		}
	case ModeOverlay:
		return applyWidth([]styledLine{
			m.statusLine(),
			{text: "↑/↓ scroll  esc close", style: styles.FilterPlaceholder},
		}, m.width)
	}
	return applyWidth([]styledLine{
		m.statusLine(),
		{text: m.filterPrompt(), raw: true},
	}, m.width)
}

// statusLine shows the most recent error, or the label of the
// operation still running.
func (m *Model) statusLine() styledLine {
	if m.errMsg != "" {
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	if m.loading && m.pendingLabel != "" {
		return styledLine{text: m.pendingLabel + "…", style: styles.Loading}
	}
	return styledLine{}
}

func (m *Model) footerText() string {
	if t := m.currentTab(); t != nil && t.Mode.Kind == tab.ModePicker {
		return "↑/↓ move  enter open  tab mark  ctrl+o choose  esc cancel"
	}
	return "↑/↓ move  enter open  tab mark  f9 menu  backspace up  ctrl+q quit"
}

// filterPrompt renders the find-as-you-type line with a blinking
// caret at the edit position.
func (m *Model) filterPrompt() string {
	list := m.currentList()
	if list == nil {
		return ">"
	}
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := list.Filter
	if text == "" {
		placeholder := "(type to filter)"
		runes := []rune(placeholder)
		var caretRune string
		var rest string
		if len(runes) > 0 {
			caretRune = string(runes[0])
			rest = string(runes[1:])
		}
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(caretRune)
		return prompt + caret + render(styles.FilterPlaceholder, rest)
	}
	runes := []rune(text)
	pos := list.FilterCursorPos()
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	before := render(styles.Filter, string(runes[:pos]))
	var caretRune string
	if pos < len(runes) {
		caretRune = string(runes[pos])
	} else {
		caretRune = " "
	}
	caret := m.renderFilterCursor(caretRune)
	var after string
	if pos < len(runes) {
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + caret + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}

// listingRows is how many terminal rows the listing area can use.
func (m *Model) listingRows() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: status line + filter prompt
	used += m.headerRows()
	t := m.currentTab()
	if t != nil && t.Config.View == tab.ViewList {
		used++ // column header row
	}
	if m.panel != panelNone && !m.hasSidePanel() {
		if item, ok := m.cursorItem(); ok {
			_, body, _ := m.panelLines(item)
			if len(body) > inlinePanelMaxLines {
				body = body[:inlinePanelMaxLines]
			}
			used += 2 + len(body) // blank separator + title + block
		}
	}
	if m.currentInfo() != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

// maxVisibleItems is the listing capacity in items; grid rows hold
// several items each.
func (m *Model) maxVisibleItems() int {
	rows := m.listingRows()
	if rows < 0 {
		return -1
	}
	if t := m.currentTab(); t != nil && t.Config.View == tab.ViewGrid {
		return rows * m.gridColumns()
	}
	return rows
}

// maxMenuRows is how many rows fit in the menu sheet window.
func (m *Model) maxMenuRows() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar
	used += m.headerRows()
	used += 4 // sheet border, title, divider
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

// overlayPageSize is how many rows an overlay sheet can show at once.
func (m *Model) overlayPageSize() int {
	if m.height <= 0 {
		return 1
	}
	rows := m.height - m.headerRows() - 4 // title, blank, bottom bar
	if rows < 1 {
		return 1
	}
	return rows
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			w := lipgloss.Width(text)
			if w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			// Text already contains ANSI escapes; pass through as-is.
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
