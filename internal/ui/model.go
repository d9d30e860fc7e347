package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drawerfm/drawer/internal/backend"
	"github.com/drawerfm/drawer/internal/data/dispatcher"
	"github.com/drawerfm/drawer/internal/icons"
	"github.com/drawerfm/drawer/internal/keymap"
	"github.com/drawerfm/drawer/internal/menu"
	"github.com/drawerfm/drawer/internal/recents"
	"github.com/drawerfm/drawer/internal/state"
	"github.com/drawerfm/drawer/internal/tab"
	"github.com/drawerfm/drawer/internal/theme"
	"github.com/drawerfm/drawer/internal/trash"
	"github.com/drawerfm/drawer/internal/ui/command"
	uistate "github.com/drawerfm/drawer/internal/ui/state"
)

const infoDisplayDuration = 5 * time.Second

var styles = theme.Default()

// Mode tells Update where key input goes.
type Mode int

const (
	// ModeBrowse is the listing with the incremental filter.
	ModeBrowse Mode = iota
	// ModeMenu is an open menu sheet capturing navigation keys.
	ModeMenu
	// ModePrompt is a text prompt (rename, new folder, search, ...).
	ModePrompt
	// ModeConfirm is a yes/no question.
	ModeConfirm
	// ModeOverlay is a scrollable text sheet (history, settings, about).
	ModeOverlay
)

type msgHandler func(tea.Msg) tea.Cmd

// tabView pairs a tab with the pane state its listing is shown
// through. The tab owns items and selection; the list owns cursor,
// filter, and viewport.
type tabView struct {
	tab  *tab.Tab
	list *uistate.List
}

// Options carries everything the model needs from the bootstrap.
type Options struct {
	Start      tab.Location
	Mode       tab.Mode
	Config     tab.Config
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Version    string
	Binds      menu.Binds
	Loader     tab.Loader
	Bin        *trash.Bin
	Store      *recents.Store
	Watcher    *backend.Watcher
}

// Model is the Bubble Tea model for one file manager window.
type Model struct {
	tabs   []*tabView
	active int

	mode          Mode
	menuStack     []*uistate.MenuLevel
	menuAncestors []tab.Location
	prompt        *prompt
	confirm       *confirm
	overlay       *overlay
	panel         panelKind
	panelScroll   int

	loading      bool
	pendingLabel string
	errMsg       string
	infoMsg      string
	infoExpire   time.Time

	lastWatchErr string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	version     string

	// picked holds the paths a picker window chose; the caller reads
	// them back after the program exits.
	picked []string

	// revealName selects this entry once the next listing lands.
	revealName string

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler

	binds      menu.Binds
	bus        *command.Bus
	loader     tab.Loader
	clipboard  state.ClipboardStore
	history    state.HistoryStore
	store      *recents.Store
	bin        *trash.Bin
	watcher    *backend.Watcher
	dispatcher *dispatcher.Dispatcher
}

// NewModel builds the model for the start location. Width and height
// of 0 mean "track the terminal".
func NewModel(opts Options) *Model {
	icons.Init()
	first := tab.New(opts.Mode, opts.Start)
	first.Config = opts.Config
	m := &Model{
		tabs:       []*tabView{{tab: first, list: uistate.NewList(opts.Start.String(), nil)}},
		mode:       ModeBrowse,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		version:    opts.Version,
		binds:      opts.Binds,
		bus:        command.New(),
		loader:     opts.Loader,
		clipboard:  state.NewClipboardStore(),
		history:    state.NewHistoryStore(),
		store:      opts.Store,
		bin:        opts.Bin,
		watcher:    opts.Watcher,
		dispatcher: dispatcher.New(),
	}
	if m.binds == nil {
		m.binds = keymap.Default()
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init starts the first listing load and arms the watcher relay.
func (m *Model) Init() tea.Cmd {
	m.loading = true
	m.ensureWatch()
	cmds := []tea.Cmd{m.loadListing(m.currentTab().Location)}
	if m.watcher != nil {
		cmds = append(cmds, waitForBackendEvent(m.watcher))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(listingLoadedMsg{}):  m.handleListingLoadedMsg,
		reflect.TypeOf(actionDoneMsg{}):     m.handleActionDoneMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

// handlerFor resolves the handler registered for a message's type,
// trying the pointer type as a fallback.
func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() != reflect.Ptr {
		if handler, ok := m.handlers[reflect.PtrTo(t)]; ok {
			return handler
		}
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled, cmd := m.routeModal(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// routeModal feeds key input to an active prompt or confirm. Other
// message kinds keep flowing to the typed handlers so listing loads
// and watcher events land even while a prompt is up.
func (m *Model) routeModal(msg tea.Msg) (bool, tea.Cmd) {
	switch m.mode {
	case ModePrompt:
		return m.updatePrompt(msg)
	case ModeConfirm:
		return m.updateConfirm(msg)
	}
	return false, nil
}

// finishUpdate flushes the deferred cursor blink restart and collapses
// the command list.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// updateFilterCursorModel forwards non-input messages to the cursor
// model so its blink timer keeps ticking.
func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		return nil
	}
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) markFilterDirty() {
	m.filterCursorDirty = true
}

// current returns the active tab pane. There is always at least one
// tab while the program runs.
func (m *Model) current() *tabView {
	if m.active < 0 || m.active >= len(m.tabs) {
		return nil
	}
	return m.tabs[m.active]
}

func (m *Model) currentTab() *tab.Tab {
	if tv := m.current(); tv != nil {
		return tv.tab
	}
	return nil
}

func (m *Model) currentList() *uistate.List {
	if tv := m.current(); tv != nil {
		return tv.list
	}
	return nil
}

func (m *Model) currentMenu() *uistate.MenuLevel {
	if len(m.menuStack) == 0 {
		return nil
	}
	return m.menuStack[len(m.menuStack)-1]
}

// syncList pushes the tab's visible items into the pane state,
// keeping cursor and filter stable across reloads and toggles.
func (m *Model) syncList(tv *tabView) {
	tv.list.UpdateItems(tv.tab.Visible())
	tv.list.EnsureCursorVisible(m.maxVisibleItems())
}

// iconSize maps the active tab's zoom to the bundled icon sizes.
func (m *Model) iconSize() int {
	t := m.currentTab()
	if t == nil {
		return icons.SizeMenu
	}
	size := icons.SizeMenu + t.Config.IconZoom
	if size < 1 {
		size = 1
	}
	if size > 4 {
		size = 4
	}
	return size
}

// Picked reports the paths a picker chose, nil when browsing or
// cancelled.
func (m *Model) Picked() []string {
	return m.picked
}

func (m *Model) setInfo(text string) {
	m.infoMsg = text
	m.infoExpire = time.Now().Add(infoDisplayDuration)
}

// clearInfo drops the info line once its display time has passed.
func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if time.Now().After(m.infoExpire) {
		m.infoMsg = ""
	}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	m.clearInfo()
	return m.infoMsg
}
