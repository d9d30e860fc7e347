package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drawerfm/drawer/internal/action"
	"github.com/drawerfm/drawer/internal/logging/events"
	"github.com/drawerfm/drawer/internal/state"
	"github.com/drawerfm/drawer/internal/tab"
	"github.com/drawerfm/drawer/internal/ui/command"
)

// opTimeout bounds listing loads and the external commands file
// operations shell out to.
const opTimeout = 30 * time.Second

// listingLoadedMsg delivers the items for a location read off the
// update loop.
type listingLoadedMsg struct {
	location tab.Location
	items    []tab.Item
	err      error
}

// actionDoneMsg reports a finished file operation.
type actionDoneMsg struct {
	act       action.Action
	paths     []string
	info      string
	err       error
	reload    bool
	clearClip bool
}

// loadListing reads a location's items in the background.
func (m *Model) loadListing(loc tab.Location) tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		items, err := loader.Load(ctx, loc)
		if err != nil {
			events.FS.LoadError(loc.String(), err)
		} else {
			events.FS.Load(loc.String(), len(items))
		}
		return listingLoadedMsg{location: loc, items: items, err: err}
	}
}

// refresh reloads the active listing in place; the cursor stays on
// its entry when the entry survives.
func (m *Model) refresh() tea.Cmd {
	t := m.currentTab()
	if t == nil {
		return nil
	}
	return m.loadListing(t.Location)
}

func (m *Model) handleListingLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(listingLoadedMsg)
	if !ok {
		return nil
	}
	tv := m.current()
	if tv == nil || tv.tab.Location != loaded.location {
		// A stale load for a location the tab already left.
		return nil
	}
	m.loading = false
	if loaded.err != nil {
		m.errMsg = loaded.err.Error()
		return nil
	}
	m.errMsg = ""
	tv.tab.SetItems(loaded.items)
	m.syncList(tv)
	if m.revealName != "" {
		if idx := tv.list.IndexOf(m.revealName); idx >= 0 {
			tv.list.Cursor = idx
			tv.list.EnsureCursorVisible(m.maxVisibleItems())
		}
		m.revealName = ""
	}
	return nil
}

// runAction executes fn off the update loop through the command bus.
// The done template carries the paths and flags the completion
// handler needs; fn fills in the error.
func (m *Model) runAction(act action.Action, done actionDoneMsg, fn func(ctx context.Context) error) tea.Cmd {
	m.loading = true
	m.pendingLabel = act.Op.String()
	done.act = act
	return m.bus.Execute(command.Request{
		Action: act,
		Handler: func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
			defer cancel()
			done.err = fn(ctx)
			return done
		},
	})
}

func (m *Model) handleActionDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(actionDoneMsg)
	if !ok {
		return nil
	}
	m.loading = false
	m.pendingLabel = ""
	if len(done.paths) > 0 {
		entry := state.HistoryEntry{Time: time.Now(), Action: done.act.Op.String(), Paths: done.paths}
		if done.err != nil {
			entry.Err = done.err.Error()
		}
		m.history.Push(entry)
	}
	if done.err != nil {
		events.Action.Error(done.err)
		m.errMsg = done.err.Error()
		return nil
	}
	m.errMsg = ""
	if done.clearClip {
		m.clipboard.Clear()
	}
	if done.info != "" {
		events.Action.Success(done.info)
		m.setInfo(done.info)
	}
	if done.reload {
		m.loading = true
		return m.refresh()
	}
	return nil
}
