package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drawerfm/drawer/internal/backend"
	"github.com/drawerfm/drawer/internal/logging/events"
	"github.com/drawerfm/drawer/internal/tab"
)

// backendEventMsg carries one filesystem change notice into the
// update loop.
type backendEventMsg struct {
	event backend.Event
}

// backendDoneMsg reports that the watcher closed its event stream.
type backendDoneMsg struct{}

// waitForBackendEvent blocks on the watcher stream and converts the
// next event into a message. The handler re-arms it so exactly one
// reader sits on the channel at a time.
func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: event}
	}
}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.watcher != nil {
		waitCmd := waitForBackendEvent(m.watcher)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

// applyBackendEvent reloads the visible listing when the dispatcher
// decides the event touches it.
func (m *Model) applyBackendEvent(event backend.Event) tea.Cmd {
	if event.Kind == backend.KindChange {
		events.FS.Change(event.Op, event.Path)
	}
	result := m.dispatcher.Handle(event)
	if result.Err != nil {
		m.lastWatchErr = result.Err.Error()
		return nil
	}
	m.lastWatchErr = ""
	if !result.ReloadNeeded {
		return nil
	}
	return m.refresh()
}

// ensureWatch points the change watcher and the event dispatcher at
// the directory behind the active listing. Virtual listings (trash,
// recents, search) follow nothing.
func (m *Model) ensureWatch() {
	t := m.currentTab()
	if t == nil {
		return
	}
	dir := ""
	if t.Location.Kind == tab.LocationPath {
		dir = t.Location.Path
	}
	m.dispatcher.SetDir(dir)
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Follow(dir); err != nil {
		m.lastWatchErr = err.Error()
		return
	}
	m.lastWatchErr = ""
}
