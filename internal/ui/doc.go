// Package ui contains the Bubble Tea program that powers the file
// manager window. The package is structured so the Model type focuses
// on message orchestration, while dedicated helpers own navigation,
// input, actions, rendering, and state updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update forwards key input to the active prompt or confirm when
//     one is up. Everything else is routed through a typed handler
//     registry so each tea.Msg is handled by a focused function (key
//     presses, listing loads, watcher events, finished operations).
//   - Navigation helpers (internal/ui/navigation.go) manage tabs, the
//     location history, and cursor movement. Filter/input helpers
//     (internal/ui/input.go) keep all text entry concerns isolated
//     from the Bubble Tea event loop. Action helpers
//     (internal/ui/actions.go) translate menu and key emissions into
//     file operations.
//
// State ownership:
//   - Listing pane state lives in internal/ui/state.List, which tracks
//     items, filtering, cursor, and viewport calculations; open menu
//     sheets stack as internal/ui/state.MenuLevel values.
//   - Tabs own their location, sort order, and selection
//     (internal/tab); the clipboard and the operation history live in
//     internal/state and are only mutated on the update loop.
//   - File operations run asynchronously through the internal/ui/command
//     bus and report back as actionDoneMsg values.
//
// Backend interactions:
//   - A backend.Watcher streams filesystem events for the directory
//     behind the active listing; Update waits for those events and
//     hands them to applyBackendEvent, which asks the dispatcher
//     whether the visible listing must reload.
//   - Listing loads run via tea.Cmd values (loadListing); when one
//     completes, the typed handler for listingLoadedMsg installs the
//     items unless the tab has navigated elsewhere in the meantime.
//
// This separation keeps Model.Update compact and makes it easier to
// test independent concerns (navigation, filtering, file operations)
// without needing to reason about the entire TUI at once.
package ui
