package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drawerfm/drawer/internal/action"
	"github.com/drawerfm/drawer/internal/logging/events"
)

// Request encapsulates one action invocation.
type Request struct {
	Action  action.Action
	Handler func() tea.Msg
}

// Bus coordinates the execution of file actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an action handler into a Bubble Tea command while
// emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.Action.String())
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.Action.String(), "no handler")
			return nil
		}
		msg := req.Handler()
		events.Command.Result(req.Action.String(), fmt.Sprintf("%T", msg))
		return msg
	}
}
