package events

import "github.com/drawerfm/drawer/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) Cursor(location string, cursor int) {
	logging.Trace("list.cursor", map[string]interface{}{"location": location, "cursor": cursor})
}

func (UITracer) Navigate(location string) {
	logging.Trace("list.navigate", map[string]interface{}{"location": location})
}

func (UITracer) Select(location, name string, selected bool) {
	logging.Trace("list.select", map[string]interface{}{
		"location": location,
		"name":     name,
		"selected": selected,
	})
}

func (UITracer) TabNew(index int, location string) {
	logging.Trace("tab.new", map[string]interface{}{"index": index, "location": location})
}

func (UITracer) TabClose(index int) {
	logging.Trace("tab.close", map[string]interface{}{"index": index})
}

func (UITracer) TabSwitch(index int, location string) {
	logging.Trace("tab.switch", map[string]interface{}{"index": index, "location": location})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared(location string) {
	logging.Trace("filter.clear", map[string]interface{}{"location": location})
}

func (FilterTracer) Append(location, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"location": location, "filter": filter})
}

func (FilterTracer) Backspace(location, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"location": location, "filter": filter})
}

func (FilterTracer) WordBackspace(location, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"location": location, "filter": filter})
}

func (CommandTracer) Queue(act string) {
	logging.Trace("command.queue", map[string]interface{}{"action": act})
}

func (CommandTracer) Skip(act, reason string) {
	logging.Trace("command.skip", map[string]interface{}{"action": act, "reason": reason})
}

func (CommandTracer) Result(act, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"action": act, "msg": msgType})
}
