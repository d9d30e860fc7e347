package events

import "github.com/drawerfm/drawer/internal/logging"

type MenuTracer struct{}

type menuReason string

const (
	MenuReasonEscape menuReason = "escape"
	MenuReasonAction menuReason = "action"
	MenuReasonBlur   menuReason = "blur"
)

var Menu = MenuTracer{}

func (MenuTracer) Open(kind string, items int) {
	logging.Trace("menu.open", map[string]interface{}{"kind": kind, "items": items})
}

func (MenuTracer) Enter(kind, label string) {
	logging.Trace("menu.enter", map[string]interface{}{"kind": kind, "label": label})
}

func (MenuTracer) Back(kind string) {
	logging.Trace("menu.back", map[string]interface{}{"kind": kind})
}

func (MenuTracer) Cursor(kind string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"kind": kind, "cursor": cursor})
}

func (MenuTracer) Select(act string) {
	logging.Trace("menu.select", map[string]interface{}{"action": act})
}

func (MenuTracer) Dismiss(reason menuReason) {
	logging.Trace("menu.dismiss", map[string]interface{}{"reason": string(reason)})
}
