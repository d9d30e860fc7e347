package menu

import (
	"github.com/drawerfm/drawer/internal/action"
)

// LocationMenu builds the menu shown when a breadcrumb ancestor is
// right-clicked. Every action carries the ancestor index so the update
// loop can resolve which segment was meant.
func LocationMenu(index int) []Item {
	return []Item{
		{Kind: Button, Label: "Open in new tab", Action: action.AtIndex(action.OpenInNewTab, index)},
		{Kind: Button, Label: "Open in new window", Action: action.AtIndex(action.OpenInNewWindow, index)},
		{Kind: Divider},
		{Kind: Button, Label: "Show details", Action: action.AtIndex(action.Preview, index)},
		{Kind: Divider},
		{Kind: Button, Label: "Add to sidebar", Action: action.AtIndex(action.AddToSidebar, index)},
	}
}
