package menu

import (
	"strings"
	"testing"

	"github.com/drawerfm/drawer/internal/keymap"
	"github.com/drawerfm/drawer/internal/testutil"
)

// dump flattens a menu tree to indented text for golden comparisons.
func dump(items []Item, indent string, b *strings.Builder) {
	for _, it := range items {
		if it.Kind == Divider {
			b.WriteString(indent + "---\n")
			continue
		}
		b.WriteString(indent)
		if it.Kind == Checkbox {
			if it.Checked {
				b.WriteString("[x] ")
			} else {
				b.WriteString("[ ] ")
			}
		}
		b.WriteString(it.Label)
		if it.Shortcut != "" {
			b.WriteString("  " + it.Shortcut)
		}
		if it.Disabled {
			b.WriteString("  (disabled)")
		}
		b.WriteString("\n")
		if it.Kind == Submenu {
			dump(it.Children, indent+"  ", b)
		}
	}
}

func TestBarGolden(t *testing.T) {
	var b strings.Builder
	dump(Bar(browseTab(), false, keymap.Default()), "", &b)
	testutil.Golden(t, "bar_fresh.golden", b.String())
}

func TestContextMenuGolden(t *testing.T) {
	var b strings.Builder
	dump(ContextMenu(browseTab(file("report.txt", "text/plain")), keymap.Default()), "", &b)
	testutil.Golden(t, "context_file.golden", b.String())
}
