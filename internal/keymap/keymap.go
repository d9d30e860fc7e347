// Package keymap models the key binding table: comparable binds, the
// default table, and the reverse lookup menus use to label shortcuts.
package keymap

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/drawerfm/drawer/internal/action"
)

// Modifier is a bitmask of held modifier keys.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
	ModSuper
)

// Bind is one key combination. Binds are comparable and serve as map
// keys.
type Bind struct {
	Mods Modifier
	Key  string
}

// String renders the bind the way menus label shortcuts, e.g.
// "Ctrl+Shift+N".
func (b Bind) String() string {
	var parts []string
	if b.Mods&ModSuper != 0 {
		parts = append(parts, "Super")
	}
	if b.Mods&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if b.Mods&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if b.Mods&ModShift != 0 {
		parts = append(parts, "Shift")
	}
	parts = append(parts, keyLabel(b.Key))
	return strings.Join(parts, "+")
}

func keyLabel(key string) string {
	switch key {
	case "":
		return ""
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	if len(key) == 1 {
		return strings.ToUpper(key)
	}
	return strings.ToUpper(key[:1]) + key[1:]
}

// ParseBind reads a combination like "ctrl+shift+n". A trailing "+"
// names the plus key itself.
func ParseBind(s string) (Bind, error) {
	raw := strings.TrimSpace(strings.ToLower(s))
	if raw == "" {
		return Bind{}, fmt.Errorf("empty key binding")
	}
	parts := strings.Split(raw, "+")
	key := parts[len(parts)-1]
	modParts := parts[:len(parts)-1]
	if key == "" {
		if len(modParts) == 0 || modParts[len(modParts)-1] != "" {
			return Bind{}, fmt.Errorf("malformed key binding %q", s)
		}
		key = "+"
		modParts = modParts[:len(modParts)-1]
	}
	var mods Modifier
	for _, m := range modParts {
		switch m {
		case "ctrl":
			mods |= ModCtrl
		case "alt":
			mods |= ModAlt
		case "shift":
			mods |= ModShift
		case "super":
			mods |= ModSuper
		default:
			return Bind{}, fmt.Errorf("unknown modifier %q in %q", m, s)
		}
	}
	return Bind{Mods: mods, Key: key}, nil
}

func ctrl(key string) Bind      { return Bind{Mods: ModCtrl, Key: key} }
func ctrlShift(key string) Bind { return Bind{Mods: ModCtrl | ModShift, Key: key} }
func alt(key string) Bind       { return Bind{Mods: ModAlt, Key: key} }
func bare(key string) Bind      { return Bind{Key: key} }

// Default builds the stock binding table.
func Default() map[Bind]action.Action {
	return map[Bind]action.Action{
		ctrl("t"):        action.Of(action.TabNew),
		ctrl("w"):        action.Of(action.TabClose),
		ctrl("tab"):      action.Of(action.TabNext),
		ctrlShift("tab"): action.Of(action.TabPrev),
		ctrl("n"):        action.Of(action.WindowNew),
		ctrl("q"):        action.Of(action.WindowClose),
		ctrlShift("n"):   action.Of(action.NewFolder),
		ctrl("x"):        action.Of(action.Cut),
		ctrl("c"):        action.Of(action.Copy),
		ctrlShift("c"):   action.Of(action.CopyPath),
		ctrl("v"):        action.Of(action.Paste),
		ctrl("a"):        action.Of(action.SelectAll),
		ctrl("f"):        action.Of(action.Search),
		ctrl("h"):        action.Of(action.ToggleShowHidden),
		ctrl("i"):        action.Of(action.Preview),
		ctrl(","):        action.Of(action.Settings),
		ctrl("+"):        action.Of(action.ZoomIn),
		ctrl("="):        action.Of(action.ZoomIn),
		ctrl("-"):        action.Of(action.ZoomOut),
		ctrl("0"):        action.Of(action.ZoomDefault),
		bare("f2"):       action.Of(action.Rename),
		bare("delete"):   action.Of(action.MoveToTrash),
		alt("up"):        action.Of(action.LocationUp),
		alt("left"):      action.Of(action.HistoryPrevious),
		alt("enter"):     action.Of(action.Preview),
		alt("t"):         action.Of(action.OpenTerminal),
	}
}

// ShortcutFor reverse-scans the table for a binding mapped to the
// action; menus use it to label their items. When several bindings
// match, the shortest label wins so menus stay narrow.
func ShortcutFor(binds map[Bind]action.Action, act action.Action) string {
	var matches []string
	for b, a := range binds {
		if a == act {
			matches = append(matches, b.String())
		}
	}
	if len(matches) == 0 {
		return ""
	}
	sort.Slice(matches, func(i, j int) bool {
		if len(matches[i]) != len(matches[j]) {
			return len(matches[i]) < len(matches[j])
		}
		return matches[i] < matches[j]
	})
	return matches[0]
}

// LoadFile applies "combo = action" override lines from path on top of
// the default table. Binding a combo to none removes it. A missing
// file is not an error; the defaults are returned.
func LoadFile(path string) (map[Bind]action.Action, error) {
	binds := Default()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return binds, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		eq := strings.Index(text, "=")
		if eq < 0 {
			return nil, fmt.Errorf("%s:%d: expected combo = action", path, line)
		}
		bind, err := ParseBind(text[:eq])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		opName := strings.TrimSpace(text[eq+1:])
		op, err := action.ParseOp(opName)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		if op == action.None {
			delete(binds, bind)
			continue
		}
		binds[bind] = action.Of(op)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return binds, nil
}
