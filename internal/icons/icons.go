// Package icons caches themed icon handles keyed by name and cell width.
// Lookups are memoized for the lifetime of the process so menus and
// listings can resolve icons on every render without re-styling them.
package icons

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/drawerfm/drawer/internal/theme"
)

// SizeMenu is the cell width menu and listing icons render at.
const SizeMenu = 2

// Key identifies one cached icon rendering.
type Key struct {
	Name string
	Size int
}

// Handle is a loaded, renderable icon: the styled glyph padded to its
// cell width. Handles are immutable once cached.
type Handle struct {
	name string
	text string
}

// Name reports the icon name the handle was resolved from.
func (h Handle) Name() string { return h.name }

// String returns the rendered icon cell.
func (h Handle) String() string { return h.text }

// Cache memoizes icon handles behind a single mutex.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]Handle
}

// bundled is the icon set seeded into every new cache, at menu size.
var bundled = []string{
	"tab-new-filled-symbolic",
	"value-increase-symbolic",
	"value-decrease-symbolic",
	"loupe-symbolic",
	"folder-symbolic",
	"folder-new-symbolic",
	"edit-copy-symbolic",
	"paper-symbolic",
	"document-open-symbolic",
	"arrow-into-box-symbolic",
	"edit-symbolic",
	"user-trash-symbolic",
	"cross-small-square-filled-symbolic",
	"external-link-symbolic",
	"cut-symbolic",
	"copy-symbolic",
	"clipboard-symbolic",
	"edit-select-all-symbolic",
	"history-undo-symbolic",
	"grid-symbolic",
	"list-large-symbolic",
	"view-conceal-symbolic",
	"settings-symbolic",
	"info-outline-symbolic",
	"dock-left-symbolic",
	"image-round-symbolic",
	"terminal-symbolic",
	"symbolic-link-symbolic",
	"package-x-generic-symbolic",
	"archive-extract-symbolic",
	"brush-monitor-symbolic",
	"display-symbolic",
	"shell-overview-symbolic",
	"empty-trash-bin-symbolic",
}

// NewCache builds a cache pre-seeded with the bundled icon set.
func NewCache() *Cache {
	c := &Cache{entries: make(map[Key]Handle, len(bundled))}
	for _, name := range bundled {
		c.entries[Key{Name: name, Size: SizeMenu}] = render(name, SizeMenu)
	}
	return c
}

// GetHandle returns the cached handle for (name, size), resolving and
// inserting it on first use.
func (c *Cache) GetHandle(name string, size int) Handle {
	if size < 1 {
		size = 1
	}
	key := Key{Name: name, Size: size}
	c.mu.Lock()
	defer c.mu.Unlock()
	h, ok := c.entries[key]
	if !ok {
		h = render(name, size)
		c.entries[key] = h
	}
	return h
}

// Get returns the rendered icon cell for (name, size).
func (c *Cache) Get(name string, size int) string {
	return c.GetHandle(name, size).text
}

func render(name string, size int) Handle {
	g := theme.Resolve(name)
	sym := runewidth.Truncate(g.Symbol, size, "")
	sym = runewidth.FillRight(sym, size)
	text := lipgloss.NewStyle().Foreground(g.Color).Render(sym)
	return Handle{name: name, text: text}
}

var (
	global     *Cache
	globalOnce sync.Once
)

func ensure() *Cache {
	globalOnce.Do(func() {
		global = NewCache()
	})
	return global
}

// Init seeds the process-wide cache. Calling it is optional; the first
// lookup seeds the cache as well.
func Init() {
	ensure()
}

// Get resolves an icon through the process-wide cache.
func Get(name string, size int) string {
	return ensure().Get(name, size)
}

// GetHandle resolves a handle through the process-wide cache.
func GetHandle(name string, size int) Handle {
	return ensure().GetHandle(name, size)
}
