package tab

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/drawerfm/drawer/internal/mimetype"
	"github.com/drawerfm/drawer/internal/trash"
)

// searchLimit caps how many matches a search location collects.
const searchLimit = 2000

// recentsLimit caps how many recent entries a recents location shows.
const recentsLimit = 100

// RecentsSource lists recently used paths, newest first.
type RecentsSource interface {
	Recents(n int) ([]string, error)
}

// Loader reads listings for tab locations.
type Loader struct {
	Trash   *trash.Bin
	Recents RecentsSource
}

// Load reads the items for a location. The context bounds search
// walks; plain directory reads ignore it.
func (l Loader) Load(ctx context.Context, loc Location) ([]Item, error) {
	switch loc.Kind {
	case LocationTrash:
		return l.loadTrash()
	case LocationRecents:
		return l.loadRecents()
	case LocationSearch:
		return l.loadSearch(ctx, loc)
	default:
		return loadPath(loc.Path)
	}
}

func loadPath(dir string) ([]Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, itemFromEntry(dir, e))
	}
	return items, nil
}

func itemFromEntry(dir string, e fs.DirEntry) Item {
	item := Item{
		Name:   e.Name(),
		Path:   filepath.Join(dir, e.Name()),
		IsDir:  e.IsDir(),
		Hidden: strings.HasPrefix(e.Name(), "."),
	}
	if info, err := e.Info(); err == nil {
		item.Size = info.Size()
		item.Modified = info.ModTime()
		if info.Mode()&os.ModeSymlink != 0 {
			if target, err := os.Stat(item.Path); err == nil {
				item.IsDir = target.IsDir()
			}
		}
	}
	item.Mime = mimetype.ForName(item.Name, item.IsDir)
	return item
}

func (l Loader) loadTrash() ([]Item, error) {
	if l.Trash == nil {
		return nil, nil
	}
	trashed, err := l.Trash.List()
	if err != nil {
		return nil, fmt.Errorf("list trash: %w", err)
	}
	items := make([]Item, 0, len(trashed))
	for _, t := range trashed {
		item := Item{
			Name:      t.Name,
			Path:      t.TrashPath,
			IsDir:     t.IsDir,
			Trashed:   true,
			OrigPath:  t.OrigPath,
			DeletedAt: t.DeletedAt,
		}
		if info, err := os.Stat(t.TrashPath); err == nil {
			item.Size = info.Size()
			item.Modified = info.ModTime()
		}
		item.Mime = mimetype.ForName(item.Name, item.IsDir)
		items = append(items, item)
	}
	return items, nil
}

func (l Loader) loadRecents() ([]Item, error) {
	if l.Recents == nil {
		return nil, nil
	}
	paths, err := l.Recents.Recents(recentsLimit)
	if err != nil {
		return nil, fmt.Errorf("list recents: %w", err)
	}
	var items []Item
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			// Recents can point at files deleted since.
			continue
		}
		items = append(items, Item{
			Name:     filepath.Base(p),
			Path:     p,
			IsDir:    info.IsDir(),
			Hidden:   strings.HasPrefix(filepath.Base(p), "."),
			Size:     info.Size(),
			Modified: info.ModTime(),
			Mime:     mimetype.ForName(filepath.Base(p), info.IsDir()),
		})
	}
	return items, nil
}

func (l Loader) loadSearch(ctx context.Context, loc Location) ([]Item, error) {
	needle := strings.ToLower(loc.Query)
	var items []Item
	err := filepath.WalkDir(loc.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if path == loc.Path {
			return nil
		}
		if strings.Contains(strings.ToLower(d.Name()), needle) {
			items = append(items, itemFromEntry(filepath.Dir(path), d))
			if len(items) >= searchLimit {
				return fs.SkipAll
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
