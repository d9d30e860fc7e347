package tab

import (
	"fmt"
	"path/filepath"
	"strings"
)

// LocationKind discriminates the places a tab can show.
type LocationKind int

const (
	LocationPath LocationKind = iota
	LocationTrash
	LocationRecents
	LocationSearch
)

// Location identifies what a tab is looking at. Locations are value
// types and compare with ==.
type Location struct {
	Kind  LocationKind
	Path  string
	Query string
}

// PathLocation points a tab at a directory.
func PathLocation(path string) Location {
	return Location{Kind: LocationPath, Path: filepath.Clean(path)}
}

// TrashLocation points a tab at the trash bin.
func TrashLocation() Location {
	return Location{Kind: LocationTrash}
}

// RecentsLocation points a tab at recently used files.
func RecentsLocation() Location {
	return Location{Kind: LocationRecents}
}

// SearchLocation points a tab at search results for query under root.
func SearchLocation(root, query string) Location {
	return Location{Kind: LocationSearch, Path: filepath.Clean(root), Query: query}
}

// Title is the short name shown on the tab strip and breadcrumb tail.
func (l Location) Title() string {
	switch l.Kind {
	case LocationTrash:
		return "Trash"
	case LocationRecents:
		return "Recents"
	case LocationSearch:
		return fmt.Sprintf("Search %q", l.Query)
	default:
		if l.Path == string(filepath.Separator) {
			return l.Path
		}
		return filepath.Base(l.Path)
	}
}

// String renders the full location for headers and traces.
func (l Location) String() string {
	switch l.Kind {
	case LocationTrash:
		return "trash://"
	case LocationRecents:
		return "recents://"
	case LocationSearch:
		return fmt.Sprintf("search://%s?q=%s", l.Path, l.Query)
	default:
		return l.Path
	}
}

// Ancestors lists the location chain from the root down to this
// location, for breadcrumb rendering. Non-path locations are their own
// only ancestor.
func (l Location) Ancestors() []Location {
	if l.Kind != LocationPath && l.Kind != LocationSearch {
		return []Location{l}
	}
	path := l.Path
	sep := string(filepath.Separator)
	if path == "" {
		path = sep
	}
	parts := strings.Split(strings.Trim(path, sep), sep)
	out := []Location{PathLocation(sep)}
	cur := sep
	for _, part := range parts {
		if part == "" {
			continue
		}
		cur = filepath.Join(cur, part)
		out = append(out, PathLocation(cur))
	}
	if l.Kind == LocationSearch {
		out = append(out, l)
	}
	return out
}

// CanSearch reports whether the location supports scoped search.
func (l Location) CanSearch() bool {
	return l.Kind == LocationPath || l.Kind == LocationSearch
}
