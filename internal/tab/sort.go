package tab

import (
	"sort"
	"strings"
)

// SortField names the column a listing is ordered by.
type SortField int

const (
	SortName SortField = iota
	SortModified
	SortSize
	SortTrashedOn
)

// String names the field for traces and menu labels.
func (f SortField) String() string {
	switch f {
	case SortName:
		return "name"
	case SortModified:
		return "modified"
	case SortSize:
		return "size"
	case SortTrashedOn:
		return "trashed-on"
	default:
		return "unknown"
	}
}

// SortItems orders items in place by field and direction. With
// foldersFirst, directories group before files regardless of field;
// size ordering always groups directories first since their sizes are
// not comparable to file sizes. The sort is stable so equal keys keep
// their listing order.
func SortItems(items []Item, field SortField, ascending, foldersFirst bool) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if (foldersFirst || field == SortSize) && a.IsDir != b.IsDir {
			return a.IsDir
		}
		c := compareItems(a, b, field)
		if !ascending {
			return c > 0
		}
		return c < 0
	})
}

func compareItems(a, b Item, field SortField) int {
	switch field {
	case SortModified:
		return a.Modified.Compare(b.Modified)
	case SortSize:
		if a.IsDir && b.IsDir {
			return compareNames(a.Name, b.Name)
		}
		switch {
		case a.Size < b.Size:
			return -1
		case a.Size > b.Size:
			return 1
		}
		return 0
	case SortTrashedOn:
		return a.DeletedAt.Compare(b.DeletedAt)
	default:
		return compareNames(a.Name, b.Name)
	}
}

func compareNames(a, b string) int {
	fa, fb := strings.ToLower(a), strings.ToLower(b)
	if fa != fb {
		return strings.Compare(fa, fb)
	}
	return strings.Compare(a, b)
}
