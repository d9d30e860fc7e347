package tab

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/drawerfm/drawer/internal/mimetype"
)

// Item is one entry in a tab listing.
type Item struct {
	Name     string
	Path     string
	IsDir    bool
	Hidden   bool
	Size     int64
	Modified time.Time
	Mime     string

	Selected bool

	// Trash listings carry where the entry came from and when it was
	// deleted.
	Trashed   bool
	OrigPath  string
	DeletedAt time.Time
}

// IconName resolves the themed icon the item is drawn with.
func (it Item) IconName() string {
	return mimetype.IconName(it.Mime)
}

// CanGallery reports whether the item can appear in the gallery
// preview.
func (it Item) CanGallery() bool {
	return strings.HasPrefix(it.Mime, "image/")
}

// DisplaySize renders the size column: humanized for files, a dash for
// directories.
func (it Item) DisplaySize() string {
	if it.IsDir {
		return "-"
	}
	return humanize.IBytes(uint64(it.Size))
}
