// Package trash implements the application trash bin: trashed items
// live in a flat directory alongside JSON sidecars recording where
// they came from and when they were deleted.
package trash

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Item describes a trashed entry, stored next to it as a sidecar.
type Item struct {
	Name      string    `json:"name"`
	TrashPath string    `json:"trash_path"`
	OrigPath  string    `json:"orig_path"`
	DeletedAt time.Time `json:"deleted_at"`
	IsDir     bool      `json:"is_dir"`
}

const metaSuffix = ".meta.json"

// Bin is a trash directory.
type Bin struct {
	dir string
}

// NewBin returns a bin rooted at dir. The directory is created on
// first use.
func NewBin(dir string) *Bin {
	return &Bin{dir: dir}
}

// Default resolves the user trash directory: XDG data dir when set,
// then the home data dir, then a dot directory in the working dir.
func Default() *Bin {
	if td := os.Getenv("XDG_DATA_HOME"); td != "" {
		return NewBin(filepath.Join(td, "drawer", "trash"))
	}
	if h, err := os.UserHomeDir(); err == nil {
		return NewBin(filepath.Join(h, ".local", "share", "drawer", "trash"))
	}
	return NewBin(".drawer_trash")
}

// Dir reports the bin's directory.
func (b *Bin) Dir() string { return b.dir }

func uniqueSuffix() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("-%d", time.Now().UnixNano())
	}
	return "-" + hex.EncodeToString(buf)
}

// Move moves src into the bin, renaming where possible and falling
// back to copy-and-remove across devices. The basename is kept, with a
// short unique suffix on collision.
func (b *Bin) Move(src string) (*Item, error) {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create trash dir: %w", err)
	}
	fi, err := os.Stat(src)
	if err != nil {
		return nil, err
	}
	base := filepath.Base(src)
	dst := filepath.Join(b.dir, base)
	if _, err := os.Stat(dst); err == nil {
		dst += uniqueSuffix()
	}
	item := &Item{
		Name:      base,
		TrashPath: dst,
		OrigPath:  src,
		DeletedAt: time.Now(),
		IsDir:     fi.IsDir(),
	}
	if err := move(src, dst, fi.IsDir()); err != nil {
		return nil, fmt.Errorf("trash %s: %w", src, err)
	}
	if err := writeMeta(item); err != nil {
		return item, err
	}
	return item, nil
}

// Restore moves a trashed item back to its original path, suffixing
// the destination if something now occupies it.
func (b *Bin) Restore(item *Item) error {
	if item == nil {
		return fmt.Errorf("no item to restore")
	}
	dst := item.OrigPath
	if _, err := os.Stat(dst); err == nil {
		dst += uniqueSuffix()
	}
	fi, err := os.Stat(item.TrashPath)
	if err != nil {
		return err
	}
	if err := move(item.TrashPath, dst, fi.IsDir()); err != nil {
		return fmt.Errorf("restore %s: %w", item.Name, err)
	}
	return os.Remove(item.TrashPath + metaSuffix)
}

// List reads every sidecar in the bin. Entries whose sidecar cannot be
// parsed are skipped.
func (b *Bin) List() ([]Item, error) {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var items []Item
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), metaSuffix) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(b.dir, e.Name()))
		if err != nil {
			continue
		}
		var item Item
		if err := json.Unmarshal(data, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// Count reports how many items the bin holds.
func (b *Bin) Count() int {
	items, err := b.List()
	if err != nil {
		return 0
	}
	return len(items)
}

// EmptyAll deletes everything in the bin.
func (b *Bin) EmptyAll() error {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(b.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func move(src, dst string, dir bool) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if dir {
		if err := copyDir(src, dst); err != nil {
			return err
		}
		return os.RemoveAll(src)
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

func writeMeta(item *Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return os.WriteFile(item.TrashPath+metaSuffix, data, 0o644)
}

func copyFile(src, dst string) error {
	sf, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sf.Close()
	fi, err := sf.Stat()
	if err != nil {
		return err
	}
	df, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fi.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(df, sf); err != nil {
		df.Close()
		return err
	}
	return df.Close()
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

// Entries reports the entry count of the default user bin. Menu
// builders use it to decide whether emptying the trash is offered.
func Entries() int {
	return Default().Count()
}
