// Package state holds the window-level stores the update loop reads
// and writes: the path clipboard and the operation history. Stores
// clone on the way in and out so callers can never alias internals.
package state

type ClipboardStore interface {
	Set(paths []string, move bool)
	Paths() ([]string, bool)
	Clear()
	Empty() bool
}

type clipboardStore struct {
	paths []string
	move  bool
}

func NewClipboardStore() ClipboardStore {
	return &clipboardStore{}
}

func (s *clipboardStore) Set(paths []string, move bool) {
	s.paths = clonePaths(paths)
	s.move = move
}

// Paths returns the clipboard contents and whether a paste should move
// rather than copy.
func (s *clipboardStore) Paths() ([]string, bool) {
	return clonePaths(s.paths), s.move
}

func (s *clipboardStore) Clear() {
	s.paths = nil
	s.move = false
}

func (s *clipboardStore) Empty() bool {
	return len(s.paths) == 0
}

func clonePaths(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	dup := make([]string, len(paths))
	copy(dup, paths)
	return dup
}
