package recents

import (
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "drawer.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecentsNewestFirst(t *testing.T) {
	s := openTemp(t)
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for i, p := range []string{"/a", "/b", "/c"} {
		if err := s.touch(p, base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("touch %s: %v", p, err)
		}
	}
	got, err := s.Recents(10)
	if err != nil {
		t.Fatalf("Recents: %v", err)
	}
	want := []string{"/c", "/b", "/a"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTouchUpdatesExisting(t *testing.T) {
	s := openTemp(t)
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	if err := s.touch("/a", base); err != nil {
		t.Fatalf("touch: %v", err)
	}
	if err := s.touch("/b", base.Add(time.Minute)); err != nil {
		t.Fatalf("touch: %v", err)
	}
	if err := s.touch("/a", base.Add(2*time.Minute)); err != nil {
		t.Fatalf("touch: %v", err)
	}
	got, err := s.Recents(10)
	if err != nil {
		t.Fatalf("Recents: %v", err)
	}
	if len(got) != 2 || got[0] != "/a" {
		t.Fatalf("expected /a promoted to front, got %v", got)
	}
}

func TestRecentsLimit(t *testing.T) {
	s := openTemp(t)
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for i, p := range []string{"/a", "/b", "/c"} {
		if err := s.touch(p, base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("touch: %v", err)
		}
	}
	got, err := s.Recents(2)
	if err != nil {
		t.Fatalf("Recents: %v", err)
	}
	if len(got) != 2 || got[0] != "/c" || got[1] != "/b" {
		t.Fatalf("expected two newest, got %v", got)
	}
}

func TestTouchPrunesOldest(t *testing.T) {
	s := openTemp(t)
	s.maxRecents = 3
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for i, p := range []string{"/a", "/b", "/c", "/d", "/e"} {
		if err := s.touch(p, base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("touch: %v", err)
		}
	}
	got, err := s.Recents(0)
	if err != nil {
		t.Fatalf("Recents: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected pruning to 3 entries, got %v", got)
	}
	if got[0] != "/e" || got[2] != "/c" {
		t.Fatalf("expected newest three, got %v", got)
	}
}

func TestForget(t *testing.T) {
	s := openTemp(t)
	if err := s.Touch("/a"); err != nil {
		t.Fatalf("Touch: %v", err)
	}
	if err := s.Forget("/a"); err != nil {
		t.Fatalf("Forget: %v", err)
	}
	got, err := s.Recents(0)
	if err != nil {
		t.Fatalf("Recents: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty recents, got %v", got)
	}
}

func TestFavoritesKeepInsertionOrder(t *testing.T) {
	s := openTemp(t)
	for _, p := range []string{"/home/alice", "/srv", "/tmp"} {
		if err := s.AddFavorite(p); err != nil {
			t.Fatalf("AddFavorite: %v", err)
		}
	}
	if err := s.AddFavorite("/srv"); err != nil {
		t.Fatalf("AddFavorite duplicate: %v", err)
	}
	got, err := s.Favorites()
	if err != nil {
		t.Fatalf("Favorites: %v", err)
	}
	want := []string{"/home/alice", "/srv", "/tmp"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("favorite %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRemoveFavorite(t *testing.T) {
	s := openTemp(t)
	for _, p := range []string{"/a", "/b"} {
		if err := s.AddFavorite(p); err != nil {
			t.Fatalf("AddFavorite: %v", err)
		}
	}
	if err := s.RemoveFavorite("/a"); err != nil {
		t.Fatalf("RemoveFavorite: %v", err)
	}
	got, err := s.Favorites()
	if err != nil {
		t.Fatalf("Favorites: %v", err)
	}
	if len(got) != 1 || got[0] != "/b" {
		t.Fatalf("expected only /b, got %v", got)
	}
}

func TestReopenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drawer.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Touch("/kept"); err != nil {
		t.Fatalf("Touch: %v", err)
	}
	if err := s.AddFavorite("/pinned"); err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	recents, err := s2.Recents(0)
	if err != nil || len(recents) != 1 || recents[0] != "/kept" {
		t.Fatalf("expected persisted recents, got %v err %v", recents, err)
	}
	favs, err := s2.Favorites()
	if err != nil || len(favs) != 1 || favs[0] != "/pinned" {
		t.Fatalf("expected persisted favorites, got %v err %v", favs, err)
	}
}
