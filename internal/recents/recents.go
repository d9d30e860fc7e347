// Package recents persists the recently-used list and the sidebar
// favorites in a small bolt database under the user data dir.
package recents

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	bucketRecents   = "recents"
	bucketFavorites = "favorites"
)

// defaultMaxRecents bounds the recently-used list; the oldest entries
// are pruned past it.
const defaultMaxRecents = 500

var initDB = []func(tx *bolt.Tx) error{
	func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketRecents))
		return err
	},
	func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketFavorites))
		return err
	},
}

// Store wraps the bolt database.
type Store struct {
	db         *bolt.DB
	maxRecents int
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	s := &Store{db: db, maxRecents: defaultMaxRecents}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, fn := range initDB {
			if err := fn(tx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// DefaultPath resolves the database location under the user data dir.
func DefaultPath() string {
	if td := os.Getenv("XDG_DATA_HOME"); td != "" {
		return filepath.Join(td, "drawer", "drawer.db")
	}
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".local", "share", "drawer", "drawer.db")
	}
	return ".drawer.db"
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func marshalTime(t time.Time) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(t.UnixNano()))
	return buf
}

func unmarshalTime(buf []byte) time.Time {
	if len(buf) != 8 {
		return time.Time{}
	}
	return time.Unix(0, int64(binary.BigEndian.Uint64(buf)))
}

// Touch records that path was just used.
func (s *Store) Touch(path string) error {
	return s.touch(path, time.Now())
}

func (s *Store) touch(path string, at time.Time) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRecents))
		if err := b.Put([]byte(path), marshalTime(at)); err != nil {
			return err
		}
		return pruneRecents(b, s.maxRecents)
	})
}

func pruneRecents(b *bolt.Bucket, max int) error {
	type entry struct {
		path string
		at   time.Time
	}
	var entries []entry
	err := b.ForEach(func(k, v []byte) error {
		entries = append(entries, entry{path: string(k), at: unmarshalTime(v)})
		return nil
	})
	if err != nil {
		return err
	}
	if len(entries) <= max {
		return nil
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].at.Before(entries[j].at) })
	for _, e := range entries[:len(entries)-max] {
		if err := b.Delete([]byte(e.path)); err != nil {
			return err
		}
	}
	return nil
}

// Recents lists up to n recently used paths, newest first. A non
// positive n lists everything.
func (s *Store) Recents(n int) ([]string, error) {
	type entry struct {
		path string
		at   time.Time
	}
	var entries []entry
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRecents))
		return b.ForEach(func(k, v []byte) error {
			entries = append(entries, entry{path: string(k), at: unmarshalTime(v)})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].at.After(entries[j].at) })
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.path
	}
	return paths, nil
}

// Forget drops a path from the recently-used list.
func (s *Store) Forget(path string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketRecents)).Delete([]byte(path))
	})
}

// AddFavorite appends a path to the sidebar favorites, keeping
// insertion order. Adding an existing favorite is a no-op.
func (s *Store) AddFavorite(path string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketFavorites))
		var exists bool
		err := b.ForEach(func(_, v []byte) error {
			if string(v) == path {
				exists = true
			}
			return nil
		})
		if err != nil || exists {
			return err
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		return b.Put(key, []byte(path))
	})
}

// RemoveFavorite drops a path from the favorites.
func (s *Store) RemoveFavorite(path string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketFavorites))
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			if string(v) == path {
				if err := c.Delete(); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// Favorites lists the sidebar favorites in insertion order.
func (s *Store) Favorites() ([]string, error) {
	var paths []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketFavorites)).ForEach(func(_, v []byte) error {
			paths = append(paths, string(v))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
