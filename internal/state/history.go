package state

import "time"

// historyCap bounds the operation log; older entries fall off.
const historyCap = 100

// HistoryEntry records one completed file operation.
type HistoryEntry struct {
	Time   time.Time
	Action string
	Paths  []string
	Err    string
}

type HistoryStore interface {
	Push(entry HistoryEntry)
	Entries() []HistoryEntry
	Len() int
}

type historyStore struct {
	entries []HistoryEntry
}

func NewHistoryStore() HistoryStore {
	return &historyStore{}
}

func (s *historyStore) Push(entry HistoryEntry) {
	entry.Paths = clonePaths(entry.Paths)
	s.entries = append(s.entries, entry)
	if len(s.entries) > historyCap {
		s.entries = s.entries[len(s.entries)-historyCap:]
	}
}

// Entries returns the log newest first.
func (s *historyStore) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(s.entries))
	for i, e := range s.entries {
		e.Paths = clonePaths(e.Paths)
		out[len(s.entries)-1-i] = e
	}
	return out
}

func (s *historyStore) Len() int {
	return len(s.entries)
}
