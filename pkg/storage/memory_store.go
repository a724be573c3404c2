package storage

import (
	"errors"
	"strings"
	"sync"
)

// MemoryStore keeps history in RAM behind a mutex. Suited to tests,
// demos, and single-process hosts that don't need persistence.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry // newest first
}

// NewMemoryStore creates an empty in-memory history store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make([]Entry, 0)}
}

// Save prepends the entry and trims the list to the retention cap.
func (m *MemoryStore) Save(entry Entry) error {
	if entry.ID == "" {
		return errors.New("entry id is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append([]Entry{entry}, m.entries...)
	if len(m.entries) > MaxEntries {
		m.entries = m.entries[:MaxEntries]
	}
	return nil
}

// List returns a copy of the entries, newest first.
func (m *MemoryStore) List() ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

// Get looks an entry up by id.
func (m *MemoryStore) Get(id string) (Entry, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, e := range m.entries {
		if e.ID == id {
			return e, true, nil
		}
	}
	return Entry{}, false, nil
}

// Delete removes the entry with the given id, if present.
func (m *MemoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, e := range m.entries {
		if e.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

// Search filters entries by a case-insensitive substring of the input.
func (m *MemoryStore) Search(query string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]Entry, 0)
	for _, e := range m.entries {
		if strings.Contains(strings.ToLower(e.Input), q) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Clear drops all entries.
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = m.entries[:0]
	return nil
}
