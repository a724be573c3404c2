package storage

import "github.com/neroguard/neroguard/pkg/models"

// MaxEntries is the history retention cap. Saving beyond it evicts the
// oldest entries first.
const MaxEntries = 50

// Entry couples an analyzed input with its result under an opaque id.
type Entry struct {
	ID     string                 `json:"id"`
	Input  string                 `json:"input"`
	Result *models.AnalysisResult `json:"result"`
}

// HistoryStore defines the interface for persisting analysis history.
// Implementations can use any backend: in-memory, SQLite, Redis, etc.
//
// All implementations keep entries in newest-first order and retain at
// most MaxEntries, evicting oldest first on Save.
type HistoryStore interface {
	// Save persists a new entry as the most recent one, evicting the
	// oldest entries beyond the retention cap.
	Save(entry Entry) error

	// List returns all entries, newest first.
	List() ([]Entry, error)

	// Get retrieves one entry by id. Returns ok=false when the id is
	// unknown (not an error).
	Get(id string) (Entry, bool, error)

	// Delete removes one entry by id. Deleting an unknown id is a no-op.
	Delete(id string) error

	// Search returns the entries whose input contains the query,
	// case-insensitively, newest first. An empty query matches all.
	Search(query string) ([]Entry, error)

	// Clear removes all entries.
	Clear() error
}
