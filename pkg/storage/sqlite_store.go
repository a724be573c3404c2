package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists history in a local SQLite database. Results are
// stored as a JSON payload column, so the schema never has to track the
// result shape field by field.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the history database at path and applies
// the schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`PRAGMA journal_mode=WAL;`,
		`CREATE TABLE IF NOT EXISTS entries (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			input TEXT NOT NULL,
			result_json TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Save inserts the entry and evicts everything beyond the retention cap,
// oldest first.
func (s *SQLiteStore) Save(entry Entry) error {
	if entry.ID == "" {
		return fmt.Errorf("entry id is empty")
	}

	payload, err := json.Marshal(entry.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if _, err := s.db.Exec(
		`INSERT INTO entries (id, input, result_json) VALUES (?, ?, ?)`,
		entry.ID, entry.Input, string(payload),
	); err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}

	if _, err := s.db.Exec(
		`DELETE FROM entries WHERE seq NOT IN (
			SELECT seq FROM entries ORDER BY seq DESC LIMIT ?
		)`, MaxEntries,
	); err != nil {
		return fmt.Errorf("evict entries: %w", err)
	}
	return nil
}

// List returns all entries, newest first.
func (s *SQLiteStore) List() ([]Entry, error) {
	rows, err := s.db.Query(`SELECT id, input, result_json FROM entries ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	out := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		var payload string
		if err := rows.Scan(&e.ID, &e.Input, &payload); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &e.Result); err != nil {
			return nil, fmt.Errorf("unmarshal result: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Get looks an entry up by id.
func (s *SQLiteStore) Get(id string) (Entry, bool, error) {
	var e Entry
	var payload string
	err := s.db.QueryRow(
		`SELECT id, input, result_json FROM entries WHERE id = ?`, id,
	).Scan(&e.ID, &e.Input, &payload)
	if err == sql.ErrNoRows {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("query entry: %w", err)
	}
	if err := json.Unmarshal([]byte(payload), &e.Result); err != nil {
		return Entry{}, false, fmt.Errorf("unmarshal result: %w", err)
	}
	return e, true, nil
}

// Delete removes the entry with the given id, if present.
func (s *SQLiteStore) Delete(id string) error {
	if _, err := s.db.Exec(`DELETE FROM entries WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// Search filters entries by a case-insensitive substring of the input.
// The table is capped at MaxEntries rows, so filtering in process keeps
// the matching semantics identical to MemoryStore.
func (s *SQLiteStore) Search(query string) ([]Entry, error) {
	entries, err := s.List()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	out := make([]Entry, 0)
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Input), q) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Clear removes all entries.
func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	return nil
}
