package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/timekeep/timekeep-go/pkg/timer"
)

// Collection names served by the backend.
const (
	CollectionTimers        = "timers"
	CollectionCurrentTimers = "currentTimers"
)

// Store errors.
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource already exists")
)

// Store provides SQLite persistence for timer resources.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewStore creates a new store with the given database path.
// Use ":memory:" for an in-memory database.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Each connection to ":memory:" is its own database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	s := &Store{db: db}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS resources (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		collection TEXT NOT NULL,
		id TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (collection, id)
	);

	CREATE TABLE IF NOT EXISTS sequences (
		collection TEXT PRIMARY KEY,
		next_id INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_resources_collection ON resources(collection);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// List returns every resource in collection in insertion order.
func (s *Store) List(collection string) ([]timer.Timer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT body FROM resources WHERE collection = ? ORDER BY seq
	`, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []timer.Timer{}
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		t, err := timer.Decode([]byte(body))
		if err != nil {
			return nil, fmt.Errorf("corrupt %s record: %w", collection, err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Get returns the resource with id, or ErrNotFound.
func (s *Store) Get(collection, id string) (timer.Timer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.get(collection, id)
}

func (s *Store) get(collection, id string) (timer.Timer, error) {
	var body string
	err := s.db.QueryRow(`
		SELECT body FROM resources WHERE collection = ? AND id = ?
	`, collection, id).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return timer.Decode([]byte(body))
}

// Create stores t in collection. A client-supplied id is kept; otherwise the
// next sequential id is assigned as a string. A duplicate id is ErrConflict.
func (s *Store) Create(collection string, t timer.Timer) (timer.Timer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	created := t.Clone()
	if created == nil {
		created = timer.Timer{}
	}
	if created.ID() == nil {
		seq, err := nextID(tx, collection)
		if err != nil {
			return nil, err
		}
		created[timer.FieldID] = strconv.FormatInt(seq, 10)
	}
	id := timer.PathID(created.ID())

	body, err := json.Marshal(created)
	if err != nil {
		return nil, err
	}

	var exists int
	err = tx.QueryRow(`
		SELECT COUNT(*) FROM resources WHERE collection = ? AND id = ?
	`, collection, id).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists > 0 {
		return nil, fmt.Errorf("%w: %s/%s", ErrConflict, collection, id)
	}

	_, err = tx.Exec(`
		INSERT INTO resources (collection, id, body) VALUES (?, ?, ?)
	`, collection, id, string(body))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return created, nil
}

// Replace merges t into the stored resource with id. The stored id is kept
// regardless of t's id field.
func (s *Store) Replace(collection, id string, t timer.Timer) (timer.Timer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.get(collection, id)
	if err != nil {
		return nil, err
	}

	storedID := current.ID()
	for k, v := range t {
		current[k] = v
	}
	current[timer.FieldID] = storedID

	body, err := json.Marshal(current)
	if err != nil {
		return nil, err
	}

	_, err = s.db.Exec(`
		UPDATE resources SET body = ?, updated_at = CURRENT_TIMESTAMP
		WHERE collection = ? AND id = ?
	`, string(body), collection, id)
	if err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes the resource with id and returns it.
func (s *Store) Delete(collection, id string) (timer.Timer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.get(collection, id)
	if err != nil {
		return nil, err
	}

	_, err = s.db.Exec(`
		DELETE FROM resources WHERE collection = ? AND id = ?
	`, collection, id)
	if err != nil {
		return nil, err
	}
	return current, nil
}

// Count returns the number of resources in collection.
func (s *Store) Count(collection string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM resources WHERE collection = ?
	`, collection).Scan(&count)
	return count, err
}

// nextID reserves the next sequential id for collection. Ids already taken
// by client-supplied values are skipped.
func nextID(tx *sql.Tx, collection string) (int64, error) {
	_, err := tx.Exec(`
		INSERT INTO sequences (collection, next_id) VALUES (?, 1)
		ON CONFLICT(collection) DO NOTHING
	`, collection)
	if err != nil {
		return 0, err
	}

	for {
		var seq int64
		if err := tx.QueryRow(`
			SELECT next_id FROM sequences WHERE collection = ?
		`, collection).Scan(&seq); err != nil {
			return 0, err
		}
		if _, err := tx.Exec(`
			UPDATE sequences SET next_id = next_id + 1 WHERE collection = ?
		`, collection); err != nil {
			return 0, err
		}

		var taken int
		if err := tx.QueryRow(`
			SELECT COUNT(*) FROM resources WHERE collection = ? AND id = ?
		`, collection, strconv.FormatInt(seq, 10)).Scan(&taken); err != nil {
			return 0, err
		}
		if taken == 0 {
			return seq, nil
		}
	}
}
