// Package prefs remembers drawer state between runs: the desktop open/closed
// intent per side and a small key/value table (last route).
package prefs

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Dicklesworthstone/layout_drawer/pkg/layout"
)

// KeyLastRoute stores the route shown when the shell exited.
const KeyLastRoute = "last_route"

// Store handles preference persistence.
type Store struct {
	db *sql.DB
}

// Open opens or creates the preferences database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// one writer; the shell is single-threaded anyway
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// TryOpen opens the store, logging and returning nil on failure. A nil
// *Store is usable: reads miss and writes are dropped.
func TryOpen(dbPath string) *Store {
	if dbPath == "" {
		return nil
	}
	s, err := Open(dbPath)
	if err != nil {
		log.Printf("Warning: could not open preferences: %v", err)
		return nil
	}
	return s
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS drawer_state (
		side TEXT PRIMARY KEY,
		showing INTEGER NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Showing returns the remembered desktop intent for side. ok is false when
// nothing has been saved yet.
func (s *Store) Showing(side layout.Side) (showing, ok bool, err error) {
	if s == nil {
		return false, false, nil
	}
	err = s.db.QueryRow(`SELECT showing FROM drawer_state WHERE side = ?`, string(side)).Scan(&showing)
	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("load %s drawer state: %w", side, err)
	}
	return showing, true, nil
}

// SetShowing saves the desktop intent for side.
func (s *Store) SetShowing(side layout.Side, showing bool) error {
	if s == nil {
		return nil
	}
	_, err := s.db.Exec(`
		INSERT INTO drawer_state (side, showing, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(side) DO UPDATE SET showing = excluded.showing, updated_at = excluded.updated_at
	`, string(side), showing, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save %s drawer state: %w", side, err)
	}
	return nil
}

// Get returns the value stored under key, or "" when missing.
func (s *Store) Get(key string) (string, error) {
	if s == nil {
		return "", nil
	}
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key.
func (s *Store) Set(key, value string) error {
	if s == nil {
		return nil
	}
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// InitialValue returns the drawer Value option for side: the remembered
// intent, or nil when there is none or it cannot be read.
func (s *Store) InitialValue(side layout.Side) *bool {
	showing, ok, err := s.Showing(side)
	if err != nil {
		log.Printf("Warning: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	return &showing
}
