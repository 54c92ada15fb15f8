package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrEntryNotFound is returned when a history entry doesn't exist
var ErrEntryNotFound = errors.New("entry not found")

// DB is the session history database. It lives in memory and is gone when
// the process exits.
type DB struct {
	*sql.DB
	sessionID string
}

// Open opens a fresh in-memory SQLite database and starts a session in it
func Open() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Every pooled connection would get its own :memory: database.
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := migrate(sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	db := &DB{DB: sqlDB}
	if err := db.startSession(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("starting session: %w", err)
	}
	return db, nil
}

// SessionID returns the identifier of the current session
func (db *DB) SessionID() string {
	return db.sessionID
}

func (db *DB) startSession() error {
	id := uuid.NewString()
	if _, err := db.Exec(`INSERT INTO sessions (id) VALUES (?)`, id); err != nil {
		return err
	}
	db.sessionID = id
	return nil
}
