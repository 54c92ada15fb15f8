package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// RecordEntry inserts an entry into the current session and sets its ID.
// A zero CreatedAt is stamped with the current time.
func (db *DB) RecordEntry(e *Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.SessionID = db.sessionID

	result, err := db.Exec(`
		INSERT INTO entries (session_id, source, input, unit, value, min_per_mile, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.SessionID, string(e.Source), e.Input, e.Unit, e.Value, e.MinPerMile,
		e.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading entry id: %w", err)
	}
	e.ID = id
	return nil
}

// GetEntry retrieves an entry by ID
func (db *DB) GetEntry(id int64) (*Entry, error) {
	row := db.QueryRow(`
		SELECT id, session_id, source, input, unit, value, min_per_mile, created_at
		FROM entries
		WHERE id = ?
	`, id)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// RecentEntries returns up to limit entries of the current session, newest first
func (db *DB) RecentEntries(limit int) ([]Entry, error) {
	rows, err := db.Query(`
		SELECT id, session_id, source, input, unit, value, min_per_mile, created_at
		FROM entries
		WHERE session_id = ?
		ORDER BY id DESC
		LIMIT ?
	`, db.sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// CountEntries returns the number of entries in the current session
func (db *DB) CountEntries() (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM entries WHERE session_id = ?`, db.sessionID).Scan(&n)
	return n, err
}

// ClearEntries deletes every entry of the current session
func (db *DB) ClearEntries() error {
	_, err := db.Exec(`DELETE FROM entries WHERE session_id = ?`, db.sessionID)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*Entry, error) {
	var e Entry
	var source, createdAt string
	if err := s.Scan(&e.ID, &e.SessionID, &source, &e.Input, &e.Unit, &e.Value, &e.MinPerMile, &createdAt); err != nil {
		return nil, err
	}
	e.Source = Source(source)

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	e.CreatedAt = t
	return &e, nil
}
