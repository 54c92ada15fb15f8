package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Sessions (one per process run)
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			started_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Entries (every authoritative update of the converter)
		`CREATE TABLE IF NOT EXISTS entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			source TEXT NOT NULL,
			input TEXT NOT NULL,
			unit TEXT NOT NULL,
			value REAL NOT NULL,
			min_per_mile REAL NOT NULL,
			created_at TEXT NOT NULL,
			FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
		)`,

		`CREATE INDEX IF NOT EXISTS idx_entries_session ON entries(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_created ON entries(created_at)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
