package store

import "time"

// Source identifies how an entry reached the converter
type Source string

const (
	SourceWheel   Source = "wheel"   // option picked on a wheel
	SourceCommand Source = "command" // free-text command
	SourceEntry   Source = "entry"   // quick-entry palette
)

// Entry is one authoritative update recorded in the session history
type Entry struct {
	ID         int64     `db:"id"`
	SessionID  string    `db:"session_id"`
	Source     Source    `db:"source"`
	Input      string    `db:"input"`        // text or option value as entered
	Unit       string    `db:"unit"`         // unit of Value
	Value      float64   `db:"value"`        // authoritative value in Unit
	MinPerMile float64   `db:"min_per_mile"` // canonical pace
	CreatedAt  time.Time `db:"created_at"`
}
