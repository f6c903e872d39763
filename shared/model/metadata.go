package model

import "time"

// Metadata is embedded by every mutable table.
type Metadata struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Stamp sets both timestamps to now, in UTC, for a new row.
func (m *Metadata) Stamp(now time.Time) {
	m.CreatedAt = now.UTC()
	m.UpdatedAt = now.UTC()
}
