package migrations

import "database/sql"

func init() {
	Register(&v3FetchedAt{})
}

// v3FetchedAt records when each collection snapshot was taken, so stale
// offline data can be labeled with its age.
type v3FetchedAt struct{}

func (m *v3FetchedAt) Version() int {
	return 3
}

func (m *v3FetchedAt) Description() string {
	return "Track per-collection snapshot timestamps"
}

func (m *v3FetchedAt) Up(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			collection TEXT PRIMARY KEY,
			fetched_at INTEGER NOT NULL
		)`,
	}

	return ExecStatements(db, statements)
}
