package migrations

import "database/sql"

func init() {
	Register(&v2SearchHistory{})
}

// v2SearchHistory adds a table of recent filter keywords.
type v2SearchHistory struct{}

func (m *v2SearchHistory) Version() int {
	return 2
}

func (m *v2SearchHistory) Description() string {
	return "Add search history table for recent filter keywords"
}

func (m *v2SearchHistory) Up(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS search_history (
			keyword TEXT PRIMARY KEY,
			last_used INTEGER NOT NULL,
			use_count INTEGER DEFAULT 1
		)`,
		`CREATE INDEX IF NOT EXISTS idx_search_history_last_used ON search_history(last_used DESC)`,
	}

	return ExecStatements(db, statements)
}
