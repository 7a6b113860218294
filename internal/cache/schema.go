package cache

import (
	"database/sql"
	"fmt"

	"github.com/roomlog/roomlog/internal/cache/migrations"
	"github.com/roomlog/roomlog/internal/logger"
)

// Base schema (v1).
const (
	createMetadataTable = `
		CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`

	createItemsTable = `
		CREATE TABLE IF NOT EXISTS items (
			collection TEXT NOT NULL,
			id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			payload TEXT NOT NULL,
			PRIMARY KEY (collection, id)
		)`

	createItemsIndexes = `
		CREATE INDEX IF NOT EXISTS idx_items_collection_position ON items(collection, position)`
)

func initSchema(db *sql.DB) error {
	statements := []string{
		createMetadataTable,
		createItemsTable,
		createItemsIndexes,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}

	return nil
}

func ensureSchema(db *sql.DB, path string) error {
	if err := initSchema(db); err != nil {
		return err
	}

	current, err := schemaVersion(db)
	if err != nil {
		return err
	}

	if current == 0 {
		// Fresh database: run everything and stamp the latest version.
		for _, m := range migrations.All() {
			if err := m.Up(db); err != nil {
				return fmt.Errorf("migration v%d failed: %w", m.Version(), err)
			}
		}

		return setSchemaVersion(db, migrations.LatestVersion())
	}

	pending := migrations.Pending(current)
	if len(pending) == 0 {
		return nil
	}

	logger.Log.Debugf("Migrating cache schema from v%d to v%d", current, migrations.LatestVersion())

	for _, m := range pending {
		logger.Log.Debugf("Applying migration v%d: %s", m.Version(), m.Description())

		if err := m.Up(db); err != nil {
			return fmt.Errorf("migration v%d failed: %w", m.Version(), err)
		}
	}

	return setSchemaVersion(db, migrations.LatestVersion())
}

// schemaVersion returns 0 for a fresh database.
func schemaVersion(db *sql.DB) (int, error) {
	var version int

	err := db.QueryRow("SELECT value FROM metadata WHERE key = 'schema_version'").Scan(&version)
	if err == sql.ErrNoRows {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}

	return version, nil
}

func setSchemaVersion(db *sql.DB, version int) error {
	_, err := db.Exec("INSERT OR REPLACE INTO metadata (key, value) VALUES ('schema_version', ?)", version)
	if err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}

	return nil
}
