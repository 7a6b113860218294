// Package migrations provides schema migrations for the offline cache.
package migrations

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
)

// Migration defines one schema migration step.
type Migration interface {
	// Version returns the schema version after this migration is applied.
	Version() int

	// Description returns what this migration does.
	Description() string

	// Up applies the migration. It must be idempotent.
	Up(db *sql.DB) error
}

var registry []Migration

// Register adds a migration, typically from an init() in a migration file.
func Register(m Migration) {
	registry = append(registry, m)
}

// All returns registered migrations sorted by version.
func All() []Migration {
	sorted := make([]Migration, len(registry))
	copy(sorted, registry)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Version() < sorted[j].Version()
	})

	return sorted
}

// LatestVersion returns the highest registered version, or 1 for the base schema.
func LatestVersion() int {
	latest := 1
	for _, m := range registry {
		if m.Version() > latest {
			latest = m.Version()
		}
	}

	return latest
}

// Pending returns migrations newer than the current version, in order.
func Pending(currentVersion int) []Migration {
	var pending []Migration

	for _, m := range All() {
		if m.Version() > currentVersion {
			pending = append(pending, m)
		}
	}

	return pending
}

// ExecStatements runs statements, tolerating reruns of idempotent DDL.
func ExecStatements(db *sql.DB, statements []string) error {
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			if !isIgnorable(err) {
				return fmt.Errorf("failed to execute statement: %w", err)
			}
		}
	}

	return nil
}

func isIgnorable(err error) bool {
	if err == nil {
		return true
	}

	msg := err.Error()

	return strings.Contains(msg, "duplicate column") || strings.Contains(msg, "already exists")
}
