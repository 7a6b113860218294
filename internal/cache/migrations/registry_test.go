package migrations

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestAllSortedByVersion(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	for i := 1; i < len(all); i++ {
		require.Less(t, all[i-1].Version(), all[i].Version())
	}
}

func TestLatestVersionMatchesRegistry(t *testing.T) {
	all := All()
	require.Equal(t, all[len(all)-1].Version(), LatestVersion())
}

func TestPending(t *testing.T) {
	require.Len(t, Pending(1), len(All()))
	require.Empty(t, Pending(LatestVersion()))
}

func TestPendingSkipsApplied(t *testing.T) {
	pending := Pending(2)
	for _, m := range pending {
		require.Greater(t, m.Version(), 2)
	}
}

func TestExecStatementsToleratesReruns(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	statements := []string{
		`CREATE TABLE things (id INTEGER PRIMARY KEY, name TEXT)`,
		`CREATE INDEX idx_things_name ON things(name)`,
	}

	require.NoError(t, ExecStatements(db, statements))
	// Rerunning the same DDL must not fail.
	require.NoError(t, ExecStatements(db, statements))
}

func TestDescriptionsPresent(t *testing.T) {
	for _, m := range All() {
		require.NotEmpty(t, m.Description())
	}
}
