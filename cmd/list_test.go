package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomlog/roomlog/internal/api"
	"github.com/roomlog/roomlog/internal/feed"
)

func TestParseOutcome(t *testing.T) {
	escaped, err := parseOutcome("any")
	require.NoError(t, err)
	assert.Nil(t, escaped)

	escaped, err = parseOutcome("")
	require.NoError(t, err)
	assert.Nil(t, escaped)

	escaped, err = parseOutcome("escaped")
	require.NoError(t, err)
	require.NotNil(t, escaped)
	assert.True(t, *escaped)

	escaped, err = parseOutcome("failed")
	require.NoError(t, err)
	require.NotNil(t, escaped)
	assert.False(t, *escaped)

	_, err = parseOutcome("maybe")
	assert.Error(t, err)
}

func TestBuildQuery(t *testing.T) {
	query, err := buildQuery("vault", "escaped", "2026-03-01", "2026-03-31")
	require.NoError(t, err)

	assert.Equal(t, "vault", query.Keyword)
	require.NotNil(t, query.Escaped)
	assert.True(t, *query.Escaped)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), query.From)
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), query.To)
}

func TestBuildQueryEmpty(t *testing.T) {
	query, err := buildQuery("", "any", "", "")
	require.NoError(t, err)
	assert.True(t, query.IsZero())
}

func TestBuildQueryBadDate(t *testing.T) {
	_, err := buildQuery("", "any", "03/01/2026", "")
	assert.Error(t, err)
}

func TestBuildQueryInvertedRange(t *testing.T) {
	_, err := buildQuery("", "any", "2026-03-31", "2026-03-01")
	assert.ErrorIs(t, err, feed.ErrDateRangeInverted)
}

func TestCommandName(t *testing.T) {
	assert.Equal(t, "diary", commandName(api.CollectionDiaries))
	assert.Equal(t, "party", commandName(api.CollectionParties))
	assert.Equal(t, "other", commandName("other"))
}

func TestRootCommandWiring(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"diary", "party", "interactive", "cache", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestListCommandFlags(t *testing.T) {
	cmd := newListCmd(api.CollectionDiaries)

	for _, flag := range []string{"keyword", "outcome", "from", "to", "limit", "output"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "missing flag %s", flag)
	}
}
