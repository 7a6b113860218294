package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool {
	return &v
}

func TestQueryClear(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	full := Query{Keyword: "vault", Escaped: boolPtr(true), From: from, To: to}

	cleared := full.Clear(FieldKeyword)
	assert.Empty(t, cleared.Keyword)
	assert.NotNil(t, cleared.Escaped)

	cleared = full.Clear(FieldEscaped)
	assert.Nil(t, cleared.Escaped)
	assert.Equal(t, "vault", cleared.Keyword)

	cleared = full.Clear(FieldDateRange)
	assert.True(t, cleared.From.IsZero())
	assert.True(t, cleared.To.IsZero())

	// The receiver is untouched.
	assert.Equal(t, "vault", full.Keyword)
	assert.NotNil(t, full.Escaped)
}

func TestQueryIsZero(t *testing.T) {
	assert.True(t, Query{}.IsZero())
	assert.True(t, Query{Keyword: "   "}.IsZero())
	assert.False(t, Query{Keyword: "x"}.IsZero())
	assert.False(t, Query{Escaped: boolPtr(false)}.IsZero())
	assert.False(t, Query{From: time.Now()}.IsZero())
}

func TestQueryEqual(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b Query
		want bool
	}{
		{"both zero", Query{}, Query{}, true},
		{"keyword whitespace ignored", Query{Keyword: "x "}, Query{Keyword: "x"}, true},
		{"different keyword", Query{Keyword: "a"}, Query{Keyword: "b"}, false},
		{"nil vs set outcome", Query{}, Query{Escaped: boolPtr(true)}, false},
		{"same outcome", Query{Escaped: boolPtr(true)}, Query{Escaped: boolPtr(true)}, true},
		{"opposite outcome", Query{Escaped: boolPtr(true)}, Query{Escaped: boolPtr(false)}, false},
		{"same date", Query{From: from}, Query{From: from}, true},
		{"different date", Query{From: from}, Query{From: from.AddDate(0, 0, 1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestQueryValidate(t *testing.T) {
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, Query{}.Validate())
	assert.NoError(t, Query{From: to, To: from}.Validate())
	assert.ErrorIs(t, Query{From: from, To: to}.Validate(), ErrDateRangeInverted)

	// Open-ended ranges are fine.
	assert.NoError(t, Query{From: from}.Validate())
	assert.NoError(t, Query{To: to}.Validate())
}

func TestQueryDescribe(t *testing.T) {
	assert.Equal(t, "all", Query{}.Describe())
	assert.Contains(t, Query{Keyword: "vault"}.Describe(), "keyword=vault")
	assert.Contains(t, Query{Escaped: boolPtr(true)}.Describe(), "escaped")
	assert.Contains(t, Query{Escaped: boolPtr(false)}.Describe(), "failed")
}
