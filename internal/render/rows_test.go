package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/roomlog/roomlog/internal/api"
)

func floatPtr(v float64) *float64 {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func TestStars(t *testing.T) {
	tests := []struct {
		name   string
		rating *float64
		want   string
	}{
		{"nil rating", nil, "☆☆☆☆☆"},
		{"zero", floatPtr(0), "☆☆☆☆☆"},
		{"rounds down", floatPtr(2.4), "★★☆☆☆"},
		{"rounds up", floatPtr(2.5), "★★★☆☆"},
		{"full", floatPtr(5), "★★★★★"},
		{"clamped above", floatPtr(9.7), "★★★★★"},
		{"clamped below", floatPtr(-3), "☆☆☆☆☆"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stars(tt.rating))
		})
	}
}

func TestOutcomeBadge(t *testing.T) {
	label, good := OutcomeBadge(boolPtr(true))
	assert.Equal(t, BadgeSuccess, label)
	assert.True(t, good)

	label, good = OutcomeBadge(boolPtr(false))
	assert.Equal(t, BadgeFail, label)
	assert.False(t, good)

	label, good = OutcomeBadge(nil)
	assert.Equal(t, "-", label)
	assert.False(t, good)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "-", FormatDate(time.Time{}))

	formatted := FormatDate(time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC))
	assert.Contains(t, formatted, "2026")
	assert.Contains(t, formatted, "Aug")
}

func TestBuildRowDoesNotMutateItem(t *testing.T) {
	item := api.Item{
		ID:      9,
		Title:   "The Vault",
		Theme:   "Heist",
		Store:   "Escape Lab",
		Date:    time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		Escaped: boolPtr(true),
		Rating:  floatPtr(4),
	}

	before := item
	row := BuildRow(item)

	assert.Equal(t, before, item)
	assert.Equal(t, int64(9), row.ID)
	assert.Equal(t, BadgeSuccess, row.Outcome)
	assert.Equal(t, "★★★★☆", row.Stars)
}

func TestBuildRows(t *testing.T) {
	rows := BuildRows([]api.Item{{ID: 1}, {ID: 2}})
	assert.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].ID)
	assert.Equal(t, int64(2), rows[1].ID)

	assert.Empty(t, BuildRows(nil))
}
