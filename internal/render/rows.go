// Package render maps loaded records to their terminal presentation.
package render

import (
	"math"
	"strings"
	"time"

	"github.com/roomlog/roomlog/internal/api"
)

const (
	starFilled = "★"
	starEmpty  = "☆"
	starCount  = 5

	// Display badges for the escape outcome.
	BadgeSuccess = "SUCCESS"
	BadgeFail    = "FAIL"
	badgeNone    = "-"
)

// Row is the display form of one record. Building a row never mutates the
// source item; rows are recomputed from accumulated state on every render.
type Row struct {
	ID      int64
	Title   string
	Theme   string
	Store   string
	Date    string
	Outcome string
	Good    bool
	Stars   string
}

// BuildRow derives the presentation fields for one item.
func BuildRow(item api.Item) Row {
	outcome, good := OutcomeBadge(item.Escaped)

	return Row{
		ID:      item.ID,
		Title:   item.Title,
		Theme:   item.Theme,
		Store:   item.Store,
		Date:    FormatDate(item.Date),
		Outcome: outcome,
		Good:    good,
		Stars:   Stars(item.Rating),
	}
}

// BuildRows derives rows for a whole accumulated list.
func BuildRows(items []api.Item) []Row {
	rows := make([]Row, len(items))
	for i, item := range items {
		rows[i] = BuildRow(item)
	}

	return rows
}

// Stars renders a 0-5 rating as five star glyphs. The fill count is the
// rounded rating clamped into [0,5]; a nil rating renders all-empty.
func Stars(rating *float64) string {
	filled := 0

	if rating != nil {
		filled = int(math.Round(*rating))
		if filled < 0 {
			filled = 0
		}

		if filled > starCount {
			filled = starCount
		}
	}

	return strings.Repeat(starFilled, filled) + strings.Repeat(starEmpty, starCount-filled)
}

// OutcomeBadge maps the escape outcome to a label and a good/bad flag.
// A nil outcome (parties have none) renders a neutral dash.
func OutcomeBadge(escaped *bool) (string, bool) {
	if escaped == nil {
		return badgeNone, false
	}

	if *escaped {
		return BadgeSuccess, true
	}

	return BadgeFail, false
}

// FormatDate renders a record timestamp as a human-readable local date.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Local().Format("Mon, 02 Jan 2006")
}
