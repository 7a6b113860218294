// Package feed implements incremental page loading and filter state for
// browsing diary and party collections.
package feed

import (
	"errors"
	"strings"
	"time"
)

var ErrDateRangeInverted = errors.New("date range start is after end")

// Field names one filter dimension of a Query.
type Field string

const (
	FieldKeyword   Field = "keyword"
	FieldEscaped   Field = "escaped"
	FieldDateRange Field = "dates"
)

// Query is an immutable filter snapshot. The zero value matches everything.
type Query struct {
	Keyword string
	Escaped *bool
	From    time.Time
	To      time.Time
}

// Clear returns a copy of the query with one filter dimension removed.
func (q Query) Clear(field Field) Query {
	switch field {
	case FieldKeyword:
		q.Keyword = ""
	case FieldEscaped:
		q.Escaped = nil
	case FieldDateRange:
		q.From = time.Time{}
		q.To = time.Time{}
	}

	return q
}

// IsZero reports whether no filter dimension is set.
func (q Query) IsZero() bool {
	return strings.TrimSpace(q.Keyword) == "" && q.Escaped == nil && q.From.IsZero() && q.To.IsZero()
}

// Equal reports whether two queries describe the same filter.
func (q Query) Equal(other Query) bool {
	if strings.TrimSpace(q.Keyword) != strings.TrimSpace(other.Keyword) {
		return false
	}

	if (q.Escaped == nil) != (other.Escaped == nil) {
		return false
	}

	if q.Escaped != nil && *q.Escaped != *other.Escaped {
		return false
	}

	return q.From.Equal(other.From) && q.To.Equal(other.To)
}

// Validate rejects queries a well-formed request cannot carry. Validation
// failures never reach the network.
func (q Query) Validate() error {
	if !q.From.IsZero() && !q.To.IsZero() && q.From.After(q.To) {
		return ErrDateRangeInverted
	}

	return nil
}

// Describe renders the active filter dimensions for status lines and logs.
func (q Query) Describe() string {
	var parts []string

	if kw := strings.TrimSpace(q.Keyword); kw != "" {
		parts = append(parts, "keyword="+kw)
	}

	if q.Escaped != nil {
		if *q.Escaped {
			parts = append(parts, "escaped")
		} else {
			parts = append(parts, "failed")
		}
	}

	if !q.From.IsZero() || !q.To.IsZero() {
		parts = append(parts, q.From.Format("2006-01-02")+".."+q.To.Format("2006-01-02"))
	}

	if len(parts) == 0 {
		return "all"
	}

	return strings.Join(parts, " ")
}
