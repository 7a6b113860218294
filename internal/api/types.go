package api

import "time"

// Collection names understood by the backend.
const (
	CollectionDiaries = "diaries"
	CollectionParties = "parties"
)

// Item is one diary entry or party event as returned by the backend.
type Item struct {
	ID      int64      `json:"id"`
	Title   string     `json:"title"`
	Theme   string     `json:"theme"`
	Store   string     `json:"store"`
	Date    time.Time  `json:"date"`
	Escaped *bool      `json:"escaped,omitempty"`
	Rating  *float64   `json:"rating,omitempty"`
	Members []string   `json:"members,omitempty"`
	Created *time.Time `json:"createdAt,omitempty"`
}

// Page is the canonical page shape all search responses are normalized into.
// Total is -1 when the backend does not report a total element count.
type Page struct {
	Items []Item
	Last  bool
	Total int64
}

// SearchOptions carries pagination and filter fields for a search request.
// Zero-valued filter fields are omitted from the request body.
type SearchOptions struct {
	Page    int
	Size    int
	Keyword string
	Escaped *bool
	From    time.Time
	To      time.Time
}
