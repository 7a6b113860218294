package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/roomlog/roomlog/internal/logger"
)

// envelope is the outer JSON shape of every backend response.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

// pagedData is the Spring-style page object some endpoints return inside data.
type pagedData struct {
	Content       []Item `json:"content"`
	Last          bool   `json:"last"`
	TotalElements *int64 `json:"totalElements"`
}

// normalizePage turns either response shape (a bare item array or a page
// object) into the canonical Page. A missing or null data field is treated
// as an exhausted empty page rather than an error, so a malformed envelope
// never breaks an ongoing browsing session.
func normalizePage(body []byte) (Page, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Page{}, fmt.Errorf("failed to decode response envelope: %w", err)
	}

	raw := bytes.TrimSpace(env.Data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		logger.Log.Warn("Response envelope has no data field, treating as last page")

		return Page{Last: true, Total: -1}, nil
	}

	if raw[0] == '[' {
		var items []Item
		if err := json.Unmarshal(raw, &items); err != nil {
			return Page{}, fmt.Errorf("failed to decode item array: %w", err)
		}

		// A bare array carries no last-page marker; the loader detects
		// exhaustion from the next empty page.
		return Page{Items: items, Total: -1}, nil
	}

	var paged pagedData
	if err := json.Unmarshal(raw, &paged); err != nil {
		return Page{}, fmt.Errorf("failed to decode page object: %w", err)
	}

	total := int64(-1)
	if paged.TotalElements != nil {
		total = *paged.TotalElements
	}

	return Page{Items: paged.Content, Last: paged.Last, Total: total}, nil
}
