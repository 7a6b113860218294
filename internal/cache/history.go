package cache

import (
	"fmt"
	"strings"
	"time"
)

// RecordSearch remembers a filter keyword, bumping its use count.
func (c *Cache) RecordSearch(keyword string) error {
	if c == nil || c.db == nil {
		return ErrCacheNotAvailable
	}

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil
	}

	_, err := c.db.Exec(`
		INSERT INTO search_history (keyword, last_used, use_count) VALUES (?, ?, 1)
		ON CONFLICT(keyword) DO UPDATE SET last_used = excluded.last_used, use_count = use_count + 1`,
		keyword, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}

	return nil
}

// RecentSearches returns up to limit keywords, most recently used first.
func (c *Cache) RecentSearches(limit int) ([]string, error) {
	if c == nil || c.db == nil {
		return nil, ErrCacheNotAvailable
	}

	if limit <= 0 {
		limit = 10
	}

	rows, err := c.db.Query(
		"SELECT keyword FROM search_history ORDER BY last_used DESC LIMIT ?", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query search history: %w", err)
	}
	defer rows.Close()

	var keywords []string

	for rows.Next() {
		var keyword string
		if err := rows.Scan(&keyword); err != nil {
			return nil, fmt.Errorf("failed to scan keyword: %w", err)
		}

		keywords = append(keywords, keyword)
	}

	return keywords, rows.Err()
}
