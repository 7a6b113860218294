package cache

import (
	"fmt"
	"os"
	"time"
)

// Stats summarizes what the cache currently holds.
type Stats struct {
	Path          string
	SizeBytes     int64
	ItemCounts    map[string]int
	SnapshotTimes map[string]time.Time
	SearchCount   int
}

// Stats collects per-collection counts and snapshot ages.
func (c *Cache) Stats() (*Stats, error) {
	if c == nil || c.db == nil {
		return nil, ErrCacheNotAvailable
	}

	stats := &Stats{
		Path:          c.path,
		ItemCounts:    make(map[string]int),
		SnapshotTimes: make(map[string]time.Time),
	}

	if info, err := os.Stat(c.path); err == nil {
		stats.SizeBytes = info.Size()
	}

	rows, err := c.db.Query("SELECT collection, COUNT(*) FROM items GROUP BY collection")
	if err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var collection string
		var count int

		if err := rows.Scan(&collection, &count); err != nil {
			return nil, fmt.Errorf("failed to scan item count: %w", err)
		}

		stats.ItemCounts[collection] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	snapshots, err := c.db.Query("SELECT collection, fetched_at FROM snapshots")
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot times: %w", err)
	}
	defer snapshots.Close()

	for snapshots.Next() {
		var collection string
		var fetchedUnix int64

		if err := snapshots.Scan(&collection, &fetchedUnix); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot time: %w", err)
		}

		stats.SnapshotTimes[collection] = time.Unix(fetchedUnix, 0)
	}

	if err := snapshots.Err(); err != nil {
		return nil, err
	}

	err = c.db.QueryRow("SELECT COUNT(*) FROM search_history").Scan(&stats.SearchCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count search history: %w", err)
	}

	return stats, nil
}
