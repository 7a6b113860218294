package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/roomlog/roomlog/internal/api"
)

// SaveItems replaces the cached snapshot of one collection.
func (c *Cache) SaveItems(collection string, items []api.Item) error {
	if c == nil || c.db == nil {
		return ErrCacheNotAvailable
	}

	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM items WHERE collection = ?", collection); err != nil {
		return fmt.Errorf("failed to clear previous snapshot: %w", err)
	}

	for position, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to encode item %d: %w", item.ID, err)
		}

		_, err = tx.Exec(
			"INSERT OR REPLACE INTO items (collection, id, position, payload) VALUES (?, ?, ?, ?)",
			collection, item.ID, position, string(payload),
		)
		if err != nil {
			return fmt.Errorf("failed to store item %d: %w", item.ID, err)
		}
	}

	_, err = tx.Exec(
		"INSERT OR REPLACE INTO snapshots (collection, fetched_at) VALUES (?, ?)",
		collection, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to record snapshot time: %w", err)
	}

	return tx.Commit()
}

// LoadItems returns the cached snapshot of one collection in its original
// order, along with when it was fetched.
func (c *Cache) LoadItems(collection string) ([]api.Item, time.Time, error) {
	if c == nil || c.db == nil {
		return nil, time.Time{}, ErrCacheNotAvailable
	}

	rows, err := c.db.Query(
		"SELECT payload FROM items WHERE collection = ? ORDER BY position",
		collection,
	)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to query snapshot: %w", err)
	}
	defer rows.Close()

	var items []api.Item

	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, time.Time{}, fmt.Errorf("failed to scan row: %w", err)
		}

		var item api.Item
		if err := json.Unmarshal([]byte(payload), &item); err != nil {
			return nil, time.Time{}, fmt.Errorf("failed to decode cached item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var fetchedUnix int64

	err = c.db.QueryRow("SELECT fetched_at FROM snapshots WHERE collection = ?", collection).Scan(&fetchedUnix)
	if err != nil {
		// No snapshot row means the items table was empty too.
		return items, time.Time{}, nil
	}

	return items, time.Unix(fetchedUnix, 0), nil
}

// Clear drops all cached snapshots and search history.
func (c *Cache) Clear() error {
	if c == nil || c.db == nil {
		return ErrCacheNotAvailable
	}

	for _, stmt := range []string{
		"DELETE FROM items",
		"DELETE FROM snapshots",
		"DELETE FROM search_history",
	} {
		if _, err := c.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
	}

	return nil
}
