// Package cache provides an offline sqlite snapshot of fetched records,
// used when the backend is unreachable.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roomlog/roomlog/internal/cache/migrations"
	"github.com/roomlog/roomlog/internal/logger"
	_ "modernc.org/sqlite"
)

const (
	dbFileName      = "cache.db"
	filePermissions = 0o600
	dirPermissions  = 0o700
)

var ErrCacheNotAvailable = errors.New("cache not available")

// Cache is the sqlite-backed offline store.
type Cache struct {
	db   *sql.DB
	path string
}

// New opens (or creates) the cache database and brings its schema up to date.
func New() (*Cache, error) {
	dir, err := cacheDir()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, dbFileName)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if err := ensureSchema(db, path); err != nil {
		_ = db.Close()

		return nil, err
	}

	logger.Log.Debugf("Cache ready at %s (schema v%d)", path, migrations.LatestVersion())

	return &Cache{db: db, path: path}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}

	return c.db.Close()
}

// Path returns the database file location.
func (c *Cache) Path() string {
	if c == nil {
		return ""
	}

	return c.path
}

// cacheDir resolves the cache directory, honoring ROOMLOG_CACHE_DIR.
func cacheDir() (string, error) {
	dir := strings.TrimSpace(os.Getenv("ROOMLOG_CACHE_DIR"))
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve cache directory: %w", err)
		}

		dir = filepath.Join(base, "roomlog")
	}

	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	return dir, nil
}
