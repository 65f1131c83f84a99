// Package storage holds the key/value repositories that back persisted portal
// state: the theme preference and the per-browser sessions.
package storage

import (
	"context"
	"fmt"

	"github.com/jrsteele09/go-contest-portal/internal/config"
	"github.com/jrsteele09/go-contest-portal/internal/errors"
)

// ErrNotFound is returned by Get when the key has never been stored.
var ErrNotFound = errors.ErrNotFound

// Repo is a flat key/value store. Delete of a missing key is not an error.
type Repo interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open builds the repo selected by the storage configuration.
func Open(ctx context.Context, c config.StorageConfig) (Repo, error) {
	switch c.GetStorageDriver() {
	case config.DriverMemory:
		return NewInMemoryRepo(), nil
	case config.DriverFile:
		return NewFileRepo(c.GetStoragePath())
	case config.DriverRedis:
		return NewRedisRepoFromURL(ctx, c.GetRedisURL(), "portal:")
	case config.DriverSQLite:
		return NewSQLiteRepo(ctx, c.GetStoragePath())
	default:
		return nil, fmt.Errorf("[storage Open] unknown driver %q: %w", c.GetStorageDriver(), errors.ErrInvalidConfig)
	}
}
