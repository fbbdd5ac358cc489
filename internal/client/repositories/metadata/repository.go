// Package metadata stores string settings of the CLI in the local database.
package metadata

import "context"

type Repository interface {
	// Get returns common.ErrNotFound for unknown keys.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
