package domain

import "context"

// Database is the lifecycle contract for a backing store. Implementations
// own their schema migrations, so the storage engine can be swapped without
// touching the services above it.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
