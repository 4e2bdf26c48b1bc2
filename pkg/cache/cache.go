// Package cache provides layout result caching. Computing a layout is cheap
// for one room but batches rerun constantly during drawing revisions, and the
// (config hash, room hash) key makes results perfectly reusable. Backends:
// a file cache for CLI usage, Redis for the shared API service, and a null
// cache for tests and --no-cache runs.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry kind.
const (
	// LayoutTTL is how long computed layouts stay cached. Layouts are pure
	// functions of their key, so this bounds disk usage, not staleness.
	LayoutTTL = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
