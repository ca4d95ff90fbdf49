package aclcache

import (
	"errors"

	"github.com/credvault/credvault-acl/pkg/acl"
)

var (
	// ErrNotFound is returned by a Store when no entry exists for a key
	ErrNotFound = errors.New("cache entry not found")
)

// Store is the cache backend contract: keyed persistence of compiled
// results. Implementations may fail on I/O; the Cache translates every
// failure into a miss or a best-effort save.
type Store interface {
	// Load returns the stored result for a key, or ErrNotFound
	Load(key string) (*acl.Result, error)
	// Save stores a result under a key, replacing any previous entry
	Save(result *acl.Result, key string) error
}
