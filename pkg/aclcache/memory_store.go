package aclcache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/credvault/credvault-acl/pkg/acl"
)

// MemoryStore keeps compiled results in a bounded in-process LRU with a TTL.
// Useful in front of a FileStore, or on its own when persistence across
// restarts is not needed.
type MemoryStore struct {
	cache *lru.LRU[string, acl.Result]
}

// NewMemoryStore creates a store holding at most maxEntries results, each
// expiring after ttl. A zero ttl disables expiry.
func NewMemoryStore(maxEntries int, ttl time.Duration) *MemoryStore {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &MemoryStore{
		cache: lru.NewLRU[string, acl.Result](maxEntries, nil, ttl),
	}
}

// Load implements Store
func (s *MemoryStore) Load(key string) (*acl.Result, error) {
	result, ok := s.cache.Get(key)
	if !ok {
		return nil, ErrNotFound
	}
	return &result, nil
}

// Save implements Store
func (s *MemoryStore) Save(result *acl.Result, key string) error {
	s.cache.Add(key, *result)
	return nil
}

// Len returns the number of live entries
func (s *MemoryStore) Len() int {
	return s.cache.Len()
}
