package groups

import (
	"sync"
	"time"

	"github.com/credvault/credvault-acl/pkg/logging"
)

// Repository provides cached access to group membership data
type Repository struct {
	source        Source
	cacheDuration time.Duration

	mu          sync.RWMutex
	cache       map[int][]int
	lastRefresh map[int]time.Time
}

// NewRepository creates a new Repository
func NewRepository(source Source, cacheDuration time.Duration) *Repository {
	return &Repository{
		source:        source,
		cacheDuration: cacheDuration,
		cache:         make(map[int][]int),
		lastRefresh:   make(map[int]time.Time),
	}
}

// GroupsForUser returns a user's secondary groups, using cache if available.
// Implements acl.GroupResolver.
func (r *Repository) GroupsForUser(userID int) ([]int, error) {
	// Check cache first
	r.mu.RLock()
	groups, exists := r.cache[userID]
	lastRefresh := r.lastRefresh[userID]
	r.mu.RUnlock()

	// Return cached value if still fresh. Callers get a copy so the
	// cached entry cannot be mutated through the result.
	if exists && time.Since(lastRefresh) < r.cacheDuration {
		logging.App.Debug("Using cached group membership", "user_id", userID, "cache_age", time.Since(lastRefresh))
		out := make([]int, len(groups))
		copy(out, groups)
		return out, nil
	}

	// Load from source
	groups, err := r.source.LoadGroups(userID)
	if err != nil {
		logging.App.Debug("Failed to load group membership from source", "user_id", userID, "error", err)
		return nil, err
	}

	// Update cache
	r.mu.Lock()
	r.cache[userID] = groups
	r.lastRefresh[userID] = time.Now()
	r.mu.Unlock()

	logging.App.Debug("Updated group membership cache", "user_id", userID)
	out := make([]int, len(groups))
	copy(out, groups)
	return out, nil
}

// Refresh forces a refresh of a user's membership from the source
func (r *Repository) Refresh(userID int) error {
	logging.App.Debug("Forcing group membership refresh", "user_id", userID)

	groups, err := r.source.LoadGroups(userID)
	if err != nil {
		logging.App.Debug("Failed to refresh group membership", "user_id", userID, "error", err)
		return err
	}

	r.mu.Lock()
	r.cache[userID] = groups
	r.lastRefresh[userID] = time.Now()
	r.mu.Unlock()

	return nil
}
