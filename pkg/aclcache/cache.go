package aclcache

import (
	"errors"
	"sync/atomic"

	"github.com/credvault/credvault-acl/pkg/acl"
	"github.com/credvault/credvault-acl/pkg/logging"
)

// Cache wraps an acl.Service with a Store so repeated evaluations of the
// same (actor, account, action) tuple are served from the last compiled
// result while the account is unchanged. Store failures are logged and
// degrade to recomputation; they never reach the caller.
type Cache struct {
	next  acl.Service
	store Store

	hits   atomic.Int64
	misses atomic.Int64
}

// Stats holds cache hit/miss counters
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

// New creates a Cache in front of the given service
func New(next acl.Service, store Store) *Cache {
	return &Cache{
		next:  next,
		store: store,
	}
}

// GetACL implements acl.Service. A stored result is served only while it was
// compiled at or after the account's last modification; anything older, any
// missing entry, and any store failure triggers a fresh compilation.
func (c *Cache) GetACL(action acl.ActionID, actor acl.Actor, account acl.Account) (*acl.Result, error) {
	key := Key(actor.UserID, account.ID, action)

	cached, err := c.store.Load(key)
	switch {
	case err == nil:
		if cached.ActionID == action && cached.FreshAsOf(account.ModifiedAt) {
			c.hits.Add(1)
			logging.Access.Decision(actor.UserID, account.ID, action.String(),
				cached.ResultView, cached.ResultEdit, "hit")
			return cached, nil
		}
		logging.App.Debug("Cached ACL is stale, recompiling",
			"user_id", actor.UserID, "account_id", account.ID, "action", action.String())
	case errors.Is(err, ErrNotFound):
		// plain miss
	default:
		logging.App.Warn("ACL cache load failed, recompiling",
			"user_id", actor.UserID, "account_id", account.ID, "error", err)
	}

	c.misses.Add(1)
	result, err := c.next.GetACL(action, actor, account)
	if err != nil {
		return nil, err
	}

	if err := c.store.Save(result, key); err != nil {
		logging.App.Warn("ACL cache save failed",
			"user_id", actor.UserID, "account_id", account.ID, "error", err)
	}

	logging.Access.Decision(actor.UserID, account.ID, action.String(),
		result.ResultView, result.ResultEdit, "miss")
	return result, nil
}

// Stats returns the hit/miss counters
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}
