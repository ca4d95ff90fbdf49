package groups

import "sync"

// MemorySource implements Source using an in-memory map
type MemorySource struct {
	mu         sync.RWMutex
	membership map[int][]int
}

// NewMemorySource creates a new MemorySource
func NewMemorySource() *MemorySource {
	return &MemorySource{
		membership: make(map[int][]int),
	}
}

// LoadGroups implements Source
func (s *MemorySource) LoadGroups(userID int) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := s.membership[userID]
	out := make([]int, len(groups))
	copy(out, groups)
	return out, nil
}

// SetGroups sets the secondary groups for a user
func (s *MemorySource) SetGroups(userID int, groupIDs []int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := make([]int, len(groupIDs))
	copy(groups, groupIDs)
	s.membership[userID] = groups
}

// RemoveUser removes a user's memberships
func (s *MemorySource) RemoveUser(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.membership, userID)
}
