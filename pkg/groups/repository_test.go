package groups

import (
	"errors"
	"testing"
	"time"
)

// countingSource counts loads so tests can observe cache behavior
type countingSource struct {
	inner Source
	calls int
	err   error
}

func (s *countingSource) LoadGroups(userID int) ([]int, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.inner.LoadGroups(userID)
}

func TestRepository_CachesMembership(t *testing.T) {
	memory := NewMemorySource()
	memory.SetGroups(42, []int{3, 7})
	source := &countingSource{inner: memory}
	repo := NewRepository(source, time.Minute)

	groups, err := repo.GroupsForUser(42)
	if err != nil {
		t.Fatalf("GroupsForUser failed: %v", err)
	}
	if len(groups) != 2 {
		t.Errorf("GroupsForUser(42) = %v, want two groups", groups)
	}

	if _, err := repo.GroupsForUser(42); err != nil {
		t.Fatalf("GroupsForUser failed: %v", err)
	}
	if source.calls != 1 {
		t.Errorf("source calls = %d, want 1 (second lookup cached)", source.calls)
	}
}

func TestRepository_ExpiredEntryReloads(t *testing.T) {
	memory := NewMemorySource()
	memory.SetGroups(42, []int{3})
	source := &countingSource{inner: memory}
	repo := NewRepository(source, time.Nanosecond)

	if _, err := repo.GroupsForUser(42); err != nil {
		t.Fatalf("GroupsForUser failed: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, err := repo.GroupsForUser(42); err != nil {
		t.Fatalf("GroupsForUser failed: %v", err)
	}
	if source.calls != 2 {
		t.Errorf("source calls = %d, want 2 (entry expired)", source.calls)
	}
}

func TestRepository_CachedResultIsIsolated(t *testing.T) {
	memory := NewMemorySource()
	memory.SetGroups(42, []int{3, 7})
	repo := NewRepository(memory, time.Minute)

	// Mutating results must not corrupt the cache entry, whether they
	// came from the source load or from the cache
	groups, err := repo.GroupsForUser(42)
	if err != nil {
		t.Fatalf("GroupsForUser failed: %v", err)
	}
	groups[0] = 98

	groups, err = repo.GroupsForUser(42)
	if err != nil {
		t.Fatalf("GroupsForUser failed: %v", err)
	}
	groups[0] = 99

	groups, err = repo.GroupsForUser(42)
	if err != nil {
		t.Fatalf("GroupsForUser failed: %v", err)
	}
	if groups[0] != 3 {
		t.Errorf("cached groups = %v, want [3 7] after caller mutation", groups)
	}
}

func TestRepository_SourceErrorSurfaces(t *testing.T) {
	source := &countingSource{inner: NewMemorySource(), err: errors.New("boom")}
	repo := NewRepository(source, time.Minute)

	if _, err := repo.GroupsForUser(42); err == nil {
		t.Error("Expected error from failing source, got nil")
	}
}

func TestRepository_Refresh(t *testing.T) {
	memory := NewMemorySource()
	memory.SetGroups(42, []int{3})
	source := &countingSource{inner: memory}
	repo := NewRepository(source, time.Minute)

	if _, err := repo.GroupsForUser(42); err != nil {
		t.Fatalf("GroupsForUser failed: %v", err)
	}

	memory.SetGroups(42, []int{3, 9})
	if err := repo.Refresh(42); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	groups, err := repo.GroupsForUser(42)
	if err != nil {
		t.Fatalf("GroupsForUser failed: %v", err)
	}
	if len(groups) != 2 {
		t.Errorf("GroupsForUser(42) = %v, want refreshed two groups", groups)
	}
}
