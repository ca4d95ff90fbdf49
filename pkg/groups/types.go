package groups

// Source represents a source of group membership data
type Source interface {
	// LoadGroups returns the secondary group ids a user belongs to. An
	// unknown user yields an empty set, not an error.
	LoadGroups(userID int) ([]int, error)
}
