package acl

import (
	"github.com/credvault/credvault-acl/pkg/logging"
)

// Service is the query interface exposed to controllers. The Evaluator
// implements it directly; caches wrap it with the same signature.
type Service interface {
	GetACL(action ActionID, actor Actor, account Account) (*Result, error)
}

// GroupResolver resolves the secondary groups a user belongs to, beyond
// their primary group.
type GroupResolver interface {
	GroupsForUser(userID int) ([]int, error)
}

// Evaluator compiles ACLs using a group membership resolver. Resolver
// failures degrade to "no extra memberships" so a broken group source can
// only narrow access, never break evaluation.
type Evaluator struct {
	groups GroupResolver
}

// NewEvaluator creates an Evaluator. A nil resolver is valid and means no
// secondary group memberships exist.
func NewEvaluator(groups GroupResolver) *Evaluator {
	return &Evaluator{groups: groups}
}

// GetACL implements Service
func (e *Evaluator) GetACL(action ActionID, actor Actor, account Account) (*Result, error) {
	var memberGroups []int
	if e.groups != nil {
		groups, err := e.groups.GroupsForUser(actor.UserID)
		if err != nil {
			logging.App.Debug("group lookup failed, assuming no extra memberships",
				"user_id", actor.UserID, "error", err)
		} else {
			memberGroups = groups
		}
	}
	return Compile(action, actor, account, memberGroups)
}
