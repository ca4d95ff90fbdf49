package acl

import "time"

// access holds the intermediate ownership/grant determination for one
// (actor, account) pair, before profile gating.
type access struct {
	ownerUser  bool
	ownerGroup bool
	canView    bool
	canEdit    bool
}

// Compile evaluates the ACL for one action against one account. It is a pure
// function: no I/O, no shared state. Absent grants or empty group memberships
// evaluate to "no access" rather than an error; the only error condition is
// an action outside the known taxonomy.
func Compile(action ActionID, actor Actor, account Account, memberGroups []int) (*Result, error) {
	if !action.Valid() {
		return nil, ErrUnknownAction
	}

	r := &Result{
		ActionID:       action,
		CompiledAccess: true,
		CompiledShow:   true,
		CompiledAt:     time.Now(),
	}

	// Admin flags short-circuit ownership, grants and profile checks.
	if actor.AdminApp || actor.AdminAcc {
		r.grantAll()
		// Creating public links stays an app-admin right; account-level
		// admin alone does not unlock it.
		r.ShowLink = actor.AdminApp
		return r, nil
	}

	acc := evaluateAccess(actor, account, memberGroups)
	p := actor.Profile

	r.ResultEdit = acc.canEdit && p.editAllowed(action)
	// Edit access implies view access even when the view-specific
	// capability is off.
	r.ResultView = (acc.canView && p.viewAllowed(action)) || r.ResultEdit

	hasAccess := r.ResultView || r.ResultEdit

	r.ShowView = hasAccess && p.CanView
	r.ShowViewPass = hasAccess && p.CanViewPass
	r.ShowPass = hasAccess && (p.CanViewPass || p.CanEditPass)
	r.ShowCopy = hasAccess && p.CanView
	r.ShowHistory = hasAccess && p.CanViewHistory
	r.ShowFiles = hasAccess && p.CanAccessFiles
	r.ShowDetails = hasAccess
	r.ShowLink = hasAccess

	r.ShowEdit = r.ResultEdit && p.CanEdit
	r.ShowEditPass = r.ResultEdit && p.CanEditPass
	r.ShowDelete = r.ResultEdit && p.CanDelete
	r.ShowRestore = r.ResultEdit && p.CanEdit

	// The save affordance covers both editing this account and creating a
	// new one from the same form.
	r.ShowSave = r.ResultEdit || p.CanAdd

	r.ShowPermission = p.CanManagePermissions && (acc.ownerUser || acc.ownerGroup)

	return r, nil
}

// evaluateAccess computes ownership and grant access. Private flags collapse
// the evaluation to exact ownership: a private-user account honors only the
// owning user, a private-group account only the owning group, and explicit
// grants are ignored in both cases.
func evaluateAccess(actor Actor, account Account, memberGroups []int) access {
	a := access{
		ownerUser: account.OwnerUserID == actor.UserID,
	}
	a.ownerGroup = account.OwnerGroupID == actor.GroupID || containsGroup(memberGroups, account.OwnerGroupID)

	switch {
	case account.PrivateUser:
		a.canView = a.ownerUser
		a.canEdit = a.ownerUser
		return a
	case account.PrivateGroup:
		a.canView = a.ownerGroup
		a.canEdit = a.ownerGroup
		return a
	}

	var userGrant, userEditGrant bool
	for _, g := range account.UserGrants {
		if g.UserID == actor.UserID {
			userGrant = true
			userEditGrant = userEditGrant || g.CanEdit
		}
	}

	var groupGrant, groupEditGrant bool
	for _, g := range account.GroupGrants {
		if g.GroupID == actor.GroupID || containsGroup(memberGroups, g.GroupID) {
			groupGrant = true
			groupEditGrant = groupEditGrant || g.CanEdit
		}
	}

	a.canView = a.ownerUser || a.ownerGroup || userGrant || groupGrant
	a.canEdit = a.ownerUser || a.ownerGroup || userEditGrant || groupEditGrant
	return a
}

// viewAllowed returns the profile capability gating view-level access for
// the given action.
func (p Profile) viewAllowed(a ActionID) bool {
	switch a {
	case ActionSearch:
		// Global search surfaces accounts the actor could not open
		// otherwise; either capability lets results show up.
		return p.CanView || p.CanGlobalSearch
	case ActionView, ActionCopy, ActionLink:
		return p.CanView
	case ActionViewPass, ActionCopyPass:
		return p.CanViewPass
	case ActionHistoryView:
		return p.CanViewHistory
	case ActionCreate:
		return p.CanAdd
	case ActionEdit, ActionEditRestore:
		return p.CanEdit
	case ActionEditPass:
		return p.CanEditPass
	case ActionDelete:
		return p.CanDelete
	case ActionPermissions:
		return p.CanManagePermissions
	case ActionFiles:
		return p.CanAccessFiles
	}
	return false
}

// editAllowed returns the profile capability gating edit-level access. Most
// actions fall under the generic edit capability; password changes and
// deletion have their own.
func (p Profile) editAllowed(a ActionID) bool {
	switch a {
	case ActionEditPass:
		return p.CanEditPass
	case ActionDelete:
		return p.CanDelete
	default:
		return p.CanEdit
	}
}

func containsGroup(groups []int, id int) bool {
	for _, g := range groups {
		if g == id {
			return true
		}
	}
	return false
}
