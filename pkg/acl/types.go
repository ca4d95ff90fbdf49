package acl

import "time"

// Profile is the named capability set assigned to a user. Capabilities gate
// what an actor may do with an account once account-level access is granted.
type Profile struct {
	CanAdd               bool `json:"can_add"`
	CanView              bool `json:"can_view"`
	CanViewPass          bool `json:"can_view_pass"`
	CanEdit              bool `json:"can_edit"`
	CanEditPass          bool `json:"can_edit_pass"`
	CanViewHistory       bool `json:"can_view_history"`
	CanDelete            bool `json:"can_delete"`
	CanManagePermissions bool `json:"can_manage_permissions"`
	CanAccessFiles       bool `json:"can_access_files"`
	CanGlobalSearch      bool `json:"can_global_search"`
}

// Actor is the authenticated user an ACL is compiled for. It is supplied by
// the session layer once per request and is read-only to the compiler.
type Actor struct {
	UserID   int     `json:"user_id"`
	GroupID  int     `json:"group_id"`
	AdminApp bool    `json:"admin_app"`
	AdminAcc bool    `json:"admin_acc"`
	Profile  Profile `json:"profile"`
}

// UserGrant is an explicit per-user permission record attached to an account
type UserGrant struct {
	UserID  int  `json:"user_id"`
	CanEdit bool `json:"can_edit"`
}

// GroupGrant is an explicit per-group permission record attached to an account
type GroupGrant struct {
	GroupID int  `json:"group_id"`
	CanEdit bool `json:"can_edit"`
}

// Account carries the slice of account state the compiler evaluates against.
// It is built fresh by the account-data layer per evaluation and never
// mutated afterwards.
type Account struct {
	ID           int          `json:"id"`
	OwnerUserID  int          `json:"owner_user_id"`
	OwnerGroupID int          `json:"owner_group_id"`
	UserGrants   []UserGrant  `json:"user_grants,omitempty"`
	GroupGrants  []GroupGrant `json:"group_grants,omitempty"`

	// PrivateUser restricts the account to exactly its owning user;
	// PrivateGroup restricts it to the owning group. Either one makes
	// explicit grants irrelevant.
	PrivateUser  bool `json:"private_user,omitempty"`
	PrivateGroup bool `json:"private_group,omitempty"`

	// ModifiedAt is the cache-validity key: results compiled before it
	// are stale.
	ModifiedAt time.Time `json:"modified_at"`
}
