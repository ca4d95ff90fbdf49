package acl

import "fmt"

// ActionID identifies one account operation an ACL can be compiled for.
type ActionID int

const (
	ActionUnknown ActionID = iota
	ActionSearch
	ActionView
	ActionViewPass
	ActionHistoryView
	ActionCreate
	ActionEdit
	ActionEditPass
	ActionEditRestore
	ActionCopy
	ActionCopyPass
	ActionDelete
	ActionPermissions
	ActionFiles
	ActionLink
)

var actionNames = map[ActionID]string{
	ActionSearch:      "search",
	ActionView:        "view",
	ActionViewPass:    "view_pass",
	ActionHistoryView: "history_view",
	ActionCreate:      "create",
	ActionEdit:        "edit",
	ActionEditPass:    "edit_pass",
	ActionEditRestore: "edit_restore",
	ActionCopy:        "copy",
	ActionCopyPass:    "copy_pass",
	ActionDelete:      "delete",
	ActionPermissions: "permissions",
	ActionFiles:       "files",
	ActionLink:        "link",
}

var actionIDs = func() map[string]ActionID {
	m := make(map[string]ActionID, len(actionNames))
	for id, name := range actionNames {
		m[name] = id
	}
	return m
}()

// Valid reports whether the action is part of the account operation taxonomy
func (a ActionID) Valid() bool {
	_, ok := actionNames[a]
	return ok
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(a))
}

// ParseAction resolves an action name ("view", "edit_pass", ...) to its ActionID
func ParseAction(name string) (ActionID, error) {
	id, ok := actionIDs[name]
	if !ok {
		return ActionUnknown, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return id, nil
}

// Actions returns every valid action in taxonomy order
func Actions() []ActionID {
	return []ActionID{
		ActionSearch,
		ActionView,
		ActionViewPass,
		ActionHistoryView,
		ActionCreate,
		ActionEdit,
		ActionEditPass,
		ActionEditRestore,
		ActionCopy,
		ActionCopyPass,
		ActionDelete,
		ActionPermissions,
		ActionFiles,
		ActionLink,
	}
}
