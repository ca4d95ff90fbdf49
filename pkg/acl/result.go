package acl

import "time"

// Result is the compiled outcome of one ACL evaluation for one action.
// It is created by Compile, optionally persisted by a cache, and never
// mutated afterwards.
type Result struct {
	ActionID ActionID `json:"action_id"`

	// CompiledAccess and CompiledShow record that the account-access and
	// UI-visibility passes ran, so a zero-value Result is distinguishable
	// from a compiled denial.
	CompiledAccess bool `json:"compiled_access"`
	CompiledShow   bool `json:"compiled_show"`

	ResultView bool `json:"result_view"`
	ResultEdit bool `json:"result_edit"`

	ShowView       bool `json:"show_view"`
	ShowEdit       bool `json:"show_edit"`
	ShowEditPass   bool `json:"show_edit_pass"`
	ShowDelete     bool `json:"show_delete"`
	ShowCopy       bool `json:"show_copy"`
	ShowRestore    bool `json:"show_restore"`
	ShowHistory    bool `json:"show_history"`
	ShowFiles      bool `json:"show_files"`
	ShowDetails    bool `json:"show_details"`
	ShowPass       bool `json:"show_pass"`
	ShowViewPass   bool `json:"show_view_pass"`
	ShowSave       bool `json:"show_save"`
	ShowPermission bool `json:"show_permission"`
	ShowLink       bool `json:"show_link"`

	CompiledAt time.Time `json:"compiled_at"`
}

// FreshAsOf reports whether the result was compiled at or after the given
// account modification time and may still be served from cache.
func (r *Result) FreshAsOf(modifiedAt time.Time) bool {
	return !r.CompiledAt.Before(modifiedAt)
}

// grantAll flips every access and affordance flag on. Used by the admin
// short-circuit path.
func (r *Result) grantAll() {
	r.ResultView = true
	r.ResultEdit = true
	r.ShowView = true
	r.ShowEdit = true
	r.ShowEditPass = true
	r.ShowDelete = true
	r.ShowCopy = true
	r.ShowRestore = true
	r.ShowHistory = true
	r.ShowFiles = true
	r.ShowDetails = true
	r.ShowPass = true
	r.ShowViewPass = true
	r.ShowSave = true
	r.ShowPermission = true
	r.ShowLink = true
}
