package acl

import "errors"

var (
	// ErrUnknownAction is returned when an action id outside the account
	// operation taxonomy is requested. This is a caller bug, not a data
	// condition, so it surfaces instead of producing an empty result.
	ErrUnknownAction = errors.New("unknown action")
)
