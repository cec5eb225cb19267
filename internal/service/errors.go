package service

import "errors"

var (
	// ErrMissingParameter covers blank or non-numeric operator input. Nothing
	// is sent to the backend when it fires.
	ErrMissingParameter = errors.New("missing or invalid parameter")

	// ErrIllegalTransition means the requested delivery action is not
	// permitted from the entity's current status.
	ErrIllegalTransition = errors.New("action not permitted from current status")

	ErrUnknownIntent = errors.New("unknown search intent")
	ErrUnknownAction = errors.New("unknown delivery action")
	ErrUnknownStatus = errors.New("unknown order status")

	// ErrNoHierarchy fires when a menu or item operation arrives before any
	// restaurant hierarchy has been opened.
	ErrNoHierarchy = errors.New("no restaurant hierarchy is open")

	// ErrUnknownMenu means the referenced menu is not part of the currently
	// open hierarchy.
	ErrUnknownMenu = errors.New("menu is not part of the open hierarchy")
)
