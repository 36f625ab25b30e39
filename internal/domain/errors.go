package domain

import "errors"

// Journal errors
var (
	// ErrEntryNotFound covers both a missing entry and an entry owned by
	// someone else. The two cases stay indistinguishable so record ids
	// cannot be probed across users.
	ErrEntryNotFound = errors.New("journal entry not found or unauthorized")
)
