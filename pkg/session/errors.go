package session

import "errors"

var (
	// ErrInvalidSession indicates the session violates its invariant,
	// e.g. a user profile without an access token.
	ErrInvalidSession = errors.New("session.invalid")

	// ErrNotAuthenticated indicates an operation that requires an access
	// token was attempted on an anonymous session.
	ErrNotAuthenticated = errors.New("session.not_authenticated")

	// ErrRecordNotFound indicates no persisted record exists under the key.
	ErrRecordNotFound = errors.New("session.record_not_found")

	// ErrStorageFailure indicates the storage backend failed to read or
	// write the persisted record.
	ErrStorageFailure = errors.New("session.storage_failure")
)
