package auth

import "errors"

var (
	// ErrNoSession indicates an operation that requires a session was
	// called while anonymous. No network request is made in that case.
	ErrNoSession = errors.New("auth.no_session")

	// ErrSessionExpired indicates the API rejected the session token and
	// it could not be (or was not configured to be) refreshed; the local
	// session has been cleared.
	ErrSessionExpired = errors.New("auth.session_expired")

	// ErrInvalidCredentials maps the API's INVALID_CREDENTIALS code.
	ErrInvalidCredentials = errors.New("auth.invalid_credentials")

	// ErrEmailTaken maps the API's EMAIL_EXISTS code.
	ErrEmailTaken = errors.New("auth.email_exists")

	// ErrRefreshFailed indicates a refresh attempt was rejected; the
	// session has been cleared and the user must sign in again.
	ErrRefreshFailed = errors.New("auth.refresh_failed")

	// ErrRefreshNotSupported indicates Refresh was called on a service
	// configured without the refresh capability.
	ErrRefreshNotSupported = errors.New("auth.refresh_not_supported")

	// ErrInvalidTransition indicates a lifecycle operation was started
	// from a state that doesn't permit it, e.g. Login while a refresh is
	// in flight.
	ErrInvalidTransition = errors.New("auth.invalid_transition")
)
