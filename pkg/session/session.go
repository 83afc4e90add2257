package session

import (
	"time"
)

// User is the authenticated user's profile as returned by the API.
// It is owned by the Session and replaced wholesale, never mutated field
// by field.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// Session holds the current authentication state: the tokens issued by the
// API and, once fetched, the user profile. A zero Session is the anonymous
// state.
//
// Invariant: User is non-nil only when AccessToken is set. The inverse
// (token present, profile not yet fetched) is a valid transient state right
// after rehydration.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	User         *User  `json:"user,omitempty"`
}

// IsAuthenticated reports whether the session carries an access token.
func (s Session) IsAuthenticated() bool {
	return s.AccessToken != ""
}

// IsZero reports whether the session is the empty anonymous state.
func (s Session) IsZero() bool {
	return s.AccessToken == "" && s.RefreshToken == "" && s.User == nil
}

// validate checks the session invariant.
func (s Session) validate() error {
	if s.User != nil && s.AccessToken == "" {
		return ErrInvalidSession
	}
	return nil
}
