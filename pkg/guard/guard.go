package guard

import (
	"net/http"
)

// Access classifies a route by who may enter it.
type Access int

const (
	// AccessPublic routes are open to everyone.
	AccessPublic Access = iota
	// AccessProtected routes require an authenticated session.
	AccessProtected
	// AccessGuestOnly routes (login, register) are for anonymous users;
	// an authenticated user is sent to the home route instead.
	AccessGuestOnly
)

// SessionReader is the read-only view of the credential store the guard
// consults. The guard never mutates session state and never calls the
// network: a token without a cached profile still passes, letting the
// destination view lazily fetch the profile.
type SessionReader interface {
	IsAuthenticated() bool
}

// Decision is the outcome of a navigation check.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Guard gates navigation transitions based on session presence.
type Guard struct {
	sessions   SessionReader
	loginRoute string
	homeRoute  string
}

// New creates a Guard over the given session reader.
func New(sessions SessionReader, opts ...Option) *Guard {
	g := &Guard{
		sessions:   sessions,
		loginRoute: DefaultLoginRoute,
		homeRoute:  DefaultHomeRoute,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Check decides whether navigation to a route with the given access level
// may proceed, and where to redirect when it may not.
func (g *Guard) Check(access Access) Decision {
	authenticated := g.sessions.IsAuthenticated()

	switch access {
	case AccessProtected:
		if !authenticated {
			return Decision{RedirectTo: g.loginRoute}
		}
	case AccessGuestOnly:
		if authenticated {
			return Decision{RedirectTo: g.homeRoute}
		}
	}
	return Decision{Allowed: true}
}

// RequireAuth is middleware for protected routes: anonymous requests are
// redirected to the login route and the original navigation is aborted.
func (g *Guard) RequireAuth(next http.Handler) http.Handler {
	return g.middleware(AccessProtected, next)
}

// GuestOnly is middleware for auth-only routes (login, register pages):
// authenticated requests are redirected to the home route.
func (g *Guard) GuestOnly(next http.Handler) http.Handler {
	return g.middleware(AccessGuestOnly, next)
}

func (g *Guard) middleware(access Access, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if d := g.Check(access); !d.Allowed {
			http.Redirect(w, r, d.RedirectTo, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
