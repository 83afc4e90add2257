// Package guard gates navigation based on session presence: protected
// routes redirect anonymous users to the login route, guest-only routes
// (login, register) redirect authenticated users to the home route.
//
// The guard is deliberately cheap: it reads a single boolean off the
// credential store and never performs network calls, so navigation latency
// is never coupled to network latency. When a token exists but the profile
// hasn't been fetched yet, navigation proceeds and the destination view
// triggers the profile fetch itself.
//
// Check is the router-agnostic core; RequireAuth and GuestOnly wrap it as
// standard net/http middleware for server-rendered apps.
package guard
