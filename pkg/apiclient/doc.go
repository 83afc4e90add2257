// Package apiclient is the authenticated request client for the
// InsideChurch API: one JSON request in, a typed result or a normalized
// error out.
//
// The client injects the stored bearer token into outgoing requests via a
// read-only TokenProvider and classifies every failure into a small
// taxonomy (ErrTransport, ErrUnauthenticated, ErrServer, structured *Error
// codes for validation failures). It deliberately contains no session
// policy: refresh-on-401, retries and logout decisions belong to the auth
// service on top of it, which keeps retry loops bounded and visible.
//
//	client := apiclient.New("https://api.example.com",
//	    apiclient.WithTokenProvider(store),
//	)
//
//	user, err := apiclient.Call[session.User](ctx, client, http.MethodGet, "/users/me", nil)
//	if errors.Is(err, apiclient.ErrUnauthenticated) {
//	    // session policy decides: refresh or log out
//	}
package apiclient
