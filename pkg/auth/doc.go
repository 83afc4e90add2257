// Package auth orchestrates the client-side session lifecycle against the
// InsideChurch API: login, registration, current-user retrieval, optional
// token refresh and logout.
//
// The Service is the single writer of the credential store and the single
// place where transport-level 401s become session policy. State mutations
// always happen before user notifications, so the session is consistent
// even if a notifier misbehaves. Retry-on-401 is an explicit two-step
// sequence — at most one refresh, then at most one retry of the original
// request — never hidden interceptor recursion.
//
//	store := session.New(session.NewFileStorage(dir))
//	store.Load(ctx)
//
//	client := apiclient.New(baseURL, apiclient.WithTokenProvider(store))
//	svc := auth.New(client, store,
//	    auth.WithNotifier(toasts),
//	    auth.WithRefresh(true),
//	)
//
//	if _, err := svc.Login(ctx, email, password); err != nil {
//	    switch {
//	    case errors.Is(err, auth.ErrInvalidCredentials):
//	        // keep the form editable
//	    case errors.Is(err, apiclient.ErrTransport):
//	        // generic connectivity failure
//	    }
//	}
//
// Concurrent refreshes are de-duplicated: any number of flows hitting a
// 401 at the same time results in exactly one request to the refresh
// endpoint, with every caller observing the same outcome.
package auth
