// Package insidechurch is the Go client SDK for the InsideChurch
// authentication API: a persistent credential store, an authenticated
// request client, a session lifecycle service and a route guard, wired
// together the way a single-page app composes its auth module.
//
// Components (each usable on its own from pkg/):
//
//   - pkg/session: credential store with durable persistence
//   - pkg/apiclient: bearer-authenticated JSON client with a typed error taxonomy
//   - pkg/auth: login, registration, current-user, refresh and logout flows
//   - pkg/guard: navigation gating for protected and guest-only routes
//   - pkg/notify: user-facing notification sink
//
// Basic Usage:
//
//	cfg, err := insidechurch.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sdk, err := insidechurch.New(ctx, cfg,
//	    insidechurch.WithNotifier(toasts),
//	    insidechurch.WithAuthOptions(auth.WithRefresh(true)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if _, err := sdk.Auth.Login(ctx, email, password); err != nil {
//	    // errors.Is against auth.ErrInvalidCredentials etc.
//	}
//
//	mux.Handle("/dashboard", sdk.Guard.RequireAuth(dashboard))
package insidechurch
