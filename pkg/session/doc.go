// Package session is the client-side credential store: it owns the current
// authentication state (access token, optional refresh token, user profile)
// and mirrors every mutation to a durable key-value record so the session
// survives process restarts.
//
// The package is storage-agnostic: anything satisfying the Storage
// interface can hold the persisted record. A file-backed implementation
// (the moral equivalent of browser localStorage for a CLI or desktop
// process) and an in-memory test double ship out of the box.
//
// # Usage
//
//	storage := session.NewFileStorage(filepath.Join(home, ".insidechurch"))
//	store := session.New(storage)
//
//	// Rehydrate a previous session at startup.
//	if _, err := store.Load(ctx); err != nil {
//	    return err
//	}
//
//	if store.IsAuthenticated() {
//	    // attach store.AccessToken() to outgoing requests
//	}
//
// Mutations go through Set, SetUser and Clear; all of them keep the
// persisted record in sync before the in-memory state becomes visible to
// readers. The store is safe for concurrent use.
package session
