package session

// Option is a functional option for configuring the Store.
type Option func(*Store)

// WithKey overrides the storage key the session record is persisted under.
// Useful when several stores share one storage backend.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}
