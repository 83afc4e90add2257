package auth

import (
	"log/slog"

	"github.com/jesbalchiero/insidechurch/pkg/notify"
)

// Option is a functional option for configuring the Service.
type Option func(*Service)

// WithNotifier sets the notification sink. Defaults to notify.NoOp.
func WithNotifier(n notify.Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRegisterAutoLogin controls whether a successful registration signs
// the user in when the backend returns a session. Enabled by default;
// disable it for backends whose register endpoint answers 2xx without
// issuing tokens.
func WithRegisterAutoLogin(enabled bool) Option {
	return func(s *Service) {
		s.registerAutoLogin = enabled
	}
}

// WithRefresh enables the token refresh capability. When disabled (the
// default), an unrecoverable 401 clears the session instead.
func WithRefresh(enabled bool) Option {
	return func(s *Service) {
		s.refreshEnabled = enabled
	}
}

// WithServerLogout enables the best-effort server-side invalidation call
// during Logout.
func WithServerLogout(enabled bool) Option {
	return func(s *Service) {
		s.serverLogout = enabled
	}
}
