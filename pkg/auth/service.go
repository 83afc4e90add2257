package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/jesbalchiero/insidechurch/pkg/apiclient"
	"github.com/jesbalchiero/insidechurch/pkg/notify"
	"github.com/jesbalchiero/insidechurch/pkg/session"
)

// API endpoints the service talks to.
const (
	loginPath    = "/auth/login"
	registerPath = "/auth/register"
	refreshPath  = "/auth/refresh"
	logoutPath   = "/auth/logout"
	mePath       = "/users/me"
)

// Machine-readable error codes the API uses for branching.
const (
	codeInvalidCredentials = "INVALID_CREDENTIALS"
	codeEmailExists        = "EMAIL_EXISTS"
)

// Service orchestrates the session lifecycle: login, registration,
// current-user retrieval, token refresh and logout. It is the only
// component that mutates the credential store, and the only layer that
// turns transport-level 401s into session policy.
type Service struct {
	client   *apiclient.Client
	store    *session.Store
	notifier notify.Notifier
	logger   *slog.Logger

	registerAutoLogin bool
	serverLogout      bool
	refreshEnabled    bool

	mu         sync.Mutex
	status     Status
	refreshing *refreshCall
}

// refreshCall is one in-flight refresh attempt; concurrent callers wait on
// done and share err instead of issuing duplicate requests.
type refreshCall struct {
	done chan struct{}
	err  error
}

// New creates a Service over an API client and credential store. Hydrate
// the store (session.Store.Load) before constructing the service so the
// lifecycle state starts out matching the persisted session.
func New(client *apiclient.Client, store *session.Store, opts ...Option) *Service {
	s := &Service{
		client:            client,
		store:             store,
		notifier:          notify.NoOp{},
		logger:            slog.Default(),
		registerAutoLogin: true,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.status = StatusAnonymous
	if store.IsAuthenticated() {
		s.status = StatusAuthenticated
	}
	return s
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token        string        `json:"token"`
	RefreshToken string        `json:"refreshToken,omitempty"`
	User         *session.User `json:"user,omitempty"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Login authenticates with email and password. On success the tokens and
// profile are stored atomically and a success notification is emitted. A
// failed login never touches a pre-existing session.
func (s *Service) Login(ctx context.Context, email, password string) (*session.User, error) {
	prev, err := s.begin(StatusAuthenticating)
	if err != nil {
		return nil, err
	}

	resp, err := apiclient.Call[authResponse](ctx, s.client, http.MethodPost, loginPath,
		loginRequest{Email: email, Password: password})
	if err != nil {
		s.settle(StatusAuthenticating, prev)
		err = classify(err)
		s.logger.DebugContext(ctx, "login failed", slog.Any("error", err))
		s.notifier.Notify(ctx, notify.Error(failureMessage(err)))
		return nil, err
	}

	sess := session.Session{
		AccessToken:  resp.Token,
		RefreshToken: resp.RefreshToken,
		User:         resp.User,
	}
	if err := s.store.Set(ctx, sess); err != nil {
		s.settle(StatusAuthenticating, prev)
		return nil, err
	}

	s.settle(StatusAuthenticating, StatusAuthenticated)
	s.logger.DebugContext(ctx, "login succeeded", slog.String("email", email))
	s.notifier.Notify(ctx, notify.Success("Signed in successfully."))
	return resp.User, nil
}

// Register creates an account. By default the backend returns a session
// with the new account and the user is signed in immediately; with
// WithRegisterAutoLogin(false), or when the backend answers 2xx without a
// token, the user stays anonymous and is directed to sign in.
func (s *Service) Register(ctx context.Context, name, email, password string) (*session.User, error) {
	prev, err := s.begin(StatusAuthenticating)
	if err != nil {
		return nil, err
	}

	resp, err := apiclient.Call[authResponse](ctx, s.client, http.MethodPost, registerPath,
		registerRequest{Name: name, Email: email, Password: password})
	if err != nil {
		s.settle(StatusAuthenticating, prev)
		err = classify(err)
		s.logger.DebugContext(ctx, "registration failed", slog.Any("error", err))
		s.notifier.Notify(ctx, notify.Error(failureMessage(err)))
		return nil, err
	}

	if !s.registerAutoLogin || resp.Token == "" {
		s.settle(StatusAuthenticating, prev)
		s.notifier.Notify(ctx, notify.Success("Account created. Please sign in."))
		return resp.User, nil
	}

	sess := session.Session{
		AccessToken:  resp.Token,
		RefreshToken: resp.RefreshToken,
		User:         resp.User,
	}
	if err := s.store.Set(ctx, sess); err != nil {
		s.settle(StatusAuthenticating, prev)
		return nil, err
	}

	s.settle(StatusAuthenticating, StatusAuthenticated)
	s.notifier.Notify(ctx, notify.Success("Account created successfully."))
	return resp.User, nil
}

// CurrentUser fetches the authenticated user's profile and stores it,
// preserving the tokens. Without a token it fails fast with ErrNoSession
// and no request is made. A 401 either triggers one refresh followed by
// one retry (when refresh is enabled and a refresh token is present) or
// clears the session.
func (s *Service) CurrentUser(ctx context.Context) (*session.User, error) {
	token := s.store.AccessToken()
	if token == "" {
		return nil, ErrNoSession
	}

	user, err := apiclient.Call[session.User](ctx, s.client, http.MethodGet, mePath, nil)
	if err == nil {
		return s.applyUser(ctx, token, &user)
	}
	if !errors.Is(err, apiclient.ErrUnauthenticated) {
		return nil, err
	}

	// The one place the transport's 401 signal crosses into session policy.
	if !s.refreshEnabled || s.store.RefreshToken() == "" {
		s.expire(ctx, token)
		return nil, errors.Join(ErrSessionExpired, err)
	}

	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}

	retryToken := s.store.AccessToken()
	user, err = apiclient.Call[session.User](ctx, s.client, http.MethodGet, mePath, nil)
	if err != nil {
		if errors.Is(err, apiclient.ErrUnauthenticated) {
			s.expire(ctx, retryToken)
			return nil, errors.Join(ErrSessionExpired, err)
		}
		return nil, err
	}
	return s.applyUser(ctx, retryToken, &user)
}

// Refresh exchanges the refresh token for a new token pair. Concurrent
// callers coalesce onto a single in-flight attempt and observe its
// outcome; exactly one request reaches the refresh endpoint. On failure
// the session is cleared entirely.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if call := s.refreshing; call != nil {
		s.mu.Unlock()
		select {
		case <-call.done:
			return call.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	call := &refreshCall{done: make(chan struct{})}
	s.refreshing = call
	s.mu.Unlock()

	call.err = s.doRefresh(ctx)

	s.mu.Lock()
	s.refreshing = nil
	s.mu.Unlock()
	close(call.done)

	return call.err
}

func (s *Service) doRefresh(ctx context.Context) error {
	if !s.refreshEnabled {
		return ErrRefreshNotSupported
	}

	current := s.store.Current()
	if current.RefreshToken == "" {
		return ErrNoSession
	}

	if _, err := s.begin(StatusRefreshing); err != nil {
		return err
	}

	resp, err := apiclient.Call[authResponse](ctx, s.client, http.MethodPost, refreshPath,
		refreshRequest{RefreshToken: current.RefreshToken})
	if err != nil {
		// Only clear if the session in the store is still the one whose
		// refresh was rejected.
		if s.store.RefreshToken() == current.RefreshToken {
			_ = s.store.Clear(ctx)
		}
		s.settle(StatusRefreshing, StatusAnonymous)
		s.logger.DebugContext(ctx, "token refresh failed", slog.Any("error", err))
		s.notifier.Notify(ctx, notify.Warning("Your session has expired. Please sign in again."))
		return errors.Join(ErrRefreshFailed, err)
	}

	// A logout or re-login won the race; drop the result.
	if s.store.RefreshToken() != current.RefreshToken {
		s.settle(StatusRefreshing, StatusAnonymous)
		return ErrNoSession
	}

	next := current
	next.AccessToken = resp.Token
	next.RefreshToken = resp.RefreshToken
	if err := s.store.Set(ctx, next); err != nil {
		s.settle(StatusRefreshing, StatusAnonymous)
		return err
	}

	s.settle(StatusRefreshing, StatusAuthenticated)
	s.logger.DebugContext(ctx, "token refresh succeeded")
	return nil
}

// Logout clears the session. The server-side invalidation call (when
// enabled) is best effort: its failure never prevents the local logout.
func (s *Service) Logout(ctx context.Context) error {
	if s.serverLogout {
		if err := s.client.Do(ctx, http.MethodPost, logoutPath, nil, nil); err != nil {
			s.logger.DebugContext(ctx, "server-side logout failed", slog.Any("error", err))
		}
	}

	err := s.store.Clear(ctx)
	s.setStatus(StatusAnonymous)
	s.notifier.Notify(ctx, notify.Info("Signed out."))
	return err
}

// applyUser stores the fetched profile unless the session changed while
// the request was in flight; a stale result is dropped, not applied.
func (s *Service) applyUser(ctx context.Context, token string, user *session.User) (*session.User, error) {
	if s.store.AccessToken() != token {
		return nil, ErrNoSession
	}
	if err := s.store.SetUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// expire clears the session after an unrecoverable 401, unless a
// concurrent flow already replaced it.
func (s *Service) expire(ctx context.Context, token string) {
	if s.store.AccessToken() != token {
		return
	}
	_ = s.store.Clear(ctx)
	s.setStatus(StatusAnonymous)
	s.notifier.Notify(ctx, notify.Warning("Your session has expired. Please sign in again."))
}

// classify maps the API's machine-readable error codes onto sentinel
// errors so callers can branch with errors.Is.
func classify(err error) error {
	var apiErr *apiclient.Error
	if !errors.As(err, &apiErr) {
		return err
	}
	switch apiErr.Code {
	case codeInvalidCredentials:
		return errors.Join(ErrInvalidCredentials, err)
	case codeEmailExists:
		return errors.Join(ErrEmailTaken, err)
	}
	return err
}

// failureMessage picks the user-facing message for a failed login or
// registration.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, ErrEmailTaken):
		return "This email is already registered."
	case errors.Is(err, apiclient.ErrServer):
		return "Something went wrong on our side. Please try again later."
	case errors.Is(err, apiclient.ErrTransport):
		return "Could not reach the server. Check your connection and try again."
	}

	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Something went wrong. Please try again."
}
