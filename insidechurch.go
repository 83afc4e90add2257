package insidechurch

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jesbalchiero/insidechurch/pkg/apiclient"
	"github.com/jesbalchiero/insidechurch/pkg/auth"
	"github.com/jesbalchiero/insidechurch/pkg/config"
	"github.com/jesbalchiero/insidechurch/pkg/guard"
	"github.com/jesbalchiero/insidechurch/pkg/notify"
	"github.com/jesbalchiero/insidechurch/pkg/session"
)

// Config holds the settings the SDK needs to talk to the API.
type Config struct {
	// BaseURL is the API origin, e.g. "https://api.insidechurch.app".
	BaseURL string `env:"INSIDECHURCH_API_URL,required"`

	// SessionDir is where the persisted session record lives.
	SessionDir string `env:"INSIDECHURCH_SESSION_DIR" envDefault:".insidechurch"`

	// HTTPTimeout bounds every API request.
	HTTPTimeout time.Duration `env:"INSIDECHURCH_HTTP_TIMEOUT" envDefault:"15s"`

	LoginRoute string `env:"INSIDECHURCH_LOGIN_ROUTE" envDefault:"/login"`
	HomeRoute  string `env:"INSIDECHURCH_HOME_ROUTE" envDefault:"/dashboard"`
}

// LoadConfig resolves Config from the environment (and .env, if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SDK bundles the wired-up components: the credential store, the
// authenticated API client, the session service and the route guard.
type SDK struct {
	Store  *session.Store
	Client *apiclient.Client
	Auth   *auth.Service
	Guard  *guard.Guard
}

type sdkOptions struct {
	storage  session.Storage
	notifier notify.Notifier
	logger   *slog.Logger
	authOpts []auth.Option
}

// Option customizes SDK construction.
type Option func(*sdkOptions)

// WithStorage replaces the default file-backed session storage.
func WithStorage(storage session.Storage) Option {
	return func(o *sdkOptions) {
		if storage != nil {
			o.storage = storage
		}
	}
}

// WithNotifier sets the notification sink for the session service.
func WithNotifier(n notify.Notifier) Option {
	return func(o *sdkOptions) {
		if n != nil {
			o.notifier = n
		}
	}
}

// WithLogger sets the structured logger used across components.
func WithLogger(logger *slog.Logger) Option {
	return func(o *sdkOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithAuthOptions forwards options to the session service, e.g.
// auth.WithRefresh(true) or auth.WithRegisterAutoLogin(false).
func WithAuthOptions(opts ...auth.Option) Option {
	return func(o *sdkOptions) {
		o.authOpts = append(o.authOpts, opts...)
	}
}

// New wires the SDK the way a frontend app composes its auth module: the
// store is hydrated from persisted storage first, then the client, service
// and guard are built on top of it.
func New(ctx context.Context, cfg Config, opts ...Option) (*SDK, error) {
	o := &sdkOptions{
		notifier: notify.NoOp{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.storage == nil {
		o.storage = session.NewFileStorage(cfg.SessionDir)
	}

	store := session.New(o.storage)
	if _, err := store.Load(ctx); err != nil {
		return nil, err
	}

	client := apiclient.New(cfg.BaseURL,
		apiclient.WithTokenProvider(store),
		apiclient.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
	)

	svc := auth.New(client, store, append([]auth.Option{
		auth.WithNotifier(o.notifier),
		auth.WithLogger(o.logger),
	}, o.authOpts...)...)

	g := guard.New(store,
		guard.WithLoginRoute(cfg.LoginRoute),
		guard.WithHomeRoute(cfg.HomeRoute),
	)

	return &SDK{
		Store:  store,
		Client: client,
		Auth:   svc,
		Guard:  g,
	}, nil
}
