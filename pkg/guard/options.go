package guard

// Default redirect targets.
const (
	DefaultLoginRoute = "/login"
	DefaultHomeRoute  = "/dashboard"
)

// Option is a functional option for configuring the Guard.
type Option func(*Guard)

// WithLoginRoute sets where anonymous users are sent when they hit a
// protected route.
func WithLoginRoute(route string) Option {
	return func(g *Guard) {
		if route != "" {
			g.loginRoute = route
		}
	}
}

// WithHomeRoute sets where authenticated users are sent when they hit a
// guest-only route.
func WithHomeRoute(route string) Option {
	return func(g *Guard) {
		if route != "" {
			g.homeRoute = route
		}
	}
}
