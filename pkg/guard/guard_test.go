package guard_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jesbalchiero/insidechurch/pkg/guard"
	"github.com/jesbalchiero/insidechurch/pkg/session"
)

type staticSession bool

func (s staticSession) IsAuthenticated() bool { return bool(s) }

func TestGuard_Check(t *testing.T) {
	t.Run("public always allowed", func(t *testing.T) {
		assert.True(t, guard.New(staticSession(false)).Check(guard.AccessPublic).Allowed)
		assert.True(t, guard.New(staticSession(true)).Check(guard.AccessPublic).Allowed)
	})

	t.Run("protected requires token", func(t *testing.T) {
		d := guard.New(staticSession(false)).Check(guard.AccessProtected)
		assert.False(t, d.Allowed)
		assert.Equal(t, guard.DefaultLoginRoute, d.RedirectTo)

		assert.True(t, guard.New(staticSession(true)).Check(guard.AccessProtected).Allowed)
	})

	t.Run("guest only rejects token", func(t *testing.T) {
		d := guard.New(staticSession(true)).Check(guard.AccessGuestOnly)
		assert.False(t, d.Allowed)
		assert.Equal(t, guard.DefaultHomeRoute, d.RedirectTo)

		assert.True(t, guard.New(staticSession(false)).Check(guard.AccessGuestOnly).Allowed)
	})

	t.Run("custom routes", func(t *testing.T) {
		g := guard.New(staticSession(false),
			guard.WithLoginRoute("/signin"),
			guard.WithHomeRoute("/app"),
		)
		assert.Equal(t, "/signin", g.Check(guard.AccessProtected).RedirectTo)

		g = guard.New(staticSession(true),
			guard.WithLoginRoute("/signin"),
			guard.WithHomeRoute("/app"),
		)
		assert.Equal(t, "/app", g.Check(guard.AccessGuestOnly).RedirectTo)
	})

	t.Run("token without profile passes", func(t *testing.T) {
		store := session.New(session.NewMemoryStorage())
		require.NoError(t, store.Set(context.Background(), session.Session{AccessToken: "T1"}))

		assert.True(t, guard.New(store).Check(guard.AccessProtected).Allowed)
	})
}

func TestGuard_Middleware(t *testing.T) {
	store := session.New(session.NewMemoryStorage())
	g := guard.New(store)

	ok := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	r := chi.NewRouter()
	r.With(g.GuestOnly).Get("/login", ok)
	r.With(g.RequireAuth).Get("/dashboard", ok)
	r.Get("/", ok)

	srv := httptest.NewServer(r)
	defer srv.Close()

	get := func(t *testing.T, path string) *http.Response {
		t.Helper()
		client := srv.Client()
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
		resp, err := client.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		return resp
	}

	t.Run("anonymous", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get(t, "/").StatusCode)
		assert.Equal(t, http.StatusOK, get(t, "/login").StatusCode)

		resp := get(t, "/dashboard")
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, guard.DefaultLoginRoute, resp.Header.Get("Location"))
	})

	t.Run("authenticated", func(t *testing.T) {
		require.NoError(t, store.Set(context.Background(), session.Session{AccessToken: "T1"}))

		assert.Equal(t, http.StatusOK, get(t, "/dashboard").StatusCode)

		resp := get(t, "/login")
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, guard.DefaultHomeRoute, resp.Header.Get("Location"))
	})

	t.Run("denied again after session cleared", func(t *testing.T) {
		require.NoError(t, store.Clear(context.Background()))

		resp := get(t, "/dashboard")
		assert.Equal(t, http.StatusFound, resp.StatusCode)
	})
}
