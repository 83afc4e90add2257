package apiclient_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jesbalchiero/insidechurch/pkg/apiclient"
)

type staticTokens string

func (s staticTokens) AccessToken() string { return string(s) }

type echo struct {
	Method        string `json:"method"`
	Path          string `json:"path"`
	Authorization string `json:"authorization"`
	ContentType   string `json:"content_type"`
	Body          string `json:"body"`
}

func echoServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.NewEncoder(w).Encode(echo{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
			Body:          string(raw),
		})
	}))
}

func TestClient_Do(t *testing.T) {
	ctx := context.Background()

	t.Run("injects bearer token and json defaults", func(t *testing.T) {
		srv := echoServer(t)
		defer srv.Close()

		client := apiclient.New(srv.URL, apiclient.WithTokenProvider(staticTokens("T1")))

		got, err := apiclient.Call[echo](ctx, client, http.MethodGet, "/users/me", nil)
		require.NoError(t, err)
		assert.Equal(t, "Bearer T1", got.Authorization)
		assert.Equal(t, "application/json", got.ContentType)
		assert.Equal(t, "/users/me", got.Path)
	})

	t.Run("no token means no authorization header", func(t *testing.T) {
		srv := echoServer(t)
		defer srv.Close()

		client := apiclient.New(srv.URL, apiclient.WithTokenProvider(staticTokens("")))

		got, err := apiclient.Call[echo](ctx, client, http.MethodGet, "/health", nil)
		require.NoError(t, err)
		assert.Empty(t, got.Authorization)
	})

	t.Run("caller headers win over defaults", func(t *testing.T) {
		srv := echoServer(t)
		defer srv.Close()

		client := apiclient.New(srv.URL, apiclient.WithTokenProvider(staticTokens("T1")))

		got, err := apiclient.Call[echo](ctx, client, http.MethodGet, "/",
			nil, apiclient.WithHeader("Authorization", "Basic abc"))
		require.NoError(t, err)
		assert.Equal(t, "Basic abc", got.Authorization)
	})

	t.Run("encodes body relative to base url", func(t *testing.T) {
		srv := echoServer(t)
		defer srv.Close()

		client := apiclient.New(srv.URL + "/") // trailing slash trimmed

		got, err := apiclient.Call[echo](ctx, client, http.MethodPost, "/auth/login",
			map[string]string{"email": "a@b.com"})
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, got.Method)
		assert.JSONEq(t, `{"email":"a@b.com"}`, got.Body)
	})

	t.Run("nil out ignores response body", func(t *testing.T) {
		srv := echoServer(t)
		defer srv.Close()

		client := apiclient.New(srv.URL)
		assert.NoError(t, client.Do(ctx, http.MethodPost, "/auth/logout", nil, nil))
	})
}

func TestClient_Errors(t *testing.T) {
	ctx := context.Background()

	errorServer := func(status int, body string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			w.Write([]byte(body))
		}))
	}

	t.Run("structured error body is parsed", func(t *testing.T) {
		srv := errorServer(http.StatusUnauthorized,
			`{"code":"INVALID_CREDENTIALS","message":"Invalid email or password"}`)
		defer srv.Close()

		client := apiclient.New(srv.URL)
		err := client.Do(ctx, http.MethodPost, "/auth/login", nil, nil)
		require.Error(t, err)

		var apiErr *apiclient.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
		assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
		assert.Equal(t, "Invalid email or password", apiErr.Message)
	})

	t.Run("401 matches ErrUnauthenticated", func(t *testing.T) {
		srv := errorServer(http.StatusUnauthorized, `{"code":"UNAUTHORIZED","message":"expired"}`)
		defer srv.Close()

		client := apiclient.New(srv.URL)
		err := client.Do(ctx, http.MethodGet, "/users/me", nil, nil)
		assert.ErrorIs(t, err, apiclient.ErrUnauthenticated)
		assert.NotErrorIs(t, err, apiclient.ErrServer)
	})

	t.Run("5xx matches ErrServer", func(t *testing.T) {
		srv := errorServer(http.StatusBadGateway, `oops`)
		defer srv.Close()

		client := apiclient.New(srv.URL)
		err := client.Do(ctx, http.MethodGet, "/users/me", nil, nil)
		assert.ErrorIs(t, err, apiclient.ErrServer)
		assert.NotErrorIs(t, err, apiclient.ErrUnauthenticated)
	})

	t.Run("unstructured body falls back to status key", func(t *testing.T) {
		srv := errorServer(http.StatusUnprocessableEntity, `<html>nope</html>`)
		defer srv.Close()

		client := apiclient.New(srv.URL)
		err := client.Do(ctx, http.MethodPost, "/auth/register", nil, nil)

		var apiErr *apiclient.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "unprocessable_entity", apiErr.Code)
	})

	t.Run("unreachable server is a transport error", func(t *testing.T) {
		srv := errorServer(http.StatusOK, ``)
		srv.Close() // reject connections

		client := apiclient.New(srv.URL)
		err := client.Do(ctx, http.MethodGet, "/users/me", nil, nil)
		assert.ErrorIs(t, err, apiclient.ErrTransport)
	})

	t.Run("malformed success body is a transport error", func(t *testing.T) {
		srv := errorServer(http.StatusOK, `{broken`)
		defer srv.Close()

		client := apiclient.New(srv.URL)
		var out map[string]any
		err := client.Do(ctx, http.MethodGet, "/users/me", nil, &out)
		assert.ErrorIs(t, err, apiclient.ErrTransport)
	})
}
