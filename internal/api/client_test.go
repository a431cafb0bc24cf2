package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammadmehrani/CAD/internal/tokens"
)

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestClient_BearerHeader(t *testing.T) {
	t.Parallel()

	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		writeJSON(t, w, http.StatusOK, map[string]string{"email": "a@b.c"})
	}))
	defer srv.Close()

	store := tokens.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), tokens.KeyAccessToken, "tok-123"))

	c := New(srv.URL, store)
	_, err := c.Profile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(t, w, http.StatusOK, []any{})
	}))
	defer srv.Close()

	c := New(srv.URL, tokens.NewMemoryStore())
	_, err := c.Heroes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_RefreshAndReplay(t *testing.T) {
	t.Parallel()

	var refreshCalls, profileCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/profile/", func(w http.ResponseWriter, r *http.Request) {
		profileCalls.Add(1)
		if r.Header.Get("Authorization") != "Bearer fresh" {
			writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "token expired"})
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]string{"email": "a@b.c"})
	})
	mux.HandleFunc("/auth/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "refresh-tok", body["refresh"])
		writeJSON(t, w, http.StatusOK, map[string]string{"access": "fresh"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := tokens.NewMemoryStore()
	require.NoError(t, store.SetPair(context.Background(), "stale", "refresh-tok"))

	c := New(srv.URL, store)
	user, err := c.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", user.Email)

	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.Equal(t, int32(2), profileCalls.Load())

	access, err := store.Get(context.Background(), tokens.KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "fresh", access)
}

func TestClient_SingleRefreshPerCall(t *testing.T) {
	t.Parallel()

	var refreshCalls, profileCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/profile/", func(w http.ResponseWriter, r *http.Request) {
		profileCalls.Add(1)
		// Still 401 even after the refresh succeeded.
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "nope"})
	})
	mux.HandleFunc("/auth/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		writeJSON(t, w, http.StatusOK, map[string]string{"access": "fresh"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := tokens.NewMemoryStore()
	require.NoError(t, store.SetPair(context.Background(), "stale", "refresh-tok"))

	c := New(srv.URL, store)
	_, err := c.Profile(context.Background())
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsUnauthorized())

	assert.Equal(t, int32(1), refreshCalls.Load(), "at most one refresh per call")
	assert.Equal(t, int32(2), profileCalls.Load(), "one original plus one replay")
}

func TestClient_FailedRefreshClearsTokensAndFiresHook(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/profile/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "token expired"})
	})
	mux.HandleFunc("/auth/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "refresh expired"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := tokens.NewMemoryStore()
	require.NoError(t, store.SetPair(context.Background(), "stale", "dead-refresh"))
	require.NoError(t, store.Set(context.Background(), tokens.KeyPreferredLanguage, "en"))

	var expired atomic.Bool
	c := New(srv.URL, store, WithSessionExpiredHook(func() { expired.Store(true) }))

	_, err := c.Profile(context.Background())
	require.Error(t, err)

	// The caller sees the original 401, not the refresh failure.
	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "token expired", apiErr.Detail)

	assert.True(t, expired.Load())

	access, err := store.Get(context.Background(), tokens.KeyAccessToken)
	require.NoError(t, err)
	assert.Empty(t, access)
	refresh, err := store.Get(context.Background(), tokens.KeyRefreshToken)
	require.NoError(t, err)
	assert.Empty(t, refresh)

	lang, err := store.Get(context.Background(), tokens.KeyPreferredLanguage)
	require.NoError(t, err)
	assert.Equal(t, "en", lang, "language survives a cleared session")
}

func TestClient_NoRefreshTokenReturnsOriginal401(t *testing.T) {
	t.Parallel()

	var refreshCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/profile/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "unauthorized"})
	})
	mux.HandleFunc("/auth/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := tokens.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), tokens.KeyAccessToken, "stale"))

	c := New(srv.URL, store)
	_, err := c.Profile(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNoRefreshToken)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsUnauthorized())
	assert.Equal(t, int32(0), refreshCalls.Load())
}

func TestClient_NetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := New(srv.URL, tokens.NewMemoryStore())
	_, err := c.Profile(context.Background())
	require.ErrorIs(t, err, ErrNetwork)
}

func TestClient_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"detail": "Not found."})
	}))
	defer srv.Close()

	c := New(srv.URL, tokens.NewMemoryStore())
	_, err := c.Project(context.Background(), "missing-slug")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}
