package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohammadmehrani/CAD/internal/api"
	"github.com/mohammadmehrani/CAD/internal/models"
	"github.com/mohammadmehrani/CAD/internal/tokens"
)

type backend struct {
	mux           *http.ServeMux
	registerCalls atomic.Int32
	profileFails  atomic.Bool
}

// newBackend serves the small slice of the API the session store touches.
func newBackend(t *testing.T) (*backend, *httptest.Server) {
	t.Helper()
	b := &backend{mux: http.NewServeMux()}

	b.mux.HandleFunc("/auth/token/", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds["password"] != "correct" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail": "invalid credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access": "acc-1", "refresh": "ref-1"}`))
	})
	b.mux.HandleFunc("/accounts/register/", func(w http.ResponseWriter, r *http.Request) {
		b.registerCalls.Add(1)
		w.WriteHeader(http.StatusCreated)
	})
	b.mux.HandleFunc("/accounts/profile/", func(w http.ResponseWriter, r *http.Request) {
		if b.profileFails.Load() {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail": "unauthorized"}`))
			return
		}
		require.NoError(t, json.NewEncoder(w).Encode(models.User{
			ID: 1, Email: "user@example.com", UserType: models.UserTypeCustomer,
		}))
	})
	// Refresh always fails so a broken profile fetch stays broken.
	b.mux.HandleFunc("/auth/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "refresh expired"}`))
	})

	srv := httptest.NewServer(b.mux)
	t.Cleanup(srv.Close)
	return b, srv
}

func newStore(t *testing.T, opts ...Option) (*Store, *tokens.MemoryStore, *backend) {
	t.Helper()
	b, srv := newBackend(t)
	ts := tokens.NewMemoryStore()
	return New(api.New(srv.URL, ts), ts, opts...), ts, b
}

func TestStore_InitialStateUnknown(t *testing.T) {
	t.Parallel()

	s, _, _ := newStore(t)
	assert.Equal(t, StateUnknown, s.State())
	assert.True(t, s.Loading())
	assert.False(t, s.Authenticated())
	assert.Nil(t, s.CurrentUser())
}

func TestStore_Login(t *testing.T) {
	t.Parallel()

	s, ts, _ := newStore(t)
	user, err := s.Login(context.Background(), "user@example.com", "correct")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)
	assert.Equal(t, StateAuthenticated, s.State())
	assert.True(t, s.Authenticated())
	assert.False(t, s.IsAdmin())

	access, err := ts.Get(context.Background(), tokens.KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", access)
	refresh, err := ts.Get(context.Background(), tokens.KeyRefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "ref-1", refresh)
}

func TestStore_LoginBadCredentials(t *testing.T) {
	t.Parallel()

	s, _, _ := newStore(t)
	_, err := s.Login(context.Background(), "user@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, StateUnauthenticated, s.State())
	assert.False(t, s.Authenticated())
}

func TestStore_RegisterMismatchNeverReachesBackend(t *testing.T) {
	t.Parallel()

	s, _, b := newStore(t)
	_, err := s.Register(context.Background(), &models.RegisterRequest{
		Email:           "user@example.com",
		Password:        "one",
		PasswordConfirm: "two",
	})
	require.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Equal(t, int32(0), b.registerCalls.Load())
}

func TestStore_RegisterAutoLogin(t *testing.T) {
	t.Parallel()

	s, _, b := newStore(t)
	user, err := s.Register(context.Background(), &models.RegisterRequest{
		Email:           "user@example.com",
		Password:        "correct",
		PasswordConfirm: "correct",
	})
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)
	assert.Equal(t, int32(1), b.registerCalls.Load())
	assert.True(t, s.Authenticated())
}

func TestStore_Logout(t *testing.T) {
	t.Parallel()

	var target string
	s, ts, _ := newStore(t, WithNavigator(func(to string) { target = to }))

	_, err := s.Login(context.Background(), "user@example.com", "correct")
	require.NoError(t, err)

	s.Logout(context.Background())
	assert.Equal(t, StateUnauthenticated, s.State())
	assert.Nil(t, s.CurrentUser())
	assert.Equal(t, TargetHome, target)

	access, err := ts.Get(context.Background(), tokens.KeyAccessToken)
	require.NoError(t, err)
	assert.Empty(t, access)
}

func TestStore_RestoreWithoutToken(t *testing.T) {
	t.Parallel()

	s, _, _ := newStore(t)
	require.NoError(t, s.Restore(context.Background()))
	assert.Equal(t, StateUnauthenticated, s.State())
}

func TestStore_RestoreWithToken(t *testing.T) {
	t.Parallel()

	s, ts, _ := newStore(t)
	require.NoError(t, ts.SetPair(context.Background(), "acc-1", "ref-1"))

	require.NoError(t, s.Restore(context.Background()))
	assert.Equal(t, StateAuthenticated, s.State())
	require.NotNil(t, s.CurrentUser())
	assert.Equal(t, "user@example.com", s.CurrentUser().Email)
}

func TestStore_RestoreFailureClearsTokens(t *testing.T) {
	t.Parallel()

	s, ts, b := newStore(t)
	b.profileFails.Store(true)
	require.NoError(t, ts.SetPair(context.Background(), "acc-1", "ref-1"))

	// A failed restore resolves unauthenticated, it is not an error.
	require.NoError(t, s.Restore(context.Background()))
	assert.Equal(t, StateUnauthenticated, s.State())

	access, err := ts.Get(context.Background(), tokens.KeyAccessToken)
	require.NoError(t, err)
	assert.Empty(t, access)
}

func TestStore_HandleSessionExpired(t *testing.T) {
	t.Parallel()

	var target string
	s, _, _ := newStore(t, WithNavigator(func(to string) { target = to }))

	_, err := s.Login(context.Background(), "user@example.com", "correct")
	require.NoError(t, err)

	s.HandleSessionExpired()
	assert.Equal(t, StateUnauthenticated, s.State())
	assert.Equal(t, TargetLogin, target)
}

func TestStore_ChangePasswordMismatch(t *testing.T) {
	t.Parallel()

	s, _, _ := newStore(t)
	err := s.ChangePassword(context.Background(), "old", "new-1", "new-2")
	require.ErrorIs(t, err, ErrPasswordMismatch)
}

func mintToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"exp":     exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestAccessTokenExpired(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = time.Now })

	expired, _ := accessTokenExpired(mintToken(t, now.Add(-time.Minute)))
	assert.True(t, expired)

	expired, _ = accessTokenExpired(mintToken(t, now.Add(time.Hour)))
	assert.False(t, expired)

	expired, _ = accessTokenExpired("not-a-jwt")
	assert.False(t, expired)
}
