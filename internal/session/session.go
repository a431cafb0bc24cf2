// Package session owns the client's belief about who is signed in.
//
// The store is constructed explicitly at startup and passed to whatever
// needs it; there is no package-level singleton. Durable state (the token
// pair) lives in the tokens store, the current user lives in memory, and
// all transitions happen through the operations below.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mohammadmehrani/CAD/internal/api"
	"github.com/mohammadmehrani/CAD/internal/logging"
	"github.com/mohammadmehrani/CAD/internal/models"
	"github.com/mohammadmehrani/CAD/internal/tokens"
)

// State is the session resolution state.
//
// Transitions:
//
//	Unknown -> Unauthenticated   (no stored token, or profile fetch failed)
//	Unknown -> Authenticated     (stored token, profile fetch ok)
//	Authenticated -> Unauthenticated (logout, forced expiry)
//	Authenticated -> Authenticated   (profile update)
//
// No other transitions exist.
type State int

const (
	StateUnknown State = iota
	StateUnauthenticated
	StateAuthenticated
)

// Navigation targets reported by operations that force a location change.
const (
	TargetHome      = "/"
	TargetLogin     = "/login"
	TargetDashboard = "/dashboard"
)

// ErrPasswordMismatch is returned by Register and ChangePassword before
// any request is made, when the password and its confirmation differ.
// The presentation layer localizes it.
var ErrPasswordMismatch = errors.New("passwords do not match")

// Store holds the current session. Safe for concurrent use.
type Store struct {
	api    *api.Client
	tokens tokens.Store
	log    logging.Logger

	// navigate is called with a target when an operation forces a
	// location change (logout -> home, expiry -> login). Optional.
	navigate func(target string)

	mu    sync.RWMutex
	state State
	user  *models.User
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithNavigator registers the forced-navigation callback.
func WithNavigator(fn func(target string)) Option {
	return func(s *Store) { s.navigate = fn }
}

// New returns a Store in the Unknown state. Call Restore to resolve it.
func New(client *api.Client, store tokens.Store, opts ...Option) *Store {
	s := &Store{
		api:    client,
		tokens: store,
		log:    logging.Nop(),
		state:  StateUnknown,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current resolution state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Loading reports whether the session is still unresolved.
func (s *Store) Loading() bool { return s.State() == StateUnknown }

// Authenticated is exactly "a non-absent current user is loaded".
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// IsAdmin reports whether the loaded user has the admin role.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsAdmin()
}

// CurrentUser returns the loaded user, or nil.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Restore resolves the session from durable state: no stored access token
// means Unauthenticated; otherwise the profile is fetched (the API client
// silently refreshes an expired token once). A failed fetch clears both
// tokens and resolves Unauthenticated.
func (s *Store) Restore(ctx context.Context) error {
	access, err := s.tokens.Get(ctx, tokens.KeyAccessToken)
	if err != nil {
		s.resolve(StateUnauthenticated, nil)
		return err
	}
	if access == "" {
		s.resolve(StateUnauthenticated, nil)
		return nil
	}

	if expired, exp := accessTokenExpired(access); expired {
		s.log.Debug(ctx, "stored access token expired, relying on refresh", "expired_at", exp)
	}

	user, err := s.api.Profile(ctx)
	if err != nil {
		s.log.Warn(ctx, "session restore failed, clearing tokens", "error", err)
		if clearErr := s.tokens.Clear(ctx); clearErr != nil {
			s.log.Error(ctx, "failed to clear tokens", "error", clearErr)
		}
		s.resolve(StateUnauthenticated, nil)
		return nil
	}

	s.resolve(StateAuthenticated, user)
	return nil
}

// Login exchanges credentials for a token pair, persists it, and loads the
// profile. On any failure the session is left unauthenticated.
func (s *Store) Login(ctx context.Context, email, password string) (*models.User, error) {
	pair, err := s.api.Token(ctx, email, password)
	if err != nil {
		s.resolve(StateUnauthenticated, nil)
		return nil, err
	}

	if err := s.tokens.SetPair(ctx, pair.Access, pair.Refresh); err != nil {
		s.resolve(StateUnauthenticated, nil)
		return nil, err
	}

	user, err := s.api.Profile(ctx)
	if err != nil {
		s.resolve(StateUnauthenticated, nil)
		return nil, err
	}

	s.resolve(StateAuthenticated, user)
	s.log.Info(ctx, "logged in", "email", user.Email)
	return user, nil
}

// Register creates an account and logs in with the same credentials.
// A password/confirmation mismatch is rejected before the backend is
// reached.
func (s *Store) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if req.Password != req.PasswordConfirm {
		return nil, ErrPasswordMismatch
	}
	if err := s.api.Register(ctx, req); err != nil {
		return nil, err
	}
	return s.Login(ctx, req.Email, req.Password)
}

// Logout clears the durable tokens and the in-memory user and forces
// navigation home. It is a side effect only and cannot fail.
func (s *Store) Logout(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear tokens on logout", "error", err)
	}
	s.resolve(StateUnauthenticated, nil)
	s.log.Info(ctx, "logged out")
	if s.navigate != nil {
		s.navigate(TargetHome)
	}
}

// UpdateUser sends a partial profile patch and replaces the in-memory
// user with the server's response. Never optimistic.
func (s *Store) UpdateUser(ctx context.Context, patch map[string]any) (*models.User, error) {
	user, err := s.api.UpdateProfile(ctx, patch)
	if err != nil {
		return nil, err
	}
	s.resolve(StateAuthenticated, user)
	return user, nil
}

// ChangePassword changes the password, guarding the confirmation
// client-side like Register does.
func (s *Store) ChangePassword(ctx context.Context, old, new, confirm string) error {
	if new != confirm {
		return ErrPasswordMismatch
	}
	return s.api.ChangePassword(ctx, &models.ChangePasswordRequest{
		OldPassword:        old,
		NewPassword:        new,
		NewPasswordConfirm: confirm,
	})
}

// HandleSessionExpired is wired as the API client's failed-refresh hook.
// The client has already cleared the tokens; here the in-memory identity
// is dropped and navigation to the login entry point is forced.
func (s *Store) HandleSessionExpired() {
	s.resolve(StateUnauthenticated, nil)
	if s.navigate != nil {
		s.navigate(TargetLogin)
	}
}

func (s *Store) resolve(state State, user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.user = user
}

// accessTokenExpired decodes the token's exp claim without verifying the
// signature; the client holds no signing key and only wants a hint.
func accessTokenExpired(token string) (bool, string) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false, ""
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false, ""
	}
	if exp.Before(nowFunc()) {
		return true, exp.String()
	}
	return false, ""
}
