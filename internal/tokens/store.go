// Package tokens persists the small durable client-side state: the
// access/refresh token pair and the preferred language. A session must
// survive a process restart, so the values live in a local sqlite
// database keyed by well-known names.
package tokens

import "context"

// Storage keys. These are the only durable keys the client defines.
const (
	KeyAccessToken       = "access_token"
	KeyRefreshToken      = "refresh_token"
	KeyPreferredLanguage = "preferred_language"
)

// Store is the durable key/value state shared by the API client and the
// session store.
//
// Contract:
//   - Get returns "" (no error) for a missing key.
//   - SetPair writes both tokens atomically.
//   - Clear removes both tokens but leaves other keys (language) intact.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	SetPair(ctx context.Context, access, refresh string) error
	Clear(ctx context.Context) error
}
