package api

import "context"

// TokenPair is the result of a successful credential exchange.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Token exchanges credentials for an access/refresh token pair.
func (c *Client) Token(ctx context.Context, email, password string) (*TokenPair, error) {
	var pair TokenPair
	body := map[string]string{"email": email, "password": password}
	if err := c.post(ctx, "/auth/token/", body, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// Refresh exchanges a refresh token for a new access token. The 401
// interceptor uses its own non-recursing path; this method is for
// callers that want an explicit refresh.
func (c *Client) Refresh(ctx context.Context, refresh string) (string, error) {
	return c.refreshAccessToken(ctx, refresh)
}

// Verify asks the backend whether a token is still valid.
func (c *Client) Verify(ctx context.Context, token string) error {
	return c.post(ctx, "/auth/token/verify/", map[string]string{"token": token}, nil)
}
