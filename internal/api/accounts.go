package api

import (
	"context"

	"github.com/mohammadmehrani/CAD/internal/models"
)

// Register creates a new account. Validation failures (duplicate email,
// weak password) come back as a normalized *Error.
func (c *Client) Register(ctx context.Context, req *models.RegisterRequest) error {
	return c.post(ctx, "/accounts/register/", req, nil)
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/accounts/profile/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile sends a partial profile patch and returns the server's
// view of the updated user. Only the fields present in patch are changed.
func (c *Client) UpdateProfile(ctx context.Context, patch map[string]any) (*models.User, error) {
	var user models.User
	if err := c.patch(ctx, "/accounts/profile/update/", patch, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword changes the account password.
func (c *Client) ChangePassword(ctx context.Context, req *models.ChangePasswordRequest) error {
	return c.post(ctx, "/accounts/password/change/", req, nil)
}

// AccountStats fetches the dashboard counters.
func (c *Client) AccountStats(ctx context.Context) (*models.AccountStats, error) {
	var stats models.AccountStats
	if err := c.get(ctx, "/accounts/stats/", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ToggleLanguage flips the server-side preferred language and returns the
// updated user.
func (c *Client) ToggleLanguage(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.post(ctx, "/accounts/language/toggle/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
