// Package models defines the wire types exchanged with the CAD backend.
// Field names and json tags follow the backend serializers.
package models

// UserType enumerates account roles known to the backend.
type UserType string

const (
	UserTypeAdmin    UserType = "admin"
	UserTypeStaff    UserType = "staff"
	UserTypeCustomer UserType = "customer"
)

// Profile is the nested profile sub-record of a user.
type Profile struct {
	Bio        string `json:"bio,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Website    string `json:"website,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty"`
	Twitter    string `json:"twitter,omitempty"`
}

// User is the authenticated identity as returned by GET /accounts/profile/.
type User struct {
	ID                int64    `json:"id"`
	Email             string   `json:"email"`
	Username          string   `json:"username"`
	FirstName         string   `json:"first_name"`
	LastName          string   `json:"last_name"`
	FullName          string   `json:"full_name,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	Avatar            string   `json:"avatar,omitempty"`
	UserType          UserType `json:"user_type"`
	CompanyName       string   `json:"company_name,omitempty"`
	IsVerified        bool     `json:"is_verified"`
	PreferredLanguage string   `json:"preferred_language,omitempty"`
	CreatedAt         string   `json:"created_at,omitempty"`
	Profile           *Profile `json:"profile,omitempty"`
}

// IsAdmin reports whether the user may access the admin surface.
func (u *User) IsAdmin() bool {
	return u.UserType == UserTypeAdmin
}

// DisplayName prefers the backend-computed full name and falls back
// to first/last or the email address.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	if u.FirstName != "" || u.LastName != "" {
		if u.FirstName == "" {
			return u.LastName
		}
		if u.LastName == "" {
			return u.FirstName
		}
		return u.FirstName + " " + u.LastName
	}
	return u.Email
}

// RegisterRequest is the payload for POST /accounts/register/.
type RegisterRequest struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone,omitempty"`
	CompanyName     string `json:"company_name,omitempty"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// ChangePasswordRequest is the payload for POST /accounts/password/change/.
type ChangePasswordRequest struct {
	OldPassword        string `json:"old_password"`
	NewPassword        string `json:"new_password"`
	NewPasswordConfirm string `json:"new_password_confirm"`
}

// AccountStats is the dashboard summary from GET /accounts/stats/.
type AccountStats struct {
	UnreadMessages int      `json:"unread_messages"`
	TotalMessages  int      `json:"total_messages"`
	UserType       UserType `json:"user_type"`
	IsVerified     bool     `json:"is_verified"`
}
