package domain

import "time"

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents a user of the application in the domain.
type User struct {
	UserID       string       `json:"userID"` // Primary Key (UUID)
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	PasswordHash *string      `json:"-"` // nil for OAuth-only users
	AuthProvider AuthProvider `json:"authProvider"`
	// ProviderUserID is the provider's unique ID for the user (e.g. Google's sub claim).
	ProviderUserID         *string    `json:"-"`
	IsVerified             bool       `json:"isVerified"`
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// GetUserID returns the user's ID.
func (u *User) GetUserID() string { return u.UserID }

// GetUsername returns the user's username.
func (u *User) GetUsername() string { return u.Username }

// GetName returns the user's display name.
func (u *User) GetName() string { return u.Name }

// GoogleUserInfo holds the profile fields returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
