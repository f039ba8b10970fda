package models

import "time"

// User is the database representation of a user row.
type User struct {
	UserID                 string  `db:"user_id"`
	Username               string  `db:"username"`
	Email                  string  `db:"email"`
	Name                   string  `db:"name"`
	PasswordHash           *string `db:"password_hash"`
	AuthProvider           string  `db:"auth_provider"`
	ProviderUserID         *string `db:"provider_user_id"`
	IsVerified             bool    `db:"is_verified"`
	RefreshTokenHash       string  `db:"refresh_token_hash"`
	RefreshTokenExpiryTime *time.Time `db:"refresh_token_expiry_time"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
