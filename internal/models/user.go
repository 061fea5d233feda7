package models

import "time"

// User is the database row model for the users table.
type User struct {
	UserID         string `db:"user_id"`
	Username       string `db:"username"`
	Name           string `db:"name"`
	Email          string `db:"email"`
	AccountNumber  string `db:"account_number"`
	IsOffice       bool   `db:"is_office"`
	City           string `db:"city"`
	PasswordHash   string `db:"password_hash"`
	AuthProvider   string `db:"auth_provider"`
	ProviderUserID string `db:"provider_user_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
