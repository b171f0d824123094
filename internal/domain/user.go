package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is the authorization principal. Its ID equals the subject of
// the caller's access token; the role is only ever read from storage.
type Account struct {
	ID        uuid.UUID
	Email     string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Credential holds the password hash of an account.
type Credential struct {
	AccountID    uuid.UUID
	PasswordHash string
	CreatedAt    time.Time
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
