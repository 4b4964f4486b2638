package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a registered account.
// The password hash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AccessToken is the server-side record of an issued bearer token.
// The signed token string handed to the client references this record
// by ID; deleting the record revokes the token.
type AccessToken struct {
	ID        uuid.UUID
	UserID    int64
	Name      string
	Abilities []string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token is past its expiry at the given instant.
func (t AccessToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// Can reports whether the token grants the named ability.
// A token holding "*" grants everything.
func (t AccessToken) Can(ability string) bool {
	for _, a := range t.Abilities {
		if a == "*" || a == ability {
			return true
		}
	}
	return false
}
