package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors used by repositories/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations may be in-memory, SQL, NoSQL, etc.
type UserRepository interface {
	// Create stores a new user and returns it with the store-assigned ID.
	// Returns ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, user User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
}

// TokenRepository holds issued access-token records. Revocation is
// deletion: a token whose record is gone is no longer accepted.
type TokenRepository interface {
	Create(ctx context.Context, token AccessToken) error
	GetByID(ctx context.Context, id uuid.UUID) (AccessToken, error)
	// DeleteByUser removes every token owned by the user and reports
	// how many were revoked.
	DeleteByUser(ctx context.Context, userID int64) (int64, error)
}
