package auth

import "context"

// TokenIssuer abstracts bearer-token creation and revocation so the use
// cases stay independent of the token format.
type TokenIssuer interface {
	// Issue mints a new token bound to the user and returns the string
	// the client presents in the Authorization header.
	Issue(ctx context.Context, user User) (string, error)
	// RevokeAll invalidates every outstanding token owned by the user.
	RevokeAll(ctx context.Context, userID int64) error
}
