// Package token issues and verifies bearer access tokens.
//
// The token string is an HS256-signed JWT, but it is opaque to clients:
// acceptance additionally requires that the token's ID (jti) still has a
// record in the token repository. Deleting the records revokes the
// tokens immediately, signature validity notwithstanding.
package token

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/thesanmark/auth-api/pkg/auth"
)

// DefaultTokenName mirrors the label access tokens are created under.
const DefaultTokenName = "API TOKEN"

var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	jwt.RegisteredClaims
	Abilities []string `json:"abilities,omitempty"`
}

// Issuer mints, verifies and revokes access tokens. It implements
// auth.TokenIssuer.
type Issuer struct {
	repo   auth.TokenRepository
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewIssuer(repo auth.TokenRepository, secret, issuer string, ttl time.Duration) *Issuer {
	return &Issuer{repo: repo, secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Issue creates a registry record and returns the signed token string.
// Each call produces an independent token; outstanding tokens for the
// same user remain valid.
func (i *Issuer) Issue(ctx context.Context, user auth.User) (string, error) {
	now := time.Now().UTC()
	record := auth.AccessToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		Name:      DefaultTokenName,
		Abilities: []string{"*"},
		CreatedAt: now,
		ExpiresAt: now.Add(i.ttl),
	}
	if err := i.repo.Create(ctx, record); err != nil {
		return "", fmt.Errorf("store access token: %w", err)
	}

	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        record.ID.String(),
			Issuer:    i.issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(record.ExpiresAt),
		},
		Abilities: record.Abilities,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.secret)
}

// Verify checks the token string and returns the live registry record.
// Returns ErrInvalidToken for anything unacceptable: bad signature,
// wrong issuer, expiry, or a revoked (deleted) registry record.
func (i *Issuer) Verify(ctx context.Context, tokenStr string) (auth.AccessToken, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithIssuer(i.issuer))
	if err != nil || !parsed.Valid {
		return auth.AccessToken{}, ErrInvalidToken
	}
	c, ok := parsed.Claims.(*claims)
	if !ok {
		return auth.AccessToken{}, ErrInvalidToken
	}

	id, err := uuid.Parse(c.ID)
	if err != nil {
		return auth.AccessToken{}, ErrInvalidToken
	}
	record, err := i.repo.GetByID(ctx, id)
	if err != nil {
		// Revoked or never issued.
		return auth.AccessToken{}, ErrInvalidToken
	}
	if strconv.FormatInt(record.UserID, 10) != c.Subject {
		return auth.AccessToken{}, ErrInvalidToken
	}
	// The registry row is the source of truth for expiry.
	if record.Expired(time.Now().UTC()) {
		return auth.AccessToken{}, ErrInvalidToken
	}
	return record, nil
}

// RevokeAll deletes every token record owned by the user.
func (i *Issuer) RevokeAll(ctx context.Context, userID int64) error {
	_, err := i.repo.DeleteByUser(ctx, userID)
	return err
}
