package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase describes registration, authentication and session teardown.
type AuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Logout(ctx context.Context, userID int64) error
}

type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	repo   UserRepository
	tokens TokenIssuer
}

// NewAuthService returns the default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, tokens TokenIssuer) AuthUseCase {
	return &authService{repo: repo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (AuthResult, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}

	user, err := s.repo.Create(ctx, User{
		Name:         name,
		Email:        strings.ToLower(email),
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		// The unique index on email is the serialization point for
		// concurrent registrations; both the pre-checked and the racy
		// duplicate surface as ErrEmailTaken.
		return AuthResult{}, err
	}

	token, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the
		// caller; both collapse to ErrInvalidCredentials.
		return AuthResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	// A fresh token per login; earlier tokens stay valid until logout.
	token, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Logout(ctx context.Context, userID int64) error {
	return s.tokens.RevokeAll(ctx, userID)
}
