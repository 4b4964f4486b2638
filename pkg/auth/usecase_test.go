package auth_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/thesanmark/auth-api/pkg/auth"
	"github.com/thesanmark/auth-api/pkg/repository/memory"
)

// stubIssuer hands out sequential token strings and records revocations.
type stubIssuer struct {
	issued  int
	revoked []int64
}

func (s *stubIssuer) Issue(_ context.Context, _ auth.User) (string, error) {
	s.issued++
	return fmt.Sprintf("token-%d", s.issued), nil
}

func (s *stubIssuer) RevokeAll(_ context.Context, userID int64) error {
	s.revoked = append(s.revoked, userID)
	return nil
}

func newService(t *testing.T) (auth.AuthUseCase, *memory.UserRepository, *stubIssuer) {
	t.Helper()
	repo := memory.NewUserRepository()
	issuer := &stubIssuer{}
	return auth.NewAuthService(repo, issuer), repo, issuer
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, repo, _ := newService(t)

	result, err := svc.Register(context.Background(), "Nadun", "nadun@example.com", "secret")
	require.NoError(t, err)
	assert.NotZero(t, result.User.ID)
	assert.Equal(t, "token-1", result.Token)

	stored, err := repo.GetByEmail(context.Background(), "nadun@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")))
}

func TestRegisterLowercasesEmail(t *testing.T) {
	svc, repo, _ := newService(t)

	_, err := svc.Register(context.Background(), "A", "Mixed@Example.COM", "p")
	require.NoError(t, err)

	_, err = repo.GetByEmail(context.Background(), "mixed@example.com")
	assert.NoError(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, repo, _ := newService(t)

	_, err := svc.Register(context.Background(), "A", "a@x.com", "p")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "B", "a@x.com", "other")
	assert.ErrorIs(t, err, auth.ErrEmailTaken)
	assert.Equal(t, 1, repo.Len())
}

func TestLogin(t *testing.T) {
	svc, _, _ := newService(t)
	_, err := svc.Register(context.Background(), "A", "a@x.com", "p")
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		result, err := svc.Login(context.Background(), "a@x.com", "p")
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", result.User.Email)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "a@x.com", "wrong")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@x.com", "p")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestLoginIssuesFreshToken(t *testing.T) {
	svc, _, _ := newService(t)
	reg, err := svc.Register(context.Background(), "A", "a@x.com", "p")
	require.NoError(t, err)

	login, err := svc.Login(context.Background(), "a@x.com", "p")
	require.NoError(t, err)
	assert.NotEqual(t, reg.Token, login.Token)
}

func TestLogoutRevokesAll(t *testing.T) {
	svc, _, issuer := newService(t)
	result, err := svc.Register(context.Background(), "A", "a@x.com", "p")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), result.User.ID))
	assert.Equal(t, []int64{result.User.ID}, issuer.revoked)
}
