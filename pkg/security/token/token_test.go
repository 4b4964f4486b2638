package token

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesanmark/auth-api/pkg/auth"
	"github.com/thesanmark/auth-api/pkg/repository/memory"
)

func testUser(id int64) auth.User {
	return auth.User{ID: id, Name: "A", Email: "a@x.com"}
}

func TestIssueVerifyRoundtrip(t *testing.T) {
	repo := memory.NewTokenRepository()
	issuer := NewIssuer(repo, "secret", "auth-api", time.Hour)

	tokenStr, err := issuer.Issue(context.Background(), testUser(7))
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	record, err := issuer.Verify(context.Background(), tokenStr)
	require.NoError(t, err)
	assert.Equal(t, int64(7), record.UserID)
	assert.Equal(t, DefaultTokenName, record.Name)
	assert.Equal(t, []string{"*"}, record.Abilities)
	assert.True(t, record.Can("anything"))
}

func TestIssueProducesIndependentTokens(t *testing.T) {
	repo := memory.NewTokenRepository()
	issuer := NewIssuer(repo, "secret", "auth-api", time.Hour)

	first, err := issuer.Issue(context.Background(), testUser(1))
	require.NoError(t, err)
	second, err := issuer.Issue(context.Background(), testUser(1))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, repo.Len())
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	repo := memory.NewTokenRepository()
	issuer := NewIssuer(repo, "secret", "auth-api", time.Hour)

	tokenStr, err := issuer.Issue(context.Background(), testUser(1))
	require.NoError(t, err)

	tampered := tokenStr[:len(tokenStr)-2] + "xx"
	_, err = issuer.Verify(context.Background(), tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsForeignSecretAndIssuer(t *testing.T) {
	repo := memory.NewTokenRepository()
	issuer := NewIssuer(repo, "secret", "auth-api", time.Hour)

	tokenStr, err := issuer.Issue(context.Background(), testUser(1))
	require.NoError(t, err)

	otherSecret := NewIssuer(repo, "other-secret", "auth-api", time.Hour)
	_, err = otherSecret.Verify(context.Background(), tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)

	otherIssuer := NewIssuer(repo, "secret", "someone-else", time.Hour)
	_, err = otherIssuer.Verify(context.Background(), tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	repo := memory.NewTokenRepository()
	issuer := NewIssuer(repo, "secret", "auth-api", -time.Minute)

	tokenStr, err := issuer.Issue(context.Background(), testUser(1))
	require.NoError(t, err)

	_, err = issuer.Verify(context.Background(), tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRevokeAllInvalidatesEveryToken(t *testing.T) {
	repo := memory.NewTokenRepository()
	issuer := NewIssuer(repo, "secret", "auth-api", time.Hour)

	first, err := issuer.Issue(context.Background(), testUser(1))
	require.NoError(t, err)
	second, err := issuer.Issue(context.Background(), testUser(1))
	require.NoError(t, err)
	other, err := issuer.Issue(context.Background(), testUser(2))
	require.NoError(t, err)

	require.NoError(t, issuer.RevokeAll(context.Background(), 1))

	_, err = issuer.Verify(context.Background(), first)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = issuer.Verify(context.Background(), second)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Another user's token is untouched.
	_, err = issuer.Verify(context.Background(), other)
	assert.NoError(t, err)
}
