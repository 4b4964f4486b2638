// Package memory provides in-memory implementations of the auth
// repositories, used by unit and handler tests.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/thesanmark/auth-api/pkg/auth"
)

// UserRepository is a mutex-guarded map-backed auth.UserRepository.
type UserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]auth.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[int64]auth.User)}
}

func (r *UserRepository) Create(_ context.Context, user auth.User) (auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	email := strings.ToLower(user.Email)
	for _, u := range r.users {
		if u.Email == email {
			return auth.User{}, auth.ErrEmailTaken
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.Email = email
	r.users[user.ID] = user
	return user, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	email = strings.ToLower(email)
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return auth.User{}, auth.ErrNotFound
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return user, nil
}

// Len reports the number of stored users.
func (r *UserRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// TokenRepository is a mutex-guarded map-backed auth.TokenRepository.
type TokenRepository struct {
	mu     sync.Mutex
	tokens map[uuid.UUID]auth.AccessToken
}

func NewTokenRepository() *TokenRepository {
	return &TokenRepository{tokens: make(map[uuid.UUID]auth.AccessToken)}
}

func (r *TokenRepository) Create(_ context.Context, token auth.AccessToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token.ID] = token
	return nil
}

func (r *TokenRepository) GetByID(_ context.Context, id uuid.UUID) (auth.AccessToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	token, ok := r.tokens[id]
	if !ok {
		return auth.AccessToken{}, auth.ErrNotFound
	}
	return token, nil
}

func (r *TokenRepository) DeleteByUser(_ context.Context, userID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for id, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, id)
			deleted++
		}
	}
	return deleted, nil
}

// Len reports the number of live token records.
func (r *TokenRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tokens)
}
