package memory

import (
	"context"
	"sync"
	"time"

	"github.com/prepview/interview-backend/internal/domain"
)

type TokenRepo struct {
	mu     sync.RWMutex
	tokens map[string]domain.Token
}

func NewTokenRepo() *TokenRepo {
	return &TokenRepo{tokens: make(map[string]domain.Token)}
}

func tokenKey(userID string, purpose domain.TokenPurpose) string {
	return userID + "|" + string(purpose)
}

func (r *TokenRepo) Upsert(_ context.Context, t domain.Token) error {
	if t.ID == "" || t.UserID == "" || t.Token == "" {
		return domain.ErrMissingField("token")
	}
	if t.Purpose == "" {
		return domain.ErrMissingField("purpose")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	r.tokens[tokenKey(t.UserID, t.Purpose)] = t
	return nil
}

func (r *TokenRepo) Get(_ context.Context, userID string, purpose domain.TokenPurpose) (domain.Token, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tokens[tokenKey(userID, purpose)]
	if !ok {
		return domain.Token{}, domain.ErrActionTokenNotFound()
	}
	return t, nil
}

func (r *TokenRepo) Delete(_ context.Context, userID string, purpose domain.TokenPurpose) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tokens, tokenKey(userID, purpose))
	return nil
}
