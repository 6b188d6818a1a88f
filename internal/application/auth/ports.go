package auth

import (
	"context"
	"time"

	"github.com/prepview/interview-backend/internal/domain"
)

/*
UserRepo
--------
Persistence port for users.
Only describes WHAT the auth flows need, not HOW it's stored.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)

	// Mutations needed by business flows
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error
	SetVerified(ctx context.Context, userID string) error
}

/*
TokenRepo
---------
Persistence port for single-use action tokens. At most one live token per
(user, purpose); Upsert overwrites the previous one for that pair only.
*/
type TokenRepo interface {
	Upsert(ctx context.Context, t domain.Token) error
	Get(ctx context.Context, userID string, purpose domain.TokenPurpose) (domain.Token, error)
	Delete(ctx context.Context, userID string, purpose domain.TokenPurpose) error
}

/*
PasswordHasher
--------------
Abstracts bcrypt.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

/*
TokenSigner
-----------
Issues and verifies signed, expiring tokens (JWT). Used both for the
stateless login bearer token and for the persisted action tokens.
*/
type TokenClaims struct {
	UserID  string
	Email   string
	Purpose string
	Exp     time.Time
}

type TokenSigner interface {
	// SignAccessToken issues the stateless session token; it carries only
	// the user id and is never stored server-side.
	SignAccessToken(userID string, ttl time.Duration) (string, error)

	// SignActionToken issues a verification or reset token bound to a user.
	SignActionToken(userID, email string, purpose domain.TokenPurpose, ttl time.Duration) (string, error)

	// Verify checks signature and expiry. Expired tokens surface as the
	// token_expired domain code so callers can keep expiry distinct.
	Verify(token string) (TokenClaims, error)
}

/*
EventPublisher
--------------
Publishes email events to the broker. A separate mail worker consumes them
and talks to the email provider; this service never sends mail directly.
*/
type EventPublisher interface {
	PublishVerifyEmail(ctx context.Context, evt VerifyEmailEvent) error
	PublishPasswordReset(ctx context.Context, evt PasswordResetEvent) error
}

type VerifyEmailEvent struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	URL    string `json:"url"`
}

type PasswordResetEvent struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	URL    string `json:"url"`
}
