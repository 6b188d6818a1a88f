package auth

import (
	"net/url"
	"time"

	"github.com/prepview/interview-backend/internal/domain"
)

type Service struct {
	users  UserRepo
	tokens TokenRepo
	hasher PasswordHasher
	signer TokenSigner
	pub    EventPublisher

	accessTTL time.Duration
	actionTTL time.Duration

	// URLs used to build links sent via the mail worker
	verifyEmailBaseURL   string
	passwordResetBaseURL string
}

type Config struct {
	AccessTokenTTL       time.Duration
	ActionTokenTTL       time.Duration
	VerifyEmailBaseURL   string
	PasswordResetBaseURL string
}

func NewService(
	users UserRepo,
	tokens TokenRepo,
	hasher PasswordHasher,
	signer TokenSigner,
	pub EventPublisher,
	cfg Config,
) *Service {
	accessTTL := cfg.AccessTokenTTL
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	actionTTL := cfg.ActionTokenTTL
	if actionTTL <= 0 {
		actionTTL = 15 * time.Minute
	}
	return &Service{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		signer: signer,
		pub:    pub,

		accessTTL: accessTTL,
		actionTTL: actionTTL,

		verifyEmailBaseURL:   cfg.VerifyEmailBaseURL,
		passwordResetBaseURL: cfg.PasswordResetBaseURL,
	}
}

// LoginResult is the output of a successful login.
type LoginResult struct {
	User        domain.User
	AccessToken string
	ExpiresIn   int64 // seconds
	TokenType   string
}

// actionLink builds the link embedded in verification/reset emails:
// base?token=<signed>&id=<userID>.
func actionLink(base, token, userID string) string {
	q := url.Values{}
	q.Set("token", token)
	q.Set("id", userID)
	return base + "?" + q.Encode()
}
