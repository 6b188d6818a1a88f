package auth

import (
	"context"
	"strings"

	"github.com/prepview/interview-backend/internal/domain"
)

// Login authenticates a user and issues a stateless 1-hour bearer token.
// IMPORTANT: must not leak whether the email exists (avoid user enumeration).
// Verification deliberately does not gate login.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || password == "" {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Hide not-found behind invalid credentials
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	access, err := s.signer.SignAccessToken(u.ID, s.accessTTL)
	if err != nil {
		return LoginResult{}, domain.ErrTokenSignFailed(err)
	}

	return LoginResult{
		User:        u,
		AccessToken: access,
		ExpiresIn:   int64(s.accessTTL.Seconds()),
		TokenType:   "Bearer",
	}, nil
}

// GetUserByID backs the authenticated /user/me endpoint.
func (s *Service) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.User{}, domain.ErrTokenMissing()
	}
	return s.users.GetByID(ctx, userID)
}
