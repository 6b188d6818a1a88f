package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/prepview/interview-backend/internal/domain"
	"github.com/prepview/interview-backend/internal/logger"
)

// Register creates an unverified user, issues a verification token and hands
// the verification email off to the mail worker. A publish failure after the
// user row exists is logged, not surfaced: the caller still gets the generic
// success message and can recover via the reset flow.
func (s *Service) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return domain.User{}, domain.ErrMissingFields()
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, domain.ErrHashFailed(err)
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Verified:     false,
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}

	token, err := s.issueActionToken(ctx, created, domain.PurposeVerifyEmail)
	if err != nil {
		return domain.User{}, err
	}

	evt := VerifyEmailEvent{
		UserID: created.ID,
		Email:  created.Email,
		Name:   created.Name,
		URL:    actionLink(s.verifyEmailBaseURL, token, created.ID),
	}
	if err := s.pub.PublishVerifyEmail(ctx, evt); err != nil {
		logger.WithCtx(ctx).Error().Err(err).
			Str("user_id", created.ID).
			Msg("verification email dispatch failed")
	}

	return created, nil
}
