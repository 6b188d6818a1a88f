package auth

import (
	"context"
	"strings"

	"github.com/prepview/interview-backend/internal/domain"
	"github.com/prepview/interview-backend/internal/logger"
)

// PasswordResetRequest issues a reset token and hands the reset email off to
// the mail worker. IMPORTANT: non-enumerating - the caller always returns
// the same generic message, so an unknown email simply results in nil.
func (s *Service) PasswordResetRequest(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return domain.ErrMissingField("email")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil
	}

	token, err := s.issueActionToken(ctx, u, domain.PurposePasswordReset)
	if err != nil {
		return err
	}

	evt := PasswordResetEvent{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
		URL:    actionLink(s.passwordResetBaseURL, token, u.ID),
	}
	if err := s.pub.PublishPasswordReset(ctx, evt); err != nil {
		logger.WithCtx(ctx).Error().Err(err).
			Str("user_id", u.ID).
			Msg("password reset email dispatch failed")
	}
	return nil
}

// PasswordUpdate consumes a reset token and overwrites the password hash.
func (s *Service) PasswordUpdate(ctx context.Context, userID, token, newPassword string) error {
	userID = strings.TrimSpace(userID)
	token = strings.TrimSpace(token)
	if userID == "" || token == "" || newPassword == "" {
		return domain.ErrMissingFields()
	}

	if err := s.validateActionToken(ctx, userID, domain.PurposePasswordReset, token); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return domain.ErrHashFailed(err)
	}

	if err := s.users.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return err
	}
	return s.consumeActionToken(ctx, userID, domain.PurposePasswordReset)
}
