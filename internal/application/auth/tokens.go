package auth

import (
	"context"
	"crypto/subtle"

	"github.com/google/uuid"

	"github.com/prepview/interview-backend/internal/domain"
)

// issueActionToken signs a purpose-bound token for the user and upserts it
// into the token store, replacing any previous token for the same
// (user, purpose) pair and only that pair.
func (s *Service) issueActionToken(ctx context.Context, u domain.User, purpose domain.TokenPurpose) (string, error) {
	signed, err := s.signer.SignActionToken(u.ID, u.Email, purpose, s.actionTTL)
	if err != nil {
		return "", domain.ErrTokenSignFailed(err)
	}

	rec := domain.Token{
		ID:      uuid.NewString(),
		UserID:  u.ID,
		Purpose: purpose,
		Token:   signed,
	}
	if err := s.tokens.Upsert(ctx, rec); err != nil {
		return "", err
	}
	return signed, nil
}

// validateActionToken confirms that presented matches the most recently
// issued token for (userID, purpose) and that its signature and expiry still
// hold. Missing record and mismatch collapse into one generic link error;
// expiry stays distinct. The record is NOT deleted here; callers consume it
// only after the guarded mutation succeeds.
func (s *Service) validateActionToken(ctx context.Context, userID string, purpose domain.TokenPurpose, presented string) error {
	rec, err := s.tokens.Get(ctx, userID, purpose)
	if err != nil {
		if domain.Is(err, "action_token_not_found") {
			return linkInvalid(purpose)
		}
		return err
	}

	if subtle.ConstantTimeCompare([]byte(rec.Token), []byte(presented)) != 1 {
		return linkInvalid(purpose)
	}

	claims, err := s.signer.Verify(presented)
	if err != nil {
		if domain.Is(err, "token_expired") {
			return linkExpired(purpose)
		}
		return linkInvalid(purpose)
	}
	if claims.UserID != userID {
		return linkInvalid(purpose)
	}
	return nil
}

// consumeActionToken removes the stored record after a successful use.
func (s *Service) consumeActionToken(ctx context.Context, userID string, purpose domain.TokenPurpose) error {
	return s.tokens.Delete(ctx, userID, purpose)
}

func linkInvalid(purpose domain.TokenPurpose) error {
	if purpose == domain.PurposeVerifyEmail {
		return domain.ErrVerificationLinkInvalid()
	}
	return domain.ErrResetLinkInvalid()
}

func linkExpired(purpose domain.TokenPurpose) error {
	if purpose == domain.PurposeVerifyEmail {
		return domain.ErrVerificationLinkExpired()
	}
	return domain.ErrResetLinkExpired()
}
