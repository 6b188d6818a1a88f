package auth

import (
	"context"
	"strings"

	"github.com/prepview/interview-backend/internal/domain"
)

// VerifyEmail consumes a verification token and flips the user's verified
// flag. The already-verified case is a friendly no-op so a twice-clicked
// link does not scare the user with an error.
func (s *Service) VerifyEmail(ctx context.Context, userID, token string) (alreadyVerified bool, err error) {
	userID = strings.TrimSpace(userID)
	token = strings.TrimSpace(token)
	if userID == "" || token == "" {
		return false, domain.ErrMissingFields()
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if domain.Is(err, "user_not_found") {
			// Unknown id looks the same as a bad link.
			return false, domain.ErrVerificationLinkInvalid()
		}
		return false, err
	}
	if u.Verified {
		return true, nil
	}

	if err := s.validateActionToken(ctx, userID, domain.PurposeVerifyEmail, token); err != nil {
		return false, err
	}

	if err := s.users.SetVerified(ctx, userID); err != nil {
		return false, err
	}
	return false, s.consumeActionToken(ctx, userID, domain.PurposeVerifyEmail)
}
