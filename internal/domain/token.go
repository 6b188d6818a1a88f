package domain

import "time"

// TokenPurpose distinguishes the two one-time flows. Tokens are stored
// keyed by (user id, purpose) so a reset request can never clobber a
// pending verification token, or vice versa.
type TokenPurpose string

const (
	PurposeVerifyEmail   TokenPurpose = "verify_email"
	PurposePasswordReset TokenPurpose = "password_reset"
)

// Token is a persisted single-use action token. The Token field holds the
// signed string itself; expiry lives inside the signature, not the row.
type Token struct {
	ID        string
	UserID    string
	Purpose   TokenPurpose
	Token     string
	CreatedAt time.Time
}
