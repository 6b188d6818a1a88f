package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/prepview/interview-backend/internal/application/auth"
	"github.com/prepview/interview-backend/internal/domain"
)

type JWTSigner struct {
	secret []byte
	issuer string
}

func NewJWTSigner(secret string, issuer string) *JWTSigner {
	return &JWTSigner{
		secret: []byte(secret),
		issuer: issuer,
	}
}

type tokenClaims struct {
	UserID  string `json:"uid"`
	Email   string `json:"email,omitempty"`
	Purpose string `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

// SignAccessToken issues the stateless login token; it carries only the user
// id, no email or purpose claims.
func (s *JWTSigner) SignAccessToken(userID string, ttl time.Duration) (string, error) {
	return s.sign(tokenClaims{UserID: userID}, userID, ttl)
}

// SignActionToken issues a verification or reset token. Verification tokens
// carry the email claim; the purpose claim keeps the two flows apart even at
// the signature level.
func (s *JWTSigner) SignActionToken(userID, email string, purpose domain.TokenPurpose, ttl time.Duration) (string, error) {
	c := tokenClaims{UserID: userID, Purpose: string(purpose)}
	if purpose == domain.PurposeVerifyEmail {
		c.Email = email
	}
	return s.sign(c, userID, ttl)
}

func (s *JWTSigner) sign(c tokenClaims, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	c.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", domain.ErrTokenSignFailed(err)
	}
	return signed, nil
}

func (s *JWTSigner) Verify(token string) (auth.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		// prevent alg confusion
		if t.Method != jwt.SigningMethodHS256 {
			return nil, domain.ErrTokenInvalid()
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return auth.TokenClaims{}, domain.ErrTokenExpired()
		}
		return auth.TokenClaims{}, domain.ErrTokenInvalid()
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return auth.TokenClaims{}, domain.ErrTokenInvalid()
	}

	exp := time.Time{}
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}

	return auth.TokenClaims{
		UserID:  claims.UserID,
		Email:   claims.Email,
		Purpose: claims.Purpose,
		Exp:     exp,
	}, nil
}
