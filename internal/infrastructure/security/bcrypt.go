package security

import (
	"github.com/prepview/interview-backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes passwords at a fixed cost. Tests pass a low cost to
// stay fast; production uses the configured value.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domain.ErrHashFailed(err)
	}
	return string(b), nil
}

// Compare returns nil when password matches hash. The raw bcrypt error is
// passed through; login maps any failure to the one generic credential error.
func (h *BcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
