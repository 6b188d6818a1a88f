package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/prepview/interview-backend/internal/domain"
)

type TokenRepo struct {
	db *sql.DB
}

func NewTokenRepo(db *sql.DB) *TokenRepo {
	return &TokenRepo{db: db}
}

// Upsert stores the token, replacing any previous record for the same
// (user_id, purpose) pair. The UNIQUE constraint makes the overwrite atomic
// at the row level, which is all the concurrency control this flow needs.
func (r *TokenRepo) Upsert(ctx context.Context, t domain.Token) error {
	if t.ID == "" || t.UserID == "" || t.Token == "" {
		return domain.ErrMissingField("token")
	}
	if t.Purpose == "" {
		return domain.ErrMissingField("purpose")
	}

	const q = `
INSERT INTO tokens (id, user_id, purpose, token)
VALUES ($1,$2,$3,$4)
ON CONFLICT (user_id, purpose)
DO UPDATE SET token = EXCLUDED.token, created_at = NOW();
`
	if _, err := r.db.ExecContext(ctx, q, t.ID, t.UserID, t.Purpose, t.Token); err != nil {
		return domain.ErrDBUnavailable(err)
	}
	return nil
}

func (r *TokenRepo) Get(ctx context.Context, userID string, purpose domain.TokenPurpose) (domain.Token, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.Token{}, domain.ErrMissingField("user_id")
	}

	const q = `
SELECT id, user_id, purpose, token, created_at
FROM tokens
WHERE user_id = $1 AND purpose = $2
LIMIT 1;
`
	var (
		t         domain.Token
		createdAt time.Time
	)
	err := r.db.QueryRowContext(ctx, q, userID, purpose).Scan(
		&t.ID, &t.UserID, &t.Purpose, &t.Token, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Token{}, domain.ErrActionTokenNotFound()
		}
		return domain.Token{}, domain.ErrDBUnavailable(err)
	}
	t.CreatedAt = createdAt
	return t, nil
}

func (r *TokenRepo) Delete(ctx context.Context, userID string, purpose domain.TokenPurpose) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.ErrMissingField("user_id")
	}

	const q = `
DELETE FROM tokens
WHERE user_id = $1 AND purpose = $2;
`
	if _, err := r.db.ExecContext(ctx, q, userID, purpose); err != nil {
		return domain.ErrDBUnavailable(err)
	}
	return nil
}
