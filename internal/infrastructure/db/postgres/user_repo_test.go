package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepview/interview-backend/internal/domain"
)

func newMockRepo(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewUserRepo(db), mock
}

func userColumns() []string {
	return []string{"id", "name", "email", "password_hash", "verified", "created_at"}
}

func TestUserRepo_GetByEmail_Found(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	mock.ExpectQuery("SELECT id, name, email, password_hash, verified, created_at").
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow("u1", "A", "a@x.com", "hash", false, now))

	u, err := repo.GetByEmail(context.Background(), " A@X.com ")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "a@x.com", u.Email)
	assert.False(t, u.Verified)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByEmail_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, name, email").
		WithArgs("ghost@x.com").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.GetByEmail(context.Background(), "ghost@x.com")
	assert.True(t, domain.Is(err, "user_not_found"), "got %v", err)
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("u1", "A", "a@x.com", "hash", false).
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))

	_, err := repo.Create(context.Background(), domain.User{
		ID: "u1", Name: "A", Email: "a@x.com", PasswordHash: "hash",
	})
	assert.True(t, domain.Is(err, "email_already_exists"), "got %v", err)
}

func TestUserRepo_Create_Success(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("u1", "A", "a@x.com", "hash", false).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow("u1", "A", "a@x.com", "hash", false, now))

	u, err := repo.Create(context.Background(), domain.User{
		ID: "u1", Name: "A", Email: "A@X.com", PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_UpdatePasswordHash(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE users").
		WithArgs("u1", "newhash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdatePasswordHash(context.Background(), "u1", "newhash"))

	mock.ExpectExec("UPDATE users").
		WithArgs("missing", "newhash").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePasswordHash(context.Background(), "missing", "newhash")
	assert.True(t, domain.Is(err, "user_not_found"), "got %v", err)
}

func TestUserRepo_SetVerified(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE users").
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetVerified(context.Background(), "u1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_DBErrorMapsToInfrastructure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT id, name, email").
		WithArgs("u1").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.GetByID(context.Background(), "u1")
	assert.True(t, domain.Is(err, "db_unavailable"), "got %v", err)
}
