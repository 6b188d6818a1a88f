package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prepview/interview-backend/internal/domain"
)

/*
Fakes for ports
*/

type fakeUserRepo struct {
	mu sync.Mutex

	byID    map[string]domain.User
	byEmail map[string]domain.User

	// injected errors (if set, method returns error)
	getByIDErr     error
	getByEmailErr  error
	createErr      error
	updatePwdErr   error
	setVerifiedErr error

	updatedPwd []struct{ id, hash string }
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[string]domain.User{},
		byEmail: map[string]domain.User{},
	}
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByEmailErr != nil {
		return domain.User{}, f.getByEmailErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByIDErr != nil {
		return domain.User{}, f.getByIDErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	if _, exists := f.byEmail[u.Email]; exists {
		return domain.User{}, domain.ErrEmailAlreadyExists()
	}
	u.CreatedAt = time.Now()
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updatePwdErr != nil {
		return f.updatePwdErr
	}
	u, ok := f.byID[userID]
	if !ok {
		return domain.ErrUserNotFound()
	}
	u.PasswordHash = newHash
	f.byID[userID] = u
	f.byEmail[u.Email] = u
	f.updatedPwd = append(f.updatedPwd, struct{ id, hash string }{userID, newHash})
	return nil
}

func (f *fakeUserRepo) SetVerified(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.setVerifiedErr != nil {
		return f.setVerifiedErr
	}
	u, ok := f.byID[userID]
	if !ok {
		return domain.ErrUserNotFound()
	}
	u.Verified = true
	f.byID[userID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) add(u domain.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
}

type fakeTokenRepo struct {
	mu sync.Mutex

	// userID|purpose -> token record
	data map[string]domain.Token

	upsertErr error
	getErr    error
	deleteErr error
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{data: map[string]domain.Token{}}
}

func tokenKey(userID string, purpose domain.TokenPurpose) string {
	return userID + "|" + string(purpose)
}

func (f *fakeTokenRepo) Upsert(ctx context.Context, t domain.Token) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.upsertErr != nil {
		return f.upsertErr
	}
	t.CreatedAt = time.Now()
	f.data[tokenKey(t.UserID, t.Purpose)] = t
	return nil
}

func (f *fakeTokenRepo) Get(ctx context.Context, userID string, purpose domain.TokenPurpose) (domain.Token, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return domain.Token{}, f.getErr
	}
	t, ok := f.data[tokenKey(userID, purpose)]
	if !ok {
		return domain.Token{}, domain.ErrActionTokenNotFound()
	}
	return t, nil
}

func (f *fakeTokenRepo) Delete(ctx context.Context, userID string, purpose domain.TokenPurpose) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.data, tokenKey(userID, purpose))
	return nil
}

type fakeHasher struct {
	hashFn    func(pw string) (string, error)
	compareFn func(hash, pw string) error
}

func (f *fakeHasher) Hash(pw string) (string, error) {
	if f.hashFn != nil {
		return f.hashFn(pw)
	}
	return "hash:" + pw, nil
}

func (f *fakeHasher) Compare(hash, pw string) error {
	if f.compareFn != nil {
		return f.compareFn(hash, pw)
	}
	if hash != "hash:"+pw {
		return errors.New("mismatch")
	}
	return nil
}

type fakeSigner struct {
	mu sync.Mutex

	seq     int
	signErr error

	// token -> claims; expired tokens verify with token_expired
	claims  map[string]TokenClaims
	expired map[string]bool
}

func newFakeSigner() *fakeSigner {
	return &fakeSigner{
		claims:  map[string]TokenClaims{},
		expired: map[string]bool{},
	}
}

func (f *fakeSigner) SignAccessToken(userID string, ttl time.Duration) (string, error) {
	return f.sign(userID, "", "access", ttl)
}

func (f *fakeSigner) SignActionToken(userID, email string, purpose domain.TokenPurpose, ttl time.Duration) (string, error) {
	return f.sign(userID, email, string(purpose), ttl)
}

func (f *fakeSigner) sign(userID, email, purpose string, ttl time.Duration) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.signErr != nil {
		return "", f.signErr
	}
	f.seq++
	tok := fmt.Sprintf("signed:%s:%s:%d", purpose, userID, f.seq)
	f.claims[tok] = TokenClaims{
		UserID:  userID,
		Email:   email,
		Purpose: purpose,
		Exp:     time.Now().Add(ttl),
	}
	return tok, nil
}

func (f *fakeSigner) Verify(token string) (TokenClaims, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.expired[token] {
		return TokenClaims{}, domain.ErrTokenExpired()
	}
	c, ok := f.claims[token]
	if !ok {
		return TokenClaims{}, domain.ErrTokenInvalid()
	}
	return c, nil
}

func (f *fakeSigner) expire(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expired[token] = true
}

type capturePublisher struct {
	mu sync.Mutex

	verifyEvents []VerifyEmailEvent
	resetEvents  []PasswordResetEvent

	verifyErr error
	resetErr  error
}

func (p *capturePublisher) PublishVerifyEmail(ctx context.Context, evt VerifyEmailEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.verifyErr != nil {
		return p.verifyErr
	}
	p.verifyEvents = append(p.verifyEvents, evt)
	return nil
}

func (p *capturePublisher) PublishPasswordReset(ctx context.Context, evt PasswordResetEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.resetErr != nil {
		return p.resetErr
	}
	p.resetEvents = append(p.resetEvents, evt)
	return nil
}

/*
Harness
*/

func newSvcForTest(t *testing.T) (*Service, *fakeUserRepo, *fakeTokenRepo, *fakeHasher, *fakeSigner, *capturePublisher) {
	t.Helper()

	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	hasher := &fakeHasher{}
	signer := newFakeSigner()
	pub := &capturePublisher{}

	svc := NewService(users, tokens, hasher, signer, pub, Config{
		AccessTokenTTL:       time.Hour,
		ActionTokenTTL:       15 * time.Minute,
		VerifyEmailBaseURL:   "http://localhost:8080/verification",
		PasswordResetBaseURL: "http://localhost:8080/update-password",
	})
	return svc, users, tokens, hasher, signer, pub
}

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	if !domain.Is(err, code) {
		t.Fatalf("expected domain code %q, got %v", code, err)
	}
}
