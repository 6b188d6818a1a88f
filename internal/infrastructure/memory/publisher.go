package memory

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/prepview/interview-backend/internal/application/auth"
)

// NoopPublisher logs mail events instead of publishing them. It stands in for
// the broker in dev mode; the verification and reset links land in the log so
// the flows stay exercisable end to end.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (NoopPublisher) PublishVerifyEmail(_ context.Context, evt auth.VerifyEmailEvent) error {
	log.Info().
		Str("email", evt.Email).
		Str("url", evt.URL).
		Msg("verify-email event (noop publisher)")
	return nil
}

func (NoopPublisher) PublishPasswordReset(_ context.Context, evt auth.PasswordResetEvent) error {
	log.Info().
		Str("email", evt.Email).
		Str("url", evt.URL).
		Msg("password-reset event (noop publisher)")
	return nil
}

// CapturePublisher records published events for assertions in tests.
type CapturePublisher struct {
	mu     sync.Mutex
	Verify []auth.VerifyEmailEvent
	Resets []auth.PasswordResetEvent
}

func NewCapturePublisher() *CapturePublisher { return &CapturePublisher{} }

func (p *CapturePublisher) PublishVerifyEmail(_ context.Context, evt auth.VerifyEmailEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Verify = append(p.Verify, evt)
	return nil
}

func (p *CapturePublisher) PublishPasswordReset(_ context.Context, evt auth.PasswordResetEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Resets = append(p.Resets, evt)
	return nil
}

func (p *CapturePublisher) LastVerify() (auth.VerifyEmailEvent, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Verify) == 0 {
		return auth.VerifyEmailEvent{}, false
	}
	return p.Verify[len(p.Verify)-1], true
}

func (p *CapturePublisher) LastReset() (auth.PasswordResetEvent, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Resets) == 0 {
		return auth.PasswordResetEvent{}, false
	}
	return p.Resets[len(p.Resets)-1], true
}
