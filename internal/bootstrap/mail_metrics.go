package bootstrap

import (
	"context"

	"github.com/prepview/interview-backend/internal/application/auth"
	"github.com/prepview/interview-backend/internal/transport/http/middleware"
)

// mailMetricsPublisher counts mail events only once the broker has accepted
// them, so the counter tracks emails actually queued rather than HTTP
// requests that may never have published anything.
type mailMetricsPublisher struct {
	next auth.EventPublisher
}

func (p mailMetricsPublisher) PublishVerifyEmail(ctx context.Context, evt auth.VerifyEmailEvent) error {
	if err := p.next.PublishVerifyEmail(ctx, evt); err != nil {
		return err
	}
	middleware.MailEventsTotal.WithLabelValues("verify_email").Inc()
	return nil
}

func (p mailMetricsPublisher) PublishPasswordReset(ctx context.Context, evt auth.PasswordResetEvent) error {
	if err := p.next.PublishPasswordReset(ctx, evt); err != nil {
		return err
	}
	middleware.MailEventsTotal.WithLabelValues("password_reset").Inc()
	return nil
}
