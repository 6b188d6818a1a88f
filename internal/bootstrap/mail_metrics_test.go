package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepview/interview-backend/internal/application/auth"
	"github.com/prepview/interview-backend/internal/infrastructure/memory"
	"github.com/prepview/interview-backend/internal/transport/http/middleware"
)

type failingPublisher struct{}

func (failingPublisher) PublishVerifyEmail(context.Context, auth.VerifyEmailEvent) error {
	return errors.New("broker down")
}

func (failingPublisher) PublishPasswordReset(context.Context, auth.PasswordResetEvent) error {
	return errors.New("broker down")
}

func TestMailMetricsPublisher_CountsOnlySuccessfulPublishes(t *testing.T) {
	verify := middleware.MailEventsTotal.WithLabelValues("verify_email")
	reset := middleware.MailEventsTotal.WithLabelValues("password_reset")
	verifyBefore := testutil.ToFloat64(verify)
	resetBefore := testutil.ToFloat64(reset)

	ok := mailMetricsPublisher{next: memory.NewCapturePublisher()}
	require.NoError(t, ok.PublishVerifyEmail(context.Background(), auth.VerifyEmailEvent{UserID: "u1"}))
	require.NoError(t, ok.PublishPasswordReset(context.Background(), auth.PasswordResetEvent{UserID: "u1"}))

	bad := mailMetricsPublisher{next: failingPublisher{}}
	require.Error(t, bad.PublishVerifyEmail(context.Background(), auth.VerifyEmailEvent{UserID: "u1"}))
	require.Error(t, bad.PublishPasswordReset(context.Background(), auth.PasswordResetEvent{UserID: "u1"}))

	assert.Equal(t, verifyBefore+1, testutil.ToFloat64(verify))
	assert.Equal(t, resetBefore+1, testutil.ToFloat64(reset))
}
