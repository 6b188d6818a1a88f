package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepview/interview-backend/internal/config"
	"github.com/prepview/interview-backend/internal/transport/http/router"
)

func devDeps() Deps {
	d := defaultDeps()
	d.LoadConfig = func() (*config.Config, error) {
		return &config.Config{
			Env:                  "dev",
			HTTPAddr:             ":0",
			HTTPReadTimeout:      10 * time.Second,
			HTTPWriteTimeout:     30 * time.Second,
			HTTPIdleTimeout:      time.Minute,
			JWTSecret:            "test-secret",
			JWTIssuer:            "interview-backend-test",
			AccessTokenTTL:       time.Hour,
			ActionTokenTTL:       15 * time.Minute,
			BcryptCost:           4,
			VerifyEmailBaseURL:   "http://localhost:8080/verification",
			PasswordResetBaseURL: "http://localhost:8080/update-password",
		}, nil
	}
	return d
}

func TestNewServer_DevModeWithoutInfra(t *testing.T) {
	srv, cleanup, err := NewServerWithDeps(devDeps())
	require.NoError(t, err)
	defer cleanup()

	require.NotNil(t, srv.Handler)
	assert.Equal(t, ":0", srv.Addr)
	assert.Equal(t, 10*time.Second, srv.ReadTimeout)
}

func TestNewServer_ServesHealthz(t *testing.T) {
	srv, cleanup, err := NewServerWithDeps(devDeps())
	require.NoError(t, err)
	defer cleanup()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewServer_FullFlowOnMemoryStores(t *testing.T) {
	srv, cleanup, err := NewServerWithDeps(devDeps())
	require.NoError(t, err)
	defer cleanup()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/mock-interview/get-questions/coursejavascript", nil)
	srv.Handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestNewServer_ConfigError(t *testing.T) {
	d := devDeps()
	d.LoadConfig = func() (*config.Config, error) {
		return nil, assert.AnError
	}

	_, _, err := NewServerWithDeps(d)
	assert.Error(t, err)
}

func TestNewServer_RouterError(t *testing.T) {
	d := devDeps()
	d.NewRouter = func(router.Deps) (http.Handler, error) {
		return nil, assert.AnError
	}

	_, _, err := NewServerWithDeps(d)
	assert.Error(t, err)
}
