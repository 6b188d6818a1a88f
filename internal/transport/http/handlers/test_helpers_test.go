package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/prepview/interview-backend/internal/application/auth"
	"github.com/prepview/interview-backend/internal/application/catalog"
	"github.com/prepview/interview-backend/internal/infrastructure/memory"
	"github.com/prepview/interview-backend/internal/infrastructure/security"
	"github.com/prepview/interview-backend/internal/transport/http/middleware"
	"github.com/prepview/interview-backend/internal/transport/http/response"
	"github.com/prepview/interview-backend/internal/transport/http/router"
)

type testEnv struct {
	handler http.Handler
	pub     *memory.CapturePublisher
	users   *memory.UserRepo
	courses *memory.CourseRepo
	signer  *security.JWTSigner
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := memory.NewUserRepo()
	tokens := memory.NewTokenRepo()
	courses := memory.NewSeededCourseRepo()
	pub := memory.NewCapturePublisher()
	signer := security.NewJWTSigner("test-secret", "interview-backend-test")
	hasher := security.NewBcryptHasher(4) // min-ish cost keeps tests fast

	authSvc := auth.NewService(users, tokens, hasher, signer, pub, auth.Config{
		AccessTokenTTL:       time.Hour,
		ActionTokenTTL:       15 * time.Minute,
		VerifyEmailBaseURL:   "http://localhost:8080/verification",
		PasswordResetBaseURL: "http://localhost:8080/update-password",
	})
	catalogSvc := catalog.NewService(courses)

	h, err := router.New(router.Deps{
		Health:  NewHealthHandler(nil),
		Auth:    NewAuthHandler(authSvc),
		Catalog: NewCatalogHandler(catalogSvc),
		AuthMW:  middleware.Auth(signer, response.WriteError),
		Global: []func(http.Handler) http.Handler{
			middleware.RequestID,
		},
	})
	require.NoError(t, err)

	return &testEnv{handler: h, pub: pub, users: users, courses: courses, signer: signer}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var rdr *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	} else {
		rdr = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var data struct {
		Message string `json:"message"`
	}
	decodeData(t, rec, &data)
	return data.Message
}

func errorCodeOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}

// register creates a user and returns the (token, id) pair from the captured
// verification link.
func (e *testEnv) register(t *testing.T, name, email, password string) (token, id string) {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/mock-interview/user/register", map[string]string{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	evt, ok := e.pub.LastVerify()
	require.True(t, ok, "no verification event captured")
	return parseActionLink(t, evt.URL)
}

func parseActionLink(t *testing.T, link string) (token, id string) {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	q := u.Query()
	require.NotEmpty(t, q.Get("token"))
	require.NotEmpty(t, q.Get("id"))
	return q.Get("token"), q.Get("id")
}

func bearer(token string) []string {
	return []string{"Authorization", "Bearer " + token}
}

func mustLoginToken(t *testing.T, e *testEnv, email, password string) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/mock-interview/user/login", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var data struct {
		Token string `json:"token"`
	}
	decodeData(t, rec, &data)
	require.NotEmpty(t, data.Token)
	return data.Token
}
