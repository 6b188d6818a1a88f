package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
	UpdatePassword(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	GetQuestions(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health  HealthHandler
	Auth    AuthHandler
	Catalog CatalogHandler

	AuthMW       func(http.Handler) http.Handler
	LoginLimitMW func(http.Handler) http.Handler
	ResetLimitMW func(http.Handler) http.Handler

	// Global middleware applied to every route, outermost first.
	Global []func(http.Handler) http.Handler

	Metrics http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.Catalog == nil {
		return nil, fmt.Errorf("nil Catalog handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}

	r := chi.NewRouter()
	for _, mw := range deps.Global {
		r.Use(mw)
	}

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	r.Route("/api/mock-interview", func(r chi.Router) {
		r.Post("/user/register", deps.Auth.Register)
		r.Post("/verification", deps.Auth.Verify)
		r.With(deps.AuthMW).Get("/user/me", deps.Auth.Me)

		if deps.LoginLimitMW != nil {
			r.With(deps.LoginLimitMW).Post("/user/login", deps.Auth.Login)
		} else {
			r.Post("/user/login", deps.Auth.Login)
		}

		if deps.ResetLimitMW != nil {
			r.With(deps.ResetLimitMW).Post("/reset-password", deps.Auth.ResetPassword)
		} else {
			r.Post("/reset-password", deps.Auth.ResetPassword)
		}
		r.Post("/update-password", deps.Auth.UpdatePassword)

		// The path segment is literally "course<name>", e.g.
		// /get-questions/coursejavascript. Kept for frontend compatibility.
		r.Get("/get-questions/course{name}", deps.Catalog.GetQuestions)
	})

	return r, nil
}
