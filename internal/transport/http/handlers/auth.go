package handlers

import (
	"net/http"

	"github.com/prepview/interview-backend/internal/application/auth"
	"github.com/prepview/interview-backend/internal/domain"
	"github.com/prepview/interview-backend/internal/logger"
	"github.com/prepview/interview-backend/internal/transport/http/dto"
	"github.com/prepview/interview-backend/internal/transport/http/middleware"
	"github.com/prepview/interview-backend/internal/transport/http/response"
)

// Response messages are part of the public contract; the frontend matches on
// them, so change them only together with the clients.
const (
	msgRegistered      = "If user with this email exists, a verification email has been sent."
	msgVerified        = "Email verified successfully."
	msgAlreadyVerified = "Your email has already been verified."
	msgLoggedIn        = "User logged in successfully"
	msgResetRequested  = "If a user with that email exists, a password reset link has been sent."
	msgPasswordUpdated = "Password has been updated successfully."
)

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	req.Normalize()
	if err := dto.Validate(&req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	u, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", u.ID).
		Msg("user_registered")

	response.OK(w, dto.MessageData{Message: msgRegistered})
}

func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyEmailRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := dto.Validate(&req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	already, err := h.svc.VerifyEmail(r.Context(), req.ID, req.Token)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	if already {
		response.OK(w, dto.MessageData{Message: msgAlreadyVerified})
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", req.ID).
		Msg("email_verified")

	response.OK(w, dto.MessageData{Message: msgVerified})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	req.Normalize()
	if err := dto.Validate(&req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if domain.Is(err, "invalid_credentials") {
			middleware.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		}
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", res.User.ID).
		Msg("user_logged_in")
	middleware.LoginAttemptsTotal.WithLabelValues("success").Inc()

	response.OK(w, dto.LoginData{
		Message:   msgLoggedIn,
		Token:     res.AccessToken,
		TokenType: res.TokenType,
		ExpiresIn: res.ExpiresIn,
		User:      dto.NewUserView(res.User),
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	u, err := h.svc.GetUserByID(r.Context(), userID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.MeData{User: dto.NewUserView(u)})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.PasswordResetRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	req.Normalize()
	if err := dto.Validate(&req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := h.svc.PasswordResetRequest(r.Context(), req.Email); err != nil {
		response.WriteError(w, r, err)
		return
	}

	// Same message whether or not the account exists.
	response.OK(w, dto.MessageData{Message: msgResetRequested})
}

func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req dto.PasswordUpdateRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := dto.Validate(&req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := h.svc.PasswordUpdate(r.Context(), req.ID, req.Token, req.Password); err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", req.ID).
		Msg("password_updated")

	response.OK(w, dto.MessageData{Message: msgPasswordUpdated})
}
