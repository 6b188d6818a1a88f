package dto

import "strings"

// Request DTOs carry validator tags; Validate in validation.go translates
// failures into domain errors so every handler reports them the same way.

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

// VerifyEmailRequest carries the token and user id lifted from the emailed
// link by the frontend. The link query uses "id" but the frontend posts the
// value back as "userId"; both names are load-bearing.
type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
	ID    string `json:"userId" validate:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r *PasswordResetRequest) Normalize() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

type PasswordUpdateRequest struct {
	Token    string `json:"token" validate:"required"`
	ID       string `json:"userId" validate:"required"`
	Password string `json:"newPassword" validate:"required"`
}
