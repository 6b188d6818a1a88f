package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/prepview/interview-backend/internal/domain"
)

var validate = validator.New()

// Validate runs the struct tags on req and maps the first failure to a
// domain error. Every missing required field collapses into the one
// "All fields are required" message the clients expect.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.ErrInternal(err)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return domain.ErrMissingFields()
	case "email":
		return domain.ErrInvalidField("email", "invalid format")
	default:
		return domain.ErrInvalidField(fe.Field(), fe.Tag())
	}
}
