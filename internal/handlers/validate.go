// internal/handlers/validate.go
package handlers

import (
	"errors"

	"go_5_challenge_hub/internal/model"
	"go_5_challenge_hub/internal/webutil"

	"github.com/go-playground/validator/v10"
)

// validateRequest runs the shared validator and turns the first violation
// into a client-facing AppError.
func validateRequest(req interface{}) error {
	err := webutil.Validator.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		firstErr := validationErrors[0]
		return model.NewAppError(
			"VALIDATION_ERROR",
			firstErr.Translate(webutil.Trans),
			firstErr.Field(),
			model.ErrInvalidInput,
		)
	}
	return err
}
