package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "aifolio/internal/errors"
)

// validationError converts a validator failure into a 400 listing every
// violated field, not just the first.
func validationError(err error) error {
	resp := apperrors.ValidationErrorResponse{
		Error: "validation failed",
		Code:  "VALIDATION_ERROR",
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			resp.Fields = append(resp.Fields, apperrors.FieldError{
				Field: fe.Field(),
				Rule:  fe.Tag(),
			})
		}
	}
	return echo.NewHTTPError(http.StatusBadRequest, resp)
}

// domainError maps a service error onto its transport representation.
func domainError(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
