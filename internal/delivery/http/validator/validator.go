// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps the go-playground validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates an Echo-compatible request validator.
func New() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate checks a bound request struct against its validation tags.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
