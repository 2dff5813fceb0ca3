// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"portfolio/internal/delivery/api/response"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/errors"

	"github.com/labstack/echo/v4"
)

// bind decodes the request body into req and runs the struct validator.
// Malformed bodies surface as a validation error instead of echo's decoder text.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	return nil
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
