package handler

import (
	"net/http"

	"portfolio/internal/delivery/api/response"
	"portfolio/internal/errors"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ContactHandler receives contact form submissions and lists them for the admin.
type ContactHandler struct {
	contactUC usecase.ContactUsecase
}

// NewContactHandler is the constructor for ContactHandler.
func NewContactHandler(contactUC usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{contactUC: contactUC}
}

// ContactRequest is the body of POST /contact.
type ContactRequest struct {
	Name    string `json:"name" validate:"max=100"`
	Email   string `json:"email" validate:"omitempty,email"`
	Message string `json:"message"`
}

// ContactAck acknowledges a submission.
type ContactAck struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit stores a visitor message.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if _, err := h.contactUC.Submit(c.Request().Context(), &usecase.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, ContactAck{
		Success: true,
		Message: "Message received successfully!",
	})
}

// List returns all messages, newest first.
func (h *ContactHandler) List(c echo.Context) error {
	messages, err := h.contactUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages)
}

// MarkRead flags a message as read.
func (h *ContactHandler) MarkRead(c echo.Context) error {
	message, err := h.contactUC.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, message)
}
