package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bakehouse/internal/delivery/http/response"
	"bakehouse/internal/usecase"
)

// ContactHandler forwards contact-form submissions.
type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactUsecase usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{contactUsecase: contactUsecase}
}

// Submit handles POST /contact
func (h *ContactHandler) Submit(c echo.Context) error {
	var req usecase.ContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}

	if err := h.contactUsecase.Submit(c.Request().Context(), req); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Your message has been sent.")
}
